package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/noteping/noteping/pkg/pingcli"
)

func stop(ctx *cli.Context) error {
	client, err := pingcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "stop", "new_client", err)
		return nil
	}
	defer client.Close()
	_, err = client.StopDaemon()
	if err != nil {
		printRuntimeErr(ctx, "stop", "stop-daemon", err)
		return nil
	}
	fmt.Println("Daemon stopped.")
	return nil
}
