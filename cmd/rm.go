package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/noteping/noteping/pkg/pingcli"
)

func remove(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" {
		return printErrWithCmdHelp(
			ctx,
			errors.New("no note id provided"),
		)
	} else if arg == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return printErrWithCmdHelp(
			ctx,
			errors.New("invalid note id: "+arg),
		)
	}
	client, err := pingcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "rm", "new_client", err)
		return nil
	}
	defer client.Close()
	_, err = client.DeleteNote(id)
	if err != nil {
		printRuntimeErr(ctx, "rm", "delete-note", err)
		return nil
	}
	fmt.Printf("Note %d deleted.\n", id)
	return nil
}
