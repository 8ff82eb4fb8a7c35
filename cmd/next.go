package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/noteping/noteping/pkg/pingcli"
)

func next(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := pingcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "next", "new_client", err)
		return nil
	}
	defer client.Close()
	res, err := client.NextNote(0)
	if err != nil {
		printRuntimeErr(ctx, "next", "next-note", err)
		return nil
	}
	if res.Note == nil {
		fmt.Println("No upcoming reminders.")
		return nil
	}
	fmt.Printf("Next reminder at %s: note %d: %s\n",
		formatDue(res.Note.DueAt),
		res.Note.Id,
		res.Note.Text,
	)
	return nil
}
