package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/noteping/noteping/pkg/pingcli"
)

func add(ctx *cli.Context) error {
	text := ctx.Args().First()
	if text == "" {
		if ctx.Command.Name == "" {
			return help(ctx)
		}
		return printErrWithCmdHelp(
			ctx,
			errors.New("no note text provided"),
		)
	} else if text == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	dueMs, warning, err := resolveDue(dueAtStr, dueInStr)
	if err != nil {
		return printErrWithCmdHelp(ctx, err)
	}
	if warning != "" {
		fmt.Println(warning)
	}
	client, err := pingcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "add", "new_client", err)
		return nil
	}
	defer client.Close()
	res, err := client.AddNote(text, dueMs, noRemind || warning != "")
	if err != nil {
		printRuntimeErr(ctx, "add", "add-note", err)
		return nil
	}
	if res.Armed {
		fmt.Printf("Saved note %d, reminder set for %s.\n", res.Id, formatDue(&res.DueAt))
	} else if res.Deferred {
		fmt.Printf("Saved note %d without a reminder.\n", res.Id)
	} else {
		fmt.Printf("Saved note %d.\n", res.Id)
	}
	return nil
}
