package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/noteping/noteping/pkg/pingcli"
)

func edit(ctx *cli.Context) error {
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
	text := ctx.Args().Get(1)
	if text == "" {
		return printErrWithCmdHelp(
			ctx,
			errors.New("no note text provided"),
		)
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
		printRuntimeErr(ctx, "edit", "new_client", err)
		return nil
	}
	defer client.Close()
	res, err := client.EditNote(id, text, dueMs, noRemind || warning != "")
	if err != nil {
		printRuntimeErr(ctx, "edit", "edit-note", err)
		return nil
	}
	if res.Armed {
		fmt.Printf("Updated note %d, reminder set for %s.\n", res.Id, formatDue(dueMs))
	} else {
		fmt.Printf("Updated note %d.\n", res.Id)
	}
	return nil
}
