package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/pkg/pingcli"
)

func restore(ctx *cli.Context) error {
	text := ctx.Args().First()
	if text == "" {
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
		printRuntimeErr(ctx, "restore", "new_client", err)
		return nil
	}
	defer client.Close()
	res, err := client.RestoreNote(common.NoteInfo{
		Id:    restoreId,
		Text:  text,
		DueAt: dueMs,
	})
	if err != nil {
		printRuntimeErr(ctx, "restore", "restore-note", err)
		return nil
	}
	if res.NewId != res.OldId && res.OldId != 0 {
		fmt.Printf("Restored note %d under new id %d.\n", res.OldId, res.NewId)
	} else {
		fmt.Printf("Restored note %d.\n", res.NewId)
	}
	if res.Armed {
		fmt.Printf("Reminder set for %s.\n", formatDue(dueMs))
	}
	return nil
}
