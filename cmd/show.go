package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/noteping/noteping/pkg/pingcli"
)

func show(ctx *cli.Context) error {
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
		printRuntimeErr(ctx, "show", "new_client", err)
		return nil
	}
	defer client.Close()
	res, err := client.GetNote(id)
	if err != nil {
		printRuntimeErr(ctx, "show", "get-note", err)
		return nil
	}
	fmt.Printf("Id\t: %d\nDue\t: %s\nNote\t: %s\n",
		res.Note.Id,
		formatDue(res.Note.DueAt),
		res.Note.Text,
	)
	return nil
}
