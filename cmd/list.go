package cmd

import (
	"fmt"
	"sort"

	"github.com/urfave/cli"

	"github.com/noteping/noteping/pkg/pingcli"
)

func list(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := pingcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "list", "new_client", err)
		return nil
	}
	defer client.Close()
	l, err := client.ListNotes(dueOnly)
	if err != nil {
		printRuntimeErr(ctx, "list", "get_list", err)
		return nil
	}
	if len(l.Notes) == 0 {
		fmt.Println("No saved notes.")
		return nil
	}
	// due notes first, earliest on top; reminder-less notes by id
	sort.SliceStable(l.Notes, func(i, j int) bool {
		a, b := l.Notes[i], l.Notes[j]
		if (a.DueAt == nil) != (b.DueAt == nil) {
			return a.DueAt != nil
		}
		if a.DueAt != nil && *a.DueAt != *b.DueAt {
			return *a.DueAt < *b.DueAt
		}
		return a.Id < b.Id
	})
	fmt.Printf("Id\tDue\t\t\tNote\n")
	for i := range l.Notes {
		printNote(&l.Notes[i])
	}
	return nil
}
