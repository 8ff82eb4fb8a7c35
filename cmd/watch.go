package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/pkg/pingcli"
)

func watch(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := pingcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "watch", "new_client", err)
		return nil
	}
	defer client.Close()
	if _, err = client.Attach(); err != nil {
		printRuntimeErr(ctx, "watch", "attach", err)
		return nil
	}
	client.AddHandler(common.UPDATE_REMINDER, pingcli.NewReminderHandler("", func(u *common.ReminderUpdate) error {
		switch u.Action {
		case common.ReminderFired:
			fmt.Printf("[fired] note %d: %s\n", u.Id, u.Text)
		case common.ReminderSkipped:
			fmt.Printf("[skipped] note %d no longer exists\n", u.Id)
		}
		return nil
	}))
	client.AddHandler(common.UPDATE_SUMMARY, pingcli.NewReminderHandler(common.SummaryRefresh, func(u *common.ReminderUpdate) error {
		fmt.Println("[summary] upcoming reminders changed")
		return nil
	}))
	fmt.Println("Watching for reminders, press Ctrl+C to stop.")
	err = client.Listen()
	if err != nil {
		printRuntimeErr(ctx, "watch", "listen", err)
	}
	return nil
}
