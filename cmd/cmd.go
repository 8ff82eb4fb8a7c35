package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var currentBuildArgs BuildArgs

func Execute(args []string, bArgs BuildArgs) error {
	currentBuildArgs = bArgs
	app := cli.App{
		Name:                  "noteping",
		HelpName:              "noteping",
		Usage:                 "notes that ping you back.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "noteping <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          usageErrorCallback,
		Commands: []cli.Command{
			{
				Name:   "daemon",
				Action: daemon,
			},
			{
				Name:                   "add",
				Aliases:                []string{"a"},
				Usage:                  "save a note, optionally with a reminder",
				Action:                 add,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            AddDescription,
				UseShortOptionHandling: true,
				Flags:                  addFlags,
			},
			{
				Name:                   "edit",
				Aliases:                []string{"e"},
				Usage:                  "rewrite a note's text or reminder",
				Action:                 edit,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            EditDescription,
				UseShortOptionHandling: true,
				Flags:                  editFlags,
			},
			{
				Name:               "rm",
				Aliases:            []string{"d"},
				Usage:              "delete a note and release its reminder",
				Action:             remove,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        RemoveDescription,
			},
			{
				Name:                   "restore",
				Usage:                  "re-save a deleted note",
				Action:                 restore,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            RestoreDescription,
				UseShortOptionHandling: true,
				Flags:                  restoreFlags,
			},
			{
				Name:                   "list",
				Aliases:                []string{"l"},
				Usage:                  "display saved notes",
				Action:                 list,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ListDescription,
				UseShortOptionHandling: true,
				Flags:                  listFlags,
			},
			{
				Name:               "show",
				Aliases:            []string{"s"},
				Usage:              "show a single note",
				Action:             show,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        ShowDescription,
			},
			{
				Name:               "next",
				Aliases:            []string{"n"},
				Usage:              "show the next upcoming reminder",
				Action:             next,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        NextDescription,
			},
			{
				Name:               "watch",
				Aliases:            []string{"w"},
				Usage:              "stream reminder events as they fire",
				Action:             watch,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        WatchDescription,
			},
			{
				Name:   "stop",
				Action: stop,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of noteping",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             getVersion,
			},
		},
		Action:                 list,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	return app.Run(args)
}
