package cmd

import "github.com/urfave/cli"

var (
	dueAtStr  string
	dueInStr  string
	noRemind  bool
	dueOnly   bool
	restoreId int64
)

var dueFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "at, a",
		Usage:       `absolute reminder time, format "YYYY-MM-DD HH:MM" (local time)`,
		Destination: &dueAtStr,
	},
	cli.StringFlag{
		Name:        "in, i",
		Usage:       "relative reminder delay, e.g. 2h, 30m or 1h30m",
		Destination: &dueInStr,
	},
	cli.BoolFlag{
		Name:        "no-remind, n",
		Usage:       "save the due time without arming a reminder (default: false)",
		Destination: &noRemind,
	},
}

var (
	addFlags  = dueFlags
	editFlags = dueFlags
)

var restoreFlags = append([]cli.Flag{
	cli.Int64Flag{
		Name:        "id",
		Usage:       "id the note had before deletion",
		Destination: &restoreId,
	},
}, dueFlags...)

var listFlags = []cli.Flag{
	cli.BoolFlag{
		Name:        "due-only, d",
		Usage:       "use this flag to list only notes with a reminder (default: false)",
		Destination: &dueOnly,
	},
}
