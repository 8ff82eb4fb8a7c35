package cmd

import (
	"fmt"
	"time"

	"github.com/noteping/noteping/common"
)

// formatDue renders an epoch-millisecond due time for terminal output.
func formatDue(dueAt *int64) string {
	if dueAt == nil {
		return "-"
	}
	return time.UnixMilli(*dueAt).Local().Format(dueAtLayout)
}

func printNote(n *common.NoteInfo) {
	fmt.Printf("%d\t%s\t%s\n", n.Id, formatDue(n.DueAt), n.Text)
}
