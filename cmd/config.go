package cmd

const DESCRIPTION = `
Noteping is a small personal note keeper with reminders that
actually fire. Notes live in a local database owned by a
background daemon; a note saved with a due time pings you with
a desktop notification when that time arrives, even if the
daemon was restarted in between.
`

const (
	AddDescription = `The add command saves a new note. Pass the note text as
the argument and optionally attach a reminder with --at
or --in.

Example:
        noteping add "water the plants" --at "2026-09-01 18:00"
        noteping add "stretch" --in 45m

`
	EditDescription = `The edit command rewrites an existing note's text and
reminder. The note id comes first, then the new text.
Omitting --at and --in removes any pending reminder.

Example:
        noteping edit 3 "water the plants twice" --in 2h

`
	RemoveDescription = `The rm command deletes a note by id. A pending reminder
for the note is released; a reminder already in flight may
still be presented.

Example:
        noteping rm 3

`
	RestoreDescription = `The restore command re-saves a previously deleted note.
The note may come back under a new id, which is printed.
A future due time is re-armed on the new id.

Example:
        noteping restore 3 "water the plants" --at "2026-09-01 18:00"

`
	ListDescription = `The list command displays saved notes along with their
ids and due times. Use --due-only to restrict the listing
to notes carrying a reminder.

Example:
        noteping list

`
	ShowDescription = `The show command prints a single note by id.

Example:
        noteping show 3

`
	NextDescription = `The next command prints the note with the earliest
upcoming reminder, the one the daemon will fire next.

Example:
        noteping next

`
	WatchDescription = `The watch command attaches to the daemon and streams
reminder events as they fire. Useful for widgets and
scripts that mirror the notification feed.

Example:
        noteping watch

`
)
