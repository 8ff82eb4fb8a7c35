package notify

import (
	"github.com/noteping/noteping/pkg/logger"
)

// LogPresenter writes reminders to the daemon log. Used on headless
// hosts where no notification service is reachable, so a fired reminder
// still leaves a trace.
type LogPresenter struct {
	log       logger.Logger
	onSummary func()
}

func NewLogPresenter(l logger.Logger, onSummary func()) *LogPresenter {
	return &LogPresenter{log: l, onSummary: onSummary}
}

func (p *LogPresenter) ShowReminder(noteId int64, text string) error {
	p.log.Info("reminder: note %d due: %s", noteId, text)
	return nil
}

func (p *LogPresenter) RefreshSummary() {
	if p.onSummary != nil {
		p.onSummary()
	}
}

var _ Presenter = (*LogPresenter)(nil)
