package replay

import (
	"github.com/charmbracelet/log"
)

// Recorder saves finished runs. A nil store turns it into a no-op so games
// keep working without a database.
type Recorder struct {
	store  *Store
	logger *log.Logger
}

// NewRecorder creates a recorder writing to store and logging to logger.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{store: store, logger: logger}
}

// Record saves r and returns its ID, or 0 when nothing was saved.
// Failures are logged.
func (rec *Recorder) Record(r Run) int64 {
	if rec == nil || rec.store == nil {
		return 0
	}
	if len(r.Commands) == 0 {
		return 0
	}
	id, err := rec.store.SaveRun(r)
	if err != nil {
		rec.logger.Warn("could not save replay", "player", r.Player, "error", err)
		return 0
	}
	rec.logger.Debug("replay saved", "id", id, "player", r.Player, "score", r.Score, "commands", len(r.Commands))
	return id
}
