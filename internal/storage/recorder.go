package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Recorder logs finished rounds and saves them to the journal.
// Both Store and Logger are optional.
type Recorder struct {
	Store  *Store
	Logger *log.Logger
	GameID string
	Player string
}

// Record handles one finished round. A failed save is logged and
// otherwise ignored so play can continue.
func (r Recorder) Record(res core.RoundResult) {
	if r.Logger != nil {
		r.Logger.Info("round finished",
			"game", r.GameID,
			"player", r.Player,
			"outcome", res.Outcome,
			"ticks", res.Ticks,
			"cleared", res.Cleared,
			"seed", res.Seed,
		)
	}

	if r.Store == nil {
		return
	}
	_, err := r.Store.SaveRound(Round{
		GameID:  r.GameID,
		Player:  r.Player,
		Outcome: res.Outcome,
		Ticks:   res.Ticks,
		Cleared: res.Cleared,
		Seed:    res.Seed,
	})
	if err != nil && r.Logger != nil {
		r.Logger.Warn("could not save round", "error", err)
	}
}
