// internal/system/score.go
package system

import (
	"go-radar-scope/internal/event"
	"go-radar-scope/pkg/utils"
)

// ScoreLedger accumulates signed score deltas. Callers pass magnitudes; the
// sign is decided by the method, never by the argument.
type ScoreLedger struct {
	value           int
	eventDispatcher *event.Dispatcher
}

func NewScoreLedger(eventDispatcher *event.Dispatcher) *ScoreLedger {
	return &ScoreLedger{eventDispatcher: eventDispatcher}
}

// Add increases the score by |v|.
func (l *ScoreLedger) Add(v int) {
	l.apply(utils.Abs(v))
}

// Sub decreases the score by |v|.
func (l *ScoreLedger) Sub(v int) {
	l.apply(-utils.Abs(v))
}

// Value returns the current score.
func (l *ScoreLedger) Value() int {
	return l.value
}

func (l *ScoreLedger) apply(delta int) {
	l.value += delta
	if l.eventDispatcher != nil {
		l.eventDispatcher.Dispatch(event.Event{
			Type: event.ScoreChanged,
			Data: event.ScoreDelta{Delta: delta, Total: l.value},
		})
	}
}
