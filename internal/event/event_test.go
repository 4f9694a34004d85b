package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchRoutesByType(t *testing.T) {
	d := NewDispatcher()
	det := &recorder{}
	all := &recorder{}
	d.Subscribe(Detection, det)
	d.SubscribeAll(all, Detection, Explosion)

	d.Dispatch(Event{Type: Detection})
	d.Dispatch(Event{Type: Explosion})
	d.Dispatch(Event{Type: RuleChanged})

	assert.Len(t, det.got, 1)
	assert.Len(t, all.got, 2)
	assert.Equal(t, Explosion, all.got[1].Type)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(ScoreChanged, r)
	d.Unsubscribe(ScoreChanged, r)
	d.Unsubscribe(Paused, r)

	d.Dispatch(Event{Type: ScoreChanged, Data: ScoreDelta{Delta: 1, Total: 1}})
	assert.Empty(t, r.got)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(Resumed, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: Resumed})
	assert.Equal(t, 1, calls)
}
