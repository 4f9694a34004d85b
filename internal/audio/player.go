// internal/audio/player.go
package audio

import (
	"fmt"

	"go-radar-scope/internal/event"

	"github.com/rs/zerolog"
)

// Voice is one playing sound.
type Voice interface {
	Play()
	Close() error
}

// Backend turns PCM into voices. The ebiten backend is the real one.
type Backend interface {
	NewVoice(pcm []byte) Voice
}

// Player plays cues on a single channel: a new cue cuts off the previous one.
type Player struct {
	backend Backend
	logger  zerolog.Logger
	pcm     map[Cue][]byte
	current Voice
	source  *event.Dispatcher
}

// NewPlayer pre-renders every cue at volume.
func NewPlayer(backend Backend, volume float64, logger zerolog.Logger) (*Player, error) {
	p := &Player{
		backend: backend,
		logger:  logger,
		pcm:     make(map[Cue][]byte, len(Cues)),
	}
	for _, cue := range Cues {
		data, err := Render(cue, volume)
		if err != nil {
			return nil, fmt.Errorf("audio init: %w", err)
		}
		p.pcm[cue] = data
	}
	return p, nil
}

// Play stops whatever is playing and starts cue.
func (p *Player) Play(cue Cue) {
	data, ok := p.pcm[cue]
	if !ok {
		return
	}
	if p.current != nil {
		if err := p.current.Close(); err != nil {
			p.logger.Warn().Err(err).Msg("Failed to stop previous cue")
		}
	}
	p.current = p.backend.NewVoice(data)
	p.current.Play()
}

var cueEvents = []event.EventType{event.Detection, event.Explosion, event.SelectionMade, event.RuleChanged, event.ScoreChanged}

// Subscribe attaches the player to the events that have a cue.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(p, cueEvents...)
	p.source = d
}

// Close detaches the player from its dispatcher and stops the playing cue.
func (p *Player) Close() error {
	if p.source != nil {
		for _, t := range cueEvents {
			p.source.Unsubscribe(t, p)
		}
		p.source = nil
	}
	if p.current == nil {
		return nil
	}
	err := p.current.Close()
	p.current = nil
	return err
}

func (p *Player) OnEvent(e event.Event) {
	if cue, ok := CueFor(e.Type); ok {
		p.Play(cue)
	}
}

// CueFor maps an event to its cue.
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.Detection:
		return CueDetection, true
	case event.Explosion:
		return CueExplosion, true
	case event.SelectionMade:
		return CueSelection, true
	case event.RuleChanged:
		return CueRuleChanged, true
	case event.ScoreChanged:
		return CueScoreChanged, true
	}
	return 0, false
}
