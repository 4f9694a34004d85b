// internal/audio/ebiten.go
package audio

import "github.com/hajimehoshi/ebiten/v2/audio"

// EbitenBackend plays PCM through ebiten's audio context.
type EbitenBackend struct {
	ctx *audio.Context
}

// NewEbitenBackend creates the process-wide audio context. It must be
// called at most once.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{ctx: audio.NewContext(int(SampleRate))}
}

func (b *EbitenBackend) NewVoice(pcm []byte) Voice {
	return b.ctx.NewPlayerFromBytes(pcm)
}
