// cmd/scope/main.go
package main

import (
	"errors"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-radar-scope/internal/app"
	"go-radar-scope/internal/audio"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/logging"
	"go-radar-scope/internal/metrics"
	"go-radar-scope/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.ConfigFileName)
	flag.Parse()

	settings, err := config.LoadOrDefaults(*configDir)
	logger := logging.New(settings.LogLevel, os.Stderr)
	switch {
	case errors.Is(err, config.ErrNoConfigFile):
		logger.Warn().Err(err).Str("dir", *configDir).Msg("Config")
	case err != nil:
		logger.Error().Err(err).Str("dir", *configDir).Msg("Bad config, using defaults")
	}

	game := app.NewGame(settings, logger)
	logger = game.Logger()

	var collector *metrics.Collector
	if settings.Debug.Enabled {
		if collector, err = metrics.NewCollector(nil); err != nil {
			logger.Error().Err(err).Msg("Metrics disabled")
			collector = nil
		} else {
			collector.Subscribe(game.EventDispatcher)
		}
		go serveDebug(settings.Debug.Address, logger)
	}

	if settings.Audio.Enabled {
		player, err := audio.NewPlayer(audio.NewEbitenBackend(), settings.Audio.Volume, logger)
		if err != nil {
			logger.Error().Err(err).Msg("Audio disabled")
		} else {
			player.Subscribe(game.EventDispatcher)
			defer player.Close()
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	gameState := state.NewGameState(sm, game, collector)
	if settings.StartWithMenu {
		sm.SetState(state.NewMenuState(sm, gameState))
	} else {
		sm.SetState(gameState)
	}
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Radar Scope")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(appGame); err != nil {
		logger.Fatal().Err(err).Msg("Game loop failed")
	}
}

// serveDebug exposes pprof on the default mux and Prometheus metrics at /metrics.
func serveDebug(addr string, logger zerolog.Logger) {
	http.Handle("/metrics", promhttp.Handler())
	logger.Info().Str("addr", addr).Msg("Debug server listening")
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Error().Err(err).Msg("Debug server stopped")
	}
}
