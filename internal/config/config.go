// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/spf13/viper"
)

const (
	ScreenWidth  = 600
	ScreenHeight = 500
	PanelX       = ScreenWidth - 100 // HUD column starts here
	MaxDeltaTime = 0.06

	TPS    = 60
	TickMs = 1000.0 / TPS
	// MaxTicksPerUpdate bounds catch-up after a stall.
	MaxTicksPerUpdate = 5

	// Play area: aircraft leaving it have escaped.
	PlayWidth  = ScreenWidth * 0.85
	PlayHeight = ScreenHeight

	ScopeCenterX = ScreenWidth/2 - 50
	ScopeCenterY = ScreenHeight / 2
	OuterRadius  = ScreenHeight / 2
	InnerRadius  = ScreenHeight / 4 // CENTER zone boundary
	CourseOuter  = (ScreenWidth - 100) / 2
	CourseInner  = (ScreenWidth - 100) / 4

	// Radar sweep
	SweepRange  = 245.0
	SweepPeriod = 1200.0 // ms of beam travel per radian
	SweepTrail  = 200.0  // ms between leading and trailing ray

	// Aircraft
	AircraftMaxSpeed   = 1.0 / 6
	AircraftMinSpeed   = 0.02
	CivilShare         = 0.8
	RecallShare        = 0.65
	RecallSteer        = 0.001
	SelectRadius       = 10.0
	SpawnMargin        = 100.0
	EngageRadius       = 250.0 // bearing cursor length
	AuthorizedRingSize = 10.0

	// Interceptor
	InterceptorTimeScale  = 2.0
	CruiseAtMs            = 1000 * InterceptorTimeScale
	TerminalAtMs          = 2000 * InterceptorTimeScale
	SpentAtMs             = 4000 * InterceptorTimeScale
	BoostSpeed            = 0.5
	TerminalSpeed         = 0.35 / 2
	FastEase              = 0.04
	SlowEase              = 0.0035
	DetonateSpeed         = 0.05
	ProximityFuse         = 5.0
	SmokeIntervalMs       = 50.0
	SmokeOffset           = 5.0
	SmokeMinLifeMs        = 2000
	SmokeMaxLifeMs        = 5000
	InterceptorHalfLength = 5.0

	// Blast
	BlastRadius     = 10.0
	BlastDecay      = 1.1
	BlastMinRadius  = 0.1
	DebrisCount     = 25
	DebrisSpread    = 20.0
	DebrisMinRadius = 2
	DebrisMaxRadius = 5
	DebrisMinLifeMs = 3500
	DebrisMaxLifeMs = 6000
	SmokeDrift      = 0.125
	BlipRadius      = 15.0
	BlipShrink      = 0.35
	BlipMinRadius   = 1.0
	BlipLifetimeMs  = 1000.0
	ShadeMin        = 140
	ShadeMax        = 240

	// Scoring
	ScoreEscape           = 10
	ScoreEscapeAuthorized = 25
	ScoreRecalled         = 30
	ScoreKillCivil        = 10
	ScoreKillArmy         = 25
	PenaltyKillCivil      = 25
	PenaltyKillArmy       = 60

	// Rules
	RuleCandidateAttempts = 16
	RuleAddShare          = 0.7
	RuleGrowUntil         = 5

	ConfigFileName = "scope.cfg.json"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	ScopeColor      = color.RGBA{0, 150, 0, 255}
	SweepTrailColor = color.RGBA{0, 50, 0, 255}
	CourseColor     = color.RGBA{0, 200, 0, 255}
	CourseHotColor  = color.RGBA{200, 0, 0, 255}
	AircraftColor   = color.RGBA{0, 255, 0, 255}
	SelectedColor   = color.RGBA{255, 255, 255, 255}
	AuthorizedColor = color.RGBA{255, 0, 0, 255}
	InterceptorTint = color.RGBA{160, 160, 160, 255}
	BlastColor      = color.RGBA{255, 165, 0, 255}
	BlipColor       = color.RGBA{0, 255, 0, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	PauseShade      = color.RGBA{0, 0, 0, 128}
)

// Settings are the runtime tunables read from the config file.
type Settings struct {
	LogLevel      string `mapstructure:"logLevel"`
	Seed          int64  `mapstructure:"seed"`
	StartWithMenu bool   `mapstructure:"startWithMenu"`

	Debug struct {
		Enabled bool   `mapstructure:"enabled"`
		Address string `mapstructure:"address"`
	} `mapstructure:"debug"`

	Audio struct {
		Enabled bool    `mapstructure:"enabled"`
		Volume  float64 `mapstructure:"volume"`
	} `mapstructure:"audio"`

	Director DirectorSettings `mapstructure:"director"`

	Rules struct {
		MaxAuto  int `mapstructure:"maxAuto"`
		Capacity int `mapstructure:"capacity"`
	} `mapstructure:"rules"`
}

// DirectorSettings drive spawn and rule churn cadence, all in simulated ms.
type DirectorSettings struct {
	SpawnMinMs  int `mapstructure:"spawnMinMs"`
	SpawnMaxMs  int `mapstructure:"spawnMaxMs"`
	RuleMinMs   int `mapstructure:"ruleMinMs"`
	RuleMaxMs   int `mapstructure:"ruleMaxMs"`
	FirstRuleMs int `mapstructure:"firstRuleMs"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("startWithMenu", false)

	v.SetDefault("debug.enabled", false)
	v.SetDefault("debug.address", "localhost:6060")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.2)

	v.SetDefault("director.spawnMinMs", 5000)
	v.SetDefault("director.spawnMaxMs", 15000)
	v.SetDefault("director.ruleMinMs", 30000)
	v.SetDefault("director.ruleMaxMs", 60000)
	v.SetDefault("director.firstRuleMs", 2500)

	v.SetDefault("rules.maxAuto", 10)
	v.SetDefault("rules.capacity", 15)
}

// ErrNoConfigFile is returned alongside default settings when configDir has no config file.
var ErrNoConfigFile = errors.New("config file not found, using defaults")

// Load reads configuration from the JSON file in configDir on top of the
// defaults. A missing file is not fatal: the defaults are returned together
// with ErrNoConfigFile.
func Load(configDir string) (Settings, error) {
	setDefaults(viper.GetViper())

	viper.SetConfigName(ConfigFileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	var missing error
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
		missing = ErrNoConfigFile
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, missing
}

// Defaults returns the built-in settings. It reads none of the global viper
// state, so a bad config file cannot leak into it.
func Defaults() Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	_ = v.Unmarshal(&s)
	return s
}

// LoadOrDefaults is Load that always yields usable settings: on any error
// other than a missing file it returns Defaults together with that error.
func LoadOrDefaults(configDir string) (Settings, error) {
	s, err := Load(configDir)
	if err != nil && !errors.Is(err, ErrNoConfigFile) {
		return Defaults(), err
	}
	return s, err
}

// Validate rejects inverted intervals and impossible rule capacities.
func (s Settings) Validate() error {
	d := s.Director
	if d.SpawnMinMs <= 0 || d.SpawnMaxMs < d.SpawnMinMs {
		return fmt.Errorf("invalid spawn interval [%d, %d]", d.SpawnMinMs, d.SpawnMaxMs)
	}
	if d.RuleMinMs <= 0 || d.RuleMaxMs < d.RuleMinMs {
		return fmt.Errorf("invalid rule interval [%d, %d]", d.RuleMinMs, d.RuleMaxMs)
	}
	if s.Rules.MaxAuto <= RuleGrowUntil || s.Rules.Capacity < s.Rules.MaxAuto {
		return fmt.Errorf("invalid rule limits maxAuto=%d capacity=%d", s.Rules.MaxAuto, s.Rules.Capacity)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v out of [0, 1]", s.Audio.Volume)
	}
	return nil
}
