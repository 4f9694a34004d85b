package component

// GameState — компонент для хранения состояния игры
type GameState int

const (
	RunningState GameState = iota
	PausedState
)
