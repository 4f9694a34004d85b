// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the scope: menu, running scope or pause overlay.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущий экран и переключает паузу симуляции
// вместе с экраном, чтобы они не расходились.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current returns the active screen, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState exits the active screen and enters next. nil leaves the machine idle.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Pause freezes the simulation behind scene and covers it with the pause overlay.
func (sm *StateMachine) Pause(scene *GameState) {
	scene.Game().Pause()
	sm.SetState(NewPauseState(sm, scene))
}

// Resume unfreezes the simulation and brings scene back.
func (sm *StateMachine) Resume(scene *GameState) {
	scene.Game().Resume()
	sm.SetState(scene)
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
