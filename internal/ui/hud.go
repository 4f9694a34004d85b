// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-radar-scope/internal/component"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/defs"
	"go-radar-scope/internal/entity"
	"go-radar-scope/internal/interfaces"
	"go-radar-scope/internal/utils"
	"go-radar-scope/pkg/geom"
	"go-radar-scope/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	hudTextX     = config.PanelX + 5
	hudLineStep  = 16
	hudRuleStep  = 20
	hudRulesTop  = 120
	hudReadoutY  = 40
	hudDividerW  = 4
	noFlyHeading = " NO-FLY LIST"
)

// ScoreText formats the score the way the panel shows it.
func ScoreText(score int) string {
	return fmt.Sprintf("S:%010d", score)
}

// BearingText shows the sweep bearing in compass degrees.
func BearingText(angle float64) string {
	return fmt.Sprintf("B:%03d", utils.Bearing(angle))
}

// ReadoutLines describes the selected aircraft: callsign, position,
// velocity (×100) and purpose.
func ReadoutLines(a *component.Aircraft, pos geom.Vec2, vel component.Velocity) []string {
	v := vel.Direction.Scale(vel.Speed * 100)
	return []string{
		fmt.Sprintf("%s-%05d", a.Country, a.Identifier),
		fmt.Sprintf("P:[%3d, %03d]", int(pos.X), int(pos.Y)),
		fmt.Sprintf("V:[%04d, %04d]", int(v.X), int(v.Y)),
		fmt.Sprintf("C:%s", a.Purpose),
	}
}

// RuleLines renders the no-fly list with its heading.
func RuleLines(rules []defs.Rule) []string {
	lines := make([]string, 0, len(rules)+1)
	lines = append(lines, noFlyHeading)
	for _, r := range rules {
		lines = append(lines, r.String())
	}
	return lines
}

// HUD — правая панель: счёт, выбранный самолёт и список запретов.
type HUD struct {
	ecs *entity.ECS
}

func NewHUD(ecs *entity.ECS) *HUD {
	return &HUD{ecs: ecs}
}

func (h *HUD) Draw(screen *ebiten.Image, view interfaces.ScopeView) {
	left := geom.V(config.PanelX, 0)
	render.Line(screen, left, geom.V(config.PanelX, config.ScreenHeight), hudDividerW, config.ScopeColor)
	render.Line(screen, geom.V(config.PanelX, 32), geom.V(config.ScreenWidth, 32), hudDividerW, config.ScopeColor)
	render.Line(screen, geom.V(config.PanelX, 112), geom.V(config.ScreenWidth, 112), hudDividerW, config.ScopeColor)

	render.Label(screen, ScoreText(view.ScoreValue()), hudTextX, 8, config.TextLightColor)

	if id, ok := view.Selected(); ok {
		a, hasA := h.ecs.Aircraft[id]
		pos, hasPos := h.ecs.Positions[id]
		vel, hasVel := h.ecs.Velocities[id]
		if hasA && hasPos && hasVel {
			for i, line := range ReadoutLines(a, pos.Vec2, *vel) {
				render.Label(screen, line, hudTextX, hudReadoutY+i*hudLineStep, config.TextLightColor)
			}
		}
	}

	if beam := h.ecs.Beam; beam != nil {
		render.Label(screen, BearingText(beam.Angle()), hudTextX, config.ScreenHeight-hudLineStep-4, config.TextLightColor)
	}

	for i, line := range RuleLines(view.ActiveRules()) {
		render.Label(screen, line, hudTextX, hudRulesTop+i*hudRuleStep, config.TextLightColor)
	}
}
