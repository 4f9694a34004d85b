// internal/ui/scope.go
package ui

import (
	"math"

	"go-radar-scope/internal/component"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/entity"
	"go-radar-scope/internal/types"
	"go-radar-scope/pkg/geom"
	"go-radar-scope/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Segment is one piece of a course line; Hot pieces cross the inner zone.
type Segment struct {
	From, To geom.Vec2
	Hot      bool
}

// CourseSegments projects an aircraft's course across the scope: the chord of
// the outer ring, split where it passes through the inner ring.
func CourseSegments(center, pos, dir geom.Vec2) []Segment {
	out1, out2, ok := geom.CircleLine(center, config.CourseOuter, pos, dir)
	if !ok {
		return nil
	}
	in1, in2, ok := geom.CircleLine(center, config.CourseInner, pos, dir)
	if !ok {
		return []Segment{{From: out1, To: out2}}
	}
	return []Segment{
		{From: out1, To: in1},
		{From: in1, To: in2, Hot: true},
		{From: in2, To: out2},
	}
}

// Visible reports whether an aircraft shows on the display: it has been
// spotted and is inside the sweep radius.
func Visible(a *component.Aircraft, pos, center geom.Vec2) bool {
	return a.Spotted && pos.Dist(center) <= config.SweepRange
}

// Cursor returns the bearing cursor: a thin triangle from the centre toward
// aim plus a range tick across it at dist.
func Cursor(center, aim geom.Vec2, dist float64) (tri []geom.Vec2, tick [2]geom.Vec2, ok bool) {
	norm, ok := aim.Sub(center).Normalize()
	if !ok {
		return nil, tick, false
	}
	side := norm.Perp()
	tip := center.Add(norm.Scale(config.EngageRadius))
	tri = []geom.Vec2{center, tip.Add(side.Scale(5)), tip.Sub(side.Scale(5))}
	mark := center.Add(norm.Scale(dist))
	tick = [2]geom.Vec2{mark.Add(side.Scale(dist * 0.02)), mark.Sub(side.Scale(dist * 0.02))}
	return tri, tick, true
}

// ScopeRenderer рисует радар и все сущности на нём.
type ScopeRenderer struct {
	ecs    *entity.ECS
	center geom.Vec2
	colors render.ScopeColors
}

func NewScopeRenderer(ecs *entity.ECS) *ScopeRenderer {
	return &ScopeRenderer{
		ecs:    ecs,
		center: geom.V(config.ScopeCenterX, config.ScopeCenterY),
		colors: render.ScopeColors{
			Background:  config.BackgroundColor,
			Scope:       config.ScopeColor,
			SweepTrail:  config.SweepTrailColor,
			Course:      config.CourseColor,
			CourseHot:   config.CourseHotColor,
			Aircraft:    config.AircraftColor,
			Selected:    config.SelectedColor,
			Authorized:  config.AuthorizedColor,
			Interceptor: config.InterceptorTint,
			Text:        config.TextLightColor,
		},
	}
}

// Draw paints the scope. mouse aims the bearing cursor when nothing is selected.
func (r *ScopeRenderer) Draw(screen *ebiten.Image, selected types.EntityID, mouse geom.Vec2, gameTime float64) {
	screen.Fill(r.colors.Background)
	r.drawCursor(screen, selected, mouse, gameTime)

	render.Disc(screen, r.center, 3, r.colors.Scope)
	render.Ring(screen, r.center, config.OuterRadius, 5, r.colors.Scope)
	render.Ring(screen, r.center, config.InnerRadius, 2, r.colors.Scope)
	if beam := r.ecs.Beam; beam != nil {
		render.Line(screen, r.center, r.center.Add(geom.FromAngle(beam.Angle()).Scale(beam.Range)), 1, r.colors.Scope)
		render.Line(screen, r.center, r.center.Add(geom.FromAngle(beam.TrailAngle()).Scale(beam.Range)), 1, r.colors.SweepTrail)
	}

	for _, id := range r.ecs.DrawOrder() {
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		switch r.ecs.KindOf(id) {
		case component.KindAircraft:
			r.drawAircraft(screen, id, pos.Vec2)
		case component.KindInterceptor:
			if vel, ok := r.ecs.Velocities[id]; ok {
				half := vel.Direction.Scale(config.InterceptorHalfLength)
				render.Line(screen, pos.Sub(half), pos.Add(half), 2, r.colors.Interceptor)
			}
		default:
			if rend, ok := r.ecs.Renderables[id]; ok {
				render.Disc(screen, pos.Vec2, rend.Radius, rend.Color)
			}
		}
	}
}

func (r *ScopeRenderer) drawCursor(screen *ebiten.Image, selected types.EntityID, mouse geom.Vec2, gameTime float64) {
	aim, dist := mouse, math.Abs(math.Sin(gameTime/200))*config.EngageRadius
	if pos, ok := r.ecs.Positions[selected]; ok && r.ecs.KindOf(selected) == component.KindAircraft {
		aim, dist = pos.Vec2, pos.Dist(r.center)+math.Sin(gameTime/100)*10
	}
	tri, tick, ok := Cursor(r.center, aim, dist)
	if !ok {
		return
	}
	render.Polyline(screen, tri, 1, r.colors.Scope)
	render.Line(screen, tick[0], tick[1], 1, r.colors.Scope)
}

func (r *ScopeRenderer) drawAircraft(screen *ebiten.Image, id types.EntityID, pos geom.Vec2) {
	a, ok := r.ecs.Aircraft[id]
	vel, hasVel := r.ecs.Velocities[id]
	if !ok || !hasVel || !Visible(a, pos, r.center) {
		return
	}

	if a.Recalled {
		render.Line(screen, pos, a.ReturnPoint, 1, render.DarkenColor(r.colors.Course))
	}
	if a.Selected {
		for _, seg := range CourseSegments(r.center, pos, vel.Direction) {
			clr := r.colors.Course
			if seg.Hot {
				clr = r.colors.CourseHot
			}
			render.Line(screen, seg.From, seg.To, 1, clr)
		}
	} else {
		render.Line(screen, pos, pos.Add(vel.Direction.Scale(20)), 1, r.colors.Course)
	}

	dot := r.colors.Aircraft
	if a.Selected {
		dot = r.colors.Selected
	}
	render.Disc(screen, pos, 2.5, dot)
	if a.Authorized {
		render.Ring(screen, pos, config.AuthorizedRingSize, 2, r.colors.Authorized)
	}
}
