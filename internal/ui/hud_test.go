package ui

import (
	"math"
	"testing"

	"go-radar-scope/internal/component"
	"go-radar-scope/internal/defs"
	"go-radar-scope/pkg/geom"

	"github.com/stretchr/testify/assert"
)

func TestScoreText(t *testing.T) {
	assert.Equal(t, "S:0000000000", ScoreText(0))
	assert.Equal(t, "S:0000000125", ScoreText(125))
	assert.Equal(t, "S:-000000035", ScoreText(-35))
}

func TestBearingText(t *testing.T) {
	assert.Equal(t, "B:090", BearingText(0))
	assert.Equal(t, "B:000", BearingText(-math.Pi/2))
	assert.Equal(t, "B:270", BearingText(math.Pi))
}

func TestReadoutLines(t *testing.T) {
	a := &component.Aircraft{Country: "FR", Purpose: defs.PurposeArmy, Identifier: 42}
	lines := ReadoutLines(a, geom.V(12.7, 7.2), component.Velocity{Direction: geom.V(0, -1), Speed: 0.25})

	assert.Equal(t, []string{
		"FR-00042",
		"P:[ 12, 007]",
		"V:[0000, -025]",
		"C:ARMY",
	}, lines)
}

func TestRuleLines(t *testing.T) {
	assert.Equal(t, []string{noFlyHeading}, RuleLines(nil))
	lines := RuleLines([]defs.Rule{
		{Country: "FR", Purpose: defs.PurposeAll, Zone: defs.ZoneCenter},
		{Country: "DE", Purpose: defs.PurposeCivil, Zone: defs.ZoneAll},
	})
	assert.Equal(t, []string{noFlyHeading, "FR.ALL.CENTER", "DE.CIVIL.ALL"}, lines)
}
