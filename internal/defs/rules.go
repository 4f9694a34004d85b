// internal/defs/rules.go
package defs

import "fmt"

// Purpose is the declared purpose of a flight, or the wildcard ALL in a rule.
type Purpose string

const (
	PurposeCivil Purpose = "CIVIL"
	PurposeArmy  Purpose = "ARMY"
	PurposeAll   Purpose = "ALL"
)

// Zone restricts a rule to part of the scope.
type Zone string

const (
	ZoneAll    Zone = "ALL"
	ZoneCenter Zone = "CENTER" // inner ring only
)

// Countries is the fixed roster every aircraft and rule draws from.
var Countries = []string{"DE", "IT", "PT", "SI", "FR", "CZ", "RF", "UK", "BY", "TY", "AZ", "KZ"}

// FlightPurposes are the purposes an aircraft may actually fly with.
var FlightPurposes = []Purpose{PurposeCivil, PurposeArmy}

// Zones lists every zone a rule may carry.
var Zones = []Zone{ZoneAll, ZoneCenter}

// Rule authorizes takedown of aircraft matching country, purpose and zone.
// Rules are values and never change after creation.
type Rule struct {
	Country string
	Purpose Purpose
	Zone    Zone
}

func (r Rule) String() string {
	return fmt.Sprintf("%s.%s.%s", r.Country, r.Purpose, r.Zone)
}

// Overlaps reports whether r and o would authorize the same aircraft in a
// common region: same country and purpose, with zones equal or either one ALL.
// The rule set refuses to hold two overlapping rules.
func (r Rule) Overlaps(o Rule) bool {
	if r.Country != o.Country || r.Purpose != o.Purpose {
		return false
	}
	return r.Zone == o.Zone || r.Zone == ZoneAll || o.Zone == ZoneAll
}

// Valid reports whether every field of r comes from its roster.
func (r Rule) Valid() bool {
	switch r.Purpose {
	case PurposeCivil, PurposeArmy, PurposeAll:
	default:
		return false
	}
	return IsCountry(r.Country) && (r.Zone == ZoneAll || r.Zone == ZoneCenter)
}

// IsCountry reports whether c is on the roster.
func IsCountry(c string) bool {
	for _, known := range Countries {
		if known == c {
			return true
		}
	}
	return false
}
