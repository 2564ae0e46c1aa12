package model

import (
	"slices"

	"github.com/leighmacdonald/review-tui/internal/ui/input"
)

var (
	GoodZones = KeyZoneGroup{KZgoodTable, KZdetail, KZfilters} //nolint:gochecknoglobals
	BadZones  = KeyZoneGroup{KZbadTable, KZdetail, KZfilters}  //nolint:gochecknoglobals
)

// KeyZone defines the distinct areas of the ui in which the keyboard can be interacted with.
// Only one zone, with the addition of the default global zone, will be active at any one time.
type KeyZone int

const (
	KZgoodTable KeyZone = iota
	KZbadTable
	KZdetail
	KZfilters
	KZconfigInput
)

// Zones returns the zones reachable within a section.
func Zones(section Section) KeyZoneGroup {
	if section == SectionBad {
		return BadZones
	}

	return GoodZones
}

type KeyZoneGroup []KeyZone

func (z KeyZoneGroup) Next(current KeyZone, dir input.Direction) KeyZone {
	index := slices.Index(z, current)
	if index == -1 {
		return z[0]
	}

	switch dir { //nolint:exhaustive
	case input.Left:
		// Wrap into the last entry
		if index-1 < 0 {
			return z[len(z)-1]
		}

		return z[index-1]
	case input.Right:
		// Wrap into the first entry
		if index+1 >= len(z) {
			return z[0]
		}

		return z[index+1]
	default:
		return current
	}
}

func (z KeyZoneGroup) Contains(zone KeyZone) bool {
	return slices.Contains(z, zone)
}
