package input

// Direction is a keyboard navigation direction within lists, option selectors and key zones.
type Direction int

const (
	Up Direction = iota //nolint:varnamelen
	Down
	Left
	Right
)

// Delta converts the direction into an index offset. Up and Left move backwards.
func (d Direction) Delta() int {
	switch d {
	case Up, Left:
		return -1
	default:
		return 1
	}
}
