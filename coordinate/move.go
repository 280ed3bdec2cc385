package coordinate

import "fmt"

// Move is one of the four cardinal directions an agent can walk.
type Move uint8

// The four move values, in the order the original lattice's enum declares
// them. Numeric order has no semantic weight beyond being stable.
const (
	East Move = iota
	South
	West
	North
)

// moveBytes is the 4-entry wire-format conversion table (spec.md §9,
// "Move encoding").
var moveBytes = [4]byte{East: 'e', South: 's', West: 'w', North: 'n'}

// Byte returns the single-byte wire representation of m.
func (m Move) Byte() byte {
	if int(m) >= len(moveBytes) {
		return 0
	}
	return moveBytes[m]
}

// String returns the single-character representation of m.
func (m Move) String() string {
	b := m.Byte()
	if b == 0 {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
	return string(b)
}

// ParseMove converts a single wire byte back into a Move. ok is false if b
// is not one of 'e', 's', 'w', 'n'.
func ParseMove(b byte) (m Move, ok bool) {
	switch b {
	case 'e':
		return East, true
	case 's':
		return South, true
	case 'w':
		return West, true
	case 'n':
		return North, true
	default:
		return 0, false
	}
}

// MovesToString renders a route as its wire-format byte string.
func MovesToString(route []Move) string {
	buf := make([]byte, len(route))
	for i, m := range route {
		buf[i] = m.Byte()
	}
	return string(buf)
}

// ParseRoute parses a wire-format byte string into a route. It returns an
// error naming the first unrecognized byte and its index.
func ParseRoute(s string) ([]Move, error) {
	route := make([]Move, len(s))
	for i := 0; i < len(s); i++ {
		m, ok := ParseMove(s[i])
		if !ok {
			return nil, fmt.Errorf("coordinate: invalid move byte %q at index %d", s[i], i)
		}
		route[i] = m
	}
	return route, nil
}
