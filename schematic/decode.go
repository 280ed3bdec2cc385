package schematic

import (
	"bufio"
	"bytes"
	"strconv"
)

// bitMask addresses the four cells packed into one hex digit, high bit
// first: 0b1000, 0b0100, 0b0010, 0b0001.
var bitMask = [4]byte{0b1000, 0b0100, 0b0010, 0b0001}

// Decode parses a .vox schematic body (the X Y Z header followed by Z
// layers of Y hex rows) into a Schematic. It does not look at any graph;
// classification is purely a function of each column's own solidity
// history. Whitespace between tokens may be any run of spaces, tabs, or
// newlines (spec.md §6).
func Decode(data []byte) (*Schematic, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Split(bufio.ScanWords)

	x, err := nextInt(scanner, "X extent")
	if err != nil {
		return nil, err
	}
	y, err := nextInt(scanner, "Y extent")
	if err != nil {
		return nil, err
	}
	z, err := nextInt(scanner, "Z extent")
	if err != nil {
		return nil, err
	}
	if x <= 0 || y <= 0 || z <= 0 {
		return nil, malformed("world extents must be positive, got %d %d %d", x, y, z)
	}
	rowWidth := (x + 3) / 4

	s := &Schematic{X: x, Y: y, Z: z, tags: make([][][]Tag, z)}
	// colState tracks each column's current tag across layers, reused
	// the way the original decoder reuses one layer-sized buffer.
	colState := make([][]Tag, y)
	for row := range colState {
		colState[row] = make([]Tag, x)
	}

	for layer := 0; layer < z; layer++ {
		tagLayer := make([][]Tag, y)
		for row := 0; row < y; row++ {
			token, err := nextToken(scanner, "row", layer, row)
			if err != nil {
				return nil, err
			}
			if len(token) != rowWidth {
				return nil, malformed("layer %d row %d: expected %d hex chars, got %d", layer, row, rowWidth, len(token))
			}
			solid, err := decodeSolidRow(token, x)
			if err != nil {
				return nil, err
			}
			tagLayer[row] = make([]Tag, x)
			for col := 0; col < x; col++ {
				switch {
				case solid[col]:
					colState[row][col] = SolidTag
				case layer == 0:
					// Layer 0 is the floor: raw solid/void marking,
					// not yet subject to the shift state machine.
					colState[row][col] = VoidTag
				case colState[row][col] != VoidTag:
					colState[row][col] >>= 1
				}
				tagLayer[row][col] = colState[row][col]
			}
		}
		s.tags[layer] = tagLayer
	}

	return s, nil
}

// decodeSolidRow expands a row of rowWidth hex characters into an
// x-length slice of solidity bits, high bit (0b1000) first within each
// character.
func decodeSolidRow(token string, x int) ([]bool, error) {
	solid := make([]bool, x)
	col := 0
	for _, c := range []byte(token) {
		v, err := hexVal(c)
		if err != nil {
			return nil, err
		}
		for _, mask := range bitMask {
			if col >= x {
				break
			}
			solid[col] = v&mask != 0
			col++
		}
	}
	return solid, nil
}

// hexVal converts one hex digit, matching the original decoder's
// "c <= '9' ? c - '0' : c - 'W'" scheme: digits 0-9 and lowercase a-f
// only.
func hexVal(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, malformed("invalid hex digit %q", c)
	}
}

func nextInt(scanner *bufio.Scanner, what string) (int, error) {
	if !scanner.Scan() {
		return 0, malformed("expected %s, reached end of input", what)
	}
	v, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, malformed("expected %s, got %q", what, scanner.Text())
	}
	return v, nil
}

func nextToken(scanner *bufio.Scanner, what string, layer, row int) (string, error) {
	if !scanner.Scan() {
		return "", malformed("expected %s for layer %d row %d, reached end of input", what, layer, row)
	}
	return scanner.Text(), nil
}
