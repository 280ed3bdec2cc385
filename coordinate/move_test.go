package coordinate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxellath/coordinate"
)

func TestMove_ByteAndString(t *testing.T) {
	cases := []struct {
		move coordinate.Move
		want byte
	}{
		{coordinate.East, 'e'},
		{coordinate.South, 's'},
		{coordinate.West, 'w'},
		{coordinate.North, 'n'},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.move.Byte())
		require.Equal(t, string(tc.want), tc.move.String())
	}
}

func TestParseMove(t *testing.T) {
	m, ok := coordinate.ParseMove('e')
	require.True(t, ok)
	require.Equal(t, coordinate.East, m)

	_, ok = coordinate.ParseMove('x')
	require.False(t, ok)
}

func TestRouteRoundTrip(t *testing.T) {
	route := []coordinate.Move{coordinate.East, coordinate.East, coordinate.South, coordinate.North}
	s := coordinate.MovesToString(route)
	require.Equal(t, "eesn", s)

	parsed, err := coordinate.ParseRoute(s)
	require.NoError(t, err)
	require.Equal(t, route, parsed)
}

func TestParseRoute_InvalidByte(t *testing.T) {
	_, err := coordinate.ParseRoute("eex")
	require.Error(t, err)
}
