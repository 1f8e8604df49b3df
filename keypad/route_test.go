package keypad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/padchain/core"
	"github.com/katalvlaran/padchain/keypad"
)

func TestCost(t *testing.T) {
	cases := []struct {
		name  string
		route keypad.Route
		want  int
	}{
		{"Empty", keypad.Route{}, 0},
		{"SingleLeft", keypad.Route{keypad.Left}, 0},
		{"SingleRight", keypad.Route{keypad.Right}, 1},
		// one turn (100) + Up 5,4,3 + Left 3,4
		{"UpsThenLefts", keypad.Route{keypad.Up, keypad.Up, keypad.Up, keypad.Left, keypad.Left}, 119},
		// one turn (100) + Right 3 + Up 2,1
		{"RightThenUps", keypad.Route{keypad.Right, keypad.Up, keypad.Up}, 106},
		// two turns (200) + Down 0 + Left 1 + Right 1
		{"Zigzag", keypad.Route{keypad.Down, keypad.Left, keypad.Right}, 202},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keypad.Cost(tc.route))
			// pure: a second call agrees
			assert.Equal(t, keypad.Cost(tc.route), keypad.Cost(tc.route))
		})
	}
}

func TestCost_PrefersLeftDownFirst(t *testing.T) {
	leftFirst := keypad.Route{keypad.Left, keypad.Up}
	upFirst := keypad.Route{keypad.Up, keypad.Left}
	assert.Less(t, keypad.Cost(leftFirst), keypad.Cost(upFirst))

	straight := keypad.Route{keypad.Up, keypad.Up, keypad.Left, keypad.Left}
	zigzag := keypad.Route{keypad.Up, keypad.Left, keypad.Up, keypad.Left}
	assert.Less(t, keypad.Cost(straight), keypad.Cost(zigzag))
}

func TestShortestPath_Numeric(t *testing.T) {
	g := keypad.Graph(keypad.VariantNumeric)

	r, err := keypad.ShortestPath(g, keypad.KeySubmit, keypad.KeySubmit)
	require.NoError(t, err)
	assert.Empty(t, r)

	r, err = keypad.ShortestPath(g, keypad.Key0, keypad.Key9)
	require.NoError(t, err)
	assert.Len(t, r, 4)

	r, err = keypad.ShortestPath(g, keypad.KeySubmit, keypad.Key7)
	require.NoError(t, err)
	assert.Equal(t, keypad.Route{keypad.Up, keypad.Up, keypad.Up, keypad.Left, keypad.Left}, r)

	// Going left first from A would cross the gap under 1.
	r, err = keypad.ShortestPath(g, keypad.Key7, keypad.KeySubmit)
	require.NoError(t, err)
	assert.Equal(t, ">>vvv", r.String())
}

func TestShortestPath_Directional(t *testing.T) {
	g := keypad.Graph(keypad.VariantDirectional)
	want := map[keypad.Key]map[keypad.Key]string{
		keypad.KeyUp:     {keypad.KeyUp: "", keypad.KeySubmit: ">", keypad.KeyLeft: "v<", keypad.KeyDown: "v", keypad.KeyRight: "v>"},
		keypad.KeySubmit: {keypad.KeyUp: "<", keypad.KeySubmit: "", keypad.KeyLeft: "v<<", keypad.KeyDown: "v<", keypad.KeyRight: "v"},
		keypad.KeyLeft:   {keypad.KeyUp: ">^", keypad.KeySubmit: ">>^", keypad.KeyLeft: "", keypad.KeyDown: ">", keypad.KeyRight: ">>"},
		keypad.KeyDown:   {keypad.KeyUp: "^", keypad.KeySubmit: ">^", keypad.KeyLeft: "<", keypad.KeyDown: "", keypad.KeyRight: ">"},
		keypad.KeyRight:  {keypad.KeyUp: "<^", keypad.KeySubmit: "^", keypad.KeyLeft: "<<", keypad.KeyDown: "<", keypad.KeyRight: ""},
	}
	for from, row := range want {
		for to, route := range row {
			r, err := keypad.ShortestPath(g, from, to)
			require.NoError(t, err)
			assert.Equal(t, route, r.String(), "%s→%s", from, to)
		}
	}
}

// TestShortestPath_ReplayIsSimplePath checks, for every key pair of both
// keypads, that the route ends on the target and never revisits a key.
func TestShortestPath_ReplayIsSimplePath(t *testing.T) {
	for _, v := range []keypad.Variant{keypad.VariantNumeric, keypad.VariantDirectional} {
		g := keypad.Graph(v)
		for _, from := range v.Keys() {
			for _, to := range v.Keys() {
				r, err := keypad.ShortestPath(g, from, to)
				require.NoError(t, err)

				end, err := r.Replay(g, from)
				require.NoError(t, err)
				assert.Equal(t, to, end, "%s %s→%s", v, from, to)

				seen := map[keypad.Key]bool{from: true}
				at := from
				for i := range r {
					at, err = r[i : i+1].Replay(g, at)
					require.NoError(t, err)
					assert.False(t, seen[at], "%s %s→%s revisits %s", v, from, to, at)
					seen[at] = true
				}
			}
		}
	}
}

func TestShortestPath_Errors(t *testing.T) {
	g := keypad.Graph(keypad.VariantDirectional)

	_, err := keypad.ShortestPath(g, keypad.Key7, keypad.Key7)
	assert.ErrorIs(t, err, keypad.ErrInvalidKey)
	_, err = keypad.ShortestPath(g, keypad.KeySubmit, keypad.Key7)
	assert.ErrorIs(t, err, keypad.ErrInvalidKey)

	split := core.NewGraph(core.WithDirected(true))
	require.NoError(t, split.AddVertex("A"))
	require.NoError(t, split.AddVertex("B"))
	_, err = keypad.ShortestPath(split, keypad.Key('A'), keypad.Key('B'))
	assert.ErrorIs(t, err, keypad.ErrNoRoute)
}

func TestEnumerateRoutes(t *testing.T) {
	g := keypad.Graph(keypad.VariantDirectional)

	routes, err := keypad.EnumerateRoutes(g, keypad.KeySubmit, keypad.KeySubmit)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Empty(t, routes[0])

	routes, err = keypad.EnumerateRoutes(g, keypad.KeyDown, keypad.KeySubmit)
	require.NoError(t, err)
	got := make([]string, len(routes))
	for i, r := range routes {
		got[i] = r.String()
	}
	assert.ElementsMatch(t, []string{">^", "^>"}, got)
	// East is explored before North.
	assert.Equal(t, ">^", got[0])
}

func TestRoute_ReplayIllegal(t *testing.T) {
	g := keypad.Graph(keypad.VariantNumeric)
	_, err := keypad.Route{keypad.Left, keypad.Left}.Replay(g, keypad.KeySubmit)
	assert.ErrorIs(t, err, keypad.ErrIllegalMove)

	_, err = keypad.Route{}.Replay(g, keypad.KeyUp)
	assert.ErrorIs(t, err, keypad.ErrInvalidKey)
}

func TestRoute_Keys(t *testing.T) {
	r := keypad.Route{keypad.Up, keypad.Down, keypad.Left, keypad.Right}
	assert.Equal(t, []keypad.Key{keypad.KeyUp, keypad.KeyDown, keypad.KeyLeft, keypad.KeyRight}, r.Keys())
	assert.Equal(t, "^v<>", r.String())
}

// TestShortestPath_HasMinimalLength checks that the cost model never trades
// extra moves for fewer turns on either layout.
func TestShortestPath_HasMinimalLength(t *testing.T) {
	for _, v := range []keypad.Variant{keypad.VariantNumeric, keypad.VariantDirectional} {
		g := keypad.Graph(v)
		for _, from := range v.Keys() {
			for _, to := range v.Keys() {
				r, err := keypad.ShortestPath(g, from, to)
				require.NoError(t, err)
				d, err := keypad.Distance(g, from, to)
				require.NoError(t, err)
				assert.Len(t, r, d, "%s %s→%s", v, from, to)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	g := keypad.Graph(keypad.VariantNumeric)
	d, err := keypad.Distance(g, keypad.KeySubmit, keypad.Key7)
	require.NoError(t, err)
	assert.Equal(t, 5, d)

	_, err = keypad.Distance(g, keypad.KeySubmit, keypad.KeyUp)
	assert.ErrorIs(t, err, keypad.ErrInvalidKey)

	split := core.NewGraph(core.WithDirected(true))
	require.NoError(t, split.AddVertex("A"))
	require.NoError(t, split.AddVertex("B"))
	_, err = keypad.Distance(split, keypad.Key('A'), keypad.Key('B'))
	assert.ErrorIs(t, err, keypad.ErrNoRoute)
}
