package blend

import (
	"image/color"
	"testing"

	"github.com/dkoosis/gloss/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = style.Color("#ff0000")
	green = style.Color("#00ff00")
	blue  = style.Color("#0000ff")
	white = style.Color("#ffffff")
)

func TestBlend1D(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		steps int
		stops []color.Color
		len   int
	}{
		{name: "two stops", steps: 5, stops: []color.Color{red, blue}, len: 5},
		{name: "three stops", steps: 7, stops: []color.Color{red, green, blue}, len: 7},
		{name: "steps below stops", steps: 1, stops: []color.Color{red, green, blue}, len: 3},
		{name: "nil stops ignored", steps: 4, stops: []color.Color{nil, red, nil, blue}, len: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Blend1D(tt.steps, tt.stops...)
			require.Len(t, got, tt.len)
			assert.Equal(t, "#ff0000", got[0].Hex())
			assert.Equal(t, "#0000ff", got[len(got)-1].Hex())
		})
	}
}

func TestBlend1D_HitsInteriorStops(t *testing.T) {
	t.Parallel()

	got := Blend1D(5, red, green, blue)
	require.Len(t, got, 5)
	assert.Equal(t, "#00ff00", got[2].Hex())

	exact := Blend1D(3, red, green, blue)
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, hexes(exact))
}

func TestBlend1D_Degenerate(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Blend1D(4))
	assert.Empty(t, Blend1D(4, nil))

	single := Blend1D(3, red)
	assert.Equal(t, []string{"#ff0000", "#ff0000", "#ff0000"}, hexes(single))
}

func TestBlend2D(t *testing.T) {
	t.Parallel()

	horizontal := Blend2D(4, 2, 0, red, blue)
	require.Len(t, horizontal, 8)
	for y := range 2 {
		assert.Equal(t, "#ff0000", horizontal[y*4].Hex())
		assert.Equal(t, "#0000ff", horizontal[y*4+3].Hex())
	}

	vertical := Blend2D(3, 3, 90, red, blue)
	require.Len(t, vertical, 9)
	for x := range 3 {
		assert.Equal(t, "#ff0000", vertical[x].Hex())
		assert.Equal(t, "#0000ff", vertical[6+x].Hex())
	}

	reversed := Blend2D(4, 1, 180, red, blue)
	assert.Equal(t, "#0000ff", reversed[0].Hex())
	assert.Equal(t, "#ff0000", reversed[3].Hex())

	assert.Equal(t, Blend2D(4, 1, 0, red, blue), Blend2D(4, 1, 360, red, blue))
	assert.Len(t, Blend2D(0, -1, 45, red, blue), 1)
	assert.Empty(t, Blend2D(2, 2, 0))
}

func TestGradient(t *testing.T) {
	t.Parallel()

	got := Gradient("#000000", "#ffffff", 3)
	require.Len(t, got, 3)
	assert.Equal(t, "#000000", got[0].Hex())
	assert.Equal(t, "#ffffff", got[2].Hex())
	assert.InDelta(t, got[1].R, got[1].G, 1)
	assert.InDelta(t, got[1].G, got[1].B, 1)
	assert.Greater(t, got[1].R, uint8(0x40))
	assert.Less(t, got[1].R, uint8(0xc0))

	assert.Equal(t, []string{"#000000"}, hexes(Gradient("nope", "#ffffff", 1)))
	assert.Empty(t, Gradient("#000000", "#ffffff", 0))

	assert.Equal(t, Gradient("#ff0000", "#0000ff", 6), GradientRGB(red, blue, 6))
}

func TestBilinearInterpolationGrid(t *testing.T) {
	t.Parallel()

	grid := BilinearInterpolationGrid(3, 2, red, blue, green, white)
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 3)
	assert.Equal(t, "#ff0000", grid[0][0].Hex())
	assert.Equal(t, "#0000ff", grid[0][2].Hex())
	assert.Equal(t, "#00ff00", grid[1][0].Hex())
	assert.Equal(t, "#ffffff", grid[1][2].Hex())

	assert.Nil(t, BilinearInterpolationGrid(0, 2, red, blue, green, white))
}

func TestTransforms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, style.RGBColor{R: 41, G: 57, B: 73}, Lighten(style.Color("#102030"), 0.1))
	assert.Equal(t, style.RGBColor{R: 255, G: 255, B: 255}, Lighten(style.Color("#f0f0f0"), 2))
	assert.Equal(t, style.RGBColor{R: 0x40, G: 0x20, B: 0x10}, Darken(style.Color("#804020"), 0.5))
	assert.Equal(t, style.RGBColor{R: 0x80, G: 0x40, B: 0x20}, Darken(style.Color("#804020"), -1))
	assert.Equal(t, style.RGBColor{R: 0, G: 255, B: 255}, Complementary(red))
	assert.Equal(t, color.NRGBA{R: 255, A: 127}, Alpha(red, 0.5))
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, Alpha(blue, 3))
}

func hexes(cs []style.RGBColor) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Hex()
	}
	return out
}
