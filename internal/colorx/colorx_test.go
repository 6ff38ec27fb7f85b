package colorx

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"long form", "#7b9726", "#7b9726", true},
		{"upper case", "#F22C40", "#f22c40", true},
		{"short form", "#fff", "#ffffff", true},
		{"missing hash", "7b9726", "", false},
		{"bad digits", "#gg0000", "", false},
		{"trailing non-hex", "#abcdeg", "", false},
		{"non-hex last digit", "#12345z", "", false},
		{"embedded space", "#ab cde", "", false},
		{"short form non-hex", "#ffz", "", false},
		{"too long", "#7b972600", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := Parse(tt.input)
			if !tt.ok {
				require.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Hex())
		})
	}
}

func mustParse(hex string) colorful.Color {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func TestHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ff0080", Hex(color.RGBA{R: 0xff, G: 0x00, B: 0x80, A: 0xff}))
	assert.Equal(t, "#1b1918", Hex(mustParse("#1b1918")))
}

func TestBrightenDarken(t *testing.T) {
	t.Parallel()

	seed := mustParse("#7b9726")
	l0, _, _ := seed.Lab()

	lb, _, _ := Brighten(seed, 1).Lab()
	ld, _, _ := Darken(seed, 1).Lab()
	assert.Greater(t, lb, l0)
	assert.Less(t, ld, l0)

	assert.Equal(t, "#ffffff", Brighten(seed, 100).Hex())
	assert.Equal(t, "#000000", Darken(seed, 100).Hex())
}

func TestDesaturate(t *testing.T) {
	t.Parallel()

	seed := mustParse("#f22c40")
	_, c0, _ := seed.Hcl()
	_, c1, _ := Desaturate(seed, 1).Hcl()
	assert.Less(t, c1, c0)

	// Fully desaturated colors are gray.
	gray := Desaturate(seed, 100)
	r, g, b := gray.RGB255()
	assert.InDelta(t, int(r), int(g), 2)
	assert.InDelta(t, int(g), int(b), 2)
}

func TestRamp(t *testing.T) {
	t.Parallel()

	ramp, err := Ramp("#407ee7")
	require.NoError(t, err)
	require.Equal(t, 3, ramp.Len())
	require.Equal(t, ModeLab, ramp.Mode())

	assert.Equal(t, "#407ee7", ramp.At(0.5).Hex())

	seedL, _, _ := mustParse("#407ee7").Lab()
	startL, _, _ := ramp.At(0).Lab()
	endL, _, _ := ramp.At(1).Lab()
	assert.Less(t, startL, seedL)
	assert.Greater(t, endL, seedL)
}

func TestRampInvalid(t *testing.T) {
	t.Parallel()

	_, err := Ramp("#xyz")
	require.ErrorIs(t, err, ErrInvalidColor)
}

func TestBlend(t *testing.T) {
	t.Parallel()

	require.Nil(t, Blend(5, mustParse("#000000")))
	require.Nil(t, Blend(0, mustParse("#000000"), mustParse("#ffffff")))

	out := Blend(5, mustParse("#000000"), mustParse("#ffffff"))
	require.Len(t, out, 5)
	assert.Equal(t, "#000000", Hex(out[0]))
	assert.Equal(t, "#ffffff", Hex(out[4]))

	out = Blend(7, mustParse("#000000"), mustParse("#808080"), mustParse("#ffffff"))
	require.Len(t, out, 7)
	assert.Equal(t, "#000000", Hex(out[0]))
	assert.Equal(t, "#808080", Hex(out[3]))
	assert.Equal(t, "#ffffff", Hex(out[6]))

	out = Blend(1, mustParse("#407ee7"), mustParse("#ffffff"))
	require.Len(t, out, 1)
	assert.Equal(t, "#407ee7", Hex(out[0]))
}
