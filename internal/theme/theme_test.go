package theme

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumosx/atelier/internal/colorx"
	"github.com/yumosx/atelier/internal/palette"
	"github.com/yumosx/atelier/internal/syntax"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	exitVal := m.Run()
	os.Exit(exitVal)
}

func TestForestDarkIdentity(t *testing.T) {
	t.Parallel()

	th, err := ForestDark()
	require.NoError(t, err)

	assert.Equal(t, "Atelier Forest Dark", th.Name)
	assert.Equal(t, AtelierMeta.Name+" Forest Dark", th.Name)
	assert.Equal(t, AtelierMeta.Author, th.Author)
	assert.Equal(t, AtelierMeta.License, th.License)
	assert.Equal(t, Dark, th.Appearance)
	assert.Equal(t, ForestDarkVariant, th.Variant())
}

func TestForestDarkNeutralEndpoints(t *testing.T) {
	t.Parallel()

	th, err := ForestDark()
	require.NoError(t, err)

	neutral := th.InputColor.Neutral
	require.Equal(t, 8, neutral.Len())
	assert.Equal(t, ForestDarkVariant.Get(palette.Base00), neutral.At(0).Hex())
	assert.Equal(t, ForestDarkVariant.Get(palette.Base07), neutral.At(1).Hex())
	assert.Equal(t, ForestDarkVariant.NeutralHexes(), neutral.Stops())
	assert.Equal(t, colorx.ModeRGB, neutral.Mode())
	assert.Equal(t, "#59524f", neutral.At(0.25).Hex())

	// Dark variants get lighter along the scale.
	prev := -1.0
	for _, c := range neutral.Colors(16) {
		l, _, _ := c.Lab()
		assert.Greater(t, l, prev)
		prev = l
	}
}

func TestForestDarkAccentRamps(t *testing.T) {
	t.Parallel()

	th, err := ForestDark()
	require.NoError(t, err)

	fields := map[palette.Accent]*colorx.Scale{
		palette.Red:     th.InputColor.Red,
		palette.Orange:  th.InputColor.Orange,
		palette.Yellow:  th.InputColor.Yellow,
		palette.Green:   th.InputColor.Green,
		palette.Cyan:    th.InputColor.Cyan,
		palette.Blue:    th.InputColor.Blue,
		palette.Violet:  th.InputColor.Violet,
		palette.Magenta: th.InputColor.Magenta,
	}
	for a, ramp := range fields {
		t.Run(a.String(), func(t *testing.T) {
			t.Parallel()
			require.NotNil(t, ramp)
			assert.Same(t, ramp, th.InputColor.Accent(a))
			assert.Equal(t, ForestDarkVariant.Get(a.Slot()), ramp.At(0.5).Hex())
		})
	}
}

func TestBuildSlotCorrespondence(t *testing.T) {
	t.Parallel()

	// Every accent slot gets a distinct color so a swapped ramp shows up.
	v := ForestDarkVariant
	want := map[palette.Slot]string{
		palette.Base08: "#100000",
		palette.Base09: "#200000",
		palette.Base0A: "#300000",
		palette.Base0B: "#400000",
		palette.Base0C: "#500000",
		palette.Base0D: "#600000",
		palette.Base0E: "#700000",
		palette.Base0F: "#800000",
	}
	for s, hex := range want {
		v = v.With(s, hex)
	}

	th, err := Build(AtelierMeta, "Test", Dark, v)
	require.NoError(t, err)

	wantNames := []string{"red", "orange", "yellow", "green", "cyan", "blue", "violet", "magenta"}
	for i, a := range palette.Accents {
		assert.Equal(t, wantNames[i], a.String())
		assert.Equal(t, palette.Base08+palette.Slot(i), a.Slot())
		assert.Equal(t, want[a.Slot()], th.InputColor.Accent(a).At(0.5).Hex())
	}
}

func TestBuildIdempotent(t *testing.T) {
	t.Parallel()

	a, err := ForestDark()
	require.NoError(t, err)
	b, err := ForestDark()
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.NotSame(t, a, b)

	ja, err := a.MarshalJSON()
	require.NoError(t, err)
	jb, err := b.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, string(ja), string(jb))
}

func TestBuildSyntaxOverride(t *testing.T) {
	t.Parallel()

	th, err := ForestDark()
	require.NoError(t, err)
	assert.Equal(t, syntax.Build(ForestDarkVariant), th.Override.Syntax)
}

func TestBuildMalformedSlot(t *testing.T) {
	t.Parallel()

	malformed := []string{"not-a-color", "#abcdeg", "#ab cde", "#1b191z", "#12345z", ""}
	for _, s := range palette.Slots {
		for _, bad := range malformed {
			t.Run(fmt.Sprintf("%s/%q", s, bad), func(t *testing.T) {
				t.Parallel()
				v := ForestDarkVariant.With(s, bad)
				th, err := Build(AtelierMeta, "Broken", Dark, v)
				require.Nil(t, th)
				require.ErrorIs(t, err, colorx.ErrInvalidColor)
				assert.Contains(t, err.Error(), fmt.Sprintf("%q", bad))
				if s >= palette.Base08 {
					assert.Contains(t, err.Error(), s.String())
				} else {
					assert.Contains(t, err.Error(), "neutral")
				}

				require.ErrorIs(t, v.Validate(), colorx.ErrInvalidColor)
			})
		}
	}
}

func TestForestLight(t *testing.T) {
	t.Parallel()

	th, err := ForestLight()
	require.NoError(t, err)

	assert.Equal(t, "Atelier Forest Light", th.Name)
	assert.Equal(t, Light, th.Appearance)
	assert.Equal(t, "#f1efee", th.InputColor.Neutral.At(0).Hex())
	assert.Equal(t, "#1b1918", th.InputColor.Neutral.At(1).Hex())
	assert.Equal(t, "#f22c40", th.InputColor.Red.At(0.5).Hex())
}

func TestAppearanceText(t *testing.T) {
	t.Parallel()

	var a Appearance
	require.NoError(t, a.UnmarshalText([]byte("light")))
	assert.Equal(t, Light, a)

	b, err := Dark.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "dark", string(b))

	require.Error(t, a.UnmarshalText([]byte("dim")))
}

func TestLicenseText(t *testing.T) {
	t.Parallel()

	text, err := AtelierMeta.License.Text()
	require.NoError(t, err)
	assert.Contains(t, text, "MIT License")
	assert.Contains(t, text, "Bram de Haan")

	_, err = License{Type: "MIT"}.Text()
	require.Error(t, err)

	_, err = License{Type: "MIT", File: "missing.txt"}.Text()
	require.Error(t, err)
}

func TestStyles(t *testing.T) {
	t.Parallel()

	th, err := ForestDark()
	require.NoError(t, err)

	st := th.Styles()
	assert.Equal(t, "#1b1918", colorx.Hex(st.Background))
	assert.Equal(t, "#a8a19f", colorx.Hex(st.Foreground))
	assert.Equal(t, "#407ee7", colorx.Hex(st.Title.GetForeground()))
	assert.True(t, st.Title.GetBold())
}
