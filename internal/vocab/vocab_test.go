package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	v := Default()
	require.NotNil(t, v)
	assert.Equal(t, 1, v.Version)
	assert.NotEmpty(t, v.Concepts)
	assert.NotEmpty(t, v.Eras)
}

func TestThemesFor(t *testing.T) {
	v := Default()

	t.Run("known term", func(t *testing.T) {
		themes := v.ThemesFor("justice")
		assert.Contains(t, themes, "political philosophy")
	})

	t.Run("case-insensitive", func(t *testing.T) {
		themes := v.ThemesFor("Social Contract")
		assert.Contains(t, themes, "political philosophy")
	})

	t.Run("unknown term", func(t *testing.T) {
		assert.Nil(t, v.ThemesFor("quantum chromodynamics"))
	})
}

func TestPeriodForYear(t *testing.T) {
	v := Default()

	tests := []struct {
		name   string
		year   int
		period string
		ok     bool
	}{
		{"plato", -375, "Ancient", true},
		{"boundary ancient", 500, "Ancient", true},
		{"aquinas", 1265, "Medieval", true},
		{"hume", 1739, "Early Modern", true},
		{"kant", 1781, "Early Modern", true},
		{"nietzsche", 1886, "Modern", true},
		{"rawls", 1971, "Contemporary", true},
		{"out of table", 5000, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, ok := v.PeriodForYear(tt.year)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.period, period)
		})
	}
}

func TestPeriodFor(t *testing.T) {
	v := Default()

	period, ok := v.PeriodFor("enlightenment")
	require.True(t, ok)
	assert.Equal(t, "Early Modern", period)

	_, ok = v.PeriodFor("jurassic")
	assert.False(t, ok)
}

func TestThemesForText(t *testing.T) {
	v := Default()

	t.Run("finds multi-word terms", func(t *testing.T) {
		themes := v.ThemesForText("An essay on the social contract and liberty")
		assert.Contains(t, themes, "political philosophy")
	})

	t.Run("word boundaries respected", func(t *testing.T) {
		// "art" must not match inside "Descartes".
		themes := v.ThemesForText("Descartes")
		assert.NotContains(t, themes, "aesthetics")
	})

	t.Run("deterministic order", func(t *testing.T) {
		first := v.ThemesForText("justice and knowledge and beauty")
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, v.ThemesForText("justice and knowledge and beauty"))
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads override file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "vocab.toml")
		override := `
version = 2

[concepts]
"entropy" = ["philosophy of science"]

[[eras]]
label = "Ancient"
from = -3000
to = 500
`
		require.NoError(t, os.WriteFile(path, []byte(override), 0600))

		v, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, v.Version)
		assert.Contains(t, v.ThemesFor("entropy"), "philosophy of science")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/vocab.toml")
		assert.Error(t, err)
	})
}
