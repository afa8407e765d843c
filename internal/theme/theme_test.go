package theme

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"catppuccin-mocha", "Catppuccin Mocha"},
		{"Catppuccin Latte", "Catppuccin Latte"},
		{"  ONE DARK ", "One Dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := ByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, th.Name)
		})
	}
}

func TestByName_Unknown(t *testing.T) {
	_, err := ByName("solarized")
	assert.True(t, errors.Is(err, ErrUnknown))
	hints := errors.GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "one-dark")
}

func TestDefaultIsRegistered(t *testing.T) {
	_, err := ByName(Default)
	assert.NoError(t, err)
}

func TestNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"catppuccin-latte", "catppuccin-mocha", "one-dark"}, Names())
}

func TestPalette_Roles(t *testing.T) {
	th, err := ByName("one-dark")
	require.NoError(t, err)

	p := th.Palette()
	assert.Equal(t, th.Text, p.Text)
	assert.Equal(t, th.Teal, p.Primary)
	assert.Equal(t, th.Sky, p.Secondary)
	assert.Equal(t, th.Green, p.Tertiary)
	assert.Equal(t, th.Red, p.Accent)
}
