package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vlist/internal/config"
	"github.com/rshade/vlist/internal/window"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "mid scroll",
			args: []string{"--count", "1000", "--item-height", "20", "--buffer", "5", "--view-top", "400", "--view-bottom", "900"},
			want: "15 50\n",
		},
		{
			name: "list below viewport",
			args: []string{"--count", "1000", "--item-height", "20", "--buffer", "0", "--view-bottom", "500", "--list-top", "1000"},
			want: "0 0\n",
		},
		{
			name: "scrolled to end",
			args: []string{"--count", "10", "--buffer", "3", "--view-top", "8", "--view-bottom", "12"},
			want: "5 10\n",
		},
		{
			name: "empty list",
			args: []string{"--buffer", "3", "--view-bottom", "12"},
			want: "0 0\n",
		},
		{
			name: "json",
			args: []string{"--count", "1000", "--item-height", "20", "--buffer", "5", "--view-top", "400", "--view-bottom", "900", "--json"},
			want: `{"first":15,"last":50}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			out, err := execute(t, "", append([]string{"bounds"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBounds_BufferFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvBuffer, "2")

	out, err := execute(t, "", "bounds", "--count", "100", "--view-top", "10", "--view-bottom", "20")
	require.NoError(t, err)
	assert.Equal(t, "8 22\n", out)
}

func TestBounds_InvalidItemHeight(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "bounds", "--count", "10", "--item-height", "0")
	require.ErrorIs(t, err, window.ErrInvalidItemHeight)
}

func TestBounds_RejectsArgs(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "bounds", "extra")
	require.Error(t, err)
}
