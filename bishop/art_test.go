package bishop_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/bishopart/bishop"
	"github.com/katalvlaran/bishopart/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArt_Accessors checks New against Walk and Render.
func TestArt_Accessors(t *testing.T) {
	cfg := bishop.Config{Data: []byte{0x00}, Rows: 3, Columns: 3}
	a, err := bishop.New(cfg)
	require.NoError(t, err)

	assert.Equal(t, cfg, a.Config())
	assert.Equal(t, 9, a.Board().Cells())
	assert.Equal(t, 4, a.Board().Center())
	assert.Equal(t, []int{0, 0, 0, 0}, a.Result().Visited)
	assert.Equal(t, map[int]int{0: 4}, a.Counts())
	assert.Equal(t, "E   S    ", string(a.Cells()))
	assert.Equal(t, "+---+\n|E  |\n| S |\n|   |\n+---+", a.String())
	assert.Equal(t, []string{"+---+", "|E  |", "| S |", "|   |", "+---+"}, a.Lines())

	// Cells hands out a copy.
	cells := a.Cells()
	cells[0] = '?'
	assert.Equal(t, 'E', a.Cells()[0])
}

// TestArt_ZeroWidthLines: with no columns only the borders remain, whatever Rows is.
func TestArt_ZeroWidthLines(t *testing.T) {
	a, err := bishop.New(bishop.Config{Data: []byte("abc"), Rows: 3, Columns: 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"++", "++"}, a.Lines())
}

func TestNew_Invalid(t *testing.T) {
	_, err := bishop.New(bishop.Config{Rows: 2, Columns: 2}.WithHome(4))
	assert.ErrorIs(t, err, bishop.ErrHomeOutOfRange)

	_, err = bishop.Draw(bishop.Config{Rows: 2, Columns: 2, Steps: -4})
	assert.ErrorIs(t, err, bishop.ErrNegativeSteps)
}

// TestDraw_Deterministic verifies repeated renders agree.
func TestDraw_Deterministic(t *testing.T) {
	cfg := bishop.DefaultConfig()
	cfg.Data = []byte("ssh-ed25519 AAAAC3NzaC1lZDI1NTE5")
	first, err := bishop.Draw(cfg)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := bishop.Draw(cfg)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestFixtures replays the recorded renderings end to end.
func TestFixtures(t *testing.T) {
	for _, name := range []string{"digest.json", "extra.yaml"} {
		cases, err := fixture.Load(filepath.Join("testdata", name))
		require.NoError(t, err)
		require.NotEmpty(t, cases)

		for _, c := range cases {
			t.Run(name+"/"+c.Name(), func(t *testing.T) {
				got, err := bishop.Draw(c.Config())
				require.NoError(t, err)
				assert.Equal(t, c.Want(), got)
			})
		}
	}
}
