package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/bishopart/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates name under a temp dir with the given contents.
func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "cases.json", `[
  {"rows": 1, "cols": 1, "limit": 0, "cycle": false, "input": "x", "output": ["+-+", "|S|", "+-+"]}
]`)
	cases, err := fixture.Load(path)
	require.NoError(t, err)
	require.Len(t, cases, 1)

	c := cases[0]
	assert.Equal(t, 1, c.Rows)
	assert.Equal(t, 1, c.Cols)
	assert.Equal(t, "x", c.Input)
	assert.Equal(t, "+-+\n|S|\n+-+", c.Want())

	cfg := c.Config()
	assert.Equal(t, []byte("x"), cfg.Data)
	assert.Nil(t, cfg.Home)
	assert.Nil(t, cfg.Symbols)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "cases.yml", `
- rows: 1
  cols: 6
  limit: 0
  cycle: false
  input: "xyz"
  output: ["+------+", "|.oS=E |", "+------+"]
`)
	cases, err := fixture.Load(path)
	require.NoError(t, err)
	require.Len(t, cases, 1)

	got, err := fixture.Verify(cases[0])
	require.NoError(t, err)
	assert.Equal(t, cases[0].Want(), got)
}

// TestLoad_Errors covers missing, malformed and unknown-format files.
func TestLoad_Errors(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, err := fixture.Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := fixture.Load(writeFile(t, "bad.json", `{"rows": `))
		assert.Error(t, err)
	})
	t.Run("MalformedYAML", func(t *testing.T) {
		_, err := fixture.Load(writeFile(t, "bad.yaml", "- rows: [\n"))
		assert.Error(t, err)
	})
	t.Run("UnknownExtension", func(t *testing.T) {
		_, err := fixture.Load(writeFile(t, "cases.txt", "[]"))
		assert.ErrorIs(t, err, fixture.ErrUnsupportedFormat)
	})
}

// TestVerify_Mismatch ensures a wrong recording is reported with ErrMismatch.
func TestVerify_Mismatch(t *testing.T) {
	c := fixture.Case{Rows: 1, Cols: 1, Input: "x", Output: []string{"+-+", "|E|", "+-+"}}
	got, err := fixture.Verify(c)
	assert.ErrorIs(t, err, fixture.ErrMismatch)
	assert.Equal(t, "+-+\n|S|\n+-+", got)
}

// TestVerify_InvalidConfig ensures validation errors propagate.
func TestVerify_InvalidConfig(t *testing.T) {
	_, err := fixture.Verify(fixture.Case{Rows: -1, Cols: 3})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, fixture.ErrMismatch)
}
