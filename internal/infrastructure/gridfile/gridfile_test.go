package gridfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokusolver/internal/domain"
)

const sampleText = `53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

func TestParseCompact(t *testing.T) {
	b, err := Parse(strings.NewReader(sampleText))
	require.NoError(t, err)
	assert.Equal(t, 3, b.BlockSize)
	assert.Equal(t, uint8(5), b.Values[0][0])
	assert.Equal(t, uint8(0), b.Values[0][2])
	assert.Equal(t, uint8(9), b.Values[8][8])
	assert.True(t, b.Fixed[0][0])
	assert.False(t, b.Fixed[0][2])
}

func TestParseSkipsBlankLines(t *testing.T) {
	in := "12.4\n\n.42.\n\n2.43\n43.2\n"
	b, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, b.BlockSize)
	assert.Len(t, b.Values, 4)
}

func TestParseWide(t *testing.T) {
	var lines []string
	for r := 0; r < 16; r++ {
		cells := make([]string, 16)
		for c := range cells {
			cells[c] = "."
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	// one given in the corner
	lines[0] = "16" + lines[0][1:]

	b, err := Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	assert.Equal(t, 4, b.BlockSize)
	assert.Equal(t, uint8(16), b.Values[0][0])
	assert.Equal(t, uint8(0), b.Values[0][1])
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ragged", "12.4\n.42\n2.43\n43.2\n"},
		{"bad rune", "12x4\n.42.\n2.43\n43.2\n"},
		{"bad field", "1 2 . x\n. 4 2 .\n2 . 4 3\n4 3 . 2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	b, err := Parse(strings.NewReader(sampleText))
	require.NoError(t, err)

	again, err := Parse(strings.NewReader(Format(b)))
	require.NoError(t, err)
	assert.Equal(t, b.Values, again.Values)
	assert.Equal(t, b.Fixed, again.Fixed)
}

func TestFormatWideUsesDots(t *testing.T) {
	b := domain.NewBoard(4)
	b.Values[0][0] = 12

	out := Format(b)
	first, _, _ := strings.Cut(out, "\n")
	assert.True(t, strings.HasPrefix(first, "12 ."), "got %q", first)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleText), 0o644))

	b, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), b.Values[0][4])

	_, err = Read(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
