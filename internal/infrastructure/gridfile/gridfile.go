// Package gridfile reads and writes boards as plain text grids: one row per
// line, one digit per cell, with '0' or '.' marking blanks. Boards with
// sides above 9 use whitespace-separated numbers instead of single runes.
package gridfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"svw.info/sudokusolver/internal/domain"
)

// Read parses the grid file at path into a board.
func Read(path string) (*domain.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse reads a textual grid from r.
func Parse(r io.Reader) (*domain.Board, error) {
	var rows [][]uint8

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	side := len(rows)
	for i, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("line %d: %d cells, want %d", i+1, len(row), side)
		}
	}

	b := &domain.Board{Values: rows}
	if n := int(math.Sqrt(float64(side))); n*n == side {
		b.BlockSize = n
	}
	markGivens(b)

	return b, nil
}

func parseRow(line string) ([]uint8, error) {
	if fields := strings.Fields(line); len(fields) > 1 {
		row := make([]uint8, len(fields))
		for i, f := range fields {
			if f == "." {
				continue
			}
			v, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("bad cell %q", f)
			}
			row[i] = uint8(v)
		}
		return row, nil
	}

	row := make([]uint8, 0, len(line))
	for _, r := range line {
		switch {
		case r == '.' || r == '0':
			row = append(row, 0)
		case r >= '1' && r <= '9':
			row = append(row, uint8(r-'0'))
		default:
			return nil, fmt.Errorf("bad cell %q", string(r))
		}
	}
	return row, nil
}

func markGivens(b *domain.Board) {
	side := b.Side()
	b.Fixed = make([][]bool, side)
	for r := 0; r < side; r++ {
		b.Fixed[r] = make([]bool, side)
		for c := 0; c < side; c++ {
			b.Fixed[r][c] = b.Values[r][c] != 0
		}
	}
}

// Format renders a board in the same textual form Parse accepts.
func Format(b *domain.Board) string {
	var sb strings.Builder
	wide := b.Side() > 9
	for _, row := range b.Values {
		for c, v := range row {
			if wide && c > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 && wide {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(int(v)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
