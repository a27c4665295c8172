package domain

import (
	"encoding/json"
	"fmt"
)

// Cells is a board's value matrix. It carries its own JSON codec because
// encoding/json renders a bare []uint8 row as a base64 string; on the wire
// every row must stay an array of digits.
type Cells [][]uint8

func (c Cells) MarshalJSON() ([]byte, error) {
	rows := make([][]uint16, len(c))
	for i, row := range c {
		rows[i] = make([]uint16, len(row))
		for j, v := range row {
			rows[i][j] = uint16(v)
		}
	}
	return json.Marshal(rows)
}

func (c *Cells) UnmarshalJSON(data []byte) error {
	var rows [][]uint16
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	out := make(Cells, len(rows))
	for i, row := range rows {
		out[i] = make([]uint8, len(row))
		for j, v := range row {
			if v > 255 {
				return fmt.Errorf("cell value %d out of range", v)
			}
			out[i][j] = uint8(v)
		}
	}
	*c = out
	return nil
}

// Board holds current values and which cells are fixed givens. The side is
// blockSize squared; 0 marks an unknown cell.
type Board struct {
	BlockSize int      `json:"blockSize,omitempty"`
	Values    Cells    `json:"board"`
	Fixed     [][]bool `json:"fixed,omitempty"`
}

// NewBoard allocates an empty board of the given block size.
func NewBoard(blockSize int) *Board {
	side := blockSize * blockSize
	b := &Board{
		BlockSize: blockSize,
		Values:    make([][]uint8, side),
		Fixed:     make([][]bool, side),
	}
	for i := 0; i < side; i++ {
		b.Values[i] = make([]uint8, side)
		b.Fixed[i] = make([]bool, side)
	}
	return b
}

// Side returns the board's side length.
func (b *Board) Side() int { return len(b.Values) }

// CellCoord identifies a cell on the board (0-indexed, API surface).
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Value    uint8        `json:"value,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
