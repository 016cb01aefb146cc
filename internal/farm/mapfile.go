package farm

import (
	"fmt"
	"os"
	"strings"
)

// Tile is the ground type of a single grid cell, stored as its map file
// character code.
type Tile byte

const (
	TileGrass    Tile = 'G'
	TileSoil     Tile = 'S'
	TileUntilled Tile = 'U'
)

// ReadMapFile loads a map file: one line per grid row, each character a
// tile code. Trailing newlines are ignored.
func ReadMapFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map file: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, fmt.Errorf("map file %s is empty", path)
	}

	return strings.Split(text, "\n"), nil
}

// parseMap validates map rows and converts them into the mutable grid. All
// rows must be non-empty, equal in length and made of known tile codes.
func parseMap(rows []string) ([][]byte, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map has no rows")
	}

	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("map row 0 is empty")
	}

	grid := make([][]byte, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("map row %d has %d tiles, want %d", i, len(row), width)
		}
		for j := 0; j < len(row); j++ {
			switch Tile(row[j]) {
			case TileGrass, TileSoil, TileUntilled:
			default:
				return nil, fmt.Errorf("unknown tile code %q at row %d, column %d", row[j], i, j)
			}
		}
		grid[i] = []byte(row)
	}

	return grid, nil
}
