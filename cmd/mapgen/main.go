// Command mapgen writes a farm map file: a grass field with randomly placed
// rectangular patches of untilled soil.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"
)

func main() {
	var (
		rows    int
		cols    int
		patches int
		seed    int64
		out     string
	)
	flag.IntVar(&rows, "rows", 10, "number of map rows")
	flag.IntVar(&cols, "cols", 10, "number of map columns")
	flag.IntVar(&patches, "patches", 3, "number of untilled soil patches")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	flag.StringVar(&out, "out", "", "output file (default stdout)")
	flag.Parse()

	if rows < 1 || cols < 1 {
		fmt.Fprintln(os.Stderr, "rows and cols must be at least 1")
		os.Exit(1)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	text := generate(rows, cols, patches, seed)

	if out == "" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(rows, cols, patches int, seed int64) string {
	seed1 := uint64(seed)
	rng := rand.New(rand.NewPCG(seed1, seed1^uint64(0x9e3779b97f4a7c15)))

	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = []byte(strings.Repeat("G", cols))
	}

	for p := 0; p < patches; p++ {
		height := 1 + rng.IntN(3)
		width := 1 + rng.IntN(3)
		top := rng.IntN(rows)
		left := rng.IntN(cols)
		for r := top; r < top+height && r < rows; r++ {
			for c := left; c < left+width && c < cols; c++ {
				grid[r][c] = 'U'
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
