package farm

import (
	"fmt"
)

// Energy cost of each player action. A cost is only deducted when the
// action actually changed state.
const (
	MoveCost    = 1
	HarvestCost = 3
	PlantCost   = 2
	RemoveCost  = 2
	TillCost    = 3
	UntillCost  = 3
)

// Farm is the root of all mutable game state: the tile grid, the plants on
// it, the player and the day counter. Every mutating action checks the
// player's energy against the action's cost first; an action that does not
// go through leaves all state untouched. Farm is not safe for concurrent
// use; commands are expected to arrive sequentially from a single loop.
type Farm struct {
	cfg         FarmConfig
	grid        [][]byte
	plants      map[Position]Plant
	player      *Player
	daysElapsed int
}

// NewFarm builds a farm from the given config, loading and validating the
// map it names.
func NewFarm(cfg FarmConfig) (*Farm, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid farm config: %w", err)
	}

	rows := cfg.Map
	if len(rows) == 0 {
		loaded, err := ReadMapFile(cfg.MapPath)
		if err != nil {
			return nil, err
		}
		rows = loaded
	}

	grid, err := parseMap(rows)
	if err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}

	return &Farm{
		cfg:         cfg,
		grid:        grid,
		plants:      make(map[Position]Plant),
		player:      NewPlayer(cfg.StartingInventory),
		daysElapsed: 1,
	}, nil
}

// Dimensions returns the grid size as (rows, columns).
func (f *Farm) Dimensions() (int, int) {
	return len(f.grid), len(f.grid[0])
}

// Map returns the grid as rows of tile codes.
func (f *Farm) Map() []string {
	rows := make([]string, len(f.grid))
	for i, row := range f.grid {
		rows[i] = string(row)
	}
	return rows
}

// TileAt returns the tile at the given position.
func (f *Farm) TileAt(pos Position) Tile {
	return Tile(f.grid[pos.Row][pos.Col])
}

// Plants returns the plants on the farm, keyed by position.
func (f *Farm) Plants() map[Position]Plant {
	plants := make(map[Position]Plant, len(f.plants))
	for pos, plant := range f.plants {
		plants[pos] = plant
	}
	return plants
}

// PlantAt returns the plant at the given position, if any.
func (f *Farm) PlantAt(pos Position) (Plant, bool) {
	plant, ok := f.plants[pos]
	return plant, ok
}

// Player returns the player in this game.
func (f *Farm) Player() *Player { return f.player }

// PlayerPosition returns the player's current grid position.
func (f *Farm) PlayerPosition() Position { return f.player.Position() }

// PlayerDirection returns the direction the player is facing.
func (f *Farm) PlayerDirection() Direction { return f.player.Direction() }

// DaysElapsed returns the number of days elapsed, starting at 1.
func (f *Farm) DaysElapsed() int { return f.daysElapsed }

// BuyPrice returns the store's buy price for an item, if it can be bought.
func (f *Farm) BuyPrice(item string) (int, bool) {
	price, ok := f.cfg.BuyPrices[item]
	return price, ok
}

// SellPrice returns the store's sell price for an item, if it can be sold.
func (f *Farm) SellPrice(item string) (int, bool) {
	price, ok := f.cfg.SellPrices[item]
	return price, ok
}

func (f *Farm) inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < len(f.grid) && pos.Col >= 0 && pos.Col < len(f.grid[0])
}

// MovePlayer moves the player one cell in the given direction, clamped to
// the grid. The facing direction updates even when the move is blocked by a
// boundary, but energy is only spent when the position changed. It reports
// whether the player moved.
func (f *Farm) MovePlayer(direction Direction) bool {
	if f.player.Energy() < MoveCost {
		return false
	}
	delta, ok := moveDeltas[direction]
	if !ok {
		return false
	}

	rows, cols := f.Dimensions()
	old := f.player.Position()
	next := Position{Row: old.Row + delta.Row, Col: old.Col + delta.Col}
	next.Row = clamp(next.Row, 0, rows-1)
	next.Col = clamp(next.Col, 0, cols-1)

	f.player.SetPosition(next)
	f.player.SetDirection(direction)

	if next == old {
		return false
	}
	f.player.ReduceEnergy(MoveCost)
	return true
}

// TillSoil converts untilled soil at the given position into tilled soil.
// Any other tile is left alone. It reports whether the tile changed.
func (f *Farm) TillSoil(pos Position) bool {
	if f.player.Energy() < TillCost {
		return false
	}
	if !f.inBounds(pos) || f.TileAt(pos) != TileUntilled {
		return false
	}

	f.grid[pos.Row][pos.Col] = byte(TileSoil)
	f.player.ReduceEnergy(TillCost)
	return true
}

// UntillSoil converts tilled soil back to untilled, unless a plant occupies
// the position. It reports whether the tile changed.
func (f *Farm) UntillSoil(pos Position) bool {
	if f.player.Energy() < UntillCost {
		return false
	}
	if !f.inBounds(pos) || f.TileAt(pos) != TileSoil {
		return false
	}
	if _, occupied := f.plants[pos]; occupied {
		return false
	}

	f.grid[pos.Row][pos.Col] = byte(TileUntilled)
	f.player.ReduceEnergy(UntillCost)
	return true
}

// AddPlant places a plant at the given position if no plant is already
// there. It reports whether the plant was added.
func (f *Farm) AddPlant(pos Position, plant Plant) bool {
	if f.player.Energy() < PlantCost {
		return false
	}
	if !f.inBounds(pos) {
		return false
	}
	if _, occupied := f.plants[pos]; occupied {
		return false
	}

	f.plants[pos] = plant
	f.player.ReduceEnergy(PlantCost)
	return true
}

// HarvestPlant harvests the plant at the given position if it is ready,
// deleting it from the farm when the variant does not regrow. It returns
// false when there is no plant there or the plant declined to yield.
func (f *Farm) HarvestPlant(pos Position) (Yield, bool) {
	if f.player.Energy() < HarvestCost {
		return Yield{}, false
	}
	plant, ok := f.plants[pos]
	if !ok {
		return Yield{}, false
	}
	result, ok := plant.Harvest()
	if !ok {
		return Yield{}, false
	}

	if plant.RemoveOnHarvest() {
		delete(f.plants, pos)
	}
	f.player.ReduceEnergy(HarvestCost)
	return result, true
}

// RemovePlant deletes the plant at the given position, if there is one. It
// reports whether a plant was removed.
func (f *Farm) RemovePlant(pos Position) bool {
	if f.player.Energy() < RemoveCost {
		return false
	}
	if _, ok := f.plants[pos]; !ok {
		return false
	}

	delete(f.plants, pos)
	f.player.ReduceEnergy(RemoveCost)
	return true
}

// AdvanceDay ages every plant once, increments the day counter and resets
// the player's energy. It is the only operation that does not gate on
// energy.
func (f *Farm) AdvanceDay() {
	for _, plant := range f.plants {
		plant.Age()
	}
	f.daysElapsed++
	f.player.ResetEnergy()
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}
	if number > max {
		return max
	}
	return number
}
