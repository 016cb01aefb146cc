package farm

// StartEnergy is the energy a player begins each day with.
const StartEnergy = 100

// Position is a (row, column) cell on the farm grid.
type Position struct {
	Row int
	Col int
}

// Direction is one of the four compass directions the player can face.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

var moveDeltas = map[Direction]Position{
	DirUp:    {Row: -1, Col: 0},
	DirDown:  {Row: 1, Col: 0},
	DirLeft:  {Row: 0, Col: -1},
	DirRight: {Row: 0, Col: 1},
}

// Player holds the player's resources and position. Energy has no floor:
// callers are expected to check sufficiency before reducing it, and it is
// reset to StartEnergy when a new day begins.
type Player struct {
	energy    int
	money     int
	inventory map[string]int
	position  Position
	direction Direction
	selected  string
}

// NewPlayer creates a player at (0, 0) facing down, holding the given
// starting inventory. Entries with non-positive counts are ignored.
func NewPlayer(startingInventory map[string]int) *Player {
	inventory := make(map[string]int, len(startingInventory))
	for item, count := range startingInventory {
		if count > 0 {
			inventory[item] = count
		}
	}
	return &Player{
		energy:    StartEnergy,
		inventory: inventory,
		direction: DirDown,
	}
}

func (p *Player) Energy() int { return p.energy }

func (p *Player) Money() int { return p.money }

// Inventory returns a copy of the player's inventory, mapping item names to
// held amounts. Items with zero count are never present.
func (p *Player) Inventory() map[string]int {
	inventory := make(map[string]int, len(p.inventory))
	for item, count := range p.inventory {
		inventory[item] = count
	}
	return inventory
}

// ItemCount returns how many of the given item the player holds.
func (p *Player) ItemCount(item string) int {
	return p.inventory[item]
}

// SelectItem marks the given item as selected if it is currently held;
// otherwise the selection is left unchanged.
func (p *Player) SelectItem(item string) {
	if _, held := p.inventory[item]; held {
		p.selected = item
	}
}

// SelectedItem returns the currently selected item name. The selection is
// not re-validated after it is made: selling out of an item leaves it
// selected, so the returned name may no longer be in the inventory.
func (p *Player) SelectedItem() (string, bool) {
	return p.selected, p.selected != ""
}

func (p *Player) Position() Position { return p.position }

func (p *Player) SetPosition(position Position) { p.position = position }

func (p *Player) Direction() Direction { return p.direction }

func (p *Player) SetDirection(direction Direction) { p.direction = direction }

// ResetEnergy restores energy to the start-of-day amount.
func (p *Player) ResetEnergy() { p.energy = StartEnergy }

// ReduceEnergy subtracts amount from the player's energy. It does not keep
// the result non-negative.
func (p *Player) ReduceEnergy(amount int) { p.energy -= amount }

// Buy adds one unit of the item and deducts the price, if the player has
// enough money. It reports whether the purchase happened.
func (p *Player) Buy(item string, price int) bool {
	if p.money < price {
		return false
	}
	p.money -= price
	p.AddItem(item, 1)
	return true
}

// Sell removes one unit of the item and adds the price, if the player holds
// at least one. It reports whether the sale happened.
func (p *Player) Sell(item string, price int) bool {
	if p.inventory[item] <= 0 {
		return false
	}
	p.money += price
	p.RemoveItem(item, 1)
	return true
}

// AddItem adds amount units of the item to the inventory.
func (p *Player) AddItem(item string, amount int) {
	p.inventory[item] += amount
}

// RemoveItem removes amount units of the item. When the remaining count
// would be zero or below, the item is deleted from the inventory outright,
// even if amount exceeded the held count.
func (p *Player) RemoveItem(item string, amount int) {
	remaining := p.inventory[item] - amount
	if remaining <= 0 {
		delete(p.inventory, item)
		return
	}
	p.inventory[item] = remaining
}
