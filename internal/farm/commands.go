package farm

import (
	"fmt"
	"sort"
	"strings"
)

// CommandResult is the outcome of a text command. Handled is false when the
// input was not recognised; Message is a human-readable report either way.
type CommandResult struct {
	Handled bool
	Message string
}

func handled(format string, args ...any) CommandResult {
	return CommandResult{Handled: true, Message: fmt.Sprintf(format, args...)}
}

// ExecuteCommand runs a single text command against the farm. Commands act
// on the cell the player is standing on. Precondition failures report a
// message but never error.
func (f *Farm) ExecuteCommand(raw string) CommandResult {
	command := strings.TrimSpace(strings.ToLower(raw))
	if command == "" {
		return CommandResult{Handled: false}
	}
	fields := strings.Fields(command)

	switch fields[0] {
	case "help", "commands":
		return handled("Commands: move <up|down|left|right>, till, untill, plant, harvest, remove, select <item>, buy <item>, sell <item>, next, inventory, status, look, help.")
	case "move", "go", "walk":
		if len(fields) < 2 {
			return handled("Move where? Try: move up, move down, move left, move right.")
		}
		return f.executeMoveCommand(fields[1])
	case "w", "a", "s", "d", "up", "down", "left", "right", "north", "south", "east", "west":
		return f.executeMoveCommand(fields[0])
	case "till":
		return f.executeTillCommand()
	case "untill":
		return f.executeUntillCommand()
	case "plant", "sow":
		return f.executePlantCommand()
	case "harvest", "pick", "reap":
		return f.executeHarvestCommand()
	case "remove", "dig":
		return f.executeRemoveCommand()
	case "select":
		return f.executeSelectCommand(fields[1:])
	case "buy":
		return f.executeBuyCommand(fields[1:])
	case "sell":
		return f.executeSellCommand(fields[1:])
	case "next", "sleep", "day":
		f.AdvanceDay()
		return handled("A new day dawns. Day %d, energy restored to %d.", f.daysElapsed, f.player.Energy())
	case "inventory", "inv", "items":
		return f.executeInventoryCommand()
	case "status", "stats":
		return f.executeStatusCommand()
	case "look", "map":
		return f.executeLookCommand()
	}

	return CommandResult{Handled: false}
}

func parseDirection(token string) (Direction, bool) {
	switch token {
	case "up", "w", "north", "n":
		return DirUp, true
	case "down", "s", "south":
		return DirDown, true
	case "left", "a", "west":
		return DirLeft, true
	case "right", "d", "east", "e":
		return DirRight, true
	}
	return "", false
}

func (f *Farm) executeMoveCommand(token string) CommandResult {
	direction, ok := parseDirection(token)
	if !ok {
		return handled("Unknown direction %q. Try up, down, left or right.", token)
	}
	if f.MovePlayer(direction) {
		pos := f.player.Position()
		return handled("You walk %s to (%d, %d).", direction, pos.Row, pos.Col)
	}
	return handled("You face %s but go nowhere.", direction)
}

func (f *Farm) executeTillCommand() CommandResult {
	pos := f.player.Position()
	if f.TillSoil(pos) {
		return handled("You till the soil at (%d, %d).", pos.Row, pos.Col)
	}
	return handled("The ground here can't be tilled.")
}

func (f *Farm) executeUntillCommand() CommandResult {
	pos := f.player.Position()
	if f.UntillSoil(pos) {
		return handled("You untill the soil at (%d, %d).", pos.Row, pos.Col)
	}
	return handled("The ground here can't be untilled.")
}

// executePlantCommand plants the selected seed on the cell the player is
// standing on. The cell must be tilled soil and the seed must still be in
// the inventory; one seed is consumed when planting succeeds.
func (f *Farm) executePlantCommand() CommandResult {
	item, ok := f.player.SelectedItem()
	if !ok {
		return handled("Select a seed first.")
	}
	if !strings.HasSuffix(item, "Seed") {
		return handled("%s is not a seed.", item)
	}
	if f.player.ItemCount(item) <= 0 {
		return handled("You have no %s left.", item)
	}

	pos := f.player.Position()
	if f.TileAt(pos) != TileSoil {
		return handled("Seeds need tilled soil.")
	}

	plant, ok := PlantForSeed(item)
	if !ok {
		return handled("Nothing grows from %s.", item)
	}
	if !f.AddPlant(pos, plant) {
		return handled("You can't plant here.")
	}
	f.player.RemoveItem(item, 1)
	return handled("You plant a %s at (%d, %d).", plant.Name(), pos.Row, pos.Col)
}

func (f *Farm) executeHarvestCommand() CommandResult {
	pos := f.player.Position()
	result, ok := f.HarvestPlant(pos)
	if !ok {
		return handled("There is nothing to harvest here.")
	}
	f.player.AddItem(result.Item, result.Quantity)
	return handled("You harvest %d x %s.", result.Quantity, result.Item)
}

func (f *Farm) executeRemoveCommand() CommandResult {
	pos := f.player.Position()
	if f.RemovePlant(pos) {
		return handled("You dig up the plant at (%d, %d).", pos.Row, pos.Col)
	}
	return handled("There is no plant to remove here.")
}

func (f *Farm) executeSelectCommand(args []string) CommandResult {
	item, ok := f.resolveItem(args)
	if !ok {
		return handled("You don't recognise that item.")
	}
	if f.player.ItemCount(item) <= 0 {
		return handled("You don't have any %s.", item)
	}
	f.player.SelectItem(item)
	return handled("Selected %s.", item)
}

func (f *Farm) executeBuyCommand(args []string) CommandResult {
	item, ok := f.resolveItem(args)
	if !ok {
		return handled("The store doesn't know that item.")
	}
	price, ok := f.BuyPrice(item)
	if !ok {
		return handled("%s is not for sale.", item)
	}
	if !f.player.Buy(item, price) {
		return handled("You can't afford %s ($%d, you have $%d).", item, price, f.player.Money())
	}
	return handled("Bought 1 x %s for $%d. You have $%d.", item, price, f.player.Money())
}

func (f *Farm) executeSellCommand(args []string) CommandResult {
	item, ok := f.resolveItem(args)
	if !ok {
		return handled("The store doesn't know that item.")
	}
	price, ok := f.SellPrice(item)
	if !ok {
		return handled("The store won't buy %s.", item)
	}
	if !f.player.Sell(item, price) {
		return handled("You have no %s to sell.", item)
	}
	return handled("Sold 1 x %s for $%d. You have $%d.", item, price, f.player.Money())
}

func (f *Farm) executeInventoryCommand() CommandResult {
	inventory := f.player.Inventory()
	if len(inventory) == 0 {
		return handled("Your inventory is empty.")
	}

	var lines []string
	for _, item := range sortedItems(inventory) {
		line := fmt.Sprintf("%s x%d", item, inventory[item])
		if selected, _ := f.player.SelectedItem(); selected == item {
			line += " (selected)"
		}
		lines = append(lines, line)
	}
	return handled("Inventory:\n%s", strings.Join(lines, "\n"))
}

func (f *Farm) executeStatusCommand() CommandResult {
	selected, ok := f.player.SelectedItem()
	if !ok {
		selected = "nothing"
	}
	return handled("Day %d | Energy %d | Money $%d | Selected: %s",
		f.daysElapsed, f.player.Energy(), f.player.Money(), selected)
}

// executeLookCommand renders the grid as text: tile codes, plants shown as
// their stage digit, the player as an arrow for the faced direction.
func (f *Farm) executeLookCommand() CommandResult {
	arrows := map[Direction]byte{
		DirUp:    '^',
		DirDown:  'v',
		DirLeft:  '<',
		DirRight: '>',
	}

	rows := make([][]byte, len(f.grid))
	for i, row := range f.grid {
		rows[i] = append([]byte(nil), row...)
	}
	for pos, plant := range f.plants {
		rows[pos.Row][pos.Col] = byte('0' + plant.Stage())
	}
	playerPos := f.player.Position()
	rows[playerPos.Row][playerPos.Col] = arrows[f.player.Direction()]

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}
	return handled("%s", strings.Join(lines, "\n"))
}

// resolveItem maps free-text tokens to a canonical item name, matching
// case-insensitively against the store tables, the inventory and the known
// item list.
func (f *Farm) resolveItem(args []string) (string, bool) {
	wanted := strings.TrimSpace(strings.Join(args, " "))
	if wanted == "" {
		return "", false
	}

	for _, item := range f.knownItems() {
		if strings.EqualFold(item, wanted) {
			return item, true
		}
	}

	return "", false
}

func (f *Farm) knownItems() []string {
	seen := make(map[string]bool, len(ItemOrder))
	items := make([]string, 0, len(ItemOrder))

	add := func(item string) {
		if !seen[item] {
			seen[item] = true
			items = append(items, item)
		}
	}
	for _, item := range ItemOrder {
		add(item)
	}
	for item := range f.cfg.BuyPrices {
		add(item)
	}
	for item := range f.cfg.SellPrices {
		add(item)
	}
	for item := range f.player.Inventory() {
		add(item)
	}

	return items
}

// sortedItems orders inventory items by the canonical item order, with
// unknown items alphabetical at the end.
func sortedItems(inventory map[string]int) []string {
	rank := make(map[string]int, len(ItemOrder))
	for i, item := range ItemOrder {
		rank[item] = i
	}

	items := make([]string, 0, len(inventory))
	for item := range inventory {
		items = append(items, item)
	}
	sort.Slice(items, func(a, b int) bool {
		ra, okA := rank[items[a]]
		rb, okB := rank[items[b]]
		switch {
		case okA && okB:
			return ra < rb
		case okA:
			return true
		case okB:
			return false
		default:
			return items[a] < items[b]
		}
	})
	return items
}
