package farm

import "testing"

func TestNewPlayerStartsAtOriginFacingDown(t *testing.T) {
	player := NewPlayer(map[string]int{ItemPotatoSeed: 5, "Scrap": 0, "Dust": -2})

	if pos := player.Position(); pos != (Position{}) {
		t.Fatalf("start position = %+v, want (0, 0)", pos)
	}
	if player.Direction() != DirDown {
		t.Fatalf("start direction = %s, want down", player.Direction())
	}
	if player.Energy() != StartEnergy {
		t.Fatalf("start energy = %d, want %d", player.Energy(), StartEnergy)
	}
	if player.ItemCount(ItemPotatoSeed) != 5 {
		t.Fatalf("starting seeds = %d, want 5", player.ItemCount(ItemPotatoSeed))
	}
	if _, held := player.Inventory()["Scrap"]; held {
		t.Fatalf("zero-count starting item should be dropped")
	}
	if _, held := player.Inventory()["Dust"]; held {
		t.Fatalf("negative-count starting item should be dropped")
	}
}

func TestBuyRequiresEnoughMoney(t *testing.T) {
	player := NewPlayer(nil)

	if player.Buy(ItemPotatoSeed, 10) {
		t.Fatalf("bought with no money")
	}
	if player.ItemCount(ItemPotatoSeed) != 0 || player.Money() != 0 {
		t.Fatalf("failed buy changed state: %d items, $%d", player.ItemCount(ItemPotatoSeed), player.Money())
	}

	player.money = 25
	if !player.Buy(ItemPotatoSeed, 10) {
		t.Fatalf("buy with enough money failed")
	}
	if player.Money() != 15 || player.ItemCount(ItemPotatoSeed) != 1 {
		t.Fatalf("after buy: $%d, %d seeds; want $15, 1 seed", player.Money(), player.ItemCount(ItemPotatoSeed))
	}
}

func TestSellRequiresStock(t *testing.T) {
	player := NewPlayer(map[string]int{ItemPotato: 2})

	if player.Sell(ItemKale, 110) {
		t.Fatalf("sold an item not held")
	}
	if player.Money() != 0 {
		t.Fatalf("failed sell changed money: $%d", player.Money())
	}

	if !player.Sell(ItemPotato, 25) {
		t.Fatalf("sell with stock failed")
	}
	if player.Money() != 25 || player.ItemCount(ItemPotato) != 1 {
		t.Fatalf("after sell: $%d, %d potatoes; want $25, 1", player.Money(), player.ItemCount(ItemPotato))
	}
}

func TestRemoveItemDeletesAtZeroOrBelow(t *testing.T) {
	player := NewPlayer(map[string]int{ItemKaleSeed: 3})

	player.RemoveItem(ItemKaleSeed, 10)
	if _, held := player.Inventory()[ItemKaleSeed]; held {
		t.Fatalf("over-removal should delete the item, inventory = %v", player.Inventory())
	}
	if player.ItemCount(ItemKaleSeed) != 0 {
		t.Fatalf("count after over-removal = %d, want 0", player.ItemCount(ItemKaleSeed))
	}
}

func TestAddItemAccumulates(t *testing.T) {
	player := NewPlayer(nil)

	player.AddItem(ItemBerry, 3)
	player.AddItem(ItemBerry, 2)
	if player.ItemCount(ItemBerry) != 5 {
		t.Fatalf("berry count = %d, want 5", player.ItemCount(ItemBerry))
	}
}

func TestSelectItemIgnoresUnheldItems(t *testing.T) {
	player := NewPlayer(map[string]int{ItemPotatoSeed: 1})

	player.SelectItem(ItemBerrySeed)
	if _, ok := player.SelectedItem(); ok {
		t.Fatalf("selected an item not held")
	}

	player.SelectItem(ItemPotatoSeed)
	selected, ok := player.SelectedItem()
	if !ok || selected != ItemPotatoSeed {
		t.Fatalf("selected = %q, %v; want Potato Seed", selected, ok)
	}
}

// Selling out of an item does not invalidate the selection; the selected
// name simply goes stale.
func TestSelectionSurvivesSellingOut(t *testing.T) {
	player := NewPlayer(map[string]int{ItemPotatoSeed: 1})
	player.SelectItem(ItemPotatoSeed)

	if !player.Sell(ItemPotatoSeed, 5) {
		t.Fatalf("sell failed")
	}
	if player.ItemCount(ItemPotatoSeed) != 0 {
		t.Fatalf("seed should be sold out")
	}

	selected, ok := player.SelectedItem()
	if !ok || selected != ItemPotatoSeed {
		t.Fatalf("stale selection = %q, %v; want Potato Seed still selected", selected, ok)
	}
}

func TestEnergyHasNoFloorAndResets(t *testing.T) {
	player := NewPlayer(nil)

	player.ReduceEnergy(150)
	if player.Energy() != -50 {
		t.Fatalf("energy after over-reduction = %d, want -50", player.Energy())
	}

	player.ResetEnergy()
	if player.Energy() != StartEnergy {
		t.Fatalf("energy after reset = %d, want %d", player.Energy(), StartEnergy)
	}
}
