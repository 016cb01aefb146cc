package farm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BuyPrices[ItemPotatoSeed] != 10 {
		t.Fatalf("potato seed buy price = %d, want 10", cfg.BuyPrices[ItemPotatoSeed])
	}
	if cfg.SellPrices[ItemKale] != 110 {
		t.Fatalf("kale sell price = %d, want 110", cfg.SellPrices[ItemKale])
	}
	if _, ok := cfg.BuyPrices[ItemPotato]; ok {
		t.Fatalf("potatoes should not be purchasable by default")
	}
	if cfg.StartingInventory[ItemPotatoSeed] != 5 || cfg.StartingInventory[ItemKaleSeed] != 5 {
		t.Fatalf("starting inventory = %v", cfg.StartingInventory)
	}
}

func TestLoadConfigAppliesDefaultsForMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.yaml")
	content := "map_path: maps/custom.txt\nbuy_prices:\n  Potato Seed: 3\nstarting_inventory:\n  Berry Seed: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.MapPath != "maps/custom.txt" {
		t.Fatalf("map path = %q", cfg.MapPath)
	}
	if cfg.BuyPrices[ItemPotatoSeed] != 3 {
		t.Fatalf("overridden buy price = %d, want 3", cfg.BuyPrices[ItemPotatoSeed])
	}
	if _, ok := cfg.BuyPrices[ItemKaleSeed]; ok {
		t.Fatalf("explicit buy table should replace the default, got %v", cfg.BuyPrices)
	}
	if cfg.SellPrices[ItemBerry] != 50 {
		t.Fatalf("default sell prices not applied: %v", cfg.SellPrices)
	}
	if cfg.StartingInventory[ItemBerrySeed] != 2 || len(cfg.StartingInventory) != 1 {
		t.Fatalf("starting inventory = %v", cfg.StartingInventory)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing config accepted")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("buy_prices: [not, a, map]"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("malformed config accepted")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatalf("config without a map source accepted")
	}

	cfg.Map = []string{"GG"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg.BuyPrices[ItemPotatoSeed] = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("negative buy price accepted")
	}

	cfg = DefaultConfig()
	cfg.Map = []string{"GG"}
	cfg.SellPrices[ItemPotato] = -5
	if err := cfg.Validate(); err == nil {
		t.Fatalf("negative sell price accepted")
	}
}
