package farm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemOrder is the order in which items are listed to the player.
var ItemOrder = []string{
	ItemPotatoSeed,
	ItemKaleSeed,
	ItemBerrySeed,
	ItemPotato,
	ItemKale,
	ItemBerry,
}

// defaultBuyPrices lists what the store charges for each purchasable item.
// Items not listed cannot be bought.
var defaultBuyPrices = map[string]int{
	ItemPotatoSeed: 10,
	ItemKaleSeed:   70,
	ItemBerrySeed:  80,
}

// defaultSellPrices lists what the store pays for each sellable item.
var defaultSellPrices = map[string]int{
	ItemPotatoSeed: 5,
	ItemPotato:     25,
	ItemKaleSeed:   35,
	ItemKale:       110,
	ItemBerrySeed:  40,
	ItemBerry:      50,
}

var defaultStartingInventory = map[string]int{
	ItemPotatoSeed: 5,
	ItemKaleSeed:   5,
}

// FarmConfig configures a new farm: where the map comes from, the store's
// price tables and the player's starting inventory. Zero-valued fields fall
// back to the built-in defaults.
type FarmConfig struct {
	// MapPath is the map file to load. Ignored when Map is set.
	MapPath string `yaml:"map_path"`
	// Map supplies the grid rows directly, one string per row.
	Map []string `yaml:"map"`

	BuyPrices         map[string]int `yaml:"buy_prices"`
	SellPrices        map[string]int `yaml:"sell_prices"`
	StartingInventory map[string]int `yaml:"starting_inventory"`
}

// DefaultConfig returns a config with the built-in price tables and
// starting inventory. The map source must still be supplied.
func DefaultConfig() FarmConfig {
	cfg := FarmConfig{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a FarmConfig from a YAML file.
func LoadConfig(path string) (FarmConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FarmConfig{}, fmt.Errorf("read config file: %w", err)
	}

	var cfg FarmConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FarmConfig{}, fmt.Errorf("parse config file: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *FarmConfig) applyDefaults() {
	if c.BuyPrices == nil {
		c.BuyPrices = copyCounts(defaultBuyPrices)
	}
	if c.SellPrices == nil {
		c.SellPrices = copyCounts(defaultSellPrices)
	}
	if c.StartingInventory == nil {
		c.StartingInventory = copyCounts(defaultStartingInventory)
	}
}

func (c FarmConfig) Validate() error {
	if len(c.Map) == 0 && c.MapPath == "" {
		return fmt.Errorf("no map source: set map_path or map rows")
	}

	for item, price := range c.BuyPrices {
		if price < 0 {
			return fmt.Errorf("negative buy price for %s: %d", item, price)
		}
	}
	for item, price := range c.SellPrices {
		if price < 0 {
			return fmt.Errorf("negative sell price for %s: %d", item, price)
		}
	}

	return nil
}

func copyCounts(counts map[string]int) map[string]int {
	copied := make(map[string]int, len(counts))
	for key, value := range counts {
		copied[key] = value
	}
	return copied
}
