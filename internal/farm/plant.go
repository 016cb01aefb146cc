package farm

// Canonical item names used by inventories, price tables and harvest yields.
const (
	ItemPotatoSeed = "Potato Seed"
	ItemKaleSeed   = "Kale Seed"
	ItemBerrySeed  = "Berry Seed"
	ItemPotato     = "Potato"
	ItemKale       = "Kale"
	ItemBerry      = "Berry"
)

// Yield is the item and quantity produced by a successful harvest.
type Yield struct {
	Item     string
	Quantity int
}

// Plant is the growth state machine of a single planted crop. The set of
// implementations is closed: Potato, Kale and Berry. A plant belongs to
// exactly one grid position in a Farm's plant map and is only mutated
// through Age and Harvest.
type Plant interface {
	// Name identifies the crop variant, e.g. "potato".
	Name() string
	// Stage is the current growth stage, starting at 1. Its ceiling and
	// meaning are variant specific.
	Stage() int
	// Age advances the plant by one simulated day.
	Age()
	// CanHarvest reports whether the plant is ready to be harvested.
	CanHarvest() bool
	// Harvest collects the plant's produce if it is ready. It returns
	// false, with a zero Yield, when the plant is not ready.
	Harvest() (Yield, bool)
	// RemoveOnHarvest reports whether the plant should be deleted from
	// the farm after a successful harvest.
	RemoveOnHarvest() bool
}

// PlantForSeed returns a freshly planted crop for the given seed item, or
// false when the item is not a known seed.
func PlantForSeed(item string) (Plant, bool) {
	switch item {
	case ItemPotatoSeed:
		return NewPotatoPlant(), true
	case ItemKaleSeed:
		return NewKalePlant(), true
	case ItemBerrySeed:
		return NewBerryPlant(), true
	}
	return nil, false
}

// PotatoPlant grows one stage per day up to stage 5, where it can be
// harvested once and is then removed.
type PotatoPlant struct {
	stage int
}

func NewPotatoPlant() *PotatoPlant {
	return &PotatoPlant{stage: 1}
}

func (p *PotatoPlant) Name() string { return "potato" }

func (p *PotatoPlant) Stage() int { return p.stage }

func (p *PotatoPlant) Age() {
	if p.stage < 5 {
		p.stage++
	}
}

func (p *PotatoPlant) CanHarvest() bool { return p.stage == 5 }

func (p *PotatoPlant) Harvest() (Yield, bool) {
	if !p.CanHarvest() {
		return Yield{}, false
	}
	return Yield{Item: ItemPotato, Quantity: 1}, true
}

func (p *PotatoPlant) RemoveOnHarvest() bool { return true }

// KalePlant reaches its harvest stage 5 after six days; before that the
// stage is derived from the day counter as (days+1)/2 + 1.
type KalePlant struct {
	stage int
	days  int
}

func NewKalePlant() *KalePlant {
	return &KalePlant{stage: 1}
}

func (p *KalePlant) Name() string { return "kale" }

func (p *KalePlant) Stage() int { return p.stage }

func (p *KalePlant) Age() {
	p.days++
	if p.days >= 6 {
		p.stage = 5
	} else {
		p.stage = (p.days+1)/2 + 1
	}
}

func (p *KalePlant) CanHarvest() bool { return p.stage == 5 }

func (p *KalePlant) Harvest() (Yield, bool) {
	if !p.CanHarvest() {
		return Yield{}, false
	}
	return Yield{Item: ItemKale, Quantity: 1}, true
}

func (p *KalePlant) RemoveOnHarvest() bool { return true }

// Stage of a berry plant for each day of its initial growth, indexed by the
// day counter after it has been incremented. Index 0 is never reached once
// the plant has aged.
var berryStageByDay = [...]int{1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5, 6}

// BerryPlant matures to stage 6 over 13 days and is not removed when
// harvested: each harvest drops it back to stage 5, and it returns to
// stage 6 once four days have passed since the last harvest.
type BerryPlant struct {
	stage            int
	days             int
	daysSinceHarvest int
}

func NewBerryPlant() *BerryPlant {
	return &BerryPlant{stage: 1}
}

func (p *BerryPlant) Name() string { return "berry" }

func (p *BerryPlant) Stage() int { return p.stage }

func (p *BerryPlant) Age() {
	p.days++

	// Initial growth follows the stage table.
	if p.days <= 13 {
		p.stage = berryStageByDay[p.days]
		return
	}

	// Mature plant: regrows to harvestable four days after the last
	// harvest, then stays there until harvested again.
	p.daysSinceHarvest++
	if p.daysSinceHarvest >= 4 || p.stage == 6 {
		p.stage = 6
	} else {
		p.stage = 5
	}
}

func (p *BerryPlant) CanHarvest() bool { return p.stage == 6 }

func (p *BerryPlant) Harvest() (Yield, bool) {
	if !p.CanHarvest() {
		return Yield{}, false
	}
	p.stage = 5
	p.daysSinceHarvest = 0
	return Yield{Item: ItemBerry, Quantity: 3}, true
}

func (p *BerryPlant) RemoveOnHarvest() bool { return false }
