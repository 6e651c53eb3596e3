package engine

import (
	"strings"

	"github.com/nathoo/hookline/types"
)

// DefaultSpecies is the pond used when no content pack defines fish.
var DefaultSpecies = []types.FishDef{
	{ID: "medaka", Name: "medaka", Level: 1, Health: 10, Countdown: 5, Price: 10, Shadow: 1, Weight: 40},
	{ID: "aji", Name: "horse mackerel", Level: 1, Health: 20, Countdown: 5, Price: 30, Shadow: 2, Weight: 30},
	{ID: "saba", Name: "mackerel", Level: 2, Health: 30, Countdown: 4, Price: 80, Shadow: 2, Weight: 20},
	{ID: "tai", Name: "sea bream", Level: 3, Health: 40, Countdown: 4, Price: 200, Shadow: 3, Weight: 10},
	{ID: "maguro", Name: "tuna", Level: 4, Health: 60, Countdown: 3, Price: 800, Shadow: 4, Weight: 5},
	{ID: "ryuguno", Name: "oarfish", Level: 5, Health: 100, Countdown: 3, Price: 3000, Shadow: 5, Weight: 1},
}

// Pond picks which fish bites when the player casts.
type Pond struct {
	species []types.FishDef
}

// NewPond creates a pond over species, or DefaultSpecies if none are given.
func NewPond(species []types.FishDef) *Pond {
	if len(species) == 0 {
		species = DefaultSpecies
	}
	return &Pond{species: species}
}

// Species returns the fish that can bite.
func (p *Pond) Species() []types.FishDef {
	return append([]types.FishDef(nil), p.species...)
}

// Cast picks a species by weight and returns a fresh target for it.
// A level above zero restricts the pick to that level. Returns false when
// no species qualifies.
func (p *Pond) Cast(rng *RNG, level int) (*types.Target, bool) {
	var pool []types.FishDef
	var weights []int
	for _, f := range p.species {
		if level > 0 && f.Level != level {
			continue
		}
		pool = append(pool, f)
		weights = append(weights, f.Weight)
	}
	if len(pool) == 0 {
		return nil, false
	}

	f := pool[rng.Weighted(weights)]
	return &types.Target{
		ID:        f.ID,
		Name:      f.Name,
		Level:     f.Level,
		Health:    f.Health,
		Countdown: f.Countdown,
		Price:     f.Price,
		Shadow:    f.Shadow,
	}, true
}

// Ripple draws the shadow a fish casts before it bites, one ring per size.
func Ripple(shadow int) string {
	return "(" + strings.Repeat("~", max(shadow, 1)) + ")"
}
