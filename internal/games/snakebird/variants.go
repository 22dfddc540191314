package snakebird

import (
	"sync"

	"github.com/vovakirdan/snakebird/internal/config"
	"github.com/vovakirdan/snakebird/internal/registry"
)

// Variant is one feature increment of the game.
type Variant struct {
	ID          string
	Title       string
	Description string
	Features    config.Features
}

// Variants lists the increments from the plain pipe game to the full game.
var Variants = []Variant{
	{
		ID:          "classic",
		Title:       "Classic",
		Description: "Steer the bird through the pipes",
	},
	{
		ID:          "frogs",
		Title:       "Frogs",
		Description: "Eat frogs to grow a tail, avoid the red ones",
		Features:    config.Features{Frogs: true, Growth: true},
	},
	{
		ID:          "portals",
		Title:       "Portals",
		Description: "Thread portal windows into a timed bonus world",
		Features:    config.Features{Frogs: true, Growth: true, BonusWorld: true},
	},
	{
		ID:          "minigames",
		Title:       "Mini-Games",
		Description: "Every portal plays dice, cards, a spinner or a chest",
		Features:    config.Features{Frogs: true, Growth: true, BonusWorld: true, MiniGames: true},
	},
	{
		ID:          "snakebird",
		Title:       "Snake Bird Adventure",
		Description: "Everything, plus invincibility after each bonus world",
		Features:    config.Features{Frogs: true, Growth: true, BonusWorld: true, MiniGames: true, Invincibility: true},
	},
}

// Apply returns cfg with only the features both the variant and cfg enable.
func (v Variant) Apply(cfg config.SnakeBirdConfig) config.SnakeBirdConfig {
	f := cfg.Features
	cfg.Features = config.Features{
		Frogs:         v.Features.Frogs && f.Frogs,
		Growth:        v.Features.Growth && f.Growth,
		BonusWorld:    v.Features.BonusWorld && f.BonusWorld,
		MiniGames:     v.Features.MiniGames && f.MiniGames,
		Invincibility: v.Features.Invincibility && f.Invincibility,
	}
	return cfg
}

// VariantByID looks up a variant.
func VariantByID(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

var (
	baseMu     sync.RWMutex
	baseConfig = config.DefaultSnakeBirdConfig()
)

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.SnakeBirdConfig) {
	baseMu.Lock()
	defer baseMu.Unlock()
	baseConfig = cfg
}

func currentConfig() config.SnakeBirdConfig {
	baseMu.RLock()
	defer baseMu.RUnlock()
	return baseConfig
}

// Register the variants with the registry
func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
