package analytics

import (
	"github.com/julianstephens/lifetrack/internal/icons"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

// HealHabitConfig rewrites entries whose icon is missing or generic when
// their label now infers a specific tag. The input is not modified.
func HealHabitConfig(cfg []models.HabitConfig) ([]models.HabitConfig, bool) {
	healed := make([]models.HabitConfig, len(cfg))
	copy(healed, cfg)

	changed := false
	for i, h := range healed {
		if !h.Icon.IsGeneric() {
			continue
		}
		if tag := icons.InferHabit(h.Label); !tag.IsGeneric() {
			healed[i].Icon = tag
			changed = true
		}
	}
	return healed, changed
}

// LoadHabitConfig reads the habit config and heals it, writing back only
// when something changed. A second load therefore never writes.
func LoadHabitConfig(p storage.Provider) []models.HabitConfig {
	cfg, changed := HealHabitConfig(p.GetHabitConfig())
	if changed {
		logger.Info("Healed habit icons", "habits", len(cfg))
		p.SetHabitConfig(cfg)
	}
	return cfg
}

// RehydrateCategories derives each custom category's icon from its iconName, or
// its label when iconName is empty. Any icon already set is replaced.
func RehydrateCategories(cats []models.ExpenseCategory) []models.ExpenseCategory {
	out := make([]models.ExpenseCategory, len(cats))
	for i, c := range cats {
		source := c.IconName
		if source == "" {
			source = c.Label
		}
		c.Icon = icons.InferCategory(source)
		out[i] = c
	}
	return out
}
