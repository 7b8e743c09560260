// Package tuning holds the pacing and geometry knobs of the drama manager.
package tuning

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning is loaded from YAML on top of Default().
type Tuning struct {
	// TierBudgets is how long the story dwells at each tier. The terminal
	// tier is len(TierBudgets).
	TierBudgets []time.Duration `yaml:"tier_budgets"`

	RevealRadius   float64 `yaml:"reveal_radius"`
	InteractRadius float64 `yaml:"interact_radius"`

	MinSeparation float64 `yaml:"min_separation"`
	Margin        float64 `yaml:"margin"`
	ItemJitter    float64 `yaml:"item_jitter"`

	PlacementAttempts     int `yaml:"placement_attempts"`
	ItemPlacementAttempts int `yaml:"item_placement_attempts"`
}

// Default returns the stock pacing: six tiers, then the story resolves.
func Default() Tuning {
	return Tuning{
		TierBudgets: []time.Duration{
			45 * time.Second,
			60 * time.Second,
			60 * time.Second,
			90 * time.Second,
			90 * time.Second,
			120 * time.Second,
		},
		RevealRadius:          150,
		InteractRadius:        60,
		MinSeparation:         60,
		Margin:                40,
		ItemJitter:            30,
		PlacementAttempts:     1000,
		ItemPlacementAttempts: 100,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Terminal is the tier at which the story is resolved.
func (t Tuning) Terminal() int {
	return len(t.TierBudgets)
}

// Budget returns the time budget of tier, or zero past the last one.
func (t Tuning) Budget(tier int) time.Duration {
	if tier < 0 || tier >= len(t.TierBudgets) {
		return 0
	}
	return t.TierBudgets[tier]
}

// Validate checks the invariants the drama manager relies on.
func (t Tuning) Validate() error {
	var errs []error
	if len(t.TierBudgets) == 0 {
		errs = append(errs, errors.New("tier_budgets must list at least one tier"))
	}
	for i, b := range t.TierBudgets {
		if b <= 0 {
			errs = append(errs, fmt.Errorf("tier_budgets[%d] must be positive, got %s", i, b))
		}
	}
	if t.InteractRadius <= 0 {
		errs = append(errs, fmt.Errorf("interact_radius must be positive, got %v", t.InteractRadius))
	}
	if t.RevealRadius <= t.InteractRadius {
		errs = append(errs, fmt.Errorf("reveal_radius (%v) must be larger than interact_radius (%v)", t.RevealRadius, t.InteractRadius))
	}
	if t.MinSeparation < 0 || t.Margin < 0 || t.ItemJitter < 0 {
		errs = append(errs, errors.New("min_separation, margin and item_jitter must not be negative"))
	}
	if t.PlacementAttempts <= 0 || t.ItemPlacementAttempts <= 0 {
		errs = append(errs, errors.New("placement attempt budgets must be positive"))
	}
	return errors.Join(errs...)
}
