package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/raj457036/Path-Finding-Visualizer/scheduler"
	"github.com/raj457036/Path-Finding-Visualizer/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	Grid      Grid      `yaml:"grid"`
	Algorithm Algorithm `yaml:"algorithm"`
	Scheduler Scheduler `yaml:"scheduler"`
	Log       Log       `yaml:"log"`
}

// Grid sizes the board.
type Grid struct {
	Rows int `yaml:"rows" validate:"min=1,max=1000"`
	Cols int `yaml:"cols" validate:"min=1,max=1000"`
}

// Algorithm selects the search variant and the A* tuning knobs.
type Algorithm struct {
	Name             string  `yaml:"name" validate:"required"`
	Heuristic        string  `yaml:"heuristic" validate:"oneof=manhattan euclidean diagonal"`
	DiagonalCost     float64 `yaml:"diagonalCost" validate:"gt=0"`
	AdmissibleWeight float64 `yaml:"admissibleWeight" validate:"min=1,max=100"`
}

// Scheduler sets the animation cadence.
type Scheduler struct {
	Speed           string `yaml:"speed" validate:"oneof=fast medium slow manual"`
	MaxReplayFrames int    `yaml:"maxReplayFrames" validate:"min=0"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Grid: Grid{Rows: 20, Cols: 40},
		Algorithm: Algorithm{
			Name:             string(search.AStar),
			Heuristic:        search.Manhattan.String(),
			DiagonalCost:     search.DefaultDiagonalCost,
			AdmissibleWeight: search.MinAdmissibleWeight,
		},
		Scheduler: Scheduler{
			Speed:           scheduler.Fast.String(),
			MaxReplayFrames: scheduler.DefaultMaxReplayFrames,
		},
		Log: Log{Level: "info"},
	}
}

var validate = validator.New()

// Normalize applies the lenient fix-ups: the admissible weight is clamped.
func (c *Config) Normalize() {
	c.Algorithm.AdmissibleWeight = search.ClampWeight(c.Algorithm.AdmissibleWeight)
}

// Validate checks struct constraints and that the algorithm name resolves.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := search.ParseName(c.Algorithm.Name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SearchName resolves the configured algorithm.
func (c *Config) SearchName() (search.Name, error) {
	return search.ParseName(c.Algorithm.Name)
}

// SearchOptions converts the A* settings into search options.
func (c *Config) SearchOptions() ([]search.Option, error) {
	h, err := search.ParseHeuristic(c.Algorithm.Heuristic)
	if err != nil {
		return nil, err
	}
	return []search.Option{
		search.WithHeuristic(h),
		search.WithDiagonalCost(c.Algorithm.DiagonalCost),
		search.WithAdmissibleWeight(c.Algorithm.AdmissibleWeight),
	}, nil
}

// Speed resolves the configured cadence.
func (c *Config) Speed() (scheduler.Speed, error) {
	return scheduler.ParseSpeed(c.Scheduler.Speed)
}
