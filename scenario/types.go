package scenario

import (
	"errors"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/gridmap"
)

// Sentinel errors for scenario loading and checking.
var (
	// ErrInvalidScenario indicates a scenario file or entry is malformed.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrExpectation indicates a search outcome differs from the expect block.
	ErrExpectation = errors.New("scenario: expectation not met")
)

// file is the YAML document root.
type file struct {
	Scenarios []spec `yaml:"scenarios"`
}

// spec is one scenario as written in YAML.
type spec struct {
	Name         string   `yaml:"name"`
	Heuristic    string   `yaml:"heuristic"`
	Connectivity string   `yaml:"connectivity"`
	DecreaseKey  bool     `yaml:"decrease_key"`
	Map          []string `yaml:"map"`
	Start        []int    `yaml:"start"`
	Goal         []int    `yaml:"goal"`
	Expect       *Expect  `yaml:"expect"`
}

// Expect describes the outcome a scenario should produce. Cost and Path
// are only compared when set.
type Expect struct {
	Found bool    `yaml:"found"`
	Cost  *int    `yaml:"cost"`
	Path  [][]int `yaml:"path"`
}

// Scenario is a validated, ready-to-run search.
type Scenario struct {
	Name         string
	Map          *gridmap.Map
	Start, Goal  gridmap.Point
	Heuristic    astar.Heuristic
	Connectivity gridmap.Connectivity
	Policy       astar.Policy
	Expect       *Expect
}
