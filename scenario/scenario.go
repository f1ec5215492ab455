package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/gridmap"
)

// Load decodes and validates every scenario in r. Unknown YAML fields are
// rejected. Defaults: heuristic manhattan, connectivity 4, start and goal at
// the gridmap.TagStart and gridmap.TagGoal markers.
func Load(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
	}

	out := make([]Scenario, 0, len(f.Scenarios))
	seen := make(map[string]bool, len(f.Scenarios))
	for i, s := range f.Scenarios {
		sc, err := s.build()
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%q): %w", i, s.Name, err)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidScenario, sc.Name)
		}
		seen[sc.Name] = true
		out = append(out, sc)
	}
	return out, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// build validates s and resolves defaults.
func (s spec) build() (Scenario, error) {
	if s.Name == "" {
		return Scenario{}, fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	m, err := gridmap.NewMap(s.Map)
	if err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	sc := Scenario{
		Name:         s.Name,
		Map:          m,
		Heuristic:    astar.Manhattan,
		Connectivity: gridmap.Conn4,
		Policy:       astar.PolicyFirstDiscovery,
		Expect:       s.Expect,
	}
	if s.Heuristic != "" {
		if sc.Heuristic, err = astar.ParseHeuristic(s.Heuristic); err != nil {
			return Scenario{}, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}
	if s.Connectivity != "" {
		if sc.Connectivity, err = gridmap.ParseConnectivity(s.Connectivity); err != nil {
			return Scenario{}, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}
	if s.DecreaseKey {
		sc.Policy = astar.PolicyDecreaseKey
	}
	if sc.Start, err = endpoint(m, "start", s.Start, gridmap.TagStart); err != nil {
		return Scenario{}, err
	}
	if sc.Goal, err = endpoint(m, "goal", s.Goal, gridmap.TagGoal); err != nil {
		return Scenario{}, err
	}
	if s.Expect != nil {
		for _, p := range s.Expect.Path {
			if len(p) != 2 {
				return Scenario{}, fmt.Errorf("%w: expect.path entries need two coordinates, got %v", ErrInvalidScenario, p)
			}
		}
	}
	return sc, nil
}

// endpoint returns xy as a point, or the first cell tagged marker when xy
// is empty.
func endpoint(m *gridmap.Map, field string, xy []int, marker byte) (gridmap.Point, error) {
	switch len(xy) {
	case 0:
		p, ok := m.Locate(marker)
		if !ok {
			return gridmap.Point{}, fmt.Errorf("%w: %s omitted and no %q marker on the map", ErrInvalidScenario, field, marker)
		}
		return p, nil
	case 2:
		return gridmap.Point{X: xy[0], Y: xy[1]}, nil
	default:
		return gridmap.Point{}, fmt.Errorf("%w: %s needs two coordinates, got %v", ErrInvalidScenario, field, xy)
	}
}

// Run executes the scenario. Extra options are applied after the
// scenario's own policy.
func (s *Scenario) Run(opts ...astar.Option) (*astar.Result, error) {
	all := append([]astar.Option{astar.WithPolicy(s.Policy)}, opts...)
	return astar.FindPath(s.Map, s.Start, s.Goal, s.Heuristic, s.Connectivity, all...)
}

// Check compares the outcome of Run against s.Expect. A scenario without
// an expect block passes unless err is something other than ErrNotFound.
func (s *Scenario) Check(res *astar.Result, err error) error {
	if err != nil && !errors.Is(err, astar.ErrNotFound) {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	if s.Expect == nil {
		return nil
	}
	found := err == nil && res.Found()
	if found != s.Expect.Found {
		return fmt.Errorf("%w: %q found=%t, want %t", ErrExpectation, s.Name, found, s.Expect.Found)
	}
	if !found {
		return nil
	}
	if s.Expect.Cost != nil && res.Cost != *s.Expect.Cost {
		return fmt.Errorf("%w: %q cost=%d, want %d", ErrExpectation, s.Name, res.Cost, *s.Expect.Cost)
	}
	if s.Expect.Path != nil {
		want := make([]gridmap.Point, len(s.Expect.Path))
		for i, p := range s.Expect.Path {
			want[i] = gridmap.Point{X: p[0], Y: p[1]}
		}
		if !slices.Equal(want, res.Path) {
			return fmt.Errorf("%w: %q path=%v, want %v", ErrExpectation, s.Name, res.Path, want)
		}
	}
	return nil
}
