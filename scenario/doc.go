// Package scenario loads declarative search fixtures from YAML and runs them
// through astar.FindPath.
//
// A file holds a list of scenarios; each names a map, optional endpoints
// (defaulting to the A and B markers), the heuristic, the connectivity, the
// re-discovery policy and, optionally, the expected outcome:
//
//	scenarios:
//	  - name: corridor
//	    heuristic: manhattan
//	    connectivity: 4
//	    map:
//	      - "+-----+"
//	      - "|A   B|"
//	      - "+-----+"
//	    expect:
//	      found: true
//	      cost: 4
//
// Errors:
//
//   - ErrInvalidScenario: malformed YAML, missing fields, unknown modes or
//     unresolved endpoints.
//   - ErrExpectation: Check found a mismatch against the expect block.
package scenario
