package frechet

import (
	"fmt"

	"github.com/chaot4/frechet-distance/curve"
)

// AlgorithmNames lists the algorithm selectors accepted by
// RunSelectedAlgorithm, in the order the test_curves benchmark CLI
// presents them.
var AlgorithmNames = []string{"light", "naive", "greedy", "adaptiveGreedy", "adaptiveSimultaneousGreedy", "negative"}

// RunSelectedAlgorithm decides lessThan(delta, P, Q) using exactly one
// named algorithm, bypassing the production filter pipeline and
// Decider dispatch. It exists for the test_curves benchmark CLI (spec
// §6), which compares the individual filters/deciders against each
// other rather than the combined pipeline; production code should use
// Decider.LessThan instead.
//
// "greedy" and "negative" are incomplete decision procedures on their
// own (a filter, not a decider): greedy can only prove LESS, never
// GREATER, and negative can only prove GREATER. An inconclusive greedy
// walk is reported as GREATER (false) and an inconclusive negative
// filter as LESS (true); both are benchmark-only approximations, not
// sound standalone answers.
func RunSelectedAlgorithm(name string, P, Q *curve.Curve, delta float64) (bool, error) {
	switch name {
	case "light":
		ans, _ := LessThanLight(P, Q, delta, DefaultOptions())
		return ans, nil
	case "naive":
		return LessThanNaive(P, Q, delta, nil), nil
	case "greedy":
		return greedy(P, Q, delta), nil
	case "adaptiveGreedy":
		ok, _, _ := adaptiveGreedy(P, Q, delta)
		return ok, nil
	case "adaptiveSimultaneousGreedy":
		ok, _ := adaptiveSimultaneousGreedy(P, Q, delta)
		return ok, nil
	case "negative":
		_, stopI, stopJ := adaptiveGreedy(P, Q, delta)
		no, ok := negativeFilter(P, Q, delta, stopI, stopJ)
		return !(ok && no), nil
	default:
		return false, fmt.Errorf("frechet: unknown algorithm %q", name)
	}
}
