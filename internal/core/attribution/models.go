package attribution

import (
	"fmt"
	"math"
	"time"

	"mesa-attribution/internal/core/domain"
)

// Position-based (U-shaped) credit split for journeys of three or more.
const (
	positionEdgeShare   = 0.4
	positionMiddleShare = 0.2
)

// Apply runs model over journey. The journey must already be ordered by
// time. An empty journey yields an empty result. Every returned weight is
// non-negative and, for every model except Custom, the weights sum to 1.
//
// The second return value reports whether the weights were recovered by
// uniform fallback after a zero-total normalization.
func Apply(model Model, journey []domain.Touchpoint, conv domain.Conversion, opts Options) ([]domain.AttributedTouchpoint, bool, error) {
	if len(journey) == 0 {
		if !model.Valid() {
			return nil, false, fmt.Errorf("%w: %s", domain.ErrUnknownModel, model)
		}
		return []domain.AttributedTouchpoint{}, false, nil
	}

	switch model {
	case FirstClick:
		return firstClick(journey), false, nil
	case LastClick:
		return lastClick(journey), false, nil
	case Linear:
		return linear(journey), false, nil
	case TimeDecay:
		out, degenerate := timeDecay(journey, conv, opts.halfLife())
		return out, degenerate, nil
	case PositionBased:
		return positionBased(journey), false, nil
	case Algorithmic:
		out, degenerate := algorithmic(journey, conv, opts)
		return out, degenerate, nil
	case Custom:
		return custom(journey, opts.Rules), false, nil
	default:
		return nil, false, fmt.Errorf("%w: %s", domain.ErrUnknownModel, model)
	}
}

func attributed(tp domain.Touchpoint, weight float64, index, n int) domain.AttributedTouchpoint {
	return domain.AttributedTouchpoint{
		Touchpoint:     tp,
		Weight:         weight,
		Position:       index + 1,
		TotalPositions: n,
	}
}

func firstClick(journey []domain.Touchpoint) []domain.AttributedTouchpoint {
	return []domain.AttributedTouchpoint{attributed(journey[0], 1, 0, len(journey))}
}

func lastClick(journey []domain.Touchpoint) []domain.AttributedTouchpoint {
	n := len(journey)
	return []domain.AttributedTouchpoint{attributed(journey[n-1], 1, n-1, n)}
}

func linear(journey []domain.Touchpoint) []domain.AttributedTouchpoint {
	n := len(journey)
	w := 1 / float64(n)
	out := make([]domain.AttributedTouchpoint, n)
	for i, tp := range journey {
		out[i] = attributed(tp, w, i, n)
	}
	return out
}

// TimeDecayWeight is the raw, pre-normalization time-decay weight of a
// touchpoint that happened age before the conversion.
func TimeDecayWeight(age, halfLife time.Duration) float64 {
	return math.Pow(0.5, float64(age)/float64(halfLife))
}

// timeDecay measures ages from the youngest touchpoint. Normalized weights
// are unchanged and the largest raw weight is always 1, so short half-lives
// cannot underflow every weight to zero.
func timeDecay(journey []domain.Touchpoint, conv domain.Conversion, halfLife time.Duration) ([]domain.AttributedTouchpoint, bool) {
	ages := make([]time.Duration, len(journey))
	youngest := time.Duration(math.MaxInt64)
	for i, tp := range journey {
		ages[i] = conv.OccurredAt.Sub(tp.OccurredAt)
		youngest = min(youngest, ages[i])
	}
	raw := make([]float64, len(journey))
	for i, age := range ages {
		raw[i] = TimeDecayWeight(age-youngest, halfLife)
	}
	weights, degenerate := normalize(raw)
	return withWeights(journey, weights), degenerate
}

func positionBased(journey []domain.Touchpoint) []domain.AttributedTouchpoint {
	n := len(journey)
	weights := make([]float64, n)
	switch n {
	case 1:
		weights[0] = 1
	case 2:
		// Explicit split; the U-shape below would divide by zero.
		weights[0], weights[1] = 0.5, 0.5
	default:
		middle := positionMiddleShare / float64(n-2)
		for i := range weights {
			weights[i] = middle
		}
		weights[0] = positionEdgeShare
		weights[n-1] = positionEdgeShare
	}
	return withWeights(journey, weights)
}

func algorithmic(journey []domain.Touchpoint, conv domain.Conversion, opts Options) ([]domain.AttributedTouchpoint, bool) {
	factors := Score(journey, conv, opts.Performance, opts.Weights, opts.roasScale())
	raw := make([]float64, len(factors))
	for i, f := range factors {
		// Negative factor contributions are kept in the composite but a
		// touchpoint never receives negative credit.
		raw[i] = math.Max(f.Composite, 0)
	}
	weights, degenerate := normalize(raw)
	out := withWeights(journey, weights)
	for i := range out {
		f := factors[i]
		out[i].Factors = &f
	}
	return out, degenerate
}

// custom sums matching rule weights per touchpoint. The result is clamped at
// zero and not normalized; rule weights may add up to more or less than one.
func custom(journey []domain.Touchpoint, rules []Rule) []domain.AttributedTouchpoint {
	if len(rules) == 0 {
		return linear(journey)
	}
	n := len(journey)
	out := make([]domain.AttributedTouchpoint, n)
	for i, tp := range journey {
		var w float64
		for _, r := range rules {
			if r.matches(tp, i, n) {
				w += r.Weight
			}
		}
		if !(w > 0) {
			w = 0
		}
		out[i] = attributed(tp, w, i, n)
	}
	return out
}

func withWeights(journey []domain.Touchpoint, weights []float64) []domain.AttributedTouchpoint {
	n := len(journey)
	out := make([]domain.AttributedTouchpoint, n)
	for i, tp := range journey {
		out[i] = attributed(tp, weights[i], i, n)
	}
	return out
}

// normalize scales raw so it sums to one. A zero (or non-finite) total
// falls back to uniform weights and reports true.
func normalize(raw []float64) ([]float64, bool) {
	var total float64
	for _, v := range raw {
		total += v
	}
	out := make([]float64, len(raw))
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		u := 1 / float64(len(raw))
		for i := range out {
			out[i] = u
		}
		return out, true
	}
	for i, v := range raw {
		out[i] = v / total
	}
	return out, false
}

// ValidateRules checks that every rule uses a known position.
func ValidateRules(rules []Rule) error {
	for i, r := range rules {
		switch r.Position {
		case PositionAny, PositionFirst, PositionLast:
		default:
			return fmt.Errorf("rules[%d]: invalid position %q", i, r.Position)
		}
		if math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) {
			return fmt.Errorf("rules[%d]: weight must be finite", i)
		}
	}
	return nil
}
