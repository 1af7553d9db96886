// Package attribution implements the attribution computation engine:
// journey resolution, the weighting models, the composite scorer used by
// the algorithmic model and the result assembler. Everything in this
// package is pure; I/O happens in the use case that calls it.
package attribution

import (
	"fmt"
	"strings"
	"time"

	"mesa-attribution/internal/core/domain"
)

// Model identifies one of the registered attribution models. The set is
// closed: adding a model means adding a constant here and a case in Apply.
type Model uint8

const (
	FirstClick Model = iota + 1
	LastClick
	Linear
	TimeDecay
	PositionBased
	Algorithmic
	Custom
)

// Models lists every registered model in a stable order.
var Models = []Model{FirstClick, LastClick, Linear, TimeDecay, PositionBased, Algorithmic, Custom}

// String returns the configuration name of the model.
func (m Model) String() string {
	switch m {
	case FirstClick:
		return "first_click"
	case LastClick:
		return "last_click"
	case Linear:
		return "linear"
	case TimeDecay:
		return "time_decay"
	case PositionBased:
		return "position_based"
	case Algorithmic:
		return "algorithmic"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Model(%d)", uint8(m))
	}
}

// Valid reports whether m is a registered model.
func (m Model) Valid() bool {
	return m >= FirstClick && m <= Custom
}

// ParseModel resolves a configuration name. Unknown names return
// domain.ErrUnknownModel; there is no silent default.
func ParseModel(name string) (Model, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, m := range Models {
		if m.String() == n {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrUnknownModel, name)
}

// Default engine parameters.
const (
	DefaultLookbackWindow = 30 * 24 * time.Hour
	DefaultHalfLife       = 7 * 24 * time.Hour
	DefaultRoasScale      = 5.0
)

// Options carries per-run model parameters.
type Options struct {
	// LookbackWindow bounds journey resolution. Non-positive values mean
	// DefaultLookbackWindow.
	LookbackWindow time.Duration
	// HalfLife is used by TimeDecay. Non-positive values mean DefaultHalfLife.
	HalfLife time.Duration
	// Rules are used by Custom. An empty list makes Custom behave as Linear.
	Rules []Rule
	// Weights are used by Algorithmic.
	Weights ScoreWeights
	// RoasScale maps campaign ROAS into [0,1] as min(roas/RoasScale, 1).
	RoasScale float64
	// Performance holds the lookups Algorithmic scores against.
	Performance domain.PerformanceSnapshot
}

// DefaultOptions returns options with the stock half-life, composite
// weights and ROAS scale.
func DefaultOptions() Options {
	return Options{
		LookbackWindow: DefaultLookbackWindow,
		HalfLife:       DefaultHalfLife,
		Weights:        DefaultScoreWeights(),
		RoasScale:      DefaultRoasScale,
	}
}

// Window returns the effective lookback window.
func (o Options) Window() time.Duration {
	if o.LookbackWindow <= 0 {
		return DefaultLookbackWindow
	}
	return o.LookbackWindow
}

func (o Options) halfLife() time.Duration {
	if o.HalfLife <= 0 {
		return DefaultHalfLife
	}
	return o.HalfLife
}

func (o Options) roasScale() float64 {
	if o.RoasScale <= 0 {
		return DefaultRoasScale
	}
	return o.RoasScale
}

// RulePosition restricts a rule to the first or last touchpoint.
type RulePosition string

const (
	PositionAny   RulePosition = ""
	PositionFirst RulePosition = "first"
	PositionLast  RulePosition = "last"
)

// Rule is a user-authored credit rule for the Custom model. Every non-empty
// predicate must hold for the rule to match; a rule without predicates
// matches every touchpoint.
type Rule struct {
	Position   RulePosition `json:"position,omitempty"`
	CampaignID string       `json:"campaign_id,omitempty"`
	Channel    string       `json:"channel,omitempty"`
	DeviceType string       `json:"device_type,omitempty"`
	Weight     float64      `json:"weight"`
}

func (r Rule) matches(tp domain.Touchpoint, index, n int) bool {
	switch r.Position {
	case PositionFirst:
		if index != 0 {
			return false
		}
	case PositionLast:
		if index != n-1 {
			return false
		}
	}
	if r.CampaignID != "" && r.CampaignID != tp.CampaignID {
		return false
	}
	if r.Channel != "" && !strings.EqualFold(r.Channel, tp.Channel) {
		return false
	}
	if r.DeviceType != "" && !strings.EqualFold(r.DeviceType, tp.DeviceType) {
		return false
	}
	return true
}
