package configs

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mesa-attribution/internal/core/attribution"
)

// Attribution holds the engine defaults. Model names one of first_click,
// last_click, linear, time_decay, position_based, algorithmic or custom.
// Rules is a JSON array of custom model rules, for example
// [{"position":"first","weight":0.4},{"channel":"facebook","weight":0.2}].
type Attribution struct {
	Model             string        `env:"MODEL" envDefault:"linear"`
	LookbackWindow    time.Duration `env:"LOOKBACK_WINDOW" envDefault:"720h"`
	HalfLife          time.Duration `env:"HALF_LIFE" envDefault:"168h"`
	LookupConcurrency int           `env:"LOOKUP_CONCURRENCY" envDefault:"4"`
	RoasScale         float64       `env:"ROAS_SCALE" envDefault:"5"`
	Rules             string        `env:"RULES"`

	// Weights are the composite score coefficients of the algorithmic
	// model. Environment variables prefixed with WEIGHT_ populate them.
	Weights ScoreWeights `envPrefix:"WEIGHT_"`
}

// ScoreWeights mirrors attribution.ScoreWeights for environment parsing.
type ScoreWeights struct {
	Recency                float64 `env:"RECENCY" envDefault:"0.30"`
	CampaignConversionRate float64 `env:"CAMPAIGN_CONVERSION_RATE" envDefault:"0.20"`
	CampaignROAS           float64 `env:"CAMPAIGN_ROAS" envDefault:"0.15"`
	ChannelConversionRate  float64 `env:"CHANNEL_CONVERSION_RATE" envDefault:"0.15"`
	Position               float64 `env:"POSITION" envDefault:"0.10"`
	Device                 float64 `env:"DEVICE" envDefault:"0.05"`
	Frequency              float64 `env:"FREQUENCY" envDefault:"0.05"`
}

// Validate checks the model name, the rules and the weights. An all-zero
// weight set is rejected rather than replaced by the defaults.
func (c Attribution) Validate() error {
	if _, err := attribution.ParseModel(c.Model); err != nil {
		return err
	}
	if _, err := c.ParseRules(); err != nil {
		return err
	}
	w := c.Weights
	for name, v := range map[string]float64{
		"recency": w.Recency, "campaign_conversion_rate": w.CampaignConversionRate,
		"campaign_roas": w.CampaignROAS, "channel_conversion_rate": w.ChannelConversionRate,
		"position": w.Position, "device": w.Device, "frequency": w.Frequency,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s must not be negative", name)
		}
	}
	if w == (ScoreWeights{}) {
		return errors.New("at least one score weight must be positive")
	}
	return nil
}

// ParseRules decodes Rules. An empty value yields no rules.
func (c Attribution) ParseRules() ([]attribution.Rule, error) {
	raw := strings.TrimSpace(c.Rules)
	if raw == "" {
		return nil, nil
	}
	var rules []attribution.Rule
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if err := attribution.ValidateRules(rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// Options converts the configuration into engine options.
func (c Attribution) Options() (attribution.Options, error) {
	rules, err := c.ParseRules()
	if err != nil {
		return attribution.Options{}, err
	}
	return attribution.Options{
		LookbackWindow: c.LookbackWindow,
		HalfLife:       c.HalfLife,
		Rules:          rules,
		RoasScale:      c.RoasScale,
		Weights: attribution.ScoreWeights{
			Recency:                c.Weights.Recency,
			CampaignConversionRate: c.Weights.CampaignConversionRate,
			CampaignROAS:           c.Weights.CampaignROAS,
			ChannelConversionRate:  c.Weights.ChannelConversionRate,
			Position:               c.Weights.Position,
			Device:                 c.Weights.Device,
			Frequency:              c.Weights.Frequency,
		},
	}, nil
}
