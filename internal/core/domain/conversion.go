package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversion is a single conversion event. Identity keys are copied from the
// touchpoint that triggered it.
type Conversion struct {
	ID           int64
	TouchpointID int64
	Value        decimal.Decimal
	Currency     string
	OccurredAt   time.Time

	Identity

	// AttributionModel is the name of the model last used to attribute the
	// conversion. Empty until the first successful run.
	AttributionModel string
}
