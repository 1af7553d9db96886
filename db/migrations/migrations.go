// Package migrations holds the attribution schema: touchpoints and
// conversions written by ingestion, plus the attribution records, campaign
// credit and spend tables the engine reads and writes.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate targets. Bump it with every new
// migration pair.
const Version = 1
