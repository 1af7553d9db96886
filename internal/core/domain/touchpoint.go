package domain

import "time"

// Touchpoint is a single recorded marketing interaction (click or
// impression) with its campaign metadata and the identity keys used to
// stitch a visitor's journey together. Touchpoints are produced by the
// ingestion pixel and are read-only to the attribution engine.
type Touchpoint struct {
	ID          int64
	CampaignID  string
	AdSetID     string
	AdID        string
	OccurredAt  time.Time
	Channel     string // utm_source
	Medium      string // utm_medium
	UTMCampaign string
	DeviceType  string // mobile, tablet, desktop

	Identity
}

// Identity holds the keys that link touchpoints and conversions to the same
// visitor. Empty keys never match.
type Identity struct {
	IPAddress string
	SessionID string
	ClickID   string // platform click id (fbclid)
	BrowserID string // browser id cookie (_fbp)
}

// HasAny reports whether at least one identity key is set.
func (i Identity) HasAny() bool {
	return i.IPAddress != "" || i.SessionID != "" || i.ClickID != "" || i.BrowserID != ""
}

// SharesAny reports whether i and o have any non-empty identity key in
// common. Matching is an inclusive OR across keys, so a shared network
// address alone is enough to merge two devices into one journey.
func (i Identity) SharesAny(o Identity) bool {
	switch {
	case i.IPAddress != "" && i.IPAddress == o.IPAddress:
		return true
	case i.ClickID != "" && i.ClickID == o.ClickID:
		return true
	case i.BrowserID != "" && i.BrowserID == o.BrowserID:
		return true
	case i.SessionID != "" && i.SessionID == o.SessionID:
		return true
	}
	return false
}
