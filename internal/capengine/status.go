package capengine

import "strings"

// Status is the canonical roster category used for cap inclusion
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusPractice Status = "PRACTICE"
	StatusInjured  Status = "INJURED"
	// StatusUnknown is never produced by NormalizeStatus. It stands for any
	// tag the inclusion table has no entry for.
	StatusUnknown Status = "UNKNOWN"
)

const defaultStatusTag = "ROSTER"

// inclusion is the share of salary counted against the cap
type inclusion struct {
	current float64
	future  float64
}

var inclusionTable = map[Status]inclusion{
	StatusActive:   {current: 1.0, future: 1.0},
	StatusPractice: {current: 0.5, future: 1.0},
	StatusInjured:  {current: 1.0, future: 1.0},
}

var fallbackInclusion = inclusion{current: 1.0, future: 1.0}

// NormalizeStatus maps a free-form roster tag onto a canonical category.
// Taxi squad tags are practice players; IR and anything mentioning INJURED
// are injured; everything else is active. Canonical names map to themselves.
func NormalizeStatus(raw string) Status {
	tag := strings.ToUpper(strings.TrimSpace(raw))
	if tag == "" {
		tag = defaultStatusTag
	}

	switch {
	case tag == string(StatusPractice):
		return StatusPractice
	case strings.Contains(tag, "TAXI"):
		return StatusPractice
	case strings.Contains(tag, "INJURED") || tag == "IR":
		return StatusInjured
	default:
		return StatusActive
	}
}

// Percent returns the inclusion percentage for a canonical status
func (s Status) Percent(current bool) float64 {
	inc, ok := inclusionTable[s]
	if !ok {
		inc = fallbackInclusion
	}
	if current {
		return inc.current
	}
	return inc.future
}

// InclusionPercent resolves the cap-inclusion percentage for a raw or
// canonical status tag. Unrecognized tags count in full.
func InclusionPercent(tag string, current bool) float64 {
	return NormalizeStatus(tag).Percent(current)
}
