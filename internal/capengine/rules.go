package capengine

import "time"

// League defaults
const (
	DefaultCapLimit         = 45000000.0
	DefaultRosterLimit      = 28
	DefaultTargetActive     = 22
	DefaultRookieReserve    = 5000000.0
	DefaultFAReservePerTeam = 5000000.0
	DefaultEscalationRate   = 0.10
	DefaultWaiverCurrent    = 0.50
)

// Rules holds the league constants the engine computes against. Values are
// taken as given; sanity checks belong to whoever loads them.
type Rules struct {
	CapLimit             float64         `yaml:"cap_limit"`
	RosterLimit          int             `yaml:"roster_limit"`
	TargetActive         int             `yaml:"target_active"`
	RookieReserve        float64         `yaml:"rookie_reserve"`
	FAReservePerTeam     float64         `yaml:"fa_reserve_per_team"`
	EscalationRate       float64         `yaml:"escalation_rate"`
	WaiverCurrentPercent float64         `yaml:"waiver_current_percent"`
	DeadMoneySchedule    map[int]float64 `yaml:"dead_money_schedule"` // years remaining -> following-season percent
	CurrentSeason        int             `yaml:"current_season"`
}

// DefaultRules returns the standard league configuration
func DefaultRules() Rules {
	return Rules{
		CapLimit:             DefaultCapLimit,
		RosterLimit:          DefaultRosterLimit,
		TargetActive:         DefaultTargetActive,
		RookieReserve:        DefaultRookieReserve,
		FAReservePerTeam:     DefaultFAReservePerTeam,
		EscalationRate:       DefaultEscalationRate,
		WaiverCurrentPercent: DefaultWaiverCurrent,
		DeadMoneySchedule:    DefaultDeadMoneySchedule(),
		CurrentSeason:        time.Now().Year(),
	}
}

// DefaultDeadMoneySchedule is the share of a waived salary charged in the
// following season, keyed by contract years remaining at release
func DefaultDeadMoneySchedule() map[int]float64 {
	return map[int]float64{
		1: 0.0,
		2: 0.15,
		3: 0.25,
		4: 0.35,
		5: 0.45,
	}
}

func (r Rules) clone() Rules {
	out := r
	out.DeadMoneySchedule = make(map[int]float64, len(r.DeadMoneySchedule))
	for k, v := range r.DeadMoneySchedule {
		out.DeadMoneySchedule[k] = v
	}
	return out
}
