package capengine

import "github.com/pmurley/dynasty-cap-bot/internal/models"

// FranchiseCapSituation is the per-franchise input to the free-agent envelope
type FranchiseCapSituation struct {
	Franchise         models.FranchiseID
	ProjectedCapSpace float64 // Cap space in the terminal season of the window
	RosterSize        int     // Active roster players
}

// FreeAgentEnvelope is the league-wide estimate of spendable room per open
// roster slot
type FreeAgentEnvelope struct {
	AvailableCap   float64
	OpenSlots      int
	CapPerOpenSlot float64
	TotalTeams     int
	TotalReserve   float64
}

// LeagueEnvelope reduces franchise cap situations into the free-agent
// envelope. Each franchise holds back reservePerTeam and contributes only
// positive room; open slots count up to targetActive. A league with no open
// slots reports zero capacity per slot.
func LeagueEnvelope(situations []FranchiseCapSituation, targetActive int, reservePerTeam float64) FreeAgentEnvelope {
	env := FreeAgentEnvelope{
		TotalTeams:   len(situations),
		TotalReserve: reservePerTeam * float64(len(situations)),
	}
	if env.TotalTeams == 0 {
		env.TotalTeams = 1
	}

	for _, s := range situations {
		if afterReserve := models.Finite(s.ProjectedCapSpace - reservePerTeam); afterReserve > 0 {
			env.AvailableCap += afterReserve
		}
		if open := targetActive - s.RosterSize; open > 0 {
			env.OpenSlots += open
		}
	}

	if env.OpenSlots > 0 {
		env.CapPerOpenSlot = env.AvailableCap / float64(env.OpenSlots)
	}

	return env
}

// Envelope computes the free-agent envelope with the league's target active
// roster size and per-team reserve
func (e *Engine) Envelope(situations []FranchiseCapSituation) FreeAgentEnvelope {
	return LeagueEnvelope(situations, e.rules.TargetActive, e.rules.FAReservePerTeam)
}
