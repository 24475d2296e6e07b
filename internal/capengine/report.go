package capengine

import (
	"sort"

	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

// FranchiseReport is the full cap picture for one franchise
type FranchiseReport struct {
	Franchise         models.FranchiseID
	Seasons           [WindowYears]int
	Charges           SalaryYears
	DeadMoney         SalaryYears
	SeasonSpace       SalaryYears
	Meta              ContractMeta
	Space             CapSpace // Current season
	ProjectedCapSpace float64  // Terminal season
	RosterSize        int
	ActiveCount       int
	PracticeCount     int
	InjuredCount      int
	OverRosterLimit   bool
}

// Situation returns the franchise's input to the free-agent envelope
func (r FranchiseReport) Situation() FranchiseCapSituation {
	return FranchiseCapSituation{
		Franchise:         r.Franchise,
		ProjectedCapSpace: r.ProjectedCapSpace,
		RosterSize:        r.ActiveCount,
	}
}

// LeagueReport holds every franchise report, ordered by franchise id, and the
// envelope computed across them
type LeagueReport struct {
	Seasons    [WindowYears]int
	Franchises []FranchiseReport
	Envelope   FreeAgentEnvelope
}

// Find returns the report for a franchise, matched case-insensitively
func (lr LeagueReport) Find(franchise models.FranchiseID) (FranchiseReport, bool) {
	for _, r := range lr.Franchises {
		if r.Franchise.Matches(franchise) {
			return r, true
		}
	}
	return FranchiseReport{}, false
}

// Franchise builds the report for one franchise. players must already be
// limited to the franchise; adjustments are filtered by id.
func (e *Engine) Franchise(id models.FranchiseID, players []models.Player, adjustments []models.DeadMoneyAdjustment) FranchiseReport {
	charges := e.CapCharges(players)
	dead := e.DeadMoney(adjustments, id)
	seasonSpace := e.SeasonCapSpace(charges, dead)

	r := FranchiseReport{
		Franchise:         id,
		Seasons:           e.Seasons(),
		Charges:           charges,
		DeadMoney:         dead,
		SeasonSpace:       seasonSpace,
		Meta:              ContractMetadata(players),
		Space:             e.CapSpace(charges.Current(), dead.Current()),
		ProjectedCapSpace: seasonSpace.Terminal(),
		RosterSize:        len(players),
	}

	for _, p := range players {
		switch NormalizeStatus(p.Status) {
		case StatusPractice:
			r.PracticeCount++
		case StatusInjured:
			r.InjuredCount++
		default:
			r.ActiveCount++
		}
	}
	r.OverRosterLimit = e.rules.RosterLimit > 0 && r.RosterSize > e.rules.RosterLimit

	return r
}

// League builds a report for every franchise in rosters and the free-agent
// envelope across them. Map iteration order does not affect the result.
func (e *Engine) League(rosters map[models.FranchiseID]models.PlayerList, adjustments []models.DeadMoneyAdjustment) LeagueReport {
	ids, merged := mergeRosters(rosters)

	report := LeagueReport{
		Seasons:    e.Seasons(),
		Franchises: make([]FranchiseReport, 0, len(ids)),
	}
	situations := make([]FranchiseCapSituation, 0, len(ids))

	for _, id := range ids {
		fr := e.Franchise(id, merged[id], adjustments)
		report.Franchises = append(report.Franchises, fr)
		situations = append(situations, fr.Situation())
	}

	report.Envelope = e.Envelope(situations)
	return report
}

// mergeRosters folds roster keys that differ only in case into one franchise,
// keyed by the first id in sorted order. Returns the ids sorted.
func mergeRosters(rosters map[models.FranchiseID]models.PlayerList) ([]models.FranchiseID, map[models.FranchiseID]models.PlayerList) {
	all := make([]models.FranchiseID, 0, len(rosters))
	for id := range rosters {
		all = append(all, id)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	display := make(map[string]models.FranchiseID, len(all))
	merged := make(map[models.FranchiseID]models.PlayerList, len(all))
	var ids []models.FranchiseID
	for _, id := range all {
		canonical, ok := display[id.Key()]
		if !ok {
			canonical = id
			display[id.Key()] = id
			ids = append(ids, id)
		}
		merged[canonical] = append(merged[canonical], rosters[id]...)
	}
	return ids, merged
}
