package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

const (
	playersKey     = "players"
	adjustmentsKey = "adjustments"
	leagueKey      = "league"
)

type Cache struct {
	cache    *gocache.Cache
	duration time.Duration
}

func New(duration time.Duration) *Cache {
	return &Cache{
		cache:    gocache.New(duration, duration*2),
		duration: duration,
	}
}

// SetPlayers stores the roster and drops any report computed from the old one
func (c *Cache) SetPlayers(players []models.Player) {
	c.cache.Set(playersKey, players, c.duration)
	c.InvalidateLeague()
}

func (c *Cache) GetPlayers() (models.PlayerList, bool) {
	if players, found := c.cache.Get(playersKey); found {
		return models.PlayerList(players.([]models.Player)), true
	}
	return nil, false
}

// SetAdjustments stores dead-money adjustments and drops any stale report
func (c *Cache) SetAdjustments(adjustments []models.DeadMoneyAdjustment) {
	c.cache.Set(adjustmentsKey, adjustments, c.duration)
	c.InvalidateLeague()
}

func (c *Cache) GetAdjustments() ([]models.DeadMoneyAdjustment, bool) {
	if adjustments, found := c.cache.Get(adjustmentsKey); found {
		return adjustments.([]models.DeadMoneyAdjustment), true
	}
	return nil, false
}

func (c *Cache) SetLeague(report capengine.LeagueReport) {
	c.cache.Set(leagueKey, report, c.duration)
}

func (c *Cache) GetLeague() (capengine.LeagueReport, bool) {
	if report, found := c.cache.Get(leagueKey); found {
		return report.(capengine.LeagueReport), true
	}
	return capengine.LeagueReport{}, false
}

// InvalidateLeague forgets the computed league report
func (c *Cache) InvalidateLeague() {
	c.cache.Delete(leagueKey)
}

func (c *Cache) Flush() {
	c.cache.Flush()
}
