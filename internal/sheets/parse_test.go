package sheets

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/dynasty-cap-bot/internal/cache"
)

const rosterCSV = `Franchise,Player,Position,Status,Salary,Contract Years
Gotham,Bruce Wayne,QB,ROSTER,"$9,000,000",4
Gotham,Tim Drake,WR,TAXI_SQUAD,"$450,000",3
Metropolis,Clark Kent,RB,IR,3.5M,2
,,,,,
Metropolis,Jimmy Olsen,TE,ROSTER,TBD,x
`

const deadMoneyCSV = `Franchise,Player,Salary,Amount,Year Offset,Season Offset,Years Remaining
Gotham,Jason Todd,"$1,000,000",,0,,3
Metropolis,Lex Luthor,,300000,,2,
Metropolis,Empty Row,,,,,
`

func TestParseRoster(t *testing.T) {
	players, err := ParseRoster(strings.NewReader(rosterCSV))
	require.NoError(t, err)
	require.Len(t, players, 4)

	assert.Equal(t, "Bruce Wayne", players[0].Name)
	assert.Equal(t, 9000000.0, players[0].Salary)
	assert.Equal(t, 4, players[0].ContractYears)
	assert.Equal(t, "TAXI_SQUAD", players[1].Status)
	assert.Equal(t, 3500000.0, players[2].Salary)

	// Malformed numbers degrade to zero instead of dropping the player
	assert.Equal(t, "Jimmy Olsen", players[3].Name)
	assert.Zero(t, players[3].Salary)
	assert.Zero(t, players[3].ContractYears)
}

func TestParseRosterEmpty(t *testing.T) {
	_, err := ParseRoster(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseDeadMoney(t *testing.T) {
	adjustments, err := ParseDeadMoney(strings.NewReader(deadMoneyCSV))
	require.NoError(t, err)
	require.Len(t, adjustments, 2)

	assert.Equal(t, 1000000.0, adjustments[0].ResolvedSalary())
	require.NotNil(t, adjustments[0].YearsRemaining)
	assert.Equal(t, 3, *adjustments[0].YearsRemaining)

	assert.Equal(t, 300000.0, adjustments[1].ResolvedSalary())
	assert.Equal(t, 2, adjustments[1].ResolvedOffset())
	assert.False(t, adjustments[1].HasYearsRemaining())
}

func TestLoadInitialData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("gid") {
		case "1":
			fmt.Fprint(w, rosterCSV)
		case "2":
			fmt.Fprint(w, deadMoneyCSV)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := NewClient("sheet-id")
	require.NoError(t, err)
	client.baseURL = server.URL + "/%s?format=csv&gid=%s"

	c := cache.New(time.Minute)
	require.NoError(t, client.LoadInitialData(c, "1", "2"))

	players, found := c.GetPlayers()
	require.True(t, found)
	assert.Len(t, players, 4)

	adjustments, found := c.GetAdjustments()
	require.True(t, found)
	assert.Len(t, adjustments, 2)

	assert.Error(t, client.LoadInitialData(c, "9", ""))
}

func TestNewClientRequiresID(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}
