package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterCSV = `Player,Franchise,Position,Status,Salary,Contract Years
QB One,Wolves,QB,ROSTER,"$20,000,000",3
Taxi Guy,Wolves,WR,TAXI,1M,2
RB Two,Bears,RB,ROSTER,10000000,1
`

const deadMoneyCSV = `Franchise,Player,Salary,Year Offset,Years Remaining
Wolves,Cut Guy,4000000,0,2
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRunLeague(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{
		"--roster", writeFile(t, dir, "roster.csv", rosterCSV),
		"--dead-money", writeFile(t, dir, "dead.csv", deadMoneyCSV),
		"--season", "2025",
	})
	require.NoError(t, cmd.Execute())

	report := out.String()
	assert.Contains(t, report, "2029 Space")
	assert.Contains(t, report, "Bears")
	assert.Contains(t, report, "Wolves")
	assert.Contains(t, report, "Free agent envelope")
	assert.Contains(t, report, "2 teams")
}

func TestRunFranchise(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{
		"--roster", writeFile(t, dir, "roster.csv", rosterCSV),
		"--dead-money", writeFile(t, dir, "dead.csv", deadMoneyCSV),
		"--season", "2025",
		"--franchise", "wolves",
	})
	require.NoError(t, cmd.Execute())

	report := out.String()
	assert.Contains(t, report, "Wolves: 2 players (1 active, 1 taxi, 0 IR)")
	// 20M + 0.5M taxi + 2M dead in the current season
	assert.Contains(t, report, "Cap space 22500000")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer

	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--sheet-id", ""})
	assert.Error(t, cmd.Execute())

	dir := t.TempDir()
	cmd = newRootCmd(&out)
	cmd.SetArgs([]string{"--roster", writeFile(t, dir, "roster.csv", rosterCSV), "--franchise", "Eagles"})
	assert.Error(t, cmd.Execute())
}
