package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
	"github.com/pmurley/dynasty-cap-bot/internal/config"
	"github.com/pmurley/dynasty-cap-bot/internal/models"
	"github.com/pmurley/dynasty-cap-bot/internal/sheets"
	"github.com/pmurley/dynasty-cap-bot/pkg/logger"
)

type options struct {
	rosterFile    string
	deadMoneyFile string
	sheetID       string
	rosterGID     string
	deadGID       string
	season        int
	rulesFile     string
	franchise     string
	logLevel      string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "capreport",
		Short: "Print salary cap projections for every franchise",
		Long: `capreport reads a roster and dead-money ledger, either from local CSV
files or from a published Google Sheet, and prints cap charges, dead money
and cap space across the five-season window plus the free-agent envelope.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, out)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.rosterFile, "roster", "", "roster CSV file")
	flags.StringVar(&opts.deadMoneyFile, "dead-money", "", "dead money CSV file")
	flags.StringVar(&opts.sheetID, "sheet-id", os.Getenv("GOOGLE_SHEETS_ID"), "Google Sheets ID to read when --roster is not set")
	flags.StringVar(&opts.rosterGID, "roster-gid", "0", "roster tab gid")
	flags.StringVar(&opts.deadGID, "dead-gid", "", "dead money tab gid")
	flags.IntVar(&opts.season, "season", 0, "current season (defaults to the rules file or this year)")
	flags.StringVar(&opts.rulesFile, "rules", os.Getenv("LEAGUE_RULES_FILE"), "league rules YAML file")
	flags.StringVar(&opts.franchise, "franchise", "", "only show this franchise")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level")

	return cmd
}

func run(opts options, out io.Writer) error {
	log := logger.New(opts.logLevel)

	league, err := config.LoadLeague(opts.rulesFile)
	if err != nil {
		return err
	}
	if opts.season > 0 {
		league.Rules.CurrentSeason = opts.season
	}
	engine := capengine.New(league.Rules)

	players, adjustments, err := loadInputs(opts)
	if err != nil {
		return err
	}
	log.Debug("Loaded", len(players), "players and", len(adjustments), "dead money adjustments")

	report := engine.League(models.PlayerList(players).GroupByFranchise(), adjustments)

	if opts.franchise != "" {
		fr, found := report.Find(models.NewFranchiseID(opts.franchise))
		if !found {
			return fmt.Errorf("franchise %q not found", opts.franchise)
		}
		return printFranchise(out, fr)
	}

	return printLeague(out, report)
}

func loadInputs(opts options) ([]models.Player, []models.DeadMoneyAdjustment, error) {
	if opts.rosterFile != "" {
		players, err := parseFile(opts.rosterFile, sheets.ParseRoster)
		if err != nil {
			return nil, nil, err
		}
		var adjustments []models.DeadMoneyAdjustment
		if opts.deadMoneyFile != "" {
			adjustments, err = parseFile(opts.deadMoneyFile, sheets.ParseDeadMoney)
			if err != nil {
				return nil, nil, err
			}
		}
		return players, adjustments, nil
	}

	if opts.sheetID == "" {
		return nil, nil, fmt.Errorf("either --roster or --sheet-id is required")
	}

	client, err := sheets.NewClient(opts.sheetID)
	if err != nil {
		return nil, nil, err
	}
	players, err := client.LoadRoster(opts.rosterGID)
	if err != nil {
		return nil, nil, err
	}
	var adjustments []models.DeadMoneyAdjustment
	if opts.deadGID != "" {
		adjustments, err = client.LoadDeadMoney(opts.deadGID)
		if err != nil {
			return nil, nil, err
		}
	}
	return players, adjustments, nil
}

func parseFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	items, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return items, nil
}

func printLeague(out io.Writer, report capengine.LeagueReport) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(w, "Franchise\tActive\tCharges\tDead\tCap Space\tEffective\t")
	fmt.Fprintf(w, "%d Space\t\n", report.Seasons[capengine.WindowYears-1])
	for _, fr := range report.Franchises {
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t\n",
			fr.Franchise, fr.ActiveCount, fr.Charges.Current(), fr.DeadMoney.Current(),
			fr.Space.CapSpace, fr.Space.EffectiveCapSpace, fr.ProjectedCapSpace)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	env := report.Envelope
	_, err := fmt.Fprintf(out, "\nFree agent envelope: %.0f available across %d open slots (%.0f per slot), %d teams, %.0f reserved\n",
		env.AvailableCap, env.OpenSlots, env.CapPerOpenSlot, env.TotalTeams, env.TotalReserve)
	return err
}

func printFranchise(out io.Writer, fr capengine.FranchiseReport) error {
	fmt.Fprintf(out, "%s: %d players (%d active, %d taxi, %d IR)\n\n",
		fr.Franchise, fr.RosterSize, fr.ActiveCount, fr.PracticeCount, fr.InjuredCount)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "Season\tCharges\tDead\tSpace\t\n")
	for i, season := range fr.Seasons {
		fmt.Fprintf(w, "%d\t%.0f\t%.0f\t%.0f\t\n", season, fr.Charges[i], fr.DeadMoney[i], fr.SeasonSpace[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\nCap space %.0f, effective %.0f, contract years %d, longest contract %d\n",
		fr.Space.CapSpace, fr.Space.EffectiveCapSpace, fr.Meta.ContractYearsTotal, fr.Meta.LongestContract)
	return err
}
