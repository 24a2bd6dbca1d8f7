// Command rooksim plays bot-only Rook matches and reports how the
// difficulty tiers fare against each other.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"rook-game/internal/bot"
	"rook-game/internal/logging"
	"rook-game/internal/shared"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

func main() {
	matches := pflag.IntP("matches", "n", 20, "number of matches to play")
	seed := pflag.Uint64("seed", 0, "base seed, 0 picks one at random")
	teamA := pflag.String("team-a", "hard", "difficulty for seats 1 and 3")
	teamB := pflag.String("team-b", "medium", "difficulty for seats 2 and 4")
	variant := pflag.String("variant", "robinson", "rules preset (robinson or classic)")
	threshold := pflag.Int("threshold", 0, "override the match threshold")
	verbose := pflag.BoolP("verbose", "v", false, "print every hand")
	logLevel := pflag.String("log-level", "warn", "engine log level")
	pflag.Parse()

	if err := run(*matches, *seed, *teamA, *teamB, *variant, *threshold, *verbose, *logLevel); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(matches int, seed uint64, teamA, teamB, variant string, threshold int, verbose bool, logLevel string) error {
	rules, err := shared.RulesFor(variant)
	if err != nil {
		return err
	}
	if threshold > 0 {
		rules.MatchThreshold = threshold
	}
	da, err := bot.ParseDifficulty(teamA)
	if err != nil {
		return err
	}
	db, err := bot.ParseDifficulty(teamB)
	if err != nil {
		return err
	}
	logger, err := logging.New(logLevel, true)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	if seed == 0 {
		seed = rand.Uint64()
	}

	pterm.DefaultSection.Printfln("%s vs %s, %d matches, %s rules", da, db, matches, rules.Variant)
	pterm.Info.Printfln("seed %d", seed)

	spinner, _ := pterm.DefaultSpinner.Start("Playing...")
	var t tally
	for i := 0; i < matches; i++ {
		spinner.UpdateText(fmt.Sprintf("Match %d/%d", i+1, matches))
		report, err := playMatch(rules, da, db, seed+uint64(i), logger)
		if err != nil {
			spinner.Fail(fmt.Sprintf("match %d: %v", i+1, err))
			return err
		}
		t.add(report)
		if verbose {
			spinner.Stop() //nolint:errcheck
			printHands(i+1, report)
			spinner, _ = pterm.DefaultSpinner.Start()
		}
	}
	spinner.Success("Done")

	return printSummary(t, da, db, matches)
}

func printHands(match int, r matchReport) {
	data := pterm.TableData{{"Hand", "Bidder", "Bid", "Trump", "Points", "Made", "Totals"}}
	for _, h := range r.Hands {
		made := pterm.Green("yes")
		if !h.Made {
			made = pterm.Red("set")
		}
		data = append(data, []string{
			strconv.Itoa(h.HandNumber),
			fmt.Sprintf("%d (%s)", h.Bidder+1, h.BiddingTeam),
			strconv.Itoa(h.BidAmount),
			string(h.Trump),
			fmt.Sprintf("%d / %d", h.TeamPoints[0], h.TeamPoints[1]),
			made,
			fmt.Sprintf("%d / %d", h.TotalsAfter[0], h.TotalsAfter[1]),
		})
	}
	pterm.DefaultSection.WithLevel(2).Printfln("Match %d: %s", match, outcomeText(r.Outcome))
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Warning.Println(err)
	}
}

func outcomeText(o shared.MatchOutcome) string {
	if o.Tie {
		return fmt.Sprintf("tie at %d", o.Final[0])
	}
	return fmt.Sprintf("%s wins %d to %d", o.Winner, o.Final[o.Winner], o.Final[o.Winner.Other()])
}

func printSummary(t tally, da, db bot.Difficulty, matches int) error {
	pct := func(n, of int) string {
		if of == 0 {
			return "-"
		}
		return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(of))
	}
	data := pterm.TableData{
		{"Team", "Difficulty", "Wins", "Win rate", "Avg final"},
		{shared.TeamA.String(), string(da), strconv.Itoa(t.Wins[0]), pct(t.Wins[0], matches), avg(t.Points[0], matches)},
		{shared.TeamB.String(), string(db), strconv.Itoa(t.Wins[1]), pct(t.Wins[1], matches), avg(t.Points[1], matches)},
	}
	pterm.DefaultSection.Println("Summary")
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("ties %d, hands %d, bids made %s, redeals %d",
		t.Ties, t.Hands, pct(t.Made, t.Hands), t.Redeals)
	return nil
}

func avg(total, n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(total / n)
}
