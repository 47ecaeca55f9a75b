package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/ersonp/survive-core/internal/application/handlers"
	"github.com/ersonp/survive-core/internal/domain/entities"
	"github.com/ersonp/survive-core/internal/domain/ports"
	"github.com/ersonp/survive-core/internal/domain/services"
)

const timeLayout = "2006-01-02 15:04"

func displayPlayResult(w io.Writer, r *handlers.PlayResult) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Outcome: %s after %d turns\n", r.Summary.Phase, len(r.Summary.Turns))
	fmt.Fprintf(w, "Seed:    %d\n", r.Seed)
	if r.GameID != "" {
		fmt.Fprintf(w, "Game:    %s\n", r.GameID)
	}
}

func displayValidateResults(w io.Writer, results []handlers.ValidateResult) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "FAIL %s\n  %v\n", r.Path, r.Err)
			continue
		}
		fmt.Fprintf(w, "ok   %s (%s, %d events)\n", r.Path, r.Location, r.Events)
	}
}

func displayGames(w io.Writer, games []ports.GameRecord) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tENDED\tCHARACTER\tWEAPON\tOUTCOME\tTURNS")
	for _, g := range games {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			g.ID, g.EndedAt.Local().Format(timeLayout), g.Character, orDash(g.Weapon), g.Outcome, g.Turns)
	}
	tw.Flush()
}

func displayGameDetail(w io.Writer, d *services.GameDetail) {
	g := d.Game
	fmt.Fprintf(w, "Game:      %s\n", g.ID)
	fmt.Fprintf(w, "Character: %s with %s\n", g.Character, orDash(g.Weapon))
	fmt.Fprintf(w, "Outcome:   %s after %d turns\n", g.Outcome, g.Turns)
	fmt.Fprintf(w, "Seed:      %d\n", g.Seed)
	fmt.Fprintf(w, "Played:    %s (%s)\n", g.StartedAt.Local().Format(timeLayout), g.EndedAt.Sub(g.StartedAt).Round(time.Second))

	if len(d.Turns) == 0 {
		return
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TURN\tLOCATION\tATTRIBUTE\tSTATUS\tHEALTH\tPROMPT")
	for _, t := range d.Turns {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n", t.Turn, t.Location, t.Attribute, t.Status, t.HealthAfter, t.Prompt)
	}
	tw.Flush()
}

func displayStats(w io.Writer, counts map[string]int) {
	outcomes := make([]string, 0, len(counts))
	total := 0
	for outcome, n := range counts {
		outcomes = append(outcomes, outcome)
		total += n
	}
	sort.Strings(outcomes)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, outcome := range outcomes {
		fmt.Fprintf(tw, "%s\t%d\n", outcome, counts[outcome])
	}
	fmt.Fprintf(tw, "total\t%d\n", total)
	tw.Flush()
}

func displayCharacters(w io.Writer, party []*entities.Character, verbose bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTRENGTH\tHEALTH\tAGILITY\tINTELLIGENCE")
	for _, c := range party {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n",
			c.Name, c.Strength.Value, c.Health.Value, c.Agility.Value, c.Intelligence.Value)
	}
	tw.Flush()

	if !verbose {
		return
	}
	for _, c := range party {
		fmt.Fprintf(w, "\n%s:\n", c.Name)
		for _, s := range c.Statistics() {
			fmt.Fprintf(w, "  %s - %s\n", s, s.Description)
		}
	}
}

func displayWeapons(w io.Writer, weapons []entities.Weapon) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tDAMAGE\tDESCRIPTION")
	for i, wp := range weapons {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", i+1, wp.Name, wp.Damage, wp.Description())
	}
	tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
