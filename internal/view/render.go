package view

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ootptools/hector/internal/score"
	"github.com/ootptools/hector/internal/team"
)

func newTable(w io.Writer, headers []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(headers)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	return t
}

func f2(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// RenderPitchers writes the pitcher table for every pitcher passing the
// filter, with the same column set the desktop view shows.
func RenderPitchers(w io.Writer, ps []score.Pitcher, f Filter) {
	t := newTable(w, []string{
		"Name", "Team", "Age", "POS", "Prone", "Velo", "#Pitches", "G/F",
		"Pitch Score", "Pitch Pot. Score", "Total Score",
	})
	for _, p := range ps {
		if !f.MatchPitcher(p) {
			continue
		}
		rec := p.Record
		t.Append([]string{
			rec.Get("Name"),
			rec.Get("ORG"),
			rec.Get("Age"),
			DisplayPosition(rec.Get("POS")),
			rec.Get("Prone"),
			rec.Get("VELO"),
			rec.Get("PIT"),
			rec.Get("G/F"),
			f2(p.Scores.Pitches),
			f2(p.Scores.PitchesPotential),
			f2(p.Scores.Total),
		})
	}
	t.Render()
}

// RenderBatters writes the batter table for every batter passing the filter.
func RenderBatters(w io.Writer, bs []score.Batter, f Filter) {
	t := newTable(w, []string{
		"Name", "Team", "Age", "POS", "Prone", "OVR Stars", "POT Stars",
		"Offense", "Offense Pot.", "Defense", "Total",
	})
	for _, b := range bs {
		if !f.MatchBatter(b) {
			continue
		}
		rec := b.Record
		t.Append([]string{
			rec.Get("Name"),
			rec.Get("ORG"),
			rec.Get("Age"),
			rec.Get("POS"),
			rec.Get("Prone"),
			b.Scores.OverallStars,
			b.Scores.PotentialStars,
			f2(b.Scores.Offense),
			f2(b.Scores.OffensePotential),
			f2(b.Scores.Defense),
			f2(b.Scores.Total),
		})
	}
	t.Render()
}

// RenderTeams writes the per-team rollup table.
func RenderTeams(w io.Writer, teams []team.Summary) {
	t := newTable(w, []string{
		"Team", "Avg Age", "SP Total", "RP Total", "Team Pitching Total",
		"Batters Total", "Total Team Score",
	})
	for _, s := range teams {
		t.Append([]string{
			s.Team,
			s.AvgAgeText(),
			f2(s.SPTotal),
			f2(s.RPTotal),
			f2(s.PitchingTotal),
			f2(s.BattersTotal),
			f2(s.GrandTotal),
		})
	}
	t.Render()
}
