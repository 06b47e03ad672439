// Package team rolls scored players up into one summary row per team.
package team

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/ootptools/hector/internal/score"
)

// UnknownTeam is the bucket for records without an organization code.
const UnknownTeam = "Unknown"

// Summary is one team's rollup. Closers fold into the reliever bucket.
// AgeKnown is false when no age on the roster parsed; AvgAge then renders as
// "N/A".
type Summary struct {
	Team          string
	AvgAge        float64
	AgeKnown      bool
	SPTotal       float64
	RPTotal       float64
	PitchingTotal float64
	BattersTotal  float64
	GrandTotal    float64
}

// AvgAgeText renders the average age for display, honoring the sentinel.
func (s Summary) AvgAgeText() string {
	if !s.AgeKnown {
		return "N/A"
	}
	return strconv.FormatFloat(s.AvgAge, 'f', 2, 64)
}

// MarshalJSON emits avg_age as a number, or the string "N/A" when no ages
// parsed, matching the display contract.
func (s Summary) MarshalJSON() ([]byte, error) {
	var avgAge interface{} = "N/A"
	if s.AgeKnown {
		avgAge = s.AvgAge
	}
	return json.Marshal(map[string]interface{}{
		"team":           s.Team,
		"avg_age":        avgAge,
		"sp_total":       s.SPTotal,
		"rp_total":       s.RPTotal,
		"pitching_total": s.PitchingTotal,
		"batters_total":  s.BattersTotal,
		"grand_total":    s.GrandTotal,
	})
}

type accumulator struct {
	sp, rp, batters float64
	ages            []float64
}

// Aggregate produces one Summary per distinct team code across both inputs,
// ordered by team code ascending. Starter totals and reliever totals (RP and
// CL) come from pitcher totals; the batter contribution is offense plus
// defense, with offense potential deliberately left out. Ages that fail to
// parse are excluded from the average rather than counted as zero.
func Aggregate(pitchers []score.Pitcher, batters []score.Batter) []Summary {
	teams := make(map[string]*accumulator)
	get := func(code string) *accumulator {
		acc, ok := teams[code]
		if !ok {
			acc = &accumulator{}
			teams[code] = acc
		}
		return acc
	}

	for _, p := range pitchers {
		acc := get(p.Record.Team(UnknownTeam))
		switch p.Record.Get("POS") {
		case "SP":
			acc.sp += p.Scores.Total
		case "RP", "CL":
			acc.rp += p.Scores.Total
		}
		if age, err := strconv.ParseFloat(p.Record.Get("Age"), 64); err == nil {
			acc.ages = append(acc.ages, age)
		}
	}

	for _, b := range batters {
		acc := get(b.Record.Team(UnknownTeam))
		acc.batters += b.Scores.Offense + b.Scores.Defense
		if age, err := strconv.ParseFloat(b.Record.Get("Age"), 64); err == nil {
			acc.ages = append(acc.ages, age)
		}
	}

	codes := make([]string, 0, len(teams))
	for code := range teams {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]Summary, 0, len(codes))
	for _, code := range codes {
		acc := teams[code]
		s := Summary{
			Team:         code,
			SPTotal:      round2(acc.sp),
			RPTotal:      round2(acc.rp),
			BattersTotal: round2(acc.batters),
		}
		s.PitchingTotal = round2(s.SPTotal + s.RPTotal)
		s.GrandTotal = round2(s.PitchingTotal + s.BattersTotal)
		if len(acc.ages) > 0 {
			sum := 0.0
			for _, a := range acc.ages {
				sum += a
			}
			s.AvgAge = round2(sum / float64(len(acc.ages)))
			s.AgeKnown = true
		}
		out = append(out, s)
	}
	return out
}
