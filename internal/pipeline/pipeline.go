// Package pipeline runs the full reload transform: parse both exports,
// validate the required-field contract, score every record, and aggregate
// team rollups. Each run returns a fresh Result; nothing is carried between
// reloads, so the caller replaces its held result atomically.
package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ootptools/hector/internal/roster"
	"github.com/ootptools/hector/internal/score"
	"github.com/ootptools/hector/internal/team"
	"github.com/ootptools/hector/internal/weights"
)

// Result is one completed reload cycle.
type Result struct {
	Pitchers []score.Pitcher
	Batters  []score.Batter
	Teams    []team.Summary
}

// Summary returns a human-readable summary of the reload.
func (r *Result) Summary() string {
	return fmt.Sprintf("pitchers=%d batters=%d teams=%d",
		len(r.Pitchers), len(r.Batters), len(r.Teams))
}

// MissingFieldsError aggregates every required-field violation across both
// categories into one report. It is fatal for the reload: scoring never runs
// on partially populated records.
type MissingFieldsError struct {
	Pitchers []string
	Batters  []string
}

func (e *MissingFieldsError) Error() string {
	var b strings.Builder
	b.WriteString("export is missing fields:")
	if len(e.Pitchers) > 0 {
		b.WriteString(" pitchers [" + strings.Join(e.Pitchers, ", ") + "]")
	}
	if len(e.Batters) > 0 {
		b.WriteString(" batters [" + strings.Join(e.Batters, ", ") + "]")
	}
	return b.String()
}

// Report renders the operator-facing multi-line version of the error,
// grouped by category.
func (e *MissingFieldsError) Report() string {
	var b strings.Builder
	b.WriteString("Your export is missing fields:\n\n")
	if len(e.Pitchers) > 0 {
		b.WriteString("Pitchers are missing:\n- " + strings.Join(e.Pitchers, "\n- ") + "\n\n")
	}
	if len(e.Batters) > 0 {
		b.WriteString("Batters are missing:\n- " + strings.Join(e.Batters, "\n- ") + "\n\n")
	}
	b.WriteString("Please update your export to include these fields.")
	return b.String()
}

// Run executes one reload over the two export files.
func Run(pitchersPath, battersPath string, bw *weights.BatterWeights, pw *weights.PitcherWeights, logger *slog.Logger) (*Result, error) {
	logger.Info("Parsing pitcher export", "file", pitchersPath)
	pitcherTable, err := roster.ParseFile(pitchersPath)
	if err != nil {
		return nil, fmt.Errorf("parse pitchers: %w", err)
	}

	logger.Info("Parsing batter export", "file", battersPath)
	batterTable, err := roster.ParseFile(battersPath)
	if err != nil {
		return nil, fmt.Errorf("parse batters: %w", err)
	}

	missingP := roster.MissingFields(pitcherTable.Records, roster.RequiredPitcherFields)
	missingB := roster.MissingFields(batterTable.Records, roster.RequiredBatterFields)
	if len(missingP) > 0 || len(missingB) > 0 {
		return nil, &MissingFieldsError{Pitchers: missingP, Batters: missingB}
	}

	result := &Result{
		Pitchers: make([]score.Pitcher, 0, len(pitcherTable.Records)),
		Batters:  make([]score.Batter, 0, len(batterTable.Records)),
	}
	for _, rec := range pitcherTable.Records {
		result.Pitchers = append(result.Pitchers, score.Pitcher{
			Record: rec,
			Scores: score.ScorePitcher(rec, pw),
		})
	}
	for _, rec := range batterTable.Records {
		result.Batters = append(result.Batters, score.Batter{
			Record: rec,
			Scores: score.ScoreBatter(rec, bw),
		})
	}

	result.Teams = team.Aggregate(result.Pitchers, result.Batters)

	logger.Info("Reload complete", "summary", result.Summary())
	return result, nil
}
