package score

import (
	"strconv"

	"github.com/ootptools/hector/internal/roster"
	"github.com/ootptools/hector/internal/weights"
)

// PitcherBreakdown is the scored output for one pitcher. Pitches and
// PitchesPotential are reported separately for display and are deliberately
// excluded from Total; folding them in would change team-ranking semantics.
type PitcherBreakdown struct {
	Total            float64 `json:"total"`
	Pitches          float64 `json:"pitches"`
	PitchesPotential float64 `json:"pitches_potential"`
}

// Pitcher pairs a raw record with its score breakdown.
type Pitcher struct {
	Record roster.Record
	Scores PitcherBreakdown
}

// ScorePitcher sweeps every mapped header on the record, normalizes its
// value, and routes the weighted product into one of three accumulators:
// current pitch columns, potential pitch columns, or the total. The two
// starter penalties then hit the total only. Pure: never fails.
func ScorePitcher(rec roster.Record, w *weights.PitcherWeights) PitcherBreakdown {
	flat := w.Flatten()

	var total, pitches, pitchesPotential float64
	for _, header := range pitcherSweepOrder {
		raw, ok := rec[header]
		if !ok {
			continue
		}
		weight := flat[pitcherHeaderAttr[header]]
		if weight == 0 {
			continue
		}

		kind := KindDefault
		if header == "VELO" {
			kind = KindVelocity
		}
		product := Normalize(raw, kind) * weight

		switch {
		case currentPitchHeaders[header]:
			pitches += product
		case potentialPitchHeaders[header]:
			pitchesPotential += product
		default:
			total += product
		}
	}

	// Starter penalties. A non-numeric PIT or STM simply skips that penalty.
	if n, err := strconv.Atoi(rec.Get("PIT")); err == nil && n < 4 {
		total += w.PenaltyLowPitches
	}
	if n, err := strconv.Atoi(rec.Get("STM")); err == nil && n < 50 {
		total += w.PenaltyLowStamina
	}

	return PitcherBreakdown{
		Total:            round2(total),
		Pitches:          round2(pitches),
		PitchesPotential: round2(pitchesPotential),
	}
}
