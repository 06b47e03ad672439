package score

import (
	"strings"

	"github.com/ootptools/hector/internal/roster"
	"github.com/ootptools/hector/internal/weights"
)

// BatterBreakdown is the scored output for one batter. Total is the sum of
// the three independently rounded sub-scores. The star fields carry the raw
// export text untouched.
type BatterBreakdown struct {
	Offense          float64 `json:"offense"`
	OffensePotential float64 `json:"offense_potential"`
	Defense          float64 `json:"defense"`
	Total            float64 `json:"total"`
	OverallStars     string  `json:"overall_stars"`
	PotentialStars   string  `json:"potential_stars"`
}

// Batter pairs a raw record with its score breakdown.
type Batter struct {
	Record roster.Record
	Scores BatterBreakdown
}

// ScoreBatter computes a batter's breakdown from its raw record and the
// batter weight table. Pure: never fails, unparsable cells weigh 0.
func ScoreBatter(rec roster.Record, w *weights.BatterWeights) BatterBreakdown {
	pos := strings.ToUpper(rec.Get(headerPos))

	offense := 0.0
	offense += Normalize(rec.Get(headerContact), KindDefault) * w.Overall.Contact
	offense += Normalize(rec.Get(headerGap), KindDefault) * w.Overall.Gap
	offense += Normalize(rec.Get(headerPower), KindDefault) * w.Overall.Power
	offense += Normalize(rec.Get(headerEye), KindDefault) * w.Overall.Eye
	offense += Normalize(rec.Get(headerStrikeouts), KindDefault) * w.Overall.Strikeouts
	offense *= w.OverallWeight

	potential := 0.0
	potential += Normalize(rec.Get(headerContactPot), KindDefault) * w.Potential.Contact
	potential += Normalize(rec.Get(headerGapPot), KindDefault) * w.Potential.Gap
	potential += Normalize(rec.Get(headerPowerPot), KindDefault) * w.Potential.Power
	potential += Normalize(rec.Get(headerEyePot), KindDefault) * w.Potential.Eye
	potential += Normalize(rec.Get(headerStrikeoutsPot), KindDefault) * w.Potential.Strikeouts
	potential *= w.PotentialWeight

	defense := batterDefense(rec, pos, w)

	offense = round2(offense)
	potential = round2(potential)
	defense = round2(defense)

	return BatterBreakdown{
		Offense:          offense,
		OffensePotential: potential,
		Defense:          defense,
		Total:            round2(offense + potential + defense),
		OverallStars:     rec.Get(headerOverallStars),
		PotentialStars:   rec.Get(headerPotentialStars),
	}
}

// batterDefense is position-conditional: catchers use the flat catcher
// weights, infielders and outfielders look range (and infield arm) up per
// exact position, and everything else (DH included) defends for 0.
func batterDefense(rec roster.Record, pos string, w *weights.BatterWeights) float64 {
	switch pos {
	case "C":
		d := Normalize(rec.Get(headerCatcherAbility), KindDefault) * w.Catcher.Ability
		d += Normalize(rec.Get(headerCatcherArm), KindDefault) * w.Catcher.Arm
		d += Normalize(rec.Get(headerCatcherBlocking), KindDefault) * w.Catcher.Blocking
		return d
	case "1B", "2B", "SS", "3B":
		d := Normalize(rec.Get(headerInfieldRange), KindDefault) * w.Infield.Range[pos]
		d += Normalize(rec.Get(headerInfieldError), KindDefault) * w.Infield.Error
		d += Normalize(rec.Get(headerInfieldArm), KindDefault) * w.Infield.Arm[pos]
		return d
	case "LF", "CF", "RF":
		d := Normalize(rec.Get(headerOutfieldRange), KindDefault) * w.Outfield.Range[pos]
		d += Normalize(rec.Get(headerOutfieldError), KindDefault) * w.Outfield.Error
		d += Normalize(rec.Get(headerOutfieldArm), KindDefault) * w.Outfield.Arm
		return d
	default:
		return 0
	}
}
