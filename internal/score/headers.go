package score

import "sort"

// Statically declared header -> attribute tables. Declaring the full mapping
// up front (instead of ad hoc lookups scattered through the calculators)
// lets tests verify it against the required-field contract, so an export
// column that silently stopped mapping is caught at test time.

// pitcherHeaderAttr maps pitcher export headers to flattened weight
// attribute names.
var pitcherHeaderAttr = map[string]string{
	"STU":   "stuff",
	"MOV":   "movement",
	"CON":   "control",
	"STU P": "stuff_potential",
	"MOV P": "movement_potential",
	"CON P": "control_potential",

	"OVR":    "overall_rating",
	"POT":    "potential_rating",
	"PIT":    "number_of_pitches",
	"VELO":   "velocity",
	"STM":    "stamina",
	"G/F":    "ground_fly_ratio",
	"HLD":    "holds",
	"SctAcc": "scout_accuracy",

	"FB":  "fastball",
	"FBP": "fastball_potential",
	"CH":  "changeup",
	"CHP": "changeup_potential",
	"CB":  "curveball",
	"CBP": "curveball_potential",
	"SL":  "slider",
	"SLP": "slider_potential",
	"SI":  "sinker",
	"SIP": "sinker_potential",
	"SP":  "splitter",
	"SPP": "splitter_potential",
	"CT":  "cutter",
	"CTP": "cutter_potential",
	"FO":  "forkball",
	"FOP": "forkball_potential",
	"CC":  "circle_change",
	"CCP": "circle_change_potential",
	"SC":  "screwball",
	"SCP": "screwball_potential",
	"KC":  "knuckle_curve",
	"KCP": "knuckle_curve_potential",
	"KN":  "knuckleball",
	"KNP": "knuckleball_potential",
}

// pitcherSweepOrder fixes the accumulation order of the header sweep so a
// reload always sums in the same sequence regardless of map iteration.
var pitcherSweepOrder = sortedKeys(pitcherHeaderAttr)

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// currentPitchHeaders is the fixed set of 12 pitch-type columns whose
// weighted values accumulate into the pitches score, never the total.
var currentPitchHeaders = map[string]bool{
	"FB": true, "CH": true, "CB": true, "SL": true, "SI": true, "SP": true,
	"CT": true, "FO": true, "CC": true, "SC": true, "KC": true, "KN": true,
}

// potentialPitchHeaders is the matching set of 12 potential-pitch columns.
var potentialPitchHeaders = map[string]bool{
	"FBP": true, "CHP": true, "CBP": true, "SLP": true, "SIP": true, "SPP": true,
	"CTP": true, "FOP": true, "CCP": true, "SCP": true, "KCP": true, "KNP": true,
}

// Batter export headers addressed by the batter calculator.
const (
	headerPos = "POS"

	headerContact    = "CON"
	headerGap        = "GAP"
	headerPower      = "POW"
	headerEye        = "EYE"
	headerStrikeouts = "K's"

	headerContactPot    = "CON P"
	headerGapPot        = "GAP P"
	headerPowerPot      = "POW P"
	headerEyePot        = "EYE P"
	headerStrikeoutsPot = "K P"

	headerCatcherAbility  = "C ABI"
	headerCatcherArm      = "C ARM"
	headerCatcherBlocking = "C BLK"

	headerInfieldRange = "IF RNG"
	headerInfieldError = "IF ERR"
	headerInfieldArm   = "IF ARM"

	headerOutfieldRange = "OF RNG"
	headerOutfieldError = "OF ERR"
	headerOutfieldArm   = "OF ARM"

	headerOverallStars   = "OVR"
	headerPotentialStars = "POT"
)
