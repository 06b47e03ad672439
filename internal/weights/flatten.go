package weights

import "strings"

// Flatten builds the attribute-name -> weight lookup the pitcher calculator
// sweeps against. Pitch-type names from the nested Pitches table are folded
// in under lower snake_case keys ("Knuckle Curve Potential" ->
// "knuckle_curve_potential"). Penalty constants are not attributes and stay
// out of the lookup.
func (w *PitcherWeights) Flatten() map[string]float64 {
	flat := map[string]float64{
		"stuff":    w.Stuff,
		"movement": w.Movement,
		"control":  w.Control,

		"stuff_potential":    w.StuffPotential,
		"movement_potential": w.MovementPotential,
		"control_potential":  w.ControlPotential,

		"number_of_pitches": w.NumberOfPitches,
		"velocity":          w.Velocity,
		"stamina":           w.Stamina,
		"ground_fly_ratio":  w.GroundFlyRatio,
		"holds":             w.Holds,
		"scout_accuracy":    w.ScoutAccuracy,
		"overall_rating":    w.OverallRating,
		"potential_rating":  w.PotentialRating,
	}
	for pitch, pw := range w.Pitches {
		key := strings.ReplaceAll(strings.ToLower(pitch), " ", "_")
		flat[key] = pw
	}
	return flat
}
