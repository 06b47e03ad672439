// Package weights defines the scoring coefficient tables for batters and
// pitchers. The shipped defaults can be overridden per-section from operator
// YAML files; a loaded table is read-only for the duration of a scoring pass.
package weights

// PositionWeights maps a position code (e.g. "SS", "CF") to a coefficient.
// Positions absent from the map weigh 0.
type PositionWeights map[string]float64

// OffenseWeights covers the five batting skills, used for both the current
// and the potential rating block.
type OffenseWeights struct {
	Contact    float64 `yaml:"contact"`
	Gap        float64 `yaml:"gap"`
	Power      float64 `yaml:"power"`
	Eye        float64 `yaml:"eye"`
	Strikeouts float64 `yaml:"strikeouts"`
}

type CatcherWeights struct {
	Ability  float64 `yaml:"ability"`
	Arm      float64 `yaml:"arm"`
	Blocking float64 `yaml:"blocking"`
}

type InfieldWeights struct {
	Range PositionWeights `yaml:"range"`
	Error float64         `yaml:"error"`
	Arm   PositionWeights `yaml:"arm"`
}

type OutfieldWeights struct {
	Range PositionWeights `yaml:"range"`
	Error float64         `yaml:"error"`
	Arm   float64         `yaml:"arm"`
}

// BatterWeights is the full coefficient tree for batter scoring.
type BatterWeights struct {
	// Global multipliers for the current vs potential rating blocks.
	OverallWeight   float64 `yaml:"overall_weight"`
	PotentialWeight float64 `yaml:"potential_weight"`

	Overall   OffenseWeights `yaml:"overall"`
	Potential OffenseWeights `yaml:"potential"`

	Catcher  CatcherWeights  `yaml:"catcher"`
	Infield  InfieldWeights  `yaml:"infield"`
	Outfield OutfieldWeights `yaml:"outfield"`
}

// PitcherWeights is the full coefficient tree for pitcher scoring.
// Pitches is keyed by pitch-type name ("Fastball", "Knuckle Curve Potential", ...).
type PitcherWeights struct {
	Stuff    float64 `yaml:"stuff"`
	Movement float64 `yaml:"movement"`
	Control  float64 `yaml:"control"`

	StuffPotential    float64 `yaml:"stuff_potential"`
	MovementPotential float64 `yaml:"movement_potential"`
	ControlPotential  float64 `yaml:"control_potential"`

	Pitches map[string]float64 `yaml:"pitches"`

	NumberOfPitches float64 `yaml:"number_of_pitches"`
	Velocity        float64 `yaml:"velocity"`
	Stamina         float64 `yaml:"stamina"`
	GroundFlyRatio  float64 `yaml:"ground_fly_ratio"`
	Holds           float64 `yaml:"holds"`
	ScoutAccuracy   float64 `yaml:"scout_accuracy"`
	OverallRating   float64 `yaml:"overall_rating"`
	PotentialRating float64 `yaml:"potential_rating"`

	// Flat deductions applied to the total score only.
	PenaltyLowPitches float64 `yaml:"penalty_sp_low_pitches"`
	PenaltyLowStamina float64 `yaml:"penalty_sp_low_stamina"`
}

// DefaultBatterWeights returns the shipped batter coefficient table.
func DefaultBatterWeights() *BatterWeights {
	return &BatterWeights{
		OverallWeight:   1.0,
		PotentialWeight: 1.0,

		Overall: OffenseWeights{
			Contact:    0.3,
			Gap:        0.1,
			Power:      0.4,
			Eye:        0.3,
			Strikeouts: 0.1,
		},
		Potential: OffenseWeights{
			Contact:    0.3,
			Gap:        0.1,
			Power:      0.4,
			Eye:        0.3,
			Strikeouts: 0.1,
		},

		Catcher: CatcherWeights{
			Ability:  0.5,
			Arm:      0.3,
			Blocking: 0.4,
		},
		Infield: InfieldWeights{
			// Shortstop range and third-base arm carry extra weight.
			Range: PositionWeights{"1B": 0.2, "2B": 0.2, "SS": 0.5, "3B": 0.2},
			Error: 0.2,
			Arm:   PositionWeights{"1B": 0.2, "2B": 0.2, "SS": 0.2, "3B": 0.5},
		},
		Outfield: OutfieldWeights{
			Range: PositionWeights{"LF": 0.2, "CF": 0.4, "RF": 0.2},
			Error: 0.2,
			Arm:   0.2,
		},
	}
}

// DefaultPitcherWeights returns the shipped pitcher coefficient table.
func DefaultPitcherWeights() *PitcherWeights {
	return &PitcherWeights{
		Stuff:    0.5,
		Movement: 0.5,
		Control:  0.5,

		StuffPotential:    0.5,
		MovementPotential: 0.5,
		ControlPotential:  0.5,

		Pitches: map[string]float64{
			"Fastball":           0.03,
			"Fastball Potential": 0.03,

			"Changeup":                0.03,
			"Changeup Potential":      0.03,
			"Splitter":                0.03,
			"Splitter Potential":      0.03,
			"Circle Change":           0.03,
			"Circle Change Potential": 0.03,

			"Curveball":                0.03,
			"Curveball Potential":      0.03,
			"Slider":                   0.03,
			"Slider Potential":         0.03,
			"Knuckle Curve":            0.03,
			"Knuckle Curve Potential":  0.03,
			"Screwball":                0.01,
			"Screwball Potential":      0.01,

			"Sinker":                0.03,
			"Sinker Potential":      0.03,
			"Cutter":                0.01,
			"Cutter Potential":      0.01,
			"Forkball":              0.01,
			"Forkball Potential":    0.01,
			"Knuckleball":           0.03,
			"Knuckleball Potential": 0.03,
		},

		NumberOfPitches: 0.3,
		Velocity:        0.2,
		Stamina:         0.03,
		GroundFlyRatio:  0.02,
		Holds:           0.02,
		ScoutAccuracy:   0.05,
		OverallRating:   0.1,
		PotentialRating: 0.1,

		PenaltyLowPitches: -0.2,
		PenaltyLowStamina: -0.5,
	}
}
