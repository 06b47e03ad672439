package weights

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadBatterWeights reads an operator-edited batter weight table from a YAML
// file. Keys absent from the file fall back to the contract defaults: the
// overall/potential multipliers to 1.0, every coefficient to 0. Unknown keys
// are rejected rather than ignored. An empty path returns the shipped
// defaults.
func LoadBatterWeights(path string) (*BatterWeights, error) {
	if path == "" {
		return DefaultBatterWeights(), nil
	}
	w := &BatterWeights{OverallWeight: 1.0, PotentialWeight: 1.0}
	if err := decodeInto(path, w); err != nil {
		return nil, fmt.Errorf("load batter weights: %w", err)
	}
	return w, nil
}

// LoadPitcherWeights reads an operator-edited pitcher weight table from a
// YAML file. Missing coefficients fall back to 0; unknown keys are rejected.
// An empty path returns the shipped defaults.
func LoadPitcherWeights(path string) (*PitcherWeights, error) {
	if path == "" {
		return DefaultPitcherWeights(), nil
	}
	w := &PitcherWeights{Pitches: map[string]float64{}}
	if err := decodeInto(path, w); err != nil {
		return nil, fmt.Errorf("load pitcher weights: %w", err)
	}
	return w, nil
}

func decodeInto(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
