// Package score converts raw roster records into weighted score breakdowns
// for batters and pitchers.
package score

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FieldKind selects normalization behavior for fields whose text encoding
// differs from plain numbers.
type FieldKind int

const (
	// KindDefault covers plain numeric and star-rating cells.
	KindDefault FieldKind = iota
	// KindVelocity covers range-encoded cells like "92-95 mph".
	KindVelocity
)

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// Normalize converts a raw cell value into a number. Rules, in priority
// order: star ratings take their leading numeric token; velocity ranges
// average their parseable endpoints after stripping the unit suffix; a bare
// dash or empty cell is 0; anything else yields its first embedded decimal
// number. Nothing ever fails — every unparsable input degrades to 0.
func Normalize(raw string, kind FieldKind) float64 {
	val := strings.TrimSpace(raw)

	switch {
	case strings.Contains(val, "Stars"):
		tokens := strings.Fields(val)
		if len(tokens) == 0 {
			return 0
		}
		n, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil {
			return 0
		}
		return n

	case kind == KindVelocity && strings.Contains(val, "-"):
		val = strings.ReplaceAll(val, "mph", "")
		var nums []float64
		for _, part := range strings.Split(val, "-") {
			if n, err := strconv.ParseFloat(strings.TrimSpace(part), 64); err == nil {
				nums = append(nums, n)
			}
		}
		if len(nums) == 0 {
			return 0
		}
		sum := 0.0
		for _, n := range nums {
			sum += n
		}
		return sum / float64(len(nums))

	case val == "-" || val == "":
		return 0

	default:
		match := numberPattern.FindString(val)
		if match == "" {
			return 0
		}
		n, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0
		}
		return n
	}
}

// round2 rounds to 2 decimal places. Sub-scores are rounded independently
// before summing into totals; that ordering is part of the observable
// contract and must not be collapsed into a single final rounding.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
