package view

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ootptools/hector/internal/score"
)

// Sort keys below exist purely for display ordering. In particular the
// trailing-plus velocity adjustment never feeds into scoring.

// VeloSortValue converts a velocity cell into a sortable number. A trailing
// "+" sorts just above the bare value ("98+" -> 99.1), a range sorts by its
// upper bound, and anything unparsable sinks to -1.
func VeloSortValue(val string) float64 {
	val = strings.TrimSpace(val)
	switch {
	case strings.HasSuffix(val, "+"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(val, "+"), 64)
		if err != nil {
			return -1
		}
		return n + 1.1
	case strings.Contains(val, "-"):
		parts := strings.Split(val, "-")
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[len(parts)-1]), 64)
		if err != nil {
			return -1
		}
		return n
	default:
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return -1
		}
		return n
	}
}

// proneOrder ranks the injury-proneness categories from most to least
// fragile. Unknown values sort below all known ones.
var proneOrder = map[string]int{
	"wrecked":  0,
	"fragile":  1,
	"normal":   2,
	"durable":  3,
	"iron man": 4,
	"ironman":  4,
}

// ProneRank returns the ordinal rank of an injury-proneness value.
func ProneRank(val string) int {
	if rank, ok := proneOrder[strings.ToLower(strings.TrimSpace(val))]; ok {
		return rank
	}
	return -1
}

// cellNumber tries to read a generic cell numerically, tolerating star
// suffixes and dash placeholders.
func cellNumber(val string) (float64, bool) {
	val = strings.TrimSpace(strings.ReplaceAll(val, "Stars", ""))
	if val == "-" || val == "" {
		return 0, val == "-"
	}
	n, err := strconv.ParseFloat(val, 64)
	return n, err == nil
}

// CompareCells orders two generic cells: numerically when both parse, with
// case-insensitive lexicographic fallback otherwise.
func CompareCells(a, b string) int {
	na, aok := cellNumber(a)
	nb, bok := cellNumber(b)
	if aok && bok {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// SortPitchers orders pitchers in place by a display column name.
// Unrecognized columns fall back to total score.
func SortPitchers(ps []score.Pitcher, column string, desc bool) {
	less := func(a, b score.Pitcher) bool {
		switch strings.ToLower(column) {
		case "name", "team", "pos":
			key := map[string]string{"name": "Name", "team": "ORG", "pos": "POS"}[strings.ToLower(column)]
			return strings.ToLower(a.Record.Get(key)) < strings.ToLower(b.Record.Get(key))
		case "age":
			return CompareCells(a.Record.Get("Age"), b.Record.Get("Age")) < 0
		case "prone":
			return ProneRank(a.Record.Get("Prone")) < ProneRank(b.Record.Get("Prone"))
		case "velo":
			return VeloSortValue(a.Record.Get("VELO")) < VeloSortValue(b.Record.Get("VELO"))
		case "pitches":
			return a.Scores.Pitches < b.Scores.Pitches
		case "pitches-potential":
			return a.Scores.PitchesPotential < b.Scores.PitchesPotential
		default:
			return a.Scores.Total < b.Scores.Total
		}
	}
	sort.SliceStable(ps, func(i, j int) bool {
		if desc {
			return less(ps[j], ps[i])
		}
		return less(ps[i], ps[j])
	})
}

// SortBatters orders batters in place by a display column name.
// Unrecognized columns fall back to total score.
func SortBatters(bs []score.Batter, column string, desc bool) {
	less := func(a, b score.Batter) bool {
		switch strings.ToLower(column) {
		case "name", "team", "pos":
			key := map[string]string{"name": "Name", "team": "ORG", "pos": "POS"}[strings.ToLower(column)]
			return strings.ToLower(a.Record.Get(key)) < strings.ToLower(b.Record.Get(key))
		case "age":
			return CompareCells(a.Record.Get("Age"), b.Record.Get("Age")) < 0
		case "prone":
			return ProneRank(a.Record.Get("Prone")) < ProneRank(b.Record.Get("Prone"))
		case "offense":
			return a.Scores.Offense < b.Scores.Offense
		case "defense":
			return a.Scores.Defense < b.Scores.Defense
		case "offense-potential":
			return a.Scores.OffensePotential < b.Scores.OffensePotential
		default:
			return a.Scores.Total < b.Scores.Total
		}
	}
	sort.SliceStable(bs, func(i, j int) bool {
		if desc {
			return less(bs[j], bs[i])
		}
		return less(bs[i], bs[j])
	})
}
