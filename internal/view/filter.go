// Package view provides the display-support layer consumed by the CLI:
// search and position filtering, column sort keys, table rendering, and
// profile URL construction. Nothing here feeds back into scoring.
package view

import (
	"strings"

	"github.com/ootptools/hector/internal/score"
)

// Filter selects players for display. An empty Positions list allows every
// position; Search is an AND of whitespace-separated, case-insensitive
// substring terms over name, team, and position.
type Filter struct {
	Search    string
	Positions []string
}

// DisplayPosition maps a pitcher's stored position to its display position.
// Closers show (and filter) as relievers.
func DisplayPosition(pos string) string {
	if pos == "CL" {
		return "RP"
	}
	return pos
}

// MatchPitcher reports whether a scored pitcher passes the filter.
func (f Filter) MatchPitcher(p score.Pitcher) bool {
	pos := DisplayPosition(p.Record.Get("POS"))
	return f.match(p.Record.Get("Name"), p.Record.Get("ORG"), pos)
}

// MatchBatter reports whether a scored batter passes the filter.
func (f Filter) MatchBatter(b score.Batter) bool {
	return f.match(b.Record.Get("Name"), b.Record.Get("ORG"), b.Record.Get("POS"))
}

func (f Filter) match(name, team, pos string) bool {
	if len(f.Positions) > 0 {
		found := false
		for _, p := range f.Positions {
			if strings.EqualFold(p, pos) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	haystack := strings.ToLower(name + " " + team + " " + pos)
	for _, term := range strings.Fields(strings.ToLower(f.Search)) {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}
