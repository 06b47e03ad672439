package view

import (
	"fmt"
	"strings"
)

// ProfileURL builds the external player profile link from the preserved
// player ID.
func ProfileURL(base, playerID string) string {
	return fmt.Sprintf("%s/player/%s?page=dash", strings.TrimRight(base, "/"), playerID)
}
