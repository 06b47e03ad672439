package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<html><body>
<h1>Roster export</h1>
<table class="other"><tbody><tr><td>decoy</td></tr></tbody></table>
<table class="data">
  <thead>
    <tr><th>ID</th><th> Name </th><th>ORG</th><th>POS</th></tr>
  </thead>
  <tbody>
    <tr><td>101</td><td>Smith</td><td>ATL</td><td>SP</td></tr>
    <tr><td>102</td><td> Jones </td><td>CAS</td><td>RP</td></tr>
    <tr><td>103</td><td>short row</td></tr>
  </tbody>
</table>
</body></html>`

func TestParse(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Name", "ORG", "POS"}, table.Headers)

	// The short row is dropped silently, not an error.
	require.Len(t, table.Records, 2)
	assert.Equal(t, "101", table.Records[0].ID())
	assert.Equal(t, "Smith", table.Records[0].Get("Name"))
	assert.Equal(t, "Jones", table.Records[1].Get("Name"), "cell text is trimmed")
	assert.Equal(t, "CAS", table.Records[1].Team("Unknown"))
}

func TestParseNoDataTable(t *testing.T) {
	docs := map[string]string{
		"empty document": "<html><body></body></html>",
		"wrong class":    `<table class="stats"><thead><tr><th>ID</th></tr></thead></table>`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrNoDataTable)
		})
	}
}

func TestParseEmptyBody(t *testing.T) {
	doc := `<table class="data"><thead><tr><th>ID</th><th>Name</th></tr></thead><tbody></tbody></table>`
	table, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Name"}, table.Headers)
	assert.Empty(t, table.Records)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("does-not-exist.html")
	assert.Error(t, err)
}

func TestRecordTeamFallback(t *testing.T) {
	assert.Equal(t, "Unknown", Record{}.Team("Unknown"))
	assert.Equal(t, "ATL", Record{"ORG": "ATL"}.Team("Unknown"))
}
