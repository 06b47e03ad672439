package roster

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoDataTable is returned when the document contains no table marked with
// the "data" class. This is the only structural failure the parser reports;
// malformed rows inside a found table are dropped silently.
var ErrNoDataTable = errors.New("no table with class \"data\" found in document")

// Parse extracts the data table from an exported HTML roster document.
// Headers come from the thead cells in document order; each tbody row is
// zipped against them only when its cell count matches, so truncated or
// decorated rows never produce partial records.
func Parse(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	table := doc.Find("table.data").First()
	if table.Length() == 0 {
		return nil, ErrNoDataTable
	}

	var headers []string
	table.Find("thead th").Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(th.Text()))
	})

	t := &Table{Headers: headers}
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() != len(headers) {
			return
		}
		rec := make(Record, len(headers))
		cells.Each(func(i int, td *goquery.Selection) {
			rec[headers[i]] = strings.TrimSpace(td.Text())
		})
		t.Records = append(t.Records, rec)
	})
	return t, nil
}

// ParseFile parses a local export file.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
