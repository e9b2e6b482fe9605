package sources

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"country-db/core/utils"
	"country-db/feature/countries/models"
)

// Table selectors of the three pages.
var (
	UNTable         = Selector{"border": "0", "cellpadding": "2", "cellspacing": "0"}
	WorldAtlasTable = Selector{"width": "870", "cellpadding": "0", "cellspacing": "0"}
	WikipediaTable  = Selector{"class": "wikitable sortable"}
)

var footnote = regexp.MustCompile(`\[[^\]]*\]`)

// ParsePrimary reads the UN table: number, name and ISO3 per row after the
// header. Rows without an ISO3 code are skipped.
func ParsePrimary(r io.Reader) (models.Dataset, error) {
	rows, err := ReadTable(r, UNTable, 1)
	if err != nil {
		return nil, fmt.Errorf("un: %w", err)
	}

	ds := make(models.Dataset, len(rows))
	for _, cells := range rows {
		if len(cells) < 3 {
			continue
		}
		iso3 := utils.CleanText(cells[2])
		if iso3 == "" {
			continue
		}
		ds[iso3] = models.Record{
			ISO3:   iso3,
			Number: utils.CleanText(cells[0]),
			Name:   utils.CleanText(cells[1]),
		}
	}
	return ds, nil
}

// ParseBroad reads the WorldAtlas table. It accepts one country per row
// (ISO2, ISO3, number, name) or the packed layout where each of the first
// four cells holds a whole column behind its header.
func ParseBroad(r io.Reader) (models.Dataset, error) {
	rows, err := ReadTable(r, WorldAtlasTable, 0)
	if err != nil {
		return nil, fmt.Errorf("worldatlas: %w", err)
	}

	ds := make(models.Dataset, len(rows))
	for _, cells := range rows {
		if len(cells) < 4 || !isCode(utils.CleanText(cells[1]), 3) {
			continue
		}
		rec := models.Record{
			ISO2:   utils.CleanText(cells[0]),
			ISO3:   utils.CleanText(cells[1]),
			Number: utils.CleanText(cells[2]),
			Name:   utils.CleanText(cells[3]),
		}
		ds[rec.ISO3] = rec
	}
	if len(ds) > 0 || len(rows) == 0 || len(rows[0]) < 4 {
		return ds, nil
	}
	return parsePacked(rows[0]), nil
}

func parsePacked(cells []string) models.Dataset {
	iso2 := utils.Chunk(packedColumn(cells[0], 2), 2)
	iso3 := utils.Chunk(packedColumn(cells[1], 2), 3)
	numbers := utils.Chunk(packedColumn(cells[2], 3), 3)

	var names []string
	lines := strings.Split(cells[3], "\n")
	for _, line := range lines[1:] {
		if name := utils.CleanText(line); name != "" {
			names = append(names, name)
		}
	}

	n := min(len(iso2), len(iso3), len(numbers), len(names))
	ds := make(models.Dataset, n)
	for i := 0; i < n; i++ {
		ds[iso3[i]] = models.Record{
			ISO2:   iso2[i],
			ISO3:   iso3[i],
			Number: numbers[i],
			Name:   names[i],
		}
	}
	return ds
}

// packedColumn drops whitespace and the leading header of width header.
func packedColumn(cell string, header int) string {
	s := strings.Join(strings.Fields(cell), "")
	if len(s) <= header {
		return ""
	}
	return s[header:]
}

// ParseDialing reads the Wikipedia table of dialing codes, keyed by
// uppercased country name. Footnote markers are removed and each entry is cut
// to start at its "+"; entries without one are dropped.
func ParseDialing(r io.Reader) (models.DialingSet, error) {
	rows, err := ReadTable(r, WikipediaTable, 1)
	if err != nil {
		return nil, fmt.Errorf("wikipedia: %w", err)
	}

	set := make(models.DialingSet, len(rows))
	for _, cells := range rows {
		if len(cells) < 2 {
			continue
		}
		country := utils.UpperName(cells[0])
		if country == "" {
			continue
		}
		set[country] = SplitEntries(cells[1])
	}
	return set, nil
}

// SplitEntries turns a raw dialing cell such as "+1 242[3], +1 246" into
// its "+"-prefixed entries.
func SplitEntries(cell string) []string {
	cell = footnote.ReplaceAllString(cell, "")
	var out []string
	for _, part := range strings.Split(cell, ",") {
		part = utils.CleanText(part)
		i := strings.Index(part, "+")
		if i < 0 {
			continue
		}
		out = append(out, part[i:])
	}
	return out
}

func isCode(s string, size int) bool {
	if len(s) != size {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
