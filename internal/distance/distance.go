// Package distance looks up travel distances between named zones.
package distance

import (
	"sort"

	"dateplan/internal/model"
)

// Sentinel is returned for zone pairs missing from the table.
const Sentinel = 999.0

type pair struct {
	from string
	to   string
}

// Table is a read-only zone-to-zone distance lookup in miles.
type Table struct {
	miles map[pair]float64
	zones map[string]struct{}
}

// NewTable builds a table from directed entries. Later duplicates win.
func NewTable(entries []model.Distance) *Table {
	t := &Table{
		miles: make(map[pair]float64, len(entries)),
		zones: make(map[string]struct{}),
	}
	for _, e := range entries {
		t.miles[pair{e.From, e.To}] = e.Miles
		t.zones[e.From] = struct{}{}
		t.zones[e.To] = struct{}{}
	}
	return t
}

// Distance returns the miles between two zones. A zone is always 0 from
// itself and an unknown pair yields Sentinel.
func (t *Table) Distance(from, to string) float64 {
	if from == to {
		return 0
	}
	if t == nil {
		return Sentinel
	}
	if d, ok := t.miles[pair{from, to}]; ok {
		return d
	}
	return Sentinel
}

// Zones returns every zone named in the table, sorted.
func (t *Table) Zones() []string {
	if t == nil {
		return nil
	}
	zones := make([]string, 0, len(t.zones))
	for z := range t.zones {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	return zones
}

// Asymmetric returns the entries whose reverse direction is missing or
// carries a different distance, sorted by from/to.
func (t *Table) Asymmetric() []model.Distance {
	if t == nil {
		return nil
	}
	var out []model.Distance
	for p, d := range t.miles {
		if p.from == p.to {
			continue
		}
		rev, ok := t.miles[pair{p.to, p.from}]
		if !ok || rev != d {
			out = append(out, model.Distance{From: p.from, To: p.to, Miles: d})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From == out[j].From {
			return out[i].To < out[j].To
		}
		return out[i].From < out[j].From
	})
	return out
}
