package cutoff

import (
	"sort"
	"strconv"
	"strings"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
)

// Record is one cutoff observation: the minimum qualifying score for a
// branch at a campus in a given year.
type Record struct {
	Campus types.Campus `json:"campus"`
	Branch string       `json:"branch"`
	Marks  int          `json:"marks"`
	Year   int          `json:"year"`
}

// Table is an in-memory collection of cutoff records. It is assembled once
// at startup and read-only afterwards; all queries return derived copies.
type Table []Record

func (t Table) Empty() bool {
	return len(t) == 0
}

// FilterCampus keeps records whose campus matches input case-insensitively.
func (t Table) FilterCampus(campus string) Table {
	target := strings.ToLower(strings.TrimSpace(campus))
	var out Table
	for _, r := range t {
		if strings.ToLower(r.Campus.String()) == target {
			out = append(out, r)
		}
	}
	return out
}

// FilterBranch keeps records whose branch matches input case-insensitively.
func (t Table) FilterBranch(branch string) Table {
	target := strings.ToLower(strings.TrimSpace(branch))
	var out Table
	for _, r := range t {
		if strings.ToLower(r.Branch) == target {
			out = append(out, r)
		}
	}
	return out
}

func (t Table) FilterYear(year int) Table {
	var out Table
	for _, r := range t {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// SortByMarksDesc returns a copy sorted by marks descending. Ties are
// broken by campus, branch and year so identical inputs always produce
// identical row order.
func (t Table) SortByMarksDesc() Table {
	out := make(Table, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Marks != out[j].Marks {
			return out[i].Marks > out[j].Marks
		}
		if out[i].Campus != out[j].Campus {
			return out[i].Campus < out[j].Campus
		}
		if out[i].Branch != out[j].Branch {
			return out[i].Branch < out[j].Branch
		}
		return out[i].Year < out[j].Year
	})
	return out
}

// SortByYear returns a copy sorted by year ascending, for time series.
func (t Table) SortByYear() Table {
	out := make(Table, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}

func (t Table) Truncate(limit int) Table {
	if limit <= 0 || limit >= len(t) {
		return t
	}
	return t[:limit]
}

// Branches lists the distinct branch names in the table, sorted.
func (t Table) Branches() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range t {
		if _, ok := seen[r.Branch]; !ok {
			seen[r.Branch] = struct{}{}
			out = append(out, r.Branch)
		}
	}
	sort.Strings(out)
	return out
}

func (t Table) MarksRange() (min, max int) {
	if len(t) == 0 {
		return 0, 0
	}
	min, max = t[0].Marks, t[0].Marks
	for _, r := range t[1:] {
		if r.Marks < min {
			min = r.Marks
		}
		if r.Marks > max {
			max = r.Marks
		}
	}
	return min, max
}

// Rows converts the table into string cells for table rendering, campus
// title-cased, in the fixed Campus/Branch/Marks/Year column order.
func (t Table) Rows() [][]string {
	out := make([][]string, 0, len(t))
	for _, r := range t {
		out = append(out, []string{
			r.Campus.String(),
			r.Branch,
			strconv.Itoa(r.Marks),
			strconv.Itoa(r.Year),
		})
	}
	return out
}

// Prediction is one scenario's predicted cutoff table. Columns carry the
// source file's own header names; table rendering uses them verbatim
// (title-cased) instead of the fixed cutoff headers.
type Prediction struct {
	Scenario types.Scenario
	Columns  []string
	Table    Table
}
