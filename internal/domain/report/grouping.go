package report

import (
	"strconv"
	"strings"

	"github.com/labcore/lims/internal/domain/catalog"
	"github.com/labcore/lims/internal/labcalc"
)

// ResultGroup is one test code's results in the order they were stored.
type ResultGroup struct {
	TestCode string
	Results  []TestResult
}

// GroupResults buckets a flat result list by test code, preserving the
// first-seen order of codes and the stored order within each group.
func GroupResults(results []TestResult) []ResultGroup {
	var groups []ResultGroup
	index := map[string]int{}
	for _, r := range results {
		i, ok := index[r.TestCode]
		if !ok {
			i = len(groups)
			index[r.TestCode] = i
			groups = append(groups, ResultGroup{TestCode: r.TestCode})
		}
		groups[i].Results = append(groups[i].Results, r)
	}
	return groups
}

// TableRow is one rendered result line.
type TableRow struct {
	Name           string         `json:"name"`
	Value          string         `json:"value"`
	Unit           string         `json:"unit"`
	ReferenceRange string         `json:"referenceRange"`
	Status         labcalc.Status `json:"status"`
}

// Table is one rendered sub-table of a report section.
type Table struct {
	Title     string     `json:"title,omitempty"`
	ShowUnit  bool       `json:"showUnit"`
	ShowRange bool       `json:"showRange"`
	Rows      []TableRow `json:"rows"`
}

// ChartPoint is one OGTT measurement with its normal band bounds.
type ChartPoint struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	BandLow  float64 `json:"bandLow"`
	BandHigh float64 `json:"bandHigh"`
}

// Section is the render-ready form of one test code's results.
type Section struct {
	TestCode    string           `json:"testCode"`
	Kind        catalog.PanelKind `json:"kind"`
	Tables      []Table          `json:"tables"`
	ChartPoints []ChartPoint     `json:"chartPoints,omitempty"`
	Status      string           `json:"status,omitempty"`
}

// BuildSections groups stored results and dispatches each group to its
// panel-specific layout.
func BuildSections(results []TestResult) []Section {
	groups := GroupResults(results)
	sections := make([]Section, 0, len(groups))
	for _, g := range groups {
		switch g.TestCode {
		case "FBC":
			sections = append(sections, buildFBCSection(g))
		case "UFR":
			sections = append(sections, buildUFRSection(g))
		case "OGTT":
			sections = append(sections, buildOGTTSection(g))
		case "PPBS", "BSS":
			sections = append(sections, buildGlucoseSeriesSection(g))
		default:
			sections = append(sections, buildDefaultSection(g))
		}
	}
	return sections
}

// pick selects results whose names match the fixed parameter list, in
// list order. Missing parameters are simply skipped.
func pick(results []TestResult, names []string) []TestResult {
	byName := map[string]TestResult{}
	for _, r := range results {
		if _, seen := byName[r.TestName]; !seen {
			byName[r.TestName] = r
		}
	}
	var out []TestResult
	for _, n := range names {
		if r, ok := byName[n]; ok {
			out = append(out, r)
		}
	}
	return out
}

// classifiedRows renders results with a low/normal/high badge computed
// against their numeric reference intervals. Only the FBC tables carry
// the badge.
func classifiedRows(results []TestResult) []TableRow {
	rows := make([]TableRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, TableRow{
			Name:           r.TestName,
			Value:          r.Value,
			Unit:           r.Unit,
			ReferenceRange: r.ReferenceRange,
			Status:         labcalc.Classify(r.Value, r.ReferenceRange),
		})
	}
	return rows
}

// plainRows renders results without status classification.
func plainRows(results []TestResult) []TableRow {
	rows := make([]TableRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, TableRow{
			Name:           r.TestName,
			Value:          r.Value,
			Unit:           r.Unit,
			ReferenceRange: r.ReferenceRange,
			Status:         labcalc.StatusNormal,
		})
	}
	return rows
}

func buildFBCSection(g ResultGroup) Section {
	sec := Section{TestCode: g.TestCode, Kind: catalog.PanelFBC}
	subsets := []struct {
		title string
		names []string
	}{
		{"Full Blood Count", fbcMainParams},
		{"Differential Count", fbcDifferentialParams},
		{"Absolute Counts", fbcAbsoluteParams},
	}
	for _, sub := range subsets {
		picked := pick(g.Results, sub.names)
		if len(picked) == 0 {
			continue
		}
		sec.Tables = append(sec.Tables, Table{
			Title:     sub.title,
			ShowUnit:  true,
			ShowRange: true,
			Rows:      classifiedRows(picked),
		})
	}
	return sec
}

func buildUFRSection(g ResultGroup) Section {
	sec := Section{TestCode: g.TestCode, Kind: catalog.PanelUFR}
	subsets := []struct {
		title string
		names []string
	}{
		{"Physical / Chemical Examination", ufrPhysicalParams},
		{"Microscopic Examination", ufrMicroscopicParams},
	}
	for _, sub := range subsets {
		picked := pick(g.Results, sub.names)
		if len(picked) == 0 {
			continue
		}
		sec.Tables = append(sec.Tables, Table{
			Title:     sub.title,
			ShowUnit:  true,
			ShowRange: true,
			Rows:      plainRows(picked),
		})
	}
	return sec
}

func buildOGTTSection(g ResultGroup) Section {
	sec := Section{TestCode: g.TestCode, Kind: catalog.PanelOGTT}
	sec.Tables = append(sec.Tables, Table{
		ShowUnit:  true,
		ShowRange: true,
		Rows:      plainRows(g.Results),
	})

	bands := map[string]labcalc.OGTTBand{}
	for _, b := range labcalc.OGTTBands() {
		bands[b.Label] = b
	}
	var fasting, twoHour string
	for _, r := range g.Results {
		switch r.TestName {
		case labcalc.HourFasting:
			fasting = r.Value
		case labcalc.HourAfterTwo:
			twoHour = r.Value
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(r.Value), 64)
		if err != nil {
			continue
		}
		b, ok := bands[r.TestName]
		if !ok {
			continue
		}
		sec.ChartPoints = append(sec.ChartPoints, ChartPoint{
			Label:    r.TestName,
			Value:    v,
			BandLow:  b.Low,
			BandHigh: b.High,
		})
	}
	sec.Status = labcalc.OGTTStatus(fasting, twoHour)
	return sec
}

func buildGlucoseSeriesSection(g ResultGroup) Section {
	kind := catalog.PanelPPBS
	if g.TestCode == "BSS" {
		kind = catalog.PanelBSS
	}
	return Section{
		TestCode: g.TestCode,
		Kind:     kind,
		Tables: []Table{{
			ShowUnit:  true,
			ShowRange: true,
			Rows:      plainRows(g.Results),
		}},
	}
}

// buildDefaultSection renders a flat table. Qualitative codes show the
// comments text in the value cell and hide the unit column; a wider set
// of codes hides the reference-range column. Composite JSON ranges are
// flattened to "key: value" pairs.
func buildDefaultSection(g ResultGroup) Section {
	caps := catalog.CapsFor(g.TestCode)
	rows := make([]TableRow, 0, len(g.Results))
	for _, r := range g.Results {
		value := r.Value
		if caps.UsesComment && strings.TrimSpace(r.Comments) != "" {
			value = r.Comments
		}
		rows = append(rows, TableRow{
			Name:           r.TestName,
			Value:          value,
			Unit:           r.Unit,
			ReferenceRange: labcalc.ParseRange(r.ReferenceRange).Display(),
			Status:         labcalc.StatusNormal,
		})
	}
	return Section{
		TestCode: g.TestCode,
		Kind:     catalog.PanelDefault,
		Tables: []Table{{
			ShowUnit:  !caps.HidesUnit,
			ShowRange: !caps.HidesRange,
			Rows:      rows,
		}},
	}
}
