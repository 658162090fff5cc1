package report

import (
	"testing"

	"github.com/labcore/lims/internal/labcalc"
)

func TestGroupResultsPreservesFirstSeenOrder(t *testing.T) {
	results := []TestResult{
		{TestCode: "FBC", TestName: "Hemoglobin", Value: "14"},
		{TestCode: "FBS", TestName: "Fasting Blood Sugar", Value: "98"},
		{TestCode: "FBC", TestName: "PCV", Value: "42"},
	}
	groups := GroupResults(results)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].TestCode != "FBC" || groups[1].TestCode != "FBS" {
		t.Errorf("group order: %s, %s", groups[0].TestCode, groups[1].TestCode)
	}
	if len(groups[0].Results) != 2 {
		t.Errorf("FBC group size: %d", len(groups[0].Results))
	}
}

func TestBuildSectionsFBCSubtables(t *testing.T) {
	results := AssembleFBC(FBCPanel{
		FBCInputs: labcalc.FBCInputs{
			Hemoglobin:  "10",
			RBC:         "4.5",
			PCV:         "42",
			WBC:         "8000",
			Neutrophils: "60",
			Lymphocytes: "30",
		},
	})
	sections := BuildSections(results)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	sec := sections[0]
	if len(sec.Tables) != 3 {
		t.Fatalf("expected 3 FBC sub-tables, got %d", len(sec.Tables))
	}
	if sec.Tables[0].Title != "Full Blood Count" ||
		sec.Tables[1].Title != "Differential Count" ||
		sec.Tables[2].Title != "Absolute Counts" {
		t.Errorf("sub-table titles: %q %q %q", sec.Tables[0].Title, sec.Tables[1].Title, sec.Tables[2].Title)
	}

	var hb TableRow
	for _, r := range sec.Tables[0].Rows {
		if r.Name == "Hemoglobin" {
			hb = r
		}
	}
	if hb.Status != labcalc.StatusLow {
		t.Errorf("hemoglobin 10 against 12.0-16.0 should be low, got %s", hb.Status)
	}
}

func TestBuildSectionsFBCSkipsEmptySubtables(t *testing.T) {
	results := AssembleFBC(FBCPanel{
		FBCInputs: labcalc.FBCInputs{Hemoglobin: "14"},
	})
	sections := BuildSections(results)
	if len(sections[0].Tables) != 1 {
		t.Fatalf("expected only the main sub-table, got %d", len(sections[0].Tables))
	}
}

func TestBuildSectionsUFRPartition(t *testing.T) {
	results := AssembleUFR(UFRPanel{
		Colour:   "Pale Yellow",
		Protein:  "Nil",
		PusCells: "2-4",
	})
	sections := BuildSections(results)
	sec := sections[0]
	if len(sec.Tables) != 2 {
		t.Fatalf("expected physical and microscopic tables, got %d", len(sec.Tables))
	}
	if sec.Tables[0].Title != "Physical / Chemical Examination" || len(sec.Tables[0].Rows) != 2 {
		t.Errorf("physical table: %+v", sec.Tables[0])
	}
	if sec.Tables[1].Title != "Microscopic Examination" || len(sec.Tables[1].Rows) != 1 {
		t.Errorf("microscopic table: %+v", sec.Tables[1])
	}
}

func TestBuildSectionsOGTTChartAndStatus(t *testing.T) {
	results := AssembleOGTT(OGTTPanel{Fasting: "130", AfterOneHour: "210", AfterTwoHour: "205"})
	sections := BuildSections(results)
	sec := sections[0]

	if sec.Status != "Diabetic" {
		t.Errorf("status: got %q, want Diabetic", sec.Status)
	}
	if len(sec.ChartPoints) != 3 {
		t.Fatalf("expected 3 chart points, got %d", len(sec.ChartPoints))
	}
	fasting := sec.ChartPoints[0]
	if fasting.Label != labcalc.HourFasting || fasting.BandLow != 70 || fasting.BandHigh != 110 {
		t.Errorf("fasting band: %+v", fasting)
	}
	oneHour := sec.ChartPoints[1]
	if oneHour.BandLow != 90 || oneHour.BandHigh != 170 {
		t.Errorf("one hour band: %+v", oneHour)
	}
}

func TestBuildSectionsOGTTPrediabeticAndNormal(t *testing.T) {
	sec := BuildSections(AssembleOGTT(OGTTPanel{Fasting: "105", AfterTwoHour: "120"}))[0]
	if sec.Status != "Prediabetic" {
		t.Errorf("fasting 105 should be Prediabetic, got %q", sec.Status)
	}
	sec = BuildSections(AssembleOGTT(OGTTPanel{Fasting: "90", AfterTwoHour: "120"}))[0]
	if sec.Status != "Normal" {
		t.Errorf("expected Normal, got %q", sec.Status)
	}
}

func TestBuildSectionsBadgeOnlyOnFBC(t *testing.T) {
	fbc := BuildSections(AssembleFBC(FBCPanel{
		FBCInputs: labcalc.FBCInputs{Hemoglobin: "20"},
	}))[0]
	if fbc.Tables[0].Rows[0].Status != labcalc.StatusHigh {
		t.Errorf("hemoglobin 20 should carry a high badge, got %s", fbc.Tables[0].Rows[0].Status)
	}

	outOfRange := []struct {
		name    string
		results []TestResult
	}{
		{"ppbs", AssemblePPBS(GlucoseEntry{MealType: "Breakfast", HourType: "After 2 Hours", Value: "260"})},
		{"ogtt", AssembleOGTT(OGTTPanel{Fasting: "300"})},
		{"default", []TestResult{{TestCode: "TSH", TestName: "TSH", Value: "9", Unit: "mIU/L", ReferenceRange: "0.4-4.0"}}},
	}
	for _, tc := range outOfRange {
		for _, tbl := range BuildSections(tc.results)[0].Tables {
			for _, row := range tbl.Rows {
				if row.Status != labcalc.StatusNormal {
					t.Errorf("%s: row %q must not carry a badge, got %s", tc.name, row.Name, row.Status)
				}
			}
		}
	}
}

func TestBuildSectionsDefaultHidesColumnsForQualitative(t *testing.T) {
	results := []TestResult{{
		TestCode:       "HIV",
		TestName:       "HIV Antibody",
		Value:          "Non Reactive",
		Comments:       "Non Reactive",
		ReferenceRange: "Non Reactive",
	}}
	sec := BuildSections(results)[0]
	tbl := sec.Tables[0]
	if tbl.ShowRange || tbl.ShowUnit {
		t.Errorf("HIV table must hide range and unit columns: %+v", tbl)
	}
	if tbl.Rows[0].Value != "Non Reactive" {
		t.Errorf("comments should stand in for value: %+v", tbl.Rows[0])
	}
}

func TestBuildSectionsDefaultHidesRangeOnly(t *testing.T) {
	results := []TestResult{{
		TestCode: "TSH", TestName: "TSH", Value: "2.5", Unit: "mIU/L", ReferenceRange: "0.4-4.0",
	}}
	tbl := BuildSections(results)[0].Tables[0]
	if tbl.ShowRange {
		t.Error("TSH table must hide the range column")
	}
	if !tbl.ShowUnit {
		t.Error("TSH table must keep the unit column")
	}
}

func TestBuildSectionsStructuredRangeFlattened(t *testing.T) {
	results := []TestResult{{
		TestCode:       "SCR",
		TestName:       "Serum Creatinine",
		Value:          "1.0",
		Unit:           "mg/dL",
		ReferenceRange: `{"Female":"0.6-1.1","Male":"0.7-1.3"}`,
	}}
	tbl := BuildSections(results)[0].Tables[0]
	if tbl.Rows[0].ReferenceRange != "Female: 0.6-1.1, Male: 0.7-1.3" {
		t.Errorf("structured range display: got %q", tbl.Rows[0].ReferenceRange)
	}
}

func TestBuildSectionsMalformedRangeShownVerbatim(t *testing.T) {
	results := []TestResult{{
		TestCode: "XYZ", TestName: "Mystery", Value: "1", ReferenceRange: `{"broken`,
	}}
	tbl := BuildSections(results)[0].Tables[0]
	if tbl.Rows[0].ReferenceRange != `{"broken` {
		t.Errorf("malformed range must pass through verbatim, got %q", tbl.Rows[0].ReferenceRange)
	}
}
