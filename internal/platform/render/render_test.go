package render

import (
	"strings"
	"testing"
	"time"

	"github.com/labcore/lims/internal/domain/report"
	"github.com/labcore/lims/internal/labcalc"
)

func TestReportHTML(t *testing.T) {
	eng, err := New("LabCore Diagnostics", "https://lims.example/verify")
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	rec := &report.Record{
		DisplayID:   "REP20260829-0001",
		PatientID:   "PAT20260829-0001",
		PatientName: "Jane Perera",
		ReviewedBy:  "Dr. Silva",
		CreatedAt:   time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		Results: append(
			report.AssembleFBC(report.FBCPanel{FBCInputs: labcalc.FBCInputs{
				Hemoglobin: "10", RBC: "4.5", PCV: "42", WBC: "8000",
			}}),
			report.AssembleOGTT(report.OGTTPanel{Fasting: "95", AfterTwoHour: "120"})...,
		),
	}
	sections := report.BuildSections(rec.Results)

	page, err := eng.ReportHTML(rec, sections)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(page)

	for _, want := range []string{
		"REP20260829-0001",
		"Jane Perera",
		"Dr. Silva",
		"Full Blood Count",
		"Hemoglobin",
		"badge-low",
		"data:image/png;base64,",
		"Normal",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestReportHTMLEscapesUserText(t *testing.T) {
	eng, err := New("LabCore Diagnostics", "https://lims.example/verify")
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	rec := &report.Record{
		DisplayID:   "REP20260829-0002",
		PatientName: "<script>alert(1)</script>",
		ReviewedBy:  "Dr. Silva",
		Results: []report.TestResult{{
			TestCode: "FBS", TestName: "Fasting Blood Sugar", Value: "98",
		}},
	}
	page, err := eng.ReportHTML(rec, report.BuildSections(rec.Results))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(page), "<script>alert(1)</script>") {
		t.Error("patient name was not escaped")
	}
}

func TestQRDataURI(t *testing.T) {
	uri, err := qrDataURI("https://lims.example/verify/REP20260829-0001")
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("unexpected prefix: %.40s", uri)
	}
}

func TestOGTTChartEmptyPoints(t *testing.T) {
	chart, err := ogttChart(nil)
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	if chart != "" {
		t.Error("no points must render no chart")
	}
}
