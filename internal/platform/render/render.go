// Package render produces the printable HTML view of a report: grouped
// result tables, the OGTT chart and a QR verification stamp.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/labcore/lims/internal/domain/catalog"
	"github.com/labcore/lims/internal/domain/report"
)

// Engine renders reports for printing. verifyBaseURL is the public URL
// prefix encoded into each report's QR stamp.
type Engine struct {
	labName       string
	verifyBaseURL string
	tmpl          *template.Template
}

func New(labName, verifyBaseURL string) (*Engine, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Engine{labName: labName, verifyBaseURL: verifyBaseURL, tmpl: tmpl}, nil
}

type sectionView struct {
	report.Section
	Chart template.HTML
}

type pageData struct {
	LabName  string
	Report   *report.Record
	Sections []sectionView
	QR       template.URL
}

// ReportHTML builds the full printable page for one stored report.
func (e *Engine) ReportHTML(rec *report.Record, sections []report.Section) ([]byte, error) {
	views := make([]sectionView, 0, len(sections))
	for _, sec := range sections {
		v := sectionView{Section: sec}
		if sec.Kind == catalog.PanelOGTT {
			chart, err := ogttChart(sec.ChartPoints)
			if err != nil {
				return nil, fmt.Errorf("render ogtt chart: %w", err)
			}
			v.Chart = chart
		}
		views = append(views, v)
	}

	qr, err := qrDataURI(e.verifyBaseURL + "/" + rec.DisplayID)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	var buf bytes.Buffer
	err = e.tmpl.Execute(&buf, pageData{
		LabName:  e.labName,
		Report:   rec,
		Sections: views,
		QR:       template.URL(qr),
	})
	if err != nil {
		return nil, fmt.Errorf("execute report template: %w", err)
	}
	return buf.Bytes(), nil
}

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Report.DisplayID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; margin-bottom: 1.5em; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
th { background: #eee; }
.badge-low, .badge-high { font-weight: bold; }
.badge-low { color: #1565c0; }
.badge-high { color: #c62828; }
.meta { margin-bottom: 1em; }
.qr { float: right; }
h3 { margin-bottom: 0.3em; }
</style>
</head>
<body>
<img class="qr" src="{{.QR}}" width="96" height="96" alt="verification">
<h1>{{.LabName}}</h1>
<div class="meta">
  <div><strong>Report:</strong> {{.Report.DisplayID}}</div>
  <div><strong>Patient:</strong> {{.Report.PatientName}} ({{.Report.PatientID}})</div>
  {{if .Report.InvoiceID}}<div><strong>Invoice:</strong> {{.Report.InvoiceID}}</div>{{end}}
  <div><strong>Date:</strong> {{.Report.CreatedAt.Format "2006-01-02 15:04"}}</div>
</div>
{{range .Sections}}
<h2>{{.TestCode}}</h2>
{{range .Tables}}
{{if .Title}}<h3>{{.Title}}</h3>{{end}}
<table>
<tr><th>Test</th><th>Result</th>{{if .ShowUnit}}<th>Unit</th>{{end}}{{if .ShowRange}}<th>Reference Range</th>{{end}}</tr>
{{$t := .}}
{{range .Rows}}
<tr>
  <td>{{.Name}}</td>
  <td>{{.Value}}{{if eq .Status "low"}} <span class="badge-low">L</span>{{end}}{{if eq .Status "high"}} <span class="badge-high">H</span>{{end}}</td>
  {{if $t.ShowUnit}}<td>{{.Unit}}</td>{{end}}
  {{if $t.ShowRange}}<td>{{.ReferenceRange}}</td>{{end}}
</tr>
{{end}}
</table>
{{end}}
{{if .Status}}<p><strong>Overall:</strong> {{.Status}}</p>{{end}}
{{if .Chart}}{{.Chart}}{{end}}
{{end}}
{{if .Report.DoctorRemarks}}<p><strong>Remarks:</strong> {{.Report.DoctorRemarks}}</p>{{end}}
<p><strong>Reviewed by:</strong> {{.Report.ReviewedBy}}</p>
</body>
</html>`
