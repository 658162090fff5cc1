package catalog

import (
	"time"

	"github.com/google/uuid"
)

// PanelKind selects the renderer used for a test code's result group.
type PanelKind string

const (
	PanelFBC     PanelKind = "fbc"
	PanelUFR     PanelKind = "ufr"
	PanelOGTT    PanelKind = "ogtt"
	PanelPPBS    PanelKind = "ppbs"
	PanelBSS     PanelKind = "bss"
	PanelDefault PanelKind = "default"
)

// RenderCaps describes how a test code's rows are displayed: which columns
// are suppressed and whether the qualitative comment stands in for the
// numeric value. One record per code replaces scattered per-code switches.
type RenderCaps struct {
	HidesRange  bool      `json:"hides_range"`
	HidesUnit   bool      `json:"hides_unit"`
	UsesComment bool      `json:"uses_comment"`
	Renderer    PanelKind `json:"renderer"`
}

// Entry maps to the test_catalog table. Reference data: loaded from seed,
// new codes appended, existing rows never touched.
type Entry struct {
	ID             uuid.UUID         `db:"id" json:"-"`
	Code           string            `db:"code" json:"code"`
	Name           string            `db:"name" json:"name"`
	DefaultPrice   float64           `db:"default_price" json:"defaultPrice"`
	EstimatedCost  float64           `db:"estimated_cost" json:"estimatedCost"`
	Unit           string            `db:"unit" json:"unit"`
	ReferenceRange map[string]string `db:"reference_range" json:"referenceRange"`
	Category       string            `db:"category" json:"category"`
	UnitPerTest    map[string]string `db:"unit_per_test" json:"unitPerTest,omitempty"`
	IsQualitative  bool              `db:"is_qualitative" json:"isQualitative,omitempty"`
	CreatedAt      time.Time         `db:"created_at" json:"-"`
}

// hiddenRangeCodes carry no reference-range column in the default table.
var hiddenRangeCodes = map[string]bool{
	"ESR": true, "TSH": true, "HBA1C": true, "BUN": true, "VDRL": true,
	"HIV": true, "HCG": true, "DEN": true, "FT3": true, "FER": true,
	"HBsAg": true, "HCGU": true, "UKB": true, "DNS1": true, "WIDAL": true,
	"UACR": true, "LIPID": true,
}

// qualitativeCodes additionally hide the unit column and display the
// comments field in place of the value.
var qualitativeCodes = map[string]bool{
	"HIV": true, "HCG": true, "DEN": true, "HBsAg": true,
	"HCGU": true, "UKB": true, "DNS1": true, "WIDAL": true,
}

var panelRenderers = map[string]PanelKind{
	"FBC":  PanelFBC,
	"UFR":  PanelUFR,
	"OGTT": PanelOGTT,
	"PPBS": PanelPPBS,
	"BSS":  PanelBSS,
}

// CapsFor returns the render capabilities for a test code. Unknown codes get
// the default flat-table rendering with every column visible.
func CapsFor(code string) RenderCaps {
	caps := RenderCaps{Renderer: PanelDefault}
	if r, ok := panelRenderers[code]; ok {
		caps.Renderer = r
	}
	caps.HidesRange = hiddenRangeCodes[code]
	if qualitativeCodes[code] {
		caps.HidesUnit = true
		caps.UsesComment = true
	}
	return caps
}
