package report

import (
	"sort"
	"strings"

	"github.com/labcore/lims/internal/domain/catalog"
	"github.com/labcore/lims/internal/labcalc"
)

// Fixed FBC parameter names. Grouping partitions rendered rows by these
// exact strings, so assembly and grouping must agree on them.
var (
	fbcMainParams = []string{
		"Hemoglobin", "Total RBC Count", "PCV", "MCV", "MCH", "MCHC",
		"Total WBC Count", "Platelet Count", "RDW",
	}
	fbcDifferentialParams = []string{
		"Neutrophils", "Lymphocytes", "Eosinophils", "Monocytes", "Basophils",
	}
	fbcAbsoluteParams = []string{
		"Absolute Neutrophil Count", "Absolute Lymphocyte Count",
		"Absolute Eosinophil Count", "Absolute Monocyte Count",
		"Absolute Basophil Count",
	}
	ufrPhysicalParams = []string{
		"Colour", "Appearance", "Specific Gravity", "Reaction (pH)",
		"Protein", "Sugar", "Ketone Bodies", "Bilirubin", "Urobilinogen",
	}
	ufrMicroscopicParams = []string{
		"Pus Cells", "Red Cells", "Epithelial Cells", "Casts",
		"Crystals", "Organisms", "Amorphous Deposits",
	}
)

type row struct {
	name, value, unit, rng string
}

// buildResults turns fixed rows into TestResults, dropping blank values.
func buildResults(testCode string, rows []row) []TestResult {
	var out []TestResult
	for _, r := range rows {
		if strings.TrimSpace(r.value) == "" {
			continue
		}
		out = append(out, TestResult{
			TestCode:       testCode,
			TestName:       r.name,
			Value:          strings.TrimSpace(r.value),
			Unit:           r.unit,
			ReferenceRange: r.rng,
		})
	}
	return out
}

// FBCPanel is the raw Full Blood Count form state. Derived indices and
// absolute counts are recomputed here, never accepted from the caller.
type FBCPanel struct {
	labcalc.FBCInputs
	PlateletCount string `json:"plateletCount"`
	RDW           string `json:"rdw"`
}

func AssembleFBC(p FBCPanel) []TestResult {
	d := labcalc.ComputeFBC(p.FBCInputs)
	return buildResults("FBC", []row{
		{"Hemoglobin", p.Hemoglobin, "g/dL", "12.0-16.0"},
		{"Total RBC Count", p.RBC, "mill/cumm", "4.5-5.5"},
		{"PCV", p.PCV, "%", "36-46"},
		{"MCV", d.MCV, "fL", "80-100"},
		{"MCH", d.MCH, "pg", "27-33"},
		{"MCHC", d.MCHC, "g/dL", "32-36"},
		{"Total WBC Count", p.WBC, "/cumm", "4000-11000"},
		{"Platelet Count", p.PlateletCount, "/cumm", "150000-450000"},
		{"RDW", p.RDW, "%", "11.5-14.5"},
		{"Neutrophils", p.Neutrophils, "%", "50-70"},
		{"Lymphocytes", p.Lymphocytes, "%", "20-40"},
		{"Eosinophils", p.Eosinophils, "%", "1-6"},
		{"Monocytes", p.Monocytes, "%", "2-10"},
		{"Basophils", p.Basophils, "%", "0-1"},
		{"Absolute Neutrophil Count", d.AbsNeutrophils, "/cumm", "2000-7000"},
		{"Absolute Lymphocyte Count", d.AbsLymphocytes, "/cumm", "1000-3000"},
		{"Absolute Eosinophil Count", d.AbsEosinophils, "/cumm", "40-440"},
		{"Absolute Monocyte Count", d.AbsMonocytes, "/cumm", "200-1000"},
		{"Absolute Basophil Count", d.AbsBasophils, "/cumm", "0-100"},
	})
}

func AssembleLipid(p labcalc.LipidInputs) []TestResult {
	d := labcalc.ComputeLipid(p)
	return buildResults("LIPID", []row{
		{"Total Cholesterol", p.TotalCholesterol, "mg/dL", "<200"},
		{"Triglycerides", p.Triglycerides, "mg/dL", "<150"},
		{"HDL Cholesterol", p.HDL, "mg/dL", ">40"},
		{"VLDL Cholesterol", d.VLDL, "mg/dL", "2-30"},
		{"LDL Cholesterol", d.LDL, "mg/dL", "<130"},
		{"Total Cholesterol/HDL Ratio", d.Ratio, "", "<4.5"},
	})
}

// UFRPanel is the Urine Full Report form state, mostly qualitative.
type UFRPanel struct {
	Colour            string `json:"colour"`
	Appearance        string `json:"appearance"`
	SpecificGravity   string `json:"specificGravity"`
	Reaction          string `json:"reaction"`
	Protein           string `json:"protein"`
	Sugar             string `json:"sugar"`
	KetoneBodies      string `json:"ketoneBodies"`
	Bilirubin         string `json:"bilirubin"`
	Urobilinogen      string `json:"urobilinogen"`
	PusCells          string `json:"pusCells"`
	RedCells          string `json:"redCells"`
	EpithelialCells   string `json:"epithelialCells"`
	Casts             string `json:"casts"`
	Crystals          string `json:"crystals"`
	Organisms         string `json:"organisms"`
	AmorphousDeposits string `json:"amorphousDeposits"`
}

func AssembleUFR(p UFRPanel) []TestResult {
	return buildResults("UFR", []row{
		{"Colour", p.Colour, "", "Pale Yellow"},
		{"Appearance", p.Appearance, "", "Clear"},
		{"Specific Gravity", p.SpecificGravity, "", "1.005-1.030"},
		{"Reaction (pH)", p.Reaction, "", "4.5-8.0"},
		{"Protein", p.Protein, "", "Nil"},
		{"Sugar", p.Sugar, "", "Nil"},
		{"Ketone Bodies", p.KetoneBodies, "", "Nil"},
		{"Bilirubin", p.Bilirubin, "", "Nil"},
		{"Urobilinogen", p.Urobilinogen, "", "Normal"},
		{"Pus Cells", p.PusCells, "/hpf", "0-5"},
		{"Red Cells", p.RedCells, "/hpf", "0-2"},
		{"Epithelial Cells", p.EpithelialCells, "/hpf", "Few"},
		{"Casts", p.Casts, "/hpf", "Nil"},
		{"Crystals", p.Crystals, "/hpf", "Nil"},
		{"Organisms", p.Organisms, "", "Nil"},
		{"Amorphous Deposits", p.AmorphousDeposits, "", "Nil"},
	})
}

// GlucoseEntry is one PPBS or BSS measurement with its meal and timing
// context.
type GlucoseEntry struct {
	MealType string `json:"mealType"`
	HourType string `json:"hourType"`
	Value    string `json:"value"`
}

func (g GlucoseEntry) name(code string) string {
	parts := []string{}
	if strings.TrimSpace(g.MealType) != "" {
		parts = append(parts, strings.TrimSpace(g.MealType))
	}
	if strings.TrimSpace(g.HourType) != "" {
		parts = append(parts, strings.TrimSpace(g.HourType))
	}
	if len(parts) == 0 {
		return code
	}
	return code + " (" + strings.Join(parts, " - ") + ")"
}

// AssemblePPBS emits a single post-prandial result. The "After 1 Hour"
// timing carries the higher reference bound.
func AssemblePPBS(e GlucoseEntry) []TestResult {
	if strings.TrimSpace(e.Value) == "" {
		return nil
	}
	return []TestResult{{
		TestCode:       "PPBS",
		TestName:       e.name("PPBS"),
		Value:          strings.TrimSpace(e.Value),
		Unit:           "mg/dL",
		ReferenceRange: labcalc.PPBSRange(e.HourType),
	}}
}

// AssembleBSS emits one result per non-blank entry of the blood sugar
// series, each validated independently.
func AssembleBSS(entries []GlucoseEntry) []TestResult {
	var out []TestResult
	for _, e := range entries {
		if strings.TrimSpace(e.Value) == "" {
			continue
		}
		out = append(out, TestResult{
			TestCode:       "BSS",
			TestName:       e.name("BSS"),
			Value:          strings.TrimSpace(e.Value),
			Unit:           "mg/dL",
			ReferenceRange: labcalc.PPBSRange(e.HourType),
		})
	}
	return out
}

// OGTTPanel holds the three oral glucose tolerance measurements.
type OGTTPanel struct {
	Fasting      string `json:"fasting"`
	AfterOneHour string `json:"afterOneHour"`
	AfterTwoHour string `json:"afterTwoHour"`
}

func AssembleOGTT(p OGTTPanel) []TestResult {
	return buildResults("OGTT", []row{
		{labcalc.HourFasting, p.Fasting, "mg/dL", labcalc.OGTTFastingRange},
		{labcalc.HourAfterOne, p.AfterOneHour, "mg/dL", labcalc.OGTTOneHourRange},
		{labcalc.HourAfterTwo, p.AfterTwoHour, "mg/dL", labcalc.OGTTTwoHourRange},
	})
}

// AssembleGeneric emits results for a non-specialized catalog test. A
// multi-component entry yields one result per component named
// "<TestName> - <Component>"; a single-component entry yields one result
// under the bare test name. Qualitative outcomes are stored in Comments
// with the value mirrored for blank-filtering.
func AssembleGeneric(entry *catalog.Entry, values map[string]string) []TestResult {
	if entry == nil {
		return nil
	}
	caps := catalog.CapsFor(entry.Code)

	components := make([]string, 0, len(entry.ReferenceRange))
	for k := range entry.ReferenceRange {
		components = append(components, k)
	}
	sort.Strings(components)

	if len(components) <= 1 {
		v := strings.TrimSpace(firstValue(values))
		if v == "" {
			return nil
		}
		unit, rng := catalog.LookupIn(entry, entry.Name)
		res := TestResult{
			TestCode:       entry.Code,
			TestName:       entry.Name,
			Value:          v,
			Unit:           unit,
			ReferenceRange: rng,
		}
		if caps.UsesComment {
			res.Comments = v
		}
		return []TestResult{res}
	}

	var out []TestResult
	for _, comp := range components {
		v := strings.TrimSpace(values[comp])
		if v == "" {
			continue
		}
		unit, rng := catalog.LookupIn(entry, comp)
		res := TestResult{
			TestCode:       entry.Code,
			TestName:       entry.Name + " - " + comp,
			Value:          v,
			Unit:           unit,
			ReferenceRange: rng,
		}
		if caps.UsesComment {
			res.Comments = v
		}
		out = append(out, res)
	}
	return out
}

func firstValue(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.TrimSpace(values[k]) != "" {
			return values[k]
		}
	}
	return ""
}
