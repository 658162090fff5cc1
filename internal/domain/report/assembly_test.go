package report

import (
	"testing"

	"github.com/labcore/lims/internal/domain/catalog"
	"github.com/labcore/lims/internal/labcalc"
)

func TestAssembleFBCDropsBlanksAndDerives(t *testing.T) {
	results := AssembleFBC(FBCPanel{
		FBCInputs: labcalc.FBCInputs{
			Hemoglobin: "14",
			RBC:        "4.5",
			PCV:        "42",
			WBC:        "8000",
			Neutrophils: "60",
		},
	})

	byName := map[string]TestResult{}
	for _, r := range results {
		if r.Value == "" {
			t.Fatalf("blank value persisted for %s", r.TestName)
		}
		if r.TestCode != "FBC" {
			t.Fatalf("wrong code %s", r.TestCode)
		}
		byName[r.TestName] = r
	}

	if got := byName["MCV"].Value; got != "93.3" {
		t.Errorf("MCV: got %q, want 93.3", got)
	}
	if got := byName["MCH"].Value; got != "31.1" {
		t.Errorf("MCH: got %q, want 31.1", got)
	}
	if got := byName["Absolute Neutrophil Count"].Value; got != "4800.00" {
		t.Errorf("abs neutrophils: got %q, want 4800.00", got)
	}
	if byName["Hemoglobin"].Unit != "g/dL" || byName["Hemoglobin"].ReferenceRange != "12.0-16.0" {
		t.Errorf("hemoglobin unit/range: %+v", byName["Hemoglobin"])
	}
	if _, ok := byName["Platelet Count"]; ok {
		t.Error("blank platelet count should be dropped")
	}
	if _, ok := byName["Lymphocytes"]; ok {
		t.Error("blank lymphocytes should be dropped")
	}
}

func TestAssembleLipidSixOutputs(t *testing.T) {
	results := AssembleLipid(labcalc.LipidInputs{
		TotalCholesterol: "180",
		HDL:              "45",
		Triglycerides:    "120",
	})
	if len(results) != 6 {
		t.Fatalf("expected all 6 lipid outputs, got %d", len(results))
	}
	byName := map[string]string{}
	for _, r := range results {
		byName[r.TestName] = r.Value
	}
	if byName["VLDL Cholesterol"] != "24.00" {
		t.Errorf("VLDL: got %q", byName["VLDL Cholesterol"])
	}
	if byName["LDL Cholesterol"] != "111.00" {
		t.Errorf("LDL: got %q", byName["LDL Cholesterol"])
	}
	if byName["Total Cholesterol/HDL Ratio"] != "4.00" {
		t.Errorf("ratio: got %q", byName["Total Cholesterol/HDL Ratio"])
	}
}

func TestAssemblePPBSRangeDependsOnHour(t *testing.T) {
	one := AssemblePPBS(GlucoseEntry{MealType: "After Breakfast", HourType: labcalc.HourAfterOne, Value: "150"})
	if len(one) != 1 {
		t.Fatalf("expected one result, got %d", len(one))
	}
	if one[0].ReferenceRange != "< 160" {
		t.Errorf("1-hour range: got %q, want < 160", one[0].ReferenceRange)
	}
	if one[0].TestName != "PPBS (After Breakfast - After 1 Hour)" {
		t.Errorf("name: got %q", one[0].TestName)
	}

	two := AssemblePPBS(GlucoseEntry{MealType: "After Lunch", HourType: labcalc.HourAfterTwo, Value: "130"})
	if two[0].ReferenceRange != "< 140" {
		t.Errorf("2-hour range: got %q, want < 140", two[0].ReferenceRange)
	}

	if got := AssemblePPBS(GlucoseEntry{HourType: labcalc.HourAfterOne}); got != nil {
		t.Error("blank PPBS value must produce no result")
	}
}

func TestAssembleBSSKeepsOnlyFilledEntries(t *testing.T) {
	results := AssembleBSS([]GlucoseEntry{
		{MealType: "After Breakfast", HourType: labcalc.HourAfterOne, Value: "155"},
		{MealType: "After Lunch", HourType: labcalc.HourAfterTwo, Value: ""},
		{MealType: "After Dinner", HourType: labcalc.HourAfterTwo, Value: "132"},
	})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ReferenceRange != "< 160" || results[1].ReferenceRange != "< 140" {
		t.Errorf("ranges: %q, %q", results[0].ReferenceRange, results[1].ReferenceRange)
	}
}

func TestAssembleOGTTFixedRanges(t *testing.T) {
	results := AssembleOGTT(OGTTPanel{Fasting: "95", AfterTwoHour: "150"})
	if len(results) != 2 {
		t.Fatalf("expected 2 results for 2 filled points, got %d", len(results))
	}
	if results[0].TestName != labcalc.HourFasting || results[0].ReferenceRange != "60-115" {
		t.Errorf("fasting row: %+v", results[0])
	}
	if results[1].TestName != labcalc.HourAfterTwo || results[1].ReferenceRange != "<140" {
		t.Errorf("two hour row: %+v", results[1])
	}
}

func TestAssembleGenericMultiComponent(t *testing.T) {
	entry := &catalog.Entry{
		Code: "LFT",
		Name: "Liver Function Test",
		Unit: "U/L",
		ReferenceRange: map[string]string{
			"ALT": "7-56",
			"AST": "10-40",
		},
		UnitPerTest: map[string]string{"AST": "IU/L"},
	}
	results := AssembleGeneric(entry, map[string]string{"ALT": "30", "AST": ""})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.TestName != "Liver Function Test - ALT" {
		t.Errorf("composite name: got %q", r.TestName)
	}
	if r.Unit != "U/L" || r.ReferenceRange != "7-56" {
		t.Errorf("unit/range: %q %q", r.Unit, r.ReferenceRange)
	}
}

func TestAssembleGenericSingleComponentBareName(t *testing.T) {
	entry := &catalog.Entry{
		Code:           "FBS",
		Name:           "Fasting Blood Sugar",
		Unit:           "mg/dL",
		ReferenceRange: map[string]string{"Fasting Blood Sugar": "70-110"},
	}
	results := AssembleGeneric(entry, map[string]string{"Fasting Blood Sugar": "98"})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].TestName != "Fasting Blood Sugar" {
		t.Errorf("expected bare name, got %q", results[0].TestName)
	}
	if results[0].ReferenceRange != "70-110" {
		t.Errorf("range: %q", results[0].ReferenceRange)
	}
}

func TestAssembleGenericQualitativeUsesComments(t *testing.T) {
	entry := &catalog.Entry{
		Code:           "HIV",
		Name:           "HIV Antibody",
		ReferenceRange: map[string]string{"HIV Antibody": "Non Reactive"},
		IsQualitative:  true,
	}
	results := AssembleGeneric(entry, map[string]string{"HIV Antibody": "Non Reactive"})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Comments != "Non Reactive" {
		t.Errorf("qualitative outcome missing from comments: %+v", results[0])
	}
}
