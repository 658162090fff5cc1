package labcalc

import "strings"

// FBCInputs holds the raw operator-entered Full Blood Count values. All
// fields are strings as entered on the form; blank means not measured.
type FBCInputs struct {
	Hemoglobin string
	RBC        string
	PCV        string
	WBC        string

	// Differential percentages.
	Neutrophils string
	Lymphocytes string
	Eosinophils string
	Monocytes   string
	Basophils   string
}

// FBCDerived holds the computed FBC indices and absolute counts. A value is
// the empty string whenever its formula had a zero, blank or non-numeric
// operand.
type FBCDerived struct {
	MCV  string // (PCV / RBC) x 10, 1 decimal
	MCH  string // (Hemoglobin / RBC) x 10, 1 decimal
	MCHC string // (Hemoglobin / PCV) x 100, 1 decimal

	AbsNeutrophils string // (% / 100) x WBC, 2 decimals
	AbsLymphocytes string
	AbsEosinophils string
	AbsMonocytes   string
	AbsBasophils   string

	// DifferentialSumOK reports whether the entered differential
	// percentages sum to 100 within 0.1. An untouched differential, all
	// five fields blank, passes. Display-only; never blocks submission.
	DifferentialSumOK bool
}

// ComputeFBC recomputes every derived FBC value from scratch.
func ComputeFBC(in FBCInputs) FBCDerived {
	var out FBCDerived

	hb, hbOK := parseNum(in.Hemoglobin)
	rbc, rbcOK := parseNum(in.RBC)
	pcv, pcvOK := parseNum(in.PCV)
	wbc, wbcOK := parseNum(in.WBC)

	if pcvOK && rbcOK && rbc != 0 {
		out.MCV = format1(pcv / rbc * 10)
	}
	if hbOK && rbcOK && rbc != 0 {
		out.MCH = format1(hb / rbc * 10)
	}
	if hbOK && pcvOK && pcv != 0 {
		out.MCHC = format1(hb / pcv * 100)
	}

	abs := func(pct string) string {
		p, ok := parseNum(pct)
		if !ok || !wbcOK {
			return ""
		}
		return format2(p / 100 * wbc)
	}
	out.AbsNeutrophils = abs(in.Neutrophils)
	out.AbsLymphocytes = abs(in.Lymphocytes)
	out.AbsEosinophils = abs(in.Eosinophils)
	out.AbsMonocytes = abs(in.Monocytes)
	out.AbsBasophils = abs(in.Basophils)

	out.DifferentialSumOK = differentialSumOK(in)
	return out
}

func differentialSumOK(in FBCInputs) bool {
	sum := 0.0
	entered := 0
	for _, pct := range []string{in.Neutrophils, in.Lymphocytes, in.Eosinophils, in.Monocytes, in.Basophils} {
		if strings.TrimSpace(pct) == "" {
			continue
		}
		p, ok := parseNum(pct)
		if !ok {
			return false
		}
		sum += p
		entered++
	}
	if entered == 0 {
		return true
	}
	return sum >= 99.9 && sum <= 100.1
}
