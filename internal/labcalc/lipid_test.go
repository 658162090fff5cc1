package labcalc

import "testing"

func TestComputeLipid(t *testing.T) {
	out := ComputeLipid(LipidInputs{TotalCholesterol: "180", HDL: "45", Triglycerides: "120"})
	if out.VLDL != "24.00" {
		t.Errorf("VLDL: expected 24.00, got %q", out.VLDL)
	}
	if out.LDL != "111.00" {
		t.Errorf("LDL: expected 111.00, got %q", out.LDL)
	}
	if out.Ratio != "4.00" {
		t.Errorf("Ratio: expected 4.00, got %q", out.Ratio)
	}
}

func TestComputeLipid_NonPositiveCholesterol(t *testing.T) {
	out := ComputeLipid(LipidInputs{TotalCholesterol: "0", HDL: "45", Triglycerides: "120"})
	if out.LDL != "" {
		t.Errorf("LDL with TC=0: expected empty, got %q", out.LDL)
	}
	out = ComputeLipid(LipidInputs{HDL: "45", Triglycerides: "120"})
	if out.LDL != "" {
		t.Errorf("LDL with blank TC: expected empty, got %q", out.LDL)
	}
}

func TestComputeLipid_NonPositiveTriglycerides(t *testing.T) {
	out := ComputeLipid(LipidInputs{TotalCholesterol: "180", HDL: "45", Triglycerides: "0"})
	if out.VLDL != "0.00" {
		t.Errorf("VLDL with TG=0: expected 0.00, got %q", out.VLDL)
	}
	if out.LDL != "135.00" {
		t.Errorf("LDL: expected 135.00, got %q", out.LDL)
	}
}

func TestComputeLipid_ZeroHDLRatio(t *testing.T) {
	out := ComputeLipid(LipidInputs{TotalCholesterol: "180", HDL: "0", Triglycerides: "120"})
	if out.Ratio != "" {
		t.Errorf("Ratio with HDL=0: expected empty, got %q", out.Ratio)
	}
}

func TestComputeLipid_Idempotent(t *testing.T) {
	in := LipidInputs{TotalCholesterol: "212.4", HDL: "38", Triglycerides: "190"}
	if ComputeLipid(in) != ComputeLipid(in) {
		t.Error("repeated computation differs")
	}
}
