package labcalc

// LipidInputs holds the raw operator-entered Lipid Profile base values.
type LipidInputs struct {
	TotalCholesterol string
	HDL              string
	Triglycerides    string
}

// LipidDerived holds the three computed Lipid Profile values, each formatted
// to 2 decimals. Empty string marks an indeterminate result.
type LipidDerived struct {
	VLDL  string // Triglycerides / 5
	LDL   string // TotalCholesterol - (HDL + VLDL)
	Ratio string // TotalCholesterol / HDL
}

// ComputeLipid recomputes all three derived lipid values from the base
// inputs. Every call recomputes from scratch; there is no incremental path.
func ComputeLipid(in LipidInputs) LipidDerived {
	var out LipidDerived

	tc, tcOK := parseNum(in.TotalCholesterol)
	hdl, hdlOK := parseNum(in.HDL)
	tg, tgOK := parseNum(in.Triglycerides)

	vldl := 0.0
	if tgOK {
		if tg > 0 {
			vldl = tg / 5
		}
		out.VLDL = format2(vldl)
	}

	if tcOK && tc > 0 {
		// HDL and VLDL contribute 0 when blank or non-numeric.
		h := 0.0
		if hdlOK {
			h = hdl
		}
		out.LDL = format2(tc - (h + vldl))
	}

	if tcOK && hdlOK && hdl > 0 {
		out.Ratio = format2(tc / hdl)
	}

	return out
}
