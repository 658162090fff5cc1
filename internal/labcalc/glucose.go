package labcalc

// Glucose timing labels as they appear on PPBS/BSS/OGTT forms.
const (
	HourAfterOne = "After 1 Hour"
	HourAfterTwo = "After 2 Hour"
	HourFasting  = "Fasting"
)

// Fixed OGTT reference ranges per time point.
const (
	OGTTFastingRange = "60-115"
	OGTTOneHourRange = "<180"
	OGTTTwoHourRange = "<140"
)

// PPBSRange returns the reference range for a PPBS or BSS entry. Only the
// "After 1 Hour" timing carries the higher bound; every other timing uses
// "< 140".
func PPBSRange(hourType string) string {
	if hourType == HourAfterOne {
		return "< 160"
	}
	return "< 140"
}

// OGTTBand is the clinically normal band for one OGTT time point, used to
// draw the reference overlay behind the glucose curve.
type OGTTBand struct {
	Label string
	Low   float64
	High  float64
}

// OGTTBands returns the reference bands in series order.
func OGTTBands() []OGTTBand {
	return []OGTTBand{
		{Label: HourFasting, Low: 70, High: 110},
		{Label: HourAfterOne, Low: 90, High: 170},
		{Label: HourAfterTwo, Low: 80, High: 160},
	}
}

// OGTTStatus derives the overall tolerance status from the fasting and
// two-hour values. Blank or non-numeric values simply do not contribute.
func OGTTStatus(fasting, twoHour string) string {
	f, fOK := parseNum(fasting)
	t, tOK := parseNum(twoHour)
	switch {
	case (tOK && t >= 200) || (fOK && f >= 126):
		return "Diabetic"
	case (tOK && t >= 140) || (fOK && f >= 100):
		return "Prediabetic"
	default:
		return "Normal"
	}
}
