package catalog

// SeedEntries returns the static test catalog shipped with the server.
// Loaded by the seed command; merged with whatever is already persisted
// (new codes appended, existing entries untouched).
func SeedEntries() []*Entry {
	return []*Entry{
		{
			Code: "FBC", Name: "Full Blood Count", DefaultPrice: 950, EstimatedCost: 320,
			Category: "Hematology",
			ReferenceRange: map[string]string{
				"Hemoglobin": "12.0-16.0", "RBC": "4.2-5.4", "PCV": "36-46",
				"WBC": "4000-11000", "Platelets": "150000-450000",
			},
		},
		{
			Code: "LIPID", Name: "Lipid Profile", DefaultPrice: 1400, EstimatedCost: 480,
			Unit: "mg/dL", Category: "Biochemistry",
			ReferenceRange: map[string]string{
				"Total Cholesterol": "<200", "HDL": ">40", "LDL": "<130",
				"Triglycerides": "<150", "VLDL": "<30",
			},
		},
		{
			Code: "UFR", Name: "Urine Full Report", DefaultPrice: 450, EstimatedCost: 120,
			Category: "Microbiology",
			ReferenceRange: map[string]string{
				"Colour": "Pale Yellow", "Appearance": "Clear", "Protein": "Negative",
				"Glucose": "Negative", "Pus Cells": "0-5", "Red Cells": "0-2",
			},
		},
		{
			Code: "OGTT", Name: "Oral Glucose Tolerance Test", DefaultPrice: 1200, EstimatedCost: 350,
			Unit: "mg/dL", Category: "Biochemistry",
			ReferenceRange: map[string]string{
				"Fasting": "60-115", "After 1 Hour": "<180", "After 2 Hour": "<140",
			},
		},
		{
			Code: "PPBS", Name: "Post Prandial Blood Sugar", DefaultPrice: 350, EstimatedCost: 90,
			Unit: "mg/dL", Category: "Biochemistry",
			ReferenceRange: map[string]string{"PPBS": "< 140"},
		},
		{
			Code: "BSS", Name: "Blood Sugar Series", DefaultPrice: 900, EstimatedCost: 260,
			Unit: "mg/dL", Category: "Biochemistry",
			ReferenceRange: map[string]string{"BSS": "< 140"},
		},
		{
			Code: "FBS", Name: "Fasting Blood Sugar", DefaultPrice: 300, EstimatedCost: 80,
			Unit: "mg/dL", Category: "Biochemistry",
			ReferenceRange: map[string]string{"FBS": "60-115"},
		},
		{
			Code: "HBA1C", Name: "Glycosylated Hemoglobin", DefaultPrice: 1600, EstimatedCost: 620,
			Unit: "%", Category: "Biochemistry",
			ReferenceRange: map[string]string{"HBA1C": `{"Normal": "<5.7", "Prediabetic": "5.7-6.4", "Diabetic": ">6.5"}`},
		},
		{
			Code: "ESR", Name: "Erythrocyte Sedimentation Rate", DefaultPrice: 250, EstimatedCost: 60,
			Unit: "mm/hr", Category: "Hematology",
			ReferenceRange: map[string]string{"ESR": `{"Male": "0-15", "Female": "0-20"}`},
		},
		{
			Code: "TSH", Name: "Thyroid Stimulating Hormone", DefaultPrice: 1500, EstimatedCost: 540,
			Unit: "mIU/L", Category: "Endocrinology",
			ReferenceRange: map[string]string{"TSH": "0.4-4.0"},
		},
		{
			Code: "FT3", Name: "Free Triiodothyronine", DefaultPrice: 1550, EstimatedCost: 560,
			Unit: "pmol/L", Category: "Endocrinology",
			ReferenceRange: map[string]string{"FT3": "3.1-6.8"},
		},
		{
			Code: "SCR", Name: "Serum Creatinine", DefaultPrice: 400, EstimatedCost: 110,
			Unit: "mg/dL", Category: "Biochemistry",
			ReferenceRange: map[string]string{"SCR": `{"Male": "0.7-1.3", "Female": "0.6-1.1"}`},
		},
		{
			Code: "BUN", Name: "Blood Urea Nitrogen", DefaultPrice: 400, EstimatedCost: 110,
			Unit: "mg/dL", Category: "Biochemistry",
			ReferenceRange: map[string]string{"BUN": "7-20"},
		},
		{
			Code: "LFT", Name: "Liver Function Test", DefaultPrice: 1800, EstimatedCost: 650,
			Category: "Biochemistry",
			ReferenceRange: map[string]string{
				"SGOT": "8-45", "SGPT": "7-56", "ALP": "44-147",
				"Total Bilirubin": "0.1-1.2",
			},
			UnitPerTest: map[string]string{
				"SGOT": "U/L", "SGPT": "U/L", "ALP": "U/L",
				"Total Bilirubin": "mg/dL",
			},
		},
		{
			Code: "FER", Name: "Serum Ferritin", DefaultPrice: 1900, EstimatedCost: 720,
			Unit: "ng/mL", Category: "Hematology",
			ReferenceRange: map[string]string{"FER": `{"Male": "24-336", "Female": "11-307"}`},
		},
		{
			Code: "VDRL", Name: "VDRL Screening", DefaultPrice: 500, EstimatedCost: 140,
			Category: "Serology", IsQualitative: true,
			ReferenceRange: map[string]string{"VDRL": "Non-Reactive"},
		},
		{
			Code: "HIV", Name: "HIV Antibody Screening", DefaultPrice: 1000, EstimatedCost: 380,
			Category: "Serology", IsQualitative: true,
			ReferenceRange: map[string]string{"HIV": "Negative"},
		},
		{
			Code: "HCG", Name: "Serum Pregnancy Test", DefaultPrice: 700, EstimatedCost: 210,
			Category: "Serology", IsQualitative: true,
			ReferenceRange: map[string]string{"HCG": "Negative"},
		},
		{
			Code: "HBsAg", Name: "Hepatitis B Surface Antigen", DefaultPrice: 900, EstimatedCost: 300,
			Category: "Serology", IsQualitative: true,
			ReferenceRange: map[string]string{"HBsAg": "Negative"},
		},
		{
			Code: "DEN", Name: "Dengue NS1 Antigen", DefaultPrice: 1800, EstimatedCost: 700,
			Category: "Serology", IsQualitative: true,
			ReferenceRange: map[string]string{"DEN": "Negative"},
		},
		{
			Code: "WIDAL", Name: "Widal Test", DefaultPrice: 650, EstimatedCost: 180,
			Category: "Serology", IsQualitative: true,
			ReferenceRange: map[string]string{"WIDAL": "Negative"},
		},
	}
}
