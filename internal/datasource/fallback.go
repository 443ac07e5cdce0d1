package datasource

import "github.com/fr4nk3nst1ner/salaryforecast/internal/models"

// Static fallback tables used when a live fetch fails. Each call returns a
// fresh copy so callers cannot mutate shared data.

// SalaryFallback returns the baseline salary table for 2024
func SalaryFallback() []models.RoleRecord {
	return []models.RoleRecord{
		{
			Role: "Data Analyst",
			Fields: map[string]float64{
				models.EntryLevel2024:  70000,
				models.MidLevel2024:    95000,
				models.SeniorLevel2024: 120000,
			},
		},
		{
			Role: "Data Scientist",
			Fields: map[string]float64{
				models.EntryLevel2024:  90000,
				models.MidLevel2024:    120000,
				models.SeniorLevel2024: 150000,
			},
		},
	}
}

// DemandFallback returns the per-role demand factors
func DemandFallback() []models.FactorRecord {
	return []models.FactorRecord{
		{Role: "Data Analyst", Factor: 0.1},
		{Role: "Data Scientist", Factor: 0.12},
	}
}

// GeographicFallback returns the per-role geographic factors
func GeographicFallback() []models.FactorRecord {
	return []models.FactorRecord{
		{Role: "Data Analyst", Factor: 0.05},
		{Role: "Data Scientist", Factor: 0.07},
	}
}
