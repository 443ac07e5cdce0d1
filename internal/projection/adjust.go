package projection

import (
	"math"

	"github.com/fr4nk3nst1ner/salaryforecast/internal/models"
)

// CompoundGrowthRate returns the constant per-period rate that grows present
// into future over periods. present must be positive; zero or negative
// values yield NaN or Inf.
func CompoundGrowthRate(present, future float64, periods int) float64 {
	return math.Pow(future/present, 1/float64(periods)) - 1
}

// ApplyInflation grows amount by rate.
func ApplyInflation(amount, rate float64) float64 {
	return amount * (1 + rate)
}

// ApplySkillsPremium grows amount by the sum of every premium in skills,
// whether or not a given skill is relevant to the role.
func ApplySkillsPremium(amount float64, skills models.SkillsTable) float64 {
	return amount * (1 + skills.Total())
}

// ApplyDemandAndGeography grows amount by the demand and geographic deltas.
func ApplyDemandAndGeography(amount, demandFactor, geoFactor float64) float64 {
	return amount * (1 + demandFactor + geoFactor)
}
