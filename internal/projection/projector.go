package projection

import (
	"fmt"

	"github.com/fr4nk3nst1ner/salaryforecast/internal/errors"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/models"

	"go.uber.org/zap"
)

// Band names a salary tier column and the ratio of last year's amount to
// this year's, used to derive the tier's historical growth.
type Band struct {
	Label      string
	PriorRatio float64
}

// Settings holds the static inputs of a projection run.
type Settings struct {
	InflationRate float64
	Skills        models.SkillsTable
	Entry         Band
	Mid           Band
	Senior        Band
	// Periods is the number of years between the prior and current amounts.
	Periods int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		InflationRate: 0.025,
		Skills: models.SkillsTable{
			"Python":           0.05,
			"SQL":              0.03,
			"Machine Learning": 0.02,
		},
		Entry:   Band{Label: models.EntryLevel2024, PriorRatio: 0.95},
		Mid:     Band{Label: models.MidLevel2024, PriorRatio: 0.90},
		Senior:  Band{Label: models.SeniorLevel2024, PriorRatio: 0.85},
		Periods: 1,
	}
}

// Projector computes next-year salaries from baseline, demand and
// geographic tables.
type Projector struct {
	settings Settings
	logger   *zap.Logger
}

func NewProjector(settings Settings, logger *zap.Logger) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Projector{settings: settings, logger: logger}
}

// Project returns one result per salary row, in input order. Roles missing
// from demandRows or geoRows get a factor of 0. A salary row without one of
// the configured band labels aborts the run with a MALFORMED_INPUT error.
func (p *Projector) Project(salaryRows []models.RoleRecord, demandRows, geoRows []models.FactorRecord) ([]models.ProjectionResult, error) {
	results := make([]models.ProjectionResult, 0, len(salaryRows))

	for _, row := range salaryRows {
		entry, mid, senior, err := p.bands(row)
		if err != nil {
			return nil, errors.MalformedInput(fmt.Sprintf("projecting %s", row.Role), err)
		}

		demand := lookupFactor(demandRows, row.Role)
		geo := lookupFactor(geoRows, row.Role)

		result := models.ProjectionResult{
			Role:       row.Role,
			Entry2025:  p.projectBand(entry, p.settings.Entry, demand, geo),
			Mid2025:    p.projectBand(mid, p.settings.Mid, demand, geo),
			Senior2025: p.projectBand(senior, p.settings.Senior, demand, geo),
		}

		p.logger.Debug("projected role",
			zap.String("role", row.Role),
			zap.Float64("demand_factor", demand),
			zap.Float64("geographic_factor", geo),
			zap.Float64("entry", result.Entry2025),
			zap.Float64("mid", result.Mid2025),
			zap.Float64("senior", result.Senior2025))

		results = append(results, result)
	}

	return results, nil
}

func (p *Projector) bands(row models.RoleRecord) (entry, mid, senior float64, err error) {
	if entry, err = row.Band(p.settings.Entry.Label); err != nil {
		return
	}
	if mid, err = row.Band(p.settings.Mid.Label); err != nil {
		return
	}
	senior, err = row.Band(p.settings.Senior.Label)
	return
}

func (p *Projector) projectBand(amount float64, band Band, demand, geo float64) float64 {
	growth := CompoundGrowthRate(amount*band.PriorRatio, amount, p.settings.Periods)
	inflated := ApplyInflation(amount, p.settings.InflationRate+growth)
	withSkills := ApplySkillsPremium(inflated, p.settings.Skills)
	return ApplyDemandAndGeography(withSkills, demand, geo)
}

// lookupFactor returns the factor of the first row for role, or 0.
func lookupFactor(rows []models.FactorRecord, role string) float64 {
	for _, row := range rows {
		if row.Role == role {
			return row.Factor
		}
	}
	return 0
}
