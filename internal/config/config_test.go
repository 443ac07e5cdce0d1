package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salaryforecast/internal/errors"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/models"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/projection"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, DefaultSalaryURL, cfg.SalaryURL)
	assert.Equal(t, DefaultDemandURL, cfg.DemandURL)
	assert.Equal(t, DefaultGeoURL, cfg.GeoURL)
	assert.False(t, cfg.Offline)
	assert.Equal(t, projection.DefaultSettings(), cfg.Settings())
	assert.Equal(t, models.SkillsTable{"Python": 0.05, "SQL": 0.03, "Machine Learning": 0.02}, cfg.SkillsTable())
}

func TestLoadWithoutFlags(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, projection.DefaultSettings(), cfg.Settings())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
salary_url: http://localhost:9000/salaries
inflation_rate: 0.03
skills:
  - name: Go
    premium: 0.04
bands:
  senior:
    prior_ratio: 0.8
`)

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/salaries", cfg.SalaryURL)
	assert.Equal(t, DefaultDemandURL, cfg.DemandURL)
	assert.Equal(t, 0.03, cfg.InflationRate)
	assert.Equal(t, models.SkillsTable{"Go": 0.04}, cfg.SkillsTable())
	assert.Equal(t, 0.8, cfg.Bands.Senior.PriorRatio)
	assert.Equal(t, models.SeniorLevel2024, cfg.Bands.Senior.Label)
	assert.Equal(t, 0.95, cfg.Bands.Entry.PriorRatio)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := writeConfig(t, "inflation_rate: 0.03\noffline: false\n")

	cfg, err := Load(newFlags(t, "--config", path, "--inflation", "0.04", "--offline", "--geo-url", "http://geo.local"))
	require.NoError(t, err)

	assert.Equal(t, 0.04, cfg.InflationRate)
	assert.True(t, cfg.Offline)
	assert.Equal(t, "http://geo.local", cfg.GeoURL)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
	assert.True(t, errors.Is(err, errors.ErrTypeInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero periods", func(c *Config) { c.Periods = 0 }, "periods must be positive"},
		{"empty url", func(c *Config) { c.DemandURL = "" }, "URLs are required"},
		{"empty label", func(c *Config) { c.Bands.Mid.Label = "" }, "mid band label is empty"},
		{"bad ratio", func(c *Config) { c.Bands.Senior.PriorRatio = 0 }, "senior band prior_ratio"},
		{"unnamed skill", func(c *Config) { c.Skills = append(c.Skills, SkillConfig{Premium: 0.1}) }, "skill name is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(nil)
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.True(t, errors.Is(err, errors.ErrTypeInvalidConfig))
		})
	}
}

func TestValidateOfflineAllowsEmptyURLs(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	cfg.Offline = true
	cfg.SalaryURL = ""
	assert.NoError(t, cfg.Validate())
}
