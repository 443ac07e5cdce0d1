package config

import (
	"sort"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/fr4nk3nst1ner/salaryforecast/internal/errors"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/models"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/projection"
)

const (
	DefaultSalaryURL = "https://api.mockdatasalary.com/salaries"
	DefaultDemandURL = "https://api.mockjobdemand.com/demand"
	DefaultGeoURL    = "https://api.mockgeographic.com/factors"
)

type BandConfig struct {
	Label      string  `mapstructure:"label"`
	PriorRatio float64 `mapstructure:"prior_ratio"`
}

type BandsConfig struct {
	Entry  BandConfig `mapstructure:"entry"`
	Mid    BandConfig `mapstructure:"mid"`
	Senior BandConfig `mapstructure:"senior"`
}

// SkillConfig is kept as a list entry rather than a map key so viper does
// not lowercase skill names.
type SkillConfig struct {
	Name    string  `mapstructure:"name"`
	Premium float64 `mapstructure:"premium"`
}

type Config struct {
	SalaryURL     string        `mapstructure:"salary_url"`
	DemandURL     string        `mapstructure:"demand_url"`
	GeoURL        string        `mapstructure:"geo_url"`
	InflationRate float64       `mapstructure:"inflation_rate"`
	Periods       int           `mapstructure:"periods"`
	Skills        []SkillConfig `mapstructure:"skills"`
	Bands         BandsConfig   `mapstructure:"bands"`
	Proxy         string        `mapstructure:"proxy"`
	Offline       bool          `mapstructure:"offline"`
	Debug         bool          `mapstructure:"debug"`
}

// flagKeys maps command line flags to configuration keys
var flagKeys = map[string]string{
	"salary-url": "salary_url",
	"demand-url": "demand_url",
	"geo-url":    "geo_url",
	"inflation":  "inflation_rate",
	"periods":    "periods",
	"proxy":      "proxy",
	"offline":    "offline",
	"debug":      "debug",
}

// RegisterFlags adds the configuration flags to flags
func RegisterFlags(flags *pflag.FlagSet) {
	defaults := projection.DefaultSettings()

	flags.String("config", "", "Path to a YAML configuration file")
	flags.String("salary-url", DefaultSalaryURL, "Endpoint serving baseline salaries per role")
	flags.String("demand-url", DefaultDemandURL, "Endpoint serving demand factors per role")
	flags.String("geo-url", DefaultGeoURL, "Endpoint serving geographic factors per role")
	flags.Float64("inflation", defaults.InflationRate, "Expected inflation rate for next year")
	flags.Int("periods", defaults.Periods, "Years between the implied prior salary and the baseline")
	flags.String("proxy", "", "Proxy URL to use")
	flags.Bool("offline", false, "Skip fetching and use the built-in fallback data")
	flags.Bool("debug", false, "Enable debug logging")
}

func setDefaults(v *viper.Viper) {
	defaults := projection.DefaultSettings()

	v.SetDefault("salary_url", DefaultSalaryURL)
	v.SetDefault("demand_url", DefaultDemandURL)
	v.SetDefault("geo_url", DefaultGeoURL)
	v.SetDefault("inflation_rate", defaults.InflationRate)
	v.SetDefault("periods", defaults.Periods)
	v.SetDefault("proxy", "")
	v.SetDefault("offline", false)
	v.SetDefault("debug", false)

	names := make([]string, 0, len(defaults.Skills))
	for name := range defaults.Skills {
		names = append(names, name)
	}
	sort.Strings(names)
	skills := make([]map[string]any, 0, len(names))
	for _, name := range names {
		skills = append(skills, map[string]any{"name": name, "premium": defaults.Skills[name]})
	}
	v.SetDefault("skills", skills)

	for key, band := range map[string]projection.Band{
		"entry":  defaults.Entry,
		"mid":    defaults.Mid,
		"senior": defaults.Senior,
	} {
		v.SetDefault("bands."+key+".label", band.Label)
		v.SetDefault("bands."+key+".prior_ratio", band.PriorRatio)
	}
}

// Load builds the configuration from defaults, the optional --config file and
// flags, in increasing order of precedence. Environment variables are not read.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if flags != nil {
		if path, err := flags.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.InvalidConfig("reading config file", err)
			}
		}

		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, errors.InvalidConfig("binding flag "+name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.InvalidConfig("unmarshalling config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings a projection run depends on
func (c *Config) Validate() error {
	if c.Periods <= 0 {
		return errors.InvalidConfig("periods must be positive", nil)
	}
	if !c.Offline && (c.SalaryURL == "" || c.DemandURL == "" || c.GeoURL == "") {
		return errors.InvalidConfig("salary, demand and geo URLs are required unless offline", nil)
	}
	for name, band := range map[string]BandConfig{"entry": c.Bands.Entry, "mid": c.Bands.Mid, "senior": c.Bands.Senior} {
		if band.Label == "" {
			return errors.InvalidConfig(name+" band label is empty", nil)
		}
		if band.PriorRatio <= 0 {
			return errors.InvalidConfig(name+" band prior_ratio must be positive", nil)
		}
	}
	for _, skill := range c.Skills {
		if skill.Name == "" {
			return errors.InvalidConfig("skill name is empty", nil)
		}
	}
	return nil
}

// SkillsTable returns the configured skills keyed by name
func (c *Config) SkillsTable() models.SkillsTable {
	skills := make(models.SkillsTable, len(c.Skills))
	for _, skill := range c.Skills {
		skills[skill.Name] = skill.Premium
	}
	return skills
}

// Settings returns the projection settings described by the configuration
func (c *Config) Settings() projection.Settings {
	return projection.Settings{
		InflationRate: c.InflationRate,
		Skills:        c.SkillsTable(),
		Entry:         projection.Band{Label: c.Bands.Entry.Label, PriorRatio: c.Bands.Entry.PriorRatio},
		Mid:           projection.Band{Label: c.Bands.Mid.Label, PriorRatio: c.Bands.Mid.PriorRatio},
		Senior:        projection.Band{Label: c.Bands.Senior.Label, PriorRatio: c.Bands.Senior.PriorRatio},
		Periods:       c.Periods,
	}
}
