package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fr4nk3nst1ner/salaryforecast/internal/config"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/datasource"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/errors"
)

func TestRunOffline(t *testing.T) {
	assert.NoError(t, run([]string{"--offline", "--silence", "--no-progress"}))
}

func TestRunExamples(t *testing.T) {
	assert.NoError(t, run([]string{"--examples", "--nobanner"}))
}

func TestRunMissingBandIsFatal(t *testing.T) {
	salaries := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"Role":"Data Analyst","Entry-Level 2024":70000}]`))
	}))
	defer salaries.Close()

	err := run([]string{
		"--silence", "--no-progress",
		"--salary-url", salaries.URL,
		"--demand-url", salaries.URL + "/missing",
		"--geo-url", salaries.URL + "/missing",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTypeMalformedInput))
}

func TestRunInvalidConfig(t *testing.T) {
	err := run([]string{"--silence", "--periods", "0"})
	assert.True(t, errors.Is(err, errors.ErrTypeInvalidConfig))
}

func TestLoadTablesFallsBackPerTable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/demand", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"Role":"Data Analyst","Demand Factor":0.2}]`))
	})
	mux.HandleFunc("/geo", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	cfg.SalaryURL = server.URL + "/salaries"
	cfg.DemandURL = server.URL + "/demand"
	cfg.GeoURL = server.URL + "/geo"

	core, logs := observer.New(zap.WarnLevel)
	input := loadTables(context.Background(), cfg, zap.New(core), false)

	assert.Equal(t, datasource.SalaryFallback(), input.salary)
	require.Len(t, input.demand, 1)
	assert.Equal(t, 0.2, input.demand[0].Factor)
	assert.Equal(t, datasource.GeographicFallback(), input.geo)
	assert.Equal(t, 2, logs.FilterMessage("API call failed. Using fallback data.").Len())
}
