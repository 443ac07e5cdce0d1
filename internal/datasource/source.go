package datasource

import (
	"context"
	"net/http"

	"github.com/fr4nk3nst1ner/salaryforecast/internal/client"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/errors"

	"go.uber.org/zap"
)

// Source fetches role-keyed tables from remote endpoints.
type Source struct {
	client *http.Client
	logger *zap.Logger
}

// NewSource returns a Source using httpClient. A nil httpClient gets the
// package client's default, a nil logger discards output.
func NewSource(httpClient *http.Client, logger *zap.Logger) *Source {
	if httpClient == nil {
		httpClient = client.CreateHTTPClient()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{client: httpClient, logger: logger}
}

// Fetch issues a single GET against endpoint and decodes the payload.
// Errors are *errors.DomainError of type TRANSPORT, UPSTREAM_STATUS or
// MALFORMED_INPUT.
func Fetch[T any](ctx context.Context, s *Source, endpoint string, decode Decoder[T]) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Transport("creating request", err)
	}
	for key, values := range client.GetDefaultHeaders() {
		req.Header[key] = values
	}

	s.logger.Debug("fetching table", zap.String("endpoint", endpoint))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Transport("executing request", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.UpstreamStatus(resp.StatusCode)
	}

	body, err := client.ReadResponseBody(resp)
	if err != nil {
		return nil, errors.Transport("reading response body", err)
	}

	rows, err := parseRows(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	records, err := decode(rows)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("fetched table",
		zap.String("endpoint", endpoint),
		zap.Int("records", len(records)))
	return records, nil
}

// OrElse returns records when err is nil. Otherwise it logs why the fetch
// failed and returns fallback as is.
func OrElse[T any](logger *zap.Logger, endpoint string, records []T, err error, fallback []T) []T {
	if err == nil {
		return records
	}

	if errors.Is(err, errors.ErrTypeUpstreamStatus) {
		logger.Warn("API call failed. Using fallback data.",
			zap.String("endpoint", endpoint),
			zap.Error(err))
	} else {
		logger.Warn("Error fetching data. Using fallback data.",
			zap.String("endpoint", endpoint),
			zap.Error(err))
	}
	return fallback
}

// FetchOrFallback fetches endpoint and degrades to fallback on any failure.
// It never returns an error.
func FetchOrFallback[T any](ctx context.Context, s *Source, endpoint string, decode Decoder[T], fallback []T) []T {
	records, err := Fetch(ctx, s, endpoint, decode)
	return OrElse(s.logger, endpoint, records, err, fallback)
}
