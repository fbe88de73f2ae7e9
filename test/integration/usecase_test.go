package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farescout/fare-aggregation-service/internal/domain"
	"github.com/farescout/fare-aggregation-service/test/mock"
	"github.com/farescout/fare-aggregation-service/test/testutil"
)

// smallCatalog keeps work-item counts predictable in engine-level tests.
func smallCatalog() domain.Catalog {
	return domain.Catalog{
		{Code: "BCN", City: "Barcelona"},
		{Code: "ALC", City: "Alicante"},
	}
}

func TestEngineRetriesTransientFailure(t *testing.T) {
	// First call fails, second succeeds. A single-day horizon over one
	// destination yields exactly one work item, so call ordering is fixed.
	source := mock.NewSource("upstream").
		WithErrorScript(domain.NewTransient("connection reset", errors.New("reset"))).
		WithRecords([]domain.FareRecord{testutil.Record("BCN", 19.99, "2024-06-01")})

	catalog := domain.Catalog{{Code: "BCN", City: "Barcelona"}}
	aggregator := CreateAggregatorWithCatalog(source, catalog)

	result, err := aggregator.AggregateOverHorizon(context.Background(), "BER",
		testutil.MustHorizon(t, "2024-06-01", "2024-06-01"))
	require.NoError(t, err)

	assert.Equal(t, 2, source.CallCount())
	require.Len(t, result.Records, 1)
	assert.Equal(t, "BCN", result.Records[0].DestinationCode)
	assert.Equal(t, 0, result.Metadata.ItemsExhausted)
}

func TestEngineIsolatesRouteFailure(t *testing.T) {
	// One destination fails every attempt. The other's results must
	// survive untouched and the run must still succeed.
	source := mock.NewSource("upstream").
		WithRouteError("ALC", domain.NewTransient("upstream 500", nil)).
		WithRouteFares("BCN", []domain.FareRecord{testutil.Record("BCN", 19.99, "2024-06-01")})

	aggregator := CreateAggregatorWithCatalog(source, smallCatalog())

	result, err := aggregator.AggregateOverHorizon(context.Background(), "BER",
		testutil.MustHorizon(t, "2024-06-01", "2024-06-01"))
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "BCN", result.Records[0].DestinationCode)
	assert.Equal(t, "Barcelona", result.Records[0].DestinationLabel)
	assert.Equal(t, 2, result.Metadata.ItemsScheduled)
	assert.Equal(t, 1, result.Metadata.ItemsExhausted)

	// BCN once, ALC retried to exhaustion (two attempts).
	assert.Equal(t, 3, source.CallCount())
}

func TestEngineExhaustionIsNotAnError(t *testing.T) {
	source := mock.NewSource("upstream").
		WithError(domain.NewTransient("upstream down", nil))

	aggregator := CreateAggregatorWithCatalog(source, smallCatalog())

	result, err := aggregator.AggregateOverHorizon(context.Background(), "BER",
		testutil.MustHorizon(t, "2024-06-01", "2024-06-01"))
	require.NoError(t, err)

	assert.NotNil(t, result.Records)
	assert.Empty(t, result.Records)
	assert.Equal(t, result.Metadata.ItemsScheduled, result.Metadata.ItemsExhausted)
}

func TestEngineReducesAcrossSampledDates(t *testing.T) {
	// The cheapest fare for a destination can surface on any sampled
	// date; the reduction must keep exactly one record per destination.
	source := mock.NewSource("upstream").
		WithRouteFares("BCN", []domain.FareRecord{
			testutil.Record("BCN", 49.99, "2024-06-01"),
			testutil.Record("BCN", 19.99, "2024-06-03"),
			testutil.Record("BCN", 29.99, "2024-06-05"),
		}).
		WithRouteFares("ALC", []domain.FareRecord{
			testutil.Record("ALC", 24.99, "2024-06-02"),
		})

	aggregator := CreateAggregatorWithCatalog(source, smallCatalog())

	result, err := aggregator.AggregateOverHorizon(context.Background(), "BER",
		testutil.MustHorizon(t, "2024-06-01", "2024-06-05"))
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "BCN", result.Records[0].DestinationCode)
	assert.Equal(t, 19.99, result.Records[0].Price)
	assert.Equal(t, "ALC", result.Records[1].DestinationCode)
	assert.Equal(t, 24.99, result.Records[1].Price)
}

func TestEngineAggregateForDate(t *testing.T) {
	source := mock.NewSource("upstream").
		WithRouteFares("BCN", []domain.FareRecord{
			testutil.Record("BCN", 15.00, "2024-06-30"),
			testutil.Record("BCN", 9.99, "2024-07-08"),
		})

	aggregator := CreateAggregatorWithCatalog(source, smallCatalog())

	result, err := aggregator.AggregateForDate(context.Background(), "BER",
		testutil.MustParseDate(t, "2024-07-01"))
	require.NoError(t, err)

	// The 2024-07-08 fare is cheaper but too far from the target date.
	require.Len(t, result.Records, 1)
	assert.Equal(t, 15.00, result.Records[0].Price)
}

func TestEngineLookupRoute(t *testing.T) {
	records := mock.SampleRecords("BCN", 19.99, 2)
	source := mock.NewSource("upstream").WithRouteFares("BCN", records)

	aggregator := CreateAggregatorWithCatalog(source, smallCatalog())

	got, err := aggregator.LookupRoute(context.Background(), domain.FareQuery{
		Origin:      "BER",
		Destination: "BCN",
		DateFrom:    "2024-06-01",
		DateTo:      "2024-06-10",
	})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Barcelona", got[0].DestinationLabel)
}
