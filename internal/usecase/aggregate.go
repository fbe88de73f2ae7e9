package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/farescout/fare-aggregation-service/internal/domain"
	"github.com/farescout/fare-aggregation-service/internal/infrastructure/logger"
	"github.com/farescout/fare-aggregation-service/internal/infrastructure/retry"
	"github.com/farescout/fare-aggregation-service/internal/infrastructure/timeutil"
)

// FareAggregator defines the interface for fare aggregation operations.
type FareAggregator interface {
	// AggregateOverHorizon finds the cheapest fare per destination across
	// the horizon, ranked ascending by price.
	AggregateOverHorizon(ctx context.Context, origin string, horizon domain.SearchHorizon) (*domain.AggregationResult, error)

	// AggregateForDate finds the cheapest fare per destination departing
	// within one day of the target date, ranked ascending by price.
	AggregateForDate(ctx context.Context, origin string, date time.Time) (*domain.AggregationResult, error)

	// LookupRoute fetches fares for one pinned route through the retry
	// policy, without aggregation. Exhausted retries yield an empty
	// slice, never an error.
	LookupRoute(ctx context.Context, query domain.FareQuery) ([]domain.FareRecord, error)
}

// fareAggregator implements FareAggregator against a single fare source.
type fareAggregator struct {
	source  domain.FareSource
	catalog domain.Catalog
	cfg     Config
	log     *logger.Logger
}

// NewFareAggregator creates an aggregation engine over the given source
// and destination catalog. A nil config uses defaults; a nil logger
// disables engine logging.
func NewFareAggregator(source domain.FareSource, catalog domain.Catalog, cfg *Config, log *logger.Logger) FareAggregator {
	c := DefaultConfig()
	if cfg != nil {
		c = cfg.withDefaults()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &fareAggregator{
		source:  source,
		catalog: catalog,
		cfg:     c,
		log:     log,
	}
}

// workItem is one scheduled upstream lookup. Items are created by the
// engine, consumed once, and discarded.
type workItem struct {
	destination domain.Destination
	dateFrom    string
	dateTo      string
}

// itemResult is the resolved outcome of one work item. Exhausted items
// carry zero records.
type itemResult struct {
	records   []domain.FareRecord
	exhausted bool
}

// AggregateOverHorizon implements Mode A: cheapest fare per destination
// over a horizon.
func (a *fareAggregator) AggregateOverHorizon(ctx context.Context, origin string, horizon domain.SearchHorizon) (*domain.AggregationResult, error) {
	if err := domain.ValidateAirportCode("origin", origin); err != nil {
		return nil, err
	}

	// One item per (destination, sample date), in catalog order then
	// sample order so the ranking's tie-breaks are reproducible.
	samples := SampleDates(horizon)
	items := make([]workItem, 0, len(samples)*len(a.catalog))
	for _, dest := range a.catalog {
		for _, sample := range samples {
			day := timeutil.FormatDate(sample)
			items = append(items, workItem{destination: dest, dateFrom: day, dateTo: day})
		}
	}

	records, meta, err := a.collect(ctx, origin, items)
	if err != nil {
		return nil, err
	}

	records = filterByWindow(records, horizon, dateSlackDays)
	return a.reduce(origin, records, meta), nil
}

// AggregateForDate implements Mode B: cheapest fare per destination on
// one specific date. The query window and the defensive filter are both
// widened by one day to compensate for upstream flexible-search
// granularity.
func (a *fareAggregator) AggregateForDate(ctx context.Context, origin string, date time.Time) (*domain.AggregationResult, error) {
	if err := domain.ValidateAirportCode("origin", origin); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidRequest)
	}

	day := timeutil.Midnight(date)
	dateFrom := timeutil.FormatDate(timeutil.AddDays(day, -dateSlackDays))
	dateTo := timeutil.FormatDate(timeutil.AddDays(day, dateSlackDays))

	items := make([]workItem, 0, len(a.catalog))
	for _, dest := range a.catalog {
		items = append(items, workItem{destination: dest, dateFrom: dateFrom, dateTo: dateTo})
	}

	records, meta, err := a.collect(ctx, origin, items)
	if err != nil {
		return nil, err
	}

	target := domain.SearchHorizon{From: day, To: day}
	records = filterByWindow(records, target, dateSlackDays)
	return a.reduce(origin, records, meta), nil
}

// LookupRoute implements the raw single-route lookup.
func (a *fareAggregator) LookupRoute(ctx context.Context, query domain.FareQuery) ([]domain.FareRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, exhausted := a.lookupWithRetry(ctx, query)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if exhausted {
		a.log.Warn().
			Str("origin", query.Origin).
			Str("destination", query.Destination).
			Msg("Route lookup exhausted retries")
	}

	labelRecords(records, a.catalog)
	if records == nil {
		records = []domain.FareRecord{}
	}
	return records, nil
}

// collect runs the work list in fixed-size concurrent batches. Batch N+1
// does not start until batch N fully resolves, including retries, which
// bounds peak upstream concurrency to the batch size. Results are
// appended only after each batch joins, so the accumulating slice is
// touched by a single goroutine. The only error collect returns is the
// run context ending.
func (a *fareAggregator) collect(ctx context.Context, origin string, items []workItem) ([]domain.FareRecord, domain.RunMetadata, error) {
	start := time.Now()
	meta := domain.RunMetadata{ItemsScheduled: len(items)}

	var all []domain.FareRecord
	for batchStart := 0; batchStart < len(items); batchStart += a.cfg.BatchSize {
		batchEnd := batchStart + a.cfg.BatchSize
		if batchEnd > len(items) {
			batchEnd = len(items)
		}
		batch := items[batchStart:batchEnd]

		results := make([]itemResult, len(batch))
		g, gctx := errgroup.WithContext(ctx)
		for i, item := range batch {
			g.Go(func() (err error) {
				// One misbehaving item must not take down its batch
				// siblings; a panic counts as an exhausted item.
				defer func() {
					if r := recover(); r != nil {
						a.log.Error().
							Str("destination", item.destination.Code).
							Interface("panic", r).
							Msg("Lookup panicked")
						results[i] = itemResult{exhausted: true}
						err = nil
					}
				}()

				results[i] = a.runItem(gctx, origin, item)
				return gctx.Err()
			})
		}

		if err := g.Wait(); err != nil {
			return nil, meta, fmt.Errorf("aggregation run aborted: %w", err)
		}

		for _, res := range results {
			if res.exhausted {
				meta.ItemsExhausted++
			}
			all = append(all, res.records...)
		}

		// Smoothing pause between batches, skipped after the last one.
		if batchEnd < len(items) && a.cfg.BatchPause > 0 {
			select {
			case <-ctx.Done():
				return nil, meta, fmt.Errorf("aggregation run aborted: %w", ctx.Err())
			case <-time.After(a.cfg.BatchPause):
			}
		}
	}

	meta.RecordsFetched = len(all)
	meta.SearchTimeMs = time.Since(start).Milliseconds()

	a.log.Info().
		Str("origin", origin).
		Int("items", meta.ItemsScheduled).
		Int("exhausted", meta.ItemsExhausted).
		Int("records", meta.RecordsFetched).
		Int64("duration_ms", meta.SearchTimeMs).
		Msg("Aggregation run collected")

	return all, meta, nil
}

// runItem resolves one work item through the retry policy and tags the
// returned records with the destination label.
func (a *fareAggregator) runItem(ctx context.Context, origin string, item workItem) itemResult {
	query := domain.FareQuery{
		Origin:      origin,
		Destination: item.destination.Code,
		DateFrom:    item.dateFrom,
		DateTo:      item.dateTo,
	}

	records, exhausted := a.lookupWithRetry(ctx, query)
	if exhausted {
		a.log.Warn().
			Str("destination", item.destination.Code).
			Str("date_from", item.dateFrom).
			Msg("Work item exhausted retries")
	}

	for i := range records {
		records[i].DestinationLabel = item.destination.City
	}
	return itemResult{records: records, exhausted: exhausted}
}

// lookupWithRetry wraps a single source fetch with the retry policy:
// widening jittered backoff, a floor delay after explicit rate-limit
// signals, and degradation to an empty result once the attempt budget is
// spent. It never returns an error to its caller.
func (a *fareAggregator) lookupWithRetry(ctx context.Context, query domain.FareQuery) (records []domain.FareRecord, exhausted bool) {
	cfg := retry.Config{
		MaxAttempts:  a.cfg.MaxAttempts,
		InitialDelay: a.cfg.InitialDelay,
		MaxDelay:     a.cfg.MaxDelay,
		Multiplier:   a.cfg.Multiplier,
		JitterFactor: a.cfg.JitterFactor,
		RetryIf:      retry.SkipPermanent,
		DelayFor: func(err error, backoff time.Duration) time.Duration {
			if domain.IsRateLimited(err) && backoff < a.cfg.RateLimitFloor {
				return a.cfg.RateLimitFloor
			}
			return backoff
		},
	}

	attempt := 0
	records, err := retry.DoWithResult(ctx, func() ([]domain.FareRecord, error) {
		attempt++
		recs, ferr := a.source.Fetch(ctx, query)
		if ferr != nil {
			a.log.Debug().
				Str("destination", query.Destination).
				Int("attempt", attempt).
				Err(ferr).
				Msg("Fare lookup attempt failed")
		}
		return recs, ferr
	}, cfg)

	if err != nil {
		return nil, true
	}
	return records, false
}

// reduce runs the reduction phase of a collected record set and wraps it
// into the final ranked result.
func (a *fareAggregator) reduce(origin string, records []domain.FareRecord, meta domain.RunMetadata) *domain.AggregationResult {
	return domain.NewAggregationResult(origin, reduceCheapest(records), meta)
}

// Ensure fareAggregator implements FareAggregator at compile time.
var _ FareAggregator = (*fareAggregator)(nil)
