package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/flyerworks/flyerworks-backend/pkg/db/models"
	pkgerrors "github.com/flyerworks/flyerworks-backend/pkg/errors"
	"github.com/flyerworks/flyerworks-backend/pkg/logger"
	"github.com/flyerworks/flyerworks-backend/pkg/metrics"
	"github.com/flyerworks/flyerworks-backend/pkg/redis"
)

const optionsCacheScope = "pricing-options"

// ReferenceDataRepository is the read surface the pricing service needs from
// the catalog. Implementations must return only reference data; the service
// never writes.
type ReferenceDataRepository interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FetchPaperStocks(ctx context.Context) ([]models.PaperStock, error)
	FetchCoatings(ctx context.Context) ([]models.Coating, error)
	FetchTurnarounds(ctx context.Context) ([]models.Turnaround, error)
	FetchProductAddOns(ctx context.Context, productID uuid.UUID) ([]models.ProductAddOn, error)
	FetchCompatibility(ctx context.Context, paperStockIDs ...uuid.UUID) ([]models.PaperStockCoating, error)
	FetchRuleSet(ctx context.Context) (*RuleSet, error)
}

// Service exposes the pricing operations to the transport layer.
type Service interface {
	CalculatePrice(ctx context.Context, input CalculateInput) (*Breakdown, error)
	GetProductPricingOptions(ctx context.Context, productID uuid.UUID) (*PricingOptions, error)
}

type service struct {
	refs     ReferenceDataRepository
	cache    redis.Cache
	cacheTTL time.Duration
	metrics  *metrics.PricingMetrics
	logg     *logger.Logger
}

// NewService wires the pricing service. cache and metrics are optional; refs
// and logg are not.
func NewService(refs ReferenceDataRepository, cache redis.Cache, cacheTTL time.Duration, m *metrics.PricingMetrics, logg *logger.Logger) (Service, error) {
	if refs == nil {
		return nil, errors.New("reference data repository is required")
	}
	if logg == nil {
		return nil, errors.New("logger is required")
	}
	return &service{
		refs:     refs,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  m,
		logg:     logg,
	}, nil
}

// CalculatePrice gathers a reference data snapshot and runs the pure
// calculation against it.
func (s *service) CalculatePrice(ctx context.Context, input CalculateInput) (*Breakdown, error) {
	start := time.Now()
	breakdown, err := s.calculate(ctx, input)
	s.metrics.ObserveDuration("calculate", time.Since(start))
	if err != nil {
		s.metrics.IncFailure(string(pkgerrors.As(err).Code()))
		return nil, err
	}
	return breakdown, nil
}

func (s *service) calculate(ctx context.Context, input CalculateInput) (*Breakdown, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	snap, err := s.gatherSnapshot(ctx, input.ProductID, input.PaperStockID)
	if err != nil {
		return nil, err
	}
	calc, err := NewCalculator(snap)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building calculator")
	}
	return calc.Price(input)
}

// GetProductPricingOptions returns the storefront configurator payload,
// served from Redis when a fresh copy exists.
func (s *service) GetProductPricingOptions(ctx context.Context, productID uuid.UUID) (*PricingOptions, error) {
	start := time.Now()
	options, err := s.options(ctx, productID)
	s.metrics.ObserveDuration("options", time.Since(start))
	if err != nil {
		s.metrics.IncFailure(string(pkgerrors.As(err).Code()))
		return nil, err
	}
	return options, nil
}

func (s *service) options(ctx context.Context, productID uuid.UUID) (*PricingOptions, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	if cached := s.cachedOptions(ctx, productID); cached != nil {
		s.metrics.IncCacheHit()
		return cached, nil
	}
	s.metrics.IncCacheMiss()

	snap, err := s.gatherSnapshot(ctx, productID, uuid.Nil)
	if err != nil {
		return nil, err
	}
	options := assembleOptions(snap)
	s.storeOptions(ctx, productID, options)
	return options, nil
}

// gatherSnapshot loads everything a calculation needs in one pass. When
// paperStockID is set, only that stock's coating compatibility is loaded;
// otherwise compatibility is loaded for every active stock.
func (s *service) gatherSnapshot(ctx context.Context, productID, paperStockID uuid.UUID) (*Snapshot, error) {
	product, err := s.refs.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, notFound("product", productID.String())
	}

	snap := newSnapshot(product)

	var gatherErr error
	stocks, err := s.refs.FetchPaperStocks(ctx)
	gatherErr = multierr.Append(gatherErr, err)
	coatings, err := s.refs.FetchCoatings(ctx)
	gatherErr = multierr.Append(gatherErr, err)
	turnarounds, err := s.refs.FetchTurnarounds(ctx)
	gatherErr = multierr.Append(gatherErr, err)
	links, err := s.refs.FetchProductAddOns(ctx, productID)
	gatherErr = multierr.Append(gatherErr, err)
	rules, err := s.refs.FetchRuleSet(ctx)
	gatherErr = multierr.Append(gatherErr, err)
	if gatherErr != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, gatherErr, "loading pricing reference data")
	}

	snap.addPaperStocks(stocks)
	snap.addCoatings(coatings)
	snap.addTurnarounds(turnarounds)
	snap.addProductAddOns(links)
	snap.Rules = *rules

	stockIDs := []uuid.UUID{paperStockID}
	if paperStockID == uuid.Nil {
		stockIDs = stockIDs[:0]
		for id := range snap.PaperStocks {
			stockIDs = append(stockIDs, id)
		}
	}
	compat, err := s.refs.FetchCompatibility(ctx, stockIDs...)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading coating compatibility")
	}
	snap.addCompatibility(compat)

	return snap, nil
}

// Cache problems are never fatal; the options payload is rebuilt from the
// database on any miss or decode failure.
func (s *service) cachedOptions(ctx context.Context, productID uuid.UUID) *PricingOptions {
	if s.cache == nil {
		return nil
	}
	key := s.cache.CacheKey(optionsCacheScope, productID.String())
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.logg.Warn(ctx, "reading pricing options cache: "+err.Error())
		}
		return nil
	}
	var options PricingOptions
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		s.logg.Warn(ctx, "decoding cached pricing options: "+err.Error())
		return nil
	}
	return &options
}

func (s *service) storeOptions(ctx context.Context, productID uuid.UUID, options *PricingOptions) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(options)
	if err != nil {
		s.logg.Warn(ctx, "encoding pricing options for cache: "+err.Error())
		return
	}
	key := s.cache.CacheKey(optionsCacheScope, productID.String())
	if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
		s.logg.Warn(ctx, "writing pricing options cache: "+err.Error())
	}
}
