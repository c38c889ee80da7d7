package pricing

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/flyerworks/flyerworks-backend/pkg/db/models"
	"github.com/flyerworks/flyerworks-backend/pkg/enums"
	pkgerrors "github.com/flyerworks/flyerworks-backend/pkg/errors"
	"github.com/flyerworks/flyerworks-backend/pkg/logger"
	"github.com/flyerworks/flyerworks-backend/pkg/redis"
)

type fakeRefs struct {
	snap      *Snapshot
	fetchErr  error
	gatherLog []string
}

func (f *fakeRefs) FindProductByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	f.gatherLog = append(f.gatherLog, "product")
	if f.snap.Product == nil || f.snap.Product.ID != id {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return f.snap.Product, nil
}

func (f *fakeRefs) FetchPaperStocks(context.Context) ([]models.PaperStock, error) {
	f.gatherLog = append(f.gatherLog, "stocks")
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	rows := make([]models.PaperStock, 0, len(f.snap.PaperStocks))
	for _, stock := range f.snap.PaperStocks {
		rows = append(rows, *stock)
	}
	return rows, nil
}

func (f *fakeRefs) FetchCoatings(context.Context) ([]models.Coating, error) {
	rows := make([]models.Coating, 0, len(f.snap.Coatings))
	for _, coating := range f.snap.Coatings {
		rows = append(rows, *coating)
	}
	return rows, nil
}

func (f *fakeRefs) FetchTurnarounds(context.Context) ([]models.Turnaround, error) {
	rows := make([]models.Turnaround, 0, len(f.snap.Turnarounds))
	for _, turnaround := range f.snap.Turnarounds {
		rows = append(rows, *turnaround)
	}
	return rows, nil
}

func (f *fakeRefs) FetchProductAddOns(context.Context, uuid.UUID) ([]models.ProductAddOn, error) {
	return f.snap.ProductAddOns, nil
}

func (f *fakeRefs) FetchCompatibility(_ context.Context, paperStockIDs ...uuid.UUID) ([]models.PaperStockCoating, error) {
	var rows []models.PaperStockCoating
	for _, stockID := range paperStockIDs {
		for coatingID := range f.snap.Compatibility[stockID] {
			rows = append(rows, models.PaperStockCoating{
				PaperStockID: stockID,
				CoatingID:    coatingID,
				IsDefault:    f.snap.Defaults[stockID] == coatingID,
			})
		}
	}
	return rows, nil
}

func (f *fakeRefs) FetchRuleSet(context.Context) (*RuleSet, error) {
	rules := f.snap.Rules
	return &rules, nil
}

type fakeCache struct {
	values map[string]string
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	value, ok := c.values[key]
	if !ok {
		return "", redis.ErrCacheMiss
	}
	return value, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	c.values[key] = value.(string)
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.values, key)
	}
	return nil
}

func (c *fakeCache) CacheKey(scope, id string) string {
	return "test:" + scope + ":" + id
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "pricing-test", Output: io.Discard})
}

func newTestService(t *testing.T, refs ReferenceDataRepository, cache redis.Cache) Service {
	t.Helper()
	svc, err := NewService(refs, cache, time.Minute, nil, testLogger())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestServiceCalculatePrice(t *testing.T) {
	snap, ids := fixtureSnapshot(t)
	refs := &fakeRefs{snap: snap}
	svc := newTestService(t, refs, nil)

	breakdown, err := svc.CalculatePrice(context.Background(), baseInput(ids))
	if err != nil {
		t.Fatalf("calculate price: %v", err)
	}
	if breakdown.SubtotalCents != 2688 {
		t.Fatalf("expected subtotal 2688, got %d", breakdown.SubtotalCents)
	}
}

func TestServiceCalculatePriceUnknownProduct(t *testing.T) {
	snap, ids := fixtureSnapshot(t)
	refs := &fakeRefs{snap: snap}
	svc := newTestService(t, refs, nil)

	input := baseInput(ids)
	input.ProductID = uuid.New()
	_, err := svc.CalculatePrice(context.Background(), input)
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestServiceCalculatePriceDependencyFailure(t *testing.T) {
	snap, ids := fixtureSnapshot(t)
	refs := &fakeRefs{snap: snap, fetchErr: errors.New("connection refused")}
	svc := newTestService(t, refs, nil)

	_, err := svc.CalculatePrice(context.Background(), baseInput(ids))
	requireCode(t, err, pkgerrors.CodeDependency)
}

func TestServiceOptionsAssembly(t *testing.T) {
	snap, ids := fixtureSnapshot(t)
	// Move the proof below the upload control to exercise both buckets.
	for i := range snap.ProductAddOns {
		if snap.ProductAddOns[i].AddOnID == ids.digitalProof {
			snap.ProductAddOns[i].Placement = enums.AddOnPlacementBelowUpload
		}
	}
	refs := &fakeRefs{snap: snap}
	svc := newTestService(t, refs, nil)

	options, err := svc.GetProductPricingOptions(context.Background(), ids.product)
	if err != nil {
		t.Fatalf("get options: %v", err)
	}

	if options.Product.Slug != "flyers" {
		t.Fatalf("expected flyers product, got %+v", options.Product)
	}
	if len(options.PaperStocks) != 4 {
		t.Fatalf("expected 4 paper stocks, got %d", len(options.PaperStocks))
	}
	if len(options.Turnarounds) != 2 {
		t.Fatalf("expected 2 turnarounds, got %d", len(options.Turnarounds))
	}
	if len(options.AddOns.AboveUpload) != 6 || len(options.AddOns.BelowUpload) != 1 {
		t.Fatalf("unexpected add-on buckets: %d above, %d below",
			len(options.AddOns.AboveUpload), len(options.AddOns.BelowUpload))
	}
	if options.AddOns.BelowUpload[0].Slug != "digital-proof" {
		t.Fatalf("expected digital-proof below upload, got %s", options.AddOns.BelowUpload[0].Slug)
	}

	for _, stock := range options.PaperStocks {
		if stock.ID != ids.cardstock12pt {
			continue
		}
		if stock.DefaultCoatingID == nil || *stock.DefaultCoatingID != ids.matteCoating {
			t.Fatalf("expected matte default for 12pt, got %v", stock.DefaultCoatingID)
		}
		if len(stock.Coatings) != 2 {
			t.Fatalf("expected 2 compatible coatings for 12pt, got %d", len(stock.Coatings))
		}
	}

	for _, addOn := range options.AddOns.AboveUpload {
		if addOn.Slug == "folding" {
			if addOn.SizeRequirement == nil {
				t.Fatal("expected size requirement on folding")
			}
			if len(addOn.SubOptions) != 1 || len(addOn.SubOptions[0].Choices) != 3 {
				t.Fatalf("expected folding sub-options in payload, got %+v", addOn.SubOptions)
			}
		}
	}
}

func TestServiceOptionsCaching(t *testing.T) {
	snap, ids := fixtureSnapshot(t)
	refs := &fakeRefs{snap: snap}
	cache := newFakeCache()
	svc := newTestService(t, refs, cache)

	first, err := svc.GetProductPricingOptions(context.Background(), ids.product)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
	callsAfterFirst := len(refs.gatherLog)

	second, err := svc.GetProductPricingOptions(context.Background(), ids.product)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if len(refs.gatherLog) != callsAfterFirst {
		t.Fatal("expected second call to be served from cache")
	}
	if first.Product.ID != second.Product.ID || len(first.PaperStocks) != len(second.PaperStocks) {
		t.Fatalf("cached payload diverged: %+v vs %+v", first, second)
	}
}

func TestServiceOptionsUnknownProduct(t *testing.T) {
	snap, _ := fixtureSnapshot(t)
	refs := &fakeRefs{snap: snap}
	svc := newTestService(t, refs, nil)

	_, err := svc.GetProductPricingOptions(context.Background(), uuid.New())
	requireCode(t, err, pkgerrors.CodeNotFound)
}
