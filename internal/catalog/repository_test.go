package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/flyerworks/flyerworks-backend/pkg/db/models"
	"github.com/flyerworks/flyerworks-backend/pkg/enums"
	pkgerrors "github.com/flyerworks/flyerworks-backend/pkg/errors"
)

func TestRepositoryReferenceDataFlow(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		_ = tx.Rollback()
	})

	repo := NewRepository(tx)
	ctx := context.Background()

	product := mustCreateTestProduct(t, tx)
	stock := mustCreateTestPaperStock(t, tx)
	coating := mustCreateTestCoating(t, tx)
	addOn := mustCreateTestAddOn(t, tx)

	if err := tx.Create(&models.PaperStockCoating{
		PaperStockID: stock.ID,
		CoatingID:    coating.ID,
		IsDefault:    true,
	}).Error; err != nil {
		t.Fatalf("create compatibility: %v", err)
	}
	if err := tx.Create(&models.ProductAddOn{
		ProductID:    product.ID,
		AddOnID:      addOn.ID,
		Placement:    enums.AddOnPlacementAboveUpload,
		DisplayOrder: 1,
	}).Error; err != nil {
		t.Fatalf("attach add-on: %v", err)
	}

	found, err := repo.FindProductByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("find product: %v", err)
	}
	if found.Slug != product.Slug {
		t.Fatalf("expected slug %s, got %s", product.Slug, found.Slug)
	}

	bySlug, err := repo.FindProductBySlug(ctx, product.Slug)
	if err != nil {
		t.Fatalf("find product by slug: %v", err)
	}
	if bySlug.ID != product.ID {
		t.Fatalf("expected product %s, got %s", product.ID, bySlug.ID)
	}

	stocks, err := repo.FetchPaperStocks(ctx)
	if err != nil {
		t.Fatalf("fetch paper stocks: %v", err)
	}
	if !containsStock(stocks, stock.ID) {
		t.Fatalf("expected stock %s in fetch result", stock.ID)
	}

	compat, err := repo.FetchCompatibility(ctx, stock.ID)
	if err != nil {
		t.Fatalf("fetch compatibility: %v", err)
	}
	if len(compat) != 1 || compat[0].CoatingID != coating.ID || !compat[0].IsDefault {
		t.Fatalf("unexpected compatibility rows: %+v", compat)
	}

	links, err := repo.FetchProductAddOns(ctx, product.ID)
	if err != nil {
		t.Fatalf("fetch product add-ons: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("expected one product add-on, got %d", len(links))
	}
	loaded := links[0].AddOn
	if loaded == nil || loaded.Slug != addOn.Slug {
		t.Fatalf("expected preloaded add-on, got %+v", loaded)
	}
	if len(loaded.SubOptions) != 1 || len(loaded.SubOptions[0].Choices) != 2 {
		t.Fatalf("expected preloaded sub-options and choices, got %+v", loaded.SubOptions)
	}

	rules, err := repo.FetchRuleSet(ctx)
	if err != nil {
		t.Fatalf("fetch rule set: %v", err)
	}
	if rules == nil {
		t.Fatal("expected rule set")
	}
}

func TestRepositoryFindProductByIDNotFound(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)

	_, err := repo.FindProductByID(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestRepositoryFetchCompatibilityEmptyInput(t *testing.T) {
	repo := NewRepository(nil)

	rows, err := repo.FetchCompatibility(context.Background())
	if err != nil {
		t.Fatalf("expected no error for empty input, got %v", err)
	}
	if rows != nil {
		t.Fatalf("expected nil rows, got %+v", rows)
	}
}

func containsStock(stocks []models.PaperStock, id uuid.UUID) bool {
	for _, stock := range stocks {
		if stock.ID == id {
			return true
		}
	}
	return false
}
