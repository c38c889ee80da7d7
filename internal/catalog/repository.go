package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flyerworks/flyerworks-backend/internal/pricing"
	"github.com/flyerworks/flyerworks-backend/pkg/db/models"
	pkgerrors "github.com/flyerworks/flyerworks-backend/pkg/errors"
)

// Repository is the GORM-backed reference data reader for the pricing engine.
// It satisfies pricing.ReferenceDataRepository.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindProductByID loads the product row without associations.
func (r *Repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
	}
	return &product, nil
}

// FindProductBySlug loads the product row by its storefront slug.
func (r *Repository) FindProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %q not found", slug))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
	}
	return &product, nil
}

// FetchPaperStocks returns every active paper stock.
func (r *Repository) FetchPaperStocks(ctx context.Context) ([]models.PaperStock, error) {
	var rows []models.PaperStock
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&rows).
		Error
	return rows, err
}

// FetchCoatings returns every active coating.
func (r *Repository) FetchCoatings(ctx context.Context) ([]models.Coating, error) {
	var rows []models.Coating
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&rows).
		Error
	return rows, err
}

// FetchTurnarounds returns every active turnaround tier.
func (r *Repository) FetchTurnarounds(ctx context.Context) ([]models.Turnaround, error) {
	var rows []models.Turnaround
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&rows).
		Error
	return rows, err
}

// FetchProductAddOns returns the add-ons attached to the product with their
// sides overrides, sub-options, and choices preloaded.
func (r *Repository) FetchProductAddOns(ctx context.Context, productID uuid.UUID) ([]models.ProductAddOn, error) {
	var rows []models.ProductAddOn
	err := r.db.WithContext(ctx).
		Preload("AddOn").
		Preload("AddOn.SidesPricing").
		Preload("AddOn.SubOptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("AddOn.SubOptions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Where("product_id = ?", productID).
		Order("display_order ASC").
		Find(&rows).
		Error
	return rows, err
}

// FetchCompatibility returns the stock/coating compatibility rows for the
// supplied paper stocks.
func (r *Repository) FetchCompatibility(ctx context.Context, paperStockIDs ...uuid.UUID) ([]models.PaperStockCoating, error) {
	if len(paperStockIDs) == 0 {
		return nil, nil
	}
	var rows []models.PaperStockCoating
	err := r.db.WithContext(ctx).
		Where("paper_stock_id IN ?", paperStockIDs).
		Find(&rows).
		Error
	return rows, err
}

// FetchRuleSet loads the cross-add-on rule tables in one pass.
func (r *Repository) FetchRuleSet(ctx context.Context) (*pricing.RuleSet, error) {
	tx := r.db.WithContext(ctx)
	var rules pricing.RuleSet
	if err := tx.Find(&rules.Dependencies).Error; err != nil {
		return nil, err
	}
	if err := tx.Find(&rules.Conflicts).Error; err != nil {
		return nil, err
	}
	if err := tx.Find(&rules.SizeRequirements).Error; err != nil {
		return nil, err
	}
	return &rules, nil
}
