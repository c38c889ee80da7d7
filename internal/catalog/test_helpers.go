package catalog

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/flyerworks/flyerworks-backend/pkg/db/models"
	"github.com/flyerworks/flyerworks-backend/pkg/enums"
)

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", value, err)
	}
	return parsed
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:       uuid.New(),
		Slug:     fmt.Sprintf("flyers-%s", uuid.NewString()),
		Name:     "Test Flyers",
		IsActive: true,
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func mustCreateTestPaperStock(t *testing.T, tx *gorm.DB) *models.PaperStock {
	t.Helper()
	stock := &models.PaperStock{
		ID:               uuid.New(),
		Name:             fmt.Sprintf("Test Stock %s", uuid.NewString()),
		Type:             enums.PaperStockTypeCardstock,
		CostPerSqIn:      mustDecimal(t, "0.0008"),
		WeightPerSqIn:    mustDecimal(t, "0.00042"),
		ThicknessLabel:   "9pt",
		MarkupMultiplier: mustDecimal(t, "1.8"),
		IsActive:         true,
	}
	if err := tx.Create(stock).Error; err != nil {
		t.Fatalf("create paper stock: %v", err)
	}
	return stock
}

func mustCreateTestCoating(t *testing.T, tx *gorm.DB) *models.Coating {
	t.Helper()
	coating := &models.Coating{
		ID:       uuid.New(),
		Name:     fmt.Sprintf("Test Coating %s", uuid.NewString()),
		IsActive: true,
	}
	if err := tx.Create(coating).Error; err != nil {
		t.Fatalf("create coating: %v", err)
	}
	return coating
}

func mustCreateTestAddOn(t *testing.T, tx *gorm.DB) *models.AddOn {
	t.Helper()
	addOn := &models.AddOn{
		ID:                uuid.New(),
		Slug:              fmt.Sprintf("test-addon-%s", uuid.NewString()),
		Name:              "Test Add-On",
		PricingModel:      enums.AddOnPricingModelPerUnit,
		PerUnitPriceCents: mustDecimal(t, "1.7"),
		Category:          enums.AddOnCategoryFinishing,
		IsActive:          true,
		SubOptions: []models.AddOnSubOption{
			{
				FieldName: "fold_type",
				Label:     "Fold Type",
				FieldType: enums.SubOptionFieldTypeSelect,
				Required:  true,
				Choices: []models.AddOnSubOptionChoice{
					{Value: "half_fold", Label: "Half Fold"},
					{Value: "z_fold", Label: "Z Fold", PriceDeltaCents: 250},
				},
			},
		},
	}
	if err := tx.Create(addOn).Error; err != nil {
		t.Fatalf("create add-on: %v", err)
	}
	return addOn
}
