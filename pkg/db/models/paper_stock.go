package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flyerworks/flyerworks-backend/pkg/enums"
)

// PaperStock is the substrate a product is printed on. Costs are per square
// inch and inherently fractional, so they stay decimal until the engine rounds
// line items to cents.
type PaperStock struct {
	ID             uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name           string               `gorm:"column:name;not null"`
	Type           enums.PaperStockType `gorm:"column:type;not null"`
	CostPerSqIn    decimal.Decimal      `gorm:"column:cost_per_sq_in;type:numeric(14,8);not null"`
	WeightPerSqIn  decimal.Decimal      `gorm:"column:weight_per_sq_in;type:numeric(14,8);not null"`
	ThicknessLabel string               `gorm:"column:thickness_label;not null"`

	// MarkupMultiplier scales the raw material cost; SpecialMarkup, when set,
	// replaces it entirely.
	MarkupMultiplier decimal.Decimal  `gorm:"column:markup_multiplier;type:numeric(8,4);not null;default:1"`
	SpecialMarkup    *decimal.Decimal `gorm:"column:special_markup;type:numeric(8,4)"`

	SingleSidedMultiplier *decimal.Decimal `gorm:"column:single_sided_multiplier;type:numeric(8,4)"`
	DoubleSidedMultiplier *decimal.Decimal `gorm:"column:double_sided_multiplier;type:numeric(8,4)"`

	// PricingGroupStockID points at another stock whose cost basis is used in
	// place of this one, while thickness/markup metadata stay with this row.
	PricingGroupStockID *uuid.UUID `gorm:"column:pricing_group_stock_id;type:uuid"`

	IsActive  bool                `gorm:"column:is_active;not null;default:true"`
	Coatings  []PaperStockCoating `gorm:"foreignKey:PaperStockID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// PaperStockCoating is the compatibility row between a stock and a coating.
// At most one row per stock carries is_default.
type PaperStockCoating struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PaperStockID uuid.UUID `gorm:"column:paper_stock_id;type:uuid;not null;index"`
	CoatingID    uuid.UUID `gorm:"column:coating_id;type:uuid;not null"`
	IsDefault    bool      `gorm:"column:is_default;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
