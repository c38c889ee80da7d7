package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/flyerworks/flyerworks-backend/pkg/enums"
)

// AddOn is an optional print service with its own pricing rule.
type AddOn struct {
	ID   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug string    `gorm:"column:slug;not null;uniqueIndex"`
	Name string    `gorm:"column:name;not null"`

	PricingModel enums.AddOnPricingModel `gorm:"column:pricing_model;not null"`

	// BasePriceCents applies to the flat model. PerUnitPriceCents applies to
	// the per-unit model and may carry fractional cents (e.g. EDDM postage).
	// Percentage applies to the percentage model against the running subtotal.
	BasePriceCents    int             `gorm:"column:base_price_cents;not null;default:0"`
	PerUnitPriceCents decimal.Decimal `gorm:"column:per_unit_price_cents;type:numeric(12,4);not null;default:0"`
	Percentage        decimal.Decimal `gorm:"column:percentage;type:numeric(6,3);not null;default:0"`

	RequiresFileUpload     bool `gorm:"column:requires_file_upload;not null;default:false"`
	RequiresSidesSelection bool `gorm:"column:requires_sides_selection;not null;default:false"`

	Category enums.AddOnCategory `gorm:"column:category;not null"`
	Tags     pq.StringArray      `gorm:"column:tags;type:text[]"`
	IsActive bool                `gorm:"column:is_active;not null;default:true"`

	SidesPricing []AddOnSidesPrice `gorm:"foreignKey:AddOnID;constraint:OnDelete:CASCADE"`
	SubOptions   []AddOnSubOption  `gorm:"foreignKey:AddOnID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// AddOnSidesPrice overrides an add-on's pricing for a specific sides value.
// Missing overrides fall back to the add-on's base figures.
type AddOnSidesPrice struct {
	ID                uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AddOnID           uuid.UUID        `gorm:"column:add_on_id;type:uuid;not null;index"`
	Sides             enums.PrintSides `gorm:"column:sides;not null"`
	PerUnitPriceCents *decimal.Decimal `gorm:"column:per_unit_price_cents;type:numeric(12,4)"`
	BasePriceCents    *int             `gorm:"column:base_price_cents"`
	CreatedAt         time.Time        `gorm:"column:created_at;autoCreateTime"`
}

// AddOnSubOption is a configurable field on an add-on (e.g. fold type).
type AddOnSubOption struct {
	ID           uuid.UUID                `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AddOnID      uuid.UUID                `gorm:"column:add_on_id;type:uuid;not null;index"`
	FieldName    string                   `gorm:"column:field_name;not null"`
	Label        string                   `gorm:"column:label;not null"`
	FieldType    enums.SubOptionFieldType `gorm:"column:field_type;not null"`
	Required     bool                     `gorm:"column:required;not null;default:false"`
	DisplayOrder int                      `gorm:"column:display_order;not null;default:0"`
	Choices      []AddOnSubOptionChoice   `gorm:"foreignKey:SubOptionID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time                `gorm:"column:created_at;autoCreateTime"`
}

// AddOnSubOptionChoice is one selectable value of a select-type sub-option,
// carrying its own price delta.
type AddOnSubOptionChoice struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SubOptionID     uuid.UUID `gorm:"column:sub_option_id;type:uuid;not null;index"`
	Value           string    `gorm:"column:value;not null"`
	Label           string    `gorm:"column:label;not null"`
	PriceDeltaCents int       `gorm:"column:price_delta_cents;not null;default:0"`
	DisplayOrder    int       `gorm:"column:display_order;not null;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}
