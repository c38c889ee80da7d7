package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddOnDependency forces the required add-on whenever the trigger is selected.
type AddOnDependency struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TriggerSlug  string    `gorm:"column:trigger_slug;not null;index"`
	RequiredSlug string    `gorm:"column:required_slug;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// AddOnConflict declares two add-ons mutually exclusive.
type AddOnConflict struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SlugA     string    `gorm:"column:slug_a;not null;index"`
	SlugB     string    `gorm:"column:slug_b;not null;index"`
	Reason    string    `gorm:"column:reason;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// AddOnSizeRequirement rejects configurations below the add-on's minimum
// physical dimensions.
type AddOnSizeRequirement struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AddOnSlug   string          `gorm:"column:add_on_slug;not null;index"`
	MinWidthIn  decimal.Decimal `gorm:"column:min_width_in;type:numeric(6,2);not null"`
	MinHeightIn decimal.Decimal `gorm:"column:min_height_in;type:numeric(6,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}
