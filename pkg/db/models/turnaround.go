package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flyerworks/flyerworks-backend/pkg/enums"
)

// Turnaround is a production speed tier. The fee is either a flat amount or a
// percentage of the base subtotal, chosen by FeeModel.
type Turnaround struct {
	ID             uuid.UUID                `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name           string                   `gorm:"column:name;not null"`
	ProductionDays int                      `gorm:"column:production_days;not null"`
	Category       enums.TurnaroundCategory `gorm:"column:category;not null"`
	FeeModel       enums.TurnaroundFeeModel `gorm:"column:fee_model;not null;default:flat"`
	FlatFeeCents   int                      `gorm:"column:flat_fee_cents;not null;default:0"`
	FeePercent     decimal.Decimal          `gorm:"column:fee_percent;type:numeric(6,3);not null;default:0"`
	IsActive       bool                     `gorm:"column:is_active;not null;default:true"`
	DisplayOrder   int                      `gorm:"column:display_order;not null;default:0"`
	CreatedAt      time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}
