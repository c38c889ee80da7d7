package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/flyerworks/flyerworks-backend/pkg/enums"
)

// Product is a configurable print product (flyer, postcard, brochure).
type Product struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug        string         `gorm:"column:slug;not null;uniqueIndex"`
	Name        string         `gorm:"column:name;not null"`
	Description *string        `gorm:"column:description"`
	Tags        pq.StringArray `gorm:"column:tags;type:text[]"`
	IsActive    bool           `gorm:"column:is_active;not null;default:true"`
	AddOns      []ProductAddOn `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductAddOn attaches an add-on to a product with its display placement.
type ProductAddOn struct {
	ID           uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID    uuid.UUID            `gorm:"column:product_id;type:uuid;not null;index"`
	AddOnID      uuid.UUID            `gorm:"column:add_on_id;type:uuid;not null"`
	Placement    enums.AddOnPlacement `gorm:"column:placement;not null;default:below_upload"`
	DisplayOrder int                  `gorm:"column:display_order;not null;default:0"`
	AddOn        *AddOn               `gorm:"foreignKey:AddOnID"`
	CreatedAt    time.Time            `gorm:"column:created_at;autoCreateTime"`
}
