package pricing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/flyerworks/flyerworks-backend/pkg/enums"
	pkgerrors "github.com/flyerworks/flyerworks-backend/pkg/errors"
)

// CalculateInput is one fully specified print configuration.
type CalculateInput struct {
	ProductID    uuid.UUID
	PaperStockID uuid.UUID
	CoatingID    uuid.UUID
	TurnaroundID uuid.UUID
	Quantity     int
	WidthIn      float64
	HeightIn     float64
	Sides        enums.PrintSides
	AddOns       []AddOnSelection
}

// AddOnSelection is an add-on the customer picked, with any sub-option values
// keyed by field name.
type AddOnSelection struct {
	AddOnID    uuid.UUID
	SubOptions map[string]string
}

func (in CalculateInput) validate() error {
	problems := map[string]string{}
	if in.ProductID == uuid.Nil {
		problems["productId"] = "is required"
	}
	if in.PaperStockID == uuid.Nil {
		problems["paperStockId"] = "is required"
	}
	if in.CoatingID == uuid.Nil {
		problems["coatingId"] = "is required"
	}
	if in.TurnaroundID == uuid.Nil {
		problems["turnaroundId"] = "is required"
	}
	if in.Quantity < 1 {
		problems["quantity"] = "must be at least 1"
	}
	if in.WidthIn <= 0 {
		problems["widthIn"] = "must be greater than zero"
	}
	if in.HeightIn <= 0 {
		problems["heightIn"] = "must be greater than zero"
	}
	if !in.Sides.IsValid() {
		problems["sides"] = fmt.Sprintf("unknown value %q", string(in.Sides))
	}
	seen := map[uuid.UUID]bool{}
	for _, sel := range in.AddOns {
		if sel.AddOnID == uuid.Nil {
			problems["addOns"] = "addOnId is required"
			continue
		}
		if seen[sel.AddOnID] {
			problems["addOns"] = fmt.Sprintf("add-on %s selected more than once", sel.AddOnID)
		}
		seen[sel.AddOnID] = true
	}
	if len(problems) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid pricing input").WithDetails(problems)
	}
	return nil
}

// ComponentRef identifies a priced component in the breakdown.
type ComponentRef struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ThicknessLabel string    `json:"thicknessLabel,omitempty"`
}

// TurnaroundLine is the turnaround tier plus the fee it contributed.
type TurnaroundLine struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ProductionDays int       `json:"productionDays"`
	FeeCents       int64     `json:"feeCents"`
}

// AddOnLine is one add-on's contribution to the subtotal. AutoIncluded lines
// were forced in by a dependency rule and carry a zero amount.
type AddOnLine struct {
	ID           uuid.UUID               `json:"id"`
	Slug         string                  `json:"slug"`
	Name         string                  `json:"name"`
	PricingModel enums.AddOnPricingModel `json:"pricingModel"`
	AmountCents  int64                   `json:"amountCents"`
	AutoIncluded bool                    `json:"autoIncluded"`
	SubOptions   map[string]string       `json:"subOptions,omitempty"`
}

// Breakdown is the full itemized result of a price calculation. All amounts
// are whole cents; each line item was rounded before summing, so the subtotal
// is exactly the sum of the lines shown.
type Breakdown struct {
	ProductID         uuid.UUID        `json:"productId"`
	Currency          enums.Currency   `json:"currency"`
	Quantity          int              `json:"quantity"`
	WidthIn           float64          `json:"widthIn"`
	HeightIn          float64          `json:"heightIn"`
	Sides             enums.PrintSides `json:"sides"`
	PaperStock        ComponentRef     `json:"paperStock"`
	Coating           ComponentRef     `json:"coating"`
	UnitPriceCents    int64            `json:"unitPriceCents"`
	BaseSubtotalCents int64            `json:"baseSubtotalCents"`
	Turnaround        TurnaroundLine   `json:"turnaround"`
	AddOns            []AddOnLine      `json:"addOns"`
	SubtotalCents     int64            `json:"subtotalCents"`
	TotalCents        int64            `json:"totalCents"`
	Warnings          []string         `json:"warnings,omitempty"`
}
