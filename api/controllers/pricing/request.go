package pricing

import (
	"github.com/google/uuid"

	pricingsvc "github.com/flyerworks/flyerworks-backend/internal/pricing"
	"github.com/flyerworks/flyerworks-backend/pkg/enums"
	pkgerrors "github.com/flyerworks/flyerworks-backend/pkg/errors"
)

// CalculateRequest is the POST body for a price calculation.
type CalculateRequest struct {
	ProductID    uuid.UUID               `json:"productId" validate:"required"`
	PaperStockID uuid.UUID               `json:"paperStockId" validate:"required"`
	CoatingID    uuid.UUID               `json:"coatingId" validate:"required"`
	TurnaroundID uuid.UUID               `json:"turnaroundId" validate:"required"`
	Quantity     int                     `json:"quantity" validate:"required,min=1"`
	WidthIn      float64                 `json:"widthIn" validate:"required,gt=0"`
	HeightIn     float64                 `json:"heightIn" validate:"required,gt=0"`
	Sides        string                  `json:"sides" validate:"required,oneof=single double"`
	AddOns       []AddOnSelectionRequest `json:"addOns" validate:"dive"`
}

// AddOnSelectionRequest is one selected add-on with its sub-option values.
type AddOnSelectionRequest struct {
	AddOnID    uuid.UUID         `json:"addOnId" validate:"required"`
	SubOptions map[string]string `json:"subOptions"`
}

func toCalculateInput(payload CalculateRequest) (pricingsvc.CalculateInput, error) {
	sides, err := enums.ParsePrintSides(payload.Sides)
	if err != nil {
		return pricingsvc.CalculateInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sides value")
	}

	input := pricingsvc.CalculateInput{
		ProductID:    payload.ProductID,
		PaperStockID: payload.PaperStockID,
		CoatingID:    payload.CoatingID,
		TurnaroundID: payload.TurnaroundID,
		Quantity:     payload.Quantity,
		WidthIn:      payload.WidthIn,
		HeightIn:     payload.HeightIn,
		Sides:        sides,
	}
	for _, sel := range payload.AddOns {
		input.AddOns = append(input.AddOns, pricingsvc.AddOnSelection{
			AddOnID:    sel.AddOnID,
			SubOptions: sel.SubOptions,
		})
	}
	return input, nil
}
