package pricing

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flyerworks/flyerworks-backend/pkg/db/models"
	"github.com/flyerworks/flyerworks-backend/pkg/enums"
)

// PricingOptions is everything a storefront configurator needs to render a
// product's pricing controls.
type PricingOptions struct {
	Product     ProductSummary     `json:"product"`
	PaperStocks []PaperStockOption `json:"paperStocks"`
	Turnarounds []TurnaroundOption `json:"turnarounds"`
	AddOns      AddOnGroups        `json:"addOns"`
}

type ProductSummary struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

type PaperStockOption struct {
	ID               uuid.UUID            `json:"id"`
	Name             string               `json:"name"`
	Type             enums.PaperStockType `json:"type"`
	ThicknessLabel   string               `json:"thicknessLabel"`
	Coatings         []CoatingOption      `json:"coatings"`
	DefaultCoatingID *uuid.UUID           `json:"defaultCoatingId,omitempty"`
}

type CoatingOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type TurnaroundOption struct {
	ID             uuid.UUID                `json:"id"`
	Name           string                   `json:"name"`
	ProductionDays int                      `json:"productionDays"`
	Category       enums.TurnaroundCategory `json:"category"`
	FeeModel       enums.TurnaroundFeeModel `json:"feeModel"`
	FlatFeeCents   int                      `json:"flatFeeCents"`
	FeePercent     decimal.Decimal          `json:"feePercent"`
}

// AddOnGroups buckets a product's add-ons by storefront placement.
type AddOnGroups struct {
	AboveUpload []AddOnOption `json:"aboveUpload"`
	BelowUpload []AddOnOption `json:"belowUpload"`
}

type AddOnOption struct {
	ID                     uuid.UUID               `json:"id"`
	Slug                   string                  `json:"slug"`
	Name                   string                  `json:"name"`
	PricingModel           enums.AddOnPricingModel `json:"pricingModel"`
	BasePriceCents         int                     `json:"basePriceCents"`
	PerUnitPriceCents      decimal.Decimal         `json:"perUnitPriceCents"`
	Percentage             decimal.Decimal         `json:"percentage"`
	RequiresFileUpload     bool                    `json:"requiresFileUpload"`
	RequiresSidesSelection bool                    `json:"requiresSidesSelection"`
	Category               enums.AddOnCategory     `json:"category"`
	SubOptions             []SubOptionView         `json:"subOptions,omitempty"`
	SizeRequirement        *SizeRequirementView    `json:"sizeRequirement,omitempty"`
}

type SubOptionView struct {
	FieldName string                   `json:"fieldName"`
	Label     string                   `json:"label"`
	FieldType enums.SubOptionFieldType `json:"fieldType"`
	Required  bool                     `json:"required"`
	Choices   []ChoiceView             `json:"choices,omitempty"`
}

type ChoiceView struct {
	Value           string `json:"value"`
	Label           string `json:"label"`
	PriceDeltaCents int    `json:"priceDeltaCents"`
}

type SizeRequirementView struct {
	MinWidthIn  decimal.Decimal `json:"minWidthIn"`
	MinHeightIn decimal.Decimal `json:"minHeightIn"`
}

// assembleOptions flattens a snapshot into the storefront payload. Ordering is
// deterministic: display order first, then name, so cached and fresh payloads
// compare equal.
func assembleOptions(snap *Snapshot) *PricingOptions {
	options := &PricingOptions{
		Product: ProductSummary{
			ID:          snap.Product.ID,
			Slug:        snap.Product.Slug,
			Name:        snap.Product.Name,
			Description: snap.Product.Description,
		},
		AddOns: AddOnGroups{
			AboveUpload: []AddOnOption{},
			BelowUpload: []AddOnOption{},
		},
	}

	for _, stock := range snap.PaperStocks {
		if !stock.IsActive {
			continue
		}
		view := PaperStockOption{
			ID:             stock.ID,
			Name:           stock.Name,
			Type:           stock.Type,
			ThicknessLabel: stock.ThicknessLabel,
			Coatings:       []CoatingOption{},
		}
		for coatingID := range snap.Compatibility[stock.ID] {
			coating, ok := snap.Coatings[coatingID]
			if !ok || !coating.IsActive {
				continue
			}
			view.Coatings = append(view.Coatings, CoatingOption{ID: coating.ID, Name: coating.Name})
		}
		sort.Slice(view.Coatings, func(i, j int) bool {
			a, b := snap.Coatings[view.Coatings[i].ID], snap.Coatings[view.Coatings[j].ID]
			if a.DisplayOrder != b.DisplayOrder {
				return a.DisplayOrder < b.DisplayOrder
			}
			return a.Name < b.Name
		})
		if defaultID, ok := snap.Defaults[stock.ID]; ok {
			id := defaultID
			view.DefaultCoatingID = &id
		}
		options.PaperStocks = append(options.PaperStocks, view)
	}
	sort.Slice(options.PaperStocks, func(i, j int) bool {
		return options.PaperStocks[i].Name < options.PaperStocks[j].Name
	})

	for _, turnaround := range snap.Turnarounds {
		if !turnaround.IsActive {
			continue
		}
		options.Turnarounds = append(options.Turnarounds, TurnaroundOption{
			ID:             turnaround.ID,
			Name:           turnaround.Name,
			ProductionDays: turnaround.ProductionDays,
			Category:       turnaround.Category,
			FeeModel:       turnaround.FeeModel,
			FlatFeeCents:   turnaround.FlatFeeCents,
			FeePercent:     turnaround.FeePercent,
		})
	}
	sort.Slice(options.Turnarounds, func(i, j int) bool {
		a := snap.Turnarounds[options.Turnarounds[i].ID]
		b := snap.Turnarounds[options.Turnarounds[j].ID]
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		return a.Name < b.Name
	})

	links := append([]models.ProductAddOn(nil), snap.ProductAddOns...)
	sort.Slice(links, func(i, j int) bool {
		if links[i].DisplayOrder != links[j].DisplayOrder {
			return links[i].DisplayOrder < links[j].DisplayOrder
		}
		return links[i].AddOnID.String() < links[j].AddOnID.String()
	})
	for _, link := range links {
		addOn := link.AddOn
		if addOn == nil || !addOn.IsActive {
			continue
		}
		view := addOnView(addOn, snap.Rules.SizeRequirements)
		switch link.Placement {
		case enums.AddOnPlacementAboveUpload:
			options.AddOns.AboveUpload = append(options.AddOns.AboveUpload, view)
		default:
			options.AddOns.BelowUpload = append(options.AddOns.BelowUpload, view)
		}
	}

	return options
}

func addOnView(addOn *models.AddOn, sizeReqs []models.AddOnSizeRequirement) AddOnOption {
	view := AddOnOption{
		ID:                     addOn.ID,
		Slug:                   addOn.Slug,
		Name:                   addOn.Name,
		PricingModel:           addOn.PricingModel,
		BasePriceCents:         addOn.BasePriceCents,
		PerUnitPriceCents:      addOn.PerUnitPriceCents,
		Percentage:             addOn.Percentage,
		RequiresFileUpload:     addOn.RequiresFileUpload,
		RequiresSidesSelection: addOn.RequiresSidesSelection,
		Category:               addOn.Category,
	}

	subs := append([]models.AddOnSubOption(nil), addOn.SubOptions...)
	sort.Slice(subs, func(i, j int) bool { return subs[i].DisplayOrder < subs[j].DisplayOrder })
	for _, sub := range subs {
		subView := SubOptionView{
			FieldName: sub.FieldName,
			Label:     sub.Label,
			FieldType: sub.FieldType,
			Required:  sub.Required,
		}
		choices := append([]models.AddOnSubOptionChoice(nil), sub.Choices...)
		sort.Slice(choices, func(i, j int) bool { return choices[i].DisplayOrder < choices[j].DisplayOrder })
		for _, choice := range choices {
			subView.Choices = append(subView.Choices, ChoiceView{
				Value:           choice.Value,
				Label:           choice.Label,
				PriceDeltaCents: choice.PriceDeltaCents,
			})
		}
		view.SubOptions = append(view.SubOptions, subView)
	}

	for _, req := range sizeReqs {
		if req.AddOnSlug == addOn.Slug {
			view.SizeRequirement = &SizeRequirementView{
				MinWidthIn:  req.MinWidthIn,
				MinHeightIn: req.MinHeightIn,
			}
			break
		}
	}

	return view
}
