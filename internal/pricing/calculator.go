package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/flyerworks/flyerworks-backend/pkg/db/models"
	"github.com/flyerworks/flyerworks-backend/pkg/enums"
	pkgerrors "github.com/flyerworks/flyerworks-backend/pkg/errors"
)

var oneHundred = decimal.NewFromInt(100)

// Calculator prices one configuration against a reference data snapshot. It
// performs no I/O, so the same snapshot and input always produce the same
// breakdown.
type Calculator struct {
	snap *Snapshot
}

func NewCalculator(snap *Snapshot) (*Calculator, error) {
	if snap == nil {
		return nil, errors.New("snapshot is required")
	}
	return &Calculator{snap: snap}, nil
}

type resolvedAddOn struct {
	addOn        *models.AddOn
	subOptions   map[string]string
	autoIncluded bool
}

// Price validates the input against the snapshot and computes the itemized
// breakdown. Validation runs before any math: component resolution, coating
// compatibility, required sub-options, conflicts among the customer's picks,
// dependency closure, then size requirements over the final add-on set.
func (c *Calculator) Price(input CalculateInput) (*Breakdown, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	stock, coating, turnaround, err := c.resolveComponents(input)
	if err != nil {
		return nil, err
	}

	if !c.snap.CompatibleCoating(stock.ID, coating.ID) {
		return nil, pkgerrors.New(pkgerrors.CodeIncompatibleCoating,
			fmt.Sprintf("coating %q cannot be applied to %q", coating.Name, stock.Name)).
			WithDetails(map[string]string{
				"paperStock": stock.Name,
				"coating":    coating.Name,
			})
	}

	selected, err := c.resolveAddOns(input.AddOns)
	if err != nil {
		return nil, err
	}
	if err := c.checkConflicts(selected); err != nil {
		return nil, err
	}
	final, err := c.closeDependencies(selected)
	if err != nil {
		return nil, err
	}
	if err := c.checkSizeRequirements(final, input.WidthIn, input.HeightIn); err != nil {
		return nil, err
	}

	return c.compute(input, stock, coating, turnaround, final)
}

func (c *Calculator) resolveComponents(input CalculateInput) (*models.PaperStock, *models.Coating, *models.Turnaround, error) {
	if c.snap.Product == nil || c.snap.Product.ID != input.ProductID || !c.snap.Product.IsActive {
		return nil, nil, nil, notFound("product", input.ProductID.String())
	}
	stock, ok := c.snap.PaperStocks[input.PaperStockID]
	if !ok || !stock.IsActive {
		return nil, nil, nil, notFound("paper stock", input.PaperStockID.String())
	}
	coating, ok := c.snap.Coatings[input.CoatingID]
	if !ok || !coating.IsActive {
		return nil, nil, nil, notFound("coating", input.CoatingID.String())
	}
	turnaround, ok := c.snap.Turnarounds[input.TurnaroundID]
	if !ok || !turnaround.IsActive {
		return nil, nil, nil, notFound("turnaround", input.TurnaroundID.String())
	}
	return stock, coating, turnaround, nil
}

func (c *Calculator) resolveAddOns(selections []AddOnSelection) ([]resolvedAddOn, error) {
	resolved := make([]resolvedAddOn, 0, len(selections))
	for _, sel := range selections {
		addOn, ok := c.snap.AddOns[sel.AddOnID]
		if !ok || !addOn.IsActive {
			return nil, notFound("add-on", sel.AddOnID.String())
		}
		if err := validateSubOptions(addOn, sel.SubOptions); err != nil {
			return nil, err
		}
		resolved = append(resolved, resolvedAddOn{addOn: addOn, subOptions: sel.SubOptions})
	}
	return resolved, nil
}

func validateSubOptions(addOn *models.AddOn, values map[string]string) error {
	known := map[string]*models.AddOnSubOption{}
	for i := range addOn.SubOptions {
		known[addOn.SubOptions[i].FieldName] = &addOn.SubOptions[i]
	}

	for field := range values {
		if _, ok := known[field]; !ok {
			return pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("add-on %q has no option %q", addOn.Slug, field)).
				WithDetails(map[string]string{"addOn": addOn.Slug, "field": field})
		}
	}

	for field, sub := range known {
		value, present := values[field]
		if !present || value == "" {
			if sub.Required {
				return pkgerrors.New(pkgerrors.CodeMissingSubOption,
					fmt.Sprintf("add-on %q requires option %q", addOn.Slug, field)).
					WithDetails(map[string]string{"addOn": addOn.Slug, "field": field})
			}
			continue
		}
		if sub.FieldType == enums.SubOptionFieldTypeSelect && findChoice(sub, value) == nil {
			return pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("add-on %q option %q has no choice %q", addOn.Slug, field, value)).
				WithDetails(map[string]string{"addOn": addOn.Slug, "field": field, "value": value})
		}
	}
	return nil
}

func findChoice(sub *models.AddOnSubOption, value string) *models.AddOnSubOptionChoice {
	for i := range sub.Choices {
		if sub.Choices[i].Value == value {
			return &sub.Choices[i]
		}
	}
	return nil
}

// checkConflicts validates the customer's explicit picks only. Add-ons forced
// in later by a dependency rule are exempt, otherwise a rule pair like
// "eddm requires banding" / "eddm conflicts with banding" could never price.
func (c *Calculator) checkConflicts(selected []resolvedAddOn) error {
	present := map[string]bool{}
	for _, sel := range selected {
		present[sel.addOn.Slug] = true
	}
	for _, rule := range c.snap.Rules.Conflicts {
		if present[rule.SlugA] && present[rule.SlugB] {
			msg := rule.Reason
			if msg == "" {
				msg = fmt.Sprintf("add-ons %q and %q cannot be combined", rule.SlugA, rule.SlugB)
			}
			return pkgerrors.New(pkgerrors.CodeAddOnConflict, msg).
				WithDetails(map[string]string{"addOnA": rule.SlugA, "addOnB": rule.SlugB})
		}
	}
	return nil
}

// closeDependencies appends every add-on required by the current set until the
// set is stable. Forced add-ons are flagged AutoIncluded and price at zero;
// the triggering add-on's price is assumed to cover the bundled service.
func (c *Calculator) closeDependencies(selected []resolvedAddOn) ([]resolvedAddOn, error) {
	final := selected
	present := map[string]bool{}
	for _, sel := range selected {
		present[sel.addOn.Slug] = true
	}

	queue := make([]string, 0, len(final))
	for _, sel := range final {
		queue = append(queue, sel.addOn.Slug)
	}
	for len(queue) > 0 {
		trigger := queue[0]
		queue = queue[1:]
		for _, rule := range c.snap.Rules.Dependencies {
			if rule.TriggerSlug != trigger || present[rule.RequiredSlug] {
				continue
			}
			required, ok := c.snap.AddOnsBySlug[rule.RequiredSlug]
			if !ok || !required.IsActive {
				return nil, pkgerrors.New(pkgerrors.CodeInternal,
					fmt.Sprintf("dependency rule references unknown add-on %q", rule.RequiredSlug))
			}
			present[rule.RequiredSlug] = true
			final = append(final, resolvedAddOn{addOn: required, autoIncluded: true})
			queue = append(queue, rule.RequiredSlug)
		}
	}
	return final, nil
}

// checkSizeRequirements runs over the final set, auto-included add-ons too.
func (c *Calculator) checkSizeRequirements(final []resolvedAddOn, widthIn, heightIn float64) error {
	width := decimal.NewFromFloat(widthIn)
	height := decimal.NewFromFloat(heightIn)
	for _, sel := range final {
		for _, req := range c.snap.Rules.SizeRequirements {
			if req.AddOnSlug != sel.addOn.Slug {
				continue
			}
			if width.LessThan(req.MinWidthIn) || height.LessThan(req.MinHeightIn) {
				return pkgerrors.New(pkgerrors.CodeSizeConstraint,
					fmt.Sprintf("add-on %q requires at least %s x %s inches",
						sel.addOn.Slug, req.MinWidthIn.String(), req.MinHeightIn.String())).
					WithDetails(map[string]string{
						"addOn":       sel.addOn.Slug,
						"minWidthIn":  req.MinWidthIn.String(),
						"minHeightIn": req.MinHeightIn.String(),
					})
			}
		}
	}
	return nil
}

func (c *Calculator) compute(input CalculateInput, stock *models.PaperStock, coating *models.Coating, turnaround *models.Turnaround, final []resolvedAddOn) (*Breakdown, error) {
	var warnings []string

	// Cost basis may come from another stock in the same pricing group, while
	// markup and thickness metadata stay with the requested stock.
	costStock := stock
	if stock.PricingGroupStockID != nil {
		grouped, ok := c.snap.PaperStocks[*stock.PricingGroupStockID]
		if !ok {
			warnings = append(warnings, fmt.Sprintf(
				"paper stock %q points at a missing pricing group stock; using its own cost basis", stock.Name))
		} else {
			costStock = grouped
		}
	}

	sidesMultiplier, sidesWarning := sidesMultiplierFor(stock, input.Sides)
	if sidesWarning != "" {
		warnings = append(warnings, sidesWarning)
	}

	markup := stock.MarkupMultiplier
	if stock.SpecialMarkup != nil {
		markup = *stock.SpecialMarkup
	}

	area := decimal.NewFromFloat(input.WidthIn).Mul(decimal.NewFromFloat(input.HeightIn))
	quantity := decimal.NewFromInt(int64(input.Quantity))

	// Unit price in cents, kept fractional until the line-item boundary.
	unitCents := costStock.CostPerSqIn.Mul(area).Mul(oneHundred).Mul(sidesMultiplier).Mul(markup)
	baseSubtotal := roundCents(unitCents.Mul(quantity))

	feeCents := turnaroundFee(turnaround, baseSubtotal)

	breakdown := &Breakdown{
		ProductID:         input.ProductID,
		Currency:          enums.CurrencyUSD,
		Quantity:          input.Quantity,
		WidthIn:           input.WidthIn,
		HeightIn:          input.HeightIn,
		Sides:             input.Sides,
		PaperStock:        ComponentRef{ID: stock.ID, Name: stock.Name, ThicknessLabel: stock.ThicknessLabel},
		Coating:           ComponentRef{ID: coating.ID, Name: coating.Name},
		UnitPriceCents:    roundCents(unitCents),
		BaseSubtotalCents: baseSubtotal,
		Turnaround: TurnaroundLine{
			ID:             turnaround.ID,
			Name:           turnaround.Name,
			ProductionDays: turnaround.ProductionDays,
			FeeCents:       feeCents,
		},
		Warnings: warnings,
	}

	running := baseSubtotal + feeCents
	for _, sel := range final {
		line := AddOnLine{
			ID:           sel.addOn.ID,
			Slug:         sel.addOn.Slug,
			Name:         sel.addOn.Name,
			PricingModel: sel.addOn.PricingModel,
			AutoIncluded: sel.autoIncluded,
			SubOptions:   sel.subOptions,
		}
		if !sel.autoIncluded {
			line.AmountCents = addOnAmount(sel, input.Sides, quantity, running)
		}
		running += line.AmountCents
		breakdown.AddOns = append(breakdown.AddOns, line)
	}

	breakdown.SubtotalCents = running
	breakdown.TotalCents = running
	return breakdown, nil
}

func addOnAmount(sel resolvedAddOn, sides enums.PrintSides, quantity decimal.Decimal, runningCents int64) int64 {
	addOn := sel.addOn
	override := sidesOverride(addOn, sides)

	var amount int64
	switch addOn.PricingModel {
	case enums.AddOnPricingModelFlat:
		base := int64(addOn.BasePriceCents)
		if override != nil && override.BasePriceCents != nil {
			base = int64(*override.BasePriceCents)
		}
		amount = base
	case enums.AddOnPricingModelPerUnit:
		perUnit := addOn.PerUnitPriceCents
		if override != nil && override.PerUnitPriceCents != nil {
			perUnit = *override.PerUnitPriceCents
		}
		amount = roundCents(perUnit.Mul(quantity))
	case enums.AddOnPricingModelPercentage:
		amount = roundCents(decimal.NewFromInt(runningCents).Mul(addOn.Percentage).Div(oneHundred))
	}

	return amount + subOptionDeltas(addOn, sel.subOptions)
}

func sidesOverride(addOn *models.AddOn, sides enums.PrintSides) *models.AddOnSidesPrice {
	for i := range addOn.SidesPricing {
		if addOn.SidesPricing[i].Sides == sides {
			return &addOn.SidesPricing[i]
		}
	}
	return nil
}

func subOptionDeltas(addOn *models.AddOn, values map[string]string) int64 {
	var total int64
	for i := range addOn.SubOptions {
		sub := &addOn.SubOptions[i]
		if sub.FieldType != enums.SubOptionFieldTypeSelect {
			continue
		}
		value, ok := values[sub.FieldName]
		if !ok || value == "" {
			continue
		}
		if choice := findChoice(sub, value); choice != nil {
			total += int64(choice.PriceDeltaCents)
		}
	}
	return total
}

func sidesMultiplierFor(stock *models.PaperStock, sides enums.PrintSides) (decimal.Decimal, string) {
	var configured *decimal.Decimal
	switch sides {
	case enums.PrintSidesSingle:
		configured = stock.SingleSidedMultiplier
	case enums.PrintSidesDouble:
		configured = stock.DoubleSidedMultiplier
	}
	if configured == nil {
		return decimal.NewFromInt(1), fmt.Sprintf(
			"paper stock %q has no %s-sided multiplier; defaulting to 1.0", stock.Name, string(sides))
	}
	return *configured, ""
}

func turnaroundFee(turnaround *models.Turnaround, baseSubtotalCents int64) int64 {
	if turnaround.FeeModel == enums.TurnaroundFeeModelPercentage {
		return roundCents(decimal.NewFromInt(baseSubtotalCents).Mul(turnaround.FeePercent).Div(oneHundred))
	}
	return int64(turnaround.FlatFeeCents)
}

// roundCents rounds a cents-denominated decimal to a whole number of cents,
// half away from zero.
func roundCents(cents decimal.Decimal) int64 {
	return cents.Round(0).IntPart()
}

func notFound(kind, id string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s %s not found", kind, id)).
		WithDetails(map[string]string{"resource": kind, "id": id})
}
