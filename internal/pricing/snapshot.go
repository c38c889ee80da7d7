package pricing

import (
	"github.com/google/uuid"

	"github.com/flyerworks/flyerworks-backend/pkg/db/models"
)

// RuleSet holds the cross-add-on rules the calculator enforces.
type RuleSet struct {
	Dependencies     []models.AddOnDependency
	Conflicts        []models.AddOnConflict
	SizeRequirements []models.AddOnSizeRequirement
}

// Snapshot is a point-in-time view of the reference data a single calculation
// (or options payload) needs. It is assembled once per request so the math
// never observes reference data changing mid-calculation.
type Snapshot struct {
	Product       *models.Product
	ProductAddOns []models.ProductAddOn

	PaperStocks  map[uuid.UUID]*models.PaperStock
	Coatings     map[uuid.UUID]*models.Coating
	Turnarounds  map[uuid.UUID]*models.Turnaround
	AddOns       map[uuid.UUID]*models.AddOn
	AddOnsBySlug map[string]*models.AddOn

	// Compatibility maps paper stock -> coating -> allowed. Defaults maps
	// paper stock -> its default coating, when one is flagged.
	Compatibility map[uuid.UUID]map[uuid.UUID]bool
	Defaults      map[uuid.UUID]uuid.UUID

	Rules RuleSet
}

func newSnapshot(product *models.Product) *Snapshot {
	return &Snapshot{
		Product:       product,
		PaperStocks:   map[uuid.UUID]*models.PaperStock{},
		Coatings:      map[uuid.UUID]*models.Coating{},
		Turnarounds:   map[uuid.UUID]*models.Turnaround{},
		AddOns:        map[uuid.UUID]*models.AddOn{},
		AddOnsBySlug:  map[string]*models.AddOn{},
		Compatibility: map[uuid.UUID]map[uuid.UUID]bool{},
		Defaults:      map[uuid.UUID]uuid.UUID{},
	}
}

func (s *Snapshot) addPaperStocks(stocks []models.PaperStock) {
	for i := range stocks {
		s.PaperStocks[stocks[i].ID] = &stocks[i]
	}
}

func (s *Snapshot) addCoatings(coatings []models.Coating) {
	for i := range coatings {
		s.Coatings[coatings[i].ID] = &coatings[i]
	}
}

func (s *Snapshot) addTurnarounds(turnarounds []models.Turnaround) {
	for i := range turnarounds {
		s.Turnarounds[turnarounds[i].ID] = &turnarounds[i]
	}
}

func (s *Snapshot) addProductAddOns(links []models.ProductAddOn) {
	s.ProductAddOns = links
	for i := range links {
		addOn := links[i].AddOn
		if addOn == nil {
			continue
		}
		s.AddOns[addOn.ID] = addOn
		s.AddOnsBySlug[addOn.Slug] = addOn
	}
}

func (s *Snapshot) addCompatibility(rows []models.PaperStockCoating) {
	for _, row := range rows {
		set, ok := s.Compatibility[row.PaperStockID]
		if !ok {
			set = map[uuid.UUID]bool{}
			s.Compatibility[row.PaperStockID] = set
		}
		set[row.CoatingID] = true
		if row.IsDefault {
			s.Defaults[row.PaperStockID] = row.CoatingID
		}
	}
}

// CompatibleCoating reports whether the coating may be applied to the stock.
func (s *Snapshot) CompatibleCoating(paperStockID, coatingID uuid.UUID) bool {
	set, ok := s.Compatibility[paperStockID]
	if !ok {
		return false
	}
	return set[coatingID]
}
