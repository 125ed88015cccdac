// Package memory holds process-local repository implementations used when no
// database is configured.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mamadbah2/kolamku/internal/domain/models"
	"github.com/mamadbah2/kolamku/internal/repository"
)

var _ repository.PlanRepository = (*PlanRepository)(nil)

// PlanRepository keeps plan sets in a map.
type PlanRepository struct {
	mu   sync.RWMutex
	sets map[string]models.PlanSet
}

// NewPlanRepository returns an empty store.
func NewPlanRepository() *PlanRepository {
	return &PlanRepository{sets: make(map[string]models.PlanSet)}
}

// SavePlanSet stores or replaces a plan set.
func (r *PlanRepository) SavePlanSet(_ context.Context, set models.PlanSet) error {
	if set.ID == "" {
		return errors.New("plan set id must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[set.ID] = clonePlanSet(set)
	return nil
}

// GetPlanSet returns the stored plan set.
func (r *PlanRepository) GetPlanSet(_ context.Context, id string) (models.PlanSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.sets[id]
	if !ok {
		return models.PlanSet{}, fmt.Errorf("%w: %s", repository.ErrPlanNotFound, id)
	}
	return clonePlanSet(set), nil
}

// clonePlanSet copies every slice and pointer reachable from set so stored
// sets never alias caller memory.
func clonePlanSet(set models.PlanSet) models.PlanSet {
	if set.Plans == nil {
		return set
	}
	plans := make([]models.Plan, len(set.Plans))
	for i, p := range set.Plans {
		p.Risk.Reasons = cloneStrings(p.Risk.Reasons)
		p.PriceModel.Reasons = cloneStrings(p.PriceModel.Reasons)
		if p.PriceModel.Alternatives != nil {
			p.PriceModel.Alternatives = append([]models.PriceModelAlternative(nil), p.PriceModel.Alternatives...)
		}
		if p.Suppliers != nil {
			recs := make([]models.SupplierRecommendation, len(p.Suppliers))
			for j, rec := range p.Suppliers {
				rec.Reasons = cloneStrings(rec.Reasons)
				if rec.DistanceKm != nil {
					d := *rec.DistanceKm
					rec.DistanceKm = &d
				}
				if rec.Supplier.Location != nil {
					loc := *rec.Supplier.Location
					rec.Supplier.Location = &loc
				}
				recs[j] = rec
			}
			p.Suppliers = recs
		}
		plans[i] = p
	}
	set.Plans = plans
	return set
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
