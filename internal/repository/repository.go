// Package repository declares the persistence contracts shared by the storage adapters.
package repository

import (
	"context"
	"errors"

	"github.com/mamadbah2/kolamku/internal/domain/models"
)

// ErrPlanNotFound is returned when no plan set matches the requested id.
var ErrPlanNotFound = errors.New("plan set not found")

// PlanRepository stores generated plan sets.
type PlanRepository interface {
	SavePlanSet(ctx context.Context, set models.PlanSet) error
	GetPlanSet(ctx context.Context, id string) (models.PlanSet, error)
}
