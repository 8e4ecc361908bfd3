package ports

import "go.trai.ch/ldx/internal/core/domain"

// PlanLoader reads batch plans.
//
//go:generate mockgen -source=plan.go -destination=mocks/mock_plan.go -package=mocks
type PlanLoader interface {
	// Load reads and validates the plan at path.
	Load(path string) (*domain.BatchPlan, error)
}
