package ports

import "go.trai.ch/hearth/internal/core/domain"

// PlanLoader defines the interface for locating and loading the household plan.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type PlanLoader interface {
	// Discover walks up from cwd and returns the path of the first plan file found.
	Discover(cwd string) (string, error)

	// Load reads and validates the plan file at path.
	Load(path string) (*domain.Plan, error)
}
