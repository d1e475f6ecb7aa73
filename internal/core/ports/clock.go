package ports

import "time"

// Clock provides the current time. The engine never reads the process clock directly.
//
//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	Now() time.Time
}
