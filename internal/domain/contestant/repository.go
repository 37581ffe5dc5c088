package contestant

import "context"

// Repository describes contestant persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Contestant) (Contestant, error)
	List(ctx context.Context) ([]Contestant, error)
	GetByID(ctx context.Context, contestantID string) (Contestant, bool, error)
	Update(ctx context.Context, item Contestant) (Contestant, bool, error)
	Delete(ctx context.Context, contestantID string) (int64, error)
	// Increment bumps one counter by exactly one and returns the stored record in a single step.
	Increment(ctx context.Context, contestantID string, counter Counter) (Contestant, bool, error)
}
