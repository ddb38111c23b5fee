package sheets

import (
	"context"

	"gongu/internal/core"
)

// Ports for outbound adapters.
type (
	ContributionWriter interface {
		Append(ctx context.Context, c core.Contribution) (rowRef string, err error)
	}

	ContributionDeleter interface {
		DeleteContribution(ctx context.Context, id string) error
	}
)
