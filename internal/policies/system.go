package policies

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/tribunal/pkg/pagination"
)

// System defines the public contract for policy domain operations.
// ListOrdered is the read path used by report evaluation; everything else
// serves policy administration.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Policy], error)

	ListOrdered(ctx context.Context) ([]Policy, error)
	Find(ctx context.Context, id uuid.UUID) (*Policy, error)
	Create(ctx context.Context, cmd CreateCommand) (*Policy, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Policy, error)
	Move(ctx context.Context, id uuid.UUID, cmd MoveCommand) (*Policy, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
