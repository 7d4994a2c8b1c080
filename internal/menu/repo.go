package menu

import (
	"context"

	"github.com/google/uuid"
)

type Repo interface {
	Create(ctx context.Context, item *MenuItem) error
	Get(ctx context.Context, id uuid.UUID) (*MenuItem, error)
	List(ctx context.Context) ([]*MenuItem, error)

	// FindByName matches the title-cased name exactly; nil when absent.
	FindByName(ctx context.Context, name string) (*MenuItem, error)

	Save(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
