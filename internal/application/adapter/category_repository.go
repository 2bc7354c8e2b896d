package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// CategoryRepository defines the interface for custom and hidden category persistence.
type CategoryRepository interface {
	// Create creates a new custom category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByName retrieves a user's custom category by name.
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error)

	// FindByUser retrieves all custom categories of a user, ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// Update updates an existing custom category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a custom category.
	Delete(ctx context.Context, id uuid.UUID) error

	// Hide marks a default category as hidden. Hiding twice is a no-op.
	Hide(ctx context.Context, userID uuid.UUID, name string) error

	// Unhide removes the hidden mark and reports whether one existed.
	Unhide(ctx context.Context, userID uuid.UUID, name string) (bool, error)

	// FindHidden returns the names of the user's hidden default categories.
	FindHidden(ctx context.Context, userID uuid.UUID) ([]string, error)
}
