package ports

import (
	"context"

	"github.com/bnema/droidmirror/internal/domain"
)

type SavedDeviceRepository interface {
	GetByID(ctx context.Context, id string) (domain.SavedDevice, error)
	List(ctx context.Context) ([]domain.SavedDevice, error)
	Save(ctx context.Context, device domain.SavedDevice) error
	Delete(ctx context.Context, id string) error
}
