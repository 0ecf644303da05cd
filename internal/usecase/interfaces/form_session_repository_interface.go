package interfaces

import (
	"context"
	"errors"

	"agendamento_cras/internal/domain/entities"
)

// ErrFormSessionConflict is returned by Update when the stored version differs
// from the one being written, or when the session no longer exists.
var ErrFormSessionConflict = errors.New("form session modified concurrently")

// IFormSessionRepository persists form sessions between HTTP calls.
//
// GetByID returns a zero FormSession (empty ID) when nothing is stored.
// Update is conditional on FormSession.Version and returns the session with
// the incremented version.
type IFormSessionRepository interface {
	Create(ctx context.Context, s entities.FormSession) (entities.FormSession, error)
	GetByID(ctx context.Context, id string) (entities.FormSession, error)
	Update(ctx context.Context, s entities.FormSession) (entities.FormSession, error)
}
