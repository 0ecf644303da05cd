package repository

import (
	"context"
	"sync"
	"time"

	"agendamento_cras/internal/domain/entities"
	"agendamento_cras/internal/usecase/interfaces"

	"github.com/zekroTJA/timedmap"
)

const (
	memoryCleanupInterval = time.Minute
	defaultMemoryTTL      = 30 * time.Minute
)

// FormSessionMemoryRepository keeps sessions in process memory; entries expire
// with the session TTL. Suitable for a single instance.
type FormSessionMemoryRepository struct {
	mu       sync.Mutex
	sessions *timedmap.TimedMap
	ttl      time.Duration
}

var _ interfaces.IFormSessionRepository = (*FormSessionMemoryRepository)(nil)

func NewFormSessionMemoryRepository(ttl time.Duration) *FormSessionMemoryRepository {
	if ttl <= 0 {
		ttl = defaultMemoryTTL
	}
	return &FormSessionMemoryRepository{
		sessions: timedmap.New(memoryCleanupInterval),
		ttl:      ttl,
	}
}

func (r *FormSessionMemoryRepository) Create(_ context.Context, s entities.FormSession) (entities.FormSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessions.Contains(s.ID) {
		return entities.FormSession{}, interfaces.ErrFormSessionConflict
	}
	s.Version = 1
	r.sessions.Set(s.ID, s.Clone(), r.ttl)
	return s.Clone(), nil
}

func (r *FormSessionMemoryRepository) GetByID(_ context.Context, id string) (entities.FormSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions.GetValue(id).(entities.FormSession)
	if !ok {
		return entities.FormSession{}, nil
	}
	return stored.Clone(), nil
}

func (r *FormSessionMemoryRepository) Update(_ context.Context, s entities.FormSession) (entities.FormSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions.GetValue(s.ID).(entities.FormSession)
	if !ok || stored.Version != s.Version {
		return entities.FormSession{}, interfaces.ErrFormSessionConflict
	}
	s.Version++
	r.sessions.Set(s.ID, s.Clone(), r.ttl)
	return s.Clone(), nil
}

// Close stops the expiry cleaner.
func (r *FormSessionMemoryRepository) Close() {
	r.sessions.StopCleaner()
}
