package interfaces

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"agendamento_cras/internal/domain/entities"
)

// ErrNoExistingBooking is the "not found" answer of the existing-booking lookup.
// It is the happy path: the citizen may book.
var ErrNoExistingBooking = errors.New("no existing booking for cpf")

// RemoteError is a non-2xx answer of the scheduling API.
//
// Message carries the API `message` field when the body had one.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("scheduling api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("scheduling api: status %d: %s", e.StatusCode, e.Message)
}

// Transient reports whether the call may succeed when retried.
func (e *RemoteError) Transient() bool {
	return e.StatusCode >= 500
}

// SubmissionRejectedError is a 422 on booking submission with per-field
// messages, keyed by the API field names.
type SubmissionRejectedError struct {
	Fields map[string]string
}

func (e *SubmissionRejectedError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "scheduling api rejected booking: " + strings.Join(keys, ", ")
}

// ISchedulingGateway abstracts the remote scheduling API (CRAS agendamento).
//
// The form engine only consumes its answers:
//   - existing-booking lookup by CPF (manual, on CPF blur)
//   - units by neighborhood and availability by unit (dependent lookups)
//   - booking submission
type ISchedulingGateway interface {
	GetExistingBooking(ctx context.Context, cpf string) (entities.ExistingBooking, error)
	ListUnits(ctx context.Context, neighborhood string) ([]entities.Unit, error)
	GetAvailability(ctx context.Context, unitCode string) (entities.Availability, error)
	CreateBooking(ctx context.Context, req entities.BookingRequest) (entities.BookingConfirmation, error)
}
