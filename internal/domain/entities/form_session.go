package entities

import "time"

// NoticeVariant is the tone of the notice shown above the form.
type NoticeVariant string

const (
	NoticeInfo    NoticeVariant = "info"
	NoticeSuccess NoticeVariant = "success"
	NoticeError   NoticeVariant = "error"
)

// Notice is the single dismissible message shown to the citizen.
type Notice struct {
	Message string        `json:"message"`
	Variant NoticeVariant `json:"variant"`
}

// LookupStatus tracks a dependent remote lookup (units, availability).
type LookupStatus string

const (
	LookupIdle    LookupStatus = "idle"
	LookupLoading LookupStatus = "loading"
	LookupLoaded  LookupStatus = "loaded"
	LookupError   LookupStatus = "error"
)

// LookupState describes the data currently held for a dependent lookup.
//
// Key is the parent value the data belongs to (neighborhood or unit code).
// Generation tags every request; a response is applied only when its
// generation and key still match the session.
type LookupState struct {
	Status     LookupStatus `json:"status"`
	Key        string       `json:"key,omitempty"`
	Generation int64        `json:"generation"`
	Message    string       `json:"message,omitempty"`
}

// CPFCheck is the last answered existing-booking lookup. A booking can only be
// submitted for the CPF it names, and only when that CPF had no booking.
type CPFCheck struct {
	CPF        string `json:"cpf,omitempty"`
	HasBooking bool   `json:"has_booking,omitempty"`
}

// Clears reports whether cpf was checked and has no booking.
func (c CPFCheck) Clears(cpf string) bool {
	return c.CPF != "" && c.CPF == cpf && !c.HasBooking
}

// FormSession is the state of one citizen filling the scheduling form.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: optimistic concurrency, incremented on every write
//   - expires_at: TTL attribute (epoch seconds)
type FormSession struct {
	ID     string            `json:"id"`
	Stage  Stage             `json:"stage"`
	Data   FormData          `json:"data"`
	Errors map[string]string `json:"errors"`
	Notice *Notice           `json:"notice,omitempty"`

	CPFCheck CPFCheck `json:"cpf_check"`

	Units              []Unit       `json:"units"`
	UnitsLookup        LookupState  `json:"units_lookup"`
	Availability       Availability `json:"availability"`
	AvailabilityLookup LookupState  `json:"availability_lookup"`

	Submitted bool      `json:"submitted"`
	ResetAt   time.Time `json:"reset_at"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewFormSession returns an empty session at StageCPF.
func NewFormSession(id string, now time.Time, ttl time.Duration) FormSession {
	now = now.UTC()
	return FormSession{
		ID:                 id,
		Stage:              StageCPF,
		Errors:             map[string]string{},
		UnitsLookup:        LookupState{Status: LookupIdle},
		AvailabilityLookup: LookupState{Status: LookupIdle},
		CreatedAt:          now,
		UpdatedAt:          now,
		ExpiresAt:          now.Add(ttl),
	}
}

// Reset brings the session back to its initial state, keeping its identity,
// version and lookup generations.
func (s *FormSession) Reset(now time.Time, ttl time.Duration) {
	fresh := NewFormSession(s.ID, now, ttl)
	fresh.CreatedAt = s.CreatedAt
	fresh.Version = s.Version
	fresh.UnitsLookup.Generation = s.UnitsLookup.Generation + 1
	fresh.AvailabilityLookup.Generation = s.AvailabilityLookup.Generation + 1
	*s = fresh
}

// Touch refreshes the activity timestamps.
func (s *FormSession) Touch(now time.Time, ttl time.Duration) {
	now = now.UTC()
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(ttl)
}

func (s FormSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// ResetDue reports whether a submitted session reached its reset time.
func (s FormSession) ResetDue(now time.Time) bool {
	return s.Submitted && !s.ResetAt.IsZero() && !now.Before(s.ResetAt)
}

func (s *FormSession) SetError(key, message string) {
	if s.Errors == nil {
		s.Errors = map[string]string{}
	}
	s.Errors[key] = message
}

func (s *FormSession) ClearError(key string) {
	delete(s.Errors, key)
}

// IsEditable reports whether the field is unlocked at the current stage.
func (s FormSession) IsEditable(f Field) bool {
	return s.Stage >= f.DisplayStage()
}

// VisibleFields lists the unlocked fields in display order.
func (s FormSession) VisibleFields() []Field {
	out := make([]Field, 0, len(Fields))
	for _, f := range Fields {
		if s.IsEditable(f) {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns a deep copy; stores hand out clones so callers never share maps.
func (s FormSession) Clone() FormSession {
	out := s
	out.Errors = make(map[string]string, len(s.Errors))
	for k, v := range s.Errors {
		out.Errors[k] = v
	}
	if s.Notice != nil {
		n := *s.Notice
		out.Notice = &n
	}
	if s.Units != nil {
		out.Units = append([]Unit(nil), s.Units...)
	}
	if s.Availability.Dates != nil {
		out.Availability.Dates = append([]string(nil), s.Availability.Dates...)
	}
	if s.Availability.Slots != nil {
		out.Availability.Slots = make(map[string][]Slot, len(s.Availability.Slots))
		for date, slots := range s.Availability.Slots {
			out.Availability.Slots[date] = append([]Slot(nil), slots...)
		}
	}
	return out
}
