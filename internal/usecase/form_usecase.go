package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agendamento_cras/internal/domain/entities"
	"agendamento_cras/internal/domain/stagemachine"
	"agendamento_cras/internal/domain/validation"
	"agendamento_cras/internal/infrastructure/metrics"
	"agendamento_cras/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidFormID        = errors.New("invalid form id")
	ErrFormNotFound         = errors.New("form not found")
	ErrUnknownField         = errors.New("unknown field")
	ErrFieldLocked          = errors.New("field locked at current stage")
	ErrFormNotReady         = errors.New("form not ready for submission")
	ErrFormAlreadySubmitted = errors.New("form already submitted")

	// errNoChange makes mutate return the loaded session without writing it.
	errNoChange = errors.New("no change")
)

// ErrorKeyRecaptcha is the ErrorMap key of the human-verification token.
const ErrorKeyRecaptcha = "recaptcha"

// Messages shown to the citizen (pt-BR).
const (
	MsgInvalidField        = "O campo %s está inválido."
	MsgInvalidCPF          = "CPF inválido"
	MsgBookingLookupFailed = "Erro ao consultar disponibilidade. Tente novamente."
	MsgNoUnits             = "Nenhuma unidade encontrada para este bairro."
	MsgUnitsFailed         = "Erro ao buscar unidades. Tente outro bairro."
	MsgAvailabilityFailed  = "Erro ao buscar datas."
	MsgFieldRequired       = "Campo %s inválido ou obrigatório."
	MsgRecaptchaRequired   = "Confirme que você não é um robô."
	MsgCPFNotChecked       = "Confirme o CPF antes de enviar."
	MsgCPFHasBooking       = "Este CPF já possui agendamento."
	MsgBookingConfirmed    = "Agendamento confirmado."
	MsgSubmitFailed        = "Erro ao enviar. Tente novamente mais tarde."
)

// SubmitOutcome classifies a submission attempt.
type SubmitOutcome string

const (
	SubmitAccepted SubmitOutcome = "accepted"
	SubmitInvalid  SubmitOutcome = "invalid"
	SubmitRejected SubmitOutcome = "rejected"
	SubmitFailed   SubmitOutcome = "failed"
)

// SubmitResult is the session after a submission attempt and how it ended.
type SubmitResult struct {
	Session entities.FormSession
	Outcome SubmitOutcome
}

// remote field names of a 422 answer that differ from the form keys
var remoteErrorKeys = map[string]string{
	"selcras": string(entities.FieldUnit),
	"selhora": string(entities.FieldTimeSlot),
}

// IFormUseCase is the form controller: it owns the session state and applies
// field events, lookups and submission to it.
//
// Event mapping (presentation -> operation):
//   - input change => ChangeField()
//   - input blur => LeaveField() (CPF blur runs the existing-booking lookup)
//   - alert close => DismissNotice()
//   - submit button => Submit()
type IFormUseCase interface {
	Start(ctx context.Context) (entities.FormSession, error)
	Get(ctx context.Context, id string) (entities.FormSession, error)
	ChangeField(ctx context.Context, id, field, value string) (entities.FormSession, error)
	LeaveField(ctx context.Context, id, field string) (entities.FormSession, error)
	DismissNotice(ctx context.Context, id string) (entities.FormSession, error)
	Submit(ctx context.Context, id, recaptcha string) (SubmitResult, error)
	Reset(ctx context.Context, id string) (entities.FormSession, error)
}

// FormSettings configures session lifetimes. Zero values fall back to defaults.
type FormSettings struct {
	SessionTTL time.Duration
	ResetDelay time.Duration
	Now        func() time.Time
}

const (
	DefaultSessionTTL = 30 * time.Minute
	DefaultResetDelay = 5 * time.Second

	maxWriteAttempts = 3
)

type FormUseCase struct {
	repo     interfaces.IFormSessionRepository
	gateway  interfaces.ISchedulingGateway
	options  IOptionsProvider
	settings FormSettings
	metrics  *metrics.Metrics
}

var _ IFormUseCase = (*FormUseCase)(nil)

func NewFormUseCase(repo interfaces.IFormSessionRepository, gateway interfaces.ISchedulingGateway, options IOptionsProvider, settings FormSettings, m *metrics.Metrics) *FormUseCase {
	if settings.SessionTTL <= 0 {
		settings.SessionTTL = DefaultSessionTTL
	}
	if settings.ResetDelay <= 0 {
		settings.ResetDelay = DefaultResetDelay
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}
	return &FormUseCase{repo: repo, gateway: gateway, options: options, settings: settings, metrics: m}
}

func (u *FormUseCase) now() time.Time {
	return u.settings.Now().UTC()
}

// pendingLookup is a dependent lookup prepared inside a session write and run
// after it.
type pendingLookup struct {
	lookup     string
	key        string
	generation int64
}

func (u *FormUseCase) Start(ctx context.Context) (entities.FormSession, error) {
	s := entities.NewFormSession(uuid.NewString(), u.now(), u.settings.SessionTTL)
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.FormSession{}, err
	}
	logrus.WithFields(logrus.Fields{"component": "[form][usecase]", "form_id": created.ID}).Info("form started")
	return created, nil
}

func (u *FormUseCase) Get(ctx context.Context, id string) (entities.FormSession, error) {
	return u.mutate(ctx, id, func(*entities.FormSession) error { return errNoChange })
}

func (u *FormUseCase) ChangeField(ctx context.Context, id, field, value string) (entities.FormSession, error) {
	f, ok := entities.ParseField(field)
	if !ok {
		return entities.FormSession{}, ErrUnknownField
	}

	var pending pendingLookup
	s, err := u.mutate(ctx, id, func(s *entities.FormSession) error {
		pending = pendingLookup{}
		if s.Submitted {
			return ErrFormAlreadySubmitted
		}
		if !s.IsEditable(f) {
			return ErrFieldLocked
		}
		var err error
		pending, err = u.applyChange(ctx, s, f, value)
		return err
	})
	if err != nil || pending.lookup == "" {
		return s, err
	}
	return u.runLookup(ctx, s.ID, pending)
}

func (u *FormUseCase) applyChange(ctx context.Context, s *entities.FormSession, f entities.Field, value string) (pendingLookup, error) {
	formatted := validation.FormatField(f, value)
	previous := s.Data.Get(f)

	s.Data.Set(f, formatted)
	s.ClearError(string(f))

	if f == entities.FieldUnit && formatted != previous {
		s.Data.Set(entities.FieldDate, "")
		s.Data.Set(entities.FieldTimeSlot, "")
		s.ClearError(string(entities.FieldDate))
		s.ClearError(string(entities.FieldTimeSlot))
	}

	valid := validation.IsFieldValid(f, formatted)
	if valid && f != entities.FieldCPF {
		if _, err := u.fire(ctx, s, stagemachine.AcceptEvent(f)); err != nil {
			return pendingLookup{}, err
		}
	}
	if !valid && formatted != "" {
		s.SetError(string(f), fmt.Sprintf(MsgInvalidField, f.Label()))
	}

	switch f {
	case entities.FieldNeighborhood:
		return prepareUnits(s, formatted), nil
	case entities.FieldUnit:
		return prepareAvailability(s, formatted, previous), nil
	}
	return pendingLookup{}, nil
}

// prepareUnits marks the units lookup as loading for a new neighborhood. The
// same neighborhood is never fetched twice while loading or loaded.
func prepareUnits(s *entities.FormSession, neighborhood string) pendingLookup {
	neighborhood = strings.TrimSpace(neighborhood)
	generation := s.UnitsLookup.Generation + 1
	if neighborhood == "" {
		s.Units = nil
		s.UnitsLookup = entities.LookupState{Status: entities.LookupIdle, Generation: generation}
		return pendingLookup{}
	}
	if s.UnitsLookup.Key == neighborhood &&
		(s.UnitsLookup.Status == entities.LookupLoaded || s.UnitsLookup.Status == entities.LookupLoading) {
		return pendingLookup{}
	}
	s.Units = nil
	s.UnitsLookup = entities.LookupState{Status: entities.LookupLoading, Key: neighborhood, Generation: generation}
	return pendingLookup{lookup: LookupUnits, key: neighborhood, generation: generation}
}

// prepareAvailability clears the availability on every unit change and marks
// it as loading for the new unit.
func prepareAvailability(s *entities.FormSession, unit, previous string) pendingLookup {
	generation := s.AvailabilityLookup.Generation + 1
	if unit == "" {
		s.Availability = entities.Availability{}
		s.AvailabilityLookup = entities.LookupState{Status: entities.LookupIdle, Generation: generation}
		return pendingLookup{}
	}
	if unit == previous && s.AvailabilityLookup.Key == unit &&
		(s.AvailabilityLookup.Status == entities.LookupLoaded || s.AvailabilityLookup.Status == entities.LookupLoading) {
		return pendingLookup{}
	}
	s.Availability = entities.Availability{}
	s.AvailabilityLookup = entities.LookupState{Status: entities.LookupLoading, Key: unit, Generation: generation}
	return pendingLookup{lookup: LookupAvailability, key: unit, generation: generation}
}

// runLookup performs a dependent lookup outside any session write and applies
// its answer only if the session still waits for that generation and key.
func (u *FormUseCase) runLookup(ctx context.Context, id string, p pendingLookup) (entities.FormSession, error) {
	log := logrus.WithFields(logrus.Fields{"component": "[form][usecase]", "form_id": id, "lookup": p.lookup, "key": p.key})

	switch p.lookup {
	case LookupUnits:
		units, lookupErr := u.options.Units(ctx, p.key)
		if lookupErr != nil {
			log.WithError(lookupErr).Warn("units lookup failed")
		}
		return u.mutate(ctx, id, func(s *entities.FormSession) error {
			if s.UnitsLookup.Generation != p.generation || s.UnitsLookup.Key != p.key {
				u.discardStale(log, p.lookup)
				return errNoChange
			}
			applyUnits(s, units, lookupErr)
			return nil
		})
	case LookupAvailability:
		availability, lookupErr := u.options.Availability(ctx, p.key)
		if lookupErr != nil {
			log.WithError(lookupErr).Warn("availability lookup failed")
		}
		return u.mutate(ctx, id, func(s *entities.FormSession) error {
			if s.AvailabilityLookup.Generation != p.generation || s.AvailabilityLookup.Key != p.key {
				u.discardStale(log, p.lookup)
				return errNoChange
			}
			applyAvailability(s, availability, lookupErr)
			return nil
		})
	}
	return u.Get(ctx, id)
}

func (u *FormUseCase) discardStale(log *logrus.Entry, lookup string) {
	u.metrics.IncrementStale(lookup)
	log.Info("discarding superseded lookup response")
}

func applyUnits(s *entities.FormSession, units []entities.Unit, err error) {
	s.UnitsLookup.Message = ""
	switch {
	case err != nil:
		s.Units = nil
		s.UnitsLookup.Status = entities.LookupError
		s.UnitsLookup.Message = MsgUnitsFailed
	case len(units) == 0:
		s.Units = nil
		s.UnitsLookup.Status = entities.LookupLoaded
		s.UnitsLookup.Message = MsgNoUnits
	default:
		s.Units = units
		s.UnitsLookup.Status = entities.LookupLoaded
	}
}

func applyAvailability(s *entities.FormSession, availability entities.Availability, err error) {
	s.AvailabilityLookup.Message = ""
	if err != nil {
		s.Availability = entities.Availability{}
		s.AvailabilityLookup.Status = entities.LookupError
		s.AvailabilityLookup.Message = MsgAvailabilityFailed
		return
	}
	s.Availability = availability
	s.AvailabilityLookup.Status = entities.LookupLoaded
}

func (u *FormUseCase) LeaveField(ctx context.Context, id, field string) (entities.FormSession, error) {
	f, ok := entities.ParseField(field)
	if !ok {
		return entities.FormSession{}, ErrUnknownField
	}
	if f == entities.FieldCPF {
		return u.checkExistingBooking(ctx, id)
	}

	return u.mutate(ctx, id, func(s *entities.FormSession) error {
		if s.Submitted {
			return ErrFormAlreadySubmitted
		}
		if !s.IsEditable(f) {
			return ErrFieldLocked
		}
		if !validation.IsFieldValid(f, s.Data.Get(f)) {
			return errNoChange
		}
		moved, err := u.fire(ctx, s, stagemachine.AcceptEvent(f))
		if err != nil {
			return err
		}
		if !moved {
			return errNoChange
		}
		return nil
	})
}

// checkExistingBooking runs the manual CPF lookup. A CPF without booking
// unlocks the personal-data block; a CPF with booking shows its message and
// cannot be submitted.
func (u *FormUseCase) checkExistingBooking(ctx context.Context, id string) (entities.FormSession, error) {
	var cpf string
	s, err := u.mutate(ctx, id, func(s *entities.FormSession) error {
		cpf = ""
		if s.Submitted {
			return ErrFormAlreadySubmitted
		}
		s.Notice = nil
		if !validation.IsValidCPF(s.Data.CPF) {
			s.SetError(string(entities.FieldCPF), MsgInvalidCPF)
			return nil
		}
		cpf = s.Data.CPF
		return nil
	})
	if err != nil || cpf == "" {
		return s, err
	}

	log := logrus.WithFields(logrus.Fields{
		"component": "[form][usecase]",
		"form_id":   id,
		"lookup":    LookupExistingBooking,
		"cpf":       validation.MaskCPF(cpf),
	})
	booking, lookupErr := u.options.ExistingBooking(ctx, cpf)

	return u.mutate(ctx, id, func(s *entities.FormSession) error {
		if validation.Digits(s.Data.CPF) != validation.Digits(cpf) {
			u.discardStale(log, LookupExistingBooking)
			return errNoChange
		}
		var remote *interfaces.RemoteError
		switch {
		case lookupErr == nil && booking.Message != "":
			log.Info("cpf already has a booking")
			s.CPFCheck = entities.CPFCheck{CPF: validation.Digits(cpf), HasBooking: true}
			s.Notice = &entities.Notice{Message: booking.Message, Variant: entities.NoticeInfo}
			if booking.Name != "" {
				s.Data.Name = booking.Name
				s.ClearError(string(entities.FieldName))
			}
		case lookupErr == nil, errors.Is(lookupErr, interfaces.ErrNoExistingBooking):
			s.Notice = nil
			s.CPFCheck = entities.CPFCheck{CPF: validation.Digits(cpf)}
			s.ClearError(string(entities.FieldCPF))
			if _, err := u.fire(ctx, s, stagemachine.EventNoExistingBooking); err != nil {
				return err
			}
		case errors.As(lookupErr, &remote) && remote.Message != "":
			log.WithError(lookupErr).Warn("existing booking lookup failed")
			s.Notice = &entities.Notice{Message: remote.Message, Variant: entities.NoticeError}
		default:
			log.WithError(lookupErr).Warn("existing booking lookup failed")
			s.Notice = &entities.Notice{Message: MsgBookingLookupFailed, Variant: entities.NoticeError}
		}
		return nil
	})
}

func (u *FormUseCase) DismissNotice(ctx context.Context, id string) (entities.FormSession, error) {
	return u.mutate(ctx, id, func(s *entities.FormSession) error {
		if s.Notice == nil {
			return errNoChange
		}
		s.Notice = nil
		return nil
	})
}

func (u *FormUseCase) Reset(ctx context.Context, id string) (entities.FormSession, error) {
	return u.mutate(ctx, id, func(s *entities.FormSession) error {
		if _, err := u.fire(ctx, s, stagemachine.EventReset); err != nil {
			return err
		}
		s.Reset(u.now(), u.settings.SessionTTL)
		return nil
	})
}

func (u *FormUseCase) Submit(ctx context.Context, id, recaptcha string) (SubmitResult, error) {
	recaptcha = strings.TrimSpace(recaptcha)
	log := logrus.WithFields(logrus.Fields{"component": "[form][usecase]", "form_id": id})

	var (
		req     *entities.BookingRequest
		outcome SubmitOutcome
	)
	s, err := u.mutate(ctx, id, func(s *entities.FormSession) error {
		req, outcome = nil, ""
		if s.Submitted {
			return ErrFormAlreadySubmitted
		}
		if s.Stage != entities.StageConfirmation {
			return ErrFormNotReady
		}
		s.Notice = nil
		s.ClearError(ErrorKeyRecaptcha)

		failing := lo.Filter(entities.Fields, func(f entities.Field, _ int) bool {
			return !validation.IsFieldValid(f, s.Data.Get(f))
		})
		for _, f := range failing {
			s.SetError(string(f), fmt.Sprintf(MsgFieldRequired, f.Label()))
		}
		if recaptcha == "" {
			s.SetError(ErrorKeyRecaptcha, MsgRecaptchaRequired)
		}
		if len(failing) > 0 {
			outcome = SubmitInvalid
			_, err := u.fire(ctx, s, stagemachine.RewindEvent(failing[0].UnlockStage()))
			return err
		}
		if cpf := validation.Digits(s.Data.CPF); !s.CPFCheck.Clears(cpf) {
			outcome = SubmitInvalid
			s.SetError(string(entities.FieldCPF), lo.Ternary(s.CPFCheck.CPF == cpf, MsgCPFHasBooking, MsgCPFNotChecked))
			return nil
		}
		if recaptcha == "" {
			outcome = SubmitInvalid
			return nil
		}
		r := bookingRequestFrom(*s, recaptcha)
		req = &r
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}
	if req == nil {
		log.WithField("errors", len(s.Errors)).Info("submission blocked by validation")
		u.metrics.IncrementSubmission(string(outcome))
		return SubmitResult{Session: s, Outcome: outcome}, nil
	}

	log.WithField("cpf", validation.MaskCPF(req.CPF)).Info("submitting booking")
	confirmation, submitErr := u.gateway.CreateBooking(ctx, *req)

	s, err = u.mutate(ctx, id, func(s *entities.FormSession) error {
		var rejected *interfaces.SubmissionRejectedError
		switch {
		case submitErr == nil:
			outcome = SubmitAccepted
			msg := lo.Ternary(confirmation.Message != "", confirmation.Message, MsgBookingConfirmed)
			s.Notice = &entities.Notice{Message: msg, Variant: entities.NoticeSuccess}
			s.Submitted = true
			s.ResetAt = u.now().Add(u.settings.ResetDelay)
		case errors.As(submitErr, &rejected):
			outcome = SubmitRejected
			for key, msg := range rejected.Fields {
				if mapped, ok := remoteErrorKeys[key]; ok {
					key = mapped
				}
				s.SetError(key, msg)
			}
		default:
			outcome = SubmitFailed
			s.Notice = &entities.Notice{Message: MsgSubmitFailed, Variant: entities.NoticeError}
		}
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}
	if submitErr != nil {
		log.WithError(submitErr).WithField("outcome", outcome).Warn("booking not accepted")
	} else {
		log.Info("booking accepted")
	}
	u.metrics.IncrementSubmission(string(outcome))
	return SubmitResult{Session: s, Outcome: outcome}, nil
}

// bookingRequestFrom builds the submission payload; phones and CPF go as digits.
func bookingRequestFrom(s entities.FormSession, recaptcha string) entities.BookingRequest {
	cras := s.Data.Unit
	if unit, ok := lo.Find(s.Units, func(u entities.Unit) bool { return u.Code == s.Data.Unit }); ok {
		cras = unit.Name + " - " + unit.Neighborhood
	}
	return entities.BookingRequest{
		CPF:          validation.Digits(s.Data.CPF),
		Name:         strings.TrimSpace(s.Data.Name),
		MobilePhone:  validation.Digits(s.Data.MobilePhone),
		Landline:     validation.Digits(s.Data.Landline),
		Neighborhood: s.Data.Neighborhood,
		ServiceType:  s.Data.ServiceType,
		UnitCode:     s.Data.Unit,
		SlotID:       s.Data.TimeSlot,
		Recaptcha:    recaptcha,
		UnitAddress:  cras,
	}
}

// fire applies a stage event to the session; disallowed events leave it as is.
func (u *FormUseCase) fire(ctx context.Context, s *entities.FormSession, event string) (bool, error) {
	m := stagemachine.New(s.Stage)
	moved, err := m.Fire(ctx, event)
	if err != nil || !moved {
		return false, err
	}
	s.Stage = m.Current()
	u.metrics.IncrementTransition(event)
	return true, nil
}

// mutate loads the session, applies fn and writes it back with a conditional
// write, retrying on version conflicts. A submitted session past its reset
// time is reset before fn runs. fn may run more than once.
func (u *FormUseCase) mutate(ctx context.Context, id string, fn func(*entities.FormSession) error) (entities.FormSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FormSession{}, ErrInvalidFormID
	}

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		s, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.FormSession{}, err
		}
		now := u.now()
		if s.ID == "" || s.Expired(now) {
			return entities.FormSession{}, ErrFormNotFound
		}

		changed := false
		if s.ResetDue(now) {
			s.Reset(now, u.settings.SessionTTL)
			changed = true
		}

		if err := fn(&s); err != nil {
			if !errors.Is(err, errNoChange) {
				return entities.FormSession{}, err
			}
			if !changed {
				return s, nil
			}
		}

		s.Touch(now, u.settings.SessionTTL)
		saved, err := u.repo.Update(ctx, s)
		if errors.Is(err, interfaces.ErrFormSessionConflict) {
			logrus.WithFields(logrus.Fields{"component": "[form][usecase]", "form_id": id, "attempt": attempt}).
				Debug("session write conflict, retrying")
			continue
		}
		if err != nil {
			return entities.FormSession{}, err
		}
		return saved, nil
	}
	return entities.FormSession{}, interfaces.ErrFormSessionConflict
}
