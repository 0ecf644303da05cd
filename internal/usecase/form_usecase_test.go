package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"agendamento_cras/internal/adapter/persistence/repository"
	"agendamento_cras/internal/domain/entities"
	"agendamento_cras/internal/usecase/interfaces"
	mock_interfaces "agendamento_cras/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validCPF = "52998224725"

var (
	centroUnits = []entities.Unit{
		{Code: "1001", Name: "CRAS Centro", Neighborhood: "Centro"},
	}
	tijucaUnits = []entities.Unit{
		{Code: "2001", Name: "CRAS Tijuca", Neighborhood: "Tijuca"},
	}
	unitAvailability = entities.Availability{
		Dates: []string{"2025-08-12"},
		Slots: map[string][]entities.Slot{
			"2025-08-12": {{ID: 12, Date: "2025-08-12", Time: "08:00"}},
		},
	}
)

type formFixture struct {
	uc      *FormUseCase
	gateway *mock_interfaces.MockISchedulingGateway
	repo    *repository.FormSessionMemoryRepository
	now     time.Time
}

func newFormFixture(t *testing.T) *formFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock_interfaces.NewMockISchedulingGateway(ctrl)
	repo := repository.NewFormSessionMemoryRepository(time.Hour)
	t.Cleanup(repo.Close)

	f := &formFixture{gateway: gw, repo: repo, now: time.Date(2025, 8, 11, 9, 0, 0, 0, time.UTC)}
	f.uc = NewFormUseCase(repo, gw, NewOptionsProvider(gw, nil, OptionsSettings{}, nil), FormSettings{
		SessionTTL: 30 * time.Minute,
		ResetDelay: 5 * time.Second,
		Now:        func() time.Time { return f.now },
	}, nil)
	return f
}

// seed stores a session shaped by edit and returns its id.
func (f *formFixture) seed(t *testing.T, edit func(s *entities.FormSession)) string {
	t.Helper()
	s := entities.NewFormSession("form-seeded", f.now, 30*time.Minute)
	edit(&s)
	_, err := f.repo.Create(context.Background(), s)
	require.NoError(t, err)
	return s.ID
}

// atNeighborhood starts a form and clears the CPF lookup (404).
func (f *formFixture) atNeighborhood(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	s, err := f.uc.Start(ctx)
	require.NoError(t, err)

	_, err = f.uc.ChangeField(ctx, s.ID, "cpf", validCPF)
	require.NoError(t, err)

	f.gateway.EXPECT().GetExistingBooking(gomock.Any(), validCPF).Return(entities.ExistingBooking{}, interfaces.ErrNoExistingBooking)
	s, err = f.uc.LeaveField(ctx, s.ID, "cpf")
	require.NoError(t, err)
	require.Equal(t, entities.StageNeighborhood, s.Stage)
	return s.ID
}

// atConfirmation fills every field with valid values.
func (f *formFixture) atConfirmation(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	id := f.atNeighborhood(t)

	for _, kv := range [][2]string{
		{"nome", "Maria da Silva"},
		{"celular", "21999998888"},
		{"tipo", "Criação"},
	} {
		_, err := f.uc.ChangeField(ctx, id, kv[0], kv[1])
		require.NoError(t, err)
	}

	f.gateway.EXPECT().ListUnits(gomock.Any(), "Centro").Return(centroUnits, nil)
	_, err := f.uc.ChangeField(ctx, id, "bairro", "Centro")
	require.NoError(t, err)

	f.gateway.EXPECT().GetAvailability(gomock.Any(), "1001").Return(unitAvailability, nil)
	_, err = f.uc.ChangeField(ctx, id, "unidade", "1001")
	require.NoError(t, err)

	_, err = f.uc.ChangeField(ctx, id, "data", "2025-08-12")
	require.NoError(t, err)
	s, err := f.uc.ChangeField(ctx, id, "horario", "12")
	require.NoError(t, err)
	require.Equal(t, entities.StageConfirmation, s.Stage)
	return id
}

func TestFormUseCase_Start(t *testing.T) {
	f := newFormFixture(t)

	s, err := f.uc.Start(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, entities.StageCPF, s.Stage)
	assert.Equal(t, int64(1), s.Version)
	assert.Equal(t, f.now.Add(30*time.Minute), s.ExpiresAt)
}

func TestFormUseCase_Get(t *testing.T) {
	f := newFormFixture(t)
	ctx := context.Background()

	t.Run("empty id", func(t *testing.T) {
		_, err := f.uc.Get(ctx, "  ")
		assert.ErrorIs(t, err, ErrInvalidFormID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.uc.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrFormNotFound)
	})

	t.Run("expired session", func(t *testing.T) {
		s, err := f.uc.Start(ctx)
		require.NoError(t, err)

		f.now = f.now.Add(31 * time.Minute)
		_, err = f.uc.Get(ctx, s.ID)
		assert.ErrorIs(t, err, ErrFormNotFound)
	})
}

func TestFormUseCase_ChangeField(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown field", func(t *testing.T) {
		f := newFormFixture(t)
		s, _ := f.uc.Start(ctx)

		_, err := f.uc.ChangeField(ctx, s.ID, "email", "x")
		assert.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("locked field", func(t *testing.T) {
		f := newFormFixture(t)
		s, _ := f.uc.Start(ctx)

		_, err := f.uc.ChangeField(ctx, s.ID, "nome", "Maria")
		assert.ErrorIs(t, err, ErrFieldLocked)
	})

	t.Run("cpf is formatted and never advances", func(t *testing.T) {
		f := newFormFixture(t)
		s, _ := f.uc.Start(ctx)

		s, err := f.uc.ChangeField(ctx, s.ID, "cpf", validCPF)
		require.NoError(t, err)
		assert.Equal(t, "529.982.247-25", s.Data.CPF)
		assert.Equal(t, entities.StageCPF, s.Stage)
		assert.Empty(t, s.Errors)
	})

	t.Run("invalid non-empty value gets an error", func(t *testing.T) {
		f := newFormFixture(t)
		s, _ := f.uc.Start(ctx)

		s, err := f.uc.ChangeField(ctx, s.ID, "cpf", "5299")
		require.NoError(t, err)
		assert.Equal(t, "O campo CPF está inválido.", s.Errors["cpf"])

		s, err = f.uc.ChangeField(ctx, s.ID, "cpf", "")
		require.NoError(t, err)
		_, hasErr := s.Errors["cpf"]
		assert.False(t, hasErr)
	})

	t.Run("phone is formatted and advances", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.seed(t, func(s *entities.FormSession) { s.Stage = entities.StageMobilePhone })

		s, err := f.uc.ChangeField(ctx, id, "celular", "21999998888")
		require.NoError(t, err)
		assert.Equal(t, "(21) 99999-8888", s.Data.MobilePhone)
		assert.Equal(t, entities.StageLandline, s.Stage)
	})

	t.Run("phone from another area code is rejected", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.seed(t, func(s *entities.FormSession) { s.Stage = entities.StageMobilePhone })

		s, err := f.uc.ChangeField(ctx, id, "celular", "11999998888")
		require.NoError(t, err)
		assert.Equal(t, "O campo Celular está inválido.", s.Errors["celular"])
		assert.Equal(t, entities.StageMobilePhone, s.Stage)
	})

	t.Run("valid value below the boundary keeps stage and other errors", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.seed(t, func(s *entities.FormSession) {
			s.Stage = entities.StageUnit
			s.SetError("celular", "O campo Celular está inválido.")
		})

		s, err := f.uc.ChangeField(ctx, id, "nome", "Maria")
		require.NoError(t, err)
		assert.Equal(t, entities.StageUnit, s.Stage)
		assert.Equal(t, "O campo Celular está inválido.", s.Errors["celular"])
	})

	t.Run("submitted form is read only", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.seed(t, func(s *entities.FormSession) {
			s.Submitted = true
			s.ResetAt = f.now.Add(5 * time.Second)
		})

		_, err := f.uc.ChangeField(ctx, id, "cpf", validCPF)
		assert.ErrorIs(t, err, ErrFormAlreadySubmitted)
	})
}

func TestFormUseCase_LeaveCPF(t *testing.T) {
	ctx := context.Background()

	start := func(t *testing.T, f *formFixture, cpf string) string {
		t.Helper()
		s, err := f.uc.Start(ctx)
		require.NoError(t, err)
		_, err = f.uc.ChangeField(ctx, s.ID, "cpf", cpf)
		require.NoError(t, err)
		return s.ID
	}

	t.Run("invalid cpf skips the lookup", func(t *testing.T) {
		f := newFormFixture(t)
		id := start(t, f, "52998224726")

		s, err := f.uc.LeaveField(ctx, id, "cpf")
		require.NoError(t, err)
		assert.Equal(t, "CPF inválido", s.Errors["cpf"])
		assert.Equal(t, entities.StageCPF, s.Stage)
	})

	t.Run("not found unlocks the personal data block", func(t *testing.T) {
		f := newFormFixture(t)
		id := start(t, f, validCPF)
		f.gateway.EXPECT().GetExistingBooking(gomock.Any(), validCPF).Return(entities.ExistingBooking{}, interfaces.ErrNoExistingBooking)

		s, err := f.uc.LeaveField(ctx, id, "cpf")
		require.NoError(t, err)
		assert.Equal(t, entities.StageNeighborhood, s.Stage)
		assert.Nil(t, s.Notice)
	})

	t.Run("existing booking shows its message", func(t *testing.T) {
		f := newFormFixture(t)
		id := start(t, f, validCPF)
		f.gateway.EXPECT().GetExistingBooking(gomock.Any(), validCPF).
			Return(entities.ExistingBooking{Message: "Você já possui agendamento.", Name: "Maria"}, nil)

		s, err := f.uc.LeaveField(ctx, id, "cpf")
		require.NoError(t, err)
		assert.Equal(t, entities.StageCPF, s.Stage)
		require.NotNil(t, s.Notice)
		assert.Equal(t, entities.NoticeInfo, s.Notice.Variant)
		assert.Equal(t, "Você já possui agendamento.", s.Notice.Message)
		assert.Equal(t, "Maria", s.Data.Name)
	})

	t.Run("success without message counts as no booking", func(t *testing.T) {
		f := newFormFixture(t)
		id := start(t, f, validCPF)
		f.gateway.EXPECT().GetExistingBooking(gomock.Any(), validCPF).Return(entities.ExistingBooking{}, nil)

		s, err := f.uc.LeaveField(ctx, id, "cpf")
		require.NoError(t, err)
		assert.Equal(t, entities.StageNeighborhood, s.Stage)
	})

	t.Run("remote error message is shown", func(t *testing.T) {
		f := newFormFixture(t)
		id := start(t, f, validCPF)
		f.gateway.EXPECT().GetExistingBooking(gomock.Any(), validCPF).
			Return(entities.ExistingBooking{}, &interfaces.RemoteError{StatusCode: 400, Message: "CPF bloqueado"})

		s, err := f.uc.LeaveField(ctx, id, "cpf")
		require.NoError(t, err)
		require.NotNil(t, s.Notice)
		assert.Equal(t, entities.NoticeError, s.Notice.Variant)
		assert.Equal(t, "CPF bloqueado", s.Notice.Message)
		assert.Equal(t, entities.StageCPF, s.Stage)
	})

	t.Run("network failure uses the default message", func(t *testing.T) {
		f := newFormFixture(t)
		id := start(t, f, validCPF)
		f.gateway.EXPECT().GetExistingBooking(gomock.Any(), validCPF).
			Return(entities.ExistingBooking{}, errors.New("dial tcp: timeout"))

		s, err := f.uc.LeaveField(ctx, id, "cpf")
		require.NoError(t, err)
		require.NotNil(t, s.Notice)
		assert.Equal(t, MsgBookingLookupFailed, s.Notice.Message)
	})

	t.Run("blur clears a previous notice", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.seed(t, func(s *entities.FormSession) {
			s.Data.CPF = "123"
			s.Notice = &entities.Notice{Message: "Você já possui agendamento.", Variant: entities.NoticeInfo}
		})

		s, err := f.uc.LeaveField(ctx, id, "cpf")
		require.NoError(t, err)
		assert.Nil(t, s.Notice)
		assert.Equal(t, MsgInvalidCPF, s.Errors["cpf"])
	})
}

func TestFormUseCase_LeaveField(t *testing.T) {
	ctx := context.Background()

	t.Run("empty landline is accepted on blur", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.seed(t, func(s *entities.FormSession) { s.Stage = entities.StageLandline })

		s, err := f.uc.LeaveField(ctx, id, "telefone")
		require.NoError(t, err)
		assert.Equal(t, entities.StageServiceType, s.Stage)
	})

	t.Run("invalid value does not advance", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.seed(t, func(s *entities.FormSession) {
			s.Stage = entities.StageMobilePhone
			s.Data.MobilePhone = "2199"
		})

		s, err := f.uc.LeaveField(ctx, id, "celular")
		require.NoError(t, err)
		assert.Equal(t, entities.StageMobilePhone, s.Stage)
		assert.Equal(t, int64(1), s.Version)
	})

	t.Run("locked field", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.seed(t, func(s *entities.FormSession) {})

		_, err := f.uc.LeaveField(ctx, id, "horario")
		assert.ErrorIs(t, err, ErrFieldLocked)
	})
}

func TestFormUseCase_UnitsLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("one lookup per distinct neighborhood", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atNeighborhood(t)
		f.gateway.EXPECT().ListUnits(gomock.Any(), "Centro").Return(centroUnits, nil).Times(1)

		s, err := f.uc.ChangeField(ctx, id, "bairro", "Centro")
		require.NoError(t, err)
		assert.Equal(t, entities.LookupLoaded, s.UnitsLookup.Status)
		assert.Equal(t, centroUnits, s.Units)
		assert.Equal(t, entities.StageUnit, s.Stage)

		s, err = f.uc.ChangeField(ctx, id, "bairro", "Centro")
		require.NoError(t, err)
		assert.Equal(t, centroUnits, s.Units)
	})

	t.Run("empty result", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atNeighborhood(t)
		f.gateway.EXPECT().ListUnits(gomock.Any(), "Acari").Return(nil, nil)

		s, err := f.uc.ChangeField(ctx, id, "bairro", "Acari")
		require.NoError(t, err)
		assert.Equal(t, entities.LookupLoaded, s.UnitsLookup.Status)
		assert.Equal(t, MsgNoUnits, s.UnitsLookup.Message)
		assert.Empty(t, s.Units)
	})

	t.Run("failure", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atNeighborhood(t)
		f.gateway.EXPECT().ListUnits(gomock.Any(), "Centro").Return(nil, &interfaces.RemoteError{StatusCode: 500})

		s, err := f.uc.ChangeField(ctx, id, "bairro", "Centro")
		require.NoError(t, err)
		assert.Equal(t, entities.LookupError, s.UnitsLookup.Status)
		assert.Equal(t, MsgUnitsFailed, s.UnitsLookup.Message)
		assert.Empty(t, s.Units)
	})

	t.Run("failed neighborhood can be retried", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atNeighborhood(t)
		gomock.InOrder(
			f.gateway.EXPECT().ListUnits(gomock.Any(), "Centro").Return(nil, errors.New("boom")),
			f.gateway.EXPECT().ListUnits(gomock.Any(), "Centro").Return(centroUnits, nil),
		)

		_, err := f.uc.ChangeField(ctx, id, "bairro", "Centro")
		require.NoError(t, err)
		s, err := f.uc.ChangeField(ctx, id, "bairro", "Centro")
		require.NoError(t, err)
		assert.Equal(t, centroUnits, s.Units)
	})

	t.Run("clearing the neighborhood clears the units", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atNeighborhood(t)
		f.gateway.EXPECT().ListUnits(gomock.Any(), "Centro").Return(centroUnits, nil)

		_, err := f.uc.ChangeField(ctx, id, "bairro", "Centro")
		require.NoError(t, err)
		s, err := f.uc.ChangeField(ctx, id, "bairro", "")
		require.NoError(t, err)
		assert.Equal(t, entities.LookupIdle, s.UnitsLookup.Status)
		assert.Empty(t, s.Units)
	})

	t.Run("superseded response is discarded", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atNeighborhood(t)

		f.gateway.EXPECT().ListUnits(gomock.Any(), "Centro").DoAndReturn(func(ctx context.Context, _ string) ([]entities.Unit, error) {
			// the citizen picks another neighborhood before this answer arrives
			_, err := f.uc.ChangeField(ctx, id, "bairro", "Tijuca")
			require.NoError(t, err)
			return centroUnits, nil
		})
		f.gateway.EXPECT().ListUnits(gomock.Any(), "Tijuca").Return(tijucaUnits, nil)

		s, err := f.uc.ChangeField(ctx, id, "bairro", "Centro")
		require.NoError(t, err)
		assert.Equal(t, "Tijuca", s.Data.Neighborhood)
		assert.Equal(t, "Tijuca", s.UnitsLookup.Key)
		assert.Equal(t, tijucaUnits, s.Units)
	})
}

func TestFormUseCase_AvailabilityLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("unit change resets date and time slot", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atConfirmation(t)
		f.gateway.EXPECT().GetAvailability(gomock.Any(), "1002").Return(entities.Availability{}, nil)

		s, err := f.uc.ChangeField(ctx, id, "unidade", "1002")
		require.NoError(t, err)
		assert.Equal(t, "", s.Data.Date)
		assert.Equal(t, "", s.Data.TimeSlot)
		assert.Equal(t, entities.LookupLoaded, s.AvailabilityLookup.Status)
		assert.True(t, s.Availability.IsEmpty())
	})

	t.Run("same unit keeps the selection", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atConfirmation(t)

		s, err := f.uc.ChangeField(ctx, id, "unidade", "1001")
		require.NoError(t, err)
		assert.Equal(t, "2025-08-12", s.Data.Date)
		assert.Equal(t, "12", s.Data.TimeSlot)
	})

	t.Run("failure", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.seed(t, func(s *entities.FormSession) { s.Stage = entities.StageUnit })
		f.gateway.EXPECT().GetAvailability(gomock.Any(), "1001").Return(entities.Availability{}, errors.New("boom"))

		s, err := f.uc.ChangeField(ctx, id, "unidade", "1001")
		require.NoError(t, err)
		assert.Equal(t, entities.LookupError, s.AvailabilityLookup.Status)
		assert.Equal(t, MsgAvailabilityFailed, s.AvailabilityLookup.Message)
		assert.Equal(t, entities.StageDate, s.Stage)
	})
}

func TestFormUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("not ready", func(t *testing.T) {
		f := newFormFixture(t)
		s, _ := f.uc.Start(ctx)

		_, err := f.uc.Submit(ctx, s.ID, "token")
		assert.ErrorIs(t, err, ErrFormNotReady)
	})

	t.Run("missing token blocks without network call", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atConfirmation(t)

		res, err := f.uc.Submit(ctx, id, "  ")
		require.NoError(t, err)
		assert.Equal(t, SubmitInvalid, res.Outcome)
		assert.Equal(t, MsgRecaptchaRequired, res.Session.Errors[ErrorKeyRecaptcha])
		assert.Equal(t, entities.StageConfirmation, res.Session.Stage)
	})

	t.Run("invalid field rewinds to its stage", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atConfirmation(t)
		_, err := f.uc.ChangeField(ctx, id, "nome", "Al")
		require.NoError(t, err)

		res, err := f.uc.Submit(ctx, id, "")
		require.NoError(t, err)
		assert.Equal(t, SubmitInvalid, res.Outcome)
		assert.Equal(t, "Campo Nome Completo inválido ou obrigatório.", res.Session.Errors["nome"])
		assert.Equal(t, MsgRecaptchaRequired, res.Session.Errors[ErrorKeyRecaptcha])
		assert.Equal(t, entities.StageMobilePhone, res.Session.Stage)
	})

	t.Run("cpf with a booking is refused", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atConfirmation(t)
		_, err := f.uc.ChangeField(ctx, id, "cpf", "11144477735")
		require.NoError(t, err)
		f.gateway.EXPECT().GetExistingBooking(gomock.Any(), "11144477735").
			Return(entities.ExistingBooking{Message: "Agendamento já existente"}, nil)
		s, err := f.uc.LeaveField(ctx, id, "cpf")
		require.NoError(t, err)
		require.NotNil(t, s.Notice)
		assert.Equal(t, "Agendamento já existente", s.Notice.Message)

		res, err := f.uc.Submit(ctx, id, "token")
		require.NoError(t, err)
		assert.Equal(t, SubmitInvalid, res.Outcome)
		assert.Equal(t, MsgCPFHasBooking, res.Session.Errors["cpf"])
		assert.False(t, res.Session.Submitted)
	})

	t.Run("cpf changed after the lookup must be checked again", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atConfirmation(t)
		_, err := f.uc.ChangeField(ctx, id, "cpf", "11144477735")
		require.NoError(t, err)

		res, err := f.uc.Submit(ctx, id, "token")
		require.NoError(t, err)
		assert.Equal(t, SubmitInvalid, res.Outcome)
		assert.Equal(t, MsgCPFNotChecked, res.Session.Errors["cpf"])
		assert.Equal(t, entities.StageConfirmation, res.Session.Stage)

		f.gateway.EXPECT().GetExistingBooking(gomock.Any(), "11144477735").Return(entities.ExistingBooking{}, interfaces.ErrNoExistingBooking)
		s, err := f.uc.LeaveField(ctx, id, "cpf")
		require.NoError(t, err)
		assert.Empty(t, s.Errors["cpf"])

		f.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.BookingRequest) (entities.BookingConfirmation, error) {
				assert.Equal(t, "11144477735", req.CPF)
				return entities.BookingConfirmation{}, nil
			})
		res, err = f.uc.Submit(ctx, id, "token")
		require.NoError(t, err)
		assert.Equal(t, SubmitAccepted, res.Outcome)
	})

	t.Run("accepted then reset after the delay", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atConfirmation(t)
		f.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.BookingRequest) (entities.BookingConfirmation, error) {
				assert.Equal(t, validCPF, req.CPF)
				assert.Equal(t, "21999998888", req.MobilePhone)
				assert.Equal(t, "", req.Landline)
				assert.Equal(t, "1001", req.UnitCode)
				assert.Equal(t, "12", req.SlotID)
				assert.Equal(t, "CRAS Centro - Centro", req.UnitAddress)
				assert.Equal(t, "token", req.Recaptcha)
				return entities.BookingConfirmation{}, nil
			})

		res, err := f.uc.Submit(ctx, id, "token")
		require.NoError(t, err)
		assert.Equal(t, SubmitAccepted, res.Outcome)
		assert.True(t, res.Session.Submitted)
		require.NotNil(t, res.Session.Notice)
		assert.Equal(t, MsgBookingConfirmed, res.Session.Notice.Message)
		assert.Equal(t, entities.NoticeSuccess, res.Session.Notice.Variant)
		assert.Equal(t, f.now.Add(5*time.Second), res.Session.ResetAt)

		_, err = f.uc.Submit(ctx, id, "token")
		assert.ErrorIs(t, err, ErrFormAlreadySubmitted)

		f.now = f.now.Add(5 * time.Second)
		s, err := f.uc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, s.ID)
		assert.Equal(t, entities.StageCPF, s.Stage)
		assert.Equal(t, entities.FormData{}, s.Data)
		assert.False(t, s.Submitted)
		assert.Nil(t, s.Notice)
	})

	t.Run("remote message replaces the default confirmation", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atConfirmation(t)
		f.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(entities.BookingConfirmation{Message: "Agendado para 12/08 às 08:00"}, nil)

		res, err := f.uc.Submit(ctx, id, "token")
		require.NoError(t, err)
		assert.Equal(t, "Agendado para 12/08 às 08:00", res.Session.Notice.Message)
	})

	t.Run("rejected fields are mapped to form keys", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atConfirmation(t)
		f.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(entities.BookingConfirmation{},
			&interfaces.SubmissionRejectedError{Fields: map[string]string{
				"selhora": "Horário indisponível",
				"selcras": "Unidade fechada",
				"cpf":     "CPF já agendado",
			}})

		res, err := f.uc.Submit(ctx, id, "token")
		require.NoError(t, err)
		assert.Equal(t, SubmitRejected, res.Outcome)
		assert.Equal(t, "Horário indisponível", res.Session.Errors["horario"])
		assert.Equal(t, "Unidade fechada", res.Session.Errors["unidade"])
		assert.Equal(t, "CPF já agendado", res.Session.Errors["cpf"])
		assert.False(t, res.Session.Submitted)
	})

	t.Run("other failures keep the form usable", func(t *testing.T) {
		f := newFormFixture(t)
		id := f.atConfirmation(t)
		gomock.InOrder(
			f.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(entities.BookingConfirmation{}, errors.New("connection reset")),
			f.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(entities.BookingConfirmation{}, nil),
		)

		res, err := f.uc.Submit(ctx, id, "token")
		require.NoError(t, err)
		assert.Equal(t, SubmitFailed, res.Outcome)
		assert.Equal(t, MsgSubmitFailed, res.Session.Notice.Message)
		assert.Equal(t, entities.NoticeError, res.Session.Notice.Variant)

		res, err = f.uc.Submit(ctx, id, "token")
		require.NoError(t, err)
		assert.Equal(t, SubmitAccepted, res.Outcome)
	})
}

func TestFormUseCase_DismissNoticeAndReset(t *testing.T) {
	ctx := context.Background()
	f := newFormFixture(t)
	id := f.seed(t, func(s *entities.FormSession) {
		s.Stage = entities.StageDate
		s.Data.Name = "Maria"
		s.Notice = &entities.Notice{Message: "Erro", Variant: entities.NoticeError}
	})

	s, err := f.uc.DismissNotice(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, s.Notice)
	assert.Equal(t, entities.StageDate, s.Stage)

	s, err = f.uc.Reset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entities.StageCPF, s.Stage)
	assert.Equal(t, "", s.Data.Name)
}

func TestFormUseCase_RetriesOnVersionConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFormSessionRepository(ctrl)
	gw := mock_interfaces.NewMockISchedulingGateway(ctrl)
	now := time.Date(2025, 8, 11, 9, 0, 0, 0, time.UTC)
	uc := NewFormUseCase(repo, gw, NewOptionsProvider(gw, nil, OptionsSettings{}, nil), FormSettings{Now: func() time.Time { return now }}, nil)

	stored := entities.NewFormSession("f-1", now, time.Hour)
	stored.Version = 1
	stored.Notice = &entities.Notice{Message: "x", Variant: entities.NoticeInfo}

	t.Run("second attempt wins", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(stored, nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.FormSession{}, interfaces.ErrFormSessionConflict),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.FormSession) (entities.FormSession, error) {
				s.Version++
				return s, nil
			}),
		)

		s, err := uc.DismissNotice(context.Background(), "f-1")
		require.NoError(t, err)
		assert.Nil(t, s.Notice)
		assert.Equal(t, int64(2), s.Version)
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(stored, nil).Times(maxWriteAttempts)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.FormSession{}, interfaces.ErrFormSessionConflict).Times(maxWriteAttempts)

		_, err := uc.DismissNotice(context.Background(), "f-1")
		assert.ErrorIs(t, err, interfaces.ErrFormSessionConflict)
	})
}
