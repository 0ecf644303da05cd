package response

import (
	"strconv"
	"time"

	"agendamento_cras/internal/domain/entities"
	"agendamento_cras/internal/domain/validation"

	"github.com/samber/lo"
)

const (
	MsgAddressUnavailable = "Endereço não disponível"
	MsgNoSlotsForDate     = "Nenhum horário disponível para esta data."
)

type NoticeResponse struct {
	Message string `json:"message"`
	Variant string `json:"variant"`
}

type UnitResponse struct {
	Code         string `json:"codigo"`
	Name         string `json:"nome"`
	Neighborhood string `json:"bairro"`
}

type UnitsResponse struct {
	Status  string         `json:"status"`
	Items   []UnitResponse `json:"items"`
	Message string         `json:"message,omitempty"`
}

type DateOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SlotResponse struct {
	ID   int    `json:"id"`
	Date string `json:"data"`
	Time string `json:"hora"`
}

type AvailabilityResponse struct {
	Status       string               `json:"status"`
	Dates        []DateOptionResponse `json:"dates"`
	Slots        []SlotResponse       `json:"slots"`
	SlotsMessage string               `json:"slots_message,omitempty"`
	Message      string               `json:"message,omitempty"`
}

// SelectionResponse summarizes the booking choices for the confirmation step.
type SelectionResponse struct {
	UnitName    string `json:"unit_name,omitempty"`
	UnitAddress string `json:"unit_address,omitempty"`
	DateLabel   string `json:"date_label,omitempty"`
	TimeLabel   string `json:"time_label,omitempty"`
}

type FormStateResponse struct {
	FormID        string               `json:"form_id"`
	Stage         int                  `json:"stage"`
	StageName     string               `json:"stage_name"`
	Fields        entities.FormData    `json:"fields"`
	VisibleFields []string             `json:"visible_fields"`
	Errors        map[string]string    `json:"errors"`
	Notice        *NoticeResponse      `json:"notice,omitempty"`
	Units         UnitsResponse        `json:"units"`
	Availability  AvailabilityResponse `json:"availability"`
	Selection     SelectionResponse    `json:"selection"`
	Submitted     bool                 `json:"submitted"`
	ResetAt       *time.Time           `json:"reset_at,omitempty"`
	UpdatedAt     time.Time            `json:"updated_at"`
	ExpiresAt     time.Time            `json:"expires_at"`
}

type SubmitResponse struct {
	Outcome string            `json:"outcome"`
	Form    FormStateResponse `json:"form"`
}

func FromFormSession(s entities.FormSession) FormStateResponse {
	res := FormStateResponse{
		FormID:    s.ID,
		Stage:     int(s.Stage),
		StageName: s.Stage.String(),
		Fields:    s.Data,
		VisibleFields: lo.Map(s.VisibleFields(), func(f entities.Field, _ int) string {
			return string(f)
		}),
		Errors:       map[string]string{},
		Units:        fromUnits(s),
		Availability: fromAvailability(s),
		Selection:    fromSelection(s),
		Submitted:    s.Submitted,
		UpdatedAt:    s.UpdatedAt,
		ExpiresAt:    s.ExpiresAt,
	}
	for k, v := range s.Errors {
		res.Errors[k] = v
	}
	if s.Notice != nil {
		res.Notice = &NoticeResponse{Message: s.Notice.Message, Variant: string(s.Notice.Variant)}
	}
	if !s.ResetAt.IsZero() {
		resetAt := s.ResetAt
		res.ResetAt = &resetAt
	}
	return res
}

func fromUnits(s entities.FormSession) UnitsResponse {
	return UnitsResponse{
		Status: string(lookupStatus(s.UnitsLookup)),
		Items: lo.Map(s.Units, func(u entities.Unit, _ int) UnitResponse {
			return UnitResponse{Code: u.Code, Name: u.Name, Neighborhood: u.Neighborhood}
		}),
		Message: s.UnitsLookup.Message,
	}
}

func fromAvailability(s entities.FormSession) AvailabilityResponse {
	res := AvailabilityResponse{
		Status: string(lookupStatus(s.AvailabilityLookup)),
		Dates: lo.Map(s.Availability.Dates, func(d string, _ int) DateOptionResponse {
			return DateOptionResponse{Value: d, Label: validation.FormatDateShort(d)}
		}),
		Slots:   []SlotResponse{},
		Message: s.AvailabilityLookup.Message,
	}
	if s.Data.Date == "" {
		return res
	}
	res.Slots = lo.Map(s.Availability.SlotsFor(s.Data.Date), func(sl entities.Slot, _ int) SlotResponse {
		return SlotResponse{ID: sl.ID, Date: sl.Date, Time: sl.Time}
	})
	if len(res.Slots) == 0 {
		res.SlotsMessage = MsgNoSlotsForDate
	}
	return res
}

func fromSelection(s entities.FormSession) SelectionResponse {
	var sel SelectionResponse
	if s.Data.Unit != "" {
		sel.UnitAddress = MsgAddressUnavailable
		if unit, ok := lo.Find(s.Units, func(u entities.Unit) bool { return u.Code == s.Data.Unit }); ok {
			sel.UnitName = unit.Name
			if unit.Neighborhood != "" {
				sel.UnitAddress = unit.Neighborhood
			}
		}
	}
	sel.DateLabel = validation.FormatDateLong(s.Data.Date)
	if s.Data.TimeSlot != "" {
		for _, sl := range s.Availability.SlotsFor(s.Data.Date) {
			if strconv.Itoa(sl.ID) == s.Data.TimeSlot {
				sel.TimeLabel = sl.Time
				break
			}
		}
	}
	return sel
}

func lookupStatus(l entities.LookupState) entities.LookupStatus {
	if l.Status == "" {
		return entities.LookupIdle
	}
	return l.Status
}
