package scheduling

import (
	"strings"
	"time"

	"agendamento_cras/internal/domain/entities"
	"agendamento_cras/internal/domain/validation"
	"agendamento_cras/internal/usecase/interfaces"
)

// MockBookedCPF already has a booking in mock mode.
const MockBookedCPF = "11144477735"

var mockUnitFixtures = []entities.Unit{
	{Code: "1001", Name: "CRAS Centro", Neighborhood: "Centro"},
	{Code: "1002", Name: "CRAS Maria Tereza Vieira", Neighborhood: "Tijuca"},
	{Code: "1003", Name: "CRAS Copacabana", Neighborhood: "Copacabana"},
	{Code: "1004", Name: "CRAS Padre Guilherme Decaminada", Neighborhood: "Campo Grande"},
}

var mockHours = []string{"08:00", "09:30", "14:00"}

func mockExistingBooking(cpf string) (entities.ExistingBooking, error) {
	if validation.Digits(cpf) == MockBookedCPF {
		return entities.ExistingBooking{
			Message: "Já existe um agendamento para este CPF.",
			Name:    "Maria da Silva",
		}, nil
	}
	return entities.ExistingBooking{}, interfaces.ErrNoExistingBooking
}

func mockUnits(neighborhood string) []entities.Unit {
	var out []entities.Unit
	for _, u := range mockUnitFixtures {
		if strings.EqualFold(u.Neighborhood, strings.TrimSpace(neighborhood)) {
			out = append(out, u)
		}
	}
	return out
}

// mockAvailability offers the next three weekdays after now.
func mockAvailability(now time.Time) entities.Availability {
	a := entities.Availability{Slots: map[string][]entities.Slot{}}
	day := now.UTC().Truncate(24 * time.Hour)
	id := 1
	for len(a.Dates) < 3 {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		date := day.Format(time.DateOnly)
		a.Dates = append(a.Dates, date)
		for _, h := range mockHours {
			a.Slots[date] = append(a.Slots[date], entities.Slot{ID: id, Date: date, Time: h})
			id++
		}
	}
	return a
}
