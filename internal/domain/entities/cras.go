package entities

// Unit is a CRAS service location. The scheduling API returns units for a
// neighborhood; Neighborhood doubles as the address shown to the citizen.
type Unit struct {
	Code         string `json:"codigo"`
	Name         string `json:"nome"`
	Neighborhood string `json:"bairro"`
}

// Slot is one bookable time on a given date.
type Slot struct {
	ID   int    `json:"id"`
	Date string `json:"data"`
	Time string `json:"hora"`
}

// Availability groups the bookable slots of a unit by date.
//
// Dates keeps the order returned by the scheduling API; Slots is keyed by the
// same date strings (YYYY-MM-DD).
type Availability struct {
	Dates []string          `json:"datas"`
	Slots map[string][]Slot `json:"vagas"`
}

func (a Availability) IsEmpty() bool {
	return len(a.Dates) == 0 && len(a.Slots) == 0
}

// SlotsFor returns the slots of a date, or nil when the date has none.
func (a Availability) SlotsFor(date string) []Slot {
	if a.Slots == nil {
		return nil
	}
	return a.Slots[date]
}

// ServiceType is an option of the "Tipo de Atendimento" selector.
type ServiceType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
