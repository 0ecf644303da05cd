package entities

// ExistingBooking is returned by the scheduling API when the CPF already has a
// booking. A non-empty Message blocks a duplicate booking.
type ExistingBooking struct {
	Message string `json:"message"`
	Name    string `json:"nome"`
}

// BookingRequest is the payload sent to POST /agendamento.
//
// Wire mapping (multipart fields):
//   - cpf, celular, telefone: digits only
//   - selcras: unit code, selhora: slot id
//   - cras: "<unit name> - <unit address>"
type BookingRequest struct {
	CPF          string
	Name         string
	MobilePhone  string
	Landline     string
	Neighborhood string
	ServiceType  string
	UnitCode     string
	SlotID       string
	Recaptcha    string
	UnitAddress  string
}

// BookingConfirmation is the scheduling API answer to an accepted booking.
type BookingConfirmation struct {
	Message string `json:"message"`
}
