package validation

import (
	"fmt"
	"time"

	"agendamento_cras/internal/domain/entities"
)

// FormatCPF renders ###.###.###-## once 11 digits are present. Shorter input is
// reduced to its digits; longer input is returned unchanged.
func FormatCPF(value string) string {
	digits := Digits(value)
	if len(digits) > 11 {
		return value
	}
	if len(digits) < 11 {
		return digits
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}

// FormatPhone renders (##) #####-#### or (##) ####-####; any other length is
// returned unchanged.
func FormatPhone(value string) string {
	digits := Digits(value)
	switch len(digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:7], digits[7:11])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:6], digits[6:10])
	default:
		return value
	}
}

// FormatField applies the display mask of a field, if it has one.
func FormatField(field entities.Field, value string) string {
	switch field {
	case entities.FieldCPF:
		return FormatCPF(value)
	case entities.FieldMobilePhone, entities.FieldLandline:
		return FormatPhone(value)
	default:
		return value
	}
}

// MaskCPF hides the middle digits of a CPF for logs.
func MaskCPF(value string) string {
	digits := Digits(value)
	if len(digits) != 11 {
		return "***"
	}
	return fmt.Sprintf("%s.***.***-%s", digits[0:3], digits[9:11])
}

var weekdaysPtBR = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var monthsPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDateLong renders a YYYY-MM-DD date as "segunda-feira, 11 de agosto de 2025".
func FormatDateLong(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %d de %s de %d", weekdaysPtBR[t.Weekday()], t.Day(), monthsPtBR[t.Month()-1], t.Year())
}

// FormatDateShort renders a YYYY-MM-DD date as DD/MM, the label of a date button.
func FormatDateShort(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("02/01")
}
