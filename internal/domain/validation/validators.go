package validation

import (
	"regexp"
	"strings"

	"agendamento_cras/internal/domain/entities"
)

// AreaCodeRio is the only phone area code accepted by the form.
const AreaCodeRio = "21"

var (
	nonDigits   = regexp.MustCompile(`\D`)
	// whitespace as browsers see it: Unicode space separators included
	namePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\p{Zs}\t\n\v\f\r\x{2028}\x{2029}\x{feff}]+$`)
)

// Digits strips every non-digit character.
func Digits(value string) string {
	return nonDigits.ReplaceAllString(value, "")
}

// IsValidCPF checks length, repeated digits and both check digits.
func IsValidCPF(value string) bool {
	digits := Digits(value)
	if len(digits) != 11 {
		return false
	}
	if allSameDigit(digits) {
		return false
	}
	if cpfCheckDigit(digits[:9], 10) != int(digits[9]-'0') {
		return false
	}
	return cpfCheckDigit(digits[:10], 11) == int(digits[10]-'0')
}

// cpfCheckDigit computes one CPF check digit with weights firstWeight..2.
func cpfCheckDigit(digits string, firstWeight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (firstWeight - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		return 0
	}
	return remainder
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// IsValidName accepts letters (accented Latin included) and spaces, three
// characters minimum after trimming.
func IsValidName(value string) bool {
	trimmed := strings.TrimSpace(value)
	if len([]rune(trimmed)) < 3 {
		return false
	}
	return namePattern.MatchString(trimmed)
}

// IsValidPhone accepts 10 or 11 digit numbers from area code 21. An optional
// phone may be left blank.
func IsValidPhone(value string, required bool) bool {
	if !required && strings.TrimSpace(value) == "" {
		return true
	}
	digits := Digits(value)
	if !strings.HasPrefix(digits, AreaCodeRio) {
		return false
	}
	return len(digits) == 10 || len(digits) == 11
}

// IsFieldValid validates a raw value for the given field.
func IsFieldValid(field entities.Field, value string) bool {
	switch field {
	case entities.FieldCPF:
		return IsValidCPF(value)
	case entities.FieldName:
		return IsValidName(value)
	case entities.FieldMobilePhone:
		return IsValidPhone(value, true)
	case entities.FieldLandline:
		return IsValidPhone(value, false)
	case entities.FieldServiceType,
		entities.FieldNeighborhood,
		entities.FieldUnit,
		entities.FieldDate,
		entities.FieldTimeSlot:
		return value != ""
	default:
		return true
	}
}
