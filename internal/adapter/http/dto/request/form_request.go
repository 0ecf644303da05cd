package request

import "strings"

// FieldChangeRequest carries the new raw value of a field. Value is a pointer
// so that an explicit empty string (clearing the field) is told apart from a
// missing value.
type FieldChangeRequest struct {
	Value *string `json:"value"`
}

func (r FieldChangeRequest) HasValue() bool {
	return r.Value != nil
}

func (r FieldChangeRequest) ResolveValue() string {
	if r.Value == nil {
		return ""
	}
	return *r.Value
}

// SubmitRequest carries the human-verification token.
type SubmitRequest struct {
	Recaptcha string `json:"recaptcha"`
}

func (r SubmitRequest) ResolveToken() string {
	return strings.TrimSpace(r.Recaptcha)
}
