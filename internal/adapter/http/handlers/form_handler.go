package handlers

import (
	"errors"
	"net/http"

	request "agendamento_cras/internal/adapter/http/dto/request"
	response "agendamento_cras/internal/adapter/http/dto/response"
	"agendamento_cras/internal/usecase"
	"agendamento_cras/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidFieldPayload  = pkg.NewDomainErrorSimple("INVALID_FIELD_INPUT", "Invalid field payload", http.StatusBadRequest)
	errInvalidSubmitPayload = pkg.NewDomainErrorSimple("INVALID_SUBMIT_INPUT", "Invalid submit payload", http.StatusBadRequest)
)

// FormHandler exposes the scheduling form controller over HTTP. Every request
// is one presentation event; every answer is the full form state.
type FormHandler struct {
	usecase usecase.IFormUseCase
}

func NewFormHandler(uc usecase.IFormUseCase) *FormHandler {
	return &FormHandler{usecase: uc}
}

// StartForm godoc
// @Summary      Start a scheduling form
// @Tags         forms
// @Produce      json
// @Success      201  {object}  response.FormStateResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /forms [post]
func (h *FormHandler) StartForm(c *gin.Context) {
	s, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromFormSession(s))
}

// GetForm godoc
// @Summary      Current form state
// @Tags         forms
// @Produce      json
// @Param        form_id  path  string  true  "Form ID"
// @Success      200  {object}  response.FormStateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /forms/{form_id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("form_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFormSession(s))
}

// ChangeField godoc
// @Summary      Change a field value
// @Description  Formats and validates the value, advances the stage and runs dependent lookups.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        form_id  path  string                      true  "Form ID"
// @Param        field    path  string                      true  "Field key (cpf, nome, celular, telefone, tipo, bairro, unidade, data, horario)"
// @Param        body     body  request.FieldChangeRequest  true  "New value"
// @Success      200  {object}  response.FormStateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /forms/{form_id}/fields/{field} [patch]
func (h *FormHandler) ChangeField(c *gin.Context) {
	var payload request.FieldChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.HasValue() {
		c.JSON(errInvalidFieldPayload.HTTPStatus, errInvalidFieldPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.ChangeField(c.Request.Context(), c.Param("form_id"), c.Param("field"), payload.ResolveValue())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFormSession(s))
}

// LeaveField godoc
// @Summary      Leave a field (blur)
// @Description  On cpf runs the existing-booking lookup; on other fields accepts a valid value.
// @Tags         forms
// @Produce      json
// @Param        form_id  path  string  true  "Form ID"
// @Param        field    path  string  true  "Field key"
// @Success      200  {object}  response.FormStateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /forms/{form_id}/fields/{field}/blur [post]
func (h *FormHandler) LeaveField(c *gin.Context) {
	s, err := h.usecase.LeaveField(c.Request.Context(), c.Param("form_id"), c.Param("field"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFormSession(s))
}

// DismissNotice godoc
// @Summary      Close the notice
// @Tags         forms
// @Produce      json
// @Param        form_id  path  string  true  "Form ID"
// @Success      200  {object}  response.FormStateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /forms/{form_id}/notice [delete]
func (h *FormHandler) DismissNotice(c *gin.Context) {
	s, err := h.usecase.DismissNotice(c.Request.Context(), c.Param("form_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFormSession(s))
}

// SubmitForm godoc
// @Summary      Submit the booking
// @Description  200 when accepted, 422 when blocked by validation or rejected by the scheduling API, 502 on any other failure.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        form_id  path  string                 true  "Form ID"
// @Param        body     body  request.SubmitRequest  true  "reCAPTCHA token"
// @Success      200  {object}  response.SubmitResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  response.SubmitResponse
// @Failure      502  {object}  response.SubmitResponse
// @Router       /forms/{form_id}/submit [post]
func (h *FormHandler) SubmitForm(c *gin.Context) {
	var payload request.SubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmitPayload.HTTPStatus, errInvalidSubmitPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Submit(c.Request.Context(), c.Param("form_id"), payload.ResolveToken())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(submitStatus(result.Outcome), response.SubmitResponse{
		Outcome: string(result.Outcome),
		Form:    response.FromFormSession(result.Session),
	})
}

// ResetForm godoc
// @Summary      Reset the form to its first stage
// @Tags         forms
// @Produce      json
// @Param        form_id  path  string  true  "Form ID"
// @Success      200  {object}  response.FormStateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /forms/{form_id}/reset [post]
func (h *FormHandler) ResetForm(c *gin.Context) {
	s, err := h.usecase.Reset(c.Request.Context(), c.Param("form_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFormSession(s))
}

func (h *FormHandler) fail(c *gin.Context, err error) {
	appErr := mapFormError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"component": "[form][handler]",
			"form_id":   c.Param("form_id"),
			"field":     c.Param("field"),
		}).WithError(err).Error("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func submitStatus(outcome usecase.SubmitOutcome) int {
	switch outcome {
	case usecase.SubmitAccepted:
		return http.StatusOK
	case usecase.SubmitInvalid, usecase.SubmitRejected:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func mapFormError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFormID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownField):
		return pkg.NewDomainErrorSimple("UNKNOWN_FIELD", "Unknown form field", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFormNotFound):
		return pkg.NewDomainErrorSimple("FORM_NOT_FOUND", "Form not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFieldLocked):
		return pkg.NewDomainErrorSimple("FIELD_LOCKED", "Field not available at the current stage", http.StatusConflict)
	case errors.Is(err, usecase.ErrFormNotReady):
		return pkg.NewDomainErrorSimple("FORM_NOT_READY", "Form not ready for submission", http.StatusConflict)
	case errors.Is(err, usecase.ErrFormAlreadySubmitted):
		return pkg.NewDomainErrorSimple("FORM_ALREADY_SUBMITTED", "Form already submitted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
