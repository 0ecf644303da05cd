package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agendamento_cras/internal/domain/entities"
	"agendamento_cras/internal/domain/validation"
	"agendamento_cras/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var ErrGatewayNotConfigured = errors.New("scheduling gateway not configured")

var tracer = otel.Tracer("agendamento_cras.internal.infrastructure.scheduling")

const (
	maxBodyBytes     = 1 << 20
	defaultTimeout   = 5 * time.Second
	defaultRetryWait = 200 * time.Millisecond
	lookupRetries    = 1
)

// Settings configures the scheduling API client.
type Settings struct {
	BaseURL string
	Timeout time.Duration
	// Mock answers every call with local fixtures.
	Mock bool
	// RetryWait is the pause before the single retry of a units or
	// availability lookup.
	RetryWait time.Duration
}

// SchedulingAPIGateway talks to the CRAS scheduling API over HTTP.
//
// Endpoints:
//   - GET  /agendamento/{cpf}       existing booking (404 = none)
//   - GET  /cras/?bairro=           units of a neighborhood
//   - GET  /disponibilidades/{code} dates and slots of a unit
//   - POST /agendamento             booking (multipart form)
//
// The units and availability lookups are retried once on network errors and
// 5xx answers. The existing-booking lookup and the booking POST are not.
type SchedulingAPIGateway struct {
	baseURL   string
	client    *http.Client
	retryWait time.Duration
	mockMode  bool
}

var _ interfaces.ISchedulingGateway = (*SchedulingAPIGateway)(nil)

func NewSchedulingAPIGateway(settings Settings) (*SchedulingAPIGateway, error) {
	log := logrus.WithField("component", "[scheduling][gateway]")
	if settings.Mock {
		log.Info("mock mode enabled")
		return &SchedulingAPIGateway{mockMode: true}, nil
	}

	base := strings.TrimRight(strings.TrimSpace(settings.BaseURL), "/")
	if base == "" {
		return nil, ErrGatewayNotConfigured
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid scheduling api url %q: %w", settings.BaseURL, err)
	}

	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retryWait := settings.RetryWait
	if retryWait <= 0 {
		retryWait = defaultRetryWait
	}
	log.WithField("base_url", base).Info("scheduling api client initialized")

	return &SchedulingAPIGateway{
		baseURL:   base,
		client:    &http.Client{Timeout: timeout},
		retryWait: retryWait,
	}, nil
}

type existingBookingResponse struct {
	Message string `json:"message"`
	Name    any    `json:"nome"`
}

type unitsResponse struct {
	Units []entities.Unit `json:"cras"`
}

type availabilityResponse struct {
	Availability entities.Availability `json:"cras_vagas"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type rejectionResponse struct {
	Message string                     `json:"message"`
	Errors  map[string]json.RawMessage `json:"errors"`
}

func (g *SchedulingAPIGateway) GetExistingBooking(ctx context.Context, cpf string) (entities.ExistingBooking, error) {
	if g != nil && g.mockMode {
		return mockExistingBooking(cpf)
	}
	if g == nil || g.client == nil {
		return entities.ExistingBooking{}, ErrGatewayNotConfigured
	}

	ctx, span := tracer.Start(ctx, "scheduling.existing_booking")
	defer span.End()
	span.SetAttributes(attribute.String("cras.cpf", validation.MaskCPF(cpf)))

	var body existingBookingResponse
	err := g.getJSON(ctx, "/agendamento/"+url.PathEscape(validation.Digits(cpf)), nil, 0, &body)
	var remote *interfaces.RemoteError
	if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
		return entities.ExistingBooking{}, interfaces.ErrNoExistingBooking
	}
	if err != nil {
		recordError(span, err)
		return entities.ExistingBooking{}, err
	}

	booking := entities.ExistingBooking{Message: body.Message}
	if body.Name != nil {
		booking.Name = fmt.Sprint(body.Name)
	}
	return booking, nil
}

func (g *SchedulingAPIGateway) ListUnits(ctx context.Context, neighborhood string) ([]entities.Unit, error) {
	if g != nil && g.mockMode {
		return mockUnits(neighborhood), nil
	}
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotConfigured
	}

	ctx, span := tracer.Start(ctx, "scheduling.list_units")
	defer span.End()
	span.SetAttributes(attribute.String("cras.bairro", neighborhood))

	var body unitsResponse
	if err := g.getJSON(ctx, "/cras/", url.Values{"bairro": {neighborhood}}, lookupRetries, &body); err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("cras.units", len(body.Units)))
	return body.Units, nil
}

func (g *SchedulingAPIGateway) GetAvailability(ctx context.Context, unitCode string) (entities.Availability, error) {
	if g != nil && g.mockMode {
		return mockAvailability(time.Now()), nil
	}
	if g == nil || g.client == nil {
		return entities.Availability{}, ErrGatewayNotConfigured
	}

	ctx, span := tracer.Start(ctx, "scheduling.get_availability")
	defer span.End()
	span.SetAttributes(attribute.String("cras.unidade", unitCode))

	var body availabilityResponse
	if err := g.getJSON(ctx, "/disponibilidades/"+url.PathEscape(unitCode), nil, lookupRetries, &body); err != nil {
		recordError(span, err)
		return entities.Availability{}, err
	}
	return body.Availability, nil
}

func (g *SchedulingAPIGateway) CreateBooking(ctx context.Context, req entities.BookingRequest) (entities.BookingConfirmation, error) {
	log := logrus.WithFields(logrus.Fields{"component": "[scheduling][gateway]", "cpf": validation.MaskCPF(req.CPF)})
	if g != nil && g.mockMode {
		log.Info("mock booking accepted")
		return entities.BookingConfirmation{Message: "Agendamento realizado com sucesso."}, nil
	}
	if g == nil || g.client == nil {
		return entities.BookingConfirmation{}, ErrGatewayNotConfigured
	}

	ctx, span := tracer.Start(ctx, "scheduling.create_booking")
	defer span.End()
	span.SetAttributes(
		attribute.String("cras.cpf", validation.MaskCPF(req.CPF)),
		attribute.String("cras.unidade", req.UnitCode),
	)

	payload, contentType, err := bookingForm(req)
	if err != nil {
		recordError(span, err)
		return entities.BookingConfirmation{}, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/agendamento", payload)
	if err != nil {
		recordError(span, err)
		return entities.BookingConfirmation{}, err
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")

	log.Info("create booking start")
	status, raw, err := g.do(httpReq)
	if err != nil {
		recordError(span, err)
		return entities.BookingConfirmation{}, err
	}
	span.SetAttributes(attribute.Int("http.status_code", status))

	switch {
	case status >= 200 && status < 300:
		var body messageResponse
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil {
				log.WithError(err).Warn("booking response not json")
			}
		}
		log.Info("create booking success")
		return entities.BookingConfirmation{Message: body.Message}, nil
	case status == http.StatusUnprocessableEntity:
		if rejected := parseRejection(raw); rejected != nil {
			span.SetStatus(codes.Error, "booking rejected")
			return entities.BookingConfirmation{}, rejected
		}
	}
	err = remoteError(status, raw)
	recordError(span, err)
	return entities.BookingConfirmation{}, err
}

// getJSON runs a GET, retrying transient failures up to retries times, and
// decodes the body.
func (g *SchedulingAPIGateway) getJSON(ctx context.Context, path string, query url.Values, retries uint64, out any) error {
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		status, raw, err := g.do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		if status < 200 || status >= 300 {
			rerr := remoteError(status, raw)
			if rerr.Transient() {
				return rerr
			}
			return backoff.Permanent(rerr)
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode %s: %w", path, err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(g.retryWait), retries), ctx)
	notify := func(err error, wait time.Duration) {
		logrus.WithFields(logrus.Fields{"component": "[scheduling][gateway]", "path": path, "wait": wait}).
			WithError(err).Warn("lookup failed, retrying")
	}
	return backoff.RetryNotify(op, policy, notify)
}

func (g *SchedulingAPIGateway) do(req *http.Request) (int, []byte, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read %s %s: %w", req.Method, req.URL.Path, err)
	}
	return resp.StatusCode, raw, nil
}

func bookingForm(req entities.BookingRequest) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := []struct{ key, value string }{
		{"cpf", validation.Digits(req.CPF)},
		{"nome", req.Name},
		{"celular", validation.Digits(req.MobilePhone)},
		{"telefone", validation.Digits(req.Landline)},
		{"bairro", req.Neighborhood},
		{"tipo", req.ServiceType},
		{"selcras", req.UnitCode},
		{"selhora", req.SlotID},
		{"recaptcha", req.Recaptcha},
		{"cras", req.UnitAddress},
	}
	for _, f := range fields {
		if err := w.WriteField(f.key, f.value); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func remoteError(status int, raw []byte) *interfaces.RemoteError {
	var body messageResponse
	_ = json.Unmarshal(raw, &body)
	return &interfaces.RemoteError{StatusCode: status, Message: body.Message}
}

// parseRejection reads the `errors` object of a 422. Each entry is either a list
// of messages (the first one is kept) or a single message.
func parseRejection(raw []byte) *interfaces.SubmissionRejectedError {
	var body rejectionResponse
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Errors) == 0 {
		return nil
	}
	fields := make(map[string]string, len(body.Errors))
	for key, value := range body.Errors {
		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			if len(list) > 0 {
				fields[key] = list[0]
			}
			continue
		}
		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			fields[key] = single
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &interfaces.SubmissionRejectedError{Fields: fields}
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
