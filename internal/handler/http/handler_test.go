package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homestays/reservations-api/internal/adapter"
	"github.com/homestays/reservations-api/internal/config"
	"github.com/homestays/reservations-api/internal/logger"
	"github.com/homestays/reservations-api/internal/service"
	"github.com/homestays/reservations-api/internal/store"
	"github.com/homestays/reservations-api/internal/utils"
	"github.com/homestays/reservations-api/internal/validators"
	"github.com/homestays/reservations-api/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "usuarios-api"
)

type fakeReservationService struct {
	createFn       func(ctx context.Context, caller models.Caller, req models.CreateReservationRequest) (models.Reservation, error)
	getByIDFn      func(ctx context.Context, caller models.Caller, reservationID int64) (models.Reservation, error)
	listAllFn      func(ctx context.Context, caller models.Caller) ([]models.Reservation, error)
	listByClientFn func(ctx context.Context, caller models.Caller, clientID string) ([]models.Reservation, error)
	listByHostFn   func(ctx context.Context, caller models.Caller, hostID string) ([]models.Reservation, error)
	deleteFn       func(ctx context.Context, caller models.Caller, reservationID int64) error
}

func (f *fakeReservationService) Create(ctx context.Context, caller models.Caller, req models.CreateReservationRequest) (models.Reservation, error) {
	return f.createFn(ctx, caller, req)
}

func (f *fakeReservationService) GetByID(ctx context.Context, caller models.Caller, reservationID int64) (models.Reservation, error) {
	return f.getByIDFn(ctx, caller, reservationID)
}

func (f *fakeReservationService) ListAll(ctx context.Context, caller models.Caller) ([]models.Reservation, error) {
	return f.listAllFn(ctx, caller)
}

func (f *fakeReservationService) ListByClient(ctx context.Context, caller models.Caller, clientID string) ([]models.Reservation, error) {
	return f.listByClientFn(ctx, caller, clientID)
}

func (f *fakeReservationService) ListByHost(ctx context.Context, caller models.Caller, hostID string) ([]models.Reservation, error) {
	return f.listByHostFn(ctx, caller, hostID)
}

func (f *fakeReservationService) Delete(ctx context.Context, caller models.Caller, reservationID int64) error {
	return f.deleteFn(ctx, caller, reservationID)
}

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(context.Context) error {
	return f.err
}

func newTestHandler(fake *fakeReservationService) *Handler {
	return NewHandler(
		&service.Services{Reservations: fake},
		validators.NewReservationValidator(),
		&fakePinger{},
		config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer, Version: "test"},
		logger.Nop(),
	)
}

func bearerFor(t *testing.T, id string, role models.Role) string {
	t.Helper()

	token, err := utils.GenerateCallerToken(testIssuer, id, role, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, h *Handler, method, target, authHeader string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) models.Envelope[T] {
	t.Helper()

	var envelope models.Envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestAuth_MissingHeader(t *testing.T) {
	h := newTestHandler(&fakeReservationService{})

	rec := doRequest(t, h, http.MethodGet, "/api/reservations/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeEnvelope[any](t, rec)
	assert.False(t, envelope.Success)
}

func TestAuth_MalformedHeader(t *testing.T) {
	h := newTestHandler(&fakeReservationService{})

	rec := doRequest(t, h, http.MethodGet, "/api/reservations/", "not-a-bearer", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_BadSignature(t *testing.T) {
	h := newTestHandler(&fakeReservationService{})

	token, err := utils.GenerateCallerToken(testIssuer, "1", models.RoleAdmin, time.Hour, "wrong-key")
	require.NoError(t, err)

	rec := doRequest(t, h, http.MethodGet, "/api/reservations/", "Bearer "+token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_UnknownRoleRejected(t *testing.T) {
	h := newTestHandler(&fakeReservationService{})

	token, err := utils.GenerateCallerToken(testIssuer, "1", models.Role("Superuser"), time.Hour, testSignKey)
	require.NoError(t, err)

	rec := doRequest(t, h, http.MethodGet, "/api/reservations/", "Bearer "+token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_PassesCallerDownstream(t *testing.T) {
	var gotCaller models.Caller
	fake := &fakeReservationService{
		listAllFn: func(_ context.Context, caller models.Caller) ([]models.Reservation, error) {
			gotCaller = caller
			return []models.Reservation{}, nil
		},
	}
	h := newTestHandler(fake)

	rec := doRequest(t, h, http.MethodGet, "/api/reservations/", bearerFor(t, "1", models.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "1", gotCaller.ID)
	assert.Equal(t, models.RoleAdmin, gotCaller.Role)
	assert.NotEmpty(t, gotCaller.Token)
}

func TestCreateReservation_Success(t *testing.T) {
	created := models.Reservation{
		ReservationID: 17,
		AirbnbID:      "L-1",
		AirbnbName:    "Loft",
		HostID:        "7",
		ClientID:      "42",
		ClientName:    "Ana",
	}
	fake := &fakeReservationService{
		createFn: func(_ context.Context, caller models.Caller, req models.CreateReservationRequest) (models.Reservation, error) {
			assert.Equal(t, "42", caller.ID)
			assert.Equal(t, models.CreateReservationRequest{ClientID: "42", AirbnbID: "L-1"}, req)
			return created, nil
		},
	}
	h := newTestHandler(fake)

	body := bytes.NewBufferString(`{"clientId":"42","airbnbId":"L-1"}`)
	rec := doRequest(t, h, http.MethodPost, "/api/reservations/", bearerFor(t, "42", models.RoleCliente), body)

	require.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope[models.Reservation](t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, int64(17), envelope.Data.ReservationID)
	assert.Equal(t, "Loft", envelope.Data.AirbnbName)
}

func TestCreateReservation_InvalidBody(t *testing.T) {
	h := newTestHandler(&fakeReservationService{})

	body := bytes.NewBufferString(`{not json`)
	rec := doRequest(t, h, http.MethodPost, "/api/reservations/", bearerFor(t, "42", models.RoleCliente), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReservation_ValidationFailure(t *testing.T) {
	h := newTestHandler(&fakeReservationService{
		createFn: func(context.Context, models.Caller, models.CreateReservationRequest) (models.Reservation, error) {
			t.Fatal("service must not be reached when validation fails")
			return models.Reservation{}, nil
		},
	})

	body := bytes.NewBufferString(`{"clientId":"42"}`)
	rec := doRequest(t, h, http.MethodPost, "/api/reservations/", bearerFor(t, "42", models.RoleCliente), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReservation_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "policy denial", serviceErr: service.ErrUnauthorized, wantStatus: http.StatusForbidden},
		{name: "user reference missing", serviceErr: &service.ReferenceNotFoundError{Kind: "user", ID: "42"}, wantStatus: http.StatusNotFound},
		{name: "listing reference missing", serviceErr: &service.ReferenceNotFoundError{Kind: "listing", ID: "L-1"}, wantStatus: http.StatusNotFound},
		{name: "duplicate", serviceErr: store.ErrDuplicateReservation, wantStatus: http.StatusConflict},
		{name: "upstream down", serviceErr: adapter.ErrUpstreamUnavailable, wantStatus: http.StatusBadGateway},
		{name: "storage failure", serviceErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&fakeReservationService{
				createFn: func(context.Context, models.Caller, models.CreateReservationRequest) (models.Reservation, error) {
					return models.Reservation{}, tt.serviceErr
				},
			})

			body := bytes.NewBufferString(`{"clientId":"42","airbnbId":"L-1"}`)
			rec := doRequest(t, h, http.MethodPost, "/api/reservations/", bearerFor(t, "42", models.RoleCliente), body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			envelope := decodeEnvelope[any](t, rec)
			assert.False(t, envelope.Success)
		})
	}
}

func TestCreateReservation_InternalErrorIsMasked(t *testing.T) {
	h := newTestHandler(&fakeReservationService{
		createFn: func(context.Context, models.Caller, models.CreateReservationRequest) (models.Reservation, error) {
			return models.Reservation{}, errors.New("pq: password authentication failed for user postgres")
		},
	})

	body := bytes.NewBufferString(`{"clientId":"42","airbnbId":"L-1"}`)
	rec := doRequest(t, h, http.MethodPost, "/api/reservations/", bearerFor(t, "42", models.RoleCliente), body)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	envelope := decodeEnvelope[any](t, rec)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), envelope.Message)
}

func TestGetReservation_Success(t *testing.T) {
	fake := &fakeReservationService{
		getByIDFn: func(_ context.Context, _ models.Caller, reservationID int64) (models.Reservation, error) {
			assert.Equal(t, int64(5), reservationID)
			return models.Reservation{ReservationID: 5, ClientID: "42"}, nil
		},
	}
	h := newTestHandler(fake)

	rec := doRequest(t, h, http.MethodGet, "/api/reservations/5", bearerFor(t, "42", models.RoleCliente), nil)

	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope[models.Reservation](t, rec)
	assert.Equal(t, int64(5), envelope.Data.ReservationID)
}

func TestGetReservation_InvalidID(t *testing.T) {
	h := newTestHandler(&fakeReservationService{})

	rec := doRequest(t, h, http.MethodGet, "/api/reservations/abc", bearerFor(t, "42", models.RoleCliente), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetReservation_NotFound(t *testing.T) {
	h := newTestHandler(&fakeReservationService{
		getByIDFn: func(context.Context, models.Caller, int64) (models.Reservation, error) {
			return models.Reservation{}, store.ErrReservationNotFound
		},
	})

	rec := doRequest(t, h, http.MethodGet, "/api/reservations/99", bearerFor(t, "1", models.RoleAdmin), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetReservation_HostDenied(t *testing.T) {
	h := newTestHandler(&fakeReservationService{
		getByIDFn: func(context.Context, models.Caller, int64) (models.Reservation, error) {
			return models.Reservation{}, service.ErrUnauthorized
		},
	})

	rec := doRequest(t, h, http.MethodGet, "/api/reservations/5", bearerFor(t, "8", models.RoleHost), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListReservationsByClient_RouteParam(t *testing.T) {
	fake := &fakeReservationService{
		listByClientFn: func(_ context.Context, _ models.Caller, clientID string) ([]models.Reservation, error) {
			assert.Equal(t, "42", clientID)
			return []models.Reservation{{ReservationID: 1, ClientID: "42"}}, nil
		},
	}
	h := newTestHandler(fake)

	rec := doRequest(t, h, http.MethodGet, "/api/reservations/client/42", bearerFor(t, "42", models.RoleCliente), nil)

	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope[[]models.Reservation](t, rec)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "42", envelope.Data[0].ClientID)
}

func TestListReservationsByHost_RouteParam(t *testing.T) {
	fake := &fakeReservationService{
		listByHostFn: func(_ context.Context, _ models.Caller, hostID string) ([]models.Reservation, error) {
			assert.Equal(t, "7", hostID)
			return []models.Reservation{}, nil
		},
	}
	h := newTestHandler(fake)

	rec := doRequest(t, h, http.MethodGet, "/api/reservations/host/7", bearerFor(t, "7", models.RoleHost), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteReservation_Success(t *testing.T) {
	fake := &fakeReservationService{
		deleteFn: func(_ context.Context, _ models.Caller, reservationID int64) error {
			assert.Equal(t, int64(5), reservationID)
			return nil
		},
	}
	h := newTestHandler(fake)

	rec := doRequest(t, h, http.MethodDelete, "/api/reservations/5", bearerFor(t, "1", models.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteReservation_NotFound(t *testing.T) {
	h := newTestHandler(&fakeReservationService{
		deleteFn: func(context.Context, models.Caller, int64) error {
			return store.ErrReservationNotFound
		},
	})

	rec := doRequest(t, h, http.MethodDelete, "/api/reservations/99", bearerFor(t, "1", models.RoleAdmin), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth_NoAuthRequired(t *testing.T) {
	h := newTestHandler(&fakeReservationService{})

	rec := doRequest(t, h, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope[healthStatus](t, rec)
	assert.Equal(t, "ok", envelope.Data.Status)
	assert.Equal(t, "test", envelope.Data.Version)
}

func TestReady_DatabaseDown(t *testing.T) {
	h := NewHandler(
		&service.Services{Reservations: &fakeReservationService{}},
		validators.NewReservationValidator(),
		&fakePinger{err: errors.New("connection refused")},
		config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer},
		logger.Nop(),
	)

	rec := doRequest(t, h, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReady_DatabaseUp(t *testing.T) {
	h := newTestHandler(&fakeReservationService{})

	rec := doRequest(t, h, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTraceIDHeader_SetOnResponse(t *testing.T) {
	h := newTestHandler(&fakeReservationService{})

	rec := doRequest(t, h, http.MethodGet, "/health", "", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestTraceIDHeader_Propagated(t *testing.T) {
	h := newTestHandler(&fakeReservationService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Trace-ID", "trace-123")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}

func TestStatusFromError_UnknownDefaultsTo500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("mystery")))
}
