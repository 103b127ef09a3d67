package httpapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "fmpa/internal/adapters/http"
	"fmpa/internal/application"
	"fmpa/internal/domain"
	"fmpa/internal/infrastructure/audit"
	"fmpa/internal/infrastructure/i18n"
	"fmpa/internal/infrastructure/notify"
	"fmpa/internal/infrastructure/spreadsheet"
	"fmpa/internal/infrastructure/sqlite"
)

const secret = "test-secret"

type httpErr struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Detail  string            `json:"detail"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     any
	token    string
	locale   string
	wantCode int
	wantErr  string
}

func newTestServer(t *testing.T, opts ...func(*httpapi.Options)) httpapi.Server {
	t.Helper()
	store, err := sqlite.Open(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	translator := i18n.NewTranslator("fr")
	notifier := notify.NewLogNotifier(translator, "fr")
	o := &httpapi.Options{
		DisableReqLogs: true,
		JWTSecret:      secret,
		RateLimit:      100,
		RateBurst:      100,
		Translator:     translator,
		Events:         application.NewEventService(store, notifier),
		Participations: application.NewParticipationService(store, notifier),
		Stats:          application.NewStatsService(store),
		Exports:        application.NewExportService(store, audit.NewLogAuditor(nil), spreadsheet.XLSXWriter{}, spreadsheet.CSVWriter{}),
		Personnel:      application.NewPersonnelService(store),
	}
	for _, opt := range opts {
		opt(o)
	}
	return httpapi.NewServer(o)
}

func getToken(t *testing.T, id, tenantID string, role domain.Role) string {
	t.Helper()
	a, err := domain.NewActor(id, tenantID, string(role))
	require.NoError(t, err)
	token, err := httpapi.GenerateToken([]byte(secret), a, time.Hour)
	require.NoError(t, err)
	return token
}

func do(t *testing.T, h http.Handler, tt httpTest) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if tt.body != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(tt.body))
	}
	method := tt.method
	if method == "" {
		method = http.MethodGet
	}
	req := httptest.NewRequest(method, tt.path, &body)
	req.Header.Set("Content-Type", "application/json")
	if tt.token != "" {
		req.Header.Set("Authorization", "Bearer "+tt.token)
	}
	if tt.locale != "" {
		req.Header.Set("Accept-Language", tt.locale)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func check(t *testing.T, h http.Handler, tt httpTest) *httptest.ResponseRecorder {
	t.Helper()
	rec := do(t, h, tt)
	require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
	if tt.wantErr != "" {
		var res httpErr
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, tt.wantErr, res.Error.Code)
		assert.NotEmpty(t, res.Error.Message)
	}
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func eventBody(capacity int) map[string]any {
	start := time.Date(2026, 11, 14, 8, 0, 0, 0, time.UTC)
	return map[string]any{
		"type":            "MANOEUVRE",
		"title":           "Manœuvre secours routier",
		"location":        "CIS Nord",
		"startsAt":        start,
		"endsAt":          start.Add(3 * time.Hour),
		"maxParticipants": capacity,
		"catering":        true,
		"menus":           []string{"standard", "végétarien"},
	}
}

type eventRes struct {
	ID          uint   `json:"id"`
	Status      string `json:"status"`
	CheckInCode string `json:"checkInCode"`
}

// publish creates and publishes an event, returning it as seen by its manager.
func publish(t *testing.T, h http.Handler, token string, capacity int) eventRes {
	t.Helper()
	created := decode[eventRes](t, check(t, h, httpTest{
		method: http.MethodPost, path: "/v1/events", token: token, body: eventBody(capacity), wantCode: http.StatusCreated,
	}))
	return decode[eventRes](t, check(t, h, httpTest{
		method: http.MethodPost, path: fmt.Sprintf("/v1/events/%d/transition", created.ID), token: token,
		body: map[string]string{"status": "PUBLISHED"}, wantCode: http.StatusOK,
	}))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := check(t, srv, httpTest{path: "/healthz", wantCode: http.StatusOK})
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuthentication(t *testing.T) {
	srv := newTestServer(t)
	expired, err := httpapi.GenerateToken([]byte(secret), domain.Actor{ID: "u-1", TenantID: "sdis-01", Role: domain.RoleUser}, -time.Minute)
	require.NoError(t, err)
	forged, err := httpapi.GenerateToken([]byte("other-secret"), domain.Actor{ID: "u-1", TenantID: "sdis-01", Role: domain.RoleUser}, time.Hour)
	require.NoError(t, err)
	unknownRole, err := httpapi.GenerateToken([]byte(secret), domain.Actor{ID: "u-1", TenantID: "sdis-01", Role: "CAPTAIN"}, time.Hour)
	require.NoError(t, err)

	tests := []httpTest{
		{name: "no token", path: "/v1/events", wantCode: http.StatusUnauthorized, wantErr: "unauthenticated"},
		{name: "expired", path: "/v1/events", token: expired, wantCode: http.StatusUnauthorized, wantErr: "unauthenticated"},
		{name: "wrong secret", path: "/v1/events", token: forged, wantCode: http.StatusUnauthorized, wantErr: "unauthenticated"},
		{name: "unknown role", path: "/v1/events", token: unknownRole, wantCode: http.StatusUnauthorized, wantErr: "invalid_role"},
		{name: "valid", path: "/v1/events", token: getToken(t, "u-1", "sdis-01", domain.RoleUser), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check(t, srv, tt)
		})
	}
}

func TestEventsAPI(t *testing.T) {
	srv := newTestServer(t)
	manager := getToken(t, "manager", "sdis-01", domain.RoleManager)
	user := getToken(t, "u-1", "sdis-01", domain.RoleUser)
	outsider := getToken(t, "manager", "sdis-02", domain.RoleAdmin)

	event := publish(t, srv, manager, 10)
	assert.Equal(t, "PUBLISHED", event.Status)
	assert.NotEmpty(t, event.CheckInCode)
	path := fmt.Sprintf("/v1/events/%d", event.ID)

	tests := []httpTest{
		{
			name: "user cannot create", method: http.MethodPost, path: "/v1/events", token: user,
			body: eventBody(10), wantCode: http.StatusForbidden, wantErr: "forbidden",
		},
		{
			name: "missing title", method: http.MethodPost, path: "/v1/events", token: manager,
			body: map[string]any{"type": "FORMATION"}, wantCode: http.StatusBadRequest, wantErr: "invalid_request",
		},
		{name: "malformed id", path: "/v1/events/abc", token: user, wantCode: http.StatusNotFound, wantErr: "event_not_found"},
		{name: "other tenant", path: path, token: outsider, wantCode: http.StatusNotFound, wantErr: "event_not_found"},
		{name: "bad status filter", path: "/v1/events?status=OPEN", token: user, wantCode: http.StatusBadRequest, wantErr: "invalid_event"},
		{
			name: "invalid transition", method: http.MethodPost, path: path + "/transition", token: manager,
			body: map[string]string{"status": "DRAFT"}, wantCode: http.StatusBadRequest, wantErr: "invalid_event_transition",
		},
		{name: "unknown route", path: "/v1/nope", token: user, wantCode: http.StatusNotFound, wantErr: "not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check(t, srv, tt)
		})
	}

	t.Run("check-in code is hidden from users", func(t *testing.T) {
		got := decode[eventRes](t, check(t, srv, httpTest{path: path, token: user, wantCode: http.StatusOK}))
		assert.Equal(t, event.ID, got.ID)
		assert.Empty(t, got.CheckInCode)
	})

	t.Run("list filters by status", func(t *testing.T) {
		got := decode[[]eventRes](t, check(t, srv, httpTest{path: "/v1/events?status=PUBLISHED&limit=5", token: user, wantCode: http.StatusOK}))
		require.Len(t, got, 1)
		assert.Equal(t, event.ID, got[0].ID)
	})

	t.Run("validation fields", func(t *testing.T) {
		rec := do(t, srv, httpTest{
			method: http.MethodPost, path: "/v1/events", token: manager, body: map[string]any{"type": "FORMATION"},
		})
		res := decode[httpErr](t, rec)
		assert.Contains(t, res.Error.Fields, "Title")
	})
}

func TestParticipationsAPI(t *testing.T) {
	srv := newTestServer(t)
	manager := getToken(t, "manager", "sdis-01", domain.RoleManager)
	chef := getToken(t, "chef", "sdis-01", domain.RoleChef)
	u1 := getToken(t, "u-1", "sdis-01", domain.RoleUser)
	u2 := getToken(t, "u-2", "sdis-01", domain.RoleUser)

	event := publish(t, srv, manager, 1)
	register := fmt.Sprintf("/v1/events/%d/participations", event.ID)

	type participationRes struct {
		ID          uint       `json:"id"`
		UserID      string     `json:"userId"`
		Status      string     `json:"status"`
		CheckInTime *time.Time `json:"checkInTime"`
		ValidatedBy string     `json:"validatedBy"`
	}

	created := decode[participationRes](t, check(t, srv, httpTest{
		method: http.MethodPost, path: register, token: u1, body: map[string]string{"menu": "végétarien"}, wantCode: http.StatusCreated,
	}))
	assert.Equal(t, "u-1", created.UserID)
	assert.Equal(t, "REGISTERED", created.Status)

	tests := []httpTest{
		{name: "duplicate", method: http.MethodPost, path: register, token: u1, wantCode: http.StatusConflict, wantErr: "participation_exists"},
		{name: "full", method: http.MethodPost, path: register, token: u2, wantCode: http.StatusBadRequest, wantErr: "capacity_exceeded"},
		{
			name: "unknown menu", method: http.MethodPost, path: register, token: u2,
			body: map[string]string{"menu": "halal"}, wantCode: http.StatusBadRequest, wantErr: "unknown_menu",
		},
		{
			name: "user cannot validate", method: http.MethodPost, path: fmt.Sprintf("%s/%d/validate", register, created.ID),
			token: u2, body: map[string]string{"status": "PRESENT"}, wantCode: http.StatusForbidden, wantErr: "forbidden",
		},
		{
			name: "excuse without reason", method: http.MethodPost, path: fmt.Sprintf("%s/%d/validate", register, created.ID),
			token: chef, body: map[string]string{"status": "EXCUSED"}, wantCode: http.StatusBadRequest, wantErr: "excuse_reason_required",
		},
		{
			name: "someone else's cancel", method: http.MethodPost, path: fmt.Sprintf("%s/%d/cancel", register, created.ID),
			token: u2, wantCode: http.StatusForbidden, wantErr: "not_participant",
		},
		{
			name: "unknown participation", method: http.MethodPost, path: register + "/999/validate",
			token: chef, body: map[string]string{"status": "PRESENT"}, wantCode: http.StatusNotFound, wantErr: "participation_not_found",
		},
		{
			name: "wrong check-in code", method: http.MethodPost, path: "/v1/check-in", token: u1,
			body: map[string]string{"code": "nope"}, wantCode: http.StatusNotFound, wantErr: "event_not_found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check(t, srv, tt)
		})
	}

	t.Run("localized messages", func(t *testing.T) {
		en := decode[httpErr](t, do(t, srv, httpTest{method: http.MethodPost, path: register, token: u2, locale: "en-GB,en;q=0.9"}))
		assert.Equal(t, "The event is full.", en.Error.Message)
		fr := decode[httpErr](t, do(t, srv, httpTest{method: http.MethodPost, path: register, token: u2}))
		assert.Equal(t, "L'événement est complet.", fr.Error.Message)
	})

	t.Run("check-in", func(t *testing.T) {
		got := decode[participationRes](t, check(t, srv, httpTest{
			method: http.MethodPost, path: "/v1/check-in", token: u1, body: map[string]string{"code": event.CheckInCode}, wantCode: http.StatusOK,
		}))
		assert.Equal(t, "PRESENT", got.Status)
		assert.NotNil(t, got.CheckInTime)
		assert.Empty(t, got.ValidatedBy)
	})

	t.Run("stats", func(t *testing.T) {
		type statsRes struct {
			Total          int64   `json:"total"`
			AttendanceRate float64 `json:"attendanceRate"`
			Meals          struct {
				Total int64 `json:"total"`
			} `json:"meals"`
			Capacity struct {
				IsFull bool `json:"isFull"`
			} `json:"capacity"`
		}
		got := decode[statsRes](t, check(t, srv, httpTest{
			path: fmt.Sprintf("/v1/events/%d/stats", event.ID), token: u2, wantCode: http.StatusOK,
		}))
		assert.Equal(t, int64(1), got.Total)
		assert.Equal(t, 100.0, got.AttendanceRate)
		assert.Equal(t, int64(1), got.Meals.Total)
		assert.True(t, got.Capacity.IsFull)
	})
}

func TestExportsAPI(t *testing.T) {
	srv := newTestServer(t)
	manager := getToken(t, "manager", "sdis-01", domain.RoleManager)
	admin := getToken(t, "admin", "sdis-01", domain.RoleAdmin)
	event := publish(t, srv, manager, 10)
	check(t, srv, httpTest{
		method: http.MethodPost, path: fmt.Sprintf("/v1/events/%d/participations", event.ID),
		token: getToken(t, "u-1", "sdis-01", domain.RoleUser), wantCode: http.StatusCreated,
	})
	check(t, srv, httpTest{
		method: http.MethodPut, path: "/v1/personnel/u-1", token: admin,
		body: map[string]string{"firstName": "Léa", "lastName": "Petit", "badgeNumber": "P-7"}, wantCode: http.StatusOK,
	})

	t.Run("participants csv", func(t *testing.T) {
		rec := check(t, srv, httpTest{
			path: fmt.Sprintf("/v1/events/%d/exports/participants?format=csv", event.ID), token: manager, wantCode: http.StatusOK,
		})
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, fmt.Sprintf(`attachment; filename="participants-%d.csv"`, event.ID), rec.Header().Get("Content-Disposition"))
		assert.Contains(t, rec.Body.String(), "Petit;Léa;;P-7;REGISTERED;")
	})

	t.Run("participants xlsx by default", func(t *testing.T) {
		rec := check(t, srv, httpTest{
			path: fmt.Sprintf("/v1/events/%d/exports/participants", event.ID), token: manager, wantCode: http.StatusOK,
		})
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), "attachment;"))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
	})

	tests := []httpTest{
		{
			name: "unsupported format", path: fmt.Sprintf("/v1/events/%d/exports/participants?format=pdf", event.ID),
			token: manager, wantCode: http.StatusBadRequest, wantErr: "unsupported_format",
		},
		{name: "attendance sheet", path: fmt.Sprintf("/v1/events/%d/exports/attendance-sheet", event.ID), token: manager, wantCode: http.StatusOK},
		{name: "manoeuvre report", path: fmt.Sprintf("/v1/events/%d/exports/manoeuvre-report", event.ID), token: manager, wantCode: http.StatusOK},
		{
			name: "personnel needs admin", method: http.MethodPut, path: "/v1/personnel/u-2", token: manager,
			body: map[string]string{"lastName": "Durand"}, wantCode: http.StatusForbidden, wantErr: "forbidden",
		},
		{
			name: "personnel email", method: http.MethodPut, path: "/v1/personnel/u-2", token: admin,
			body: map[string]string{"lastName": "Durand", "email": "durand"}, wantCode: http.StatusBadRequest, wantErr: "invalid_request",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check(t, srv, tt)
		})
	}
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, func(o *httpapi.Options) {
		o.RateLimit = 0.001
		o.RateBurst = 1
	})
	manager := getToken(t, "manager", "sdis-01", domain.RoleManager)
	event := publish(t, srv, manager, 10)
	path := fmt.Sprintf("/v1/events/%d/participations", event.ID)
	u1 := getToken(t, "u-1", "sdis-01", domain.RoleUser)

	check(t, srv, httpTest{method: http.MethodPost, path: path, token: u1, wantCode: http.StatusCreated})
	check(t, srv, httpTest{method: http.MethodPost, path: path, token: u1, wantCode: http.StatusTooManyRequests, wantErr: "rate_limited"})
	// limits are per actor
	check(t, srv, httpTest{
		method: http.MethodPost, path: path, token: getToken(t, "u-2", "sdis-01", domain.RoleUser), wantCode: http.StatusCreated,
	})
}
