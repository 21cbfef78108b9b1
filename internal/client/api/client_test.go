package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/studysync/internal/models"
	pkgapi "github.com/iudanet/studysync/pkg/api"
)

const testClientURL = "https://client.example"

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/api/v1/", testClientURL+"/", "tok")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080/api/v1", client.req.BaseURL)
	assert.Equal(t, testClientURL, client.clientURL)
	assert.Equal(t, "tok", client.Token())
	assert.Equal(t, DefaultTimeout, client.req.HTTPClient.Timeout)
	assert.Equal(t, DefaultMaximumAllowedTime, client.maxAllowedTime)
	assert.Equal(t, testClientURL+"/studies/42/", client.StudyURL(42))
}

func TestNewClient_Options(t *testing.T) {
	hc := NewHTTPClient(0)
	client := NewClient("http://x", testClientURL, "",
		WithHTTPClient(hc),
		WithMaximumAllowedTime(20),
		WithMaximumAllowedTime(-1),
	)

	assert.Same(t, hc, client.req.HTTPClient)
	assert.Equal(t, time.Duration(0), client.req.HTTPClient.Timeout)
	assert.Equal(t, 20, client.maxAllowedTime)
}

func TestNewClient_SharedHTTPClient(t *testing.T) {
	var tokens []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens = append(tokens, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u1","username":"alice"}`))
	}))
	defer srv.Close()

	hc := NewHTTPClient(DefaultTimeout)
	for _, token := range []string{"tok-a", "tok-b"} {
		_, err := NewClient(srv.URL, testClientURL, token, WithHTTPClient(hc)).FetchCurrentUser(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"Bearer tok-a", "Bearer tok-b"}, tokens)
}

// TestClient_FetchCurrentUser проверяет получение профиля и заголовок авторизации
func TestClient_FetchCurrentUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/users/me/", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(pkgapi.UserPayload{
			ID:           "u1",
			Username:     "alice",
			CurrencyCode: "GBP",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api/v1", testClientURL, "tok-1")

	user, err := client.FetchCurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "tok-1", user.Token)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, testClientURL, "")

	_, err := client.FetchCurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}

// TestClient_Errors проверяет типизацию ошибок
func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantMsg      string
		status       int
		unauthorized bool
		notFound     bool
	}{
		{
			name:         "unauthorized",
			status:       http.StatusUnauthorized,
			body:         `{"error":"invalid token"}`,
			wantMsg:      "server error (401): invalid token",
			unauthorized: true,
		},
		{
			name:         "forbidden",
			status:       http.StatusForbidden,
			body:         `{"message":"no access"}`,
			wantMsg:      "server error (403): no access",
			unauthorized: true,
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     "Not Found",
			wantMsg:  "request failed with status 404: Not Found",
			notFound: true,
		},
		{
			name:    "unexpected success code",
			status:  http.StatusAccepted,
			body:    `{}`,
			wantMsg: "request failed with status 202",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, testClientURL, "tok")

			_, err := client.FetchCurrentUser(context.Background())

			require.Error(t, err)
			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, tt.unauthorized, IsUnauthorized(err))
			assert.Equal(t, tt.notFound, IsNotFound(err))
			assert.False(t, errors.Is(err, ErrUnreachable))
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, testClientURL, "tok")

	_, err := client.FetchCurrentUser(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreachable))
	assert.False(t, IsUnauthorized(err))
}

// TestClient_CalculateTotalCost проверяет перевод в минимальные единицы и обратно
func TestClient_CalculateTotalCost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/study-cost-calculator/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req pkgapi.CostRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(29), req.Reward)
		assert.Equal(t, 100, req.TotalAvailablePlaces)
		assert.Equal(t, "SINGLE", req.StudyType)

		_, _ = w.Write([]byte(`{"total_cost": 3867}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testClientURL, "tok")

	total, err := client.CalculateTotalCost(context.Background(), 100, decimal.RequireFromString("0.29"))

	require.NoError(t, err)
	assert.Equal(t, "38.67", total.StringFixed(2))
}

// TestClient_CreateStudy проверяет тело запроса и вычисляемую ссылку
func TestClient_CreateStudy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/studies/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		assert.Equal(t, "Memory", body["name"])
		assert.Equal(t, "mem", body["internal_name"])
		assert.Equal(t, "2CC39346", body["completion_code"])
		assert.Equal(t, testClientURL+"/submissions/complete?cc=2CC39346", body["callback_url"])
		assert.Equal(t, float64(500), body["total_available_places"])
		assert.Equal(t, float64(1), body["estimated_completion_time"])
		assert.Equal(t, float64(13), body["maximum_allowed_time"])
		assert.Equal(t, float64(13), body["reward"])
		assert.Equal(t, "url_parameters", body["prolific_id_option"])
		assert.Equal(t, "url", body["completion_option"])
		assert.Equal(t, []any{"mobile", "desktop", "tablet"}, body["device_compatibility"])
		assert.Equal(t, []any{}, body["peripheral_requirements"])
		assert.Equal(t, []any{}, body["eligibility_requirements"])
		assert.Equal(t, false, body["custom_screening_checked"])
		assert.Equal(t, "SINGLE", body["study_type"])
		require.Contains(t, body, "publish_at")
		assert.Nil(t, body["publish_at"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42, "name": "Memory", "status": "UNPUBLISHED", "reward": 13,
			"total_available_places": 500, "share_id": "s1"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testClientURL, "tok")
	draft := models.StudyDraft{
		Title:           "Memory",
		InternalName:    "mem",
		CompletionCode:  "2CC39346",
		Participants:    500,
		DurationMinutes: 1,
		Reward:          decimal.RequireFromString("0.13"),
	}

	study, err := client.CreateStudy(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, int64(42), study.ID)
	assert.Equal(t, testClientURL+"/studies/42/", study.URL)
	assert.Equal(t, testClientURL+"/studies/42/", study.Raw["url"])
	assert.Equal(t, "s1", study.Raw["share_id"])
}

func TestClient_CreateStudy_RequiresCreated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 1}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testClientURL, "tok")

	study, err := client.CreateStudy(context.Background(), models.StudyDraft{Title: "x"})

	require.Error(t, err)
	assert.Nil(t, study)
}

func TestClient_TransitionStudy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/studies/42/transition/", r.URL.Path)

		var req pkgapi.TransitionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "PUBLISH", req.Action)

		_, _ = w.Write([]byte(`{"id": 42, "status": "ACTIVATED"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testClientURL, "tok")

	study, err := client.TransitionStudy(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "ACTIVATED", study.Status)
}

func TestClient_GetStudy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/studies/7/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 7, "name": "Remote"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testClientURL, "tok")

	study, err := client.GetStudy(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Remote", study.Name)
	assert.Equal(t, testClientURL+"/studies/7/", study.URL)
}
