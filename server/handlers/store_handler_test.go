package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"bakery-server/availability"
	"bakery-server/dao/redis"
	"bakery-server/db"
	"bakery-server/models"
	services "bakery-server/service"
)

var jakarta = time.FixedZone("WIB", 7*60*60)

// Monday 23 December 2024, inside the default 07:00-21:00 weekday hours.
var mondayMorning = time.Date(2024, 12, 23, 10, 0, 0, 0, jakarta)

func newTestStatusService(t *testing.T, now time.Time) (*services.StoreStatusService, *db.MockRedisClient) {
	t.Helper()
	client := db.NewMockRedisClient()
	s := services.NewStoreStatusService(redis.NewRedisStoreDAO(client), jakarta, language.English)
	s.SetClock(func() time.Time { return now })
	s.ReplaceSnapshot(models.StoreSnapshot{Hours: availability.DefaultWeeklyHours(), WhatsappNumber: "628111"})
	return s, client
}

func decodeStatus(t *testing.T, rr *httptest.ResponseRecorder) models.StoreStatus {
	t.Helper()
	var status models.StoreStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	return status
}

func TestGetStoreStatus(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		target   string
		header   string
		isOpen   bool
		nextOpen string
		closesAt string
		wantLang string
	}{
		{
			name:     "open during weekday hours",
			now:      mondayMorning,
			target:   "/v1/store/status",
			isOpen:   true,
			nextOpen: "",
			closesAt: "21:00",
			wantLang: "en",
		},
		{
			name:     "closed after hours",
			now:      time.Date(2024, 12, 23, 22, 0, 0, 0, jakarta),
			target:   "/v1/store/status",
			nextOpen: "Tuesday at 07:00",
			wantLang: "en",
		},
		{
			name:     "indonesian via query",
			now:      time.Date(2024, 12, 23, 22, 0, 0, 0, jakarta),
			target:   "/v1/store/status?lang=id",
			nextOpen: "Selasa pukul 07:00",
			wantLang: "id",
		},
		{
			name:     "indonesian via accept-language",
			now:      time.Date(2024, 12, 23, 22, 0, 0, 0, jakarta),
			target:   "/v1/store/status",
			header:   "id-ID,id;q=0.9",
			nextOpen: "Selasa pukul 07:00",
			wantLang: "id",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestStatusService(t, test.now)
			h := NewStoreHandler(s)

			req := httptest.NewRequest("GET", test.target, nil)
			if test.header != "" {
				req.Header.Set("Accept-Language", test.header)
			}
			rr := httptest.NewRecorder()
			h.GetStoreStatus(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			status := decodeStatus(t, rr)
			assert.Equal(t, test.isOpen, status.IsOpen)
			assert.Equal(t, test.nextOpen, status.NextOpenLabel)
			assert.Equal(t, test.closesAt, status.ClosesAt)
			assert.Equal(t, test.wantLang, status.Language)
			assert.Equal(t, "628111", status.WhatsappNumber)
		})
	}
}

func TestGetStoreHours(t *testing.T) {
	s, _ := newTestStatusService(t, mondayMorning)
	s.ReplaceSnapshot(models.StoreSnapshot{})
	h := NewStoreHandler(s)

	rr := httptest.NewRecorder()
	h.GetStoreHours(rr, httptest.NewRequest("GET", "/v1/store/hours", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp WeeklyHoursResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.DefaultSchedule)
	assert.Len(t, resp.OperatingHours, 7)
	assert.Equal(t, "WIB", resp.Timezone)
}

func TestGetStoreHoursChart(t *testing.T) {
	s, _ := newTestStatusService(t, mondayMorning)
	h := NewStoreHandler(s)

	rr := httptest.NewRecorder()
	h.GetStoreHoursChart(rr, httptest.NewRequest("GET", "/v1/store/hours/chart?lang=id", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Senin")
}

func TestClosureLifecycle(t *testing.T) {
	s, client := newTestStatusService(t, time.Date(2024, 12, 25, 10, 0, 0, 0, jakarta))
	h := NewStoreHandler(s)

	// Nothing set yet.
	rr := httptest.NewRecorder()
	h.GetClosure(rr, httptest.NewRequest("GET", "/v1/store/closure", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"closure": null}`, rr.Body.String())

	// Set.
	body := `{"isActive": true, "startDate": "2024-12-24", "endDate": "2024-12-26", "reason": "Christmas"}`
	rr = httptest.NewRecorder()
	h.PutClosure(rr, httptest.NewRequest("PUT", "/v1/store/closure", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ClosureOverrideResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Closure)
	assert.Equal(t, "Christmas", resp.Closure.Reason)

	status := s.Status(language.English)
	assert.False(t, status.IsOpen)
	assert.Equal(t, "after 26 December 2024 (Christmas)", status.NextOpenLabel)

	stored, err := client.Get(context.Background(), redis.STORE_CLOSURE_KEY_V1)
	require.NoError(t, err)
	assert.Contains(t, stored, `"startDate":"2024-12-24"`)

	// Clear.
	rr = httptest.NewRecorder()
	h.DeleteClosure(rr, httptest.NewRequest("DELETE", "/v1/store/closure", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Nil(t, s.ClosureOverride())
	assert.True(t, s.Status(language.English).IsOpen)
}

func TestPutClosure_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"isActive": true,`},
		{"missing start date", `{"isActive": true, "endDate": "2024-12-26"}`},
		{"start date not a date", `{"isActive": true, "startDate": "24/12/2024"}`},
		{"end date not a date", `{"isActive": true, "startDate": "2024-12-24", "endDate": "tomorrow"}`},
		{"end before start", `{"isActive": true, "startDate": "2024-12-26", "endDate": "2024-12-24"}`},
		{"reason too long", `{"isActive": true, "startDate": "2024-12-24", "reason": "` + strings.Repeat("x", 256) + `"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestStatusService(t, mondayMorning)
			h := NewStoreHandler(s)

			rr := httptest.NewRecorder()
			h.PutClosure(rr, httptest.NewRequest("PUT", "/v1/store/closure", strings.NewReader(test.body)))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), `"error"`)
			assert.Nil(t, s.ClosureOverride())
		})
	}
}

func TestClosure_RedisDown(t *testing.T) {
	s, client := newTestStatusService(t, mondayMorning)
	client.SetFailure(errors.New("connection refused"))
	h := NewStoreHandler(s)

	rr := httptest.NewRecorder()
	h.PutClosure(rr, httptest.NewRequest("PUT", "/v1/store/closure",
		strings.NewReader(`{"isActive": true, "startDate": "2024-12-24"}`)))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = httptest.NewRecorder()
	h.DeleteClosure(rr, httptest.NewRequest("DELETE", "/v1/store/closure", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestPing(t *testing.T) {
	s, _ := newTestStatusService(t, mondayMorning)
	rr := httptest.NewRecorder()
	NewStoreHandler(s).Ping(rr, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "pong"}`, rr.Body.String())
}
