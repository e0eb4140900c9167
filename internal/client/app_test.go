package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-event-planner/internal/adapter"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI records the last request per path and answers with canned bodies.
type fakeAPI struct {
	t        *testing.T
	lastAuth string
	created  models.CreateEventRequest
	query    map[string]string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.lastAuth = r.Header.Get("Authorization")
	w.Header().Set("Content-Type", "application/json")

	switch r.Method + " " + r.URL.Path {
	case "POST /register":
		var c models.CredentialsRequest
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&c))
		if c.Username == "taken" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Username already exists"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "User registered"})
	case "POST /login":
		json.NewEncoder(w).Encode(models.TokenResponse{Token: "tok-123"})
	case "POST /events":
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&f.created))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.EventCreatedResponse{Message: "Event created", Event: models.Event{ID: 4}})
	case "GET /events":
		f.query = map[string]string{}
		for k := range r.URL.Query() {
			f.query[k] = r.URL.Query().Get(k)
		}
		five := 5
		json.NewEncoder(w).Encode([]models.Event{
			{ID: 1, Name: "Mum", Category: models.CategoryBirthday, Date: time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Name: "Sync", Category: models.CategoryMeeting, Date: time.Date(2030, 1, 3, 9, 0, 0, 0, time.UTC), ReminderMinutesBefore: &five},
		})
	case "GET /version":
		json.NewEncoder(w).Encode(models.VersionResponse{Version: "1.4.0", Commit: "deadbeef"})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func runCLI(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(envServer, "")
	t.Setenv(envToken, "")

	var out bytes.Buffer
	app := NewApp(&out, logger.Nop())
	err := app.Run(context.Background(), append([]string{"--server", serverURL}, args...))
	return out.String(), err
}

func TestRegisterCommand(t *testing.T) {
	api := &fakeAPI{t: t}
	srv := httptest.NewServer(api)
	defer srv.Close()

	out, err := runCLI(t, srv.URL, "register", "-u", "alice", "-p", "pw")
	require.NoError(t, err)
	assert.Equal(t, "User registered\n", out)

	_, err = runCLI(t, srv.URL, "register", "-u", "taken", "-p", "pw")
	assert.ErrorIs(t, err, adapter.ErrBadRequest)

	_, err = runCLI(t, srv.URL, "register", "-u", "alice")
	assert.ErrorIs(t, err, errCredentialsRequired)
}

func TestLoginCommand_PrintsToken(t *testing.T) {
	srv := httptest.NewServer(&fakeAPI{t: t})
	defer srv.Close()

	out, err := runCLI(t, srv.URL, "login", "--username", "alice", "--password", "pw")

	require.NoError(t, err)
	assert.Equal(t, "tok-123\n", out)
}

func TestEventsAdd(t *testing.T) {
	api := &fakeAPI{t: t}
	srv := httptest.NewServer(api)
	defer srv.Close()

	out, err := runCLI(t, srv.URL, "--token", "tok-123", "events", "add",
		"--name", "Dentist", "--date", "2030-05-01T10:00:00Z", "--category", "Appointment", "--remind", "0")

	require.NoError(t, err)
	assert.Equal(t, "Event created (id 4)\n", out)
	assert.Equal(t, "Bearer tok-123", api.lastAuth)
	assert.Equal(t, "Dentist", api.created.Name)
	assert.Equal(t, models.CategoryAppointment, api.created.Category)
	require.NotNil(t, api.created.ReminderMinutesBefore, "explicit zero is sent")
	assert.Equal(t, 0, *api.created.ReminderMinutesBefore)
	assert.Nil(t, api.created.Description)
}

func TestEventsAdd_BadDate(t *testing.T) {
	srv := httptest.NewServer(&fakeAPI{t: t})
	defer srv.Close()

	_, err := runCLI(t, srv.URL, "--token", "tok", "events", "add",
		"--name", "x", "--date", "tomorrow", "--category", "Meeting")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RFC3339")
}

func TestEventsAdd_NeedsToken(t *testing.T) {
	srv := httptest.NewServer(&fakeAPI{t: t})
	defer srv.Close()

	_, err := runCLI(t, srv.URL, "events", "add",
		"--name", "x", "--date", "2030-05-01T10:00:00Z", "--category", "Meeting")

	assert.ErrorIs(t, err, adapter.ErrNoToken)
}

func TestEventsList(t *testing.T) {
	api := &fakeAPI{t: t}
	srv := httptest.NewServer(api)
	defer srv.Close()

	out, err := runCLI(t, srv.URL, "--token", "tok", "events", "list", "--sort", "category", "--reminder-sent", "false")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"sortBy": "category", "reminderStatus": "false"}, api.query)
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "Mum")
	assert.Contains(t, out, "5m before")
}

func TestVersionCommand(t *testing.T) {
	srv := httptest.NewServer(&fakeAPI{t: t})
	defer srv.Close()

	out, err := runCLI(t, srv.URL, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.4.0")
	assert.Contains(t, out, "deadbeef")
}

func TestPrintEvents_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printEvents(&out, nil))
	assert.Equal(t, "No events\n", out.String())
}

func TestTokenFromEnvironment(t *testing.T) {
	api := &fakeAPI{t: t}
	srv := httptest.NewServer(api)
	defer srv.Close()

	t.Setenv(envServer, srv.URL)
	t.Setenv(envToken, "env-token")

	var out bytes.Buffer
	err := NewApp(&out, logger.Nop()).Run(context.Background(), []string{"events", "list"})

	require.NoError(t, err)
	assert.Equal(t, "Bearer env-token", api.lastAuth)
}
