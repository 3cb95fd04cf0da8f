package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeCatalog implements domain.EventCatalog for handler tests.
type fakeCatalog struct {
	snapshot    domain.CatalogSnapshot
	reloadErr   error
	loadMoreErr error
	reloads     int
	loadMores   int
}

func (f *fakeCatalog) UpdateEvent(string, func(*domain.Event)) bool { return false }
func (f *fakeCatalog) Load(context.Context, string, int, bool) error { return nil }
func (f *fakeCatalog) OnIdentityChange(context.Context, string) error { return nil }
func (f *fakeCatalog) Snapshot() domain.CatalogSnapshot { return f.snapshot }
func (f *fakeCatalog) Bind(context.Context, domain.IdentityStore) func() {
	return func() {}
}

func (f *fakeCatalog) LoadMore(context.Context) error {
	f.loadMores++
	return f.loadMoreErr
}

func (f *fakeCatalog) Reload(context.Context) error {
	f.reloads++
	return f.reloadErr
}

// fakeDirectory implements domain.EventDirectory for handler tests.
type fakeDirectory struct {
	event          *domain.Event
	getErr         error
	created        *domain.Event
	createErr      error
	uploadURI      string
	uploadErr      error
	lastGetID      string
	lastIdentity   string
	lastDraft      *domain.EventDraft
	lastUploadName string
	lastUploadBody string
}

func (f *fakeDirectory) ListEvents(context.Context, string, int, int) (*domain.CatalogPage, error) {
	return nil, nil
}

func (f *fakeDirectory) GetEvent(_ context.Context, id, identity string) (*domain.Event, error) {
	f.lastGetID = id
	f.lastIdentity = identity
	return f.event, f.getErr
}

func (f *fakeDirectory) Register(context.Context, string, string) error { return nil }

func (f *fakeDirectory) CreateEvent(_ context.Context, draft *domain.EventDraft) (*domain.Event, error) {
	f.lastDraft = draft
	return f.created, f.createErr
}

func (f *fakeDirectory) UploadImage(_ context.Context, filename string, body io.Reader) (string, error) {
	f.lastUploadName = filename
	b, _ := io.ReadAll(body)
	f.lastUploadBody = string(b)
	return f.uploadURI, f.uploadErr
}

// fakeIdentity implements domain.IdentityStore for handler tests.
type fakeIdentity struct {
	value string
	sets  []string
}

func (f *fakeIdentity) Get() string { return f.value }
func (f *fakeIdentity) Set(token string) {
	f.value = token
	f.sets = append(f.sets, token)
}
func (f *fakeIdentity) Subscribe(func(string)) func() { return func() {} }

// fakeDrafter implements IdentityDrafter for handler tests.
type fakeDrafter struct {
	draft   string
	pending bool
	stops   int
}

func (f *fakeDrafter) Edit(token string) { f.draft, f.pending = token, true }
func (f *fakeDrafter) Pending() (string, bool) { return f.draft, f.pending }
func (f *fakeDrafter) Stop() {
	f.stops++
	f.pending = false
}

// fakeCoordinator implements domain.RegistrationCoordinator for handler tests.
type fakeCoordinator struct {
	state        domain.RegistrationState
	err          error
	lastEventID  string
	lastIdentity string
	cancels      int
	lastCtxErr   error
}

func (f *fakeCoordinator) Register(ctx context.Context, eventID string) (domain.RegistrationState, error) {
	f.lastEventID = eventID
	f.lastCtxErr = ctx.Err()
	return f.state, f.err
}

func (f *fakeCoordinator) SubmitIdentity(ctx context.Context, eventID, identity string) (domain.RegistrationState, error) {
	f.lastEventID = eventID
	f.lastCtxErr = ctx.Err()
	f.lastIdentity = identity
	return f.state, f.err
}

func (f *fakeCoordinator) Cancel(eventID string) domain.RegistrationState {
	f.lastEventID = eventID
	f.cancels++
	return f.state
}

func (f *fakeCoordinator) State(eventID string) domain.RegistrationState {
	f.lastEventID = eventID
	return f.state
}

// decodeEnvelope decodes the response envelope, unmarshalling data into dest when non-nil.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dest any) *helpers.APIError {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	if dest != nil && envelope.Error == nil {
		require.NoError(t, json.Unmarshal(envelope.Data, dest))
	}
	return envelope.Error
}
