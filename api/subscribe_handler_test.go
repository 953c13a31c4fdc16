package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avelier/photography-site-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriberStore struct {
	added []*models.Subscriber
	err   error
}

func (f *fakeSubscriberStore) Add(subscriber *models.Subscriber) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, subscriber)
	return nil
}

type fakeListClient struct {
	enabled  bool
	contacts []string
	err      error
}

func (f *fakeListClient) Enabled() bool {
	return f.enabled
}

func (f *fakeListClient) AddContact(ctx context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	f.contacts = append(f.contacts, email)
	return nil
}

func subscribeRouter(store *fakeSubscriberStore, list *fakeListClient) *chi.Mux {
	h := newSubscribeHandler(store, list)
	r := chi.NewRouter()
	r.Post("/api/subscribe", h.subscribe())
	return r
}

func postSubscribe(t *testing.T, router http.Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubscribeSuccess(t *testing.T) {
	store := &fakeSubscriberStore{}
	list := &fakeListClient{enabled: true}

	rec := postSubscribe(t, subscribeRouter(store, list), `{"email": "reader@example.com"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"error": ""}`, rec.Body.String())

	require.Len(t, store.added, 1)
	assert.Equal(t, "reader@example.com", store.added[0].Email)
	assert.Equal(t, []string{"reader@example.com"}, list.contacts)
}

func TestSubscribeInvalidEmail(t *testing.T) {
	store := &fakeSubscriberStore{}

	for _, payload := range []string{`{"email": "not-an-email"}`, `{"email": ""}`, `{}`, `broken`} {
		rec := postSubscribe(t, subscribeRouter(store, &fakeListClient{}), payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload: %s", payload)
	}
	assert.Empty(t, store.added)
}

func TestSubscribeListFailureStillSucceeds(t *testing.T) {
	store := &fakeSubscriberStore{}
	list := &fakeListClient{enabled: true, err: errors.New("resend unreachable")}

	rec := postSubscribe(t, subscribeRouter(store, list), `{"email": "reader@example.com"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.added, 1)
}

func TestSubscribeDisabledListIsLocalOnly(t *testing.T) {
	store := &fakeSubscriberStore{}
	list := &fakeListClient{enabled: false}

	rec := postSubscribe(t, subscribeRouter(store, list), `{"email": "reader@example.com"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, list.contacts)
}

func TestSubscribeDatabaseError(t *testing.T) {
	store := &fakeSubscriberStore{err: errors.New("insert failed")}

	rec := postSubscribe(t, subscribeRouter(store, &fakeListClient{}), `{"email": "reader@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
