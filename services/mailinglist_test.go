package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailingListDisabledWithoutCredentials(t *testing.T) {
	ml := NewMailingList(map[string]string{})

	assert.False(t, ml.Enabled())

	err := ml.AddContact(context.Background(), "reader@example.com")
	require.Error(t, err)
}

func TestAddContact(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody ResendContactRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "contact-123"}`))
	}))
	defer server.Close()

	ml := NewMailingList(map[string]string{
		"RESEND_API_KEY":     "re_test_key",
		"RESEND_AUDIENCE_ID": "aud-1",
		"RESEND_BASE_URL":    server.URL,
	})
	require.True(t, ml.Enabled())

	err := ml.AddContact(context.Background(), "reader@example.com")

	require.NoError(t, err)
	assert.Equal(t, "/audiences/aud-1/contacts", gotPath)
	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "reader@example.com", gotBody.Email)
}

func TestAddContactAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "Invalid email address"}`))
	}))
	defer server.Close()

	ml := NewMailingList(map[string]string{
		"RESEND_API_KEY":     "re_test_key",
		"RESEND_AUDIENCE_ID": "aud-1",
		"RESEND_BASE_URL":    server.URL,
	})

	err := ml.AddContact(context.Background(), "broken")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email address")
	assert.Contains(t, err.Error(), "422")
}
