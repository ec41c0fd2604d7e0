package traccar

import (
	"context"
	"net/http"
	"testing"

	"trackio/internal/domain/entity"
	"trackio/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":5,"name":"Ana Ruiz","email":"ana@example.com"}`)
	})

	user := &entity.TrackingUser{
		Name:       "Ana Ruiz",
		Email:      "ana@example.com",
		Password:   "secret",
		Attributes: map[string]any{entity.TrackingAttrFirstName: "Ana"},
	}
	created, err := client.CreateUser(context.Background(), user, "admin@example.com", "adminpw")
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)

	got := (*calls)[0]
	assert.Equal(t, "/api/users", got.Path)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"name":"Ana Ruiz","email":"ana@example.com","password":"secret","administrator":false,"readonly":false,"attributes":{"first_name":"Ana"}}`, got.Body)
	username, _, ok := (&http.Request{Header: got.Header}).BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", username)
}

func TestCreateUser_MissingAdmin(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.CreateUser(context.Background(), &entity.TrackingUser{}, "", "")
	assert.ErrorIs(t, err, service.ErrTrackingConfiguration)
	assert.Empty(t, *calls)
}

func TestUpdateUser_CarriesID(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":9,"email":"new@example.com"}`)
	})

	updated, err := client.UpdateUser(context.Background(), 9, &entity.TrackingUser{Email: "new@example.com"}, "old@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)

	got := (*calls)[0]
	assert.Equal(t, http.MethodPut, got.Method)
	assert.Equal(t, "/api/users/9", got.Path)
	assert.Contains(t, got.Body, `"id":9`)
}

func TestDeleteUser(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteUser(context.Background(), 4, "admin", "pw"))
	assert.Equal(t, http.MethodDelete, (*calls)[0].Method)
	assert.Equal(t, "/api/users/4", (*calls)[0].Path)
}

func TestResetPassword(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.ResetPassword(context.Background(), " ana@example.com "))
	assert.Equal(t, "/api/password/reset", (*calls)[0].Path)
	assert.Equal(t, "email=ana%40example.com", (*calls)[0].Body)
}
