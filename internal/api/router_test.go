package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	iauth "github.com/elsmrh/sami-yaya/internal/auth"
	"github.com/elsmrh/sami-yaya/internal/database/testutil"
	"github.com/elsmrh/sami-yaya/internal/models"
	"github.com/elsmrh/sami-yaya/internal/notify"
	"github.com/elsmrh/sami-yaya/internal/wishes"
)

const testPassword = "mariage2026"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.MustOpenTestDB(t)
	sessions, err := iauth.NewSessionService(iauth.Config{AdminPassword: testPassword})
	require.NoError(t, err)

	router, err := NewRouter(db, sessions, notify.NewNotifier(nil, notify.Config{}), wishes.NewService(wishes.Config{}))
	require.NoError(t, err)
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()

	recorder := doJSON(router, http.MethodPost, "/api/login", "", gin.H{"password": testPassword})
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestSubmitValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	cases := []gin.H{
		{"email": "a@b.fr", "attendance": "yes"},
		{"name": "Jean", "attendance": "yes"},
		{"name": "Jean", "email": "a@b.fr"},
		{"name": "Jean", "email": "a@b.fr", "attendance": "peut-être"},
	}
	for _, payload := range cases {
		recorder := doJSON(router, http.MethodPost, "/api/rsvp", "", payload)
		require.Equal(t, http.StatusBadRequest, recorder.Code, "payload %v", payload)
		require.Contains(t, recorder.Body.String(), "error")
	}
}

func TestSubmitNormalizesCounts(t *testing.T) {
	router := newTestRouter(t)

	// Attending without counts defaults to one adult.
	recorder := doJSON(router, http.MethodPost, "/api/rsvp", "", gin.H{
		"name": "Jean", "email": "jean@x.com", "attendance": "yes",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Declining zeroes whatever counts were sent.
	recorder = doJSON(router, http.MethodPost, "/api/rsvp", "", gin.H{
		"name": "Marie", "email": "marie@x.com", "attendance": "no", "guests": 3, "children": 2,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	token := login(t, router)
	listRecorder := doJSON(router, http.MethodGet, "/api/rsvps", token, nil)
	require.Equal(t, http.StatusOK, listRecorder.Code)

	var records []models.Rsvp
	require.NoError(t, json.Unmarshal(listRecorder.Body.Bytes(), &records))
	require.Len(t, records, 2)

	require.Equal(t, 1, records[0].Guests)
	require.Equal(t, 0, records[0].Children)
	require.Equal(t, 0, records[1].Guests)
	require.Equal(t, 0, records[1].Children)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(router, http.MethodPost, "/api/login", "", gin.H{"password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.Contains(t, recorder.Body.String(), "error")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodGet, "/api/rsvps", "", nil).Code)
	require.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodDelete, "/api/rsvps/some-id", "bogus", nil).Code)
	require.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodPost, "/api/logout", "bogus", nil).Code)
}

func TestDeleteUnknownIDReturns404(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	recorder := doJSON(router, http.MethodDelete, "/api/rsvps/does-not-exist", token, nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestWishFallbackWithoutAPIKey(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(router, http.MethodPost, "/api/wish", "", gin.H{
		"relationship": "cousin", "tone": "Touchant",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), wishes.FallbackWish)
}

func TestSubmitLoginListDeleteLogoutFlow(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(router, http.MethodPost, "/api/rsvp", "", gin.H{
		"name":                "Jean Dupont",
		"email":               "jean.d@x.com",
		"attendance":          "yes",
		"guests":              2,
		"children":            1,
		"dietaryRestrictions": "vegan",
		"message":             "Félicitations !",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	require.Contains(t, recorder.Body.String(), `"success":true`)

	token := login(t, router)

	listRecorder := doJSON(router, http.MethodGet, "/api/rsvps", token, nil)
	require.Equal(t, http.StatusOK, listRecorder.Code)

	var records []models.Rsvp
	require.NoError(t, json.Unmarshal(listRecorder.Body.Bytes(), &records))
	require.Len(t, records, 1)
	require.Equal(t, "Jean Dupont", records[0].Name)
	require.Equal(t, 2, records[0].Guests)
	require.NotEmpty(t, records[0].ID)

	deleteRecorder := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/rsvps/%s", records[0].ID), token, nil)
	require.Equal(t, http.StatusOK, deleteRecorder.Code)

	listRecorder = doJSON(router, http.MethodGet, "/api/rsvps", token, nil)
	require.Equal(t, http.StatusOK, listRecorder.Code)
	require.Equal(t, "[]", listRecorder.Body.String())

	logoutRecorder := doJSON(router, http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, logoutRecorder.Code)

	// The revoked token must no longer grant access.
	require.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodGet, "/api/rsvps", token, nil).Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "ok")
}
