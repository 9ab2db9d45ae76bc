package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renthub/apperr"
	"renthub/db"
	"renthub/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondAppError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{apperr.Denied(apperr.ReasonNotOwner), http.StatusForbidden},
		{apperr.Denied(apperr.ReasonUnauthenticated), http.StatusUnauthorized},
		{apperr.RoleRequired(models.ROLE_OWNER), http.StatusForbidden},
		{apperr.Invalid("status", "invalid"), http.StatusBadRequest},
		{apperr.NotFound("property"), http.StatusNotFound},
		{apperr.Conflict("busy"), http.StatusConflict},
		{apperr.ErrInvalidOrExpired, http.StatusBadRequest},
		{apperr.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperr.ErrUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", apperr.NotFound("rental")), http.StatusNotFound},
		{apperr.Storage("find user", errors.New("driver: bad connection")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
			RespondAppError(c, tt.err)
			assert.Equal(t, tt.code, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestStorageErrorsAreNotLeaked(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	RespondAppError(c, apperr.Storage("find user", errors.New("pq: password authentication failed")))
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("s3cret", time.Hour)
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return now }

	token, exp, err := issuer.Issue(models.User{ID: 9, Role: models.ROLE_OWNER})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour).Unix(), exp)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(9), claims.Sub)
	assert.Equal(t, models.ROLE_OWNER, claims.Role)

	_, err = NewTokenIssuer("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, errInvalidToken)

	_, err = issuer.Parse(token[:len(token)-2] + "xx")
	assert.ErrorIs(t, err, errInvalidToken)

	now = now.Add(2 * time.Hour)
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, errTokenExpired)
}

func TestAuthMiddleware(t *testing.T) {
	g, err := db.ConnectSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(g))
	defer g.Close()
	s := db.NewStore(g)

	user := models.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "x", Role: models.ROLE_TENANT}
	require.NoError(t, s.Users().Create(&user))

	tokens := NewTokenIssuer("s3cret", time.Hour)
	h := NewHandler(Options{Users: s.Users(), Tokens: tokens})
	token, _, err := tokens.Issue(user)
	require.NoError(t, err)
	ghost, _, err := tokens.Issue(models.User{ID: 999})
	require.NoError(t, err)

	r := gin.New()
	whoami := func(c *gin.Context) {
		p := principal(c)
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "role": p.Role})
	}
	r.GET("/required", h.AuthRequired(), whoami)
	r.GET("/optional", h.AuthOptional(), whoami)

	call := func(path, auth string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, call("/required", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call("/required", "Bearer nope").Code)
	assert.Equal(t, http.StatusUnauthorized, call("/required", "Bearer "+ghost).Code)

	w := call("/required", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"role":"tenant"}`, user.ID), w.Body.String())

	w = call("/optional", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":0,"role":""}`, w.Body.String())
	assert.Equal(t, http.StatusUnauthorized, call("/optional", "Bearer nope").Code)
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("start_date", "2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = parseDate("start_date", "")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = parseDate("start_date", "01/02/2026")
	var invalid *apperr.ValidationError
	assert.ErrorAs(t, err, &invalid)
}
