package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(tokens *token.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(tokens, zap.NewNop()), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no identity in context")
			return
		}
		c.String(http.StatusOK, id.String())
	})
	return r
}

func doRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidAccessToken(t *testing.T) {
	t.Parallel()

	tokens := token.NewManager("test-secret", 15*time.Minute, 7*24*time.Hour)
	r := newTestRouter(tokens)

	userID := uuid.New()
	raw, err := tokens.Issue(userID, token.KindAccess)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+raw)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())
}

func TestAuth_Rejections(t *testing.T) {
	t.Parallel()

	tokens := token.NewManager("test-secret", 15*time.Minute, 7*24*time.Hour)
	r := newTestRouter(tokens)

	refresh, err := tokens.Issue(uuid.New(), token.KindRefresh)
	require.NoError(t, err)

	expired := token.NewManager("test-secret", -time.Second, -time.Second)
	expiredAccess, err := expired.Issue(uuid.New(), token.KindAccess)
	require.NoError(t, err)

	forged, err := token.NewManager("other-secret", 15*time.Minute, time.Hour).Issue(uuid.New(), token.KindAccess)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"missing token", "Bearer"},
		{"garbage token", "Bearer not.a.jwt"},
		{"refresh token on protected route", "Bearer " + refresh},
		{"expired token", "Bearer " + expiredAccess},
		{"forged signature", "Bearer " + forged},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			bodies = append(bodies, w.Body.String())
		})
	}

	// Every rejection carries the exact same body; nothing reveals which
	// check failed.
	for _, b := range bodies {
		assert.Equal(t, bodies[0], b)
	}
}

func TestAuth_ResponseShape(t *testing.T) {
	t.Parallel()

	tokens := token.NewManager("test-secret", 15*time.Minute, 7*24*time.Hour)
	r := newTestRouter(tokens)

	w := doRequest(r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		Success    bool   `json:"success"`
		StatusCode int    `json:"status_code"`
		Error      string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
	assert.Equal(t, "Invalid credentials", body.Error)
}

func TestUserID_NotSet(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := UserID(c)
	assert.False(t, ok)
}
