package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/auth"
	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
	"github.com/StinkyJeans/Ecommerce-sub000/testutil"
)

const secret = "test-secret"

func newGuardedRouter(db *gorm.DB, roles ...models.Role) *gin.Engine {
	r := testutil.NewRouter()
	handlers := []gin.HandlerFunc{middleware.ValidateToken(db, secret)}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		p, _ := middleware.GetPrincipal(c)
		responses.OK(c, responses.Envelope{"username": p.Username, "role": p.Role})
	})
	r.GET("/guarded", handlers...)
	return r
}

func seedUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Username: "alice", Email: "alice@x.com", PasswordHash: "x", Role: role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestValidateTokenResolvesPrincipal(t *testing.T) {
	db := testutil.OpenDB(t)
	user := seedUser(t, db, models.RoleUser)
	token, err := auth.IssueToken(user, secret, time.Hour)
	require.NoError(t, err)

	r := newGuardedRouter(db)
	w := testutil.PerformJSONAuth(t, r, "GET", "/guarded", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := testutil.DecodeBody(t, w)
	assert.Equal(t, "alice", body["username"])
}

func TestValidateTokenFailures(t *testing.T) {
	db := testutil.OpenDB(t)
	user := seedUser(t, db, models.RoleUser)

	r := newGuardedRouter(db)

	// missing header
	w := testutil.PerformJSON(t, r, "GET", "/guarded", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage token
	w = testutil.PerformJSONAuth(t, r, "GET", "/guarded", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// token signed with a different secret
	badToken, err := auth.IssueToken(user, "other-secret", time.Hour)
	require.NoError(t, err)
	w = testutil.PerformJSONAuth(t, r, "GET", "/guarded", badToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// expired token
	expired, err := auth.IssueToken(user, secret, -time.Hour)
	require.NoError(t, err)
	w = testutil.PerformJSONAuth(t, r, "GET", "/guarded", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsDeletedUser(t *testing.T) {
	db := testutil.OpenDB(t)
	user := seedUser(t, db, models.RoleUser)
	token, err := auth.IssueToken(user, secret, time.Hour)
	require.NoError(t, err)

	// valid token, but the application row is gone
	require.NoError(t, db.Delete(user).Error)

	r := newGuardedRouter(db)
	w := testutil.PerformJSONAuth(t, r, "GET", "/guarded", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleDistinguishes401And403(t *testing.T) {
	db := testutil.OpenDB(t)
	user := seedUser(t, db, models.RoleUser)
	token, err := auth.IssueToken(user, secret, time.Hour)
	require.NoError(t, err)

	r := newGuardedRouter(db, models.RoleAdmin)

	// authenticated but wrong role: 403
	w := testutil.PerformJSONAuth(t, r, "GET", "/guarded", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// unauthenticated: 401
	w = testutil.PerformJSON(t, r, "GET", "/guarded", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleAcceptsAnyListedRole(t *testing.T) {
	db := testutil.OpenDB(t)
	user := seedUser(t, db, models.RoleSeller)
	token, err := auth.IssueToken(user, secret, time.Hour)
	require.NoError(t, err)

	r := newGuardedRouter(db, models.RoleSeller, models.RoleAdmin)
	w := testutil.PerformJSONAuth(t, r, "GET", "/guarded", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
