package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	auction "auction-marketplace/internal/auctionService"
	catalog "auction-marketplace/internal/catalogService"
	intake "auction-marketplace/internal/intakeService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
)

var testSecret = []byte("integration-test-secret")

// TestEnv bundles a router backed by a fresh in-memory database and a
// controllable clock.
type TestEnv struct {
	Router *gin.Engine
	Repo   *repository.GormRepo
	now    time.Time
}

// SetupTestEnv initializes the full HTTP stack for integration testing.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	repo, err := repository.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	require.NoError(t, repo.SeedDefaultCategories())

	env := &TestEnv{
		Repo: repo,
		now:  time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	auctionSvc := auction.NewAuctionService(repo).WithClock(func() time.Time { return env.now })
	catalogSvc := catalog.NewCatalogService(repo)
	intakeSvc := intake.NewIntakeService(repo)
	env.Router = server.SetupRouter(auctionSvc, catalogSvc, intakeSvc, testSecret)

	return env
}

// Now returns the current test clock reading.
func (env *TestEnv) Now() time.Time { return env.now }

// Advance moves the test clock forward.
func (env *TestEnv) Advance(d time.Duration) { env.now = env.now.Add(d) }

// SeedUser inserts a user and returns a bearer token for it.
func (env *TestEnv) SeedUser(t *testing.T, displayName string, isAdmin bool) (model.User, string) {
	t.Helper()
	user, err := env.Repo.CreateUser(model.User{
		Email:       fmt.Sprintf("%s@example.com", uuid.NewString()),
		DisplayName: displayName,
		IsAdmin:     isAdmin,
	})
	require.NoError(t, err)
	return user, env.Token(t, user.ID, isAdmin)
}

// Token mints a signed bearer token for the given identity.
func (env *TestEnv) Token(t *testing.T, userID string, isAdmin bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

// Do executes a request against the test router and parses the envelope.
func (env *TestEnv) Do(t *testing.T, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// Data unwraps the data field of a response envelope as an object.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response envelope has no object data: %v", resp)
	return data
}
