package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"contactcrm/internal/crm"
	"contactcrm/internal/database"
	"contactcrm/internal/http/middleware"
	"contactcrm/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// newTestRouter builds the full API surface against a fresh sqlite
// database and in-memory blobs, mirroring the production wiring.
func newTestRouter(t *testing.T) (*gin.Engine, *storage.MemoryStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	database.SetConnect(db)
	require.NoError(t, database.AutoMigrate())

	blobs := storage.NewMemoryStorage()
	service := crm.NewService(blobs)

	r := gin.New()

	authH := &AuthHandler{JWTSecret: testSecret}
	r.POST("/api/v1/auth/register", authH.Register)
	r.POST("/api/v1/auth/login", authH.Login)

	blobH := &BlobHandler{Blobs: blobs}
	r.GET("/storage/*key", blobH.Serve)

	authed := r.Group("/api/v1")
	authed.Use(middleware.AuthMiddleware(testSecret))

	contactH := &ContactHandler{Service: service}
	authed.GET("/contacts", contactH.List)
	authed.POST("/contacts", contactH.Create)
	authed.GET("/contacts/:id", contactH.Show)
	authed.PUT("/contacts/:id", contactH.Update)
	authed.DELETE("/contacts/:id", contactH.Delete)
	authed.POST("/contacts/:id/notes", contactH.AddNote)
	authed.POST("/contacts/:id/activities", contactH.AddActivity)
	authed.POST("/contacts/check-duplicates", contactH.CheckDuplicates)
	authed.PUT("/activities/:id/complete", contactH.CompleteActivity)

	companyH := &CompanyHandler{Service: service}
	authed.GET("/companies", companyH.List)
	authed.GET("/companies/industries", companyH.Industries)
	authed.POST("/companies", companyH.Create)
	authed.GET("/companies/:id", companyH.Show)
	authed.PUT("/companies/:id", companyH.Update)
	authed.DELETE("/companies/:id", companyH.Delete)

	groupH := &GroupHandler{Service: service}
	authed.GET("/groups", groupH.List)
	authed.POST("/groups", groupH.Create)
	authed.GET("/groups/:id", groupH.Show)
	authed.PUT("/groups/:id", groupH.Update)
	authed.DELETE("/groups/:id", groupH.Delete)

	dashboardH := &DashboardHandler{}
	authed.GET("/dashboard", dashboardH.Show)

	return r, blobs
}

func tokenFor(t *testing.T, userID uint) string {
	t.Helper()

	claims := middleware.AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// doJSON performs an authenticated JSON request. userID 0 skips the
// Authorization header.
func doJSON(t *testing.T, r *gin.Engine, method, path string, userID uint, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, userID))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newAuthedRequest(t *testing.T, method, path, token string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func contactPath(id uint) string {
	return "/api/v1/contacts/" + strconv.FormatUint(uint64(id), 10)
}

func activityPath(id uint) string {
	return "/api/v1/activities/" + strconv.FormatUint(uint64(id), 10) + "/complete"
}

func createContact(t *testing.T, r *gin.Engine, userID uint, fields gin.H) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/contacts", userID, fields)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}
