package controller_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/khanhnnhnvn/pythonvietnam/internal/aiassist"
	"github.com/khanhnnhnvn/pythonvietnam/internal/auth"
	"github.com/khanhnnhnvn/pythonvietnam/internal/controller"
	"github.com/khanhnnhnvn/pythonvietnam/internal/database"
	"github.com/khanhnnhnvn/pythonvietnam/internal/logging"
	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
	"github.com/khanhnnhnvn/pythonvietnam/internal/server"
	"github.com/khanhnnhnvn/pythonvietnam/internal/storage"
)

type testEnv struct {
	db     *database.DBinstanceStruct
	router *gin.Engine
	dir    string
}

// newTestEnv boots a real database in a container and the full router on top
// of it, so tests exercise routing, middleware and handlers together.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("SECRET_KEY", "controller-test-secret")

	db := database.GetTestDB(t)
	t.Cleanup(func() { db.Close() })

	dir := t.TempDir()
	saver, err := storage.NewLocalSaver(dir)
	if err != nil {
		t.Fatalf("create local saver: %v", err)
	}

	logger := logging.NewLogger()
	ct := controller.New(db, logger, saver, aiassist.NewClientFromEnv())
	return &testEnv{
		db:     db,
		router: server.New(ct, db, logger, dir),
		dir:    dir,
	}
}

// sessionCookie signs a session for the given fixture user.
func sessionCookie(t *testing.T, user model.User) *http.Cookie {
	t.Helper()
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("sign session token: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}
