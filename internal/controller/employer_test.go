package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhnnhnvn/pythonvietnam/internal/database"
	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
	"github.com/khanhnnhnvn/pythonvietnam/internal/testutil"
)

func validEmployerPayload() map[string]interface{} {
	return map[string]interface{}{
		"company_name":         "New Startup JSC",
		"website":              "https://newstartup.example.com",
		"company_introduction": "We build developer tooling for Vietnamese software teams.",
		"contact_info":         "hr@newstartup.example.com",
	}
}

func TestApplyAsEmployer(t *testing.T) {
	env := newTestEnv(t)
	user := sessionCookie(t, database.PlainUser)

	w := testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/employer-applications", validEmployerPayload(), user)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got model.EmployerApplication
	testutil.DecodeJSON(t, w, &got)
	assert.Equal(t, model.EmployerStatusPending, got.Status)
	assert.Equal(t, database.PlainUser.ID, got.UserID)

	// A second application while one is open is refused.
	w = testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/employer-applications", validEmployerPayload(), user)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApplyAsEmployer_requiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/employer-applications", validEmployerPayload())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApproveEmployerApplication(t *testing.T) {
	env := newTestEnv(t)
	admin := sessionCookie(t, database.AdminUser)

	w := testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/employer-applications", validEmployerPayload(), sessionCookie(t, database.PlainUser))
	require.Equal(t, http.StatusCreated, w.Code)
	var app model.EmployerApplication
	testutil.DecodeJSON(t, w, &app)

	w = testutil.MakeJSONRequest(t, env.router, http.MethodPatch, fmt.Sprintf("/api/v1/employer-applications/%d/approve", app.ID), nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored model.EmployerApplication
	require.NoError(t, env.db.DB.First(&stored, app.ID).Error)
	assert.Equal(t, model.EmployerStatusApproved, stored.Status)

	var user model.User
	require.NoError(t, env.db.DB.First(&user, "id = ?", database.PlainUser.ID).Error)
	assert.Equal(t, model.RoleEmployer, user.Role)

	// Deciding twice fails; the first decision stands.
	w = testutil.MakeJSONRequest(t, env.router, http.MethodPatch, fmt.Sprintf("/api/v1/employer-applications/%d/approve", app.ID), nil, admin)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = testutil.MakeJSONRequest(t, env.router, http.MethodPatch, fmt.Sprintf("/api/v1/employer-applications/%d/reject", app.ID), nil, admin)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApproveEmployerApplication_rollsBackWhenRoleUpdateFails(t *testing.T) {
	env := newTestEnv(t)
	admin := sessionCookie(t, database.AdminUser)

	// An application whose user row does not exist makes the role update
	// touch zero rows, which must roll the status change back too.
	app := model.EmployerApplication{
		UserID:              "google-oauth2|vanished-user",
		CompanyName:         "Ghost Co",
		CompanyIntroduction: "A company whose account row has disappeared.",
		ContactInfo:         "ghost@example.com",
		Status:              model.EmployerStatusPending,
	}
	require.NoError(t, env.db.DB.Create(&app).Error)

	w := testutil.MakeJSONRequest(t, env.router, http.MethodPatch, fmt.Sprintf("/api/v1/employer-applications/%d/approve", app.ID), nil, admin)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var stored model.EmployerApplication
	require.NoError(t, env.db.DB.First(&stored, app.ID).Error)
	assert.Equal(t, model.EmployerStatusPending, stored.Status, "failed approval must leave the application pending")
}

func TestRejectEmployerApplication_allowsRetry(t *testing.T) {
	env := newTestEnv(t)
	admin := sessionCookie(t, database.AdminUser)
	user := sessionCookie(t, database.PlainUser)

	w := testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/employer-applications", validEmployerPayload(), user)
	require.Equal(t, http.StatusCreated, w.Code)
	var app model.EmployerApplication
	testutil.DecodeJSON(t, w, &app)

	w = testutil.MakeJSONRequest(t, env.router, http.MethodPatch, fmt.Sprintf("/api/v1/employer-applications/%d/reject", app.ID), nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The user keeps their role and may apply again.
	var stored model.User
	require.NoError(t, env.db.DB.First(&stored, "id = ?", database.PlainUser.ID).Error)
	assert.Equal(t, model.RoleUser, stored.Role)

	w = testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/employer-applications", validEmployerPayload(), user)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestEmployerApplicationDecisions_adminOnly(t *testing.T) {
	env := newTestEnv(t)

	w := testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/employer-applications", validEmployerPayload(), sessionCookie(t, database.PlainUser))
	require.Equal(t, http.StatusCreated, w.Code)
	var app model.EmployerApplication
	testutil.DecodeJSON(t, w, &app)

	w = testutil.MakeJSONRequest(t, env.router, http.MethodPatch, fmt.Sprintf("/api/v1/employer-applications/%d/approve", app.ID), nil, sessionCookie(t, database.EmployerUser1))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.MakeJSONRequest(t, env.router, http.MethodGet, "/api/v1/employer-applications", nil, sessionCookie(t, database.PlainUser))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListEmployerApplications_includesApplicantDetails(t *testing.T) {
	env := newTestEnv(t)

	w := testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/employer-applications", validEmployerPayload(), sessionCookie(t, database.PlainUser))
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.MakeJSONRequest(t, env.router, http.MethodGet, "/api/v1/employer-applications", nil, sessionCookie(t, database.AdminUser))
	require.Equal(t, http.StatusOK, w.Code)

	var rows []model.EmployerApplicationRow
	testutil.DecodeJSON(t, w, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, database.PlainUser.Name, rows[0].UserName)
	assert.Equal(t, *database.PlainUser.Email, rows[0].UserEmail)
}
