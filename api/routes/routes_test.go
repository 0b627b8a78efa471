package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"strings"
	"testing"
	"time"

	"medstock/api/handler"
	"medstock/api/middleware"
	"medstock/internal/dto"
	"medstock/internal/entity"
	"medstock/internal/repository"
	"medstock/internal/service"
	"medstock/internal/utils"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*echo.Echo, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	err = db.AutoMigrate(
		&entity.User{},
		&entity.Session{},
		&entity.Medicine{},
		&entity.Location{},
		&entity.SecurityLog{},
	)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	validate := dto.NewValidator()
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)

	hasher := service.Argon2PasswordHasher{}
	authService := service.NewAuthService(
		userRepo, sessionRepo, securityRepo, hasher,
		service.RealClock{},
		service.AuthConfig{SessionTTL: 30 * 24 * time.Hour},
	)
	medicineService := service.NewMedicineService(medicineRepo)
	userService := service.NewUserService(userRepo, securityRepo, hasher)
	statsService := service.NewStatsService(userRepo, medicineRepo)
	uploadService := service.NewUploadService(userRepo, t.TempDir(), "http://localhost:8080")

	sessionMiddleware := middleware.SessionMiddleware{Auth: authService}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger)

	router := NewRouter(
		e,
		handler.NewAuthHandler(authService, validate, sessionMiddleware),
		handler.NewMedicineHandler(medicineService, validate),
		handler.NewUserHandler(userService, validate),
		handler.NewUtilHandler(statsService),
		handler.NewUploadHandler(uploadService),
		sessionMiddleware,
		t.TempDir(),
	)
	router.RegisterRoutes()
	return e, db
}

func doJSON(e *echo.Echo, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// seedUser inserts a user with the password "Secret@123" plus a live session,
// bypassing the signup endpoint.
func seedUser(t *testing.T, db *gorm.DB, role entity.UserRole, disabled bool, email, phone string) (*entity.User, *http.Cookie) {
	hash, err := service.Argon2PasswordHasher{}.Hash("Secret@123")
	require.NoError(t, err)

	id, err := utils.NewID(10)
	require.NoError(t, err)
	user := &entity.User{
		ID:             id,
		Email:          email,
		Name:           "Seed User",
		PhoneNo:        phone,
		Role:           role,
		Status:         disabled,
		HashedPassword: &hash,
	}
	require.NoError(t, db.Create(user).Error)

	sessionID, err := utils.NewID(25)
	require.NoError(t, err)
	session := &entity.Session{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
	}
	require.NoError(t, db.Create(session).Error)

	return user, &http.Cookie{Name: middleware.DefaultSessionCookieName, Value: sessionID}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.DefaultSessionCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func medicinePayload(name string) map[string]any {
	return map[string]any{
		"name":     name,
		"brand":    "SBL",
		"potency":  "30C",
		"size":     "100ml",
		"quantity": 2,
		"location": map[string]any{"row": 1, "col": 2, "shelf": "left", "rack": "top"},
	}
}

func TestSignupSetsSessionCookie(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/auth/signup", map[string]any{
		"name":     "Asha Rao",
		"email":    "asha@example.com",
		"phoneNo":  "+91 9876543210",
		"password": "Secret@123",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "asha@example.com", body["email"])
	require.Equal(t, "user", body["role"])
	require.NotContains(t, rec.Body.String(), "hashedPassword")

	cookie := sessionCookie(t, rec)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
}

func TestSignupRejectsBadPhone(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/auth/signup", map[string]any{
		"name":     "Asha Rao",
		"email":    "asha@example.com",
		"phoneNo":  "9876543210",
		"password": "Secret@123",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Phone number must be in the format +91 9876543210", decodeBody(t, rec)["error"])
}

func TestLoginWrongPassword(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9876543210")

	rec := doJSON(e, http.MethodPost, "/auth/login", map[string]any{
		"email":    "asha@example.com",
		"password": "WrongPass@1",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid email or password!", decodeBody(t, rec)["error"])
}

func TestLoginDisabledAccount(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, entity.UserRoleUser, true, "asha@example.com", "+91 9876543210")

	rec := doJSON(e, http.MethodPost, "/auth/login", map[string]any{
		"email":    "asha@example.com",
		"password": "Secret@123",
	}, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Your account has been disabled by the admin!", decodeBody(t, rec)["error"])
}

func TestLogoutDeletesSession(t *testing.T) {
	e, db := newTestApp(t)
	_, cookie := seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9876543210")

	rec := doJSON(e, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	cleared := sessionCookie(t, rec)
	require.Empty(t, cleared.Value)

	var count int64
	require.NoError(t, db.Model(&entity.Session{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestMedicinesRequireSession(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/medicines", nil, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Access Denied!", decodeBody(t, rec)["error"])
}

func TestMedicineCreateForbiddenForUserRole(t *testing.T) {
	e, db := newTestApp(t)
	_, cookie := seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9876543210")

	rec := doJSON(e, http.MethodPost, "/medicines", medicinePayload("Arnica Montana"), cookie)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Access Denied!", decodeBody(t, rec)["error"])
}

func TestMedicineCrudAsAdmin(t *testing.T) {
	e, db := newTestApp(t)
	_, cookie := seedUser(t, db, entity.UserRoleAdmin, false, "admin@example.com", "+91 9876543210")

	rec := doJSON(e, http.MethodPost, "/medicines", medicinePayload("Arnica Montana"), cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	id := strconv.Itoa(int(created["id"].(float64)))

	rec = doJSON(e, http.MethodGet, "/medicines/"+id, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	require.Equal(t, "Arnica Montana", got["name"])
	require.NotNil(t, got["location"])

	payload := medicinePayload("Arnica Montana")
	payload["quantity"] = 5
	rec = doJSON(e, http.MethodPut, "/medicines/"+id, payload, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(5), decodeBody(t, rec)["quantity"])

	rec = doJSON(e, http.MethodDelete, "/medicines/"+id, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Medicine deleted!", decodeBody(t, rec)["message"])

	rec = doJSON(e, http.MethodGet, "/medicines/"+id, nil, cookie)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Medicine not found", decodeBody(t, rec)["error"])
}

func TestMedicineInvalidID(t *testing.T) {
	e, db := newTestApp(t)
	_, cookie := seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9876543210")

	rec := doJSON(e, http.MethodGet, "/medicines/abc", nil, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Id provided is invalid!", decodeBody(t, rec)["error"])
}

func TestRoleUpdateForbiddenForNonAdmin(t *testing.T) {
	e, db := newTestApp(t)
	user, cookie := seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9876543210")

	// Even against their own account.
	rec := doJSON(e, http.MethodPatch, "/users/"+user.ID, map[string]any{"role": "admin"}, cookie)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Access Denied!", decodeBody(t, rec)["error"])
}

func TestAdminUpdatesRoleAndStatus(t *testing.T) {
	e, db := newTestApp(t)
	_, adminCookie := seedUser(t, db, entity.UserRoleAdmin, false, "admin@example.com", "+91 9876543210")
	target, _ := seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9123456789")

	rec := doJSON(e, http.MethodPatch, "/users/"+target.ID, map[string]any{"role": "admin"}, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "admin", decodeBody(t, rec)["role"])

	rec = doJSON(e, http.MethodPatch, "/users/"+target.ID, map[string]any{"status": true}, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["status"])

	rec = doJSON(e, http.MethodPatch, "/users/"+target.ID, map[string]any{}, adminCookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Either role or status is required!", decodeBody(t, rec)["error"])
}

func TestUpdateDetailsSelfOnly(t *testing.T) {
	e, db := newTestApp(t)
	user, cookie := seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9876543210")
	other, _ := seedUser(t, db, entity.UserRoleUser, false, "ravi@example.com", "+91 9123456789")

	rec := doJSON(e, http.MethodPut, "/users/"+other.ID, map[string]any{
		"name":     "New Name",
		"password": "Secret@123",
	}, cookie)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodPut, "/users/"+user.ID, map[string]any{
		"name":     "New Name",
		"password": "Secret@123",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "New Name", decodeBody(t, rec)["name"])

	rec = doJSON(e, http.MethodPut, "/users/"+user.ID, map[string]any{
		"name":     "Another Name",
		"password": "WrongPass@1",
	}, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid credentials!", decodeBody(t, rec)["error"])
}

func TestBulkStatusUpdate(t *testing.T) {
	e, db := newTestApp(t)
	_, adminCookie := seedUser(t, db, entity.UserRoleAdmin, false, "admin@example.com", "+91 9876543210")
	first, _ := seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9123456789")
	second, _ := seedUser(t, db, entity.UserRoleUser, false, "ravi@example.com", "+91 9012345678")

	rec := doJSON(e, http.MethodPatch, "/users", map[string]any{
		"userIds": []string{first.ID, second.ID},
		"status":  true,
	}, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Status updated successfully!", decodeBody(t, rec)["message"])

	var disabled int64
	require.NoError(t, db.Model(&entity.User{}).Where("status = ?", true).Count(&disabled).Error)
	require.Equal(t, int64(2), disabled)
}

func TestDashboardData(t *testing.T) {
	e, db := newTestApp(t)
	_, cookie := seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9876543210")

	rec := doJSON(e, http.MethodGet, "/utils/dashboard-data", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, float64(1), body["userCount"])
	require.Equal(t, float64(1000), body["searchCount"])
	require.Equal(t, "20hrs0min", body["timeSaved"])
}

func multipartUpload(t *testing.T, fieldName, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldName, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestProfileUpload(t *testing.T) {
	e, db := newTestApp(t)
	user, cookie := seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9876543210")

	buf, contentType := multipartUpload(t, "avatar", "photo.png", "image/png", []byte("png bytes"))
	req := httptest.NewRequest(http.MethodPost, "/upload/profile", buf)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	photoURL, ok := decodeBody(t, rec)["photoUrl"].(string)
	require.True(t, ok)
	require.Contains(t, photoURL, "/public/")
	require.True(t, strings.HasSuffix(photoURL, ".png"))

	var stored entity.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.NotNil(t, stored.PhotoURL)
	require.Equal(t, photoURL, *stored.PhotoURL)
}

func TestProfileUploadRejectsNonImage(t *testing.T) {
	e, db := newTestApp(t)
	_, cookie := seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9876543210")

	buf, contentType := multipartUpload(t, "avatar", "notes.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/upload/profile", buf)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid file type. Only PNG, JPG and JPEG images are allowed.", decodeBody(t, rec)["error"])
}

func TestProfileUploadRequiresFile(t *testing.T) {
	e, db := newTestApp(t)
	_, cookie := seedUser(t, db, entity.UserRoleUser, false, "asha@example.com", "+91 9876543210")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/upload/profile", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "File is required!", decodeBody(t, rec)["error"])
}

func TestUnknownRoute(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/does-not-exist", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Page not found!", decodeBody(t, rec)["error"])
}
