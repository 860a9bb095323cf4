package service

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"contas/internal/auth"
	"contas/internal/files"
	"contas/internal/storage/sqlite"
)

// testEnv bundles the services under test, wired over a real temp SQLite
// store the way the server wires them.
type testEnv struct {
	router *chi.Mux
	tokens *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	uploads, err := files.New(t.TempDir())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := auth.NewTokenManager("test-secret", 0)
	authenticator := auth.NewPasswordAuthenticator(store)

	authSvc := NewAuthService(authenticator, tokens, store, uploads, logger)
	recordSvc := NewRecordService(store, logger)
	imageSvc := NewImageService(uploads, logger)

	r := chi.NewRouter()
	r.Post("/auth/register/user", authSvc.Register)
	r.Post("/auth/login", authSvc.Login)
	r.Get("/user/{id}", authSvc.GetUser)
	r.Post("/auth/debts", recordSvc.SubmitDebt)
	r.Post("/auth/revenues", recordSvc.SubmitRevenue)
	r.Get("/list/debts", recordSvc.ListDebts)
	r.Get("/list/revenues", recordSvc.ListRevenues)
	r.Put("/update/debts/{id}", recordSvc.UpdateDebt)
	r.Put("/update/revenues/{id}", recordSvc.UpdateRevenue)
	r.Delete("/delete/debt/{id}", recordSvc.DeleteDebt)
	r.Delete("/delete/revenue/{id}", recordSvc.DeleteRevenue)
	r.Get("/download/image", imageSvc.Download)

	return &testEnv{router: r, tokens: tokens}
}

// doJSON performs a request with a JSON body and decodes the JSON response.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any, headers map[string]string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

// registerForm describes a multipart registration request. Empty fields are
// omitted from the form; ImageName "" omits the file part.
type registerForm struct {
	Name            string
	Email           string
	Age             string
	Password        string
	ConfirmPassword string
	ImageName       string
}

// validForm returns a registration form that passes every check.
func validForm() registerForm {
	return registerForm{
		Name:            "Alice",
		Email:           "alice@example.com",
		Age:             "30",
		Password:        "s3cret-password",
		ConfirmPassword: "s3cret-password",
		ImageName:       "alice.png",
	}
}

// register performs a multipart POST /auth/register/user.
func (e *testEnv) register(t *testing.T, form registerForm) (int, map[string]any) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range map[string]string{
		"name":            form.Name,
		"email":           form.Email,
		"age":             form.Age,
		"password":        form.Password,
		"confirmPassword": form.ConfirmPassword,
	} {
		if value != "" {
			require.NoError(t, writer.WriteField(key, value))
		}
	}
	if form.ImageName != "" {
		part, err := writer.CreateFormFile("image", form.ImageName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/auth/register/user", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

// debtPayload builds a debts submission body from the given leaf fields.
func debtPayload(owner, month string, listMonth map[string]any) map[string]any {
	return map[string]any{
		"user": map[string]any{
			"title": owner,
			"date":  "2023-03-01",
			"month": map[string]any{
				"title":     month,
				"listMonth": listMonth,
			},
		},
	}
}

func revenuePayload(owner, month string, listMonth map[string]any) map[string]any {
	return map[string]any{
		"user": map[string]any{
			"title": owner,
			"month": map[string]any{
				"title":     month,
				"listMonth": listMonth,
			},
		},
	}
}
