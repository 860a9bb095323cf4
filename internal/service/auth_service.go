package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"contas/internal/auth"
	"contas/internal/files"
)

// maxUploadSize bounds how much of a multipart registration body is held in
// memory while parsing.
const maxUploadSize = 32 << 20 // 32 MiB

// AuthService handles registration, login and the protected user lookup.
type AuthService struct {
	authenticator *auth.PasswordAuthenticator
	tokens        *auth.TokenManager
	users         auth.UserStorage
	uploads       *files.Storage
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator *auth.PasswordAuthenticator, tokens *auth.TokenManager, users auth.UserStorage, uploads *files.Storage, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		tokens:        tokens,
		users:         users,
		uploads:       uploads,
		logger:        logger,
	}
}

// Register handles POST /auth/register/user. The body is multipart with an
// "image" file field; required fields are checked in a fixed order and the
// first missing one rejects the request with 422.
func (s *AuthService) Register(w http.ResponseWriter, r *http.Request) {
	// The body may be multipart or urlencoded; FormValue reads either.
	_ = r.ParseMultipartForm(maxUploadSize)

	name := r.FormValue("name")
	email := r.FormValue("email")
	ageValue := r.FormValue("age")
	password := r.FormValue("password")
	confirmPassword := r.FormValue("confirmPassword")

	image := ""
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image, err = s.uploads.Save(file, header)
		if errors.Is(err, files.ErrBadExtension) {
			writeMessage(w, http.StatusUnprocessableEntity, "É permitido somente o envio de jpg ou png!")
			return
		}
		if err != nil {
			s.logger.Error("Failed to store uploaded image", "filename", header.Filename, "error", err)
			writeMessage(w, http.StatusInternalServerError, serverErrorMessage)
			return
		}
	}

	// An age that does not parse counts as absent.
	age, ageErr := strconv.Atoi(ageValue)

	if msg := firstFailure([]rule{
		present(name, "O nome é obrigatório!"),
		present(email, "O email é obrigatório!"),
		{func() bool { return ageValue != "" && ageErr == nil }, "A Idade é obrigatório!"},
		present(image, "A imagem é obrigatório!"),
		present(password, "A senha é obrigatório!"),
		{func() bool { return password == confirmPassword }, "As senhas não são iguais!"},
	}); msg != "" {
		writeMessage(w, http.StatusUnprocessableEntity, msg)
		return
	}

	user, err := s.authenticator.Register(r.Context(), name, email, age, image, password)
	if errors.Is(err, auth.ErrEmailExists) {
		writeMessage(w, http.StatusUnprocessableEntity, "Já existe uma conta com esse e-mail!")
		return
	}
	if err != nil {
		s.logger.Error("Registration failed", "email", email, "error", err)
		writeMessage(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Usuario criado com sucesso!",
		"user":    user,
	})
}

// Login handles POST /auth/login: verifies the password and issues a token.
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)

	if msg := firstFailure([]rule{
		present(in.Email, "O email é obrigatório!"),
		present(in.Password, "A senha é obrigatório!"),
	}); msg != "" {
		writeMessage(w, http.StatusUnprocessableEntity, msg)
		return
	}

	user, err := s.authenticator.Authenticate(r.Context(), in.Email, in.Password)
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "Usuario não encontrado!")
		return
	case errors.Is(err, auth.ErrWrongPassword):
		writeMessage(w, http.StatusUnprocessableEntity, "Senha inválida!")
		return
	case err != nil:
		s.logger.Error("Login failed", "email", in.Email, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Aconteceu um erro no servidor, tente mais tarde!")
		return
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Aconteceu um erro no servidor, tente mais tarde!")
		return
	}

	s.logger.Info("User logged in", "user_id", user.ID, "email", user.Email)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Autenticação realizada com sucesso!",
		"token":   token,
	})
}

// GetUser handles GET /user/{id} (protected). The password hash is excluded
// from the response by the model's serialization.
func (s *AuthService) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := s.users.GetUserByID(r.Context(), id)
	if err != nil {
		s.logger.Error("Failed to get user", "user_id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "Usuario nao encontado!")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
