package handlers

import (
	"errors"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"JEWELVISTA_BACK-END/internal/config"
	"JEWELVISTA_BACK-END/internal/dto"
	"JEWELVISTA_BACK-END/internal/middleware"
	"JEWELVISTA_BACK-END/internal/models"
	"JEWELVISTA_BACK-END/internal/storage"
	"JEWELVISTA_BACK-END/internal/utils"
)

// AuthHandler handles registration, login, logout and the landing pages
type AuthHandler struct {
	users   storage.UserStore
	session *config.SessionConfig
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users storage.UserStore, session *config.SessionConfig) *AuthHandler {
	return &AuthHandler{users: users, session: session}
}

// Home handles GET / and reflects the caller's login state
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := dto.HomeResponse{}
	if claims, ok := middleware.SessionFromRequest(r, h.session); ok {
		resp.LoggedIn = true
		resp.Username = claims.Username
	}

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with email, username, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.RegisterResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
			Message: "Register with email, username and password.",
		})
		return
	case http.MethodPost:
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, isJSON, ok := h.decodeRegister(w, r)
	if !ok {
		return
	}

	// Normalize email at the entry point
	req.Email = utils.NormalizeEmail(req.Email)

	// Validate required fields
	if req.Email == "" || req.Username == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email, username, and password are required")
		return
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		LoginCount:   0,
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			utils.WriteErrorResponse(w, http.StatusConflict, "User already exists", "Email already registered")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Registration error", err.Error())
		return
	}

	if isJSON {
		utils.WriteJSONResponse(w, http.StatusCreated, dto.RegisterResponse{
			Message: "Registration successful",
			Email:   user.Email,
		})
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
			Message: "Login with email and password.",
		})
		return
	case http.MethodPost:
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	isJSON := utils.IsJSONRequest(r)
	if isJSON {
		if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid form data", err.Error())
			return
		}
		req.Email = r.PostFormValue("email")
		req.Password = r.PostFormValue("password")
	}

	req.Email = utils.NormalizeEmail(req.Email)

	// Validate required fields
	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email and password are required")
		return
	}

	// Fetch user and verify password. A missing user and a wrong password
	// produce the same generic message, so callers cannot enumerate emails.
	user, err := h.users.Get(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.writeInvalidCredentials(w, isJSON)
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Login error", err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.writeInvalidCredentials(w, isJSON)
		return
	}

	// Establish session
	token, err := middleware.GenerateSessionToken(user.Email, user.Username, h.session)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate session", err.Error())
		return
	}
	middleware.SetSessionCookie(w, token, h.session)

	// Best-effort login counter bump; a failure never blocks the login
	if err := h.users.IncrementLoginCount(r.Context(), user.Email); err != nil {
		log.Printf("login count increment failed for %s: %v", user.Email, err)
	}

	if isJSON {
		utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
			Message:  "Login successful",
			Email:    user.Email,
			Username: user.Username,
		})
		return
	}

	http.Redirect(w, r, "/user_dashboard", http.StatusSeeOther)
}

// Logout destroys the session unconditionally
// @Summary Logout user
// @Tags authentication
// @Success 303 "Redirects to login"
// @Router /logout [get]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w, h.session)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Dashboard returns the authenticated landing payload
// @Summary User dashboard
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /user_dashboard [get]
func (h *AuthHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	user, err := h.users.Get(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "No record for session identity")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Dashboard error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DashboardResponse{
		Email:      user.Email,
		Username:   user.Username,
		LoginCount: user.LoginCount,
	})
}

func (h *AuthHandler) decodeRegister(w http.ResponseWriter, r *http.Request) (dto.RegisterRequest, bool, bool) {
	var req dto.RegisterRequest
	isJSON := utils.IsJSONRequest(r)
	if isJSON {
		if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
			return req, isJSON, false
		}
		return req, isJSON, true
	}

	if err := r.ParseForm(); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid form data", err.Error())
		return req, isJSON, false
	}
	req.Email = r.PostFormValue("email")
	req.Username = r.PostFormValue("username")
	req.Password = r.PostFormValue("password")
	return req, isJSON, true
}

func (h *AuthHandler) writeInvalidCredentials(w http.ResponseWriter, isJSON bool) {
	if isJSON {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
		return
	}
	http.Error(w, "Invalid Credentials. Please try again.", http.StatusUnauthorized)
}
