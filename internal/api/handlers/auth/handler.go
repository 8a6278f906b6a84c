package auth

import (
	"errors"
	"net/http"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/sparkleclean/booking-service/internal/api/handlers"
	"github.com/sparkleclean/booking-service/internal/config"
	workersSvc "github.com/sparkleclean/booking-service/internal/service/workers"
	"github.com/sparkleclean/booking-service/pkg/token"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "invalid username or password"
)

// LoginRequest HTTP request model for both login endpoints.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model for the admin/owner login.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// WorkerLoginResponse HTTP response model for the worker login.
type WorkerLoginResponse struct {
	Token  string                     `json:"token"`
	Role   string                     `json:"role"`
	Worker *workersSvc.WorkerResponse `json:"worker"`
}

type Handler struct {
	workers WorkersService
	issuer  TokenIssuer
	auth    config.AuthConfig
	logger  Logger
}

func NewHandler(workers WorkersService, issuer TokenIssuer, auth config.AuthConfig, logger Logger) *Handler {
	return &Handler{
		workers: workers,
		issuer:  issuer,
		auth:    auth,
		logger:  logger,
	}
}

// HandleLogin POST /api/v1/auth/login
// Admin and owner logins are checked against the configured bcrypt
// hashes; the role claim comes from which identity matched, never from
// the request.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	role := ""
	switch {
	case req.Username == h.auth.AdminUsername &&
		checkPassword(h.auth.AdminPasswordHash, req.Password):
		role = token.RoleAdmin
	case req.Username == h.auth.OwnerUsername &&
		checkPassword(h.auth.OwnerPasswordHash, req.Password):
		role = token.RoleOwner
	default:
		h.logger.Warn("POST /auth/login - failed login for username=%s", req.Username)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
		return
	}

	signed, err := h.issuer.Issue(req.Username, role, req.Username)
	if err != nil {
		h.logger.Error("POST /auth/login - failed to issue token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - %s logged in as %s", req.Username, role)
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{
		Token: signed,
		Role:  role,
		Name:  req.Username,
	})
}

// HandleWorkerLogin POST /api/v1/auth/worker-login
// The token subject carries the worker's staff id so worker-scoped
// endpoints can pin queries to their own assignments.
func (h *Handler) HandleWorkerLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/worker-login - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	worker, err := h.workers.Authenticate(r.Context(), &workersSvc.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, workersSvc.ErrInvalidCredentials) {
			h.logger.Warn("POST /auth/worker-login - failed login for username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /auth/worker-login - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	signed, err := h.issuer.Issue(strconv.FormatInt(worker.StaffID, 10), token.RoleWorker, worker.Name)
	if err != nil {
		h.logger.Error("POST /auth/worker-login - failed to issue token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/worker-login - worker id=%d logged in", worker.ID)
	handlers.RespondJSON(w, http.StatusOK, &WorkerLoginResponse{
		Token:  signed,
		Role:   token.RoleWorker,
		Worker: worker,
	})
}

func checkPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
