package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"textpay/internal/core"
	"textpay/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Authenticate = "POST /admin/authenticate"
	GetStats     = "GET /admin/stats"
	ResetLimits  = "POST /admin/reset-limits"
)

type AdminHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	admin            AdminService
	limiter          LimiterAdmin
	tokens           TokenValidator
}

func NewAdminHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, admin AdminService, limiter LimiterAdmin, tokens TokenValidator) *AdminHandler {
	return &AdminHandler{
		logs:             logger,
		requestValidator: requestValidator,
		admin:            admin,
		limiter:          limiter,
		tokens:           tokens,
	}
}

func (h *AdminHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.admin.Authenticate(r.Context(), core.AuthMessage{
		Username: payload.Username,
		Password: payload.Password,
	})
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrOperatorNotFound) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else if errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			httpCode = http.StatusInternalServerError
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorized(w, r, GetStats, requestId) {
		return
	}

	stats, err := h.limiter.GlobalStats(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve stats",
			Error:   fmt.Errorf("get global stats: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get global stats",
			"error", err,
			"handler", GetStats,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"total_messages_today": stats.TotalMessagesToday,
		"active_users":         stats.ActiveUsers,
		"near_limit_users":     stats.NearLimitUsers,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *AdminHandler) HandleResetLimits(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorized(w, r, ResetLimits, requestId) {
		return
	}

	summary, err := h.limiter.ResetAllCounters(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not reset limits",
			Error:   fmt.Errorf("reset counters: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to reset rate counters",
			"error", err,
			"handler", ResetLimits,
			"request_id", requestId)
		return
	}

	h.logs.Infow("rate limits reset",
		"reset_count", summary.ResetCount,
		"handler", ResetLimits,
		"request_id", requestId)

	resp := map[string]any{
		"reset_count": summary.ResetCount,
		"daily_limit": summary.DailyLimit,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *AdminHandler) authorized(w http.ResponseWriter, r *http.Request, route string, requestId string) bool {
	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", route, "request_id", requestId)
		return false
	}

	if _, err := h.tokens.Validate(authToken); err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "invalid token",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("token validation failed", "error", err, "handler", route, "request_id", requestId)
		return false
	}

	return true
}

func (h *AdminHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
