package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"textpay/internal/core"
	"textpay/internal/http/handler/middleware"
	"textpay/internal/http/payload"
	"textpay/pkg/phone"

	"go.uber.org/zap"
)

var (
	WhatsAppWebhook = "POST /hooks/whatsapp"
	SMSWebhook      = "POST /hooks/sms"
	USSDWebhook     = "POST /hooks/ussd"
)

// WebhookHandler receives channel gateway callbacks, normalizes the sender
// phone number and hands the message to the dispatcher. The ack text is
// returned in the webhook response for the gateway to relay.
type WebhookHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	dispatcher       MessageDispatcher
	countryCode      string
}

func NewWebhookHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, dispatcher MessageDispatcher, defaultCountryCode string) *WebhookHandler {
	return &WebhookHandler{
		logs:             logger,
		requestValidator: requestValidator,
		dispatcher:       dispatcher,
		countryCode:      defaultCountryCode,
	}
}

func (h *WebhookHandler) HandleWhatsApp(w http.ResponseWriter, r *http.Request) {
	var inbound payload.WhatsAppInbound
	if err := h.requestValidator.DecodeJSONPayload(r, &inbound); err != nil {
		h.badPayload(w, r, err, WhatsAppWebhook)
		return
	}

	h.handle(w, r, inbound.ToInbound(), WhatsAppWebhook)
}

func (h *WebhookHandler) HandleSMS(w http.ResponseWriter, r *http.Request) {
	var inbound payload.SMSInbound
	if err := h.requestValidator.DecodeJSONPayload(r, &inbound); err != nil {
		h.badPayload(w, r, err, SMSWebhook)
		return
	}

	h.handle(w, r, inbound.ToInbound(), SMSWebhook)
}

func (h *WebhookHandler) HandleUSSD(w http.ResponseWriter, r *http.Request) {
	var inbound payload.USSDInbound
	if err := h.requestValidator.DecodeJSONPayload(r, &inbound); err != nil {
		h.badPayload(w, r, err, USSDWebhook)
		return
	}

	h.handle(w, r, inbound.ToInbound(), USSDWebhook)
}

func (h *WebhookHandler) handle(w http.ResponseWriter, r *http.Request, msg core.InboundMessage, route string) {
	requestId := requestID(r)

	normalized, err := phone.Normalize(msg.FromPhone, h.countryCode)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not process message",
			Error:   fmt.Errorf("normalize sender number: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to normalize sender number",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}
	msg.FromPhone = normalized

	h.logs.Infow("inbound message received",
		"channel", msg.Channel,
		"message_id", msg.MessageID,
		"handler", route,
		"request_id", requestId)

	// the gateway dropping the connection must not abort an in-flight
	// financial operation, so the dispatch outlives the request context
	ack, err := h.dispatcher.Dispatch(context.WithoutCancel(r.Context()), msg)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not process message",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to dispatch message",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"to":      ack.ToPhone,
		"text":    ack.Text,
		"pending": ack.Pending,
	}

	h.respond(w, resp, http.StatusAccepted, requestId)
}

func (h *WebhookHandler) badPayload(w http.ResponseWriter, r *http.Request, err error, route string) {
	requestId := requestID(r)

	h.respond(w, Response{
		Message: "Could not process message",
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *WebhookHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}
