package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ragagent-api/internal/contextutil"
	"ragagent-api/internal/service"
)

// maxChatBodyBytes bounds the request body accepted by the chat endpoint.
const maxChatBodyBytes = 1 << 20

// HTTPError allows errors to carry the HTTP status and client-facing message
// they should be answered with.
type HTTPError interface {
	error
	HTTPStatus() int
	PublicMessage() string
}

// ChatHandler handles HTTP requests for chat.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ChatRequest represents the HTTP request payload for chat.
//
// swagger:model ChatRequest
type ChatRequest struct {
	// The prompt relayed to the model. Required, may be empty.
	Message *string `json:"message"`

	// Echoed back in the response; a new id is issued when omitted.
	ConversationID string `json:"conversation_id,omitempty"`
}

// ChatResponse represents the HTTP response payload for chat.
//
// swagger:model ChatResponse
type ChatResponse struct {
	// Text generated by the model
	Response string `json:"response"`

	// Response rendered from Markdown, present only with ?format=html
	ResponseHTML string `json:"response_html,omitempty"`

	ConversationID string `json:"conversation_id"`

	// Always empty; kept for client compatibility
	ChunksUsed []string `json:"chunks_used"`
}

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles HTTP requests for chat.
//
// swagger:route POST /chat chat
//
// # Relay a chat message to the model
//
// ---
// consumes:
// - application/json
// produces:
// - application/json
// parameters:
//   - in: body
//     name: body
//     required: true
//     schema:
//     "$ref": "#/definitions/ChatRequest"
//   - in: query
//     name: format
//     type: string
//     description: Set to "html" to include the reply rendered as HTML
//     required: false
//
// responses:
//
//	'200':
//	  description: Generated reply
//	  schema:
//	    "$ref": "#/definitions/ChatResponse"
//	'400':
//	  description: Invalid request body
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'500':
//	  description: Model inference failed
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)
	var req ChatRequest
	if err := decodeSingleJSON(r.Body, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Message == nil {
		h.handleServiceError(w, ctx, &service.ValidationError{
			Field:   "message",
			Message: "is required",
		}, "Invalid request")
		return
	}

	svcReq := service.ChatRequest{
		Message:        *req.Message,
		ConversationID: req.ConversationID,
		RenderHTML:     strings.EqualFold(r.URL.Query().Get("format"), "html"),
	}

	svcResp, err := h.chatService.ProcessChat(ctx, svcReq)
	if err != nil {
		h.handleServiceError(w, ctx, err, "Failed to process chat request")
		return
	}

	chunks := svcResp.ChunksUsed
	if chunks == nil {
		chunks = []string{}
	}
	resp := ChatResponse{
		Response:       svcResp.Reply,
		ResponseHTML:   svcResp.ReplyHTML,
		ConversationID: svcResp.ConversationID,
		ChunksUsed:     chunks,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func (h *ChatHandler) handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	if errors.Is(err, service.ErrInvalidInput) {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
			return
		}
		h.writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	// Relay failures carry a fixed message and status; nothing from upstream leaks here.
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		h.writeError(w, httpErr.HTTPStatus(), httpErr.PublicMessage())
		return
	}

	if errors.Is(err, service.ErrExternalService) {
		h.writeError(w, http.StatusBadGateway, "External service error")
		return
	}

	h.writeError(w, http.StatusInternalServerError, defaultMsg)
}

// decodeSingleJSON decodes exactly one JSON value from r into v.
// Anything other than whitespace after that value is an error.
func decodeSingleJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// writeError writes an error response.
func (h *ChatHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
