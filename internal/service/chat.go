package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks ragagent-api/internal/service LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService ragagent-api/internal/service ChatService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_renderer.go -package=mocks ragagent-api/internal/service Renderer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ragagent-api/internal/contextutil"
	"ragagent-api/internal/llm"
)

// LLMClient is an interface for relaying a prompt to a text-generation model.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// Infer sends the prompt to the model and returns the generated text.
	Infer(ctx context.Context, prompt string) (string, error)
}

// Renderer converts generated Markdown into HTML.
type Renderer interface {
	ToHTML(src string) (string, error)
}

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	// Message is relayed verbatim; an empty message is allowed.
	Message string
	// ConversationID is echoed back. A new one is issued when empty. Nothing is stored.
	ConversationID string
	// RenderHTML asks for the reply rendered as HTML in addition to plain text.
	RenderHTML bool
}

// ChatResponse represents a chat response in the domain layer.
type ChatResponse struct {
	Reply          string
	ReplyHTML      string
	ConversationID string
	// ChunksUsed is always empty: there is no retrieval step.
	ChunksUsed []string
}

// ChatService provides chat functionality.
type ChatService interface {
	// ProcessChat relays the message to the model and returns its reply.
	ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

// chatService implements ChatService.
type chatService struct {
	llmClient LLMClient
	renderer  Renderer
	newID     func() string
}

// NewChatService creates a new ChatService. renderer may be nil, in which case
// RenderHTML requests are answered with plain text only.
func NewChatService(llmClient LLMClient, renderer Renderer) ChatService {
	return &chatService{
		llmClient: llmClient,
		renderer:  renderer,
		newID:     uuid.NewString,
	}
}

// ProcessChat processes a chat request.
func (s *chatService) ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = s.newID()
	}
	logger = logger.With("conversation_id", conversationID)

	reply, err := s.llmClient.Infer(ctx, req.Message)
	if err != nil {
		var infErr *llm.InferenceError
		if errors.As(err, &infErr) {
			logger.ErrorContext(ctx, "model inference failed", "upstream_status", infErr.Upstream, "error", infErr.Cause)
		} else {
			logger.ErrorContext(ctx, "model inference failed", "error", err)
			err = fmt.Errorf("%w: %v", ErrExternalService, err)
		}
		return ChatResponse{}, WrapError(err, "failed to get model response")
	}

	resp := ChatResponse{
		Reply:          reply,
		ConversationID: conversationID,
		ChunksUsed:     []string{},
	}

	if req.RenderHTML && s.renderer != nil {
		html, err := s.renderer.ToHTML(reply)
		if err != nil {
			logger.WarnContext(ctx, "failed to render reply as HTML", "error", err)
		} else {
			resp.ReplyHTML = html
		}
	}

	logger.InfoContext(ctx, "chat request processed successfully", "message_length", len(req.Message), "reply_length", len(reply))
	return resp, nil
}
