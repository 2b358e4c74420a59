package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nwchen/chathub/internal/domain"
	"github.com/nwchen/chathub/internal/llm"
)

// FallbackReply is recorded as the system turn when the completion call
// fails or yields nothing. A failed completion is not a request failure.
const FallbackReply = "Sorry, I don't understand."

// titleLayout renders the creation time as the default session title.
const titleLayout = "1/2/2006, 3:04:05 PM"

// ConversationService orchestrates session CRUD and the message round-trip
// through the completion gateway. The store client is constructed by the
// process entry point and passed in; the service holds no global state.
type ConversationService struct {
	sessions  domain.SessionRepository
	llmRouter *llm.Router
	timeout   time.Duration
}

// NewConversationService creates a new conversation service
func NewConversationService(sessions domain.SessionRepository, llmRouter *llm.Router, completionTimeout time.Duration) *ConversationService {
	if completionTimeout <= 0 {
		completionTimeout = 8 * time.Second
	}
	return &ConversationService{
		sessions:  sessions,
		llmRouter: llmRouter,
		timeout:   completionTimeout,
	}
}

// CreateSession persists a new session with empty-by-default messages. The
// title defaults to a rendering of the creation timestamp.
func (s *ConversationService) CreateSession(ctx context.Context, user, title string, messages []string) (*domain.Session, error) {
	if strings.TrimSpace(user) == "" {
		return nil, domain.ErrInvalidRequest
	}

	now := time.Now().UTC()
	if title == "" {
		title = now.Format(titleLayout)
	}
	if messages == nil {
		messages = []string{}
	}

	session := &domain.Session{
		User:      user,
		Title:     title,
		Messages:  messages,
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ListSessions returns all sessions without their message histories.
func (s *ConversationService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	return s.sessions.List(ctx, domain.SummaryProjection)
}

// ListUserSessions returns one user's sessions without message histories.
// A user with no sessions yields an empty slice.
func (s *ConversationService) ListUserSessions(ctx context.Context, userID string) ([]domain.Session, error) {
	if userID == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.sessions.ListByUser(ctx, userID, domain.SummaryProjection)
}

// GetSession returns the full session including messages.
func (s *ConversationService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.sessions.Get(ctx, id)
}

// UpdateTitle renames a session, leaving messages and createdAt untouched.
func (s *ConversationService) UpdateTitle(ctx context.Context, id, title string) (*domain.Session, error) {
	if id == "" || title == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.sessions.UpdateTitle(ctx, id, title)
}

// DeleteSession removes a session.
func (s *ConversationService) DeleteSession(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidRequest
	}
	return s.sessions.Delete(ctx, id)
}

// PostMessage appends the user's content, obtains a system reply for the
// full history, and persists both turns in one durable update. The reply is
// the provider's first choice or FallbackReply when the call fails; a failed
// completion never surfaces as an error.
func (s *ConversationService) PostMessage(ctx context.Context, sessionID, content, provider string) (*domain.Session, error) {
	if sessionID == "" || strings.TrimSpace(content) == "" {
		return nil, domain.ErrInvalidRequest
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Full history plus the new turn goes out; only [content, reply] is
	// persisted, in that order.
	history := make([]string, 0, len(session.Messages)+1)
	history = append(history, session.Messages...)
	history = append(history, content)

	reply := s.complete(ctx, history, provider)

	return s.sessions.AppendMessages(ctx, sessionID, content, reply)
}

func (s *ConversationService) complete(ctx context.Context, history []string, providerName string) string {
	provider, err := s.llmRouter.GetProvider(providerName)
	if err != nil {
		log.Warn().Err(err).Msg("completion provider unavailable, falling back")
		return FallbackReply
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := provider.Complete(cctx, history, "")
	if err != nil {
		log.Warn().Err(err).Str("provider", provider.Name()).Msg("completion call failed, falling back")
		return FallbackReply
	}
	if result == nil || result.Content == "" {
		return FallbackReply
	}

	log.Debug().
		Str("provider", provider.Name()).
		Str("model", result.Model).
		Int("tokens_used", result.TokensUsed).
		Int64("latency_ms", result.LatencyMs).
		Msg("completion received")

	return result.Content
}

// Providers reports the registered completion providers.
func (s *ConversationService) Providers() []llm.ProviderInfo {
	return s.llmRouter.GetProvidersInfo()
}
