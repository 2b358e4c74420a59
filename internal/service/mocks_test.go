package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nwchen/chathub/internal/domain"
	"github.com/nwchen/chathub/internal/llm"
)

// MockSessionRepository mocks the domain.SessionRepository interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) List(ctx context.Context, projection domain.Projection) ([]domain.Session, error) {
	args := m.Called(ctx, projection)
	return args.Get(0).([]domain.Session), args.Error(1)
}

func (m *MockSessionRepository) ListByUser(ctx context.Context, userID string, projection domain.Projection) ([]domain.Session, error) {
	args := m.Called(ctx, userID, projection)
	return args.Get(0).([]domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) UpdateTitle(ctx context.Context, id, title string) (*domain.Session, error) {
	args := m.Called(ctx, id, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) AppendMessages(ctx context.Context, id string, texts ...string) (*domain.Session, error) {
	callArgs := make([]any, 0, len(texts)+2)
	callArgs = append(callArgs, ctx, id)
	for _, t := range texts {
		callArgs = append(callArgs, t)
	}
	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProvider mocks llm.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProvider) DefaultModel() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockProvider) Complete(ctx context.Context, messages []string, model string) (*llm.Reply, error) {
	args := m.Called(ctx, messages, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Reply), args.Error(1)
}
