package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) (bool, error) {
	args := m.Called(ctx, lead)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) Remove(ctx context.Context, emails []string) (int64, error) {
	args := m.Called(ctx, emails)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeadRepository) ListEligible(ctx context.Context, nicheTag string) ([]entity.Lead, error) {
	args := m.Called(ctx, nicheTag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListRetryable(ctx context.Context, nicheTag string, maxRetries int) ([]entity.Lead, error) {
	args := m.Called(ctx, nicheTag, maxRetries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ClearFailed(ctx context.Context, emails []string) error {
	args := m.Called(ctx, emails)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkSent(ctx context.Context, email, templateUsed string) error {
	args := m.Called(ctx, email, templateUsed)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkFailed(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkReplied(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Stats(ctx context.Context) (*entity.LeadStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadStats), args.Error(1)
}

func (m *MockLeadRepository) DailySentCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadRepository) ListForExport(ctx context.Context, nicheTag string) ([]entity.Lead, error) {
	args := m.Called(ctx, nicheTag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

// MockTemplateRepository
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) Upsert(ctx context.Context, tmpl *entity.Template) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *MockTemplateRepository) FindByTag(ctx context.Context, nicheTag string) (*entity.Template, error) {
	args := m.Called(ctx, nicheTag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Template), args.Error(1)
}

func (m *MockTemplateRepository) Remove(ctx context.Context, nicheTag string) (bool, error) {
	args := m.Called(ctx, nicheTag)
	return args.Bool(0), args.Error(1)
}

func (m *MockTemplateRepository) List(ctx context.Context) ([]entity.TemplateSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TemplateSummary), args.Error(1)
}

// MockBlacklistRepository
type MockBlacklistRepository struct {
	mock.Mock
}

func (m *MockBlacklistRepository) Add(ctx context.Context, email, reason string) (bool, error) {
	args := m.Called(ctx, email, reason)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlacklistRepository) Remove(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlacklistRepository) Contains(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlacklistRepository) List(ctx context.Context) ([]entity.BlacklistEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BlacklistEntry), args.Error(1)
}

// MockMailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(ctx context.Context, toEmail, toName, subject, bodyText string) (bool, string) {
	args := m.Called(ctx, toEmail, toName, subject, bodyText)
	return args.Bool(0), args.String(1)
}

// MockNotificationProducer
type MockNotificationProducer struct {
	mock.Mock
}

func (m *MockNotificationProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
