package service

import (
	"context"
	"fmt"
	"time"

	"github.com/communityportal/notifier/pkg/domain"
	"github.com/communityportal/notifier/pkg/repository"
)

// NotifyService provides unified access to repositories for the notification core and the server
type NotifyService struct {
	contentRepo *repository.ContentRepository
	userRepo    *repository.UserRepository
	settingRepo *repository.SettingRepository
}

// NewNotifyService creates a new notify service
func NewNotifyService(repos *repository.Repositories) *NotifyService {
	return &NotifyService{
		contentRepo: repos.Content,
		userRepo:    repos.User,
		settingRepo: repos.Setting,
	}
}

// Content methods

func (s *NotifyService) FindUnnotifiedApprovedServices(ctx context.Context) ([]domain.ContentItem, error) {
	return s.contentRepo.FindUnnotifiedApprovedServices(ctx)
}

func (s *NotifyService) FindFuturePublishedEvents(ctx context.Context, now time.Time) ([]domain.ContentItem, error) {
	return s.contentRepo.FindFuturePublishedEvents(ctx, now)
}

func (s *NotifyService) GetContentItem(ctx context.Context, ref domain.ContentRef) (*domain.ContentItem, error) {
	return s.contentRepo.GetContentItem(ctx, ref)
}

func (s *NotifyService) MarkNotified(ctx context.Context, refs []domain.ContentRef) error {
	return s.contentRepo.MarkNotified(ctx, refs)
}

// Subscriber methods

func (s *NotifyService) GetNewsletterSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return s.userRepo.GetNewsletterSubscribers(ctx)
}

func (s *NotifyService) FindSubscribersByCategory(ctx context.Context, category domain.Category) ([]domain.Subscriber, error) {
	return s.userRepo.FindSubscribersByCategory(ctx, category)
}

// Settings methods

func (s *NotifyService) GetNotificationSettings(ctx context.Context) (domain.NotificationSettings, error) {
	return s.settingRepo.GetNotificationSettings(ctx)
}

func (s *NotifyService) SaveNotificationSettings(ctx context.Context, settings domain.NotificationSettings) error {
	return s.settingRepo.SaveNotificationSettings(ctx, settings)
}

// UpdateFrequency changes the digest frequency keeping the last sent time
func (s *NotifyService) UpdateFrequency(ctx context.Context, freq domain.Frequency) (domain.NotificationSettings, error) {
	settings, err := s.settingRepo.GetNotificationSettings(ctx)
	if err != nil {
		return domain.NotificationSettings{}, fmt.Errorf("load notification settings: %w", err)
	}
	settings.Frequency = freq
	if err := s.settingRepo.SaveNotificationSettings(ctx, settings); err != nil {
		return domain.NotificationSettings{}, fmt.Errorf("save notification settings: %w", err)
	}
	return settings, nil
}
