package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mileusna/useragent"
	"gorm.io/gorm"

	"github.com/liveaevi/skincare-api/internal/events"
	"github.com/liveaevi/skincare-api/internal/logging"
	"github.com/liveaevi/skincare-api/internal/models"
	"github.com/liveaevi/skincare-api/internal/repo"
)

type EngagementService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (s *EngagementService) SubmitContact(ctx context.Context, name, email, company, message string) (*models.Contact, error) {
	l := logging.FromContext(ctx).With("svc", "engagement.contact")

	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email, and message are required", ErrValidation)
	}

	contact := models.Contact{
		Name:    name,
		Email:   email,
		Company: company,
		Message: message,
		Status:  "new",
	}
	if err := s.Repo.CreateContact(ctx, &contact); err != nil {
		l.Error("contact_failed", "error", err)
		return nil, err
	}

	s.publish(ctx, contact.Email, map[string]any{
		"type":       "contact_submitted",
		"contact_id": contact.ID,
		"email":      contact.Email,
	})

	l.Info("contact_created", "contact_id", contact.ID)
	return &contact, nil
}

type ContactPage struct {
	Contacts    []models.Contact `json:"contacts"`
	Total       int64            `json:"total"`
	Pages       int64            `json:"pages"`
	CurrentPage int              `json:"current_page"`
}

func (s *EngagementService) ListContacts(ctx context.Context, page, perPage int, status string) (*ContactPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 10
	}
	offset := (page - 1) * perPage

	items, total, err := s.Repo.ListContacts(ctx, offset, perPage, status)
	if err != nil {
		return nil, err
	}
	return &ContactPage{
		Contacts:    items,
		Total:       total,
		Pages:       (total + int64(perPage) - 1) / int64(perPage),
		CurrentPage: page,
	}, nil
}

// Subscribe creates a newsletter subscription. An active duplicate is a
// conflict; an inactive one is reactivated in place so the row id survives
// unsubscribe/resubscribe cycles.
func (s *EngagementService) Subscribe(ctx context.Context, email string) (*models.Newsletter, bool, error) {
	l := logging.FromContext(ctx).With("svc", "engagement.newsletter")

	if email == "" {
		return nil, false, fmt.Errorf("%w: email is required", ErrValidation)
	}

	existing, err := s.Repo.NewsletterByEmail(ctx, email)
	if err == nil {
		if existing.IsActive {
			return nil, false, fmt.Errorf("%w: email already subscribed", ErrConflict)
		}
		now := time.Now()
		if err := s.Repo.ReactivateNewsletter(ctx, existing, now); err != nil {
			l.Error("newsletter_reactivate_failed", "error", err)
			return nil, false, err
		}
		existing.IsActive = true
		existing.SubscribedAt = now
		l.Info("newsletter_reactivated", "id", existing.ID)
		return existing, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Error("newsletter_lookup_failed", "error", err)
		return nil, false, err
	}

	sub := models.Newsletter{
		Email:        email,
		SubscribedAt: time.Now(),
		IsActive:     true,
	}
	if err := s.Repo.CreateNewsletter(ctx, &sub); err != nil {
		l.Error("newsletter_create_failed", "error", err)
		return nil, false, err
	}

	s.publish(ctx, sub.Email, map[string]any{
		"type":  "newsletter_subscribed",
		"id":    sub.ID,
		"email": sub.Email,
	})

	l.Info("newsletter_subscribed", "id", sub.ID)
	return &sub, false, nil
}

// RecordEvent appends one analytics row. Best effort: a storage failure is
// logged and swallowed so tracking never breaks a page.
func (s *EngagementService) RecordEvent(ctx context.Context, pageURL, referrer, userAgent, ipAddress string) {
	row := models.Analytics{
		PageURL:   pageURL,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		Referrer:  referrer,
	}
	if err := s.Repo.CreateAnalytics(ctx, &row); err != nil {
		logging.FromContext(ctx).Error("analytics insert error", "error", err)
	}
}

type Stats struct {
	TotalVisits           int64            `json:"total_visits"`
	TodayVisits           int64            `json:"today_visits"`
	TotalContacts         int64            `json:"total_contacts"`
	NewsletterSubscribers int64            `json:"newsletter_subscribers"`
	TotalProducts         int64            `json:"total_products"`
	Devices               map[string]int64 `json:"devices"`
}

func (s *EngagementService) Stats(ctx context.Context) (*Stats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := &Stats{}
	var err error
	if stats.TotalVisits, err = s.Repo.CountVisits(ctx); err != nil {
		return nil, err
	}
	if stats.TodayVisits, err = s.Repo.CountVisitsSince(ctx, startOfDay); err != nil {
		return nil, err
	}
	if stats.TotalContacts, err = s.Repo.CountContacts(ctx); err != nil {
		return nil, err
	}
	if stats.NewsletterSubscribers, err = s.Repo.CountActiveSubscribers(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.Repo.CountProducts(ctx); err != nil {
		return nil, err
	}

	agents, err := s.Repo.UserAgentsSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	stats.Devices = deviceBreakdown(agents)

	return stats, nil
}

func deviceBreakdown(agents []string) map[string]int64 {
	devices := map[string]int64{}
	for _, raw := range agents {
		ua := useragent.Parse(raw)
		switch {
		case ua.Bot:
			devices["bot"]++
		case ua.Mobile:
			devices["mobile"]++
		case ua.Tablet:
			devices["tablet"]++
		case ua.Desktop:
			devices["desktop"]++
		default:
			devices["other"]++
		}
	}
	return devices
}

func (s *EngagementService) publish(ctx context.Context, key string, event map[string]any) {
	if err := s.Producer.Publish(ctx, key, event); err != nil {
		logging.FromContext(ctx).Error("event publish error", "error", err)
	}
}
