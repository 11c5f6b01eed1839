package repo

import (
	"context"
	"time"

	"github.com/liveaevi/skincare-api/internal/models"
)

func (r *GormRepo) CreateContact(ctx context.Context, c *models.Contact) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) ListContacts(ctx context.Context, offset, limit int, status string) ([]models.Contact, int64, error) {
	q := r.DB.WithContext(ctx).Model(&models.Contact{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Contact
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GormRepo) NewsletterByEmail(ctx context.Context, email string) (*models.Newsletter, error) {
	var sub models.Newsletter
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *GormRepo) CreateNewsletter(ctx context.Context, sub *models.Newsletter) error {
	return r.DB.WithContext(ctx).Create(sub).Error
}

// ReactivateNewsletter flips the existing row back to active and resets the
// subscription time. The row id never changes.
func (r *GormRepo) ReactivateNewsletter(ctx context.Context, sub *models.Newsletter, at time.Time) error {
	return r.DB.WithContext(ctx).Model(sub).
		Updates(map[string]any{"is_active": true, "subscribed_at": at}).Error
}

func (r *GormRepo) CreateAnalytics(ctx context.Context, a *models.Analytics) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *GormRepo) CountVisits(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&models.Analytics{}).Count(&total).Error
	return total, err
}

func (r *GormRepo) CountVisitsSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&models.Analytics{}).
		Where("timestamp >= ?", since).Count(&total).Error
	return total, err
}

func (r *GormRepo) CountContacts(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&models.Contact{}).Count(&total).Error
	return total, err
}

func (r *GormRepo) CountActiveSubscribers(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&models.Newsletter{}).
		Where("is_active = ?", true).Count(&total).Error
	return total, err
}

func (r *GormRepo) UserAgentsSince(ctx context.Context, since time.Time) ([]string, error) {
	var agents []string
	err := r.DB.WithContext(ctx).Model(&models.Analytics{}).
		Where("timestamp >= ?", since).Pluck("user_agent", &agents).Error
	if err != nil {
		return nil, err
	}
	return agents, nil
}
