package config

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/liveaevi/skincare-api/internal/hash"
	"github.com/liveaevi/skincare-api/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

// Seed creates the admin account and the starter catalog when the database
// is empty. Safe to call on every start.
func Seed(db *gorm.DB) error {
	var admin models.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pwHash, hashErr := hash.HashPassword(getenvDefault("ADMIN_PASSWORD", "admin123"))
		if hashErr != nil {
			return fmt.Errorf("seed: cannot hash admin password: %w", hashErr)
		}
		admin = models.User{
			Username:     "admin",
			Email:        "admin@liveaevi.com",
			PasswordHash: pwHash,
			IsAdmin:      true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("seed: cannot create admin user: %w", err)
		}
		log.Println("Admin user created")
	} else if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sample := []models.Product{
		{
			Name:          "Vitamin C Brightening Serum",
			Description:   "Advanced vitamin C formula that brightens and evens skin tone while providing antioxidant protection.",
			Price:         89.00,
			OriginalPrice: floatPtr(120.00),
			ImageURL:      "https://images.pexels.com/photos/3685530/pexels-photo-3685530.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&fit=crop",
			Category:      "serums",
			IsFeatured:    true,
			IsBestseller:  true,
		},
		{
			Name:        "Retinol Renewal Night Cream",
			Description: "Gentle yet effective retinol cream that reduces fine lines and improves skin texture overnight.",
			Price:       125.00,
			ImageURL:    "https://images.pexels.com/photos/4465124/pexels-photo-4465124.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&fit=crop",
			Category:    "moisturizers",
			IsFeatured:  true,
			IsNew:       true,
		},
		{
			Name:        "Hyaluronic Hydra Moisturizer",
			Description: "Ultra-hydrating moisturizer with multiple types of hyaluronic acid for plump, dewy skin.",
			Price:       75.00,
			ImageURL:    "https://images.pexels.com/photos/4465831/pexels-photo-4465831.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&fit=crop",
			Category:    "moisturizers",
			IsFeatured:  true,
		},
	}
	if err := db.Create(&sample).Error; err != nil {
		return fmt.Errorf("seed: cannot create sample products: %w", err)
	}
	log.Println("Sample products added")
	return nil
}
