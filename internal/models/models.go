package models

import (
	"time"
)

type Contact struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"     json:"id"`
	Name      string    `gorm:"size:100;not null"            json:"name"`
	Email     string    `gorm:"size:120;not null"            json:"email"`
	Company   string    `gorm:"size:100"                     json:"company"`
	Message   string    `gorm:"type:text;not null"           json:"message"`
	Status    string    `gorm:"size:20;not null;default:new" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Newsletter struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"size:120;unique;not null" json:"email"`
	SubscribedAt time.Time `gorm:"not null"                 json:"subscribed_at"`
	IsActive     bool      `gorm:"not null;default:true"    json:"is_active"`
}

func (Newsletter) TableName() string { return "newsletter" }

type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"size:80;unique;not null"  json:"username"`
	Email        string     `gorm:"size:120;unique;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null"        json:"-"`
	IsAdmin      bool       `gorm:"not null;default:false"   json:"is_admin"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

type Analytics struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PageURL   string    `gorm:"size:255;not null"        json:"page_url"`
	UserAgent string    `gorm:"size:500"                 json:"user_agent"`
	IPAddress string    `gorm:"size:45"                  json:"ip_address"`
	Referrer  string    `gorm:"size:255"                 json:"referrer"`
	Timestamp time.Time `gorm:"autoCreateTime;index"     json:"timestamp"`
}

func (Analytics) TableName() string { return "analytics" }

type Product struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name          string    `gorm:"size:200;not null"         json:"name"`
	Description   string    `gorm:"type:text"                 json:"description"`
	Price         float64   `gorm:"not null;check:price >= 0" json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	ImageURL      string    `gorm:"size:500"                  json:"image_url"`
	Category      string    `gorm:"size:100;index"            json:"category"`
	IsFeatured    bool      `gorm:"not null;default:false"    json:"is_featured"`
	IsBestseller  bool      `gorm:"not null;default:false"    json:"is_bestseller"`
	IsNew         bool      `gorm:"not null;default:false"    json:"is_new"`
	CreatedAt     time.Time `json:"created_at"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"    json:"id"`
	UserID    uint `gorm:"index;not null"              json:"user_id"`
	ProductID uint `gorm:"not null"                    json:"product_id"`
	Quantity  uint `gorm:"not null;check:quantity > 0" json:"quantity"`
}

type Order struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"index;not null"           json:"user_id"`
	ProductID  uint      `gorm:"not null"                 json:"product_id"`
	Quantity   uint      `gorm:"not null"                 json:"quantity"`
	TotalPrice float64   `gorm:"not null"                 json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}
