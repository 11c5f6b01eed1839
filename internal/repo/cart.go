package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/liveaevi/skincare-api/internal/models"
)

var ErrEmptyCart = errors.New("no items in cart")

// CartLine is a cart row joined with the current product data.
type CartLine struct {
	ItemID      uint    `json:"item_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    uint    `json:"quantity"`
	PriceEach   float64 `json:"price_each"`
	Total       float64 `json:"total"`
}

// OrderLine is a persisted order joined with the product name.
type OrderLine struct {
	OrderID     uint    `json:"order_id"`
	ProductName string  `json:"product"`
	Quantity    uint    `json:"quantity"`
	TotalPrice  float64 `json:"total"`
}

func (r *GormRepo) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) CartLines(ctx context.Context, userID uint) ([]CartLine, error) {
	lines := []CartLine{}
	err := r.DB.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id AS item_id, cart_items.product_id, products.name AS product_name, cart_items.quantity, products.price AS price_each").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	for i := range lines {
		lines[i].Total = float64(lines[i].Quantity) * lines[i].PriceEach
	}
	return lines, nil
}

func (r *GormRepo) CartItemForUser(ctx context.Context, userID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Delete(item).Error
}

// PlaceOrder converts every cart row of the user into an order snapshotting
// quantity and the product price at this moment, then clears the cart. Runs
// in a single transaction so a failure leaves the cart untouched.
func (r *GormRepo) PlaceOrder(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order

	txErr := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		orders = make([]models.Order, 0, len(items))
		for _, it := range items {
			var p models.Product
			if err := tx.First(&p, it.ProductID).Error; err != nil {
				return err
			}
			order := models.Order{
				UserID:     userID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				TotalPrice: float64(it.Quantity) * p.Price,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			orders = append(orders, order)
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}
	return orders, nil
}

func (r *GormRepo) OrdersForUser(ctx context.Context, userID uint) ([]OrderLine, error) {
	lines := []OrderLine{}
	err := r.DB.WithContext(ctx).
		Table("orders").
		Select("orders.id AS order_id, products.name AS product_name, orders.quantity, orders.total_price").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.user_id = ?", userID).
		Order("orders.id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}
