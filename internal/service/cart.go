package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/liveaevi/skincare-api/internal/events"
	"github.com/liveaevi/skincare-api/internal/logging"
	"github.com/liveaevi/skincare-api/internal/models"
	"github.com/liveaevi/skincare-api/internal/repo"
)

type CartService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// Add puts a product into the user's cart. Every add is stored as its own
// row; repeated adds of the same product stay separate lines rather than
// merging quantities.
func (s *CartService) Add(ctx context.Context, userID, productID uint, quantity uint) (*models.CartItem, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add", "user_id", userID)

	if quantity == 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return nil, err
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.Repo.CreateCartItem(ctx, &item); err != nil {
		l.Error("add_to_cart_failed", "error", err)
		return nil, err
	}

	l.Info("cart_item_added", "item_id", item.ID, "product_id", productID)
	return &item, nil
}

func (s *CartService) View(ctx context.Context, userID uint) ([]repo.CartLine, error) {
	return s.Repo.CartLines(ctx, userID)
}

func (s *CartService) Remove(ctx context.Context, userID, itemID uint) error {
	item, err := s.Repo.CartItemForUser(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: cart item %d", ErrNotFound, itemID)
		}
		return err
	}
	return s.Repo.DeleteCartItem(ctx, item)
}

// PlaceOrder converts the whole cart into orders atomically; a failure on
// any line rolls everything back.
func (s *CartService) PlaceOrder(ctx context.Context, userID uint) ([]models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "cart.order", "user_id", userID)

	orders, err := s.Repo.PlaceOrder(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrEmptyCart) {
			return nil, fmt.Errorf("%w: no items in cart", ErrValidation)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product no longer exists", ErrNotFound)
		}
		l.Error("place_order_failed", "error", err)
		return nil, err
	}

	if err := s.Producer.Publish(ctx, fmt.Sprint(userID), map[string]any{
		"type":    "order_placed",
		"user_id": userID,
		"orders":  len(orders),
	}); err != nil {
		l.Error("event publish error", "error", err)
	}

	l.Info("order_placed", "orders", len(orders))
	return orders, nil
}

func (s *CartService) Orders(ctx context.Context, userID uint) ([]repo.OrderLine, error) {
	return s.Repo.OrdersForUser(ctx, userID)
}
