package services

import (
	"context"

	"aistore/internal/models/db_models"
	"aistore/internal/models/response_models"
	"aistore/internal/repositories"
	"aistore/pkg/utils"

	"github.com/google/uuid"
)

type CartServiceInterface interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*response_models.CartResponse, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, subType db_models.SubscriptionType) (*response_models.CartResponse, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*response_models.CartResponse, error)
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*response_models.CartResponse, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) CartServiceInterface {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart refetches the authoritative cart state and decorates it with
// resolved prices. Mutations below all end with this refetch rather
// than merging optimistically.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*response_models.CartResponse, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}

	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.CartItemView, 0, len(items))
	for _, item := range items {
		unit := PlanPrice(item.Product, item.SubscriptionType)
		views = append(views, response_models.CartItemView{
			CartItem:  item,
			UnitPrice: unit,
			LineTotal: unit * float64(item.Quantity),
		})
	}

	return &response_models.CartResponse{
		Items:     views,
		Total:     CartTotal(items),
		ItemCount: CartItemCount(items),
	}, nil
}

// AddItem merges into an existing (user, product, tier) row by
// incrementing its quantity server-side, otherwise inserts quantity 1.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, subType db_models.SubscriptionType) (*response_models.CartResponse, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}
	if !db_models.ValidSubscriptionType(subType) {
		return nil, utils.ErrInvalidSubscriptionType
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil || !product.IsActive {
		return nil, utils.ErrProductNotFound
	}

	existing, err := s.cartRepo.FindByUserProductType(ctx, userID, productID, subType)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if existing != nil {
		if err := s.cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+1); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		item := &db_models.CartItem{
			UserID:           userID,
			ProductID:        productID,
			Quantity:         1,
			SubscriptionType: subType,
		}
		if err := s.cartRepo.Insert(ctx, item); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return s.GetCart(ctx, userID)
}

// RemoveItem deletes the row; removing an already-absent id is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*response_models.CartResponse, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}

	if err := s.cartRepo.Delete(ctx, itemID, userID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.GetCart(ctx, userID)
}

// UpdateQuantity treats quantity <= 0 as removal. No upper bound is
// enforced.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*response_models.CartResponse, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, itemID)
	}

	item, err := s.cartRepo.FindByIDForUser(ctx, itemID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrCartItemNotFound
	}

	if err := s.cartRepo.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.GetCart(ctx, userID)
}

func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return utils.ErrUnauthenticated
	}
	if err := s.cartRepo.DeleteAllForUser(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
