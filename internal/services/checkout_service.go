package services

import (
	"context"
	"log"
	"time"

	"aistore/internal/models/db_models"
	"aistore/internal/models/response_models"
	"aistore/internal/repositories"
	"aistore/pkg/utils"

	"github.com/google/uuid"
)

// Checkout step names recorded on a failed attempt.
const (
	stepCreateOrder         = "create_order"
	stepCreateOrderItems    = "create_order_items"
	stepCreateSubscriptions = "create_subscriptions"
	stepFinalizeOrder       = "finalize_order"
)

// Expiry windows per plan tier. Lifetime has no expiry.
const (
	monthlyWindow = 30 * 24 * time.Hour
	yearlyWindow  = 365 * 24 * time.Hour
)

type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, userID uuid.UUID, idempotencyKey, paymentMethod string) (*response_models.CheckoutResponse, error)
}

// CheckoutService converts a cart snapshot into an order, its line
// items and subscriptions. Each step is an independent committed write;
// there is no cross-step transaction. A failure after order creation
// leaves the order in pending state and the cart populated, and the
// attempt row records which step broke so partial checkouts can be told
// apart from guard-time failures.
type CheckoutService struct {
	cartRepo    repositories.CartRepository
	orderRepo   repositories.OrderRepository
	subRepo     repositories.SubscriptionRepository
	attemptRepo repositories.CheckoutAttemptRepository
}

func NewCheckoutService(
	cartRepo repositories.CartRepository,
	orderRepo repositories.OrderRepository,
	subRepo repositories.SubscriptionRepository,
	attemptRepo repositories.CheckoutAttemptRepository,
) CheckoutServiceInterface {
	return &CheckoutService{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		subRepo:     subRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, idempotencyKey, paymentMethod string) (*response_models.CheckoutResponse, error) {
	// Guards: neither failure performs any write.
	if userID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}

	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(items) == 0 {
		return nil, utils.ErrEmptyCart
	}

	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	}

	prior, err := s.attemptRepo.FindLatestByUserKey(ctx, userID, idempotencyKey)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prior != nil {
		switch prior.Status {
		case db_models.AttemptStatusCompleted:
			// Replay of a finished checkout: return the prior order,
			// no new writes.
			return &response_models.CheckoutResponse{
				OrderID:          *prior.OrderID,
				TotalAmount:      prior.TotalAmount,
				ItemCount:        prior.ItemCount,
				IdempotencyKey:   idempotencyKey,
				AlreadyCompleted: true,
			}, nil
		case db_models.AttemptStatusProcessing:
			return nil, utils.ErrCheckoutInProgress
		}
		// A failed prior attempt falls through to a fresh run.
	}

	total := CartTotal(items)
	attempt := &db_models.CheckoutAttempt{
		UserID:         userID,
		IdempotencyKey: idempotencyKey,
		Status:         db_models.AttemptStatusProcessing,
		ItemCount:      CartItemCount(items),
		TotalAmount:    total,
	}
	if err := s.attemptRepo.Insert(ctx, attempt); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Step 2: order header, pending until every dependent write lands.
	order := &db_models.Order{
		UserID:        userID,
		TotalAmount:   total,
		Status:        db_models.OrderStatusPending,
		PaymentMethod: paymentMethod,
	}
	if err := s.orderRepo.Insert(ctx, order); err != nil {
		s.failAttempt(ctx, attempt.ID, stepCreateOrder, nil)
		return nil, utils.ErrCheckoutFailed
	}

	// Step 3: line items with snapshot prices.
	orderItems := make([]db_models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, db_models.OrderItem{
			OrderID:          order.ID,
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			Price:            PlanPrice(item.Product, item.SubscriptionType),
			SubscriptionType: item.SubscriptionType,
		})
	}
	if err := s.orderRepo.InsertItems(ctx, orderItems); err != nil {
		s.failAttempt(ctx, attempt.ID, stepCreateOrderItems, &order.ID)
		return nil, utils.ErrCheckoutFailed
	}

	// Step 4: subscriptions.
	now := time.Now()
	subs := make([]db_models.Subscription, 0, len(items))
	for _, item := range items {
		subs = append(subs, buildSubscription(userID, order.ID, item, now))
	}
	if err := s.subRepo.InsertBatch(ctx, subs); err != nil {
		s.failAttempt(ctx, attempt.ID, stepCreateSubscriptions, &order.ID)
		return nil, utils.ErrCheckoutFailed
	}

	// Step 5: finalize. Only reached when steps 2-4 all succeeded.
	if err := s.orderRepo.UpdateStatus(ctx, order.ID, db_models.OrderStatusCompleted); err != nil {
		s.failAttempt(ctx, attempt.ID, stepFinalizeOrder, &order.ID)
		return nil, utils.ErrCheckoutFailed
	}

	// Step 6: the order is complete; a cart-clear failure here is logged
	// but does not fail the checkout.
	if err := s.cartRepo.DeleteAllForUser(ctx, userID); err != nil {
		log.Printf("checkout %s: order %s completed but cart clear failed: %v", attempt.ID, order.ID, err)
	}

	if err := s.attemptRepo.MarkCompleted(ctx, attempt.ID, order.ID); err != nil {
		log.Printf("checkout %s: failed to mark attempt completed: %v", attempt.ID, err)
	}

	return &response_models.CheckoutResponse{
		OrderID:        order.ID,
		TotalAmount:    total,
		ItemCount:      attempt.ItemCount,
		IdempotencyKey: idempotencyKey,
	}, nil
}

// failAttempt records the broken step. When orderID is non-nil the
// order header already committed and now sits in pending state with no
// compensation, so the log line is distinct from a clean write failure.
func (s *CheckoutService) failAttempt(ctx context.Context, attemptID uuid.UUID, step string, orderID *uuid.UUID) {
	if orderID != nil {
		log.Printf("checkout %s: partial checkout, order %s left pending after failed step %s", attemptID, *orderID, step)
	} else {
		log.Printf("checkout %s: write failed at step %s, no order created", attemptID, step)
	}
	if err := s.attemptRepo.MarkFailed(ctx, attemptID, step, orderID); err != nil {
		log.Printf("checkout %s: failed to record failed step %s: %v", attemptID, step, err)
	}
}

func buildSubscription(userID, orderID uuid.UUID, item db_models.CartItem, now time.Time) db_models.Subscription {
	sub := db_models.Subscription{
		UserID:           userID,
		ProductID:        item.ProductID,
		OrderID:          orderID,
		Status:           db_models.SubStatusActive,
		SubscriptionType: item.SubscriptionType,
		StartsAt:         now.Unix(),
		AutoRenew:        item.SubscriptionType != db_models.SubTypeLifetime,
	}

	switch item.SubscriptionType {
	case db_models.SubTypeMonthly:
		expires := now.Add(monthlyWindow).Unix()
		sub.ExpiresAt = &expires
	case db_models.SubTypeYearly:
		expires := now.Add(yearlyWindow).Unix()
		sub.ExpiresAt = &expires
	}
	// Lifetime keeps ExpiresAt nil.

	return sub
}
