package services

import (
	"time"

	"eats-backend/models"
	"eats-backend/repositories"
	"eats-backend/utils"
)

// PromotionWindow is how long a single payment promotes a restaurant.
// Stacking payments simply resets the window from now.
const PromotionWindow = 7 * 24 * time.Hour

type PaymentService struct {
	payments    *repositories.PaymentRepository
	restaurants *repositories.RestaurantRepository
}

func NewPaymentService(payments *repositories.PaymentRepository, restaurants *repositories.RestaurantRepository) *PaymentService {
	return &PaymentService{
		payments:    payments,
		restaurants: restaurants,
	}
}

func (s *PaymentService) CreatePayment(owner *models.User, transactionID string, restaurantID uint) Envelope {
	restaurant, err := s.restaurants.FindByID(restaurantID)
	if err != nil {
		return fail("Restaurant not found.")
	}
	if restaurant.OwnerID != owner.ID {
		return fail("Permission denied.")
	}

	payment := &models.Payment{
		TransactionID: transactionID,
		UserID:        owner.ID,
		RestaurantID:  restaurant.ID,
	}
	if err := s.payments.Create(payment); err != nil {
		utils.ErrorLogger.Printf("payments: create: %v", err)
		return fail("Could not create payment.")
	}

	restaurant.IsPromoted = true
	until := time.Now().Add(PromotionWindow)
	restaurant.PromoteUntil = &until
	if err := s.restaurants.Save(restaurant); err != nil {
		utils.ErrorLogger.Printf("payments: promote restaurant: %v", err)
		return fail("Could not create payment.")
	}
	return ok()
}

func (s *PaymentService) GetPayments(user *models.User) ([]models.Payment, Envelope) {
	payments, err := s.payments.FindByUser(user.ID)
	if err != nil {
		utils.ErrorLogger.Printf("payments: list: %v", err)
		return nil, fail("Could not get payments.")
	}
	return payments, ok()
}
