package services

import (
	"time"

	"eats-backend/repositories"
	"eats-backend/utils"
)

// PromotionSweeper periodically clears the promoted flag on restaurants
// whose paid window has passed.
type PromotionSweeper struct {
	restaurants *repositories.RestaurantRepository
	Interval    time.Duration
	stopCh      chan struct{}
}

func NewPromotionSweeper(restaurants *repositories.RestaurantRepository) *PromotionSweeper {
	return &PromotionSweeper{
		restaurants: restaurants,
		Interval:    time.Minute,
		stopCh:      make(chan struct{}),
	}
}

func (ps *PromotionSweeper) Start() {
	go ps.run()
	utils.InfoLogger.Println("Promotion sweeper started")
}

func (ps *PromotionSweeper) Stop() {
	close(ps.stopCh)
}

func (ps *PromotionSweeper) run() {
	ticker := time.NewTicker(ps.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ps.Sweep()
		case <-ps.stopCh:
			return
		}
	}
}

// Sweep runs one expiry pass.
func (ps *PromotionSweeper) Sweep() {
	expired, err := ps.restaurants.ExpirePromotions(time.Now())
	if err != nil {
		utils.ErrorLogger.Printf("promotions: sweep: %v", err)
		return
	}
	if expired > 0 {
		utils.InfoLogger.Printf("Promotion expired for %d restaurant(s)", expired)
	}
}
