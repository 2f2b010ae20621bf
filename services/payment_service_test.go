package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eats-backend/models"
	"eats-backend/repositories"
)

func newPaymentService(db *gorm.DB) *PaymentService {
	return NewPaymentService(
		repositories.NewPaymentRepository(db),
		repositories.NewRestaurantRepository(db),
	)
}

func TestCreatePaymentPromotesRestaurant(t *testing.T) {
	db := setupTestDB()
	svc := newPaymentService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)
	restaurant := seedRestaurant(db, owner, "Seoul Grill")

	env := svc.CreatePayment(owner, "tx-123", restaurant.ID)
	require.True(t, env.Ok, env.Error)

	var stored models.Restaurant
	require.NoError(t, db.First(&stored, restaurant.ID).Error)
	assert.True(t, stored.IsPromoted)
	require.NotNil(t, stored.PromoteUntil)
	assert.WithinDuration(t, time.Now().Add(PromotionWindow), *stored.PromoteUntil, time.Minute)

	var payment models.Payment
	require.NoError(t, db.First(&payment).Error)
	assert.Equal(t, "tx-123", payment.TransactionID)
	assert.Equal(t, owner.ID, payment.UserID)
	assert.Equal(t, restaurant.ID, payment.RestaurantID)
}

func TestCreatePaymentNonOwnerDenied(t *testing.T) {
	db := setupTestDB()
	svc := newPaymentService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)
	rival := seedUser(db, "rival@example.com", models.RoleOwner)
	restaurant := seedRestaurant(db, owner, "Seoul Grill")

	env := svc.CreatePayment(rival, "tx-123", restaurant.ID)
	assert.False(t, env.Ok)
	assert.Equal(t, "Permission denied.", env.Error)

	var stored models.Restaurant
	require.NoError(t, db.First(&stored, restaurant.ID).Error)
	assert.False(t, stored.IsPromoted)

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreatePaymentRestaurantNotFound(t *testing.T) {
	db := setupTestDB()
	svc := newPaymentService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)

	env := svc.CreatePayment(owner, "tx-123", 42)
	assert.Equal(t, "Restaurant not found.", env.Error)
}

func TestGetPaymentsScopedToUser(t *testing.T) {
	db := setupTestDB()
	svc := newPaymentService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)
	other := seedUser(db, "other@example.com", models.RoleOwner)
	mine := seedRestaurant(db, owner, "Seoul Grill")
	theirs := seedRestaurant(db, other, "Rival Place")

	require.True(t, svc.CreatePayment(owner, "tx-1", mine.ID).Ok)
	require.True(t, svc.CreatePayment(other, "tx-2", theirs.ID).Ok)

	payments, env := svc.GetPayments(owner)
	require.True(t, env.Ok, env.Error)
	require.Len(t, payments, 1)
	assert.Equal(t, "tx-1", payments[0].TransactionID)
}

func TestPromotionSweeperClearsExpired(t *testing.T) {
	db := setupTestDB()
	owner := seedUser(db, "owner@example.com", models.RoleOwner)

	expired := seedRestaurant(db, owner, "Expired Place")
	past := time.Now().Add(-time.Hour)
	expired.IsPromoted = true
	expired.PromoteUntil = &past
	require.NoError(t, db.Save(expired).Error)

	active := seedRestaurant(db, owner, "Active Place")
	future := time.Now().Add(time.Hour)
	active.IsPromoted = true
	active.PromoteUntil = &future
	require.NoError(t, db.Save(active).Error)

	sweeper := NewPromotionSweeper(repositories.NewRestaurantRepository(db))
	sweeper.Sweep()

	var stored models.Restaurant
	require.NoError(t, db.First(&stored, expired.ID).Error)
	assert.False(t, stored.IsPromoted)
	assert.Nil(t, stored.PromoteUntil)

	stored = models.Restaurant{}
	require.NoError(t, db.First(&stored, active.ID).Error)
	assert.True(t, stored.IsPromoted)
	require.NotNil(t, stored.PromoteUntil)
}
