package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eats-backend/models"
	"eats-backend/repositories"
)

func newRestaurantService(db *gorm.DB) *RestaurantService {
	return NewRestaurantService(
		repositories.NewRestaurantRepository(db),
		repositories.NewCategoryRepository(db),
		repositories.NewDishRepository(db),
	)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Korean BBQ", "korean-bbq"},
		{"  Fast   Food  ", "fast-food"},
		{"Pizza", "pizza"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.name))
	}
}

func TestCreateRestaurantReusesCategoryBySlug(t *testing.T) {
	db := setupTestDB()
	svc := newRestaurantService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)

	env := svc.CreateRestaurant(owner, CreateRestaurantInput{
		Name:         "Seoul Grill",
		Address:      "Jl. Test No. 1",
		CategoryName: "Korean BBQ",
	})
	require.True(t, env.Ok, env.Error)

	// Same category under a differently-cased name maps to one slug.
	env = svc.CreateRestaurant(owner, CreateRestaurantInput{
		Name:         "Gangnam Grill",
		Address:      "Jl. Test No. 2",
		CategoryName: "korean   bbq",
	})
	require.True(t, env.Ok, env.Error)

	var categories []models.Category
	require.NoError(t, db.Find(&categories).Error)
	require.Len(t, categories, 1)
	assert.Equal(t, "korean-bbq", categories[0].Slug)
	assert.Equal(t, int64(2), svc.RestaurantCount(categories[0].ID))
}

func TestEditRestaurantOwnershipGate(t *testing.T) {
	db := setupTestDB()
	svc := newRestaurantService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)
	rival := seedUser(db, "rival@example.com", models.RoleOwner)
	restaurant := seedRestaurant(db, owner, "Seoul Grill")

	env := svc.EditRestaurant(rival, EditRestaurantInput{
		RestaurantID: restaurant.ID,
		Name:         strPtr("Hijacked"),
	})
	assert.Equal(t, "You can't edit a restaurant that you don't own.", env.Error)

	env = svc.EditRestaurant(owner, EditRestaurantInput{
		RestaurantID: restaurant.ID,
		Name:         strPtr("Seoul Grill 2"),
		CategoryName: strPtr("Korean BBQ"),
	})
	require.True(t, env.Ok, env.Error)

	var stored models.Restaurant
	require.NoError(t, db.First(&stored, restaurant.ID).Error)
	assert.Equal(t, "Seoul Grill 2", stored.Name)
	require.NotNil(t, stored.CategoryID)
}

func TestDeleteRestaurantOwnershipGate(t *testing.T) {
	db := setupTestDB()
	svc := newRestaurantService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)
	rival := seedUser(db, "rival@example.com", models.RoleOwner)
	restaurant := seedRestaurant(db, owner, "Seoul Grill")

	env := svc.DeleteRestaurant(rival, restaurant.ID)
	assert.Equal(t, "You can't delete a restaurant that you don't own.", env.Error)

	env = svc.DeleteRestaurant(owner, restaurant.ID)
	require.True(t, env.Ok, env.Error)

	var count int64
	require.NoError(t, db.Model(&models.Restaurant{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRestaurantsPaginationAndPromotedFirst(t *testing.T) {
	db := setupTestDB()
	svc := newRestaurantService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)

	for i := 0; i < 30; i++ {
		seedRestaurant(db, owner, fmt.Sprintf("Place %02d", i))
	}
	promoted := seedRestaurant(db, owner, "Promoted Place")
	promoted.IsPromoted = true
	require.NoError(t, db.Save(promoted).Error)

	page1, pages, total, env := svc.Restaurants(1)
	require.True(t, env.Ok, env.Error)
	assert.Equal(t, int64(31), total)
	assert.Equal(t, 2, pages)
	require.Len(t, page1, PageSize)
	assert.Equal(t, "Promoted Place", page1[0].Name)

	page2, _, _, env := svc.Restaurants(2)
	require.True(t, env.Ok, env.Error)
	assert.Len(t, page2, 31-PageSize)
}

func TestRestaurantByIDLoadsMenu(t *testing.T) {
	db := setupTestDB()
	svc := newRestaurantService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)
	restaurant := seedRestaurant(db, owner, "Seoul Grill")
	seedDish(db, restaurant, "Bulgogi", 12, nil)

	found, env := svc.RestaurantByID(restaurant.ID)
	require.True(t, env.Ok, env.Error)
	require.Len(t, found.Menu, 1)
	assert.Equal(t, "Bulgogi", found.Menu[0].Name)

	_, env = svc.RestaurantByID(999)
	assert.Equal(t, "Restaurant not found.", env.Error)
}

func TestSearchRestaurant(t *testing.T) {
	db := setupTestDB()
	svc := newRestaurantService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)
	seedRestaurant(db, owner, "Seoul Grill")
	seedRestaurant(db, owner, "Grill Bros")
	seedRestaurant(db, owner, "Noodle Bar")

	results, _, total, env := svc.SearchRestaurant("grill", 1)
	require.True(t, env.Ok, env.Error)
	assert.Equal(t, int64(2), total)
	assert.Len(t, results, 2)
}

func TestCategoryBySlug(t *testing.T) {
	db := setupTestDB()
	svc := newRestaurantService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)

	env := svc.CreateRestaurant(owner, CreateRestaurantInput{
		Name:         "Seoul Grill",
		Address:      "Jl. Test No. 1",
		CategoryName: "Korean BBQ",
	})
	require.True(t, env.Ok, env.Error)

	category, restaurants, pages, total, env := svc.CategoryBySlug("korean-bbq", 1)
	require.True(t, env.Ok, env.Error)
	assert.Equal(t, "Korean BBQ", category.Name)
	assert.Len(t, restaurants, 1)
	assert.Equal(t, 1, pages)
	assert.Equal(t, int64(1), total)

	_, _, _, _, env = svc.CategoryBySlug("no-such-slug", 1)
	assert.Equal(t, "Category not found", env.Error)
}

func TestCreateDishOwnershipGate(t *testing.T) {
	db := setupTestDB()
	svc := newRestaurantService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)
	rival := seedUser(db, "rival@example.com", models.RoleOwner)
	restaurant := seedRestaurant(db, owner, "Seoul Grill")

	env := svc.CreateDish(rival, CreateDishInput{
		RestaurantID: restaurant.ID,
		Name:         "Bulgogi",
		Price:        12,
	})
	assert.Equal(t, "You can't do that.", env.Error)

	env = svc.CreateDish(owner, CreateDishInput{
		RestaurantID: restaurant.ID,
		Name:         "Bulgogi",
		Price:        12,
		Options:      sizeOptions(),
	})
	require.True(t, env.Ok, env.Error)

	var dish models.Dish
	require.NoError(t, db.First(&dish).Error)
	assert.Equal(t, restaurant.ID, dish.RestaurantID)
	require.Len(t, dish.Options, 2)
	assert.Equal(t, "Size", dish.Options[0].Name)
}

func TestEditDish(t *testing.T) {
	db := setupTestDB()
	svc := newRestaurantService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)
	rival := seedUser(db, "rival@example.com", models.RoleOwner)
	restaurant := seedRestaurant(db, owner, "Seoul Grill")
	dish := seedDish(db, restaurant, "Bulgogi", 12, nil)

	env := svc.EditDish(rival, EditDishInput{DishID: dish.ID, Price: floatPtr(1)})
	assert.Equal(t, "You can't do that.", env.Error)

	env = svc.EditDish(owner, EditDishInput{
		DishID: dish.ID,
		Name:   strPtr("Bulgogi Deluxe"),
		Price:  floatPtr(15),
	})
	require.True(t, env.Ok, env.Error)

	var stored models.Dish
	require.NoError(t, db.First(&stored, dish.ID).Error)
	assert.Equal(t, "Bulgogi Deluxe", stored.Name)
	assert.Equal(t, 15.0, stored.Price)

	env = svc.EditDish(owner, EditDishInput{DishID: 999})
	assert.Equal(t, "Dish not found.", env.Error)
}

func TestDeleteDishOwnershipGate(t *testing.T) {
	db := setupTestDB()
	svc := newRestaurantService(db)
	owner := seedUser(db, "owner@example.com", models.RoleOwner)
	rival := seedUser(db, "rival@example.com", models.RoleOwner)
	restaurant := seedRestaurant(db, owner, "Seoul Grill")
	dish := seedDish(db, restaurant, "Bulgogi", 12, nil)

	env := svc.DeleteDish(rival, dish.ID)
	assert.Equal(t, "You can't do that.", env.Error)

	env = svc.DeleteDish(owner, dish.ID)
	require.True(t, env.Ok, env.Error)

	var count int64
	require.NoError(t, db.Model(&models.Dish{}).Count(&count).Error)
	assert.Zero(t, count)
}
