package services

import (
	"strings"

	"eats-backend/models"
	"eats-backend/repositories"
	"eats-backend/utils"
)

// PageSize is the fixed page length for every paginated listing.
const PageSize = 25

type RestaurantService struct {
	restaurants *repositories.RestaurantRepository
	categories  *repositories.CategoryRepository
	dishes      *repositories.DishRepository
}

func NewRestaurantService(restaurants *repositories.RestaurantRepository, categories *repositories.CategoryRepository, dishes *repositories.DishRepository) *RestaurantService {
	return &RestaurantService{
		restaurants: restaurants,
		categories:  categories,
		dishes:      dishes,
	}
}

// Slugify normalizes a category name into its unique slug.
func Slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(name)), "-"))
}

func (s *RestaurantService) getOrCreateCategory(name string) (*models.Category, error) {
	slug := Slugify(name)
	category, err := s.categories.FindBySlug(slug)
	if err == nil {
		return category, nil
	}

	category = &models.Category{
		Name: strings.TrimSpace(name),
		Slug: slug,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

type CreateRestaurantInput struct {
	Name         string
	CoverImage   string
	Address      string
	CategoryName string
}

func (s *RestaurantService) CreateRestaurant(owner *models.User, input CreateRestaurantInput) Envelope {
	category, err := s.getOrCreateCategory(input.CategoryName)
	if err != nil {
		utils.ErrorLogger.Printf("restaurants: resolve category: %v", err)
		return fail("Could not create restaurant.")
	}

	restaurant := &models.Restaurant{
		Name:       input.Name,
		CoverImage: input.CoverImage,
		Address:    input.Address,
		OwnerID:    owner.ID,
		CategoryID: &category.ID,
	}
	if err := s.restaurants.Create(restaurant); err != nil {
		utils.ErrorLogger.Printf("restaurants: create: %v", err)
		return fail("Could not create restaurant.")
	}
	return ok()
}

type EditRestaurantInput struct {
	RestaurantID uint
	Name         *string
	CoverImage   *string
	Address      *string
	CategoryName *string
}

func (s *RestaurantService) EditRestaurant(owner *models.User, input EditRestaurantInput) Envelope {
	restaurant, err := s.restaurants.FindByID(input.RestaurantID)
	if err != nil {
		return fail("Restaurant not found.")
	}
	if restaurant.OwnerID != owner.ID {
		return fail("You can't edit a restaurant that you don't own.")
	}

	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.CoverImage != nil {
		restaurant.CoverImage = *input.CoverImage
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.CategoryName != nil {
		category, err := s.getOrCreateCategory(*input.CategoryName)
		if err != nil {
			utils.ErrorLogger.Printf("restaurants: resolve category: %v", err)
			return fail("Could not edit restaurant.")
		}
		restaurant.CategoryID = &category.ID
		restaurant.Category = category
	}

	if err := s.restaurants.Save(restaurant); err != nil {
		utils.ErrorLogger.Printf("restaurants: edit: %v", err)
		return fail("Could not edit restaurant.")
	}
	return ok()
}

func (s *RestaurantService) DeleteRestaurant(owner *models.User, restaurantID uint) Envelope {
	restaurant, err := s.restaurants.FindByID(restaurantID)
	if err != nil {
		return fail("Restaurant not found.")
	}
	if restaurant.OwnerID != owner.ID {
		return fail("You can't delete a restaurant that you don't own.")
	}
	if err := s.restaurants.Delete(restaurantID); err != nil {
		utils.ErrorLogger.Printf("restaurants: delete: %v", err)
		return fail("Could not delete restaurant.")
	}
	return ok()
}

func totalPages(totalResults int64) int {
	return int((totalResults + PageSize - 1) / PageSize)
}

func pageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

func (s *RestaurantService) Restaurants(page int) ([]models.Restaurant, int, int64, Envelope) {
	restaurants, total, err := s.restaurants.FindPage(pageOffset(page), PageSize)
	if err != nil {
		utils.ErrorLogger.Printf("restaurants: list: %v", err)
		return nil, 0, 0, fail("Could not load restaurants.")
	}
	return restaurants, totalPages(total), total, ok()
}

func (s *RestaurantService) RestaurantByID(id uint) (*models.Restaurant, Envelope) {
	restaurant, err := s.restaurants.FindByIDWithMenu(id)
	if err != nil {
		return nil, fail("Restaurant not found.")
	}
	return restaurant, ok()
}

func (s *RestaurantService) SearchRestaurant(query string, page int) ([]models.Restaurant, int, int64, Envelope) {
	restaurants, total, err := s.restaurants.Search(query, pageOffset(page), PageSize)
	if err != nil {
		utils.ErrorLogger.Printf("restaurants: search: %v", err)
		return nil, 0, 0, fail("Could not search for restaurants.")
	}
	return restaurants, totalPages(total), total, ok()
}

func (s *RestaurantService) AllCategories() ([]models.Category, Envelope) {
	categories, err := s.categories.FindAll()
	if err != nil {
		utils.ErrorLogger.Printf("categories: list: %v", err)
		return nil, fail("Could not load categories.")
	}
	return categories, ok()
}

// RestaurantCount backs the per-category counter field.
func (s *RestaurantService) RestaurantCount(categoryID uint) int64 {
	count, err := s.categories.CountRestaurants(categoryID)
	if err != nil {
		utils.ErrorLogger.Printf("categories: count restaurants: %v", err)
		return 0
	}
	return count
}

func (s *RestaurantService) CategoryBySlug(slug string, page int) (*models.Category, []models.Restaurant, int, int64, Envelope) {
	category, err := s.categories.FindBySlug(slug)
	if err != nil {
		return nil, nil, 0, 0, fail("Category not found")
	}
	restaurants, total, err := s.categories.FindRestaurantsPage(category.ID, pageOffset(page), PageSize)
	if err != nil {
		utils.ErrorLogger.Printf("categories: load restaurants: %v", err)
		return nil, nil, 0, 0, fail("Could not load category.")
	}
	return category, restaurants, totalPages(total), total, ok()
}

type CreateDishInput struct {
	RestaurantID uint
	Name         string
	Price        float64
	Photo        *string
	Description  string
	Options      []models.DishOption
}

func (s *RestaurantService) CreateDish(owner *models.User, input CreateDishInput) Envelope {
	restaurant, err := s.restaurants.FindByID(input.RestaurantID)
	if err != nil {
		return fail("Restaurant not found.")
	}
	if restaurant.OwnerID != owner.ID {
		return fail("You can't do that.")
	}

	dish := &models.Dish{
		Name:         input.Name,
		Price:        input.Price,
		Photo:        input.Photo,
		Description:  input.Description,
		RestaurantID: restaurant.ID,
		Options:      input.Options,
	}
	if err := s.dishes.Create(dish); err != nil {
		utils.ErrorLogger.Printf("dishes: create: %v", err)
		return fail("Could not create dish.")
	}
	return ok()
}

type EditDishInput struct {
	DishID      uint
	Name        *string
	Price       *float64
	Photo       *string
	Description *string
	Options     []models.DishOption
}

func (s *RestaurantService) EditDish(owner *models.User, input EditDishInput) Envelope {
	dish, err := s.dishes.FindByIDWithRestaurant(input.DishID)
	if err != nil {
		return fail("Dish not found.")
	}
	if dish.Restaurant.OwnerID != owner.ID {
		return fail("You can't do that.")
	}

	if input.Name != nil {
		dish.Name = *input.Name
	}
	if input.Price != nil {
		dish.Price = *input.Price
	}
	if input.Photo != nil {
		dish.Photo = input.Photo
	}
	if input.Description != nil {
		dish.Description = *input.Description
	}
	if input.Options != nil {
		dish.Options = input.Options
	}

	if err := s.dishes.Save(dish); err != nil {
		utils.ErrorLogger.Printf("dishes: edit: %v", err)
		return fail("Could not edit dish.")
	}
	return ok()
}

func (s *RestaurantService) DeleteDish(owner *models.User, dishID uint) Envelope {
	dish, err := s.dishes.FindByIDWithRestaurant(dishID)
	if err != nil {
		return fail("Dish not found.")
	}
	if dish.Restaurant.OwnerID != owner.ID {
		return fail("You can't do that.")
	}
	if err := s.dishes.Delete(dishID); err != nil {
		utils.ErrorLogger.Printf("dishes: delete: %v", err)
		return fail("Could not delete dish.")
	}
	return ok()
}
