package repositories

import (
	"time"

	"eats-backend/models"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.db.Create(restaurant).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.Preload("Category").First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// FindByIDWithMenu loads the restaurant together with its dishes.
func (r *RestaurantRepository) FindByIDWithMenu(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.Preload("Category").Preload("Menu").First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Save(restaurant *models.Restaurant) error {
	return r.db.Save(restaurant).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.db.Delete(&models.Restaurant{}, id).Error
}

// FindPage returns one page of restaurants, promoted ones first.
func (r *RestaurantRepository) FindPage(offset, limit int) ([]models.Restaurant, int64, error) {
	var restaurants []models.Restaurant
	var total int64
	if err := r.db.Model(&models.Restaurant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Preload("Category").
		Order("is_promoted desc").
		Offset(offset).Limit(limit).
		Find(&restaurants).Error
	return restaurants, total, err
}

func (r *RestaurantRepository) Search(query string, offset, limit int) ([]models.Restaurant, int64, error) {
	var restaurants []models.Restaurant
	var total int64
	pattern := "%" + query + "%"
	if err := r.db.Model(&models.Restaurant{}).Where("name LIKE ?", pattern).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("name LIKE ?", pattern).Offset(offset).Limit(limit).Find(&restaurants).Error
	return restaurants, total, err
}

func (r *RestaurantRepository) FindByOwnerWithOrders(ownerID uint) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.Where("owner_id = ?", ownerID).
		Preload("Orders").Preload("Orders.Restaurant").Preload("Orders.Items").
		Find(&restaurants).Error
	return restaurants, err
}

// ExpirePromotions clears the promoted flag on every restaurant whose
// window passed before now. Returns the number of rows touched.
func (r *RestaurantRepository) ExpirePromotions(now time.Time) (int64, error) {
	res := r.db.Model(&models.Restaurant{}).
		Where("is_promoted = ? AND promote_until IS NOT NULL AND promote_until < ?", true, now).
		Updates(map[string]interface{}{"is_promoted": false, "promote_until": nil})
	return res.RowsAffected, res.Error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) CountRestaurants(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Restaurant{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *CategoryRepository) FindRestaurantsPage(categoryID uint, offset, limit int) ([]models.Restaurant, int64, error) {
	var restaurants []models.Restaurant
	var total int64
	if err := r.db.Model(&models.Restaurant{}).Where("category_id = ?", categoryID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("category_id = ?", categoryID).Offset(offset).Limit(limit).Find(&restaurants).Error
	return restaurants, total, err
}
