package repositories

import (
	"eats-backend/models"

	"gorm.io/gorm"
)

type DishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{db: db}
}

func (r *DishRepository) Create(dish *models.Dish) error {
	return r.db.Create(dish).Error
}

func (r *DishRepository) FindByID(id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.First(&dish, id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// FindByIDWithRestaurant is used by ownership checks on dish edits.
func (r *DishRepository) FindByIDWithRestaurant(id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.Preload("Restaurant").First(&dish, id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) Save(dish *models.Dish) error {
	return r.db.Save(dish).Error
}

func (r *DishRepository) Delete(id uint) error {
	return r.db.Delete(&models.Dish{}, id).Error
}
