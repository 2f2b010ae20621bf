package graph

import (
	"eats-backend/models"
	"eats-backend/services"
)

// Output structs mirror the SDL types; fields resolve through
// graphql.UseFieldResolvers.

type outputType struct {
	Ok    bool
	Error *string
}

func newOutput(env services.Envelope) *outputType {
	out := &outputType{Ok: env.Ok}
	if env.Error != "" {
		msg := env.Error
		out.Error = &msg
	}
	return out
}

func errorOf(env services.Envelope) *string {
	if env.Error == "" {
		return nil
	}
	msg := env.Error
	return &msg
}

type userType struct {
	ID       int32
	Email    string
	Role     string
	Verified bool
}

func newUserType(u *models.User) *userType {
	return &userType{
		ID:       int32(u.ID),
		Email:    u.Email,
		Role:     string(u.Role),
		Verified: u.Verified,
	}
}

type categoryType struct {
	ID              int32
	Name            string
	CoverImage      *string
	Slug            string
	RestaurantCount int32
}

func newCategoryType(c *models.Category, restaurants *services.RestaurantService) *categoryType {
	return &categoryType{
		ID:              int32(c.ID),
		Name:            c.Name,
		CoverImage:      c.CoverImage,
		Slug:            c.Slug,
		RestaurantCount: int32(restaurants.RestaurantCount(c.ID)),
	}
}

type restaurantType struct {
	ID         int32
	Name       string
	CoverImage string
	Address    string
	Category   *categoryType
	IsPromoted bool
	Menu       []*dishType
}

func newRestaurantType(r *models.Restaurant, restaurants *services.RestaurantService) *restaurantType {
	out := &restaurantType{
		ID:         int32(r.ID),
		Name:       r.Name,
		CoverImage: r.CoverImage,
		Address:    r.Address,
		IsPromoted: r.IsPromoted,
		Menu:       []*dishType{},
	}
	if r.Category != nil {
		out.Category = newCategoryType(r.Category, restaurants)
	}
	for i := range r.Menu {
		out.Menu = append(out.Menu, newDishType(&r.Menu[i]))
	}
	return out
}

func newRestaurantTypes(list []models.Restaurant, restaurants *services.RestaurantService) []*restaurantType {
	out := make([]*restaurantType, 0, len(list))
	for i := range list {
		out = append(out, newRestaurantType(&list[i], restaurants))
	}
	return out
}

type dishChoiceType struct {
	Name  string
	Extra *float64
}

type dishOptionType struct {
	Name    string
	Extra   *float64
	Choices []*dishChoiceType
}

type dishType struct {
	ID          int32
	Name        string
	Price       float64
	Photo       *string
	Description string
	Options     []*dishOptionType
}

func newDishType(d *models.Dish) *dishType {
	out := &dishType{
		ID:          int32(d.ID),
		Name:        d.Name,
		Price:       d.Price,
		Photo:       d.Photo,
		Description: d.Description,
		Options:     []*dishOptionType{},
	}
	for _, option := range d.Options {
		choices := make([]*dishChoiceType, 0, len(option.Choices))
		for _, choice := range option.Choices {
			choices = append(choices, &dishChoiceType{Name: choice.Name, Extra: choice.Extra})
		}
		out.Options = append(out.Options, &dishOptionType{
			Name:    option.Name,
			Extra:   option.Extra,
			Choices: choices,
		})
	}
	return out
}

type orderItemOptionType struct {
	Name   string
	Choice *string
}

type orderItemType struct {
	ID      int32
	DishID  int32
	Options []*orderItemOptionType
}

type orderType struct {
	ID           int32
	Status       string
	Total        *float64
	CustomerID   *int32
	DriverID     *int32
	RestaurantID *int32
	Items        []*orderItemType
}

func newOrderType(o *models.Order) *orderType {
	out := &orderType{
		ID:           int32(o.ID),
		Status:       string(o.Status),
		Total:        o.Total,
		CustomerID:   toInt32(o.CustomerID),
		DriverID:     toInt32(o.DriverID),
		RestaurantID: toInt32(o.RestaurantID),
		Items:        []*orderItemType{},
	}
	for i := range o.Items {
		item := &o.Items[i]
		options := make([]*orderItemOptionType, 0, len(item.Options))
		for _, option := range item.Options {
			options = append(options, &orderItemOptionType{Name: option.Name, Choice: option.Choice})
		}
		out.Items = append(out.Items, &orderItemType{
			ID:      int32(item.ID),
			DishID:  int32(item.DishID),
			Options: options,
		})
	}
	return out
}

func newOrderTypes(list []models.Order) []*orderType {
	out := make([]*orderType, 0, len(list))
	for i := range list {
		out = append(out, newOrderType(&list[i]))
	}
	return out
}

type paymentType struct {
	ID            int32
	TransactionID string
	UserID        int32
	RestaurantID  int32
}

func toInt32(v *uint) *int32 {
	if v == nil {
		return nil
	}
	out := int32(*v)
	return &out
}
