package graph

import (
	"context"

	"eats-backend/models"
	"eats-backend/services"
)

type restaurantsArgs struct {
	Page int32
}

type restaurantsOutputType struct {
	Ok           bool
	Error        *string
	Restaurants  []*restaurantType
	TotalPages   *int32
	TotalResults *int32
}

func newRestaurantsOutput(list []models.Restaurant, pages int, results int64, env services.Envelope, svc *services.RestaurantService) *restaurantsOutputType {
	out := &restaurantsOutputType{
		Ok:          env.Ok,
		Error:       errorOf(env),
		Restaurants: newRestaurantTypes(list, svc),
	}
	if env.Ok {
		p := int32(pages)
		t := int32(results)
		out.TotalPages = &p
		out.TotalResults = &t
	}
	return out
}

func (r *Resolver) Restaurants(ctx context.Context, args restaurantsArgs) *restaurantsOutputType {
	list, pages, results, env := r.restaurants.Restaurants(int(args.Page))
	return newRestaurantsOutput(list, pages, results, env, r.restaurants)
}

type restaurantArgs struct {
	RestaurantID int32
}

type restaurantOutputType struct {
	Ok         bool
	Error      *string
	Restaurant *restaurantType
}

func (r *Resolver) Restaurant(ctx context.Context, args restaurantArgs) *restaurantOutputType {
	restaurant, env := r.restaurants.RestaurantByID(uint(args.RestaurantID))
	out := &restaurantOutputType{Ok: env.Ok, Error: errorOf(env)}
	if restaurant != nil {
		out.Restaurant = newRestaurantType(restaurant, r.restaurants)
	}
	return out
}

type searchRestaurantArgs struct {
	Query string
	Page  int32
}

func (r *Resolver) SearchRestaurant(ctx context.Context, args searchRestaurantArgs) *restaurantsOutputType {
	list, pages, results, env := r.restaurants.SearchRestaurant(args.Query, int(args.Page))
	return newRestaurantsOutput(list, pages, results, env, r.restaurants)
}

type allCategoriesOutputType struct {
	Ok         bool
	Error      *string
	Categories []*categoryType
}

func (r *Resolver) AllCategories(ctx context.Context) *allCategoriesOutputType {
	categories, env := r.restaurants.AllCategories()
	out := &allCategoriesOutputType{
		Ok:         env.Ok,
		Error:      errorOf(env),
		Categories: []*categoryType{},
	}
	for i := range categories {
		out.Categories = append(out.Categories, newCategoryType(&categories[i], r.restaurants))
	}
	return out
}

type categoryArgs struct {
	Slug string
	Page int32
}

type categoryOutputType struct {
	Ok           bool
	Error        *string
	Category     *categoryType
	Restaurants  []*restaurantType
	TotalPages   *int32
	TotalResults *int32
}

func (r *Resolver) Category(ctx context.Context, args categoryArgs) *categoryOutputType {
	category, list, pages, results, env := r.restaurants.CategoryBySlug(args.Slug, int(args.Page))
	out := &categoryOutputType{
		Ok:          env.Ok,
		Error:       errorOf(env),
		Restaurants: newRestaurantTypes(list, r.restaurants),
	}
	if category != nil {
		out.Category = newCategoryType(category, r.restaurants)
	}
	if env.Ok {
		p := int32(pages)
		t := int32(results)
		out.TotalPages = &p
		out.TotalResults = &t
	}
	return out
}

type createRestaurantInput struct {
	Name         string
	CoverImage   string
	Address      string
	CategoryName string
}

type createRestaurantArgs struct {
	Input createRestaurantInput
}

func (r *Resolver) CreateRestaurant(ctx context.Context, args createRestaurantArgs) (*outputType, error) {
	owner, err := r.authorize(ctx, models.RoleOwner)
	if err != nil {
		return nil, err
	}
	env := r.restaurants.CreateRestaurant(owner, services.CreateRestaurantInput{
		Name:         args.Input.Name,
		CoverImage:   args.Input.CoverImage,
		Address:      args.Input.Address,
		CategoryName: args.Input.CategoryName,
	})
	return newOutput(env), nil
}

type editRestaurantInput struct {
	RestaurantID int32
	Name         *string
	CoverImage   *string
	Address      *string
	CategoryName *string
}

type editRestaurantArgs struct {
	Input editRestaurantInput
}

func (r *Resolver) EditRestaurant(ctx context.Context, args editRestaurantArgs) (*outputType, error) {
	owner, err := r.authorize(ctx, models.RoleOwner)
	if err != nil {
		return nil, err
	}
	env := r.restaurants.EditRestaurant(owner, services.EditRestaurantInput{
		RestaurantID: uint(args.Input.RestaurantID),
		Name:         args.Input.Name,
		CoverImage:   args.Input.CoverImage,
		Address:      args.Input.Address,
		CategoryName: args.Input.CategoryName,
	})
	return newOutput(env), nil
}

type deleteRestaurantArgs struct {
	RestaurantID int32
}

func (r *Resolver) DeleteRestaurant(ctx context.Context, args deleteRestaurantArgs) (*outputType, error) {
	owner, err := r.authorize(ctx, models.RoleOwner)
	if err != nil {
		return nil, err
	}
	return newOutput(r.restaurants.DeleteRestaurant(owner, uint(args.RestaurantID))), nil
}

type dishChoiceInput struct {
	Name  string
	Extra *float64
}

type dishOptionInput struct {
	Name    string
	Extra   *float64
	Choices *[]dishChoiceInput
}

func toDishOptions(options *[]dishOptionInput) []models.DishOption {
	if options == nil {
		return nil
	}
	out := make([]models.DishOption, 0, len(*options))
	for _, option := range *options {
		converted := models.DishOption{Name: option.Name, Extra: option.Extra}
		if option.Choices != nil {
			for _, choice := range *option.Choices {
				converted.Choices = append(converted.Choices, models.DishChoice{
					Name:  choice.Name,
					Extra: choice.Extra,
				})
			}
		}
		out = append(out, converted)
	}
	return out
}

type createDishInput struct {
	RestaurantID int32
	Name         string
	Price        float64
	Photo        *string
	Description  string
	Options      *[]dishOptionInput
}

type createDishArgs struct {
	Input createDishInput
}

func (r *Resolver) CreateDish(ctx context.Context, args createDishArgs) (*outputType, error) {
	owner, err := r.authorize(ctx, models.RoleOwner)
	if err != nil {
		return nil, err
	}
	env := r.restaurants.CreateDish(owner, services.CreateDishInput{
		RestaurantID: uint(args.Input.RestaurantID),
		Name:         args.Input.Name,
		Price:        args.Input.Price,
		Photo:        args.Input.Photo,
		Description:  args.Input.Description,
		Options:      toDishOptions(args.Input.Options),
	})
	return newOutput(env), nil
}

type editDishInput struct {
	DishID      int32
	Name        *string
	Price       *float64
	Photo       *string
	Description *string
	Options     *[]dishOptionInput
}

type editDishArgs struct {
	Input editDishInput
}

func (r *Resolver) EditDish(ctx context.Context, args editDishArgs) (*outputType, error) {
	owner, err := r.authorize(ctx, models.RoleOwner)
	if err != nil {
		return nil, err
	}
	env := r.restaurants.EditDish(owner, services.EditDishInput{
		DishID:      uint(args.Input.DishID),
		Name:        args.Input.Name,
		Price:       args.Input.Price,
		Photo:       args.Input.Photo,
		Description: args.Input.Description,
		Options:     toDishOptions(args.Input.Options),
	})
	return newOutput(env), nil
}

type deleteDishArgs struct {
	DishID int32
}

func (r *Resolver) DeleteDish(ctx context.Context, args deleteDishArgs) (*outputType, error) {
	owner, err := r.authorize(ctx, models.RoleOwner)
	if err != nil {
		return nil, err
	}
	return newOutput(r.restaurants.DeleteDish(owner, uint(args.DishID))), nil
}
