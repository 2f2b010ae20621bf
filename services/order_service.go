package services

import (
	"eats-backend/models"
	"eats-backend/pubsub"
	"eats-backend/repositories"
	"eats-backend/utils"
)

type OrderService struct {
	orders      *repositories.OrderRepository
	restaurants *repositories.RestaurantRepository
	dishes      *repositories.DishRepository
	hub         *pubsub.Hub
}

func NewOrderService(orders *repositories.OrderRepository, restaurants *repositories.RestaurantRepository, dishes *repositories.DishRepository, hub *pubsub.Hub) *OrderService {
	return &OrderService{
		orders:      orders,
		restaurants: restaurants,
		dishes:      dishes,
		hub:         hub,
	}
}

type CreateOrderItemInput struct {
	DishID  uint
	Options []models.OrderItemOption
}

type CreateOrderInput struct {
	RestaurantID uint
	Items        []CreateOrderItemInput
}

// linePrice resolves one order line against the dish it references:
// base price, plus the option's flat extra when it has one, otherwise
// the matched choice's extra. Unknown option or choice names add zero.
func linePrice(dish *models.Dish, chosen []models.OrderItemOption) float64 {
	price := dish.Price
	for _, sel := range chosen {
		option := findOption(dish.Options, sel.Name)
		if option == nil {
			continue
		}
		if option.Extra != nil {
			price += *option.Extra
			continue
		}
		if sel.Choice == nil {
			continue
		}
		if choice := findChoice(option.Choices, *sel.Choice); choice != nil && choice.Extra != nil {
			price += *choice.Extra
		}
	}
	return price
}

func findOption(options []models.DishOption, name string) *models.DishOption {
	for i := range options {
		if options[i].Name == name {
			return &options[i]
		}
	}
	return nil
}

func findChoice(choices []models.DishChoice, name string) *models.DishChoice {
	for i := range choices {
		if choices[i].Name == name {
			return &choices[i]
		}
	}
	return nil
}

// CreateOrder prices the cart, snapshots it as order items and publishes
// the new pending order to the restaurant's owner. Dishes are looked up
// globally, not restricted to the target restaurant.
func (s *OrderService) CreateOrder(customer *models.User, input CreateOrderInput) Envelope {
	restaurant, err := s.restaurants.FindByID(input.RestaurantID)
	if err != nil {
		return fail("Restaurant not found.")
	}

	var total float64
	var items []models.OrderItem
	for _, line := range input.Items {
		dish, err := s.dishes.FindByID(line.DishID)
		if err != nil {
			return fail("Dish not found.")
		}
		total += linePrice(dish, line.Options)

		item := models.OrderItem{
			DishID:  dish.ID,
			Options: line.Options,
		}
		if err := s.orders.CreateItem(&item); err != nil {
			utils.ErrorLogger.Printf("orders: create item: %v", err)
			return fail("Could not create order.")
		}
		items = append(items, item)
	}

	order := models.Order{
		CustomerID:   &customer.ID,
		RestaurantID: &restaurant.ID,
		Items:        items,
		Total:        &total,
		Status:       models.StatusPending,
	}
	if err := s.orders.Create(&order); err != nil {
		utils.ErrorLogger.Printf("orders: create: %v", err)
		return fail("Could not create order.")
	}

	order.Restaurant = restaurant
	s.hub.Publish(pubsub.TopicNewPendingOrder, pubsub.OrderEvent{
		Order:   &order,
		OwnerID: restaurant.OwnerID,
	})
	return ok()
}

// GetOrders lists orders scoped by the caller's role. The Delivery branch
// runs the same customer-scoped query as Client; see DESIGN.md.
func (s *OrderService) GetOrders(user *models.User, status *models.OrderStatus) ([]models.Order, Envelope) {
	switch user.Role {
	case models.RoleClient:
		orders, err := s.orders.FindByCustomer(user.ID, status)
		if err != nil {
			utils.ErrorLogger.Printf("orders: list: %v", err)
			return nil, fail("Could not get orders.")
		}
		return orders, ok()
	case models.RoleDelivery:
		orders, err := s.orders.FindByCustomer(user.ID, status)
		if err != nil {
			utils.ErrorLogger.Printf("orders: list: %v", err)
			return nil, fail("Could not get orders.")
		}
		return orders, ok()
	case models.RoleOwner:
		restaurants, err := s.restaurants.FindByOwnerWithOrders(user.ID)
		if err != nil {
			utils.ErrorLogger.Printf("orders: list: %v", err)
			return nil, fail("Could not get orders.")
		}
		var orders []models.Order
		for _, restaurant := range restaurants {
			for _, order := range restaurant.Orders {
				if status != nil && order.Status != *status {
					continue
				}
				orders = append(orders, order)
			}
		}
		return orders, ok()
	}
	return nil, fail("Could not get orders.")
}

// CanSeeOrder holds for the order's customer, its driver and the owner of
// its restaurant, and for nobody else.
func (s *OrderService) CanSeeOrder(user *models.User, order *models.Order) bool {
	canSee := true
	if user.Role == models.RoleClient && (order.CustomerID == nil || *order.CustomerID != user.ID) {
		canSee = false
	}
	if user.Role == models.RoleDelivery && (order.DriverID == nil || *order.DriverID != user.ID) {
		canSee = false
	}
	if user.Role == models.RoleOwner && (order.Restaurant == nil || order.Restaurant.OwnerID != user.ID) {
		canSee = false
	}
	return canSee
}

func (s *OrderService) GetOrder(user *models.User, orderID uint) (*models.Order, Envelope) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, fail("Order not found.")
	}
	if !s.CanSeeOrder(user, order) {
		return nil, fail("Permission denied.")
	}
	return order, ok()
}

// EditOrder applies a role-gated status change. Owners may set Cooking or
// Cooked, drivers PickedUp or Delivered, clients nothing. The new status
// is not validated against the current one.
func (s *OrderService) EditOrder(user *models.User, orderID uint, status models.OrderStatus) Envelope {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return fail("Order not found")
	}
	if !s.CanSeeOrder(user, order) {
		return fail("Permission denied.")
	}

	canEdit := true
	if user.Role == models.RoleClient {
		canEdit = false
	}
	if user.Role == models.RoleOwner {
		if status != models.StatusCooking && status != models.StatusCooked {
			canEdit = false
		}
	}
	if user.Role == models.RoleDelivery {
		if status != models.StatusPickedUp && status != models.StatusDelivered {
			canEdit = false
		}
	}
	if !canEdit {
		return fail("You can't do that.")
	}

	if err := s.orders.UpdateStatus(orderID, status); err != nil {
		utils.ErrorLogger.Printf("orders: edit: %v", err)
		return fail("Could not edit order.")
	}

	order.Status = status
	if status == models.StatusCooked {
		s.hub.Publish(pubsub.TopicNewCookedOrder, pubsub.OrderEvent{Order: order})
	}
	s.hub.Publish(pubsub.TopicNewOrderUpdate, pubsub.OrderEvent{Order: order})
	return ok()
}

// TakeOrder assigns the calling driver to an unclaimed order.
func (s *OrderService) TakeOrder(driver *models.User, orderID uint) Envelope {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return fail("Order not found")
	}
	if order.DriverID != nil {
		return fail("This order already has a driver.")
	}

	if err := s.orders.UpdateDriver(orderID, driver.ID); err != nil {
		utils.ErrorLogger.Printf("orders: take: %v", err)
		return fail("Could not update order.")
	}

	order.DriverID = &driver.ID
	order.Driver = driver
	s.hub.Publish(pubsub.TopicNewOrderUpdate, pubsub.OrderEvent{Order: order})
	return ok()
}
