package graph

import (
	"context"

	"eats-backend/models"
	"eats-backend/pubsub"
	"eats-backend/services"
)

type orderItemOptionInput struct {
	Name   string
	Choice *string
}

type createOrderItemInput struct {
	DishID  int32
	Options *[]orderItemOptionInput
}

type createOrderInput struct {
	RestaurantID int32
	Items        []createOrderItemInput
}

type createOrderArgs struct {
	Input createOrderInput
}

func (r *Resolver) CreateOrder(ctx context.Context, args createOrderArgs) (*outputType, error) {
	customer, err := r.authorize(ctx, models.RoleClient)
	if err != nil {
		return nil, err
	}

	input := services.CreateOrderInput{RestaurantID: uint(args.Input.RestaurantID)}
	for _, item := range args.Input.Items {
		line := services.CreateOrderItemInput{DishID: uint(item.DishID)}
		if item.Options != nil {
			for _, option := range *item.Options {
				line.Options = append(line.Options, models.OrderItemOption{
					Name:   option.Name,
					Choice: option.Choice,
				})
			}
		}
		input.Items = append(input.Items, line)
	}
	return newOutput(r.orders.CreateOrder(customer, input)), nil
}

type getOrdersArgs struct {
	Status *string
}

type getOrdersOutputType struct {
	Ok     bool
	Error  *string
	Orders []*orderType
}

func (r *Resolver) GetOrders(ctx context.Context, args getOrdersArgs) (*getOrdersOutputType, error) {
	user, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}

	var status *models.OrderStatus
	if args.Status != nil {
		s := models.OrderStatus(*args.Status)
		status = &s
	}
	orders, env := r.orders.GetOrders(user, status)
	return &getOrdersOutputType{
		Ok:     env.Ok,
		Error:  errorOf(env),
		Orders: newOrderTypes(orders),
	}, nil
}

type getOrderArgs struct {
	ID int32
}

type getOrderOutputType struct {
	Ok    bool
	Error *string
	Order *orderType
}

func (r *Resolver) GetOrder(ctx context.Context, args getOrderArgs) (*getOrderOutputType, error) {
	user, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}

	order, env := r.orders.GetOrder(user, uint(args.ID))
	out := &getOrderOutputType{Ok: env.Ok, Error: errorOf(env)}
	if order != nil {
		out.Order = newOrderType(order)
	}
	return out, nil
}

type editOrderInput struct {
	ID     int32
	Status string
}

type editOrderArgs struct {
	Input editOrderInput
}

func (r *Resolver) EditOrder(ctx context.Context, args editOrderArgs) (*outputType, error) {
	user, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}
	env := r.orders.EditOrder(user, uint(args.Input.ID), models.OrderStatus(args.Input.Status))
	return newOutput(env), nil
}

type takeOrderArgs struct {
	ID int32
}

func (r *Resolver) TakeOrder(ctx context.Context, args takeOrderArgs) (*outputType, error) {
	driver, err := r.authorize(ctx, models.RoleDelivery)
	if err != nil {
		return nil, err
	}
	return newOutput(r.orders.TakeOrder(driver, uint(args.ID))), nil
}

// bridge pumps hub events into a channel owned by the GraphQL engine
// until the subscriber's context is cancelled.
func bridge(ctx context.Context, sub *pubsub.Subscription) <-chan *orderType {
	out := make(chan *orderType)
	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, open := <-sub.C:
				if !open {
					return
				}
				select {
				case out <- newOrderType(ev.Order):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// PendingOrders streams new pending orders to the owner of the
// restaurant they were placed at.
func (r *Resolver) PendingOrders(ctx context.Context) (<-chan *orderType, error) {
	owner, err := r.authorize(ctx, models.RoleOwner)
	if err != nil {
		return nil, err
	}
	sub := r.hub.Subscribe(pubsub.TopicNewPendingOrder, func(ev pubsub.OrderEvent) bool {
		return ev.OwnerID == owner.ID
	})
	return bridge(ctx, sub), nil
}

// CookedOrders streams every newly cooked order to any driver.
func (r *Resolver) CookedOrders(ctx context.Context) (<-chan *orderType, error) {
	if _, err := r.authorize(ctx, models.RoleDelivery); err != nil {
		return nil, err
	}
	sub := r.hub.Subscribe(pubsub.TopicNewCookedOrder, nil)
	return bridge(ctx, sub), nil
}

type orderUpdatesArgs struct {
	ID int32
}

// OrderUpdates streams changes to one order, visible only to its driver,
// its customer or the owner of its restaurant.
func (r *Resolver) OrderUpdates(ctx context.Context, args orderUpdatesArgs) (<-chan *orderType, error) {
	user, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}

	orderID := uint(args.ID)
	sub := r.hub.Subscribe(pubsub.TopicNewOrderUpdate, func(ev pubsub.OrderEvent) bool {
		order := ev.Order
		if order.ID != orderID {
			return false
		}
		if order.DriverID != nil && *order.DriverID == user.ID {
			return true
		}
		if order.CustomerID != nil && *order.CustomerID == user.ID {
			return true
		}
		if order.Restaurant != nil && order.Restaurant.OwnerID == user.ID {
			return true
		}
		return false
	})
	return bridge(ctx, sub), nil
}
