package graph

import (
	"context"

	"eats-backend/models"
)

type createPaymentInput struct {
	TransactionID string
	RestaurantID  int32
}

type createPaymentArgs struct {
	Input createPaymentInput
}

func (r *Resolver) CreatePayment(ctx context.Context, args createPaymentArgs) (*outputType, error) {
	owner, err := r.authorize(ctx, models.RoleOwner)
	if err != nil {
		return nil, err
	}
	env := r.payments.CreatePayment(owner, args.Input.TransactionID, uint(args.Input.RestaurantID))
	return newOutput(env), nil
}

type getPaymentsOutputType struct {
	Ok       bool
	Error    *string
	Payments []*paymentType
}

func (r *Resolver) GetPayments(ctx context.Context) (*getPaymentsOutputType, error) {
	owner, err := r.authorize(ctx, models.RoleOwner)
	if err != nil {
		return nil, err
	}

	payments, env := r.payments.GetPayments(owner)
	out := &getPaymentsOutputType{
		Ok:       env.Ok,
		Error:    errorOf(env),
		Payments: []*paymentType{},
	}
	for _, payment := range payments {
		out.Payments = append(out.Payments, &paymentType{
			ID:            int32(payment.ID),
			TransactionID: payment.TransactionID,
			UserID:        int32(payment.UserID),
			RestaurantID:  int32(payment.RestaurantID),
		})
	}
	return out, nil
}
