package graph

import (
	"context"

	"eats-backend/models"
)

type createAccountInput struct {
	Email    string
	Password string
	Role     string
}

type createAccountArgs struct {
	Input createAccountInput
}

func (r *Resolver) CreateAccount(ctx context.Context, args createAccountArgs) (*outputType, error) {
	env, err := r.users.CreateAccount(args.Input.Email, args.Input.Password, models.UserRole(args.Input.Role))
	if err != nil {
		return nil, err
	}
	return newOutput(env), nil
}

type loginInput struct {
	Email    string
	Password string
}

type loginArgs struct {
	Input loginInput
}

type loginOutputType struct {
	Ok    bool
	Error *string
	Token *string
}

func (r *Resolver) Login(ctx context.Context, args loginArgs) *loginOutputType {
	token, env := r.users.Login(args.Input.Email, args.Input.Password)
	out := &loginOutputType{Ok: env.Ok, Error: errorOf(env)}
	if env.Ok {
		out.Token = &token
	}
	return out
}

func (r *Resolver) Me(ctx context.Context) (*userType, error) {
	user, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}
	return newUserType(user), nil
}

type userProfileArgs struct {
	UserID int32
}

type userProfileOutputType struct {
	Ok    bool
	Error *string
	User  *userType
}

func (r *Resolver) UserProfile(ctx context.Context, args userProfileArgs) (*userProfileOutputType, error) {
	if _, err := r.authorize(ctx); err != nil {
		return nil, err
	}
	user, env := r.users.UserProfile(uint(args.UserID))
	out := &userProfileOutputType{Ok: env.Ok, Error: errorOf(env)}
	if user != nil {
		out.User = newUserType(user)
	}
	return out, nil
}

type editProfileInput struct {
	Email    *string
	Password *string
}

type editProfileArgs struct {
	Input editProfileInput
}

func (r *Resolver) EditProfile(ctx context.Context, args editProfileArgs) (*outputType, error) {
	user, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}
	env, err := r.users.EditProfile(user, args.Input.Email, args.Input.Password)
	if err != nil {
		return nil, err
	}
	return newOutput(env), nil
}

type verifyEmailInput struct {
	Code string
}

type verifyEmailArgs struct {
	Input verifyEmailInput
}

func (r *Resolver) VerifyEmail(ctx context.Context, args verifyEmailArgs) *outputType {
	return newOutput(r.users.VerifyEmail(args.Input.Code))
}
