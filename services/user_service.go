package services

import (
	"github.com/google/uuid"

	"eats-backend/models"
	"eats-backend/repositories"
	"eats-backend/utils"
)

type UserService struct {
	users         *repositories.UserRepository
	verifications *repositories.VerificationRepository
	mailer        Mailer
}

func NewUserService(users *repositories.UserRepository, verifications *repositories.VerificationRepository, mailer Mailer) *UserService {
	return &UserService{
		users:         users,
		verifications: verifications,
		mailer:        mailer,
	}
}

// CreateAccount signs a user up and kicks off email verification. The
// returned error is non-nil only when password hashing itself fails.
func (s *UserService) CreateAccount(email, password string, role models.UserRole) (Envelope, error) {
	if _, err := s.users.FindByEmail(email); err == nil {
		return fail("There is a user with that email already."), nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return Envelope{}, err
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := s.users.Create(user); err != nil {
		utils.ErrorLogger.Printf("users: create account: %v", err)
		return fail("Couldn't create account."), nil
	}

	verification := &models.Verification{
		Code:   uuid.NewString(),
		UserID: user.ID,
	}
	if err := s.verifications.Create(verification); err != nil {
		utils.ErrorLogger.Printf("users: create verification: %v", err)
		return fail("Couldn't create account."), nil
	}

	if s.mailer != nil {
		s.mailer.SendVerificationEmail(user.Email, verification.Code)
	}
	return ok(), nil
}

func (s *UserService) Login(email, password string) (string, Envelope) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", fail("User not found")
	}
	if !utils.CheckPassword(user.Password, password) {
		return "", fail("Wrong password")
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.ErrorLogger.Printf("users: sign token: %v", err)
		return "", fail("Could not log you in.")
	}
	return token, ok()
}

// FindByID is the raw lookup used by the auth middleware.
func (s *UserService) FindByID(id uint) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) UserProfile(id uint) (*models.User, Envelope) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, fail("User Not Found")
	}
	return user, ok()
}

// EditProfile updates email and/or password. An email change resets the
// verified flag and rotates the verification code. The returned error is
// non-nil only on a password hashing failure.
func (s *UserService) EditProfile(user *models.User, email, password *string) (Envelope, error) {
	if email != nil && *email != user.Email {
		user.Email = *email
		user.Verified = false

		if err := s.verifications.DeleteByUser(user.ID); err != nil {
			utils.ErrorLogger.Printf("users: rotate verification: %v", err)
			return fail("Could not update profile."), nil
		}
		verification := &models.Verification{
			Code:   uuid.NewString(),
			UserID: user.ID,
		}
		if err := s.verifications.Create(verification); err != nil {
			utils.ErrorLogger.Printf("users: rotate verification: %v", err)
			return fail("Could not update profile."), nil
		}
		if s.mailer != nil {
			s.mailer.SendVerificationEmail(user.Email, verification.Code)
		}
	}

	if password != nil {
		hash, err := utils.HashPassword(*password)
		if err != nil {
			return Envelope{}, err
		}
		user.Password = hash
	}

	if err := s.users.Save(user); err != nil {
		utils.ErrorLogger.Printf("users: edit profile: %v", err)
		return fail("Could not update profile."), nil
	}
	return ok(), nil
}

// VerifyEmail consumes a verification code. Replaying a consumed code
// fails with the same not-found message.
func (s *UserService) VerifyEmail(code string) Envelope {
	verification, err := s.verifications.FindByCode(code)
	if err != nil {
		return fail("Verification not found.")
	}

	user, err := s.users.FindByID(verification.UserID)
	if err != nil {
		utils.ErrorLogger.Printf("users: verify email: %v", err)
		return fail("Could not verify email.")
	}

	user.Verified = true
	if err := s.users.Save(user); err != nil {
		utils.ErrorLogger.Printf("users: verify email: %v", err)
		return fail("Could not verify email.")
	}
	if err := s.verifications.Delete(verification.ID); err != nil {
		utils.ErrorLogger.Printf("users: consume verification: %v", err)
		return fail("Could not verify email.")
	}
	return ok()
}
