package accounts

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Elliot-87/YOUTHCENTRE/internal/logging"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

// UserStore is the persistence surface the accounts service needs. Lookups
// return (nil, nil) when no row matches.
type UserStore interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uint) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	EmployerProfileByUser(ctx context.Context, userID uint) (*models.EmployerProfile, error)
	UpdateEmployerProfile(ctx context.Context, profile *models.EmployerProfile) error
}

// Service handles registration, login and profile access.
type Service struct {
	users  UserStore
	tokens *TokenIssuer
	logger logging.Logger
}

func NewService(users UserStore, tokens *TokenIssuer) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logging.GetGlobalLogger(),
	}
}

// Register creates an account with the role profile the request selects.
// Registration only hands out employer and jobseeker roles; admins are
// provisioned directly. The new account is logged in immediately.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Role != models.RoleEmployer && req.Role != models.RoleJobseeker {
		return nil, utils.NewValidationError("role must be employer or jobseeker")
	}

	existing, err := s.users.UserByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to check existing accounts")
	}
	if existing != nil {
		return nil, utils.NewValidationError("an account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to hash password")
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}
	switch req.Role {
	case models.RoleEmployer:
		user.EmployerProfile = &models.EmployerProfile{
			CompanyName: req.CompanyName,
			Website:     req.Website,
		}
	case models.RoleJobseeker:
		user.JobseekerProfile = &models.JobseekerProfile{}
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, utils.NewInternalServerError("failed to create account")
	}

	s.logger.Info("Account registered", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: *user, Token: token}, nil
}

// Login verifies credentials and returns a fresh token. Unknown email and
// wrong password produce the same response.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.UserByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to look up account")
	}
	if user == nil {
		return nil, utils.NewAuthenticationError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, utils.NewAuthenticationError("Invalid credentials")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: *user, Token: token}, nil
}

// Profile returns the account with its role profile attached.
func (s *Service) Profile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load profile")
	}
	if user == nil {
		return nil, utils.NewNotFoundError("account does not exist")
	}
	return user, nil
}

// ApproveEmployer flips the approval flag on an employer profile. Only
// reachable through the admin surface.
func (s *Service) ApproveEmployer(ctx context.Context, userID uint, approved bool) (*models.EmployerProfile, error) {
	profile, err := s.users.EmployerProfileByUser(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load employer profile")
	}
	if profile == nil {
		return nil, utils.NewNotFoundError("employer profile does not exist")
	}

	profile.Approved = approved
	if err := s.users.UpdateEmployerProfile(ctx, profile); err != nil {
		return nil, utils.NewInternalServerError("failed to update employer profile")
	}

	s.logger.Info("Employer approval changed", map[string]interface{}{
		"user_id":  userID,
		"approved": approved,
	})
	return profile, nil
}
