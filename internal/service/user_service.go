package service

import (
	"context"
	"errors"
	"os"
	"time"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DTOs for Request validation
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address"`
	UID      string `json:"uid" binding:"required"`
}

type UpdateUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address"`
	ProfileImage string `json:"profile_image"`
	IsActive     *bool  `json:"is_active"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
	User  *model.User `json:"user"`
}

// UserService defines the interface for business logic related to User
type UserService interface {
	Register(ctx context.Context, req RegisterUserRequest, role string) (*model.User, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context, role string, page, limit int) ([]model.User, int64, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	userRepo  repository.UserRepository
	cardRepo  repository.UIDCardRepository
	txManager repository.TransactionManager
}

// NewUserService returns a new instance of UserService
func NewUserService(
	userRepo repository.UserRepository,
	cardRepo repository.UIDCardRepository,
	txManager repository.TransactionManager,
) UserService {
	return &userService{userRepo: userRepo, cardRepo: cardRepo, txManager: txManager}
}

// Register creates a user bound to a provisioned card. The card lookup is
// whitespace-insensitive like the scan path, and marking the card issued
// commits together with the user row.
func (s *userService) Register(ctx context.Context, req RegisterUserRequest, role string) (*model.User, error) {
	cleanUID := NormalizeUID(req.UID)
	if cleanUID == "" {
		return nil, errors.New("UID required")
	}

	if existing, err := s.userRepo.FindByMatchedUID(ctx, UIDMatchPattern(cleanUID)); err == nil && existing != nil {
		return nil, errors.New("UID already registered")
	}

	card, err := s.cardRepo.GetByUID(ctx, cleanUID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.New("UID not found in card inventory")
		}
		return nil, err
	}
	if card.IsUsed {
		return nil, errors.New("card already issued to another user")
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, errors.New("email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	employeeID, err := s.userRepo.NextEmployeeID(ctx)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		EmployeeID: employeeID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Address:    req.Address,
		UID:        cleanUID,
		Role:       role,
		IsActive:   true,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return s.cardRepo.MarkIssued(txCtx, cleanUID, user.ID)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}
	if !user.IsActive {
		return nil, errors.New("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_super_secret_key"
	}

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &TokenResponse{Token: tokenString, User: user}, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, role string, page, limit int) ([]model.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	return s.userRepo.List(ctx, role, page, limit)
}

func (s *userService) Update(ctx context.Context, id string, req UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" && req.Email != user.Email {
		if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
			return nil, errors.New("email already exists")
		}
		user.Email = req.Email
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete soft-deletes the user and returns their card to the available pool.
func (s *userService) Delete(ctx context.Context, id string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return errors.New("user not found")
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Delete(txCtx, id); err != nil {
			return err
		}
		return s.cardRepo.Release(txCtx, user.ID)
	})
}
