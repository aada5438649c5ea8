package services

import (
	"strings"
	"time"

	"github.com/Silvia-kc/Project-Germany/entity"
	"github.com/Silvia-kc/Project-Germany/pkg/apperr"
	"github.com/Silvia-kc/Project-Germany/repository"
	"github.com/Silvia-kc/Project-Germany/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles register/login business logic.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a new buyer or seller account.
func (s *AuthService) Register(username, password, role string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperr.New(apperr.Validation, "username and password are required")
	}
	if role != "buyer" && role != "seller" {
		return nil, apperr.New(apperr.Validation, "role must be buyer or seller")
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "lookup username", err)
	}
	if count > 0 {
		return nil, apperr.New(apperr.Validation, "username already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "hash password", err)
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "create user", err)
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.TrimSpace(username)
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, apperr.New(apperr.Validation, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.Validation, "invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.Storage, "generate token", err)
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
