package domain

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/auth"
	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/repository"
	"github.com/airhart/airport-api/internal/service"
)

type UserService interface {
	Register(email, password string) (*model.User, error)
	Login(email, password string) (token string, err error)
}

type userService struct {
	db     *gorm.DB
	repo   repository.UserRepo
	tokens *auth.TokenManager
}

var _ UserService = (*userService)(nil)

func NewUserService(db *gorm.DB, userRepo repository.UserRepo, tokens *auth.TokenManager) *userService {
	return &userService{
		db:     db,
		repo:   userRepo,
		tokens: tokens,
	}
}

func (s *userService) Register(email, password string) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          email,
		HashedPassword: string(hashed),
		Role:           model.RoleUser,
	}
	if err := s.repo.Create(user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, service.ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(email, password string) (string, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", service.ErrBadCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", service.ErrBadCredentials
	}
	return s.tokens.Generate(user.ID, user.Role)
}
