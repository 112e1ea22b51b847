package user

import (
	"context"
	"errors"
	"fmt"

	"Go-Receitas-API/domain"
	"Go-Receitas-API/entities"
	"Go-Receitas-API/internal/utils/mailing"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		CreateUser(ctx context.Context, req domain.UserRequest) (domain.UserResponse, error)
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		GetUserByID(ctx context.Context, id uint) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, id uint, req domain.UserRequest) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, id uint) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		mailer         mailing.Mailer
		appURL         string
	}
)

func NewUserService(userRepository UserRepository, mailer mailing.Mailer, appURL string) UserService {
	return &userService{
		userRepository: userRepository,
		mailer:         mailer,
		appURL:         appURL,
	}
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// ensureEmailFree fails when a user other than selfID already owns email.
func (s *userService) ensureEmailFree(ctx context.Context, email string, selfID uint) error {
	existing, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrEmailExists
	}
	return nil
}

func (s *userService) CreateUser(ctx context.Context, req domain.UserRequest) (domain.UserResponse, error) {
	if err := s.ensureEmailFree(ctx, req.Email, 0); err != nil {
		return domain.UserResponse{}, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	log.Infow("user created", "id", user.ID, "email", user.Email)

	body := mailing.WelcomeBody(user.Username, s.appURL)
	if err := s.mailer.SendMail(user.Email, domain.MessageWelcomeSubject, body); err != nil {
		log.Errorw("failed to send welcome mail", "id", user.ID, "error", err)
	}

	return toUserResponse(user), nil
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		res = append(res, toUserResponse(user))
	}
	return res, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req domain.UserRequest) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if err := s.ensureEmailFree(ctx, req.Email, id); err != nil {
		return domain.UserResponse{}, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Password = hashed
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	log.Infow("user updated", "id", user.ID, "email", user.Email)
	return toUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return domain.UserResponse{}, err
	}

	log.Infow("user deleted", "id", user.ID, "email", user.Email)
	return toUserResponse(user), nil
}
