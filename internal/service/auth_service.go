package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/auth"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/model"
	"github.com/toeflcenter/backend/internal/repository"
)

type AuthService interface {
	Register(req dto.RegisterDTO) error
	Login(req dto.LoginDTO) (*dto.LoginResponseDTO, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{userRepo: userRepo, jwtService: jwtService}
}

func (s *authService) Register(req dto.RegisterDTO) error {
	_, err := s.userRepo.FindByEmail(req.Email)
	if err == nil {
		return apperrors.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to check existing user")
		return fmt.Errorf("error checking existing user: %w", err)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("Register: failed to hash password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     model.RoleUser,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Uint("userID", user.ID).Str("email", user.Email).Msg("User registered")
	return nil
}

func (s *authService) Login(req dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Login: failed to look up user")
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to generate token")
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponseDTO{
		Message: "Login successful",
		Token:   token,
		User: dto.UserResponseDTO{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
