package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/auth"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/repository"
)

type UserService interface {
	GetAllUsers() ([]dto.UserResponseDTO, error)
	GetUser(id uint) (*dto.UserResponseDTO, error)
	UpdateUser(id uint, callerID uint, callerIsAdmin bool, req dto.UserUpdateDTO) (*dto.UserResponseDTO, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers() ([]dto.UserResponseDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetAllUsers: repository error")
		return nil, fmt.Errorf("error fetching users: %w", err)
	}

	dtos := make([]dto.UserResponseDTO, 0, len(users))
	for _, user := range users {
		var resp dto.UserResponseDTO
		if err := copier.Copy(&resp, &user); err != nil {
			log.Error().Err(err).Uint("userID", user.ID).Msg("GetAllUsers: failed to copy user to DTO")
			continue
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *userService) GetUser(id uint) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching user %d: %w", id, err)
	}

	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}

// UpdateUser lets a user change their own profile; admins may change anyone's.
func (s *userService) UpdateUser(id uint, callerID uint, callerIsAdmin bool, req dto.UserUpdateDTO) (*dto.UserResponseDTO, error) {
	if id != callerID && !callerIsAdmin {
		return nil, fmt.Errorf("cannot update another user's profile: %w", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching user %d: %w", id, err)
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			log.Error().Err(err).Uint("userID", id).Msg("UpdateUser: failed to hash password")
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", id).Msg("UpdateUser: repository error")
		return nil, fmt.Errorf("error updating user %d: %w", id, err)
	}

	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}

func (s *userService) DeleteUser(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("error fetching user %d: %w", id, err)
	}
	if err := s.userRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("userID", id).Msg("DeleteUser: repository error")
		return fmt.Errorf("error deleting user %d: %w", id, err)
	}
	return nil
}
