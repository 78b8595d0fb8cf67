package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/toeflcenter/backend/internal/apperrors"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/model"
	"github.com/toeflcenter/backend/internal/repository"
)

type ScheduleService interface {
	CreateSchedule(req dto.ScheduleCreateDTO) (*dto.ScheduleResponseDTO, error)
	GetSchedule(id uint) (*dto.ScheduleResponseDTO, error)
	GetAllSchedules() ([]dto.ScheduleResponseDTO, error)
	UpdateSchedule(id uint, req dto.ScheduleUpdateDTO) (*dto.ScheduleResponseDTO, error)
	DeleteSchedule(id uint) error
	RegisterUser(scheduleID, userID uint) (*dto.ScheduleResponseDTO, error)
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	userRepo     repository.UserRepository
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository, userRepo repository.UserRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo, userRepo: userRepo}
}

func (s *scheduleService) CreateSchedule(req dto.ScheduleCreateDTO) (*dto.ScheduleResponseDTO, error) {
	schedule := model.Schedule{
		TestName:       req.TestName,
		TestDate:       req.TestDate,
		AvailableSeats: req.AvailableSeats,
	}
	if err := s.scheduleRepo.Create(&schedule); err != nil {
		log.Error().Err(err).Str("testName", req.TestName).Msg("CreateSchedule: repository error")
		return nil, fmt.Errorf("error creating schedule: %w", err)
	}
	return scheduleToResponse(&schedule)
}

func (s *scheduleService) GetSchedule(id uint) (*dto.ScheduleResponseDTO, error) {
	schedule, err := s.scheduleRepo.FindByIDWithUsers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("schedule %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching schedule %d: %w", id, err)
	}
	return scheduleToResponse(schedule)
}

func (s *scheduleService) GetAllSchedules() ([]dto.ScheduleResponseDTO, error) {
	schedules, err := s.scheduleRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetAllSchedules: repository error")
		return nil, fmt.Errorf("error fetching schedules: %w", err)
	}

	dtos := make([]dto.ScheduleResponseDTO, 0, len(schedules))
	for i := range schedules {
		resp, err := scheduleToResponse(&schedules[i])
		if err != nil {
			continue
		}
		dtos = append(dtos, *resp)
	}
	return dtos, nil
}

func (s *scheduleService) UpdateSchedule(id uint, req dto.ScheduleUpdateDTO) (*dto.ScheduleResponseDTO, error) {
	schedule, err := s.scheduleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("schedule %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching schedule %d: %w", id, err)
	}

	if req.TestName != "" {
		schedule.TestName = req.TestName
	}
	if req.TestDate != nil {
		schedule.TestDate = *req.TestDate
	}
	if req.AvailableSeats != nil {
		schedule.AvailableSeats = *req.AvailableSeats
	}

	if err := s.scheduleRepo.Update(schedule); err != nil {
		log.Error().Err(err).Uint("scheduleID", id).Msg("UpdateSchedule: repository error")
		return nil, fmt.Errorf("error updating schedule %d: %w", id, err)
	}
	return scheduleToResponse(schedule)
}

func (s *scheduleService) DeleteSchedule(id uint) error {
	if _, err := s.scheduleRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("schedule %d: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("error fetching schedule %d: %w", id, err)
	}
	if err := s.scheduleRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("scheduleID", id).Msg("DeleteSchedule: repository error")
		return fmt.Errorf("error deleting schedule %d: %w", id, err)
	}
	return nil
}

// RegisterUser books a seat. Registration is rejected once the seat capacity
// is reached or when the user already holds a seat.
func (s *scheduleService) RegisterUser(scheduleID, userID uint) (*dto.ScheduleResponseDTO, error) {
	schedule, err := s.scheduleRepo.FindByID(scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("schedule %d: %w", scheduleID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching schedule %d: %w", scheduleID, err)
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching user %d: %w", userID, err)
	}

	registered, err := s.scheduleRepo.IsRegistered(scheduleID, userID)
	if err != nil {
		return nil, fmt.Errorf("error checking registration: %w", err)
	}
	if registered {
		return nil, apperrors.ErrAlreadyRegistered
	}

	count, err := s.scheduleRepo.CountRegistrations(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("error counting registrations: %w", err)
	}
	if count >= int64(schedule.AvailableSeats) {
		return nil, apperrors.ErrScheduleFull
	}

	if err := s.scheduleRepo.RegisterUser(schedule, user); err != nil {
		log.Error().Err(err).Uint("scheduleID", scheduleID).Uint("userID", userID).Msg("RegisterUser: repository error")
		return nil, fmt.Errorf("error registering user: %w", err)
	}

	log.Info().Uint("scheduleID", scheduleID).Uint("userID", userID).Msg("User registered for schedule")
	return s.GetSchedule(scheduleID)
}

func scheduleToResponse(schedule *model.Schedule) (*dto.ScheduleResponseDTO, error) {
	var resp dto.ScheduleResponseDTO
	if err := copier.Copy(&resp, schedule); err != nil {
		log.Error().Err(err).Uint("scheduleID", schedule.ID).Msg("Failed to copy Schedule model to DTO")
		return nil, fmt.Errorf("error preparing schedule response: %w", err)
	}
	return &resp, nil
}
