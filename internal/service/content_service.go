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

type ContentService interface {
	CreateContent(req dto.ContentCreateDTO) (*dto.ContentResponseDTO, error)
	GetContent(id uint) (*dto.ContentResponseDTO, error)
	GetAllContents() ([]dto.ContentResponseDTO, error)
	UpdateContent(id uint, req dto.ContentUpdateDTO) (*dto.ContentResponseDTO, error)
	DeleteContent(id uint) error
}

type contentService struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

func (s *contentService) CreateContent(req dto.ContentCreateDTO) (*dto.ContentResponseDTO, error) {
	content := model.Content{
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		Link:        req.Link,
	}
	if err := s.contentRepo.Create(&content); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateContent: repository error")
		return nil, fmt.Errorf("error creating content: %w", err)
	}
	return contentToResponse(&content)
}

func (s *contentService) GetContent(id uint) (*dto.ContentResponseDTO, error) {
	content, err := s.contentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("content %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching content %d: %w", id, err)
	}
	return contentToResponse(content)
}

func (s *contentService) GetAllContents() ([]dto.ContentResponseDTO, error) {
	contents, err := s.contentRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetAllContents: repository error")
		return nil, fmt.Errorf("error fetching contents: %w", err)
	}

	dtos := make([]dto.ContentResponseDTO, 0, len(contents))
	for i := range contents {
		resp, err := contentToResponse(&contents[i])
		if err != nil {
			continue
		}
		dtos = append(dtos, *resp)
	}
	return dtos, nil
}

func (s *contentService) UpdateContent(id uint, req dto.ContentUpdateDTO) (*dto.ContentResponseDTO, error) {
	content, err := s.contentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("content %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching content %d: %w", id, err)
	}

	if req.Title != "" {
		content.Title = req.Title
	}
	if req.Description != "" {
		content.Description = req.Description
	}
	if req.ContentType != "" {
		content.ContentType = req.ContentType
	}
	if req.Link != "" {
		content.Link = req.Link
	}

	if err := s.contentRepo.Update(content); err != nil {
		log.Error().Err(err).Uint("contentID", id).Msg("UpdateContent: repository error")
		return nil, fmt.Errorf("error updating content %d: %w", id, err)
	}
	return contentToResponse(content)
}

func (s *contentService) DeleteContent(id uint) error {
	if _, err := s.contentRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("content %d: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("error fetching content %d: %w", id, err)
	}
	if err := s.contentRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("contentID", id).Msg("DeleteContent: repository error")
		return fmt.Errorf("error deleting content %d: %w", id, err)
	}
	return nil
}

func contentToResponse(content *model.Content) (*dto.ContentResponseDTO, error) {
	var resp dto.ContentResponseDTO
	if err := copier.Copy(&resp, content); err != nil {
		log.Error().Err(err).Uint("contentID", content.ID).Msg("Failed to copy Content model to DTO")
		return nil, fmt.Errorf("error preparing content response: %w", err)
	}
	return &resp, nil
}
