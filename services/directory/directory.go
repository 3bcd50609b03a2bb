package directory

import (
	"context"
	"time"

	directoryRepo "gramzo/database/repository/directory"
	"gramzo/models"
	"gramzo/utils"

	"github.com/google/uuid"
)

// CreateCategoryInput is the payload for creating a category.
type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
}

// CreateNoticeInput is the payload for creating a notice.
type CreateNoticeInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// DirectoryService covers the CRUD-only tagged records: categories and notices.
type DirectoryService interface {
	CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id string, actor models.AuthContext) error

	CreateNotice(ctx context.Context, in CreateNoticeInput, actor models.AuthContext) (*models.Notice, error)
	ListNotices(ctx context.Context) ([]models.Notice, error)
	DeleteNotice(ctx context.Context, id string, actor models.AuthContext) error
}

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Categories directoryRepo.CategoryRepository
	Notices    directoryRepo.NoticeRepository
}

func (s *DefaultDirectoryService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	category := models.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		CreatedAt: time.Now(),
	}
	if err := s.Categories.Create(ctx, category); err != nil {
		return nil, utils.Internal(err)
	}
	return &category, nil
}

func (s *DefaultDirectoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.Categories.GetAll(ctx)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *DefaultDirectoryService) DeleteCategory(ctx context.Context, id string, actor models.AuthContext) error {
	if !actor.IsAdmin() {
		return utils.Forbidden("only admins can delete categories")
	}
	deleted, err := s.Categories.Delete(ctx, id)
	if err != nil {
		return utils.Internal(err)
	}
	if !deleted {
		return utils.NotFound("category")
	}
	return nil
}

func (s *DefaultDirectoryService) CreateNotice(ctx context.Context, in CreateNoticeInput, actor models.AuthContext) (*models.Notice, error) {
	if !actor.IsAdmin() {
		return nil, utils.Forbidden("only admins can publish notices")
	}
	notice := models.Notice{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		CreatedAt:   time.Now(),
	}
	if err := s.Notices.Create(ctx, notice); err != nil {
		return nil, utils.Internal(err)
	}
	return &notice, nil
}

func (s *DefaultDirectoryService) ListNotices(ctx context.Context) ([]models.Notice, error) {
	notices, err := s.Notices.GetAll(ctx)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if notices == nil {
		notices = []models.Notice{}
	}
	return notices, nil
}

func (s *DefaultDirectoryService) DeleteNotice(ctx context.Context, id string, actor models.AuthContext) error {
	if !actor.IsAdmin() {
		return utils.Forbidden("only admins can delete notices")
	}
	deleted, err := s.Notices.Delete(ctx, id)
	if err != nil {
		return utils.Internal(err)
	}
	if !deleted {
		return utils.NotFound("notice")
	}
	return nil
}
