package catalog

import (
	"context"
	"time"

	agentRepo "gramzo/database/repository/agent"
	catalogRepo "gramzo/database/repository/catalog"
	"gramzo/models"
	"gramzo/utils"

	"github.com/google/uuid"
)

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Services catalogRepo.ServiceRepository
	Products catalogRepo.ProductRepository
	Agents   agentRepo.AgentRepository
}

// ownerCheck validates the listing owner: the agent must exist, be approved
// and not blocked.
func (s *DefaultCatalogService) ownerCheck(ctx context.Context, agentID string) error {
	agent, err := s.Agents.GetByID(ctx, agentID)
	if err != nil {
		return utils.Internal(err)
	}
	if agent == nil {
		return utils.NotFound("agent")
	}
	if !agent.IsApproved {
		return utils.Forbidden("agent is not approved")
	}
	if agent.IsBlocked {
		return utils.Forbidden("agent is blocked")
	}
	return nil
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, in CreateListingInput) (*models.Service, error) {
	if err := s.ownerCheck(ctx, in.AgentID); err != nil {
		return nil, err
	}

	service := models.Service{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		AgentID:     in.AgentID,
		Location:    in.Location,
		Image:       in.Image,
		CreatedAt:   time.Now(),
	}
	if service.Image == "" {
		service.Image = models.DefaultListingImage
	}
	if err := s.Services.Create(ctx, service); err != nil {
		return nil, utils.Internal(err)
	}
	return &service, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	service, err := s.Services.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if service == nil {
		return nil, utils.NotFound("service")
	}
	return service, nil
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, filter catalogRepo.ListingFilter) ([]models.Service, error) {
	services, err := s.Services.List(ctx, filter)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, nil
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string, actor models.AuthContext) error {
	service, err := s.GetService(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && actor.AgentID != service.AgentID {
		return utils.Forbidden("only the owning agent or an admin can delete a service")
	}
	deleted, err := s.Services.Delete(ctx, id)
	if err != nil {
		return utils.Internal(err)
	}
	if !deleted {
		return utils.NotFound("service")
	}
	return nil
}

func (s *DefaultCatalogService) CreateProduct(ctx context.Context, in CreateListingInput) (*models.Product, error) {
	if err := s.ownerCheck(ctx, in.AgentID); err != nil {
		return nil, err
	}

	product := models.Product{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		AgentID:     in.AgentID,
		Location:    in.Location,
		Image:       in.Image,
		CreatedAt:   time.Now(),
	}
	if product.Image == "" {
		product.Image = models.DefaultListingImage
	}
	if err := s.Products.Create(ctx, product); err != nil {
		return nil, utils.Internal(err)
	}
	return &product, nil
}

func (s *DefaultCatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.Products.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if product == nil {
		return nil, utils.NotFound("product")
	}
	return product, nil
}

func (s *DefaultCatalogService) ListProducts(ctx context.Context, filter catalogRepo.ListingFilter) ([]models.Product, error) {
	products, err := s.Products.List(ctx, filter)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *DefaultCatalogService) DeleteProduct(ctx context.Context, id string, actor models.AuthContext) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && actor.AgentID != product.AgentID {
		return utils.Forbidden("only the owning agent or an admin can delete a product")
	}
	deleted, err := s.Products.Delete(ctx, id)
	if err != nil {
		return utils.Internal(err)
	}
	if !deleted {
		return utils.NotFound("product")
	}
	return nil
}
