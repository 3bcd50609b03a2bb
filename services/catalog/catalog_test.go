package catalog

import (
	"context"
	"testing"

	catalogRepo "gramzo/database/repository/catalog"
	"gramzo/models"
	"gramzo/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type mockAgentRepo struct {
	agents map[string]*models.Agent
}

func (m *mockAgentRepo) Create(ctx context.Context, a models.Agent) error { return nil }

func (m *mockAgentRepo) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	return m.agents[id], nil
}

func (m *mockAgentRepo) GetByPhone(ctx context.Context, phone string) (*models.Agent, error) {
	return nil, nil
}

func (m *mockAgentRepo) GetAll(ctx context.Context) ([]models.Agent, error) { return nil, nil }

func (m *mockAgentRepo) UpdateSet(ctx context.Context, id string, update bson.M) error { return nil }

func (m *mockAgentRepo) IncrementEarnings(ctx context.Context, id string, amount float64) error {
	return nil
}

type mockServiceRepo struct {
	getByIDFunc func(ctx context.Context, id string) (*models.Service, error)
	created     []models.Service
	deleted     []string
}

func (m *mockServiceRepo) Create(ctx context.Context, s models.Service) error {
	m.created = append(m.created, s)
	return nil
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockServiceRepo) List(ctx context.Context, f catalogRepo.ListingFilter) ([]models.Service, error) {
	return nil, nil
}

func (m *mockServiceRepo) Delete(ctx context.Context, id string) (bool, error) {
	m.deleted = append(m.deleted, id)
	return true, nil
}

type mockProductRepo struct {
	created []models.Product
}

func (m *mockProductRepo) Create(ctx context.Context, p models.Product) error {
	m.created = append(m.created, p)
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return nil, nil
}

func (m *mockProductRepo) List(ctx context.Context, f catalogRepo.ListingFilter) ([]models.Product, error) {
	return nil, nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) (bool, error) { return false, nil }

func newCatalogService() (*DefaultCatalogService, *mockServiceRepo) {
	services := &mockServiceRepo{}
	svc := &DefaultCatalogService{
		Services: services,
		Products: &mockProductRepo{},
		Agents: &mockAgentRepo{agents: map[string]*models.Agent{
			"approved": {ID: "approved", IsApproved: true},
			"pending":  {ID: "pending"},
			"blocked":  {ID: "blocked", IsApproved: true, IsBlocked: true},
		}},
	}
	return svc, services
}

func TestCreateService_OwnerChecks(t *testing.T) {
	svc, _ := newCatalogService()

	cases := []struct {
		name     string
		agentID  string
		wantCode string
	}{
		{"approved agent", "approved", ""},
		{"unapproved agent", "pending", utils.CodeForbidden},
		{"blocked agent", "blocked", utils.CodeForbidden},
		{"unknown agent", "missing", utils.CodeNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateService(context.Background(), CreateListingInput{
				Title: "Plumbing", Price: 500, AgentID: tc.agentID,
			})
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || utils.AsAppError(err).Code != tc.wantCode {
				t.Fatalf("expected %s, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestCreateService_DefaultImage(t *testing.T) {
	svc, services := newCatalogService()

	created, err := svc.CreateService(context.Background(), CreateListingInput{
		Title: "Plumbing", Price: 500, AgentID: "approved",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Image != models.DefaultListingImage {
		t.Errorf("image = %q, want default placeholder", created.Image)
	}
	if len(services.created) != 1 {
		t.Fatalf("expected one persisted service")
	}

	created, err = svc.CreateService(context.Background(), CreateListingInput{
		Title: "Plumbing", Price: 500, AgentID: "approved", Image: "custom.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Image != "custom.png" {
		t.Errorf("supplied image must be kept, got %q", created.Image)
	}
}

func TestCreateProduct_OwnerCheckApplies(t *testing.T) {
	svc, _ := newCatalogService()

	_, err := svc.CreateProduct(context.Background(), CreateListingInput{
		Title: "Fresh Milk", Price: 60, AgentID: "pending",
	})
	if err == nil || utils.AsAppError(err).Code != utils.CodeForbidden {
		t.Fatalf("expected Forbidden for unapproved agent, got %v", err)
	}
}

func TestDeleteService_Authorization(t *testing.T) {
	owner := "approved"
	svc, services := newCatalogService()
	services.getByIDFunc = func(ctx context.Context, id string) (*models.Service, error) {
		return &models.Service{ID: id, AgentID: owner}, nil
	}

	err := svc.DeleteService(context.Background(), "svc-1", models.AuthContext{Role: models.RoleAgent, AgentID: "someone-else"})
	if err == nil || utils.AsAppError(err).Code != utils.CodeForbidden {
		t.Fatalf("expected Forbidden for non-owner, got %v", err)
	}
	if len(services.deleted) != 0 {
		t.Fatalf("forbidden delete must not reach the repository")
	}

	if err := svc.DeleteService(context.Background(), "svc-1", models.AuthContext{Role: models.RoleAgent, AgentID: owner}); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := svc.DeleteService(context.Background(), "svc-1", models.AuthContext{Role: models.RoleAdmin}); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if len(services.deleted) != 2 {
		t.Fatalf("expected 2 repository deletes, got %d", len(services.deleted))
	}
}

func TestGetService_NotFound(t *testing.T) {
	svc, _ := newCatalogService()

	_, err := svc.GetService(context.Background(), "missing")
	if err == nil || utils.AsAppError(err).Code != utils.CodeNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
