package agent

import (
	"context"
	"testing"

	"gramzo/models"
	"gramzo/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type mockAgentRepo struct {
	createFunc     func(ctx context.Context, a models.Agent) error
	getByIDFunc    func(ctx context.Context, id string) (*models.Agent, error)
	getByPhoneFunc func(ctx context.Context, phone string) (*models.Agent, error)
	updateSetFunc  func(ctx context.Context, id string, update bson.M) error
}

func (m *mockAgentRepo) Create(ctx context.Context, a models.Agent) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, a)
	}
	return nil
}

func (m *mockAgentRepo) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAgentRepo) GetByPhone(ctx context.Context, phone string) (*models.Agent, error) {
	if m.getByPhoneFunc != nil {
		return m.getByPhoneFunc(ctx, phone)
	}
	return nil, nil
}

func (m *mockAgentRepo) GetAll(ctx context.Context) ([]models.Agent, error) { return nil, nil }

func (m *mockAgentRepo) UpdateSet(ctx context.Context, id string, update bson.M) error {
	if m.updateSetFunc != nil {
		return m.updateSetFunc(ctx, id, update)
	}
	return nil
}

func (m *mockAgentRepo) IncrementEarnings(ctx context.Context, id string, amount float64) error {
	return nil
}

func TestSignup_NewAgentDefaults(t *testing.T) {
	var stored models.Agent
	svc := &DefaultAgentService{Repo: &mockAgentRepo{
		createFunc: func(ctx context.Context, a models.Agent) error {
			stored = a
			return nil
		},
	}}

	agent, created, err := svc.Signup(context.Background(), SignupInput{
		Name: "Juma", Phone: "0722000000", Location: "Kisumu", CategoryID: "cat-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true for a new phone")
	}
	if agent.IsApproved || agent.IsBlocked {
		t.Errorf("new agent must start unapproved and unblocked, got %+v", agent)
	}
	if agent.Earnings != 0 {
		t.Errorf("new agent earnings = %v, want 0", agent.Earnings)
	}
	if stored.ID != agent.ID {
		t.Errorf("returned agent does not match persisted agent")
	}
}

func TestSignup_IdempotentByPhone(t *testing.T) {
	existing := &models.Agent{ID: "agent-1", Name: "Juma", Phone: "0722000000", IsApproved: true, Earnings: 900}
	creates := 0
	svc := &DefaultAgentService{Repo: &mockAgentRepo{
		getByPhoneFunc: func(ctx context.Context, phone string) (*models.Agent, error) {
			if phone == existing.Phone {
				return existing, nil
			}
			return nil, nil
		},
		createFunc: func(ctx context.Context, a models.Agent) error {
			creates++
			return nil
		},
	}}

	agent, created, err := svc.Signup(context.Background(), SignupInput{
		Name: "Someone Else", Phone: "0722000000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for an existing phone")
	}
	if creates != 0 {
		t.Errorf("repeat signup must not write a new record")
	}
	if agent.ID != "agent-1" || agent.Name != "Juma" || agent.Earnings != 900 {
		t.Errorf("repeat signup must return the existing record unmodified, got %+v", agent)
	}
}

func TestApprove_AdminOnly(t *testing.T) {
	svc := &DefaultAgentService{Repo: &mockAgentRepo{
		getByIDFunc: func(ctx context.Context, id string) (*models.Agent, error) {
			return &models.Agent{ID: id}, nil
		},
	}}

	_, err := svc.Approve(context.Background(), "agent-1", models.AuthContext{Role: models.RoleAgent, AgentID: "agent-1"})
	if err == nil || utils.AsAppError(err).Code != utils.CodeForbidden {
		t.Fatalf("expected Forbidden for non-admin, got %v", err)
	}

	agent, err := svc.Approve(context.Background(), "agent-1", models.AuthContext{Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !agent.IsApproved {
		t.Errorf("expected approved agent")
	}
}

func TestToggleBlock(t *testing.T) {
	blocked := false
	repo := &mockAgentRepo{
		getByIDFunc: func(ctx context.Context, id string) (*models.Agent, error) {
			return &models.Agent{ID: id, IsBlocked: blocked}, nil
		},
		updateSetFunc: func(ctx context.Context, id string, update bson.M) error {
			blocked = update["is_blocked"].(bool)
			return nil
		},
	}
	svc := &DefaultAgentService{Repo: repo}
	admin := models.AuthContext{Role: models.RoleAdmin}

	agent, err := svc.ToggleBlock(context.Background(), "agent-1", admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !agent.IsBlocked {
		t.Errorf("first toggle must block")
	}

	agent, err = svc.ToggleBlock(context.Background(), "agent-1", admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agent.IsBlocked {
		t.Errorf("second toggle must unblock")
	}

	_, err = svc.ToggleBlock(context.Background(), "agent-1", models.AuthContext{Role: models.RoleUser})
	if err == nil || utils.AsAppError(err).Code != utils.CodeForbidden {
		t.Fatalf("expected Forbidden for non-admin, got %v", err)
	}
}
