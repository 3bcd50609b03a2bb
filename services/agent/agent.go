package agent

import (
	"context"
	"time"

	agentRepo "gramzo/database/repository/agent"
	"gramzo/models"
	"gramzo/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// DefaultAgentService is the production implementation.
type DefaultAgentService struct {
	Repo agentRepo.AgentRepository
}

// Signup registers an agent by phone. A second signup with the same phone
// returns the existing record unmodified; the boolean reports whether a new
// record was created. New agents start unapproved with zero earnings.
func (s *DefaultAgentService) Signup(ctx context.Context, in SignupInput) (*models.Agent, bool, error) {
	existing, err := s.Repo.GetByPhone(ctx, in.Phone)
	if err != nil {
		return nil, false, utils.Internal(err)
	}
	if existing != nil {
		return existing, false, nil
	}

	agent := models.Agent{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Phone:      in.Phone,
		Location:   in.Location,
		CategoryID: in.CategoryID,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(ctx, agent); err != nil {
		return nil, false, utils.Internal(err)
	}
	return &agent, true, nil
}

func (s *DefaultAgentService) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	agent, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if agent == nil {
		return nil, utils.NotFound("agent")
	}
	return agent, nil
}

func (s *DefaultAgentService) List(ctx context.Context) ([]models.Agent, error) {
	agents, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if agents == nil {
		agents = []models.Agent{}
	}
	return agents, nil
}

// Approve flips isApproved on. Admin only; approval is never revoked here.
func (s *DefaultAgentService) Approve(ctx context.Context, id string, actor models.AuthContext) (*models.Agent, error) {
	if !actor.IsAdmin() {
		return nil, utils.Forbidden("only admins can approve agents")
	}
	agent, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSet(ctx, id, bson.M{"is_approved": true}); err != nil {
		return nil, utils.Internal(err)
	}
	agent.IsApproved = true
	return agent, nil
}

// ToggleBlock flips isBlocked. Admin only.
func (s *DefaultAgentService) ToggleBlock(ctx context.Context, id string, actor models.AuthContext) (*models.Agent, error) {
	if !actor.IsAdmin() {
		return nil, utils.Forbidden("only admins can block agents")
	}
	agent, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	blocked := !agent.IsBlocked
	if err := s.Repo.UpdateSet(ctx, id, bson.M{"is_blocked": blocked}); err != nil {
		return nil, utils.Internal(err)
	}
	agent.IsBlocked = blocked
	return agent, nil
}
