package agent

import (
	"context"

	"gramzo/models"
)

// SignupInput is the payload for agent onboarding.
type SignupInput struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Location   string `json:"location"`
	CategoryID string `json:"categoryId"`
}

// AgentService manages agent onboarding and moderation.
type AgentService interface {
	Signup(ctx context.Context, in SignupInput) (*models.Agent, bool, error)
	GetByID(ctx context.Context, id string) (*models.Agent, error)
	List(ctx context.Context) ([]models.Agent, error)
	Approve(ctx context.Context, id string, actor models.AuthContext) (*models.Agent, error)
	ToggleBlock(ctx context.Context, id string, actor models.AuthContext) (*models.Agent, error)
}
