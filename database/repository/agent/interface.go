package agentRepo

import (
	"context"

	"gramzo/database"
	"gramzo/models"
	"gramzo/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AgentRepository interface {
	Create(ctx context.Context, agent models.Agent) error
	GetByID(ctx context.Context, id string) (*models.Agent, error)
	GetByPhone(ctx context.Context, phone string) (*models.Agent, error)
	GetAll(ctx context.Context) ([]models.Agent, error)
	UpdateSet(ctx context.Context, id string, update bson.M) error
	IncrementEarnings(ctx context.Context, id string, amount float64) error
}

type mongoAgentRepo struct {
	coll *mongo.Collection
}

// NewMongoAgentRepo returns an AgentRepository backed by MongoDB.
func NewMongoAgentRepo() AgentRepository {
	repo := &mongoAgentRepo{coll: database.Collection("agents")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("agent repo: %v", err)
	}
	return repo
}
