package agentRepo

import (
	"context"
	"fmt"

	"gramzo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAgentRepo) Create(ctx context.Context, agent models.Agent) error {
	if _, err := r.coll.InsertOne(ctx, agent); err != nil {
		return fmt.Errorf("failed to insert agent: %w", err)
	}
	return nil
}

func (r *mongoAgentRepo) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	var agent models.Agent
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&agent)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *mongoAgentRepo) GetByPhone(ctx context.Context, phone string) (*models.Agent, error) {
	var agent models.Agent
	err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&agent)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *mongoAgentRepo) GetAll(ctx context.Context) ([]models.Agent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var agents []models.Agent
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

func (r *mongoAgentRepo) UpdateSet(ctx context.Context, id string, update bson.M) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update agent with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("agent with id %s not found", id)
	}
	return nil
}

// IncrementEarnings atomically adds amount to the agent's earnings counter.
func (r *mongoAgentRepo) IncrementEarnings(ctx context.Context, id string, amount float64) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"earnings": amount}})
	if err != nil {
		return fmt.Errorf("failed to credit agent with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("agent with id %s not found", id)
	}
	return nil
}
