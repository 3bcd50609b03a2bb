package notificationRepo

import (
	"gramzo/models"

	"go.mongodb.org/mongo-driver/bson"
)

// VisibilityFilter builds the per-role query deciding which notifications a
// caller may see. Admins see everything. Agents see admin notices, broadcasts,
// and agent-addressed records matching their id. Everyone else sees admin
// notices, broadcasts, and user-addressed records matching their id or phone.
func VisibilityFilter(role models.Role, agentID, userID, phone string) bson.M {
	if role == models.RoleAdmin {
		return bson.M{}
	}

	clauses := []bson.M{
		{"type": models.NotifAdminNotice},
		{"recipient_role": models.RoleAll},
	}

	if role == models.RoleAgent {
		clauses = append(clauses, bson.M{
			"recipient_role": models.RoleAgent,
			"recipient_id":   agentID,
		})
	} else {
		if userID != "" {
			clauses = append(clauses, bson.M{
				"recipient_role": models.RoleUser,
				"recipient_id":   userID,
			})
		}
		if phone != "" {
			clauses = append(clauses, bson.M{
				"recipient_role":  models.RoleUser,
				"recipient_phone": phone,
			})
		}
	}

	return bson.M{"$or": clauses}
}
