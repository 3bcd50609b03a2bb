package notification

import (
	"context"
	"time"

	notificationRepo "gramzo/database/repository/notification"
	"gramzo/models"
	"gramzo/utils"

	"github.com/google/uuid"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

func (s *DefaultNotificationService) List(ctx context.Context, actor models.AuthContext) ([]models.Notification, error) {
	filter := notificationRepo.VisibilityFilter(actor.Role, actor.AgentID, actor.UserID, actor.Phone)
	notifications, err := s.Repo.ListByFilter(ctx, filter)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

// Create persists a client-authored notification. Admin notices require the
// admin role; other types are open to any caller, which the booking engine
// relies on for its booking_request/booking_update records.
func (s *DefaultNotificationService) Create(ctx context.Context, in CreateNotificationInput, actorRole models.Role) (*models.Notification, error) {
	switch in.Type {
	case models.NotifAdminNotice, models.NotifOrderUpdate, models.NotifBookingRequest, models.NotifBookingUpdate:
	default:
		return nil, utils.InvalidArgument("unknown notification type: " + in.Type)
	}
	if in.Type == models.NotifAdminNotice && actorRole != models.RoleAdmin {
		return nil, utils.Forbidden("only admins can publish admin notices")
	}

	notification := models.Notification{
		ID:             uuid.New().String(),
		Title:          in.Title,
		Message:        in.Message,
		Type:           in.Type,
		RecipientRole:  models.NormalizeRole(in.RecipientRole),
		RecipientID:    in.RecipientID,
		RecipientPhone: in.RecipientPhone,
		BookingID:      in.BookingID,
		SenderID:       in.SenderID,
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.Create(ctx, notification); err != nil {
		return nil, utils.Internal(err)
	}
	return &notification, nil
}

// Delete removes a notification. Admins can delete anything; other callers
// only records addressed to them.
func (s *DefaultNotificationService) Delete(ctx context.Context, id string, actor models.AuthContext) error {
	notification, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return utils.Internal(err)
	}
	if notification == nil {
		return utils.NotFound("notification")
	}

	if !actor.IsAdmin() && !addressedTo(notification, actor) {
		return utils.Forbidden("not allowed to delete this notification")
	}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return utils.Internal(err)
	}
	if !deleted {
		return utils.NotFound("notification")
	}
	return nil
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	found, err := s.Repo.MarkRead(ctx, id)
	if err != nil {
		return utils.Internal(err)
	}
	if !found {
		return utils.NotFound("notification")
	}
	return nil
}

func addressedTo(n *models.Notification, actor models.AuthContext) bool {
	switch n.RecipientRole {
	case models.RoleAgent:
		return actor.AgentID != "" && n.RecipientID == actor.AgentID
	case models.RoleUser:
		return (actor.UserID != "" && n.RecipientID == actor.UserID) ||
			(actor.Phone != "" && n.RecipientPhone == actor.Phone)
	default:
		return false
	}
}
