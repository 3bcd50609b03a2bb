package notification

import (
	"context"
	"testing"

	"gramzo/models"
	"gramzo/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type mockNotificationRepo struct {
	createFunc   func(ctx context.Context, n models.Notification) error
	getByIDFunc  func(ctx context.Context, id string) (*models.Notification, error)
	listFunc     func(ctx context.Context, filter bson.M) ([]models.Notification, error)
	markReadFunc func(ctx context.Context, id string) (bool, error)
	deleteFunc   func(ctx context.Context, id string) (bool, error)
}

func (m *mockNotificationRepo) Create(ctx context.Context, n models.Notification) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepo) ListByFilter(ctx context.Context, filter bson.M) ([]models.Notification, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return false, nil
}

func (m *mockNotificationRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, nil
}

func TestCreate_TypeValidation(t *testing.T) {
	svc := &DefaultNotificationService{Repo: &mockNotificationRepo{}}

	for _, typ := range []string{"promo", "payment_update", ""} {
		_, err := svc.Create(context.Background(), CreateNotificationInput{
			Title: "t", Message: "m", Type: typ, RecipientRole: "All",
		}, models.RoleAdmin)
		if err == nil || utils.AsAppError(err).Code != utils.CodeInvalidArgument {
			t.Errorf("type %q: expected InvalidArgument, got %v", typ, err)
		}
	}
}

func TestCreate_AdminNoticeRequiresAdmin(t *testing.T) {
	svc := &DefaultNotificationService{Repo: &mockNotificationRepo{}}
	in := CreateNotificationInput{
		Title: "Maintenance", Message: "Down at noon", Type: models.NotifAdminNotice, RecipientRole: "All",
	}

	_, err := svc.Create(context.Background(), in, models.RoleUser)
	if err == nil || utils.AsAppError(err).Code != utils.CodeForbidden {
		t.Fatalf("expected Forbidden for non-admin, got %v", err)
	}

	n, err := svc.Create(context.Background(), in, models.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Type != models.NotifAdminNotice {
		t.Errorf("type = %q, want admin_notice", n.Type)
	}
}

func TestCreate_NormalizesRecipientRole(t *testing.T) {
	var stored models.Notification
	svc := &DefaultNotificationService{Repo: &mockNotificationRepo{
		createFunc: func(ctx context.Context, n models.Notification) error {
			stored = n
			return nil
		},
	}}

	_, err := svc.Create(context.Background(), CreateNotificationInput{
		Title: "t", Message: "m", Type: models.NotifOrderUpdate, RecipientRole: "agent", RecipientID: "agent-1",
	}, models.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.RecipientRole != models.RoleAgent {
		t.Errorf("recipientRole = %q, want normalized Agent", stored.RecipientRole)
	}
	if stored.IsRead {
		t.Errorf("new notification must start unread")
	}
}

func TestDelete_Authorization(t *testing.T) {
	target := &models.Notification{
		ID: "n-1", Type: models.NotifBookingRequest,
		RecipientRole: models.RoleAgent, RecipientID: "agent-1",
	}
	repo := &mockNotificationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*models.Notification, error) {
			if id == target.ID {
				return target, nil
			}
			return nil, nil
		},
		deleteFunc: func(ctx context.Context, id string) (bool, error) { return true, nil },
	}
	svc := &DefaultNotificationService{Repo: repo}
	ctx := context.Background()

	if err := svc.Delete(ctx, "n-1", models.AuthContext{Role: models.RoleAgent, AgentID: "agent-2"}); err == nil || utils.AsAppError(err).Code != utils.CodeForbidden {
		t.Errorf("stranger delete: expected Forbidden, got %v", err)
	}
	if err := svc.Delete(ctx, "n-1", models.AuthContext{Role: models.RoleAgent, AgentID: "agent-1"}); err != nil {
		t.Errorf("recipient delete failed: %v", err)
	}
	if err := svc.Delete(ctx, "n-1", models.AuthContext{Role: models.RoleAdmin}); err != nil {
		t.Errorf("admin delete failed: %v", err)
	}
	if err := svc.Delete(ctx, "missing", models.AuthContext{Role: models.RoleAdmin}); err == nil || utils.AsAppError(err).Code != utils.CodeNotFound {
		t.Errorf("missing delete: expected NotFound, got %v", err)
	}
}

func TestMarkRead(t *testing.T) {
	svc := &DefaultNotificationService{Repo: &mockNotificationRepo{
		markReadFunc: func(ctx context.Context, id string) (bool, error) {
			return id == "n-1", nil
		},
	}}

	if err := svc.MarkRead(context.Background(), "n-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.MarkRead(context.Background(), "missing")
	if err == nil || utils.AsAppError(err).Code != utils.CodeNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestStoreDispatcher_PersistsSynchronously(t *testing.T) {
	var stored models.Notification
	d := &StoreDispatcher{Repo: &mockNotificationRepo{
		createFunc: func(ctx context.Context, n models.Notification) error {
			stored = n
			return nil
		},
	}}

	n := models.Notification{ID: "n-1", Type: models.NotifBookingRequest, RecipientRole: models.RoleAgent}
	if err := d.Dispatch(context.Background(), n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != "n-1" {
		t.Fatalf("dispatch must persist the record as given, got %+v", stored)
	}
}

func TestList_EmptyNeverNil(t *testing.T) {
	svc := &DefaultNotificationService{Repo: &mockNotificationRepo{}}

	notifications, err := svc.List(context.Background(), models.AuthContext{Role: models.RoleUser})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notifications == nil {
		t.Fatalf("empty feed must be an empty slice, not nil")
	}
}
