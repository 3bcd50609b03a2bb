package booking

import (
	"context"
	"fmt"
	"time"

	agentRepo "gramzo/database/repository/agent"
	bookingRepo "gramzo/database/repository/booking"
	catalogRepo "gramzo/database/repository/catalog"
	"gramzo/models"
	"gramzo/services/notification"
	"gramzo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlatformFeeRate is the fixed share of every booking retained by the platform.
const PlatformFeeRate = 0.10

// DefaultBookingService is the production implementation of the lifecycle engine.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Services catalogRepo.ServiceRepository
	Agents   agentRepo.AgentRepository
	Notifier notification.Dispatcher
}

// Create books a service at its current price. The price, fee split and owning
// agent are frozen on the booking record; the agent is notified asynchronously
// after the booking is already persisted.
func (s *DefaultBookingService) Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	service, err := s.Services.GetByID(ctx, in.ServiceID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if service == nil {
		return nil, utils.NotFound("service")
	}

	amount := service.Price
	fee := amount * PlatformFeeRate

	booking := models.Booking{
		ID:            uuid.New().String(),
		UserName:      in.UserName,
		Phone:         in.Phone,
		ServiceID:     service.ID,
		AgentID:       service.AgentID,
		Date:          in.Date,
		Time:          in.Time,
		Amount:        amount,
		PlatformFee:   fee,
		AgentEarning:  amount - fee,
		PaymentStatus: models.PaymentPending,
		Status:        models.BookingPending,
		CreatedAt:     time.Now(),
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, utils.Internal(err)
	}

	s.notify(ctx, models.Notification{
		ID:            uuid.New().String(),
		Title:         "New booking request",
		Message:       fmt.Sprintf("%s requested %q on %s", in.UserName, service.Title, in.Date),
		Type:          models.NotifBookingRequest,
		RecipientRole: models.RoleAgent,
		RecipientID:   service.AgentID,
		BookingID:     booking.ID,
		CreatedAt:     time.Now(),
	})

	return &booking, nil
}

// Respond resolves a pending booking to accepted or rejected. Only the booked
// agent or an admin may respond, and only while the booking is still pending.
func (s *DefaultBookingService) Respond(ctx context.Context, bookingID, status string, actor models.AuthContext) (*models.Booking, error) {
	if status != models.BookingAccepted && status != models.BookingRejected {
		return nil, utils.InvalidArgument("status must be accepted or rejected")
	}

	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if booking == nil {
		return nil, utils.NotFound("booking")
	}
	if booking.Status != models.BookingPending {
		return nil, utils.Conflict("Already " + booking.Status)
	}
	if !actor.IsAdmin() && actor.AgentID != booking.AgentID {
		return nil, utils.Forbidden("only the booked agent or an admin can respond")
	}

	if err := s.Repo.SetStatus(ctx, booking.ID, status); err != nil {
		return nil, utils.Internal(err)
	}
	booking.Status = status

	s.notify(ctx, models.Notification{
		ID:             uuid.New().String(),
		Title:          "Booking " + status,
		Message:        fmt.Sprintf("Your booking on %s was %s", booking.Date, status),
		Type:           models.NotifBookingUpdate,
		RecipientRole:  models.RoleUser,
		RecipientPhone: booking.Phone,
		BookingID:      booking.ID,
		CreatedAt:      time.Now(),
	})

	return booking, nil
}

// UpdateStatus is the privileged status override. It writes any valid status,
// including pending straight to completed. The agent earnings credit fires
// only on the first transition into completed: the conditional update in
// CompleteOnce decides a single winner, so repeated completion writes and
// concurrent completion requests never double-credit.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID, status string, actor models.AuthContext) (*models.Booking, error) {
	switch status {
	case models.BookingPending, models.BookingAccepted, models.BookingRejected, models.BookingCompleted:
	default:
		return nil, utils.InvalidArgument("unknown booking status: " + status)
	}
	if !actor.IsAdmin() {
		return nil, utils.Forbidden("only admins can override booking status")
	}

	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if booking == nil {
		return nil, utils.NotFound("booking")
	}

	if status != models.BookingCompleted {
		if err := s.Repo.SetStatus(ctx, booking.ID, status); err != nil {
			return nil, utils.Internal(err)
		}
		booking.Status = status
		return booking, nil
	}

	completed, changed, err := s.Repo.CompleteOnce(ctx, bookingID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if !changed {
		// Already completed; the credit fired on the transition that won.
		return booking, nil
	}
	if err := s.Agents.IncrementEarnings(ctx, completed.AgentID, completed.AgentEarning); err != nil {
		return nil, utils.Internal(err)
	}
	return completed, nil
}

// Pay flips the payment flag. Payment is independent of booking status.
func (s *DefaultBookingService) Pay(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if booking == nil {
		return nil, utils.NotFound("booking")
	}

	if err := s.Repo.SetPaymentStatus(ctx, booking.ID, models.PaymentPaid); err != nil {
		return nil, utils.Internal(err)
	}
	booking.PaymentStatus = models.PaymentPaid
	return booking, nil
}

// List returns bookings filtered by phone and/or agent, populated with their
// referenced service and agent records.
func (s *DefaultBookingService) List(ctx context.Context, phone, agentID string) ([]models.BookingDetail, error) {
	bookings, err := s.Repo.List(ctx, phone, agentID)
	if err != nil {
		return nil, utils.Internal(err)
	}

	services := map[string]*models.Service{}
	agents := map[string]*models.Agent{}
	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		detail := models.BookingDetail{Booking: b}
		if svc, ok := services[b.ServiceID]; ok {
			detail.Service = svc
		} else if svc, err := s.Services.GetByID(ctx, b.ServiceID); err == nil {
			services[b.ServiceID] = svc
			detail.Service = svc
		}
		if ag, ok := agents[b.AgentID]; ok {
			detail.Agent = ag
		} else if ag, err := s.Agents.GetByID(ctx, b.AgentID); err == nil {
			agents[b.AgentID] = ag
			detail.Agent = ag
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if booking == nil {
		return nil, utils.NotFound("booking")
	}
	return booking, nil
}

// notify hands the record to the dispatcher without letting a delivery
// failure affect the booking write that already happened.
func (s *DefaultBookingService) notify(ctx context.Context, n models.Notification) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Dispatch(ctx, n); err != nil {
		utils.GetLogger().Warn("notification dispatch failed",
			zap.String("bookingId", n.BookingID),
			zap.String("type", n.Type),
			zap.Error(err),
		)
	}
}
