package notification

import (
	"context"
	"fmt"

	"gymcoach/internal/domain"
)

type Service struct {
	repo Repository
	hub  *Hub
}

// NewService wires storage and the optional websocket hub. A nil hub means
// notifications are persisted only.
func NewService(repo Repository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

func (s *Service) Create(ctx context.Context, userID, originUserID int64, t domain.NotificationType, title, message string) error {
	n := &domain.Notification{
		UserID:       userID,
		OriginUserID: originUserID,
		Type:         t,
		Title:        title,
		Message:      message,
		IsRead:       false,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.PushToUser(userID, n)
	}
	return nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	list, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) NotifyCoachRequest(ctx context.Context, coachUserID, clientUserID int64, clientName string) error {
	return s.Create(
		ctx,
		coachUserID,
		clientUserID,
		domain.NotifCoachRequest,
		"New coach request",
		fmt.Sprintf("%s wants you as their coach", clientName),
	)
}

func (s *Service) NotifyRequestDecided(ctx context.Context, clientUserID, coachUserID int64, coachName string, accepted bool) error {
	if accepted {
		return s.Create(
			ctx,
			clientUserID,
			coachUserID,
			domain.NotifCoachAccepted,
			"Coach request accepted",
			fmt.Sprintf("%s accepted your request and is now your coach", coachName),
		)
	}
	return s.Create(
		ctx,
		clientUserID,
		coachUserID,
		domain.NotifCoachRejected,
		"Coach request rejected",
		fmt.Sprintf("%s rejected your coach request", coachName),
	)
}

func (s *Service) NotifyRoutineAssigned(ctx context.Context, clientUserID, coachUserID int64, routineName string) error {
	return s.Create(
		ctx,
		clientUserID,
		coachUserID,
		domain.NotifRoutineAssigned,
		"New routine assigned",
		fmt.Sprintf("Your coach assigned you the routine %q", routineName),
	)
}

func (s *Service) NotifyNewMeasurement(ctx context.Context, coachUserID, clientUserID int64, clientName string) error {
	return s.Create(
		ctx,
		coachUserID,
		clientUserID,
		domain.NotifNewMeasurement,
		"New measurements",
		fmt.Sprintf("%s recorded new body measurements", clientName),
	)
}
