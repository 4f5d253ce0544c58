package usecase

import (
	"context"
	"errors"
	"fmt"
	"schichtplan-backend/internal/notify"
	"schichtplan-backend/internal/repository"
	"time"

	"go.uber.org/zap"
)

// ErrNoRecipients is returned when NOTIFY_TO is empty.
var ErrNoRecipients = errors.New("no notification recipients configured")

// NotificationUsecase mails the over-staffing digest to planners.
type NotificationUsecase struct {
	staffing   *StaffingUsecase
	shifts     repository.ShiftRepository
	mailer     notify.Mailer
	recipients []string
	log        *zap.Logger
}

func NewNotificationUsecase(staffing *StaffingUsecase, shifts repository.ShiftRepository, mailer notify.Mailer, recipients []string, log *zap.Logger) *NotificationUsecase {
	return &NotificationUsecase{staffing: staffing, shifts: shifts, mailer: mailer, recipients: recipients, log: log}
}

// SendOverstaffingDigest returns the number of over-staffed cells reported.
func (u *NotificationUsecase) SendOverstaffingDigest(ctx context.Context, from, to time.Time, groupID *uint) (int, error) {
	if len(u.recipients) == 0 {
		return 0, ErrNoRecipients
	}
	matrix, err := u.staffing.Matrix(ctx, from, to, groupID)
	if err != nil {
		return 0, err
	}

	names := make(map[uint]string)
	shifts, err := u.shifts.GetAll()
	if err != nil {
		return 0, fmt.Errorf("loading shift types: %w", err)
	}
	for _, s := range shifts {
		names[s.ID] = s.Name
	}

	subject, body := notify.OverstaffingDigest(matrix.From, matrix.To, matrix.OverStaffed, names)
	if err := u.mailer.Send(u.recipients, subject, body); err != nil {
		return 0, fmt.Errorf("sending digest: %w", err)
	}
	u.log.Info("over-staffing digest sent",
		zap.String("from", matrix.From),
		zap.String("to", matrix.To),
		zap.Int("cells", len(matrix.OverStaffed)))
	return len(matrix.OverStaffed), nil
}
