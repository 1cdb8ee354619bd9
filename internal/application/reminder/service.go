package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hanamurayama/timelytogether-web-portal/internal/domain"
	"github.com/hanamurayama/timelytogether-web-portal/internal/infrastructure/smtp"
	"github.com/hanamurayama/timelytogether-web-portal/internal/infrastructure/sns"
	"github.com/hanamurayama/timelytogether-web-portal/internal/pkg/id"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateReminderRequest) (*domain.Reminder, error)
	List(ctx context.Context) ([]domain.Reminder, error)
	Get(ctx context.Context, reminderID string) (*domain.Reminder, error)
	Delete(ctx context.Context, reminderID string) error // hard delete
	Complete(ctx context.Context, reminderID string) (*domain.Reminder, error)
}

type reminderStore interface {
	Put(ctx context.Context, rm *domain.Reminder) error
	Get(ctx context.Context, reminderID string) (*domain.Reminder, error)
	Scan(ctx context.Context) ([]domain.Reminder, error)
	HardDelete(ctx context.Context, reminderID string) (bool, error)
}

// ServiceDeps bundles the collaborators the reminder service needs. Mailer
// and SMSSender may be nil; completion alerts degrade to a log line.
type ServiceDeps struct {
	Repo            reminderStore
	Mailer          smtp.Mailer
	SMSSender       sns.SMSSender
	DefaultEmail    string
	FamilySMSNumber string
}

type service struct {
	repo      reminderStore
	mailer    smtp.Mailer
	sms       sns.SMSSender
	defaultTo string
	familySMS string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:      deps.Repo,
		mailer:    deps.Mailer,
		sms:       deps.SMSSender,
		defaultTo: deps.DefaultEmail,
		familySMS: deps.FamilySMSNumber,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateReminderRequest) (*domain.Reminder, error) {
	rm := &domain.Reminder{
		ReminderID:              id.New(),
		Title:                   input.Title,
		Message:                 input.Message,
		Date:                    input.Date,
		Time:                    input.Time,
		Recurrence:              input.Recurrence,
		CompletionAlerts:        input.CompletionAlerts,
		CustomNotificationEmail: input.CustomNotificationEmail,
		CreatedAt:               time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) List(ctx context.Context) ([]domain.Reminder, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Get(ctx context.Context, reminderID string) (*domain.Reminder, error) {
	return s.repo.Get(ctx, reminderID)
}

func (s *service) Delete(ctx context.Context, reminderID string) error {
	existed, err := s.repo.HardDelete(ctx, reminderID)
	if err != nil {
		return err
	}
	if !existed {
		return fmt.Errorf("reminder not found: %w", domain.ErrNotFound)
	}
	return nil
}

// Complete removes the reminder (completion has no stored state of its own)
// and, when the record asked for alerts, notifies the family best-effort.
// Notification failure never fails or blocks the completion.
func (s *service) Complete(ctx context.Context, reminderID string) (*domain.Reminder, error) {
	rm, err := s.repo.Get(ctx, reminderID)
	if err != nil {
		return nil, err
	}
	if err := s.Delete(ctx, reminderID); err != nil {
		return nil, err
	}
	if rm.CompletionAlerts {
		go s.notifyCompletion(*rm)
	}
	return rm, nil
}

func (s *service) notifyCompletion(rm domain.Reminder) {
	subject := fmt.Sprintf("Reminder completed: %s", rm.Title)
	body := fmt.Sprintf("%q was marked complete.\n\nScheduled for %s at %s.\nMessage: %s\n",
		rm.Title, rm.Date, rm.Time, rm.Message)

	to := s.defaultTo
	if rm.CustomNotificationEmail != nil && *rm.CustomNotificationEmail != "" {
		to = *rm.CustomNotificationEmail
	}
	if s.mailer != nil && to != "" {
		if err := s.mailer.SendEmail(to, subject, body); err != nil {
			log.Printf("completion alert email to %s failed: %v", to, err)
		}
	}

	if s.sms != nil && s.familySMS != "" {
		if err := s.sms.SendSMS(context.Background(), s.familySMS, subject); err != nil {
			log.Printf("completion alert SMS to %s failed: %v", s.familySMS, err)
		}
	}
}
