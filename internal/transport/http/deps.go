package http

import (
	"context"

	"github.com/hanamurayama/timelytogether-web-portal/internal/domain"
	"github.com/hanamurayama/timelytogether-web-portal/internal/infrastructure/smtp"
	"github.com/hanamurayama/timelytogether-web-portal/internal/infrastructure/sns"
	"github.com/hanamurayama/timelytogether-web-portal/internal/schedule"
)

// ReminderRepository is the minimal interface the router requires from a
// reminder store. Both the in-memory and the DynamoDB backends satisfy it.
type ReminderRepository interface {
	Put(ctx context.Context, rm *domain.Reminder) error
	Get(ctx context.Context, reminderID string) (*domain.Reminder, error)
	Scan(ctx context.Context) ([]domain.Reminder, error)
	HardDelete(ctx context.Context, reminderID string) (bool, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ReminderRepo    ReminderRepository
	Resolver        *schedule.Resolver
	Mailer          smtp.Mailer
	SMSSender       sns.SMSSender
	DefaultEmail    string
	FamilySMSNumber string
}
