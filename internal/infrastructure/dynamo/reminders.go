package dynamo

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hanamurayama/timelytogether-web-portal/internal/domain"
)

// ReminderRepo provides typed DynamoDB operations for the reminders table.
type ReminderRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewReminderRepo(client *dynamodb.Client, tableName string) *ReminderRepo {
	return &ReminderRepo{client: client, tableName: tableName}
}

func (r *ReminderRepo) Put(ctx context.Context, rm *domain.Reminder) error {
	item, err := attributevalue.MarshalMap(rm)
	if err != nil {
		return fmt.Errorf("marshal reminder: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ReminderRepo) Get(ctx context.Context, reminderID string) (*domain.Reminder, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("reminder_id", reminderID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("reminder not found: %w", domain.ErrNotFound)
	}
	var rm domain.Reminder
	if err := attributevalue.UnmarshalMap(out.Item, &rm); err != nil {
		return nil, err
	}
	return &rm, nil
}

// Scan returns all reminders ordered by creation time descending. The table
// is small (one household's reminders), so a full scan per listing is fine.
func (r *ReminderRepo) Scan(ctx context.Context) ([]domain.Reminder, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var reminders []domain.Reminder
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &reminders); err != nil {
		return nil, err
	}
	sort.Slice(reminders, func(i, j int) bool {
		if !reminders[i].CreatedAt.Equal(reminders[j].CreatedAt) {
			return reminders[i].CreatedAt.After(reminders[j].CreatedAt)
		}
		return reminders[i].ReminderID > reminders[j].ReminderID
	})
	return reminders, nil
}

// HardDelete permanently removes a reminder item and reports whether it
// existed. ReturnValues ALL_OLD makes the existence check a single round trip.
func (r *ReminderRepo) HardDelete(ctx context.Context, reminderID string) (bool, error) {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          strKey("reminder_id", reminderID),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}
