package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/prelimpro/go-api/internal/domain"
)

// ReminderRepo provides typed DynamoDB operations for the reminders table.
type ReminderRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewReminderRepo(client *dynamodb.Client, tableName string) *ReminderRepo {
	return &ReminderRepo{client: client, tableName: tableName}
}

func (r *ReminderRepo) Put(ctx context.Context, rem *domain.Reminder) error {
	item, err := attributevalue.MarshalMap(rem)
	if err != nil {
		return fmt.Errorf("marshal reminder: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByProject queries the project_id GSI.
func (r *ReminderRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Reminder, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("project_id-index"),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}
	var reminders []domain.Reminder
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListDue queries the status-remind_at GSI for pending reminders whose
// remind_at is at or before now.
func (r *ReminderRepo) ListDue(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("status-remind_at-index"),
		KeyConditionExpression: aws.String("#s = :pending AND remind_at <= :now"),
		ExpressionAttributeNames: map[string]string{
			"#s": fieldStatus,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: domain.ReminderPending},
			":now":     &types.AttributeValueMemberS{Value: now.UTC().Format(time.RFC3339)},
		},
	})
	if err != nil {
		return nil, err
	}
	var reminders []domain.Reminder
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// MarkSent flips a reminder to sent and stamps sent_at.
func (r *ReminderRepo) MarkSent(ctx context.Context, reminderID string, sentAt time.Time) error {
	ue, err := buildUpdateExpr(map[string]interface{}{
		fieldStatus: domain.ReminderSent,
		fieldSentAt: sentAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("reminder_id", reminderID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}
