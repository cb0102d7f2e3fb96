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

// NoticeRepo provides typed DynamoDB operations for the notices table.
type NoticeRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNoticeRepo(client *dynamodb.Client, tableName string) *NoticeRepo {
	return &NoticeRepo{client: client, tableName: tableName}
}

func (r *NoticeRepo) Put(ctx context.Context, n *domain.Notice) error {
	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return fmt.Errorf("marshal notice: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *NoticeRepo) Get(ctx context.Context, noticeID string) (*domain.Notice, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("notice_id", noticeID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("notice not found: %w", domain.ErrNotFound)
	}
	var n domain.Notice
	if err := attributevalue.UnmarshalMap(out.Item, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByProject queries the project_id-created_at GSI, newest first.
func (r *NoticeRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Notice, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("project_id-created_at-index"),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var notices []domain.Notice
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

// MarkSent stamps sent_at and the recipient address on a delivered notice.
func (r *NoticeRepo) MarkSent(ctx context.Context, noticeID, sentTo string, sentAt time.Time) error {
	return r.update(ctx, noticeID, map[string]interface{}{
		fieldSentAt: sentAt.UTC().Format(time.RFC3339),
		fieldSentTo: sentTo,
	})
}

func (r *NoticeRepo) update(ctx context.Context, noticeID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("notice_id", noticeID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}
