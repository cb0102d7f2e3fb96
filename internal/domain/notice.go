package domain

import "time"

// Notice is a drafted preliminary notice. Content is a frozen text snapshot:
// once persisted it carries no reference to the template or placeholder values
// it was merged from.
type Notice struct {
	NoticeID        string     `json:"id" dynamodbav:"notice_id"`
	ProjectID       string     `json:"project_id" dynamodbav:"project_id"`
	CreatedByUserID string     `json:"created_by_user_id" dynamodbav:"created_by_user_id"`
	State           string     `json:"state" dynamodbav:"state"`
	TemplateSlug    string     `json:"template_slug" dynamodbav:"template_slug"`
	Content         string     `json:"content" dynamodbav:"content"`
	ArchiveKey      string     `json:"archive_key,omitempty" dynamodbav:"archive_key"`
	SentAt          *time.Time `json:"sent_at,omitempty" dynamodbav:"sent_at"`
	SentTo          string     `json:"sent_to,omitempty" dynamodbav:"sent_to"`
	CreatedAt       time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt       time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type DraftNoticeRequest struct {
	ProjectID    string            `json:"project_id" validate:"required"`
	Placeholders map[string]string `json:"placeholders"`
}

type SendNoticeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
