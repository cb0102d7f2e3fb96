package domain

import "time"

// Project is a construction job a contractor tracks notices and deadlines for.
type Project struct {
	ProjectID    string    `json:"id" dynamodbav:"project_id"`
	OwnerUserID  string    `json:"owner_user_id" dynamodbav:"owner_user_id"`
	Name         string    `json:"name" dynamodbav:"name"`
	Address      string    `json:"address" dynamodbav:"address"`
	State        string    `json:"state" dynamodbav:"state"`
	JobStartDate time.Time `json:"job_start_date" dynamodbav:"job_start_date"`

	PropertyOwnerName    string `json:"property_owner_name" dynamodbav:"property_owner_name"`
	PropertyOwnerAddress string `json:"property_owner_address" dynamodbav:"property_owner_address"`
	GeneralContractor    string `json:"general_contractor" dynamodbav:"general_contractor"`
	Notes                string `json:"notes,omitempty" dynamodbav:"notes"`

	// Deadline fields stamped from the statute table at create/update time.
	NoticeRequired bool       `json:"notice_required" dynamodbav:"notice_required"`
	DeadlineDays   int        `json:"deadline_days" dynamodbav:"deadline_days"`
	NoticeDueDate  *time.Time `json:"notice_due_date,omitempty" dynamodbav:"notice_due_date"`
	DeadlineNote   string     `json:"deadline_note,omitempty" dynamodbav:"deadline_note"`

	Enable    bool       `json:"enable" dynamodbav:"enable"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type CreateProjectRequest struct {
	Name                 string `json:"name" validate:"required"`
	Address              string `json:"address" validate:"required"`
	State                string `json:"state" validate:"required"`
	JobStartDate         string `json:"job_start_date" validate:"required"` // expected format: YYYY-MM-DD
	PropertyOwnerName    string `json:"property_owner_name"`
	PropertyOwnerAddress string `json:"property_owner_address"`
	GeneralContractor    string `json:"general_contractor"`
	Notes                string `json:"notes"`
}

type UpdateProjectRequest struct {
	Name                 *string `json:"name"`
	Address              *string `json:"address"`
	State                *string `json:"state"`
	JobStartDate         *string `json:"job_start_date"` // expected format: YYYY-MM-DD
	PropertyOwnerName    *string `json:"property_owner_name"`
	PropertyOwnerAddress *string `json:"property_owner_address"`
	GeneralContractor    *string `json:"general_contractor"`
	Notes                *string `json:"notes"`
}
