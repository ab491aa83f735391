package dto

import (
	"time"

	"github.com/grancoffee/helpdesk-service/internal/domain"
)

// CreateRecordRequest payload for ticket submission.
type CreateRecordRequest struct {
	Description  string                `json:"description" validate:"required"`
	Type         string                `json:"type"`
	Priority     domain.RecordPriority `json:"priority"`
	Impact       string                `json:"impact"`
	RequestedFor string                `json:"requested_for"`
}

// TreatmentRequest is a pending treatment on a draft or treatment append.
type TreatmentRequest struct {
	Content  string `json:"content" validate:"required"`
	IsPublic bool   `json:"is_public"`
}

// RecordDraftRequest carries the edit buffer for save/finalize/cancel and
// for direct field edits.
type RecordDraftRequest struct {
	Status             *domain.RecordStatus   `json:"status"`
	Priority           *domain.RecordPriority `json:"priority"`
	Impact             *string                `json:"impact"`
	Type               *string                `json:"type"`
	Description        *string                `json:"description"`
	WorkNotes          *string                `json:"work_notes"`
	AdditionalComments *string                `json:"additional_comments"`
	Conclusion         *string                `json:"conclusion"`
	ParentIncident     *string                `json:"parent_incident"`
	TimerSeconds       *int                   `json:"timer_seconds" validate:"omitempty,gte=0"`
	Treatments         []TreatmentRequest     `json:"treatments" validate:"dive"`
}

// RecordSummary is the listing shape.
type RecordSummary struct {
	ID           string                `json:"id"`
	Number       string                `json:"number"`
	RequestedFor string                `json:"requested_for"`
	Status       domain.RecordStatus   `json:"status"`
	Priority     domain.RecordPriority `json:"priority"`
	Type         string                `json:"type"`
	Impact       string                `json:"impact"`
	AssignedTo   string                `json:"assigned_to"`
	CreatedAt    time.Time             `json:"created_at"`
	LastUpdated  time.Time             `json:"last_updated"`
}

// TreatmentResponse represents one appended note.
type TreatmentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsPublic  bool      `json:"is_public"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// RecordDetailResponse provides full record info.
type RecordDetailResponse struct {
	ID                 string                `json:"id"`
	Number             string                `json:"number"`
	RequestedFor       string                `json:"requested_for"`
	OpenedBy           string                `json:"opened_by"`
	Status             domain.RecordStatus   `json:"status"`
	Priority           domain.RecordPriority `json:"priority"`
	Impact             string                `json:"impact"`
	Type               string                `json:"type"`
	AssignedGroup      string                `json:"assigned_group"`
	AssignedTo         string                `json:"assigned_to"`
	Description        string                `json:"description"`
	WorkNotes          string                `json:"work_notes"`
	AdditionalComments string                `json:"additional_comments"`
	Conclusion         string                `json:"conclusion"`
	ParentIncident     string                `json:"parent_incident,omitempty"`
	Treatments         []TreatmentResponse   `json:"treatments"`
	TimerMinutes       int                   `json:"timer_minutes"`
	CreatedAt          time.Time             `json:"created_at"`
	LastUpdated        time.Time             `json:"last_updated"`
}
