package events

import (
	"time"

	"github.com/grancoffee/helpdesk-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRecordCreated        EventType = "record_created"
	EventRecordClaimed        EventType = "record_claimed"
	EventRecordStatusChanged  EventType = "record_status_changed"
	EventRecordTreatmentAdded EventType = "record_treatment_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Kind      string      `json:"kind"`
	RecordID  string      `json:"record_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RecordCreatedPayload payload.
type RecordCreatedPayload struct {
	Number       string                `json:"number"`
	Priority     domain.RecordPriority `json:"priority"`
	RequestedFor string                `json:"requested_for"`
}

// RecordClaimedPayload payload.
type RecordClaimedPayload struct {
	AssignedTo       string `json:"assigned_to"`
	PreviousAssignee string `json:"previous_assignee"`
}

// RecordStatusChangedPayload payload.
type RecordStatusChangedPayload struct {
	OldStatus domain.RecordStatus `json:"old_status"`
	NewStatus domain.RecordStatus `json:"new_status"`
}

// RecordTreatmentAddedPayload payload.
type RecordTreatmentAddedPayload struct {
	TreatmentID string `json:"treatment_id"`
	IsPublic    bool   `json:"is_public"`
}
