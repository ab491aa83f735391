package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grancoffee/helpdesk-service/internal/domain"
	"github.com/grancoffee/helpdesk-service/internal/events"
	"github.com/grancoffee/helpdesk-service/internal/repository"
	apperrors "github.com/grancoffee/helpdesk-service/pkg/util"
)

// RecordService coordinates the lifecycle of one record kind. Incidents and
// projects each get their own instance over the shared implementation.
type RecordService struct {
	kind       domain.RecordKind
	records    repository.RecordRepository
	dispatcher events.Dispatcher
}

// RecordDependencies bundles collaborators for the record service.
type RecordDependencies struct {
	RecordRepo repository.RecordRepository
	Dispatcher events.Dispatcher
}

// NewRecordService constructs the service for a record kind.
func NewRecordService(kind domain.RecordKind, deps RecordDependencies) *RecordService {
	return &RecordService{
		kind:       kind,
		records:    deps.RecordRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Kind returns the configured record kind.
func (s *RecordService) Kind() domain.RecordKind {
	return s.kind
}

// RecordCreateInput describes a ticket submission.
type RecordCreateInput struct {
	RequestedFor string
	Description  string
	Type         string
	Priority     domain.RecordPriority
	Impact       string
}

// TreatmentInput is a pending treatment note on an edit draft.
type TreatmentInput struct {
	Content  string
	IsPublic bool
}

// EditDraft carries the transient edit state persisted on save, finalize and
// cancel. Nil fields leave the record untouched; TimerSeconds is the
// client's accumulated stopwatch, stored as whole minutes.
type EditDraft struct {
	Status             *domain.RecordStatus
	Priority           *domain.RecordPriority
	Impact             *string
	Type               *string
	Description        *string
	WorkNotes          *string
	AdditionalComments *string
	Conclusion         *string
	ParentIncident     *string
	TimerSeconds       *int
	Treatments         []TreatmentInput
}

// ListOptions captures tab context, filters and ordering for listings.
type ListOptions struct {
	Tab        string
	Status     string
	AssignedTo string
	Priority   string
	Period     string
	SortBy     string
	SortOrder  string
}

// Tab contexts for listings.
const (
	TabMine  = "mine"
	TabQueue = "queue"
	TabAll   = "all"
)

// Relative period filters over LastUpdated.
const (
	PeriodLastWeek  = "Última Semana"
	PeriodLastMonth = "Último Mês"
	PeriodLastYear  = "Último Ano"
)

// Create registers a new record with the submission defaults.
func (s *RecordService) Create(ctx context.Context, actor *domain.Identity, input RecordCreateInput) (*domain.CaseRecord, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}

	requestedFor := strings.TrimSpace(input.RequestedFor)
	if requestedFor == "" {
		requestedFor = actor.Name
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedia
	} else if priority.Rank() == 0 {
		return nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": priority})
	}

	impact := strings.TrimSpace(input.Impact)
	if impact == "" {
		impact = "Médio"
	}

	recordType := strings.TrimSpace(input.Type)
	if recordType == "" {
		recordType = s.kind.DefaultType
	}

	now := time.Now()
	record := &domain.CaseRecord{
		ID:            uuid.NewString(),
		Number:        generateRecordNumber(s.kind.NumberPrefix),
		RequestedFor:  requestedFor,
		OpenedBy:      actor.Name,
		Status:        domain.StatusPendente,
		Priority:      priority,
		Impact:        impact,
		Type:          recordType,
		AssignedGroup: s.kind.DefaultGroup,
		AssignedTo:    domain.Unassigned,
		Description:   description,
		CreatedAt:     now,
		LastUpdated:   now,
	}

	if err := s.records.Add(ctx, record); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventRecordCreated,
		RecordID: record.ID,
		Actor:    actor.Name,
		Payload: events.RecordCreatedPayload{
			Number:       record.Number,
			Priority:     record.Priority,
			RequestedFor: record.RequestedFor,
		},
	})
	return record, nil
}

// Get fetches one record by id.
func (s *RecordService) Get(ctx context.Context, id string) (*domain.CaseRecord, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(err, id)
	}
	return record, nil
}

// List returns an ordered, filtered view for the actor's tab context. The
// assignee filter only applies in the "all" view; "mine" means assigned
// records for elevated roles and requested/opened records for collaborators.
func (s *RecordService) List(ctx context.Context, actor *domain.Identity, opts ListOptions) ([]domain.CaseRecord, error) {
	filter := repository.RecordFilter{}

	switch opts.Tab {
	case TabMine:
		name := actor.Name
		if actor.Role.Elevated() {
			filter.AssignedTo = &name
		} else {
			filter.InvolvedUser = &name
		}
	case TabQueue:
		filter.QueueOnly = true
	case TabAll, "":
		if opts.AssignedTo != "" {
			assignee := opts.AssignedTo
			filter.AssignedTo = &assignee
		}
	default:
		return nil, apperrors.NewValidationError("unknown tab", map[string]any{"tab": opts.Tab})
	}

	if opts.Status != "" {
		status := domain.RecordStatus(opts.Status)
		filter.Status = &status
	}
	if opts.Priority != "" {
		priority := domain.RecordPriority(opts.Priority)
		filter.Priority = &priority
	}
	if cutoff := periodCutoff(opts.Period, time.Now()); cutoff != nil {
		filter.UpdatedSince = cutoff
	}

	filter.SortBy = repository.SortByPriority
	if opts.SortBy == "date" {
		filter.SortBy = repository.SortByDate
	}
	filter.SortOrder = repository.SortDesc
	if opts.SortOrder == "asc" {
		filter.SortOrder = repository.SortAsc
	}

	return s.records.List(ctx, filter)
}

// Claim assigns the record to the actor and moves it to the kind's active
// status. The transition is deliberately unguarded: claiming an already
// assigned record silently reassigns it.
func (s *RecordService) Claim(ctx context.Context, actor *domain.Identity, id string) (*domain.CaseRecord, error) {
	previous, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(err, id)
	}

	assignee := actor.Name
	status := s.kind.ActiveStatus
	updated, err := s.records.Update(ctx, id, repository.RecordUpdate{
		AssignedTo: &assignee,
		Status:     &status,
	})
	if err != nil {
		return nil, s.mapStoreError(err, id)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventRecordClaimed,
		RecordID: id,
		Actor:    actor.Name,
		Payload: events.RecordClaimedPayload{
			AssignedTo:       assignee,
			PreviousAssignee: previous.AssignedTo,
		},
	})
	return updated, nil
}

// Save persists an edit draft without forcing a status.
func (s *RecordService) Save(ctx context.Context, actor *domain.Identity, id string, draft EditDraft) (*domain.CaseRecord, error) {
	return s.persistDraft(ctx, actor, id, draft)
}

// Finalize persists the draft and force-sets the terminal Finalizado status.
func (s *RecordService) Finalize(ctx context.Context, actor *domain.Identity, id string, draft EditDraft) (*domain.CaseRecord, error) {
	status := domain.StatusFinalizado
	draft.Status = &status
	return s.persistDraft(ctx, actor, id, draft)
}

// Cancel persists the draft and force-sets the terminal Cancelado status.
func (s *RecordService) Cancel(ctx context.Context, actor *domain.Identity, id string, draft EditDraft) (*domain.CaseRecord, error) {
	status := domain.StatusCancelado
	draft.Status = &status
	return s.persistDraft(ctx, actor, id, draft)
}

// AddTreatment appends a single treatment note to the record.
func (s *RecordService) AddTreatment(ctx context.Context, actor *domain.Identity, id string, input TreatmentInput) (*domain.CaseRecord, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("treatment content required", nil)
	}
	treatment := domain.Treatment{
		ID:        uuid.NewString(),
		Content:   content,
		IsPublic:  input.IsPublic,
		Author:    actor.Name,
		Timestamp: time.Now(),
	}
	updated, err := s.records.Update(ctx, id, repository.RecordUpdate{Treatments: []domain.Treatment{treatment}})
	if err != nil {
		return nil, s.mapStoreError(err, id)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventRecordTreatmentAdded,
		RecordID: id,
		Actor:    actor.Name,
		Payload: events.RecordTreatmentAddedPayload{
			TreatmentID: treatment.ID,
			IsPublic:    treatment.IsPublic,
		},
	})
	return updated, nil
}

func (s *RecordService) persistDraft(ctx context.Context, actor *domain.Identity, id string, draft EditDraft) (*domain.CaseRecord, error) {
	previous, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(err, id)
	}

	update, treatments, err := s.draftToUpdate(actor, draft)
	if err != nil {
		return nil, err
	}

	updated, err := s.records.Update(ctx, id, update)
	if err != nil {
		return nil, s.mapStoreError(err, id)
	}

	if draft.Status != nil && *draft.Status != previous.Status {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventRecordStatusChanged,
			RecordID: id,
			Actor:    actor.Name,
			Payload: events.RecordStatusChangedPayload{
				OldStatus: previous.Status,
				NewStatus: *draft.Status,
			},
		})
	}
	for _, treatment := range treatments {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventRecordTreatmentAdded,
			RecordID: id,
			Actor:    actor.Name,
			Payload: events.RecordTreatmentAddedPayload{
				TreatmentID: treatment.ID,
				IsPublic:    treatment.IsPublic,
			},
		})
	}
	return updated, nil
}

func (s *RecordService) draftToUpdate(actor *domain.Identity, draft EditDraft) (repository.RecordUpdate, []domain.Treatment, error) {
	if draft.Status != nil && !s.kind.ValidStatus(*draft.Status) {
		return repository.RecordUpdate{}, nil, apperrors.NewValidationError("unknown status", map[string]any{"status": *draft.Status})
	}
	if draft.Priority != nil && draft.Priority.Rank() == 0 {
		return repository.RecordUpdate{}, nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": *draft.Priority})
	}
	if draft.TimerSeconds != nil && *draft.TimerSeconds < 0 {
		return repository.RecordUpdate{}, nil, apperrors.NewValidationError("timer cannot be negative", nil)
	}

	update := repository.RecordUpdate{
		Status:             draft.Status,
		Priority:           draft.Priority,
		Impact:             draft.Impact,
		Type:               draft.Type,
		Description:        draft.Description,
		WorkNotes:          draft.WorkNotes,
		AdditionalComments: draft.AdditionalComments,
		Conclusion:         draft.Conclusion,
		ParentIncident:     draft.ParentIncident,
	}
	if draft.TimerSeconds != nil {
		minutes := *draft.TimerSeconds / 60
		update.TimerMinutes = &minutes
	}

	now := time.Now()
	treatments := make([]domain.Treatment, 0, len(draft.Treatments))
	for _, input := range draft.Treatments {
		content := strings.TrimSpace(input.Content)
		if content == "" {
			continue
		}
		treatments = append(treatments, domain.Treatment{
			ID:        uuid.NewString(),
			Content:   content,
			IsPublic:  input.IsPublic,
			Author:    actor.Name,
			Timestamp: now,
		})
	}
	update.Treatments = treatments
	return update, treatments, nil
}

func (s *RecordService) mapStoreError(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(s.kind.Name, map[string]any{"id": id})
	}
	return err
}

func (s *RecordService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Kind == "" {
		event.Kind = s.kind.Name
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func periodCutoff(period string, now time.Time) *time.Time {
	var cutoff time.Time
	switch period {
	case PeriodLastWeek:
		cutoff = now.AddDate(0, 0, -7)
	case PeriodLastMonth:
		cutoff = now.AddDate(0, -1, 0)
	case PeriodLastYear:
		cutoff = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &cutoff
}

func generateRecordNumber(prefix string) string {
	return fmt.Sprintf("%s%06d", prefix, time.Now().UnixMilli()%1000000)
}
