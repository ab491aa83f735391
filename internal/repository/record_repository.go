package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/grancoffee/helpdesk-service/internal/domain"
)

// ErrNotFound is returned when a record id has no match in the store.
var ErrNotFound = errors.New("record not found")

// SortKey selects the ordering applied to listings.
type SortKey string

const (
	SortByPriority SortKey = "priority"
	SortByDate     SortKey = "date"
)

// SortOrder selects the ordering direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// RecordFilter describes a conjunctive listing query. Nil fields are
// unconstrained. InvolvedUser matches either RequestedFor or OpenedBy.
type RecordFilter struct {
	Status       *domain.RecordStatus
	Priority     *domain.RecordPriority
	AssignedTo   *string
	InvolvedUser *string
	QueueOnly    bool
	UpdatedSince *time.Time
	SortBy       SortKey
	SortOrder    SortOrder
}

// RecordUpdate is a partial update. Nil fields leave the stored value
// untouched; Treatments are appended, never replaced.
type RecordUpdate struct {
	Status             *domain.RecordStatus
	Priority           *domain.RecordPriority
	Impact             *string
	Type               *string
	AssignedGroup      *string
	AssignedTo         *string
	Description        *string
	WorkNotes          *string
	AdditionalComments *string
	Conclusion         *string
	ParentIncident     *string
	TimerMinutes       *int
	Treatments         []domain.Treatment
}

// RecordRepository defines store access for one record kind.
type RecordRepository interface {
	Add(ctx context.Context, record *domain.CaseRecord) error
	Update(ctx context.Context, id string, update RecordUpdate) (*domain.CaseRecord, error)
	GetByID(ctx context.Context, id string) (*domain.CaseRecord, error)
	List(ctx context.Context, filter RecordFilter) ([]domain.CaseRecord, error)
}

type memoryRecordRepository struct {
	mu      sync.RWMutex
	records []domain.CaseRecord
	index   map[string]int
	now     func() time.Time
}

// NewMemoryRecordRepository returns an in-memory implementation seeded with
// the given records. Insertion order is preserved and used as the stable
// tie-break for sorted listings.
func NewMemoryRecordRepository(seed []domain.CaseRecord) RecordRepository {
	repo := &memoryRecordRepository{
		records: make([]domain.CaseRecord, 0, len(seed)),
		index:   make(map[string]int, len(seed)),
		now:     time.Now,
	}
	for i := range seed {
		repo.index[seed[i].ID] = len(repo.records)
		repo.records = append(repo.records, cloneRecord(seed[i]))
	}
	return repo
}

func (r *memoryRecordRepository) Add(ctx context.Context, record *domain.CaseRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index[record.ID] = len(r.records)
	r.records = append(r.records, cloneRecord(*record))
	return nil
}

func (r *memoryRecordRepository) Update(ctx context.Context, id string, update RecordUpdate) (*domain.CaseRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	record := &r.records[pos]
	applyUpdate(record, update)
	record.LastUpdated = r.now()

	out := cloneRecord(*record)
	return &out, nil
}

func (r *memoryRecordRepository) GetByID(ctx context.Context, id string) (*domain.CaseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneRecord(r.records[pos])
	return &out, nil
}

func (r *memoryRecordRepository) List(ctx context.Context, filter RecordFilter) ([]domain.CaseRecord, error) {
	r.mu.RLock()
	snapshot := make([]domain.CaseRecord, 0, len(r.records))
	for i := range r.records {
		if matchesFilter(&r.records[i], filter) {
			snapshot = append(snapshot, cloneRecord(r.records[i]))
		}
	}
	r.mu.RUnlock()

	sortRecords(snapshot, filter.SortBy, filter.SortOrder)
	return snapshot, nil
}

func matchesFilter(record *domain.CaseRecord, filter RecordFilter) bool {
	if filter.QueueOnly && !record.QueueEligible() {
		return false
	}
	if filter.Status != nil && record.Status != *filter.Status {
		return false
	}
	if filter.Priority != nil && record.Priority != *filter.Priority {
		return false
	}
	if filter.AssignedTo != nil && record.AssignedTo != *filter.AssignedTo {
		return false
	}
	if filter.InvolvedUser != nil &&
		record.RequestedFor != *filter.InvolvedUser && record.OpenedBy != *filter.InvolvedUser {
		return false
	}
	if filter.UpdatedSince != nil && record.LastUpdated.Before(*filter.UpdatedSince) {
		return false
	}
	return true
}

func sortRecords(records []domain.CaseRecord, key SortKey, order SortOrder) {
	if key == "" {
		return
	}
	less := func(a, b *domain.CaseRecord) bool {
		if key == SortByPriority {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return a.LastUpdated.Before(b.LastUpdated)
	}
	sort.SliceStable(records, func(i, j int) bool {
		if order == SortDesc {
			return less(&records[j], &records[i])
		}
		return less(&records[i], &records[j])
	})
}

func applyUpdate(record *domain.CaseRecord, update RecordUpdate) {
	if update.Status != nil {
		record.Status = *update.Status
	}
	if update.Priority != nil {
		record.Priority = *update.Priority
	}
	if update.Impact != nil {
		record.Impact = *update.Impact
	}
	if update.Type != nil {
		record.Type = *update.Type
	}
	if update.AssignedGroup != nil {
		record.AssignedGroup = *update.AssignedGroup
	}
	if update.AssignedTo != nil {
		record.AssignedTo = *update.AssignedTo
	}
	if update.Description != nil {
		record.Description = *update.Description
	}
	if update.WorkNotes != nil {
		record.WorkNotes = *update.WorkNotes
	}
	if update.AdditionalComments != nil {
		record.AdditionalComments = *update.AdditionalComments
	}
	if update.Conclusion != nil {
		record.Conclusion = *update.Conclusion
	}
	if update.ParentIncident != nil {
		record.ParentIncident = *update.ParentIncident
	}
	if update.TimerMinutes != nil && *update.TimerMinutes > record.TimerMinutes {
		record.TimerMinutes = *update.TimerMinutes
	}
	if len(update.Treatments) > 0 {
		record.Treatments = append(record.Treatments, update.Treatments...)
	}
}

func cloneRecord(record domain.CaseRecord) domain.CaseRecord {
	out := record
	if len(record.Treatments) > 0 {
		out.Treatments = append([]domain.Treatment(nil), record.Treatments...)
	}
	return out
}
