package handlers

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/grancoffee/helpdesk-service/internal/api/dto"
	"github.com/grancoffee/helpdesk-service/internal/auth"
	"github.com/grancoffee/helpdesk-service/internal/domain"
	"github.com/grancoffee/helpdesk-service/internal/service"
	apperrors "github.com/grancoffee/helpdesk-service/pkg/util"
)

// RecordsHandler exposes record endpoints. One instance is mounted per
// record kind (incidents, projects).
type RecordsHandler struct {
	service  *service.RecordService
	validate *validator.Validate
}

// NewRecordsHandler constructs handler.
func NewRecordsHandler(recordService *service.RecordService, validate *validator.Validate) *RecordsHandler {
	return &RecordsHandler{service: recordService, validate: validate}
}

// Create handles POST /{kind}s.
func (h *RecordsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("login required")
	}
	var req dto.CreateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	if h.service.Kind().Name == "project" && req.RequestedFor == "" {
		return apperrors.NewValidationError("requested_for required", nil)
	}

	record, err := h.service.Create(c.Context(), &principal.Identity, service.RecordCreateInput{
		RequestedFor: req.RequestedFor,
		Description:  req.Description,
		Type:         req.Type,
		Priority:     req.Priority,
		Impact:       req.Impact,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": recordDetail(record)})
}

// List handles GET /{kind}s.
func (h *RecordsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("login required")
	}
	records, err := h.service.List(c.Context(), &principal.Identity, service.ListOptions{
		Tab:        c.Query("tab"),
		Status:     c.Query("status"),
		AssignedTo: c.Query("assigned_to"),
		Priority:   c.Query("priority"),
		Period:     c.Query("period"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	})
	if err != nil {
		return err
	}
	items := make([]dto.RecordSummary, 0, len(records))
	for i := range records {
		items = append(items, recordSummary(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /{kind}s/:id.
func (h *RecordsHandler) Get(c *fiber.Ctx) error {
	record, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": recordDetail(record)})
}

// Claim handles POST /{kind}s/:id/claim.
func (h *RecordsHandler) Claim(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("login required")
	}
	record, err := h.service.Claim(c.Context(), &principal.Identity, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": recordDetail(record)})
}

// Update handles PATCH /{kind}s/:id.
func (h *RecordsHandler) Update(c *fiber.Ctx) error {
	return h.persistDraft(c, h.service.Save)
}

// Save handles POST /{kind}s/:id/save.
func (h *RecordsHandler) Save(c *fiber.Ctx) error {
	return h.persistDraft(c, h.service.Save)
}

// Finalize handles POST /{kind}s/:id/finalize.
func (h *RecordsHandler) Finalize(c *fiber.Ctx) error {
	return h.persistDraft(c, h.service.Finalize)
}

// Cancel handles POST /{kind}s/:id/cancel.
func (h *RecordsHandler) Cancel(c *fiber.Ctx) error {
	return h.persistDraft(c, h.service.Cancel)
}

// AddTreatment handles POST /{kind}s/:id/treatments.
func (h *RecordsHandler) AddTreatment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("login required")
	}
	var req dto.TreatmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	record, err := h.service.AddTreatment(c.Context(), &principal.Identity, c.Params("id"), service.TreatmentInput{
		Content:  req.Content,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": recordDetail(record)})
}

func (h *RecordsHandler) persistDraft(c *fiber.Ctx, persist func(ctx context.Context, actor *domain.Identity, id string, draft service.EditDraft) (*domain.CaseRecord, error)) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("login required")
	}
	var req dto.RecordDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	draft := service.EditDraft{
		Status:             req.Status,
		Priority:           req.Priority,
		Impact:             req.Impact,
		Type:               req.Type,
		Description:        req.Description,
		WorkNotes:          req.WorkNotes,
		AdditionalComments: req.AdditionalComments,
		Conclusion:         req.Conclusion,
		ParentIncident:     req.ParentIncident,
		TimerSeconds:       req.TimerSeconds,
	}
	for _, treatment := range req.Treatments {
		draft.Treatments = append(draft.Treatments, service.TreatmentInput{
			Content:  treatment.Content,
			IsPublic: treatment.IsPublic,
		})
	}

	record, err := persist(c.Context(), &principal.Identity, c.Params("id"), draft)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": recordDetail(record)})
}

func recordSummary(record *domain.CaseRecord) dto.RecordSummary {
	return dto.RecordSummary{
		ID:           record.ID,
		Number:       record.Number,
		RequestedFor: record.RequestedFor,
		Status:       record.Status,
		Priority:     record.Priority,
		Type:         record.Type,
		Impact:       record.Impact,
		AssignedTo:   record.AssignedTo,
		CreatedAt:    record.CreatedAt,
		LastUpdated:  record.LastUpdated,
	}
}

func recordDetail(record *domain.CaseRecord) dto.RecordDetailResponse {
	treatments := make([]dto.TreatmentResponse, 0, len(record.Treatments))
	for _, treatment := range record.Treatments {
		treatments = append(treatments, dto.TreatmentResponse{
			ID:        treatment.ID,
			Content:   treatment.Content,
			IsPublic:  treatment.IsPublic,
			Author:    treatment.Author,
			Timestamp: treatment.Timestamp,
		})
	}
	return dto.RecordDetailResponse{
		ID:                 record.ID,
		Number:             record.Number,
		RequestedFor:       record.RequestedFor,
		OpenedBy:           record.OpenedBy,
		Status:             record.Status,
		Priority:           record.Priority,
		Impact:             record.Impact,
		Type:               record.Type,
		AssignedGroup:      record.AssignedGroup,
		AssignedTo:         record.AssignedTo,
		Description:        record.Description,
		WorkNotes:          record.WorkNotes,
		AdditionalComments: record.AdditionalComments,
		Conclusion:         record.Conclusion,
		ParentIncident:     record.ParentIncident,
		Treatments:         treatments,
		TimerMinutes:       record.TimerMinutes,
		CreatedAt:          record.CreatedAt,
		LastUpdated:        record.LastUpdated,
	}
}
