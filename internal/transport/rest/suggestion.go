package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
	"github.com/heartmarshall/pathwise-backend/internal/service/suggestion"
)

// suggestionService defines the operations SuggestionHandler needs.
type suggestionService interface {
	RequestSuggestions(ctx context.Context, input suggestion.GenerateInput) (*suggestion.GenerateResult, error)
	GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.SuggestionRecord, error)
	ListRecords(ctx context.Context, input suggestion.ListRecordsInput) ([]*domain.SuggestionRecord, int, error)
	MarkViewed(ctx context.Context, recordID uuid.UUID) (*domain.SuggestionRecord, error)
	CompleteItem(ctx context.Context, input suggestion.CompleteItemInput) (*domain.SuggestionRecord, error)
	RateRecord(ctx context.Context, input suggestion.RateRecordInput) (*domain.SuggestionRecord, error)
}

// SuggestionHandler serves the suggestion REST endpoints.
type SuggestionHandler struct {
	svc suggestionService
	log *slog.Logger
}

// NewSuggestionHandler creates a SuggestionHandler.
func NewSuggestionHandler(svc suggestionService, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{svc: svc, log: logger.With("handler", "suggestion")}
}

// Register adds the suggestion routes to mux.
func (h *SuggestionHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/suggestions", h.Generate)
	mux.HandleFunc("GET /api/v1/suggestions", h.List)
	mux.HandleFunc("GET /api/v1/suggestions/{id}", h.Get)
	mux.HandleFunc("POST /api/v1/suggestions/{id}/view", h.MarkViewed)
	mux.HandleFunc("POST /api/v1/suggestions/{id}/complete", h.CompleteItem)
	mux.HandleFunc("PUT /api/v1/suggestions/{id}/rating", h.Rate)
}

type generateRequest struct {
	Background      string  `json:"background"`
	Goals           *string `json:"goals"`
	ExperienceLevel string  `json:"experienceLevel"`
}

type completeItemRequest struct {
	ItemTitle string  `json:"itemTitle"`
	Notes     *string `json:"notes"`
}

type rateRequest struct {
	Rating int `json:"rating"`
}

type itemResponse struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
	Action string `json:"action"`
}

type generateResponse struct {
	RecordID  string         `json:"recordId,omitempty"`
	Items     []itemResponse `json:"items"`
	Degraded  bool           `json:"degraded"`
	Cached    bool           `json:"cached"`
	CreatedAt time.Time      `json:"createdAt"`
}

type inputResponse struct {
	Background      string  `json:"background"`
	Goals           *string `json:"goals,omitempty"`
	ExperienceLevel string  `json:"experienceLevel"`
}

type completedItemResponse struct {
	ItemTitle   string    `json:"itemTitle"`
	CompletedAt time.Time `json:"completedAt"`
	Notes       *string   `json:"notes,omitempty"`
}

type recordResponse struct {
	ID             string                  `json:"id"`
	Items          []itemResponse          `json:"items"`
	Input          inputResponse           `json:"input"`
	CreatedAt      time.Time               `json:"createdAt"`
	ViewedAt       *time.Time              `json:"viewedAt,omitempty"`
	CompletedItems []completedItemResponse `json:"completedItems"`
	Rating         *int                    `json:"rating,omitempty"`
	ReuseCount     int                     `json:"reuseCount"`
	LastReusedAt   *time.Time              `json:"lastReusedAt,omitempty"`
}

type listResponse struct {
	Records []recordResponse `json:"records"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit,omitempty"`
	Offset  int              `json:"offset"`
}

// Generate handles POST /api/v1/suggestions.
func (h *SuggestionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.RequestSuggestions(r.Context(), suggestion.GenerateInput{
		Background:      req.Background,
		Goals:           req.Goals,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusCreated
	if result.Cached {
		status = http.StatusOK
	}
	var recordID string
	if result.RecordID != uuid.Nil {
		recordID = result.RecordID.String()
	}
	writeJSON(w, status, generateResponse{
		RecordID:  recordID,
		Items:     toItemResponses(result.Items),
		Degraded:  result.Degraded,
		Cached:    result.Cached,
		CreatedAt: result.CreatedAt,
	})
}

// List handles GET /api/v1/suggestions?limit=20&offset=0.
func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	var input suggestion.ListRecordsInput
	var errs []domain.FieldError
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		input.Offset = n
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	records, total, err := h.svc.ListRecords(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse{
		Records: make([]recordResponse, 0, len(records)),
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, toRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/suggestions/{id}.
func (h *SuggestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recordID(w, r)
	if !ok {
		return
	}
	rec, err := h.svc.GetRecord(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// MarkViewed handles POST /api/v1/suggestions/{id}/view.
func (h *SuggestionHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recordID(w, r)
	if !ok {
		return
	}
	rec, err := h.svc.MarkViewed(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// CompleteItem handles POST /api/v1/suggestions/{id}/complete.
func (h *SuggestionHandler) CompleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recordID(w, r)
	if !ok {
		return
	}
	var req completeItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := h.svc.CompleteItem(r.Context(), suggestion.CompleteItemInput{
		RecordID:  id,
		ItemTitle: req.ItemTitle,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// Rate handles PUT /api/v1/suggestions/{id}/rating.
func (h *SuggestionHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recordID(w, r)
	if !ok {
		return
	}
	var req rateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := h.svc.RateRecord(r.Context(), suggestion.RateRecordInput{RecordID: id, Rating: req.Rating})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

func (h *SuggestionHandler) recordID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func toItemResponses(items []domain.SuggestionItem) []itemResponse {
	out := make([]itemResponse, len(items))
	for i, it := range items {
		out[i] = itemResponse{Title: it.Title, Reason: it.Reason, Action: it.Action}
	}
	return out
}

func toRecordResponse(rec *domain.SuggestionRecord) recordResponse {
	completed := make([]completedItemResponse, len(rec.CompletedItems))
	for i, c := range rec.CompletedItems {
		completed[i] = completedItemResponse{ItemTitle: c.ItemTitle, CompletedAt: c.CompletedAt, Notes: c.Notes}
	}
	return recordResponse{
		ID:    rec.ID.String(),
		Items: toItemResponses(rec.Items),
		Input: inputResponse{
			Background:      rec.Input.Background,
			Goals:           rec.Input.Goals,
			ExperienceLevel: rec.Input.ExperienceLevel.String(),
		},
		CreatedAt:      rec.CreatedAt,
		ViewedAt:       rec.ViewedAt,
		CompletedItems: completed,
		Rating:         rec.Rating,
		ReuseCount:     rec.ReuseCount,
		LastReusedAt:   rec.LastReusedAt,
	}
}
