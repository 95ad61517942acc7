package handlers

import (
	"UserCRUD/internal/middleware"
	"UserCRUD/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DocumentHandler — CRUD документов коллекции текущего пользователя.
type DocumentHandler struct {
	DocumentService *service.DocumentService
	Logger          *zap.SugaredLogger
}

func NewDocumentHandler(documentService *service.DocumentService, logger *zap.SugaredLogger) *DocumentHandler {
	return &DocumentHandler{DocumentService: documentService, Logger: logger}
}

// DocumentDTO — документ в ответах API.
type DocumentDTO struct {
	ID        string         `json:"id"`
	Fields    map[string]any `json:"fields"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

// ListResponse — ответ на чтение коллекции.
type ListResponse struct {
	Documents []DocumentDTO `json:"documents"`
}

// FieldsRequest — тело запросов создания и замены документа.
type FieldsRequest struct {
	Fields map[string]any `json:"fields"`
}

// CreateResponse — ответ на создание документа.
type CreateResponse struct {
	ID string `json:"id"`
}

func toDTO(d service.Doc) DocumentDTO {
	return DocumentDTO{
		ID:        d.ID,
		Fields:    d.Fields,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// owner возвращает id пользователя или отвечает 401.
func (h *DocumentHandler) owner(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}
	return userID, ok
}

// fail переводит ошибку сервиса в HTTP-ответ.
func (h *DocumentHandler) fail(w http.ResponseWriter, op string, err error, kv ...any) {
	switch {
	case errors.Is(err, service.ErrInvalidCollection), errors.Is(err, service.ErrInvalidDocumentID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrDocumentNotFound):
		http.Error(w, "document not found", http.StatusNotFound)
	default:
		h.Logger.Errorw(op+": service error", append(kv, "error", err)...)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func decodeFields(r *http.Request) (map[string]any, error) {
	var req FieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	if req.Fields == nil {
		return nil, errors.New("fields are required")
	}
	return req.Fields, nil
}

// List отдаёт все документы коллекции в порядке создания.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.owner(w, r)
	if !ok {
		return
	}
	collection := chi.URLParam(r, "collection")

	docs, err := h.DocumentService.List(r.Context(), userID, collection)
	if err != nil {
		h.fail(w, "List", err, "user_id", userID, "collection", collection)
		return
	}
	resp := ListResponse{Documents: make([]DocumentDTO, 0, len(docs))}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, toDTO(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get отдаёт один документ.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.owner(w, r)
	if !ok {
		return
	}
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	d, err := h.DocumentService.Get(r.Context(), userID, collection, id)
	if err != nil {
		h.fail(w, "Get", err, "user_id", userID, "collection", collection, "id", id)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(d))
}

// Create создаёт документ, id назначает сервер.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.owner(w, r)
	if !ok {
		return
	}
	collection := chi.URLParam(r, "collection")

	fields, err := decodeFields(r)
	if err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	id, err := h.DocumentService.Create(r.Context(), userID, collection, fields)
	if err != nil {
		h.fail(w, "Create", err, "user_id", userID, "collection", collection)
		return
	}
	writeJSON(w, http.StatusCreated, CreateResponse{ID: id})
}

// Replace полностью заменяет поля документа.
func (h *DocumentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.owner(w, r)
	if !ok {
		return
	}
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	fields, err := decodeFields(r)
	if err != nil {
		h.Logger.Warnw("Replace: invalid request body", "id", id, "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.DocumentService.Replace(r.Context(), userID, collection, id, fields); err != nil {
		h.fail(w, "Replace", err, "user_id", userID, "collection", collection, "id", id)
		return
	}
	writeJSON(w, http.StatusOK, CreateResponse{ID: id})
}

// Delete удаляет документ; удаление отсутствующего документа тоже 204.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.owner(w, r)
	if !ok {
		return
	}
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	if err := h.DocumentService.Delete(r.Context(), userID, collection, id); err != nil {
		h.fail(w, "Delete", err, "user_id", userID, "collection", collection, "id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
