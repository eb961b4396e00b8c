package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tbs/catalog/internal/model"
	"tbs/catalog/internal/repository"
)

type plainSpecialization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type plainCourseItem struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	SpecializationID string `json:"specialization_id"`
}

type specializationResponse struct {
	plainSpecialization
	CourseItems []plainCourseItem `json:"course_items"`
}

type courseItemResponse struct {
	plainCourseItem
	Specialization plainSpecialization `json:"specialization"`
}

func mapSpecialization(spec model.Specialization, items []model.CourseItem) specializationResponse {
	resp := specializationResponse{
		plainSpecialization: plainSpecialization{ID: spec.ID, Name: spec.Name},
		CourseItems:         make([]plainCourseItem, 0, len(items)),
	}
	for _, item := range items {
		resp.CourseItems = append(resp.CourseItems, mapPlainCourseItem(item))
	}
	return resp
}

func mapPlainCourseItem(item model.CourseItem) plainCourseItem {
	return plainCourseItem{
		ID:               item.ID,
		Name:             item.Name,
		Type:             item.Type,
		SpecializationID: item.SpecializationID,
	}
}

func mapCourseItem(item model.CourseItem, spec model.Specialization) courseItemResponse {
	return courseItemResponse{
		plainCourseItem: mapPlainCourseItem(item),
		Specialization:  plainSpecialization{ID: spec.ID, Name: spec.Name},
	}
}

// newID matches the opaque identifier shape used across the catalog tables:
// a uuid4 rendered as 32 hex characters.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

type specializationRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListSpecializations(w http.ResponseWriter, r *http.Request) {
	specs, err := s.store.ListSpecializations(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	items, err := s.store.ListCourseItems(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	bySpec := make(map[string][]model.CourseItem, len(specs))
	for _, item := range items {
		bySpec[item.SpecializationID] = append(bySpec[item.SpecializationID], item)
	}

	resp := make([]specializationResponse, 0, len(specs))
	for _, spec := range specs {
		resp = append(resp, mapSpecialization(spec, bySpec[spec.ID]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSpecialization(w http.ResponseWriter, r *http.Request) {
	specID := chi.URLParam(r, "specializationID")

	spec, err := s.store.GetSpecialization(r.Context(), specID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Specialization not found.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	items, err := s.store.ListCourseItemsBySpecialization(r.Context(), spec.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusOK, mapSpecialization(spec, items))
}

func (s *Server) handleCreateSpecialization(w http.ResponseWriter, r *http.Request) {
	var req specializationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required.")
		return
	}

	spec := model.Specialization{ID: newID(), Name: req.Name}
	if err := s.store.CreateSpecialization(r.Context(), spec); err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "Specialization already exists.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusCreated, mapSpecialization(spec, nil))
}

func (s *Server) handleUpdateSpecialization(w http.ResponseWriter, r *http.Request) {
	specID := chi.URLParam(r, "specializationID")

	var req specializationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required.")
		return
	}

	spec, err := s.store.UpdateSpecializationName(r.Context(), specID, req.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Specialization not found.")
			return
		}
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "Specialization already exists.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	items, err := s.store.ListCourseItemsBySpecialization(r.Context(), spec.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusOK, mapSpecialization(spec, items))
}

func (s *Server) handleDeleteSpecialization(w http.ResponseWriter, r *http.Request) {
	specID := chi.URLParam(r, "specializationID")

	if err := s.store.DeleteSpecialization(r.Context(), specID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Specialization not found.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Specialization deleted."})
}

type createCourseItemRequest struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	SpecializationID string `json:"specialization_id"`
}

type updateCourseItemRequest struct {
	Name             *string `json:"name,omitempty"`
	Type             *string `json:"type,omitempty"`
	SpecializationID *string `json:"specialization_id,omitempty"`
}

func (s *Server) handleListCourseItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListCourseItems(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	specs, err := s.store.ListSpecializations(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	byID := make(map[string]model.Specialization, len(specs))
	for _, spec := range specs {
		byID[spec.ID] = spec
	}

	resp := make([]courseItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, mapCourseItem(item, byID[item.SpecializationID]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCourseItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "courseItemID")

	item, err := s.store.GetCourseItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Course item not found.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	spec, err := s.store.GetSpecialization(r.Context(), item.SpecializationID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusOK, mapCourseItem(item, spec))
}

func (s *Server) handleCreateCourseItem(w http.ResponseWriter, r *http.Request) {
	var req createCourseItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.TrimSpace(req.Type)
	if req.Name == "" || req.Type == "" || req.SpecializationID == "" {
		writeError(w, http.StatusBadRequest, "Name, type and specialization_id are required.")
		return
	}

	item := model.CourseItem{
		ID:               newID(),
		Name:             req.Name,
		Type:             req.Type,
		SpecializationID: req.SpecializationID,
	}
	if err := s.store.CreateCourseItem(r.Context(), item); err != nil {
		if errors.Is(err, repository.ErrSpecializationNotFound) || isForeignKeyViolation(err) {
			writeError(w, http.StatusNotFound, "Specialization not found.")
			return
		}
		if isUniqueViolation(err) {
			writeError(w, http.StatusBadRequest, "Course item already exists.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	spec, err := s.store.GetSpecialization(r.Context(), item.SpecializationID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusCreated, mapCourseItem(item, spec))
}

func (s *Server) handleUpdateCourseItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "courseItemID")

	var req updateCourseItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	update := repository.CourseItemUpdate{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "Name must not be empty.")
			return
		}
		update.Name = &name
	}
	if req.Type != nil {
		itemType := strings.TrimSpace(*req.Type)
		if itemType == "" {
			writeError(w, http.StatusBadRequest, "Type must not be empty.")
			return
		}
		update.Type = &itemType
	}
	if req.SpecializationID != nil {
		update.SpecializationID = req.SpecializationID
	}

	item, err := s.store.UpdateCourseItem(r.Context(), itemID, update)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Course item not found.")
			return
		}
		if errors.Is(err, repository.ErrSpecializationNotFound) || isForeignKeyViolation(err) {
			writeError(w, http.StatusNotFound, "Specialization not found.")
			return
		}
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "Course item already exists.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	spec, err := s.store.GetSpecialization(r.Context(), item.SpecializationID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusOK, mapCourseItem(item, spec))
}

func (s *Server) handleDeleteCourseItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "courseItemID")

	if err := s.store.DeleteCourseItem(r.Context(), itemID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Course item not found.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Course item deleted."})
}
