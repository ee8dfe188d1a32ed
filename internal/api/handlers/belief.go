package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/domain"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/service"
)

type BeliefHandler struct {
	svc *service.BeliefService
}

func NewBeliefHandler(svc *service.BeliefService) *BeliefHandler {
	return &BeliefHandler{svc: svc}
}

type listBeliefsResponse struct {
	Beliefs []domain.BeliefView `json:"beliefs"`
	Count   int                 `json:"count"`
}

func (h *BeliefHandler) List(w http.ResponseWriter, r *http.Request) {
	beliefs := h.svc.Beliefs()
	writeJSON(w, http.StatusOK, listBeliefsResponse{Beliefs: beliefs, Count: len(beliefs)})
}

type declareBeliefRequest struct {
	ID string `json:"id"`
}

type declareBeliefResponse struct {
	domain.BeliefView
	Created bool `json:"created"`
}

func (h *BeliefHandler) Declare(w http.ResponseWriter, r *http.Request) {
	var req declareBeliefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.DeclareBelief(req.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	view, err := h.svc.Belief(req.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, declareBeliefResponse{BeliefView: view, Created: created})
}

func (h *BeliefHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Belief(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *BeliefHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveBelief(chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type forceValidityRequest struct {
	Validity string `json:"validity"`
	Strict   *bool  `json:"strict,omitempty"`
}

func (h *BeliefHandler) ForceValidity(w http.ResponseWriter, r *http.Request) {
	var req forceValidityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Validity == "" {
		writeError(w, http.StatusBadRequest, "validity is required")
		return
	}
	v, err := domain.ParseValidity(req.Validity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	view, err := h.svc.ForceValidity(chi.URLParam(r, "id"), v, req.Strict)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type justificationsResponse struct {
	BeliefID       string                     `json:"belief_id"`
	Justifications []domain.JustificationView `json:"justifications"`
	Count          int                        `json:"count"`
}

func (h *BeliefHandler) Justifications(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	views, err := h.svc.Justifications(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, justificationsResponse{BeliefID: id, Justifications: views, Count: len(views)})
}

func (h *BeliefHandler) Explain(w http.ResponseWriter, r *http.Request) {
	exp, err := h.svc.Explain(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exp)
}
