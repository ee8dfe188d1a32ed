package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/domain"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/service"
)

type JustificationHandler struct {
	svc *service.BeliefService
}

func NewJustificationHandler(svc *service.BeliefService) *JustificationHandler {
	return &JustificationHandler{svc: svc}
}

type declareJustificationRequest struct {
	In         []string `json:"in"`
	Out        []string `json:"out"`
	Conclusion string   `json:"conclusion"`
	Strict     *bool    `json:"strict,omitempty"`
}

func (h *JustificationHandler) Declare(w http.ResponseWriter, r *http.Request) {
	var req declareJustificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.DeclareJustification(service.JustificationRequest{
		In:         req.In,
		Out:        req.Out,
		Conclusion: req.Conclusion,
		Strict:     req.Strict,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *JustificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid justification id")
		return
	}

	if err := h.svc.RemoveJustification(domain.JustificationID(id)); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type rescanResponse struct {
	Flagged []string `json:"flagged"`
	Count   int      `json:"count"`
}

func (h *JustificationHandler) Rescan(w http.ResponseWriter, r *http.Request) {
	flagged := h.svc.Rescan()
	if flagged == nil {
		flagged = []string{}
	}
	writeJSON(w, http.StatusOK, rescanResponse{Flagged: flagged, Count: len(flagged)})
}

func (h *JustificationHandler) Graph(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot())
}
