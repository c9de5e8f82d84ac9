package handler

import (
	"net/http"
	"strconv"

	"github.com/templui/fittrack/internal/ctxkeys"
	"github.com/templui/fittrack/internal/service"
	"github.com/templui/fittrack/internal/ui"
)

type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// Progress reports analytics over the last ?days=N days (default configured).
func (h *ProgressHandler) Progress(w http.ResponseWriter, r *http.Request) {
	days := 0
	if q := r.URL.Query().Get("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			ui.Error(w, r, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = n
	}

	result, err := h.progressService.Progress(r.Context(), ctxkeys.UserID(r.Context()), days)
	if err != nil {
		respondError(w, r, err, "Failed to fetch progress data")
		return
	}

	ui.JSON(w, r, http.StatusOK, result)
}
