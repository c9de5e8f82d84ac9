package handler

import (
	"net/http"

	"github.com/templui/fittrack/internal/catalog"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/ui"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

type catalogGroup struct {
	Group     model.MuscleGroup `json:"group"`
	Exercises []catalog.Entry   `json:"exercises"`
}

// List returns the catalog grouped by muscle group in display order.
// ?group= narrows it to one group.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	groups := model.AllMuscleGroups
	if q := r.URL.Query().Get("group"); q != "" {
		g, err := model.ParseMuscleGroup(q)
		if err != nil {
			ui.Error(w, r, http.StatusBadRequest, err.Error())
			return
		}
		groups = []model.MuscleGroup{g}
	}

	resp := make([]catalogGroup, 0, len(groups))
	for _, g := range groups {
		entries := h.catalog.Group(g)
		if entries == nil {
			entries = []catalog.Entry{}
		}
		resp = append(resp, catalogGroup{Group: g, Exercises: entries})
	}

	ui.JSON(w, r, http.StatusOK, resp)
}
