package http

import (
	"net/http"
	"strconv"

	"greystone-backend/internal/repository"
	"greystone-backend/internal/service"

	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListTools serves the rental page listing, newest tools first. The catalog
// page passes ?sort=name for alphabetical order.
func (h *CatalogHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	order := repository.ToolOrderIDDesc
	if r.URL.Query().Get("sort") == "name" {
		order = repository.ToolOrderNameAsc
	}

	tools, err := h.catalogSvc.ListTools(r.Context(), order)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *CatalogHandler) GetTool(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid tool id"})
		return
	}

	tool, err := h.catalogSvc.GetTool(r.Context(), int32(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogSvc.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogSvc.GetProduct(r.Context(), mux.Vars(r)["part_number"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
