package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/palmnatthakarn/Admin-Dashboard/internal/domain"
	"github.com/palmnatthakarn/Admin-Dashboard/internal/service"
	"github.com/palmnatthakarn/Admin-Dashboard/pkg/httputil"
	"github.com/palmnatthakarn/Admin-Dashboard/pkg/validator"
)

// CatalogHandler handles HTTP requests for the catalog endpoints.
type CatalogHandler struct {
	catalog *service.Catalog
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(catalog *service.Catalog, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.catalog.Products(service.ProductsRequest{
		DealerCode: q.Get("dealer_code"),
		Search:     q.Get("search"),
		Page:       q.Get("page"),
		PerPage:    q.Get("per_page"),
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// ListDealers handles GET /api/dealers
func (h *CatalogHandler) ListDealers(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.Dealers()
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// updatePriceRequest is the JSON request body for a price update. Values are
// decoded as json.Number so the mutation gateway controls how they parse.
type updatePriceRequest struct {
	PriceIndex *json.Number `json:"price_index" validate:"required"`
	Price      *json.Number `json:"price" validate:"required"`
}

type updatePriceResponse struct {
	Success      bool                `json:"success"`
	Message      string              `json:"message"`
	UpdatedPrice domain.UpdatedPrice `json:"updated_price"`
}

// UpdatePrice handles PUT /api/products/{itemCode}/price
func (h *CatalogHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	itemCode := chi.URLParam(r, "itemCode")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req updatePriceRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.StatusResponse{
			Success: false,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.StatusResponse{
			Success: false,
			Message: "price_index and price are required.",
		})
		return
	}

	updated, err := h.catalog.SetPrice(itemCode, req.PriceIndex, req.Price)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, updatePriceResponse{
		Success:      true,
		Message:      "Price updated successfully.",
		UpdatedPrice: updated,
	})
}

// Health handles GET /health. It bypasses the readiness gate so orchestrators
// can watch the load progress.
func (h *CatalogHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.catalog.HealthInfo())
}
