package http

import (
	"encoding/json"
	"net/http"

	"lender-match/domain"
	"lender-match/repository"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog repository.ProductCatalog
	logger  *zap.Logger
}

func NewCatalogHandler(catalog repository.ProductCatalog, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// catalogResponse mirrors the staff backend's envelope so downstream tooling
// can point at either service.
type catalogResponse struct {
	Success  bool                   `json:"success"`
	Products []domain.LenderProduct `json:"products"`
}

// ListProducts handles GET /products.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := h.catalog.Products(r.Context())
	if err != nil {
		h.logger.Error("failed to load product catalog", zap.Error(err))
		http.Error(w, "failed to load lender products", http.StatusBadGateway)
		return
	}
	h.writeCatalog(w, products)
}

// RefreshProducts handles POST /products/refresh, forcing a refetch.
func (h *CatalogHandler) RefreshProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := h.catalog.Refresh(r.Context())
	if err != nil {
		h.logger.Error("failed to refresh product catalog", zap.Error(err))
		http.Error(w, "failed to refresh lender products", http.StatusBadGateway)
		return
	}
	h.writeCatalog(w, products)
}

func (h *CatalogHandler) writeCatalog(w http.ResponseWriter, products []domain.LenderProduct) {
	if products == nil {
		products = []domain.LenderProduct{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(catalogResponse{Success: true, Products: products}); err != nil {
		h.logger.Warn("failed to write catalog response", zap.Error(err))
	}
}
