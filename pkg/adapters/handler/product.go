package handler

import (
	"net/http"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/validation"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/ports"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service ports.ProductService
	logger  *zap.Logger
}

func NewProductHandler(service ports.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{service: service, logger: logger}
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload validation.ProductPayload
	if err := decodeBody(w, r, &payload); err != nil {
		writeError(w, h.logger, r, err, "create product")
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(w, h.logger, r, err, "create product")
		return
	}

	product, err := h.service.CreateProduct(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, r, err, "create product")
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeError(w, h.logger, r, err, "fetch products")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// SearchProducts filters by minPrice, maxPrice, collectionId and title.
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	filter := validation.ParseProductFilter(r.URL.Query())
	products, err := h.service.SearchProducts(r.Context(), filter)
	if err != nil {
		writeError(w, h.logger, r, err, "search products")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) SearchProductsPaged(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := validation.ParsePageRequest(q.Get("page"), q.Get("limit"))
	if err != nil {
		writeError(w, h.logger, r, err, "fetch products with pagination")
		return
	}

	page, err := h.service.SearchProductsPaged(r.Context(), validation.ParseProductFilter(q), req)
	if err != nil {
		writeError(w, h.logger, r, err, "fetch products with pagination")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ProductHandler) ListProductsByPriceRange(w http.ResponseWriter, r *http.Request) {
	lo, hi, err := validation.ParsePriceRange(r.URL.Query())
	if err != nil {
		writeError(w, h.logger, r, err, "fetch products by price range")
		return
	}

	products, err := h.service.ListProductsByPriceRange(r.Context(), lo, hi)
	if err != nil {
		writeError(w, h.logger, r, err, "fetch products by price range")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) ListProductsByCollection(w http.ResponseWriter, r *http.Request) {
	collectionID, err := validation.ParseID(r.PathValue("collectionId"))
	if err != nil {
		writeError(w, h.logger, r, err, "fetch products by collection")
		return
	}

	products, err := h.service.ListProductsByCollection(r.Context(), collectionID)
	if err != nil {
		writeError(w, h.logger, r, err, "fetch products by collection")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err, "fetch product")
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, r, err, "fetch product")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err, "update product")
		return
	}

	var payload validation.ProductPayload
	if err := decodeBody(w, r, &payload); err != nil {
		writeError(w, h.logger, r, err, "update product")
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(w, h.logger, r, err, "update product")
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		writeError(w, h.logger, r, err, "update product")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err, "toggle product availability")
		return
	}

	product, err := h.service.ToggleAvailability(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, r, err, "toggle product availability")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err, "delete product")
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, h.logger, r, err, "delete product")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}
