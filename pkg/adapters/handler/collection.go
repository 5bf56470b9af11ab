package handler

import (
	"net/http"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/validation"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/ports"
	"go.uber.org/zap"
)

type CollectionHandler struct {
	service ports.CollectionService
	logger  *zap.Logger
}

func NewCollectionHandler(service ports.CollectionService, logger *zap.Logger) *CollectionHandler {
	return &CollectionHandler{service: service, logger: logger}
}

func (h *CollectionHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var payload validation.CollectionPayload
	if err := decodeBody(w, r, &payload); err != nil {
		writeError(w, h.logger, r, err, "create collection")
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(w, h.logger, r, err, "create collection")
		return
	}

	collection, err := h.service.CreateCollection(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, r, err, "create collection")
		return
	}
	writeJSON(w, http.StatusCreated, collection)
}

func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.service.ListCollections(r.Context())
	if err != nil {
		writeError(w, h.logger, r, err, "fetch collections")
		return
	}
	writeJSON(w, http.StatusOK, collections)
}

func (h *CollectionHandler) SearchCollections(w http.ResponseWriter, r *http.Request) {
	filter := validation.ParseCollectionFilter(r.URL.Query())
	collections, err := h.service.SearchCollections(r.Context(), filter)
	if err != nil {
		writeError(w, h.logger, r, err, "search collections")
		return
	}
	writeJSON(w, http.StatusOK, collections)
}

func (h *CollectionHandler) ListCollectionsPaged(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := validation.ParsePageRequest(q.Get("page"), q.Get("limit"))
	if err != nil {
		writeError(w, h.logger, r, err, "fetch collections with pagination")
		return
	}

	page, err := h.service.ListCollectionsPaged(r.Context(), validation.ParseCollectionFilter(q), req)
	if err != nil {
		writeError(w, h.logger, r, err, "fetch collections with pagination")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *CollectionHandler) ListCollectionsWithProducts(w http.ResponseWriter, r *http.Request) {
	collections, err := h.service.ListCollectionsWithProducts(r.Context())
	if err != nil {
		writeError(w, h.logger, r, err, "fetch collections with products")
		return
	}
	writeJSON(w, http.StatusOK, collections)
}

func (h *CollectionHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err, "fetch collection")
		return
	}

	collection, err := h.service.GetCollection(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, r, err, "fetch collection")
		return
	}
	writeJSON(w, http.StatusOK, collection)
}

func (h *CollectionHandler) GetCollectionStats(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err, "fetch collection stats")
		return
	}

	stats, err := h.service.GetCollectionStats(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, r, err, "fetch collection stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *CollectionHandler) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err, "update collection")
		return
	}

	var payload validation.CollectionPayload
	if err := decodeBody(w, r, &payload); err != nil {
		writeError(w, h.logger, r, err, "update collection")
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(w, h.logger, r, err, "update collection")
		return
	}

	collection, err := h.service.UpdateCollection(r.Context(), id, patch)
	if err != nil {
		writeError(w, h.logger, r, err, "update collection")
		return
	}
	writeJSON(w, http.StatusOK, collection)
}

func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err, "delete collection")
		return
	}

	if err := h.service.DeleteCollection(r.Context(), id); err != nil {
		writeError(w, h.logger, r, err, "delete collection")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Collection deleted successfully"})
}
