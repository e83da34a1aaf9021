package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sorvetes-mauriti/api/internal/catalog"
	"github.com/sorvetes-mauriti/api/internal/domain"
	"github.com/sorvetes-mauriti/api/internal/platform/httpx"
)

// CatalogHandlers exposes the read-only product catalog.
type CatalogHandlers struct {
	store *catalog.Store
}

// NewCatalogHandlers constructs handlers over the shared catalog store.
func NewCatalogHandlers(store *catalog.Store) *CatalogHandlers {
	return &CatalogHandlers{store: store}
}

// Routes wires the /catalog endpoints onto the provided router.
func (h *CatalogHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.getCatalog)
	r.Get("/sections", h.listSections)
	r.Get("/sections/{sectionKey}", h.getSection)
}

type catalogResponse struct {
	Products     []domain.Product `json:"products"`
	UsedFallback bool             `json:"usedFallback"`
	Loading      bool             `json:"loading"`
}

type sectionResponse struct {
	Section  catalog.Section  `json:"section"`
	Products []domain.Product `json:"products"`
}

func (h *CatalogHandlers) getCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.store == nil {
		httpx.WriteError(ctx, w, httpx.NewError("catalog_unavailable", "catalog store is unavailable", http.StatusServiceUnavailable))
		return
	}

	writeJSONResponse(w, http.StatusOK, catalogResponse{
		Products:     h.store.Products(),
		UsedFallback: h.store.UsedFallback(),
		Loading:      h.store.Loading(),
	})
}

func (h *CatalogHandlers) listSections(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]any{"sections": catalog.Sections()})
}

func (h *CatalogHandlers) getSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.store == nil {
		httpx.WriteError(ctx, w, httpx.NewError("catalog_unavailable", "catalog store is unavailable", http.StatusServiceUnavailable))
		return
	}

	key := chi.URLParam(r, "sectionKey")
	products, ok := h.store.FilterSection(key)
	if !ok {
		httpx.WriteError(ctx, w, httpx.NewError("section_not_found", "unknown catalog section", http.StatusNotFound))
		return
	}

	section, _ := catalog.SectionByKey(key)
	if products == nil {
		products = []domain.Product{}
	}
	writeJSONResponse(w, http.StatusOK, sectionResponse{Section: section, Products: products})
}
