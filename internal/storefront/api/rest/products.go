package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahulmehra/fashionstore/internal/storefront/catalog"
)

// productView is a catalog product plus its derived discount.
type productView struct {
	catalog.Product
	DiscountPercent *int `json:"discountPercent,omitempty"`
}

func newProductView(p catalog.Product) productView {
	return productView{Product: p, DiscountPercent: p.DiscountPercent()}
}

func newProductViews(products []catalog.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return views
}

func browseQuery(r *http.Request) catalog.Query {
	params := r.URL.Query()
	q := catalog.Query{
		Search:    params.Get("search"),
		Category:  params.Get("category"),
		PriceBand: params.Get("price"),
		SortKey:   params.Get("sort"),
	}
	if q.Category == "" {
		q.Category = catalog.CategoryAll
	}
	if q.PriceBand == "" {
		q.PriceBand = catalog.PriceBandAll
	}
	return q
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListVisibleProducts(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	results := catalog.Browse(products, browseQuery(r))
	respondJSON(w, http.StatusOK, newProductViews(results))
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		respondStorageError(w, err)
		return
	}
	if !product.IsVisible {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, newProductView(product))
}
