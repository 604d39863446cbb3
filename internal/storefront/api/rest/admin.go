package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahulmehra/fashionstore/internal/storefront/catalog"
)

type loginRequest struct {
	Key string `json:"key"`
}

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !h.guard.Login(r.Context(), req.Key) {
		respondError(w, http.StatusUnauthorized, "invalid admin key")
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse{Authenticated: true})
}

func (h *Handler) adminLogout(w http.ResponseWriter, r *http.Request) {
	h.guard.Logout(r.Context())
	respondJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
}

func (h *Handler) adminSession(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, sessionResponse{Authenticated: h.guard.Authenticated()})
}

func (h *Handler) adminListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListAllProducts(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newProductViews(products))
}

func (h *Handler) adminCreateProduct(w http.ResponseWriter, r *http.Request) {
	var product catalog.Product
	if err := decodeJSON(r, &product); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := product.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created, err := h.products.CreateProduct(r.Context(), product)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, newProductView(created))
}

func (h *Handler) adminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product catalog.Product
	if err := decodeJSON(r, &product); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	product.ID = chi.URLParam(r, "productID")
	if err := product.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.products.UpdateProduct(r.Context(), product); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newProductView(product))
}

func (h *Handler) adminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.products.DeleteProduct(r.Context(), chi.URLParam(r, "productID")); err != nil {
		respondStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (h *Handler) adminUploadImage(w http.ResponseWriter, r *http.Request) {
	if h.media == nil {
		respondError(w, http.StatusNotImplemented, "uploads are disabled")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	url, err := h.media.Save(r.Context(), header.Filename, file)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
