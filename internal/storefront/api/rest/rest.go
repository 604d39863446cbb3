// Package rest exposes the storefront over HTTP.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/rahulmehra/fashionstore/internal/storefront/admin"
	"github.com/rahulmehra/fashionstore/internal/storefront/cart"
	"github.com/rahulmehra/fashionstore/internal/storefront/contact"
	"github.com/rahulmehra/fashionstore/internal/storefront/media"
	"github.com/rahulmehra/fashionstore/internal/storefront/storage"
)

// Handler serves the storefront and admin APIs.
type Handler struct {
	products storage.ProductStore
	cart     *cart.Engine
	guard    *admin.Guard
	media    *media.Store
	channels contact.Channels
}

// NewHandler wires the API against its collaborators. media may be nil when
// uploads are disabled.
func NewHandler(products storage.ProductStore, engine *cart.Engine, guard *admin.Guard, uploads *media.Store, channels contact.Channels) *Handler {
	return &Handler{
		products: products,
		cart:     engine,
		guard:    guard,
		media:    uploads,
		channels: channels,
	}
}

// Router builds the HTTP routing table.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{productID}", h.getProduct)

		r.Get("/contact", h.getContact)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Delete("/", h.clearCart)
			r.Post("/items", h.addCartItem)
			r.Put("/items", h.updateCartItem)
			r.Delete("/items", h.removeCartItem)
			r.Post("/toggle", h.toggleCart)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.adminLogin)
			r.Post("/logout", h.adminLogout)
			r.Get("/session", h.adminSession)

			r.Group(func(r chi.Router) {
				r.Use(h.requireAdmin)
				r.Get("/products", h.adminListProducts)
				r.Post("/products", h.adminCreateProduct)
				r.Put("/products/{productID}", h.adminUpdateProduct)
				r.Delete("/products/{productID}", h.adminDeleteProduct)
				r.Post("/products/image", h.adminUploadImage)
			})
		})
	})

	if h.media != nil {
		fs := http.StripPrefix("/media/", http.FileServer(http.Dir(h.media.Root())))
		r.Get("/media/*", fs.ServeHTTP)
	}

	return otelhttp.NewHandler(r, "storefront.http")
}

// requireAdmin rejects requests until an admin session is active.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.guard == nil || !h.guard.Authenticated() {
			respondError(w, http.StatusUnauthorized, "admin session required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
