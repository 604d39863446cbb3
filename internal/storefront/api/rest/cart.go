package rest

import (
	"net/http"

	"github.com/rahulmehra/fashionstore/internal/storefront/cart"
	"github.com/rahulmehra/fashionstore/internal/storefront/contact"
)

type cartResponse struct {
	Items      []cart.LineItem `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice float64         `json:"totalPrice"`
	IsOpen     bool            `json:"isOpen"`
}

func (h *Handler) cartResponse() cartResponse {
	items := h.cart.Items()
	if items == nil {
		items = []cart.LineItem{}
	}
	return cartResponse{
		Items:      items,
		TotalItems: h.cart.TotalItems(),
		TotalPrice: h.cart.TotalPrice(),
		IsOpen:     h.cart.IsOpen(),
	}
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == "" || req.Size == "" || req.Color == "" {
		respondError(w, http.StatusBadRequest, "productId, size and color are required")
		return
	}

	product, err := h.products.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	if !product.IsVisible {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	if !product.HasSize(req.Size) || !product.HasColor(req.Color) {
		respondError(w, http.StatusBadRequest, "size or color not offered for this product")
		return
	}

	h.cart.Add(r.Context(), product, req.Size, req.Color, req.Quantity)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

type updateItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.cart.UpdateQuantity(r.Context(), req.ProductID, req.Size, req.Color, req.Quantity)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	productID := params.Get("productId")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "productId is required")
		return
	}
	h.cart.Remove(r.Context(), productID, params.Get("size"), params.Get("color"))
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) toggleCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Toggle()
	respondJSON(w, http.StatusOK, h.cartResponse())
}

type contactResponse struct {
	WhatsApp string `json:"whatsapp"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// getContact returns the order hand-off links. The WhatsApp link carries the
// current cart as a prefilled enquiry.
func (h *Handler) getContact(w http.ResponseWriter, _ *http.Request) {
	message := contact.OrderMessage(h.cart.Items(), h.cart.TotalPrice())
	respondJSON(w, http.StatusOK, contactResponse{
		WhatsApp: h.channels.WhatsAppLink(message),
		Phone:    h.channels.TelLink(),
		Email:    h.channels.MailtoLink("Order enquiry"),
	})
}
