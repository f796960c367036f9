// Package cart serves the cart form posts issued by product and cart pages.
// Responses are plain text or redirects, never JSON envelopes, except for the
// read-only cart view.
package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/skibidoo/storefront/api/middleware"
	"github.com/skibidoo/storefront/api/responses"
	"github.com/skibidoo/storefront/api/validators"
	"github.com/skibidoo/storefront/internal/backend"
	"github.com/skibidoo/storefront/pkg/i18n"
	"github.com/skibidoo/storefront/pkg/logger"
)

const (
	cartPath = "/cart"

	msgCartNotFound  = "Cart not found"
	msgMissingItemID = "Missing itemId"
	msgInvalidQty    = "Invalid quantity"
	msgInvalidForm   = "Invalid form data"
	msgUpdateFailed  = "Failed to update cart"
	msgRemoveFailed  = "Failed to remove item"

	// neutralCount is the add response when nothing was added.
	neutralCount = "0"
)

type toast struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type hxTrigger struct {
	ShowToast toast `json:"showToast"`
}

// CartAdd adds a product to the visitor's cart and answers with the new item
// count. Any failure answers "0" with status 200 so the badge stays intact.
func CartAdd(svc backend.CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := validators.ParseForm(r); err != nil {
			responses.WriteText(w, http.StatusOK, neutralCount)
			return
		}

		productID := validators.FormValue(r, "productId")
		quantity, err := validators.ParseFormInt(r, "quantity", 1)
		if productID == "" || err != nil || quantity <= 0 {
			responses.WriteText(w, http.StatusOK, neutralCount)
			return
		}

		session := middleware.CartSessionFromContext(ctx)
		input := backend.AddItemInput{ProductID: productID, Quantity: quantity}
		if session.HasCart() {
			id := session.ID()
			input.CartID = &id
		}

		cart, err := svc.AddToCart(ctx, input)
		if err != nil || cart == nil {
			logFailure(ctx, logg, "cart.add.failed", err)
			responses.WriteText(w, http.StatusOK, neutralCount)
			return
		}

		session.Adopt(w, cart.ID)

		t := i18n.NewTranslator(middleware.LocaleFromContext(ctx))
		if trigger, err := json.Marshal(hxTrigger{ShowToast: toast{Message: t("cart.added", nil), Type: "success"}}); err == nil {
			w.Header().Set("HX-Trigger", string(trigger))
		}
		responses.WriteText(w, http.StatusOK, strconv.Itoa(cart.ItemCount))
	}
}

// CartUpdate changes an item's quantity; zero or less removes it.
func CartUpdate(svc backend.CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := middleware.CartSessionFromContext(ctx)
		if !session.HasCart() {
			responses.WriteText(w, http.StatusNotFound, msgCartNotFound)
			return
		}
		if err := validators.ParseForm(r); err != nil {
			responses.WriteText(w, http.StatusBadRequest, msgInvalidForm)
			return
		}

		itemID := validators.FormValue(r, "itemId")
		if itemID == "" {
			responses.WriteText(w, http.StatusBadRequest, msgMissingItemID)
			return
		}
		quantity, err := validators.ParseFormInt(r, "quantity", 0)
		if err != nil {
			responses.WriteText(w, http.StatusBadRequest, msgInvalidQty)
			return
		}

		if quantity <= 0 {
			if _, err := svc.RemoveCartItem(ctx, backend.RemoveItemInput{CartID: session.ID(), ItemID: itemID}); err != nil {
				logFailure(ctx, logg, "cart.remove.failed", err)
				responses.WriteText(w, http.StatusInternalServerError, msgRemoveFailed)
				return
			}
			responses.Redirect(w, r, cartPath, http.StatusSeeOther)
			return
		}

		if _, err := svc.UpdateCartItem(ctx, backend.UpdateItemInput{CartID: session.ID(), ItemID: itemID, Quantity: quantity}); err != nil {
			logFailure(ctx, logg, "cart.update.failed", err)
			responses.WriteText(w, http.StatusInternalServerError, msgUpdateFailed)
			return
		}
		responses.Redirect(w, r, cartPath, http.StatusSeeOther)
	}
}

// CartRemove deletes an item from the visitor's cart.
func CartRemove(svc backend.CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := middleware.CartSessionFromContext(ctx)
		if !session.HasCart() {
			responses.WriteText(w, http.StatusNotFound, msgCartNotFound)
			return
		}
		if err := validators.ParseForm(r); err != nil {
			responses.WriteText(w, http.StatusBadRequest, msgInvalidForm)
			return
		}

		itemID := validators.FormValue(r, "itemId")
		if itemID == "" {
			responses.WriteText(w, http.StatusBadRequest, msgMissingItemID)
			return
		}

		if _, err := svc.RemoveCartItem(ctx, backend.RemoveItemInput{CartID: session.ID(), ItemID: itemID}); err != nil {
			logFailure(ctx, logg, "cart.remove.failed", err)
			responses.WriteText(w, http.StatusInternalServerError, msgRemoveFailed)
			return
		}
		responses.Redirect(w, r, cartPath, http.StatusSeeOther)
	}
}

// CartFetch returns the visitor's cart with display strings. Without a cart
// cookie, or when the backend is unavailable, an empty cart is returned.
func CartFetch(svc backend.CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := middleware.CartSessionFromContext(ctx)

		cart := backend.EmptyCart()
		if session.HasCart() {
			cart = svc.GetCart(ctx, session.ID())
		}

		responses.WriteSuccess(w, newCartView(cart, i18n.NewTranslator(middleware.LocaleFromContext(ctx))))
	}
}

func logFailure(ctx context.Context, logg *logger.Logger, msg string, err error) {
	if logg == nil {
		return
	}
	logg.Error(ctx, msg, err)
}
