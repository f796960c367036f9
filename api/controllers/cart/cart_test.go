package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/skibidoo/storefront/api/middleware"
	"github.com/skibidoo/storefront/internal/backend"
	"github.com/skibidoo/storefront/pkg/i18n"
)

type stubCartService struct {
	cart  *backend.Cart
	err   error
	calls int

	lastAdd    backend.AddItemInput
	lastUpdate backend.UpdateItemInput
	lastRemove backend.RemoveItemInput
	removed    bool
	updated    bool
	fetchedID  string
}

func (s *stubCartService) GetCart(ctx context.Context, cartID string) backend.Cart {
	s.fetchedID = cartID
	if s.cart == nil {
		return backend.EmptyCart()
	}
	return *s.cart
}

func (s *stubCartService) AddToCart(ctx context.Context, input backend.AddItemInput) (*backend.Cart, error) {
	s.calls++
	s.lastAdd = input
	return s.cart, s.err
}

func (s *stubCartService) UpdateCartItem(ctx context.Context, input backend.UpdateItemInput) (*backend.Cart, error) {
	s.calls++
	s.updated = true
	s.lastUpdate = input
	return s.cart, s.err
}

func (s *stubCartService) RemoveCartItem(ctx context.Context, input backend.RemoveItemInput) (*backend.Cart, error) {
	s.calls++
	s.removed = true
	s.lastRemove = input
	return s.cart, s.err
}

var testPolicy = middleware.CookiePolicy{Name: "cartId", MaxAge: 30 * 24 * time.Hour}

// serve runs handler behind the cart session and locale middleware.
func serve(handler http.Handler, form url.Values, cartID string, locale i18n.Locale) *httptest.ResponseRecorder {
	chain := middleware.CartSessionMiddleware(testPolicy, nil)(handler)
	chain = middleware.Locale(locale, nil)(chain)

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cartID != "" {
		req.AddCookie(&http.Cookie{Name: "cartId", Value: cartID})
	}
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	return rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestCartAddNewCartSetsCookie(t *testing.T) {
	svc := &stubCartService{cart: &backend.Cart{ID: "cart-new", ItemCount: 2}}

	rec := serve(CartAdd(svc, nil), url.Values{"productId": {"p1"}, "quantity": {"2"}}, "", i18n.LocaleDE)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "2" {
		t.Fatalf("expected body 2, got %q", body)
	}
	if svc.lastAdd.CartID != nil {
		t.Fatalf("expected no cart id for new cart, got %v", *svc.lastAdd.CartID)
	}
	if svc.lastAdd.ProductID != "p1" || svc.lastAdd.Quantity != 2 {
		t.Fatalf("unexpected add input %+v", svc.lastAdd)
	}
	cookie := findCookie(rec, "cartId")
	if cookie == nil || cookie.Value != "cart-new" {
		t.Fatalf("expected cartId cookie, got %+v", cookie)
	}
	if !cookie.HttpOnly || cookie.Path != "/" || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie attributes %+v", cookie)
	}

	var trigger struct {
		ShowToast struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"showToast"`
	}
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &trigger); err != nil {
		t.Fatalf("decode HX-Trigger: %v", err)
	}
	if trigger.ShowToast.Message != "Produkt hinzugefuegt" || trigger.ShowToast.Type != "success" {
		t.Fatalf("unexpected toast %+v", trigger.ShowToast)
	}
}

func TestCartAddExistingCartKeepsCookie(t *testing.T) {
	svc := &stubCartService{cart: &backend.Cart{ID: "cart-1", ItemCount: 5}}

	rec := serve(CartAdd(svc, nil), url.Values{"productId": {"p1"}}, "cart-1", i18n.LocaleEN)

	if rec.Body.String() != "5" {
		t.Fatalf("expected body 5, got %q", rec.Body.String())
	}
	if svc.lastAdd.CartID == nil || *svc.lastAdd.CartID != "cart-1" {
		t.Fatalf("expected cart id to be forwarded")
	}
	if svc.lastAdd.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", svc.lastAdd.Quantity)
	}
	if findCookie(rec, "cartId") != nil {
		t.Fatalf("expected no new cookie for existing cart")
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "Product added") {
		t.Fatalf("expected english toast, got %q", rec.Header().Get("HX-Trigger"))
	}
}

func TestCartAddRejectsBadInputWithoutBackendCall(t *testing.T) {
	cases := map[string]url.Values{
		"missing product": {"quantity": {"1"}},
		"zero quantity":   {"productId": {"p1"}, "quantity": {"0"}},
		"bad quantity":    {"productId": {"p1"}, "quantity": {"viele"}},
	}
	for name, form := range cases {
		t.Run(name, func(t *testing.T) {
			svc := &stubCartService{}
			rec := serve(CartAdd(svc, nil), form, "", i18n.LocaleDE)

			if rec.Code != http.StatusOK || rec.Body.String() != "0" {
				t.Fatalf("expected 200 \"0\", got %d %q", rec.Code, rec.Body.String())
			}
			if svc.calls != 0 {
				t.Fatalf("backend should not be called")
			}
		})
	}
}

func TestCartAddBackendFailureIsNeutral(t *testing.T) {
	svc := &stubCartService{err: errors.New("backend down")}

	rec := serve(CartAdd(svc, nil), url.Values{"productId": {"p1"}}, "", i18n.LocaleDE)

	if rec.Code != http.StatusOK || rec.Body.String() != "0" {
		t.Fatalf("expected 200 \"0\", got %d %q", rec.Code, rec.Body.String())
	}
	if findCookie(rec, "cartId") != nil {
		t.Fatalf("no cookie expected on failure")
	}
	if rec.Header().Get("HX-Trigger") != "" {
		t.Fatalf("no toast expected on failure")
	}
}

func TestCartUpdateWithoutCookie(t *testing.T) {
	svc := &stubCartService{}

	rec := serve(CartUpdate(svc, nil), url.Values{"itemId": {"i1"}, "quantity": {"0"}}, "", i18n.LocaleDE)

	if rec.Code != http.StatusNotFound || rec.Body.String() != "Cart not found" {
		t.Fatalf("expected 404 Cart not found, got %d %q", rec.Code, rec.Body.String())
	}
	if svc.calls != 0 {
		t.Fatalf("backend should not be called")
	}
}

func TestCartUpdateValidation(t *testing.T) {
	cases := []struct {
		name string
		form url.Values
		want string
	}{
		{name: "missing item", form: url.Values{"quantity": {"2"}}, want: "Missing itemId"},
		{name: "bad quantity", form: url.Values{"itemId": {"i1"}, "quantity": {"x"}}, want: "Invalid quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubCartService{}
			rec := serve(CartUpdate(svc, nil), tc.form, "cart-1", i18n.LocaleDE)

			if rec.Code != http.StatusBadRequest || rec.Body.String() != tc.want {
				t.Fatalf("expected 400 %q, got %d %q", tc.want, rec.Code, rec.Body.String())
			}
			if svc.calls != 0 {
				t.Fatalf("backend should not be called")
			}
		})
	}
}

func TestCartUpdateRedirects(t *testing.T) {
	svc := &stubCartService{cart: &backend.Cart{ID: "cart-1"}}

	rec := serve(CartUpdate(svc, nil), url.Values{"itemId": {"i1"}, "quantity": {"3"}}, "cart-1", i18n.LocaleDE)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/cart" {
		t.Fatalf("expected 303 /cart, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if !svc.updated || svc.removed {
		t.Fatalf("expected update call only")
	}
	if svc.lastUpdate != (backend.UpdateItemInput{CartID: "cart-1", ItemID: "i1", Quantity: 3}) {
		t.Fatalf("unexpected update input %+v", svc.lastUpdate)
	}
}

func TestCartUpdateZeroQuantityRemoves(t *testing.T) {
	for _, qty := range []string{"0", "-1", ""} {
		svc := &stubCartService{cart: &backend.Cart{ID: "cart-1"}}
		form := url.Values{"itemId": {"i1"}}
		if qty != "" {
			form.Set("quantity", qty)
		}

		rec := serve(CartUpdate(svc, nil), form, "cart-1", i18n.LocaleDE)

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("quantity %q: expected 303, got %d", qty, rec.Code)
		}
		if !svc.removed || svc.updated {
			t.Fatalf("quantity %q: expected remove call only", qty)
		}
	}
}

func TestCartUpdateFailures(t *testing.T) {
	svc := &stubCartService{err: errors.New("backend down")}
	rec := serve(CartUpdate(svc, nil), url.Values{"itemId": {"i1"}, "quantity": {"2"}}, "cart-1", i18n.LocaleDE)
	if rec.Code != http.StatusInternalServerError || rec.Body.String() != "Failed to update cart" {
		t.Fatalf("expected 500 update failure, got %d %q", rec.Code, rec.Body.String())
	}

	svc = &stubCartService{err: errors.New("backend down")}
	rec = serve(CartUpdate(svc, nil), url.Values{"itemId": {"i1"}, "quantity": {"0"}}, "cart-1", i18n.LocaleDE)
	if rec.Code != http.StatusInternalServerError || rec.Body.String() != "Failed to remove item" {
		t.Fatalf("expected 500 remove failure, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestCartRemove(t *testing.T) {
	svc := &stubCartService{cart: &backend.Cart{ID: "cart-1"}}

	rec := serve(CartRemove(svc, nil), url.Values{"itemId": {"i1"}}, "cart-1", i18n.LocaleDE)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/cart" {
		t.Fatalf("expected 303 /cart, got %d", rec.Code)
	}
	if svc.lastRemove != (backend.RemoveItemInput{CartID: "cart-1", ItemID: "i1"}) {
		t.Fatalf("unexpected remove input %+v", svc.lastRemove)
	}
}

func TestCartRemoveErrors(t *testing.T) {
	rec := serve(CartRemove(&stubCartService{}, nil), url.Values{"itemId": {"i1"}}, "", i18n.LocaleDE)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without cookie, got %d", rec.Code)
	}

	rec = serve(CartRemove(&stubCartService{}, nil), url.Values{}, "cart-1", i18n.LocaleDE)
	if rec.Code != http.StatusBadRequest || rec.Body.String() != "Missing itemId" {
		t.Fatalf("expected 400 Missing itemId, got %d %q", rec.Code, rec.Body.String())
	}

	rec = serve(CartRemove(&stubCartService{err: errors.New("down")}, nil), url.Values{"itemId": {"i1"}}, "cart-1", i18n.LocaleDE)
	if rec.Code != http.StatusInternalServerError || rec.Body.String() != "Failed to remove item" {
		t.Fatalf("expected 500, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestCartFetch(t *testing.T) {
	svc := &stubCartService{cart: &backend.Cart{
		ID:        "cart-1",
		Items:     []backend.CartItem{{ID: "i1", ProductName: "Kaffee", Quantity: 2, UnitPrice: 1000, TotalPrice: 2000}},
		Subtotal:  2000,
		Shipping:  495,
		Total:     2495,
		ItemCount: 2,
	}}

	chain := middleware.CartSessionMiddleware(testPolicy, nil)(CartFetch(svc))
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "cartId", Value: "cart-1"})
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data CartView `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	view := envelope.Data
	if svc.fetchedID != "cart-1" {
		t.Fatalf("expected cart id to be forwarded, got %q", svc.fetchedID)
	}
	if view.Total != 2495 || view.FormattedTotal != "24,95\u00a0€" {
		t.Fatalf("unexpected totals %d %q", view.Total, view.FormattedTotal)
	}
	if view.ItemCountLabel != "2 Artikel" {
		t.Fatalf("unexpected item count label %q", view.ItemCountLabel)
	}
	if len(view.Items) != 1 || view.Items[0].FormattedTotalPrice != "20,00\u00a0€" {
		t.Fatalf("unexpected items %+v", view.Items)
	}
}

func TestCartFetchWithoutCookieIsEmpty(t *testing.T) {
	svc := &stubCartService{}
	chain := middleware.CartSessionMiddleware(testPolicy, nil)(CartFetch(svc))

	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	var envelope struct {
		Data CartView `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Data.Empty || envelope.Data.EmptyMessage != "Dein Warenkorb ist leer" {
		t.Fatalf("expected empty cart view, got %+v", envelope.Data)
	}
	if svc.fetchedID != "" {
		t.Fatalf("backend should not be asked without a cart cookie")
	}
}
