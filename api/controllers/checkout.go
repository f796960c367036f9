package controllers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/skibidoo/storefront/api/middleware"
	"github.com/skibidoo/storefront/api/responses"
	"github.com/skibidoo/storefront/api/validators"
	"github.com/skibidoo/storefront/internal/backend"
	"github.com/skibidoo/storefront/pkg/i18n"
	"github.com/skibidoo/storefront/pkg/logger"
	"github.com/skibidoo/storefront/pkg/types"
)

const (
	checkoutPath        = "/checkout"
	checkoutSuccessPath = "/checkout/success"
	cartPath            = "/cart"
)

type checkoutForm struct {
	Email          string         `form:"email" validate:"required,email"`
	Phone          string         `form:"phone"`
	Shipping       types.Address  `form:"shipping"`
	Billing        *types.Address `form:"billing"`
	ShippingMethod string         `form:"shippingMethod" validate:"required"`
	PaymentMethod  string         `form:"paymentMethod" validate:"required"`
}

func readAddress(r *http.Request, prefix string) types.Address {
	return types.Address{
		FirstName: validators.FormValue(r, prefix+"FirstName"),
		LastName:  validators.FormValue(r, prefix+"LastName"),
		Company:   validators.FormValue(r, prefix+"Company"),
		Street:    validators.FormValue(r, prefix+"Street"),
		Zip:       validators.FormValue(r, prefix+"Zip"),
		City:      validators.FormValue(r, prefix+"City"),
		Country:   validators.FormValue(r, prefix+"Country"),
	}
}

func readCheckoutForm(r *http.Request) checkoutForm {
	form := checkoutForm{
		Email:          validators.FormValue(r, "email"),
		Phone:          validators.FormValue(r, "phone"),
		Shipping:       readAddress(r, "shipping"),
		ShippingMethod: validators.FormValue(r, "shippingMethod"),
		PaymentMethod:  validators.FormValue(r, "paymentMethod"),
	}
	if validators.FormValue(r, "differentBilling") == "on" {
		billing := readAddress(r, "billing")
		form.Billing = &billing
	}
	return form
}

func (f checkoutForm) input(cartID string) backend.CheckoutInput {
	return backend.CheckoutInput{
		CartID:          cartID,
		Email:           f.Email,
		Phone:           f.Phone,
		ShippingAddress: f.Shipping,
		BillingAddress:  f.Billing,
		ShippingMethod:  f.ShippingMethod,
		PaymentMethod:   f.PaymentMethod,
	}
}

// Checkout submits the checkout form as an order. Every outcome is a 302:
// back to the cart without a cart cookie, to the payment provider or the
// confirmation page on success, or back to the form with an error message.
func Checkout(svc backend.CheckoutService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := middleware.CartSessionFromContext(ctx)
		if !session.HasCart() {
			responses.Redirect(w, r, cartPath, http.StatusFound)
			return
		}

		t := i18n.NewTranslator(middleware.LocaleFromContext(ctx))
		if logg != nil {
			ctx = logg.WithOperation(ctx, "checkout")
		}

		if err := validators.ParseForm(r); err != nil {
			redirectWithError(w, r, t("checkout.invalid", nil))
			return
		}
		form := readCheckoutForm(r)
		if err := validators.Struct(&form); err != nil {
			if logg != nil {
				logg.Warn(ctx, "checkout.invalid_form")
			}
			redirectWithError(w, r, t("checkout.invalid", nil))
			return
		}

		result, err := svc.Checkout(ctx, form.input(session.ID()))
		if err != nil || result == nil {
			redirectWithError(w, r, checkoutErrorMessage(ctx, logg, err, t))
			return
		}

		session.Clear(w)

		if target, ok := paymentRedirect(result.PaymentURL); ok {
			responses.Redirect(w, r, target, http.StatusFound)
			return
		}
		responses.Redirect(w, r, checkoutSuccessPath+"?order="+encodeComponent(result.OrderNumber), http.StatusFound)
	}
}

func checkoutErrorMessage(ctx context.Context, logg *logger.Logger, err error, t i18n.Translator) string {
	if msg, ok := backend.RejectionMessage(err); ok {
		if logg != nil {
			logg.Warn(logg.WithField(ctx, "reason", msg), "checkout.rejected")
		}
		if msg == "" {
			return t("checkout.failed", nil)
		}
		return msg
	}
	if logg != nil {
		logg.Error(ctx, "checkout.failed", err)
	}
	return t("checkout.error", nil)
}

// paymentRedirect accepts only absolute http(s) URLs.
func paymentRedirect(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.String(), true
}

func redirectWithError(w http.ResponseWriter, r *http.Request, msg string) {
	responses.Redirect(w, r, checkoutPath+"?error="+encodeComponent(msg), http.StatusFound)
}

// encodeComponent escapes a query value with spaces as %20 rather than "+".
func encodeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
