package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/skibidoo/storefront/pkg/errors"
)

const defaultFormValueLength = 256

// ParseForm parses urlencoded and multipart bodies alike.
func ParseForm(r *http.Request) error {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(1 << 20)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body")
	}
	return nil
}

// FormValue returns the sanitized value of a posted field.
func FormValue(r *http.Request, key string) string {
	return SanitizeString(r.FormValue(key), defaultFormValueLength)
}

// ParseFormInt reads an integer field. A blank or missing field yields
// defaultVal.
func ParseFormInt(r *http.Request, key string, defaultVal int) (int, error) {
	raw := FormValue(r, key)
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "form field must be numeric").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
