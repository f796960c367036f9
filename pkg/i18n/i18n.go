// Package i18n provides storefront translations for the supported locales.
package i18n

import (
	"embed"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Locale is a two-letter storefront language code.
type Locale string

const (
	LocaleDE Locale = "de"
	LocaleEN Locale = "en"

	DefaultLocale = LocaleDE
)

var SupportedLocales = []Locale{LocaleDE, LocaleEN}

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	catalogs     = mustLoadCatalogs()
	placeholder  = regexp.MustCompile(`\{(\w+)\}`)
	pathLocaleRe = regexp.MustCompile(`^/([a-z]{2})(/|$)`)
)

func mustLoadCatalogs() map[Locale]map[string]any {
	out := make(map[Locale]map[string]any, len(SupportedLocales))
	for _, locale := range SupportedLocales {
		raw, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.yaml", locale))
		if err != nil {
			panic(fmt.Sprintf("i18n: read %s catalog: %v", locale, err))
		}
		var tree map[string]any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			panic(fmt.Sprintf("i18n: parse %s catalog: %v", locale, err))
		}
		out[locale] = tree
	}
	return out
}

// IsSupported reports whether the locale has a catalog.
func (l Locale) IsSupported() bool {
	_, ok := catalogs[l]
	return ok
}

// ParseLocale normalizes raw input, falling back to the default locale.
func ParseLocale(value string) Locale {
	l := Locale(strings.ToLower(strings.TrimSpace(value)))
	if l.IsSupported() {
		return l
	}
	return DefaultLocale
}

// T resolves a dotted key such as "cart.added". Missing keys and non-string
// leaves resolve to the key itself. {name} placeholders are replaced from
// params; placeholders without a param are left as-is.
func T(locale Locale, key string, params map[string]any) string {
	tree, ok := catalogs[locale]
	if !ok {
		tree = catalogs[DefaultLocale]
	}

	var value any = tree
	for _, part := range strings.Split(key, ".") {
		node, ok := value.(map[string]any)
		if !ok {
			return key
		}
		value, ok = node[part]
		if !ok {
			return key
		}
	}

	text, ok := value.(string)
	if !ok {
		return key
	}
	if len(params) == 0 {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := params[name]; ok && v != nil {
			return fmt.Sprint(v)
		}
		return match
	})
}

// Translator is T bound to a locale.
type Translator func(key string, params map[string]any) string

func NewTranslator(locale Locale) Translator {
	return func(key string, params map[string]any) string {
		return T(locale, key, params)
	}
}

// LocaleFromHeader picks the locale from an Accept-Language header. Only the
// first listed entry is considered and q-weights are ignored. Unsupported or
// malformed headers yield the default locale.
func LocaleFromHeader(acceptLanguage string) Locale {
	first, _, _ := strings.Cut(acceptLanguage, ",")
	first, _, _ = strings.Cut(first, ";")
	first = strings.TrimSpace(first)
	if first == "" || first == "*" {
		return DefaultLocale
	}
	tag, err := language.Parse(first)
	if err != nil {
		return DefaultLocale
	}
	base, _ := tag.Base()
	l := Locale(strings.ToLower(base.String()))
	if l.IsSupported() {
		return l
	}
	return DefaultLocale
}

// LocaleFromPath extracts a locale prefix such as "/en/products".
func LocaleFromPath(path string) (Locale, bool) {
	match := pathLocaleRe.FindStringSubmatch(path)
	if match == nil {
		return "", false
	}
	l := Locale(match[1])
	if !l.IsSupported() {
		return "", false
	}
	return l, true
}
