package model

// DefaultLocale is used by callers that receive an empty locale code.
const DefaultLocale = "en"

// SupportedLocales lists the locales every catalog record is expected to
// carry a translation for.  Resolution itself never validates against it.
var SupportedLocales = []string{"en", "vi"}

// NotAvailable is the placeholder shown for a missing name or join.
const NotAvailable = "N/A"

// Localized is implemented by every per-locale translation entry.
type Localized interface {
	LocaleCode() string
}

// Translate returns the entry whose locale matches, or the first entry when
// no entry matches.  The boolean is false only for an empty list.
func Translate[T Localized](list []T, locale string) (T, bool) {
	for _, t := range list {
		if t.LocaleCode() == locale {
			return t, true
		}
	}
	if len(list) > 0 {
		return list[0], true
	}
	var zero T
	return zero, false
}

// translateExact returns only an exact locale match.
func translateExact[T Localized](list []T, locale string) (T, bool) {
	for _, t := range list {
		if t.LocaleCode() == locale {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Bilingual carries one display string per supported locale.
type Bilingual struct {
	EN string `json:"en"`
	VI string `json:"vi"`
}

// Contains reports whether either locale contains q.  q must already be
// lower-cased.
func (b Bilingual) Contains(q string) bool {
	return containsFold(b.EN, q) || containsFold(b.VI, q)
}

// BilingualOf extracts field from the en and vi entries.  A locale without
// an entry, or with an empty value, becomes NotAvailable.
func BilingualOf[T Localized](list []T, field func(T) string) Bilingual {
	out := Bilingual{EN: NotAvailable, VI: NotAvailable}
	if t, ok := translateExact(list, "en"); ok && field(t) != "" {
		out.EN = field(t)
	}
	if t, ok := translateExact(list, "vi"); ok && field(t) != "" {
		out.VI = field(t)
	}
	return out
}

// MissingBilingual is the value used when the parent record itself is missing.
func MissingBilingual() Bilingual {
	return Bilingual{EN: NotAvailable, VI: NotAvailable}
}
