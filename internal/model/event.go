package model

// Event type values.
const (
	EventDiscount         = "discount"
	EventCombo            = "combo"
	EventSpecialScreening = "special_screening"
	EventGiveaway         = "giveaway"
)

// Promotion status values shared by events and vouchers.
const (
	PromoActive   = "active"
	PromoInactive = "inactive"
	PromoExpired  = "expired"
)

// EventTranslation is the per-locale text of an event.
type EventTranslation struct {
	Locale      string `json:"locale"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Terms       string `json:"terms"`
}

func (t EventTranslation) LocaleCode() string { return t.Locale }

// Event is a promotion or special screening.  Empty ApplicableCinemas or
// ApplicableMovies means "all".
type Event struct {
	ID                int64              `json:"id"`
	Code              string             `json:"code"`
	Translations      []EventTranslation `json:"translations"`
	Type              string             `json:"type"`
	StartDate         string             `json:"start_date"`
	EndDate           string             `json:"end_date"`
	Status            string             `json:"status"`
	Image             string             `json:"image"`
	ApplicableCinemas []int64            `json:"applicable_cinemas,omitempty"`
	ApplicableMovies  []int64            `json:"applicable_movies,omitempty"`
	RequiredTier      string             `json:"required_tier,omitempty"`
}

// Localized returns the event text for locale.  ok is false when the event
// has no translations.
func (e Event) Localized(locale string) (EventTranslation, bool) {
	return Translate(e.Translations, locale)
}

// Voucher types.
const (
	VoucherPercent = "percent"
	VoucherFixed   = "fixed"
)

// VoucherTranslation is the per-locale description of a voucher.
type VoucherTranslation struct {
	Locale      string `json:"locale"`
	Description string `json:"description"`
}

func (t VoucherTranslation) LocaleCode() string { return t.Locale }

// Voucher is a discount code.  Value is a percentage for percent vouchers
// and an amount in VND for fixed ones.
type Voucher struct {
	ID              int64                `json:"id"`
	Code            string               `json:"code"`
	Type            string               `json:"type"`
	Value           int64                `json:"value"`
	MaxDiscount     int64                `json:"max_discount,omitempty"`
	MinOrder        int64                `json:"min_order,omitempty"`
	ValidFrom       string               `json:"valid_from"`
	ValidTo         string               `json:"valid_to"`
	UsageLimit      int                  `json:"usage_limit,omitempty"`
	Status          string               `json:"status"`
	Translations    []VoucherTranslation `json:"translations"`
	ApplicableTiers []string             `json:"applicable_tiers,omitempty"`
}
