package model

// F&B item types.
const (
	FnbPopcorn = "popcorn"
	FnbDrink   = "drink"
	FnbCombo   = "combo"
	FnbSnack   = "snack"
)

// FnbTranslation is the per-locale text of a food or beverage item.
type FnbTranslation struct {
	Locale      string `json:"locale"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (t FnbTranslation) LocaleCode() string { return t.Locale }

// FnbItem is a food or beverage product sold alongside tickets.
type FnbItem struct {
	ID           int64            `json:"id"`
	Code         string           `json:"code"`
	Translations []FnbTranslation `json:"translations"`
	Type         string           `json:"type"`
	Price        int64            `json:"price"`
	Size         string           `json:"size"` // S, M or L
	Image        string           `json:"image"`
}

// Localized returns the item text for locale; missing translations resolve
// to empty strings.
func (f FnbItem) Localized(locale string) FnbTranslation {
	t, _ := Translate(f.Translations, locale)
	return t
}
