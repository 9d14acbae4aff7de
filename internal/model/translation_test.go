package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	list := []MovieTranslation{
		{Locale: "vi", Name: "Hành Tinh Cát"},
		{Locale: "en", Name: "Dune"},
	}

	tests := []struct {
		name   string
		list   []MovieTranslation
		locale string
		want   string
		ok     bool
	}{
		{name: "exact en", list: list, locale: "en", want: "Dune", ok: true},
		{name: "exact vi", list: list, locale: "vi", want: "Hành Tinh Cát", ok: true},
		{name: "unknown falls back to first", list: list, locale: "fr", want: "Hành Tinh Cát", ok: true},
		{name: "empty locale falls back to first", list: list, locale: "", want: "Hành Tinh Cát", ok: true},
		{name: "empty list", list: nil, locale: "en", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.list, tt.locale)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestEntityLocalizedFallbacks(t *testing.T) {
	m := Movie{ID: 1}
	assert.Equal(t, MovieTranslation{}, m.Localized("en"))

	c := Cinema{Translations: []CinemaTranslation{{Locale: "vi", Name: "CGV Bà Triệu"}}}
	assert.Equal(t, "CGV Bà Triệu", c.Localized("en").Name)

	g := Genre{}
	name, ok := g.Name("vi")
	assert.False(t, ok)
	assert.Empty(t, name)

	e := Event{Translations: []EventTranslation{{Locale: "en", Name: "Happy Tuesday"}}}
	tr, ok := e.Localized("vi")
	assert.True(t, ok)
	assert.Equal(t, "Happy Tuesday", tr.Name)
}

func TestBilingualOf(t *testing.T) {
	name := func(t GenreTranslation) string { return t.Name }

	b := BilingualOf([]GenreTranslation{{Locale: "en", Name: "Action"}, {Locale: "vi", Name: "Hành động"}}, name)
	assert.Equal(t, Bilingual{EN: "Action", VI: "Hành động"}, b)

	b = BilingualOf([]GenreTranslation{{Locale: "en", Name: "Action"}}, name)
	assert.Equal(t, Bilingual{EN: "Action", VI: NotAvailable}, b)

	b = BilingualOf([]GenreTranslation{{Locale: "vi", Name: ""}}, name)
	assert.Equal(t, MissingBilingual(), b)

	assert.True(t, Bilingual{EN: "Action", VI: "Hành động"}.Contains("hành"))
	assert.False(t, Bilingual{EN: "Action", VI: "Hành động"}.Contains("drama"))
}

func TestNewProfile(t *testing.T) {
	u := User{ID: 3, Username: "kaydi", Role: RoleMember, Tier: TierMember}
	p := NewProfile(u, &Membership{UserID: 3, Points: 120, TotalSpent: 1_200_000})
	assert.Equal(t, int64(120), p.Points)
	assert.Equal(t, int64(1_200_000), p.TotalSpent)
	assert.Equal(t, "kaydi", p.Username)

	p = NewProfile(u, nil)
	assert.Zero(t, p.Points)
	assert.Zero(t, p.TotalSpent)
}
