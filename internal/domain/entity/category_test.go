package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Electronics", want: "electronics"},
		{name: "spaces", in: "Home & Kitchen", want: "home-kitchen"},
		{name: "punctuation and apostrophes", in: "Men's & Boys' Wear!", want: "mens-boys-wear"},
		{name: "underscores collapse", in: "snake_case_name", want: "snake-case-name"},
		{name: "leading and trailing junk", in: "  --Fancy Stuff--  ", want: "fancy-stuff"},
		{name: "mixed runs", in: "A  -  B", want: "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_OutputIsAlwaysValid(t *testing.T) {
	inputs := []string{"Electronics", "Men's & Boys' Wear!", "Café au Lait", "100% Cotton (Soft)"}
	for _, in := range inputs {
		slug := Slugify(in)
		if slug == "" {
			continue
		}
		assert.True(t, ValidSlug(slug), "Slugify(%q) = %q is not a valid slug", in, slug)
	}
}

func TestCategory_MatchesIDOrSlug(t *testing.T) {
	c := Category{ID: 42, Name: "Fashion", Slug: "fashion"}

	assert.True(t, c.MatchesIDOrSlug("fashion"))
	assert.True(t, c.MatchesIDOrSlug("42"))
	assert.False(t, c.MatchesIDOrSlug("electronics"))
	assert.False(t, c.MatchesIDOrSlug("7"))
}
