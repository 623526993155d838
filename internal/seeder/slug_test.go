package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Main Warehouse", "main-warehouse"},
		{"Terms & Conditions", "terms-conditions"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Already-a-slug", "already-a-slug"},
		{"Multiple---dashes__and  spaces", "multiple-dashes-and-spaces"},
		{"Größe XL", "gr-e-xl"},
		{"100% Cotton", "100-cotton"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Slugify(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Slugify(got), "slugify is idempotent")
			assert.Regexp(t, `^([a-z0-9]+(-[a-z0-9]+)*)?$`, got)
		})
	}
}

func TestSlugOr(t *testing.T) {
	assert.Equal(t, "custom", slugOr("custom", "Some Name"))
	assert.Equal(t, "some-name", slugOr("", "Some Name"))
}
