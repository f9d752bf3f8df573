package tenant_test

import (
	"regexp"
	"testing"

	"go-kafe/internal/tenant"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Kopi Kenangan", "kopi-kenangan"},
		{"Kopi Kenangan 2", "kopi-kenangan-2"},
		{"  Kopi   Tuku  ", "kopi-tuku"},
		{"Kopi--Tuku", "kopi-tuku"},
		{"-Kopi-", "kopi"},
		{"Warung Kopi & Teh", "warung-kopi-teh"},
		{"Café Ōlé", "caf-l"},
		{"Janji Jiwa's", "janji-jiwas"},
		{"a\tb", "ab"},
		{"Kopi\nTuku", "kopituku"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, tenant.Slugify(tc.in))
		})
	}
}

func TestSlugify_Shape(t *testing.T) {
	shape := regexp.MustCompile(`^([a-z0-9]+(-[a-z0-9]+)*)?$`)
	inputs := []string{
		"Kopi Kenangan", "\tTab\tSeparated\t", "UPPER lower 123", "a - b - c",
		"emoji ☕ cafe", "--", "x", "Über Straße 9", "semi;colon,comma.dot",
	}
	for _, in := range inputs {
		out := tenant.Slugify(in)
		assert.Regexp(t, shape, out, "input %q", in)
		assert.Equal(t, out, tenant.Slugify(out), "slug of a slug is stable for %q", in)
	}
}
