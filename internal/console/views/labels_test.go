package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	cases := map[string]string{
		"IN_TRANSIT":       "In Transit",
		"OUT_FOR_DELIVERY": "Out For Delivery",
		"ADMIN":            "Admin",
		"":                 "-",
	}
	for in, want := range cases {
		assert.Equal(t, want, StatusLabel(in), in)
	}
}

func TestCountAndRating(t *testing.T) {
	assert.Equal(t, "1,234,567", Count(1234567))
	assert.Equal(t, "0", Count(0))
	assert.Equal(t, "3.4 / 5", Rating(3.4))
}

func TestSelectFieldMarksCurrent(t *testing.T) {
	var b strings.Builder
	err := selectField("Status", "status", "DELIVERED", []string{"IN_TRANSIT", "DELIVERED"}).Render(&b)
	assert.NoError(t, err)
	assert.Contains(t, b.String(), `<option value="DELIVERED" selected>Delivered</option>`)
	assert.Contains(t, b.String(), `<option value="IN_TRANSIT">In Transit</option>`)
}
