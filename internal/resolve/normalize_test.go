package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"AP-20", "ap20"},
		{"AP 20", "ap20"},
		{"ap20", "ap20"},
		{"  Graphics  Card ", "graphicscard"},
		{"Red Rebel ice pick", "redrebelicepick"},
		{"グラボ", "グラボ"},
		{"レドックス 静脈", "レドックス静脈"},
		{"", ""},
		{"   ", ""},
		{"\t-\n", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "Normalize(%q)", c.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"AP-20", "Graphics card", "グラボ", "T H I C C Item case", ""}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("103"))
	assert.True(t, isDigits("7"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("ak74"))
	assert.False(t, isDigits("7.62"))
}
