package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresentField(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{nil, false},
		{"", false},
		{json.Number("0"), false},
		{json.Number("0.0"), false},
		{false, false},
		{[]any{}, false},
		{map[string]any{}, false},
		{"2024-03-01", true},
		{json.Number("20240101"), true},
		{true, true},
		{[]any{"x"}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, presentField(tt.v), "%#v", tt.v)
	}
}

func TestTextField(t *testing.T) {
	text, ok := textField(nil)
	assert.True(t, ok)
	assert.Nil(t, text)

	for v, want := range map[any]string{
		"555":                "555",
		json.Number("5.5"):   "5.5",
		true:                 "true",
		json.Number("20240"): "20240",
	} {
		text, ok := textField(v)
		if assert.True(t, ok) && assert.NotNil(t, text) {
			assert.Equal(t, want, *text)
		}
	}

	_, ok = textField(map[string]any{"city": "Oslo"})
	assert.False(t, ok)
	_, ok = textField([]any{"a"})
	assert.False(t, ok)
}
