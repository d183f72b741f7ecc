package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumber_LenientDecoding(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json number", `{"quantity": 2}`, "2"},
		{"decimal number", `{"quantity": 99.99}`, "99.99"},
		{"numeric string", `{"quantity": "3.5"}`, "3.5"},
		{"padded numeric string", `{"quantity": " 7 "}`, "7"},
		{"empty string", `{"quantity": ""}`, "0"},
		{"garbage string", `{"quantity": "abc"}`, "0"},
		{"null", `{"quantity": null}`, "0"},
		{"missing", `{}`, "0"},
		{"boolean", `{"quantity": true}`, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var item LineItemPayload
			require.NoError(t, json.Unmarshal([]byte(tc.in), &item))
			assert.Equal(t, tc.want, item.Quantity.String())
		})
	}
}

func TestFlexNumber_FullItemPayload(t *testing.T) {
	var item LineItemPayload
	require.NoError(t, json.Unmarshal([]byte(`{"description":"Design","quantity":2,"rate":"500"}`), &item))
	assert.Equal(t, "Design", item.Description)
	assert.Equal(t, "2", item.Quantity.String())
	assert.Equal(t, "500", item.Rate.String())
}
