package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleID(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "number", body: `{"id":550}`, want: "550"},
		{name: "string", body: `{"id":"1399"}`, want: "1399"},
		{name: "null", body: `{"id":null}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
		{name: "fraction", body: `{"id":1.5}`, wantErr: true},
		{name: "object", body: `{"id":{}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req AddEntryRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(req.ID))
		})
	}
}
