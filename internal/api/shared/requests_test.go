package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title string  `json:"title" validate:"required,notblank,max=5"`
	Note  *string `json:"note"  validate:"omitempty,max=3"`
}

type selfValidating struct {
	ok bool
}

func (s selfValidating) Validate() error {
	if !s.ok {
		return assert.AnError
	}
	return nil
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body with unknown fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"abc","extra":true}`))

		var got sampleRequest
		require.NoError(t, DecodeJSON(req, &got))
		assert.Equal(t, "abc", got.Title)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)

		var got sampleRequest
		assert.ErrorIs(t, DecodeJSON(req, &got), ErrEmptyBody)
	})

	t.Run("zero-length body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

		var got sampleRequest
		assert.ErrorIs(t, DecodeJSON(req, &got), ErrEmptyBody)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))

		var got sampleRequest
		err := DecodeJSON(req, &got)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmptyBody)
	})
}

func TestValidateRequest(t *testing.T) {
	note := "abcd"

	tests := []struct {
		name    string
		input   interface{}
		wantErr bool
	}{
		{name: "valid", input: sampleRequest{Title: "abc"}},
		{name: "missing title", input: sampleRequest{}, wantErr: true},
		{name: "blank title", input: sampleRequest{Title: "   "}, wantErr: true},
		{name: "title too long", input: sampleRequest{Title: "abcdef"}, wantErr: true},
		{name: "note too long", input: sampleRequest{Title: "abc", Note: &note}, wantErr: true},
		{name: "self validating ok", input: selfValidating{ok: true}},
		{name: "self validating failure", input: selfValidating{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
