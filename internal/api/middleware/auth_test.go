package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adoptme/adoptme-api/internal/service/auth"
)

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing header", "", "", true},
		{"wrong scheme", "Basic dXNlcjpwdw==", "", true},
		{"bare token", "abc.def.ghi", "", true},
		{"lowercase scheme", "bearer abc.def.ghi", "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			token, err := ExtractBearerToken(req)
			if tc.wantErr {
				assert.ErrorIs(t, err, auth.ErrMissingToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, token)
		})
	}
}
