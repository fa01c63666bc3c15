package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/targetform/pkg/requestid"
)

// serve runs Middleware with the given X-Request-ID (omitted when empty) and
// returns the ID seen by the handler and the echoed response header.
func serve(t *testing.T, header string) (fromCtx, echoed string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/targets", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return fromCtx, rec.Header().Get(requestid.Header)
}

func TestMiddlewareGeneratesID(t *testing.T) {
	t.Parallel()

	fromCtx, echoed := serve(t, "")
	_, err := uuid.Parse(fromCtx)
	require.NoError(t, err, "generated id is a uuid")
	assert.Equal(t, fromCtx, echoed)

	other, _ := serve(t, "")
	assert.NotEqual(t, fromCtx, other)
}

func TestMiddlewareHeaderValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		id    string
		reuse bool
	}{
		{"uuid", "550e8400-e29b-41d4-a716-446655440000", true},
		{"single char", "a", true},
		{"letters digits hyphen underscore", "Target_Form-42", true},
		{"max length", strings.Repeat("a", 128), true},
		{"one over max length", strings.Repeat("a", 129), false},
		{"space", "target form", false},
		{"dot", "target.form", false},
		{"slash", "targets/1", false},
		{"colon", "req:1", false},
		{"markup", "<script>", false},
		{"newline", "req\n1", false},
		{"non ascii letter", "réq", false},
		{"non ascii digit", "req١", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fromCtx, echoed := serve(t, tt.id)
			assert.Equal(t, fromCtx, echoed)
			if tt.reuse {
				assert.Equal(t, tt.id, fromCtx)
				return
			}
			assert.NotEqual(t, tt.id, fromCtx)
			_, err := uuid.Parse(fromCtx)
			assert.NoError(t, err, "replaced by a generated uuid")
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "test-id")
	assert.Equal(t, "test-id", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()
	extract := requestid.LoggerExtractor()

	attr, ok := extract(requestid.WithContext(context.Background(), "req-1"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-1", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
