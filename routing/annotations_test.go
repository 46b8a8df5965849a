package routing

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Fixture controllers ----

type annVerbs struct{}

type annPaths struct{}

type annAuth struct{}

func TestVerbBuilders_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		register   func()
		member     string
		wantMethod string
	}{
		{
			name:       "Get",
			register:   func() { Get(&annVerbs{}, "GetIt", "/it") },
			member:     "GetIt",
			wantMethod: http.MethodGet,
		},
		{
			name:       "Post",
			register:   func() { Post(&annVerbs{}, "PostIt", "/it") },
			member:     "PostIt",
			wantMethod: http.MethodPost,
		},
		{
			name:       "Put",
			register:   func() { Put(&annVerbs{}, "PutIt", "/it") },
			member:     "PutIt",
			wantMethod: http.MethodPut,
		},
		{
			name:       "Delete",
			register:   func() { Delete(&annVerbs{}, "DeleteIt", "/it") },
			member:     "DeleteIt",
			wantMethod: http.MethodDelete,
		},
		{
			name:       "Patch",
			register:   func() { Patch(&annVerbs{}, "PatchIt", "/it") },
			member:     "PatchIt",
			wantMethod: http.MethodPatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.register()

			route, ok := routeFor(&annVerbs{}, tt.member)
			require.True(t, ok)
			assert.Equal(t, tt.wantMethod, route.Method)
			assert.Equal(t, "/it", route.Path)
			assert.False(t, route.AuthRequired)
		})
	}
}

func TestHandle_UnsupportedMethodPanics(t *testing.T) {
	assert.Panics(t, func() {
		Handle(&annVerbs{}, "Traced", "TRACE", "/nope")
	})
}

func TestHandle_LowercaseVerbIsNormalized(t *testing.T) {
	Handle(&annVerbs{}, "Lower", "get", "/lower")

	route, ok := routeFor(&annVerbs{}, "Lower")
	require.True(t, ok)
	assert.Equal(t, http.MethodGet, route.Method)
}

func TestPathNormalization_TableTest(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty becomes root", path: "", want: "/"},
		{name: "missing slash is prefixed", path: "test", want: "/test"},
		{name: "already rooted is kept", path: "/test", want: "/test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Get(&annPaths{}, "Normalized", tt.path)

			route, ok := routeFor(&annPaths{}, "Normalized")
			require.True(t, ok)
			assert.Equal(t, tt.want, route.Path)
		})
	}
}

func TestMountPath_Normalizes(t *testing.T) {
	MountPath(&annPaths{}, "api")

	mount, ok := mountPathFor(&annPaths{})
	require.True(t, ok)
	assert.Equal(t, "/api", mount)
}

func TestAuthRequiredFlag(t *testing.T) {
	Get(&annAuth{}, "Open", "/open")
	Get(&annAuth{}, "Protected", "/protected", true)

	assert.False(t, AuthRequiredFor(&annAuth{}, "Open"))
	assert.True(t, AuthRequiredFor(&annAuth{}, "Protected"))
	assert.False(t, AuthRequiredFor(&annAuth{}, "Unbound"))
}

func TestReannotation_OverwritesBinding(t *testing.T) {
	Get(&annVerbs{}, "Rebound", "/first")
	Post(&annVerbs{}, "Rebound", "/second", true)

	route, ok := routeFor(&annVerbs{}, "Rebound")
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, route.Method)
	assert.Equal(t, "/second", route.Path)
	assert.True(t, route.AuthRequired)
}

func TestUse_ReplacesControllerChain(t *testing.T) {
	first := func(next http.Handler) http.Handler { return next }

	Use(&annVerbs{}, first, first)
	assert.Len(t, middlewareFor(&annVerbs{}, ""), 2)

	Use(&annVerbs{}, first)
	assert.Len(t, middlewareFor(&annVerbs{}, ""), 1)
}

func TestUseOn_AbsentChainIsEmpty(t *testing.T) {
	assert.Empty(t, middlewareFor(&annAuth{}, "NeverAnnotated"))
}
