package lmsd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-OConnor/bio-apis/internal/config"
	"github.com/David-OConnor/bio-apis/pkg/common/code"
)

func TestLoadSDF(t *testing.T) {
	const sdf = "LMFA01010001\n...\nM  END\n$$$$\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/databases/lmsd/LMFA01010001", r.URL.Path)
		assert.Equal(t, "sdf", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(sdf))
	}))
	t.Cleanup(srv.Close)
	config.Global().RPC.Lmsd.Addr = srv.URL

	got, err := New().LoadSDF(context.Background(), "lmfa01010001")
	require.NoError(t, err)
	assert.Equal(t, sdf, got)
}

func TestLoadSDFRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	config.Global().RPC.Lmsd.Addr = srv.URL

	_, err := New().LoadSDF(context.Background(), "LMFA01010001")
	assert.ErrorIs(t, err, code.RemoteErr)
}
