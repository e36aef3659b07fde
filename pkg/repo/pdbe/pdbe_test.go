package pdbe

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
	const sdf = "ATP\n  Ideal\n...\nM  END\n$$$$\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pdbe/static/files/pdbechem_v2/ATP_ideal.sdf", r.URL.Path)
		_, _ = w.Write([]byte(sdf))
	}))
	t.Cleanup(srv.Close)
	config.Global().RPC.PDBe.Addr = srv.URL

	got, err := New().LoadSDF(context.Background(), "atp")
	require.NoError(t, err)
	assert.Equal(t, sdf, got)
}

func TestLoadSDFEmptyIdent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}))
	t.Cleanup(srv.Close)
	config.Global().RPC.PDBe.Addr = srv.URL

	_, err := New().LoadSDF(context.Background(), "")
	assert.ErrorIs(t, err, code.InvalidInputErr)
}

func TestLoadSDFNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	config.Global().RPC.PDBe.Addr = srv.URL

	_, err := New().LoadSDF(context.Background(), "ZZZ")
	assert.ErrorIs(t, err, code.NotFoundErr)
}
