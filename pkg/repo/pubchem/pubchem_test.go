package pubchem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-OConnor/bio-apis/internal/config"
	"github.com/David-OConnor/bio-apis/pkg/common/code"
	"github.com/David-OConnor/bio-apis/pkg/repo"
)

func newTestClient(t *testing.T, handler http.Handler) repo.PubChem {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	config.Global().RPC.PubChem.Addr = srv.URL
	return New()
}

func TestGetCompoundByName(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/pug/compound/name/aspirin/property/Title,MolecularFormula,IUPACName,IsomericSMILES,CanonicalSMILES,SMILES/JSON", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"PropertyTable": {"Properties": [{
				"Title": "Aspirin",
				"MolecularFormula": "C9H8O4",
				"IUPACName": "2-acetyloxybenzoic acid",
				"CanonicalSMILES": "CC(=O)OC1=CC=CC=C1C(=O)O"
			}]}
		}`))
	}))

	info, err := client.GetCompoundByName(context.Background(), "aspirin")
	require.NoError(t, err)
	assert.Equal(t, "Aspirin", info.Name)
	assert.Equal(t, "C9H8O4", info.MolecularFormula)
	assert.Equal(t, "CC(=O)OC1=CC=CC=C1C(=O)O", info.SMILES, "falls back through the SMILES preference chain")
}

func TestGetCompoundByNameEmptyTable(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"PropertyTable": {"Properties": []}}`))
	}))

	info, err := client.GetCompoundByName(context.Background(), "nonesuch")
	assert.Nil(t, info)
	assert.ErrorIs(t, err, code.DecodeErr)
}

func TestFetchStructSearchPosts(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/pug/compound/fastsimilarity_2d/smiles/cids/JSON", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "c1ccccc1", r.PostForm.Get("smiles"))
		_, _ = w.Write([]byte(`{"IdentifierList": {"CID": [241]}}`))
	}))

	q, err := repo.NewPubChemStructSearch(repo.StructSearchSimilarity, repo.NamespaceSMILES, "c1ccccc1",
		repo.OperationCIDs, repo.FormatJSON)
	require.NoError(t, err)

	body, err := client.Fetch(context.Background(), q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"IdentifierList": {"CID": [241]}}`, string(body))
}

func TestFetchRemoteError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"Fault": {"Code": "PUGREST.ServerBusy"}}`, http.StatusServiceUnavailable)
	}))

	q, err := repo.NewPubChemQuery(repo.DomainCompound, repo.NamespaceCID, []string{"2244"},
		repo.OperationRecord, repo.FormatJSON)
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), q)
	assert.ErrorIs(t, err, code.RemoteErr)

	var cerr *code.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, http.StatusServiceUnavailable, cerr.Status)
	assert.Contains(t, cerr.Body, "ServerBusy")
}

func TestLoadSDF(t *testing.T) {
	const sdf = "2244\n  -OEChem-\n...\nM  END\n$$$$\n"
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/pug/compound/cid/2244/record/SDF", r.URL.Path)
		assert.Equal(t, "3d", r.URL.Query().Get("record_type"))
		_, _ = w.Write([]byte(sdf))
	}))

	got, err := client.LoadSDF(context.Background(), 2244)
	require.NoError(t, err)
	assert.Equal(t, sdf, got)
}
