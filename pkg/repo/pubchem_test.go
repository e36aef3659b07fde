package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-OConnor/bio-apis/pkg/common/code"
)

func TestQueryPathDeterministic(t *testing.T) {
	build := func() string {
		q, err := NewPubChemQuery(DomainCompound, NamespaceCID, []string{"2244", "702"},
			OperationProperty, FormatJSON, "Title", "MolecularFormula")
		require.NoError(t, err)
		return q.Path()
	}

	first, second := build(), build()
	assert.Equal(t, first, second, "identical inputs must yield byte-identical paths")
	assert.Equal(t, "/rest/pug/compound/cid/2244,702/property/Title,MolecularFormula/JSON", first)
}

func TestQueryRecordPath(t *testing.T) {
	q, err := NewPubChemQuery(DomainCompound, NamespaceName, []string{"aspirin"},
		OperationRecord, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "/rest/pug/compound/name/aspirin/record/JSON", q.Path())
	assert.False(t, q.UsesPost())
	assert.Empty(t, q.Body())
}

func TestQuerySubstanceSynonyms(t *testing.T) {
	q, err := NewPubChemQuery(DomainSubstance, NamespaceSID, []string{"12345"},
		OperationSynonyms, FormatTXT)
	require.NoError(t, err)
	assert.Equal(t, "/rest/pug/substance/sid/12345/synonyms/TXT", q.Path())
}

func TestQuerySMILESUsesPost(t *testing.T) {
	q, err := NewPubChemQuery(DomainCompound, NamespaceSMILES, []string{"CC(=O)OC1=CC=CC=C1C(=O)O"},
		OperationCIDs, FormatJSON)
	require.NoError(t, err)
	assert.True(t, q.UsesPost())
	assert.Equal(t, "/rest/pug/compound/smiles/cids/JSON", q.Path())
	assert.Equal(t, "smiles=CC%28%3DO%29OC1%3DCC%3DCC%3DC1C%28%3DO%29O", q.Body())
}

func TestStructSearch(t *testing.T) {
	q, err := NewPubChemStructSearch(StructSearchSimilarity, NamespaceSMILES, "c1ccccc1",
		OperationCIDs, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "/rest/pug/compound/fastsimilarity_2d/smiles/cids/JSON", q.Path())
	assert.True(t, q.UsesPost())

	q, err = NewPubChemStructSearch(StructSearchSubstructure, NamespaceCID, "2244",
		OperationCIDs, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "/rest/pug/compound/fastsubstructure/cid/2244/cids/JSON", q.Path())
	assert.False(t, q.UsesPost())
}

func TestIllegalCombinationsRejected(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*PubChemQuery, error)
	}{
		{"unknown domain", func() (*PubChemQuery, error) {
			return NewPubChemQuery("gene", NamespaceCID, []string{"1"}, OperationRecord, FormatJSON)
		}},
		{"cid namespace in substance domain", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainSubstance, NamespaceCID, []string{"1"}, OperationRecord, FormatJSON)
		}},
		{"aid namespace in compound domain", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceAID, []string{"1"}, OperationRecord, FormatJSON)
		}},
		{"no identifiers", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceCID, nil, OperationRecord, FormatJSON)
		}},
		{"blank identifier", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceCID, []string{"  "}, OperationRecord, FormatJSON)
		}},
		{"property without properties", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceCID, []string{"1"}, OperationProperty, FormatJSON)
		}},
		{"property outside compound domain", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainSubstance, NamespaceSID, []string{"1"}, OperationProperty, FormatJSON, "Title")
		}},
		{"properties on record operation", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceCID, []string{"1"}, OperationRecord, FormatJSON, "Title")
		}},
		{"property name with path separator", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceCID, []string{"1"}, OperationProperty, FormatJSON, "Title/../../record")
		}},
		{"property name with comma", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceCID, []string{"1"}, OperationProperty, FormatJSON, "Title,XLogP")
		}},
		{"blank property name", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceCID, []string{"1"}, OperationProperty, FormatJSON, " ")
		}},
		{"sdf format for property operation", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceCID, []string{"1"}, OperationProperty, FormatSDF, "Title")
		}},
		{"png format for synonyms", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceCID, []string{"1"}, OperationSynonyms, FormatPNG)
		}},
		{"unknown operation", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceCID, []string{"1"}, "frobnicate", FormatJSON)
		}},
		{"unknown format", func() (*PubChemQuery, error) {
			return NewPubChemQuery(DomainCompound, NamespaceCID, []string{"1"}, OperationRecord, "YAML")
		}},
		{"unknown struct search kind", func() (*PubChemQuery, error) {
			return NewPubChemStructSearch("fuzzy", NamespaceSMILES, "c1ccccc1", OperationCIDs, FormatJSON)
		}},
		{"struct search namespace without structure support", func() (*PubChemQuery, error) {
			return NewPubChemStructSearch(StructSearchSimilarity, NamespaceName, "aspirin", OperationCIDs, FormatJSON)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := tc.build()
			assert.Nil(t, q)
			assert.ErrorIs(t, err, code.InvalidInputErr)
		})
	}
}
