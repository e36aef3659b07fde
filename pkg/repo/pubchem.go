package repo

import (
	"context"
	"net/url"
	"strings"

	"github.com/David-OConnor/bio-apis/pkg/common/code"
)

// CompoundInfo holds the basic information for a chemical compound.
type CompoundInfo struct {
	Name             string `json:"name"`
	MolecularFormula string `json:"molecular_formula"`
	SMILES           string `json:"smiles"`
}

// The PUG-REST URL is built from four axes:
// <domain>/<namespace>/<identifiers>/<operation>/<format>. Only combinations
// the API documents are constructible; everything else fails in
// NewPubChemQuery, before any request is made.

type PubChemDomain string

const (
	DomainCompound  PubChemDomain = "compound"
	DomainSubstance PubChemDomain = "substance"
	DomainAssay     PubChemDomain = "assay"
)

type PubChemNamespace string

const (
	NamespaceCID      PubChemNamespace = "cid"
	NamespaceName     PubChemNamespace = "name"
	NamespaceSMILES   PubChemNamespace = "smiles"
	NamespaceInChI    PubChemNamespace = "inchi"
	NamespaceInChIKey PubChemNamespace = "inchikey"
	NamespaceFormula  PubChemNamespace = "fastformula"
	NamespaceSID      PubChemNamespace = "sid"
	NamespaceAID      PubChemNamespace = "aid"
	NamespaceListKey  PubChemNamespace = "listkey"
)

// StructSearchKind selects a structure-search variant. These are only legal
// under the compound domain, and need a sub-namespace naming how the query
// structure itself is given.
type StructSearchKind string

const (
	StructSearchSubstructure   StructSearchKind = "fastsubstructure"
	StructSearchSuperstructure StructSearchKind = "fastsuperstructure"
	StructSearchSimilarity     StructSearchKind = "fastsimilarity_2d"
	StructSearchIdentity       StructSearchKind = "fastidentity"
)

type PubChemOperation string

const (
	OperationRecord         PubChemOperation = "record"
	OperationProperty       PubChemOperation = "property"
	OperationSynonyms       PubChemOperation = "synonyms"
	OperationCIDs           PubChemOperation = "cids"
	OperationSIDs           PubChemOperation = "sids"
	OperationAIDs           PubChemOperation = "aids"
	OperationDescription    PubChemOperation = "description"
	OperationClassification PubChemOperation = "classification"
	OperationConformers     PubChemOperation = "conformers"
)

type PubChemFormat string

const (
	FormatJSON PubChemFormat = "JSON"
	FormatXML  PubChemFormat = "XML"
	FormatSDF  PubChemFormat = "SDF"
	FormatCSV  PubChemFormat = "CSV"
	FormatPNG  PubChemFormat = "PNG"
	FormatTXT  PubChemFormat = "TXT"
)

var domainNamespaces = map[PubChemDomain]map[PubChemNamespace]bool{
	DomainCompound: {
		NamespaceCID: true, NamespaceName: true, NamespaceSMILES: true,
		NamespaceInChI: true, NamespaceInChIKey: true, NamespaceFormula: true,
		NamespaceListKey: true,
	},
	DomainSubstance: {
		NamespaceSID: true, NamespaceName: true, NamespaceListKey: true,
	},
	DomainAssay: {
		NamespaceAID: true, NamespaceListKey: true,
	},
}

// Sub-namespaces a structure search accepts for the query structure.
var structSearchNamespaces = map[PubChemNamespace]bool{
	NamespaceSMILES: true,
	NamespaceCID:    true,
	NamespaceInChI:  true,
}

// Namespaces whose identifier values are too unwieldy for a URL path segment;
// these go in a POST body instead.
var postNamespaces = map[PubChemNamespace]bool{
	NamespaceSMILES: true,
	NamespaceInChI:  true,
}

// PubChemQuery is a validated PUG-REST request. Construct with
// NewPubChemQuery or NewPubChemStructSearch; the zero value is not usable.
type PubChemQuery struct {
	domain       PubChemDomain
	structSearch StructSearchKind
	namespace    PubChemNamespace
	identifiers  []string
	operation    PubChemOperation
	properties   []string
	format       PubChemFormat
}

// NewPubChemQuery builds a direct-lookup query. Properties are required for
// OperationProperty and rejected otherwise.
func NewPubChemQuery(domain PubChemDomain, namespace PubChemNamespace, identifiers []string,
	operation PubChemOperation, format PubChemFormat, properties ...string) (*PubChemQuery, error) {
	nss, ok := domainNamespaces[domain]
	if !ok {
		return nil, code.InvalidInputErr.WithMsgf("unknown pubchem domain %q", domain)
	}
	if !nss[namespace] {
		return nil, code.InvalidInputErr.WithMsgf("namespace %q not valid in domain %q", namespace, domain)
	}

	q := &PubChemQuery{
		domain:      domain,
		namespace:   namespace,
		identifiers: identifiers,
		operation:   operation,
		properties:  properties,
		format:      format,
	}
	if err := q.validateCommon(); err != nil {
		return nil, err
	}
	return q, nil
}

// NewPubChemStructSearch builds a structure-similarity/substructure search
// query. The sub-namespace names how the query structure is supplied.
func NewPubChemStructSearch(kind StructSearchKind, sub PubChemNamespace, identifier string,
	operation PubChemOperation, format PubChemFormat, properties ...string) (*PubChemQuery, error) {
	switch kind {
	case StructSearchSubstructure, StructSearchSuperstructure, StructSearchSimilarity, StructSearchIdentity:
	default:
		return nil, code.InvalidInputErr.WithMsgf("unknown structure search kind %q", kind)
	}
	if !structSearchNamespaces[sub] {
		return nil, code.InvalidInputErr.WithMsgf("namespace %q does not support structure search", sub)
	}

	q := &PubChemQuery{
		domain:       DomainCompound,
		structSearch: kind,
		namespace:    sub,
		identifiers:  []string{identifier},
		operation:    operation,
		properties:   properties,
		format:       format,
	}
	if err := q.validateCommon(); err != nil {
		return nil, err
	}
	return q, nil
}

// Property names are plain alphanumeric tokens (e.g. "IsomericSMILES",
// "XLogP"). Anything else would restructure the request path when joined
// into it.
func validPropertyName(p string) bool {
	if p == "" {
		return false
	}
	for _, c := range p {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

func (q *PubChemQuery) validateCommon() error {
	if len(q.identifiers) == 0 {
		return code.InvalidInputErr.WithMsg("at least one identifier is required")
	}
	for _, id := range q.identifiers {
		if strings.TrimSpace(id) == "" {
			return code.InvalidInputErr.WithMsg("empty identifier")
		}
	}

	switch q.operation {
	case OperationRecord, OperationSynonyms, OperationCIDs, OperationSIDs,
		OperationAIDs, OperationDescription, OperationClassification, OperationConformers:
		if len(q.properties) != 0 {
			return code.InvalidInputErr.WithMsgf("operation %q does not take properties", q.operation)
		}
	case OperationProperty:
		if q.domain != DomainCompound {
			return code.InvalidInputErr.WithMsg("property operation is compound-only")
		}
		if len(q.properties) == 0 {
			return code.InvalidInputErr.WithMsg("property operation requires at least one property")
		}
		for _, p := range q.properties {
			if !validPropertyName(p) {
				return code.InvalidInputErr.WithMsgf("malformed property name %q", p)
			}
		}
	default:
		return code.InvalidInputErr.WithMsgf("unknown pubchem operation %q", q.operation)
	}

	switch q.format {
	case FormatJSON, FormatXML, FormatCSV, FormatTXT:
	case FormatSDF, FormatPNG:
		if q.operation != OperationRecord && q.operation != OperationConformers {
			return code.InvalidInputErr.WithMsgf("format %q requires a record operation", q.format)
		}
	default:
		return code.InvalidInputErr.WithMsgf("unknown pubchem output format %q", q.format)
	}

	return nil
}

// Path returns the request path below the PUG-REST root. Identical queries
// always produce identical paths.
func (q *PubChemQuery) Path() string {
	segs := []string{"/rest/pug", string(q.domain)}
	if q.structSearch != "" {
		segs = append(segs, string(q.structSearch))
	}
	segs = append(segs, string(q.namespace))
	if !q.UsesPost() {
		segs = append(segs, url.PathEscape(strings.Join(q.identifiers, ",")))
	}
	segs = append(segs, string(q.operation))
	if q.operation == OperationProperty {
		segs = append(segs, strings.Join(q.properties, ","))
	}
	segs = append(segs, string(q.format))
	return strings.Join(segs, "/")
}

// UsesPost reports whether the identifiers must travel in a form body rather
// than the path (SMILES and InChI contain characters hostile to URLs).
func (q *PubChemQuery) UsesPost() bool {
	return postNamespaces[q.namespace]
}

// Body returns the url-encoded form body for POST queries, empty otherwise.
func (q *PubChemQuery) Body() string {
	if !q.UsesPost() {
		return ""
	}
	v := url.Values{}
	v.Set(nsBodyKey(q.namespace), strings.Join(q.identifiers, ","))
	return v.Encode()
}

func nsBodyKey(ns PubChemNamespace) string {
	if ns == NamespaceInChI {
		return "inchi"
	}
	return "smiles"
}

type PubChem interface {
	// GetCompoundByName resolves a compound by common name or CAS registry
	// number into its basic properties.
	GetCompoundByName(ctx context.Context, name string) (*CompoundInfo, error)
	// Fetch executes a validated query and returns the raw response body;
	// the caller interprets it per the requested operation and format.
	Fetch(ctx context.Context, q *PubChemQuery) ([]byte, error)
	// LoadSDF downloads the 3D conformer SDF for a compound CID.
	LoadSDF(ctx context.Context, cid uint32) (string, error)
	OpenOverview(ctx context.Context, cid uint32) error
}
