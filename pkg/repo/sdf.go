package repo

import "context"

// SDFSource is the shared surface of the providers that only ever hand back
// raw SDF text (PDBe, DrugBank, LIPID MAPS). SDF stays unparsed on purpose;
// structured modeling of chemical table files is out of scope.
type SDFSource interface {
	// LoadSDF downloads the SDF for an identifier and returns its text
	// verbatim.
	LoadSDF(ctx context.Context, ident string) (string, error)
	// OpenOverview opens the provider's human-facing page for the entry.
	OpenOverview(ctx context.Context, ident string) error
}

type PDBe interface {
	SDFSource
}

type DrugBank interface {
	SDFSource
}

// Lmsd is the LIPID MAPS structure database client.
type Lmsd interface {
	SDFSource
}
