package repo

import "context"

// GeostdItem is one ligand template in the Amber Geostd collection, with
// flags for whether force-field modification and library files exist for it.
type GeostdItem struct {
	Ident       string `json:"ident"`
	FrcmodAvail bool   `json:"frcmod_avail"`
	LibAvail    bool   `json:"lib_avail"`
}

// GeostdFiles carries the raw text of the downloaded files. Mol2 is always
// present; Frcmod and Lib are nil when the collection has none for the
// molecule.
type GeostdFiles struct {
	Mol2   string  `json:"mol2"`
	Frcmod *string `json:"frcmod"`
	Lib    *string `json:"lib"`
}

// Geostd serves Amber Geostd ligand templates. Identifiers are Geostd/PDBe
// ligand codes, or PubChem CIDs.
type Geostd interface {
	// AllMols lists every molecule in the collection.
	AllMols(ctx context.Context) ([]GeostdItem, error)
	// FindMols searches the collection by keyword.
	FindMols(ctx context.Context, searchText string) ([]GeostdItem, error)
	// LoadMolFiles downloads the Mol2, and FRCMOD/Lib when available.
	LoadMolFiles(ctx context.Context, ident string) (*GeostdFiles, error)
}
