package repo

import "context"

// RcsbEntryData mirrors the subset of the RCSB Data API entry payload the
// library models. Optional fields are pointers so a missing value is never
// conflated with a present zero.
type RcsbEntryData struct {
	Struct         RcsbStruct         `json:"struct"`
	Database2      []RcsbDatabaseRef  `json:"database2"`
	Cell           *RcsbCell          `json:"cell"`
	Citations      []RcsbCitation     `json:"citation"`
	DatabaseStatus RcsbDatabaseStatus `json:"pdbx_database_status"`
	EntryInfo      RcsbEntryInfo      `json:"rcsb_entry_info"`
}

type RcsbStruct struct {
	Title string `json:"title"`
}

type RcsbDatabaseRef struct {
	DatabaseCode string `json:"database_code"`
	DatabaseID   string `json:"database_id"`
}

type RcsbCell struct {
	AngleAlpha float64 `json:"angle_alpha"`
	AngleBeta  float64 `json:"angle_beta"`
	AngleGamma float64 `json:"angle_gamma"`
	LengthA    float64 `json:"length_a"`
	LengthB    float64 `json:"length_b"`
	LengthC    float64 `json:"length_c"`
	ZPDB       int     `json:"zpdb"`
}

type RcsbCitation struct {
	ID                string   `json:"id"`
	Country           *string  `json:"country"`
	JournalAbbrev     string   `json:"journal_abbrev"`
	JournalIDISSN     *string  `json:"journal_id_issn"`
	JournalVolume     *string  `json:"journal_volume"`
	PageFirst         *string  `json:"page_first"`
	PageLast          *string  `json:"page_last"`
	PubMedID          *int     `json:"pdbx_database_id_pub_med"`
	Authors           []string `json:"rcsb_authors"`
	IsPrimary         string   `json:"rcsb_is_primary"`
	RcsbJournalAbbrev string   `json:"rcsb_journal_abbrev"`
	Title             *string  `json:"title"`
	Year              *int     `json:"year"`
}

type RcsbDatabaseStatus struct {
	DepositSite           *string `json:"deposit_site"`
	PDBFormatCompatible   string  `json:"pdb_format_compatible"`
	ProcessSite           string  `json:"process_site"`
	InitialDepositionDate string  `json:"recvd_initial_deposition_date"`
	StatusCode            string  `json:"status_code"`
	StatusCodeSF          *string `json:"status_code_sf"`
}

type RcsbEntryInfo struct {
	AssemblyCount                    int       `json:"assembly_count"`
	DepositedAtomCount               int       `json:"deposited_atom_count"`
	DepositedModelCount              int       `json:"deposited_model_count"`
	DepositedNonpolymerInstanceCount int       `json:"deposited_nonpolymer_entity_instance_count"`
	DepositedPolymerInstanceCount    int       `json:"deposited_polymer_entity_instance_count"`
	DepositedPolymerMonomerCount     int       `json:"deposited_polymer_monomer_count"`
	DepositedSolventAtomCount        int       `json:"deposited_solvent_atom_count"`
	DisulfideBondCount               int       `json:"disulfide_bond_count"`
	EntityCount                      int       `json:"entity_count"`
	ExperimentalMethod               string    `json:"experimental_method"`
	ExperimentalMethodCount          int       `json:"experimental_method_count"`
	MolecularWeight                  float64   `json:"molecular_weight"`
	NonpolymerEntityCount            int       `json:"nonpolymer_entity_count"`
	PolymerComposition               string    `json:"polymer_composition"`
	PolymerEntityCount               int       `json:"polymer_entity_count"`
	PolymerEntityCountDNA            int       `json:"polymer_entity_count_DNA"`
	PolymerEntityCountRNA            int       `json:"polymer_entity_count_RNA"`
	PolymerEntityCountProtein        int       `json:"polymer_entity_count_protein"`
	ResolutionCombined               []float64 `json:"resolution_combined"`
	DiffrnWavelengthMaximum          *float64  `json:"diffrn_radiation_wavelength_maximum"`
	DiffrnWavelengthMinimum          *float64  `json:"diffrn_radiation_wavelength_minimum"`
}

// RcsbMetadata is the cut-down record for callers that only want the primary
// citation.
type RcsbMetadata struct {
	PrimaryCitationTitle string `json:"primary_citation_title"`
}

// RcsbSeqMatch is one sequence-search hit, enriched with the entry title from
// the Data API.
type RcsbSeqMatch struct {
	RcsbID string  `json:"rcsb_id"`
	Score  float64 `json:"score"`
	Title  string  `json:"title"`
}

// RcsbFilesAvailable reports which auxiliary files exist for an entry.
type RcsbFilesAvailable struct {
	Validation       bool `json:"validation"`
	Validation2foFc  bool `json:"validation_2fo_fc"`
	ValidationFoFc   bool `json:"validation_fo_fc"`
	StructureFactors bool `json:"structure_factors"`
	Map              bool `json:"map"`
}

type Rcsb interface {
	// EntryData loads the full modeled entry record from the Data API.
	EntryData(ctx context.Context, ident string) (*RcsbEntryData, error)
	// Metadata loads only the primary citation title.
	Metadata(ctx context.Context, ident string) (*RcsbMetadata, error)
	// SearchBySequence runs a protein sequence search against the Search
	// API and resolves each hit's title.
	SearchBySequence(ctx context.Context, aaSeq string) ([]RcsbSeqMatch, error)
	// NewlyReleased returns a semi-random entry released within the past
	// week.
	NewlyReleased(ctx context.Context) (string, error)

	// LoadCIF downloads the gzip-compressed mmCIF coordinate file and
	// returns the decompressed text.
	LoadCIF(ctx context.Context, ident string) (string, error)
	LoadValidationCIF(ctx context.Context, ident string) (string, error)
	LoadValidation2foFcCIF(ctx context.Context, ident string) (string, error)
	LoadValidationFoFcCIF(ctx context.Context, ident string) (string, error)
	LoadStructureFactorsCIF(ctx context.Context, ident string) (string, error)
	// LoadMap downloads the EMDB electron density map, when one exists.
	LoadMap(ctx context.Context, ident string) ([]byte, error)
	// FilesAvailable probes which auxiliary files the RCSB hosts for an
	// entry.
	FilesAvailable(ctx context.Context, ident string) (*RcsbFilesAvailable, error)

	OpenOverview(ctx context.Context, ident string) error
	Open3DView(ctx context.Context, ident string) error
	OpenStructureFile(ctx context.Context, ident string) error
}
