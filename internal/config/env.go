package config

type HTTP struct {
	// TimeoutSec applies to every provider client.
	TimeoutSec int    `mapstructure:"HTTP_TIMEOUT_SEC" default:"5"`
	UserAgent  string `mapstructure:"HTTP_USER_AGENT" default:"bio-apis/0.1 (+https://github.com/David-OConnor/bio-apis)"`
}

// RPC holds the base URLs of every upstream provider. Overridable per
// environment, mainly so tests and mirrors can point at their own hosts.
type RPC struct {
	RCSB     RPCRCSB     `mapstructure:",squash"`
	PubChem  RPCPubChem  `mapstructure:",squash"`
	PDBe     RPCPDBe     `mapstructure:",squash"`
	DrugBank RPCDrugBank `mapstructure:",squash"`
	Lmsd     RPCLmsd     `mapstructure:",squash"`
	Ncbi     RPCNcbi     `mapstructure:",squash"`
	Geostd   RPCGeostd   `mapstructure:",squash"`
}

type RPCRCSB struct {
	SiteAddr   string `mapstructure:"RCSB_SITE_ADDR" default:"https://www.rcsb.org"`
	DataAddr   string `mapstructure:"RCSB_DATA_ADDR" default:"https://data.rcsb.org"`
	SearchAddr string `mapstructure:"RCSB_SEARCH_ADDR" default:"https://search.rcsb.org"`
	FilesAddr  string `mapstructure:"RCSB_FILES_ADDR" default:"https://files.rcsb.org"`
}

type RPCPubChem struct {
	Addr string `mapstructure:"PUBCHEM_ADDR" default:"https://pubchem.ncbi.nlm.nih.gov"`
}

type RPCPDBe struct {
	Addr string `mapstructure:"PDBE_ADDR" default:"https://www.ebi.ac.uk"`
}

type RPCDrugBank struct {
	Addr string `mapstructure:"DRUGBANK_ADDR" default:"https://go.drugbank.com"`
}

type RPCLmsd struct {
	Addr string `mapstructure:"LMSD_ADDR" default:"https://www.lipidmaps.org"`
}

type RPCNcbi struct {
	BlastAddr string `mapstructure:"NCBI_BLAST_ADDR" default:"https://blast.ncbi.nlm.nih.gov"`
}

type RPCGeostd struct {
	Addr string `mapstructure:"GEOSTD_ADDR" default:"https://www.athanorlab.com"`
}

type Log struct {
	LogPath  string `mapstructure:"LOG_PATH" default:"./bioapis.log"`
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	Console  bool   `mapstructure:"LOG_CONSOLE" default:"true"`
}
