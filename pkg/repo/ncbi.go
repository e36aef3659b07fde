package repo

import "context"

type BlastProgram string

const (
	BlastN  BlastProgram = "blastn"
	BlastP  BlastProgram = "blastp"
	BlastX  BlastProgram = "blastx"
	TBlastN BlastProgram = "tblastn"
	TBlastX BlastProgram = "tblastx"
)

// BlastParams describes one search submission. Sequence is raw residues or
// FASTA; Database is e.g. "nt" or "nr".
type BlastParams struct {
	Program  BlastProgram
	Database string
	Sequence string
	// Optional tuning; nil leaves the server default in place.
	Expect      *float64
	HitlistSize *int
}

// BlastJob is the handle returned on submission. The RID is the opaque token
// all later polling uses; EstimatedSeconds is the server's completion guess.
type BlastJob struct {
	RID              string `json:"rid"`
	EstimatedSeconds int    `json:"estimated_seconds"`
}

type BlastState string

const (
	BlastQueued  BlastState = "queued"
	BlastRunning BlastState = "running"
	BlastDone    BlastState = "done"
	BlastFailed  BlastState = "failed"
)

// BlastStatus is one poll result. Payload is only populated once the state is
// done; HasHits is only meaningful then too.
type BlastStatus struct {
	State   BlastState `json:"state"`
	HasHits bool       `json:"has_hits"`
	Payload string     `json:"payload"`
}

type BlastFormat string

const (
	BlastFormatText    BlastFormat = "Text"
	BlastFormatXML     BlastFormat = "XML"
	BlastFormatTabular BlastFormat = "Tabular"
)

// Ncbi exposes the BLAST submit/poll protocol. Poll returns immediately with
// the current state; cadence and timeout belong to the caller, so the client
// fits any concurrency model.
type Ncbi interface {
	// Submit sends the search and returns its job handle.
	Submit(ctx context.Context, params *BlastParams) (*BlastJob, error)
	// Poll reports the job's current state, with the formatted text result
	// attached once done. An expired or unknown RID is a NotFound error.
	Poll(ctx context.Context, rid string) (*BlastStatus, error)
	// Results fetches the finished result in the requested format.
	Results(ctx context.Context, rid string, format BlastFormat) (string, error)
	// OpenResults opens the web results page for a submitted job.
	OpenResults(ctx context.Context, rid string) error
}
