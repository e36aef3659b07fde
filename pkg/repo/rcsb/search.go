package rcsb

import (
	"context"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/David-OConnor/bio-apis/pkg/common/code"
	"github.com/David-OConnor/bio-apis/pkg/common/rest"
	"github.com/David-OConnor/bio-apis/pkg/middleware/logger"
	"github.com/David-OConnor/bio-apis/pkg/repo"
)

const searchPath = "/rcsbsearch/v2/query"

// Cap on per-hit Data API lookups, to keep a single search call bounded.
const maxSeqResults = 8

// Wire vocabulary of the Search API. Typed constants keep anything outside
// the documented sets unrepresentable.
type searchService string

const (
	serviceText     searchService = "text"
	serviceSequence searchService = "sequence"
)

type searchOperator string

const (
	operatorGreater searchOperator = "greater"
)

type searchParams struct {
	Value          string          `json:"value,omitempty"`
	SequenceType   string          `json:"sequence_type,omitempty"`
	EvalueCutoff   *int            `json:"evalue_cutoff,omitempty"`
	IdentityCutoff *float64        `json:"identity_cutoff,omitempty"`
	Operator       *searchOperator `json:"operator,omitempty"`
	Attribute      string          `json:"attribute,omitempty"`
}

type searchQuery struct {
	Type       string        `json:"type"` // "terminal" or "group"
	Service    searchService `json:"service"`
	Parameters searchParams  `json:"parameters"`
}

type searchRequestOptions struct {
	ScoringStrategy string `json:"scoring_strategy,omitempty"`
}

type searchPayload struct {
	ReturnType     string                `json:"return_type"`
	Query          searchQuery           `json:"query"`
	RequestOptions *searchRequestOptions `json:"request_options,omitempty"`
}

type searchHit struct {
	Identifier string  `json:"identifier"`
	Score      float64 `json:"score"`
}

type searchResults struct {
	QueryID    string  `json:"query_id"`
	ResultType string  `json:"result_type"`
	TotalCount int     `json:"total_count"`
	// Pointer so a valid-JSON body without result_set fails instead of
	// reading as zero hits.
	ResultSet *[]searchHit `json:"result_set"`
}

func (r *rcsbImpl) runSearch(ctx context.Context, payload *searchPayload) ([]searchHit, error) {
	res, err := r.search.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(searchPath)
	if err != nil {
		logger.Errorf(ctx, "rcsb search request: %+v", err)
		return nil, code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return nil, err
	}
	// The Search API reports zero hits as 204 with no body.
	if res.StatusCode() == http.StatusNoContent {
		return nil, nil
	}

	results := &searchResults{}
	if err := rest.DecodeJSON(res.Body(), results); err != nil {
		return nil, err
	}
	if results.ResultSet == nil {
		return nil, code.DecodeErr.WithMsg("search response carries no result_set")
	}
	return *results.ResultSet, nil
}

// NewlyReleased picks a semi-random entry released within the past week.
// https://search.rcsb.org/#search-example-12
func (r *rcsbImpl) NewlyReleased(ctx context.Context) (string, error) {
	op := operatorGreater
	payload := &searchPayload{
		ReturnType: "entry",
		Query: searchQuery{
			Type:    "terminal",
			Service: serviceText,
			Parameters: searchParams{
				Attribute: "rcsb_accession_info.initial_release_date",
				Operator:  &op,
				Value:     "now-1w",
			},
		},
	}

	hits, err := r.runSearch(ctx, payload)
	if err != nil {
		return "", err
	}
	if len(hits) == 0 {
		return "", code.NotFoundErr.WithMsg("no entries released in the past week")
	}
	return hits[rand.IntN(len(hits))].Identifier, nil
}

func validSeq(aaSeq string) error {
	if aaSeq == "" {
		return code.InvalidInputErr.WithMsg("empty sequence")
	}
	for _, c := range aaSeq {
		if c < 'A' || c > 'Z' {
			return code.InvalidInputErr.WithMsgf("sequence contains invalid residue %q", c)
		}
	}
	return nil
}

// SearchBySequence runs a protein sequence search, then resolves the title of
// each hit through the Data API. Results are capped at maxSeqResults.
func (r *rcsbImpl) SearchBySequence(ctx context.Context, aaSeq string) ([]repo.RcsbSeqMatch, error) {
	aaSeq = strings.ToUpper(strings.TrimSpace(aaSeq))
	if err := validSeq(aaSeq); err != nil {
		return nil, err
	}

	evalue := 1
	identity := 0.9
	payload := &searchPayload{
		ReturnType: "entry",
		Query: searchQuery{
			Type:    "terminal",
			Service: serviceSequence,
			Parameters: searchParams{
				Value:          aaSeq,
				SequenceType:   "protein",
				EvalueCutoff:   &evalue,
				IdentityCutoff: &identity,
			},
		},
		RequestOptions: &searchRequestOptions{ScoringStrategy: "sequence"},
	}

	hits, err := r.runSearch(ctx, payload)
	if err != nil {
		return nil, err
	}

	if len(hits) > maxSeqResults {
		hits = hits[:maxSeqResults]
	}

	matches := make([]repo.RcsbSeqMatch, 0, len(hits))
	for _, hit := range hits {
		data, err := r.entryData(ctx, hit.Identifier)
		if err != nil {
			return nil, err
		}
		matches = append(matches, repo.RcsbSeqMatch{
			RcsbID: hit.Identifier,
			Score:  hit.Score,
			Title:  data.Struct.Title,
		})
	}
	return matches, nil
}
