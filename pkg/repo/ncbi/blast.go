// Package ncbi drives the NCBI BLAST URL API (Blast.cgi).
//
// The protocol is asynchronous: CMD=Put submits a search and returns an RID;
// CMD=Get with FORMAT_OBJECT=SearchInfo reports its status; CMD=Get with a
// FORMAT_TYPE fetches the finished report.
package ncbi

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/David-OConnor/bio-apis/internal/config"
	"github.com/David-OConnor/bio-apis/pkg/common/code"
	"github.com/David-OConnor/bio-apis/pkg/common/rest"
	"github.com/David-OConnor/bio-apis/pkg/middleware/logger"
	"github.com/David-OConnor/bio-apis/pkg/repo"
	"github.com/David-OConnor/bio-apis/pkg/utils"
)

const blastPath = "/Blast.cgi"

var (
	ridRe     = regexp.MustCompile(`(?m)^\s*RID = (\S+)`)
	rtoeRe    = regexp.MustCompile(`(?m)^\s*RTOE = (\d+)`)
	statusRe  = regexp.MustCompile(`(?m)^\s*Status=(\S+)`)
	hasHitsRe = regexp.MustCompile(`(?m)^\s*ThereAreHits=yes`)
)

type ncbiImpl struct {
	client *resty.Client
	site   string
}

func New() repo.Ncbi {
	addr := config.Global().RPC.Ncbi.BlastAddr
	return &ncbiImpl{
		client: rest.New(addr),
		site:   addr,
	}
}

func validParams(params *repo.BlastParams) error {
	if params == nil {
		return code.InvalidInputErr.WithMsg("nil blast params")
	}
	switch params.Program {
	case repo.BlastN, repo.BlastP, repo.BlastX, repo.TBlastN, repo.TBlastX:
	default:
		return code.InvalidInputErr.WithMsgf("unknown blast program %q", params.Program)
	}
	if strings.TrimSpace(params.Database) == "" {
		return code.InvalidInputErr.WithMsg("empty blast database")
	}
	if strings.TrimSpace(params.Sequence) == "" {
		return code.InvalidInputErr.WithMsg("empty query sequence")
	}
	return nil
}

// Submit sends the search and parses the RID and RTOE out of the QBlastInfo
// comment block in the response page.
func (n *ncbiImpl) Submit(ctx context.Context, params *repo.BlastParams) (*repo.BlastJob, error) {
	if err := validParams(params); err != nil {
		return nil, err
	}

	form := map[string]string{
		"CMD":      "Put",
		"PROGRAM":  string(params.Program),
		"DATABASE": params.Database,
		"QUERY":    params.Sequence,
	}
	if params.Expect != nil {
		form["EXPECT"] = strconv.FormatFloat(*params.Expect, 'g', -1, 64)
	}
	if params.HitlistSize != nil {
		form["HITLIST_SIZE"] = strconv.Itoa(*params.HitlistSize)
	}

	res, err := n.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(blastPath)
	if err != nil {
		logger.Errorf(ctx, "blast submit: %+v", err)
		return nil, code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return nil, err
	}

	body := res.String()
	ridMatch := ridRe.FindStringSubmatch(body)
	if ridMatch == nil {
		return nil, code.DecodeErr.WithMsg("blast submit response carries no RID")
	}

	job := &repo.BlastJob{RID: ridMatch[1]}
	if m := rtoeRe.FindStringSubmatch(body); m != nil {
		// RTOE is an estimate only; a missing one is not an error.
		job.EstimatedSeconds, _ = strconv.Atoi(m[1])
	}
	return job, nil
}

// Poll reports the job's current state and returns immediately. Once the
// server reports READY, the formatted text report is fetched and attached.
func (n *ncbiImpl) Poll(ctx context.Context, rid string) (*repo.BlastStatus, error) {
	if strings.TrimSpace(rid) == "" {
		return nil, code.InvalidInputErr.WithMsg("empty RID")
	}

	res, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"CMD":           "Get",
			"FORMAT_OBJECT": "SearchInfo",
			"RID":           rid,
		}).
		Get(blastPath)
	if err != nil {
		logger.Errorf(ctx, "blast poll %s: %+v", rid, err)
		return nil, code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return nil, err
	}

	body := res.String()
	statusMatch := statusRe.FindStringSubmatch(body)
	if statusMatch == nil {
		return nil, code.DecodeErr.WithMsg("blast poll response carries no Status")
	}

	switch statusMatch[1] {
	case "WAITING":
		return &repo.BlastStatus{State: repo.BlastRunning}, nil
	case "FAILED":
		return &repo.BlastStatus{State: repo.BlastFailed}, nil
	case "UNKNOWN":
		// Expired or never-issued RID.
		return nil, code.NotFoundErr.WithMsgf("blast job %s unknown or expired", rid)
	case "READY":
		status := &repo.BlastStatus{
			State:   repo.BlastDone,
			HasHits: hasHitsRe.MatchString(body),
		}
		payload, err := n.Results(ctx, rid, repo.BlastFormatText)
		if err != nil {
			return nil, err
		}
		status.Payload = payload
		return status, nil
	}
	return nil, code.DecodeErr.WithMsgf("unexpected blast status %q", statusMatch[1])
}

// Results fetches the finished report in the requested format, as raw text.
func (n *ncbiImpl) Results(ctx context.Context, rid string, format repo.BlastFormat) (string, error) {
	if strings.TrimSpace(rid) == "" {
		return "", code.InvalidInputErr.WithMsg("empty RID")
	}
	switch format {
	case repo.BlastFormatText, repo.BlastFormatXML, repo.BlastFormatTabular:
	default:
		return "", code.InvalidInputErr.WithMsgf("unknown blast format %q", format)
	}

	res, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"CMD":         "Get",
			"FORMAT_TYPE": string(format),
			"RID":         rid,
		}).
		Get(blastPath)
	if err != nil {
		logger.Errorf(ctx, "blast results %s: %+v", rid, err)
		return "", code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return "", err
	}
	return res.String(), nil
}

func (n *ncbiImpl) OpenResults(ctx context.Context, rid string) error {
	if strings.TrimSpace(rid) == "" {
		return code.InvalidInputErr.WithMsg("empty RID")
	}
	return utils.OpenBrowser(ctx, fmt.Sprintf("%s%s?CMD=Get&RID=%s", n.site, blastPath, rid))
}
