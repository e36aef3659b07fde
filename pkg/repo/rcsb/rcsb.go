// Package rcsb talks to the RCSB PDB Data API, Search API, and file hosting.
//
// Data API: https://data.rcsb.org/#data-api
// Search API: https://search.rcsb.org/#search-api
package rcsb

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/David-OConnor/bio-apis/internal/config"
	"github.com/David-OConnor/bio-apis/pkg/common/code"
	"github.com/David-OConnor/bio-apis/pkg/common/rest"
	"github.com/David-OConnor/bio-apis/pkg/middleware/logger"
	"github.com/David-OConnor/bio-apis/pkg/repo"
	"github.com/David-OConnor/bio-apis/pkg/utils"
)

const entryPath = "/rest/v1/core/entry/{ident}"

type rcsbImpl struct {
	data   *resty.Client
	search *resty.Client
	files  *resty.Client
	site   string
}

func New() repo.Rcsb {
	conf := config.Global().RPC.RCSB
	return &rcsbImpl{
		data:   rest.New(conf.DataAddr),
		search: rest.New(conf.SearchAddr),
		files:  rest.New(conf.FilesAddr),
		site:   conf.SiteAddr,
	}
}

// Legacy PDB IDs are 4 characters; extended ones 12. Anything shorter than 3
// cannot address the validation file tree.
func validIdent(ident string) error {
	if len(strings.TrimSpace(ident)) < 3 {
		return code.InvalidInputErr.WithMsgf("PDB ID %q must be >= 3 characters", ident)
	}
	return nil
}

func (r *rcsbImpl) entryData(ctx context.Context, ident string) (*repo.RcsbEntryData, error) {
	res, err := r.data.R().
		SetContext(ctx).
		SetPathParam("ident", ident).
		Get(entryPath)
	if err != nil {
		logger.Errorf(ctx, "rcsb entry data request for %s: %+v", ident, err)
		return nil, code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return nil, err
	}

	data := &repo.RcsbEntryData{}
	if err := rest.DecodeJSON(res.Body(), data); err != nil {
		return nil, err
	}
	// The Data API always reports the experimental method; its absence
	// means we parsed something that is not an entry payload.
	if data.EntryInfo.ExperimentalMethod == "" {
		return nil, code.DecodeErr.WithMsgf("entry payload for %s missing rcsb_entry_info", ident)
	}
	return data, nil
}

func (r *rcsbImpl) EntryData(ctx context.Context, ident string) (*repo.RcsbEntryData, error) {
	if err := validIdent(ident); err != nil {
		return nil, err
	}
	return r.entryData(ctx, ident)
}

type primaryCitation struct {
	Title string `json:"title"`
}

type metadataResults struct {
	// Pointer so an entry payload without the citation block fails instead of
	// reading as an empty title.
	RcsbPrimaryCitation *primaryCitation `json:"rcsb_primary_citation"`
}

func (r *rcsbImpl) Metadata(ctx context.Context, ident string) (*repo.RcsbMetadata, error) {
	if err := validIdent(ident); err != nil {
		return nil, err
	}

	res, err := r.data.R().
		SetContext(ctx).
		SetPathParam("ident", ident).
		Get(entryPath)
	if err != nil {
		logger.Errorf(ctx, "rcsb metadata request for %s: %+v", ident, err)
		return nil, code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return nil, err
	}

	meta := &metadataResults{}
	if err := rest.DecodeJSON(res.Body(), meta); err != nil {
		return nil, err
	}
	if meta.RcsbPrimaryCitation == nil {
		return nil, code.DecodeErr.WithMsgf("entry payload for %s missing rcsb_primary_citation", ident)
	}
	return &repo.RcsbMetadata{PrimaryCitationTitle: meta.RcsbPrimaryCitation.Title}, nil
}

// decodeGzText decompresses a downloaded .gz body. A stream that is not
// valid gzip is a decode failure, never silently returned as garbage.
func decodeGzText(body []byte) (string, error) {
	raw, err := decodeGz(body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeGz(body []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, code.DecodeErr.WithErr(err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, code.DecodeErr.WithErr(err)
	}
	return raw, nil
}

func (r *rcsbImpl) loadGzFile(ctx context.Context, path string) (string, error) {
	res, err := r.files.R().SetContext(ctx).Get(path)
	if err != nil {
		logger.Errorf(ctx, "rcsb file download %s: %+v", path, err)
		return "", code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return "", err
	}
	return decodeGzText(res.Body())
}

func cifGzPath(ident string) string {
	return fmt.Sprintf("/download/%s.cif.gz", strings.ToUpper(ident))
}

func structureFactorsGzPath(ident string) string {
	return fmt.Sprintf("/download/%s-sf.cif.gz", strings.ToUpper(ident))
}

func validationBasePath(ident string) string {
	return fmt.Sprintf("/validation/download/%s_validation", ident)
}

// LoadCIF downloads the compressed PDBx/mmCIF coordinate file and returns the
// decompressed text. The .gz variant is fetched to save bandwidth.
func (r *rcsbImpl) LoadCIF(ctx context.Context, ident string) (string, error) {
	if err := validIdent(ident); err != nil {
		return "", err
	}
	return r.loadGzFile(ctx, cifGzPath(ident))
}

func (r *rcsbImpl) LoadValidationCIF(ctx context.Context, ident string) (string, error) {
	if err := validIdent(ident); err != nil {
		return "", err
	}
	return r.loadGzFile(ctx, validationBasePath(ident)+".cif.gz")
}

// LoadValidation2foFcCIF downloads the 2Fo-Fc map coefficients.
func (r *rcsbImpl) LoadValidation2foFcCIF(ctx context.Context, ident string) (string, error) {
	if err := validIdent(ident); err != nil {
		return "", err
	}
	return r.loadGzFile(ctx, validationBasePath(ident)+"_2fo-fc_map_coef.cif.gz")
}

// LoadValidationFoFcCIF downloads the Fo-Fc (difference) map coefficients.
func (r *rcsbImpl) LoadValidationFoFcCIF(ctx context.Context, ident string) (string, error) {
	if err := validIdent(ident); err != nil {
		return "", err
	}
	return r.loadGzFile(ctx, validationBasePath(ident)+"_fo-fc_map_coef.cif.gz")
}

func (r *rcsbImpl) LoadStructureFactorsCIF(ctx context.Context, ident string) (string, error) {
	if err := validIdent(ident); err != nil {
		return "", err
	}
	return r.loadGzFile(ctx, structureFactorsGzPath(ident))
}

// mapGzPath resolves the EMDB map location through the entry's database2
// cross references. Entries without an EMDB reference have no map.
func (r *rcsbImpl) mapGzPath(ctx context.Context, ident string) (string, error) {
	data, err := r.entryData(ctx, ident)
	if err != nil {
		return "", err
	}

	for _, db := range data.Database2 {
		if db.DatabaseID != "EMDB" {
			continue
		}
		fileStem := strings.ToLower(strings.ReplaceAll(db.DatabaseCode, "-", "_"))
		return fmt.Sprintf("/pub/emdb/structures/%s/map/%s.map.gz", db.DatabaseCode, fileStem), nil
	}
	return "", code.NotFoundErr.WithMsgf("no EMDB map for %s", ident)
}

// LoadMap downloads the electron density map, when one exists (usually not).
func (r *rcsbImpl) LoadMap(ctx context.Context, ident string) ([]byte, error) {
	if err := validIdent(ident); err != nil {
		return nil, err
	}

	path, err := r.mapGzPath(ctx, ident)
	if err != nil {
		return nil, err
	}

	res, err := r.files.R().SetContext(ctx).Get(path)
	if err != nil {
		logger.Errorf(ctx, "rcsb map download %s: %+v", path, err)
		return nil, code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return nil, err
	}
	return decodeGz(res.Body())
}

func (r *rcsbImpl) fileExists(ctx context.Context, path string) (bool, error) {
	res, err := r.files.R().SetContext(ctx).Head(path)
	if err != nil {
		return false, code.NetworkErr.WithErr(err)
	}
	return res.IsSuccess(), nil
}

// FilesAvailable probes which auxiliary files the RCSB hosts for an entry.
func (r *rcsbImpl) FilesAvailable(ctx context.Context, ident string) (*repo.RcsbFilesAvailable, error) {
	if err := validIdent(ident); err != nil {
		return nil, err
	}

	avail := &repo.RcsbFilesAvailable{}
	probes := []struct {
		path string
		dst  *bool
	}{
		{validationBasePath(ident) + ".cif.gz", &avail.Validation},
		{validationBasePath(ident) + "_2fo-fc_map_coef.cif.gz", &avail.Validation2foFc},
		{validationBasePath(ident) + "_fo-fc_map_coef.cif.gz", &avail.ValidationFoFc},
		{structureFactorsGzPath(ident), &avail.StructureFactors},
	}
	for _, p := range probes {
		exists, err := r.fileExists(ctx, p.path)
		if err != nil {
			return nil, err
		}
		*p.dst = exists
	}

	if mapPath, err := r.mapGzPath(ctx, ident); err == nil {
		exists, err := r.fileExists(ctx, mapPath)
		if err != nil {
			return nil, err
		}
		avail.Map = exists
	}

	return avail, nil
}

// Works with 4-letter (legacy) and 12-letter IDs.
func (r *rcsbImpl) OpenOverview(ctx context.Context, ident string) error {
	if err := validIdent(ident); err != nil {
		return err
	}
	return utils.OpenBrowser(ctx, fmt.Sprintf("%s/structure/%s", r.site, ident))
}

func (r *rcsbImpl) Open3DView(ctx context.Context, ident string) error {
	if err := validIdent(ident); err != nil {
		return err
	}
	return utils.OpenBrowser(ctx, fmt.Sprintf("%s/3d-view/%s", r.site, ident))
}

func (r *rcsbImpl) OpenStructureFile(ctx context.Context, ident string) error {
	if err := validIdent(ident); err != nil {
		return err
	}
	return utils.OpenBrowser(ctx, fmt.Sprintf("%s/view/%s.cif", config.Global().RPC.RCSB.FilesAddr, ident))
}
