// Package geostd loads Amber Mol2, Lib, and FRCMOD data for small organic
// molecules, from the hosted AMBER_GEOSTD collection (CAO Amber 2025).
package geostd

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/David-OConnor/bio-apis/internal/config"
	"github.com/David-OConnor/bio-apis/pkg/common/code"
	"github.com/David-OConnor/bio-apis/pkg/common/rest"
	"github.com/David-OConnor/bio-apis/pkg/middleware/logger"
	"github.com/David-OConnor/bio-apis/pkg/repo"
)

type itemResponse struct {
	// Pointer so a valid-JSON body without the result wrapper fails instead
	// of reading as an empty collection.
	Result *[]repo.GeostdItem `json:"result"`
}

func decodeItems(body []byte) ([]repo.GeostdItem, error) {
	parsed := &itemResponse{}
	if err := rest.DecodeJSON(body, parsed); err != nil {
		return nil, err
	}
	if parsed.Result == nil {
		return nil, code.DecodeErr.WithMsg("geostd response carries no result")
	}
	return *parsed.Result, nil
}

type geostdImpl struct {
	client *resty.Client
}

func New() repo.Geostd {
	return &geostdImpl{
		client: rest.New(config.Global().RPC.Geostd.Addr),
	}
}

// AllMols lists every molecule in the collection, with flags for FRCMOD and
// Lib availability.
func (g *geostdImpl) AllMols(ctx context.Context) ([]repo.GeostdItem, error) {
	res, err := g.client.R().SetContext(ctx).Get("/get-all-mols")
	if err != nil {
		logger.Errorf(ctx, "geostd get-all-mols: %+v", err)
		return nil, code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return nil, err
	}
	return decodeItems(res.Body())
}

// FindMols searches the collection by keyword.
func (g *geostdImpl) FindMols(ctx context.Context, searchText string) ([]repo.GeostdItem, error) {
	if strings.TrimSpace(searchText) == "" {
		return nil, code.InvalidInputErr.WithMsg("empty search text")
	}

	res, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"search_text": searchText}).
		Post("/find-mols")
	if err != nil {
		logger.Errorf(ctx, "geostd find-mols %q: %+v", searchText, err)
		return nil, code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return nil, err
	}
	return decodeItems(res.Body())
}

// LoadMolFiles downloads a molecule's Mol2 text, plus FRCMOD and Lib when the
// collection has them.
func (g *geostdImpl) LoadMolFiles(ctx context.Context, ident string) (*repo.GeostdFiles, error) {
	if strings.TrimSpace(ident) == "" {
		return nil, code.InvalidInputErr.WithMsg("empty ident")
	}

	res, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"ident": ident}).
		Post("/load-mol-files")
	if err != nil {
		logger.Errorf(ctx, "geostd load-mol-files %s: %+v", ident, err)
		return nil, code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return nil, err
	}

	files := &repo.GeostdFiles{}
	if err := rest.DecodeJSON(res.Body(), files); err != nil {
		return nil, err
	}
	// Mol2 is the one file every entry carries.
	if files.Mol2 == "" {
		return nil, code.DecodeErr.WithMsgf("load-mol-files response for %s missing mol2", ident)
	}
	return files, nil
}
