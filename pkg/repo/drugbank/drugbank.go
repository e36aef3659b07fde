// Package drugbank downloads structure files from DrugBank.
//
// API docs: https://docs.drugbank.com/v1/
package drugbank

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/David-OConnor/bio-apis/internal/config"
	"github.com/David-OConnor/bio-apis/pkg/common/code"
	"github.com/David-OConnor/bio-apis/pkg/common/rest"
	"github.com/David-OConnor/bio-apis/pkg/middleware/logger"
	"github.com/David-OConnor/bio-apis/pkg/repo"
	"github.com/David-OConnor/bio-apis/pkg/utils"
)

type drugbankImpl struct {
	client *resty.Client
	site   string
}

func New() repo.DrugBank {
	addr := config.Global().RPC.DrugBank.Addr
	return &drugbankImpl{
		client: rest.New(addr),
		site:   addr,
	}
}

// LoadSDF downloads the 3D SDF for a DrugBank accession (e.g. "DB00945").
func (d *drugbankImpl) LoadSDF(ctx context.Context, ident string) (string, error) {
	if strings.TrimSpace(ident) == "" {
		return "", code.InvalidInputErr.WithMsg("empty DrugBank accession")
	}

	path := fmt.Sprintf("/structures/small_molecule_drugs/%s.sdf", strings.ToUpper(ident))
	res, err := d.client.R().
		SetContext(ctx).
		SetQueryParam("type", "3d").
		Get(path)
	if err != nil {
		logger.Errorf(ctx, "drugbank sdf download %s: %+v", ident, err)
		return "", code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return "", err
	}
	return res.String(), nil
}

func (d *drugbankImpl) OpenOverview(ctx context.Context, ident string) error {
	if strings.TrimSpace(ident) == "" {
		return code.InvalidInputErr.WithMsg("empty DrugBank accession")
	}
	return utils.OpenBrowser(ctx, fmt.Sprintf("%s/drugs/%s", d.site, ident))
}
