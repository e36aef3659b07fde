// Package pdbe downloads chemical component files from PDBe.
//
// Home: https://www.ebi.ac.uk/pdbe/
package pdbe

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

type pdbeImpl struct {
	client *resty.Client
	site   string
}

func New() repo.PDBe {
	addr := config.Global().RPC.PDBe.Addr
	return &pdbeImpl{
		client: rest.New(addr),
		site:   addr,
	}
}

// LoadSDF downloads the "ideal" coordinates SDF for a chemical component
// code; the "model" variant is not fetched.
func (p *pdbeImpl) LoadSDF(ctx context.Context, ident string) (string, error) {
	if strings.TrimSpace(ident) == "" {
		return "", code.InvalidInputErr.WithMsg("empty PDBe component code")
	}

	path := fmt.Sprintf("/pdbe/static/files/pdbechem_v2/%s_ideal.sdf", strings.ToUpper(ident))
	res, err := p.client.R().SetContext(ctx).Get(path)
	if err != nil {
		logger.Errorf(ctx, "pdbe sdf download %s: %+v", ident, err)
		return "", code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return "", err
	}
	return res.String(), nil
}

func (p *pdbeImpl) OpenOverview(ctx context.Context, ident string) error {
	if strings.TrimSpace(ident) == "" {
		return code.InvalidInputErr.WithMsg("empty PDBe component code")
	}
	return utils.OpenBrowser(ctx,
		fmt.Sprintf("%s/pdbe-srv/pdbechem/chemicalCompound/show/%s", p.site, ident))
}
