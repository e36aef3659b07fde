// Package lmsd downloads structure files from the LIPID MAPS structure
// database.
//
// Home: https://www.lipidmaps.org/
package lmsd

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

type lmsdImpl struct {
	client *resty.Client
	site   string
}

func New() repo.Lmsd {
	addr := config.Global().RPC.Lmsd.Addr
	return &lmsdImpl{
		client: rest.New(addr),
		site:   addr,
	}
}

// LoadSDF downloads the SDF for an LM ID (e.g. "LMFA01010001"). The database
// serves 2D coordinates only.
func (l *lmsdImpl) LoadSDF(ctx context.Context, ident string) (string, error) {
	if strings.TrimSpace(ident) == "" {
		return "", code.InvalidInputErr.WithMsg("empty LM ID")
	}

	path := fmt.Sprintf("/databases/lmsd/%s", strings.ToUpper(ident))
	res, err := l.client.R().
		SetContext(ctx).
		SetQueryParam("format", "sdf").
		Get(path)
	if err != nil {
		logger.Errorf(ctx, "lmsd sdf download %s: %+v", ident, err)
		return "", code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return "", err
	}
	return res.String(), nil
}

func (l *lmsdImpl) OpenOverview(ctx context.Context, ident string) error {
	if strings.TrimSpace(ident) == "" {
		return code.InvalidInputErr.WithMsg("empty LM ID")
	}
	return utils.OpenBrowser(ctx,
		fmt.Sprintf("%s/databases/lmsd/%s", l.site, strings.ToUpper(ident)))
}
