// Package pubchem talks to the PubChem PUG-REST API.
//
// API docs: https://pubchem.ncbi.nlm.nih.gov/docs/pug-rest
package pubchem

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/David-OConnor/bio-apis/internal/config"
	"github.com/David-OConnor/bio-apis/pkg/common/code"
	"github.com/David-OConnor/bio-apis/pkg/common/rest"
	"github.com/David-OConnor/bio-apis/pkg/middleware/logger"
	"github.com/David-OConnor/bio-apis/pkg/repo"
	"github.com/David-OConnor/bio-apis/pkg/utils"
)

type property struct {
	Title            string `json:"Title"`
	MolecularFormula string `json:"MolecularFormula"`
	IUPACName        string `json:"IUPACName"`
	IsomericSMILES   string `json:"IsomericSMILES"`
	CanonicalSMILES  string `json:"CanonicalSMILES"`
	SMILES           string `json:"SMILES"`
}

type propertyResponse struct {
	PropertyTable struct {
		Properties []property `json:"Properties"`
	} `json:"PropertyTable"`
}

type pubchemImpl struct {
	client *resty.Client
	site   string
}

func New() repo.PubChem {
	addr := config.Global().RPC.PubChem.Addr
	return &pubchemImpl{
		client: rest.New(addr),
		site:   addr,
	}
}

// GetCompoundByName resolves a compound by common name or CAS registry number
// into its basic properties.
func (p *pubchemImpl) GetCompoundByName(ctx context.Context, name string) (*repo.CompoundInfo, error) {
	q, err := repo.NewPubChemQuery(
		repo.DomainCompound, repo.NamespaceName, []string{name},
		repo.OperationProperty, repo.FormatJSON,
		"Title", "MolecularFormula", "IUPACName", "IsomericSMILES", "CanonicalSMILES", "SMILES",
	)
	if err != nil {
		return nil, err
	}

	body, err := p.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	propResp := &propertyResponse{}
	if err := rest.DecodeJSON(body, propResp); err != nil {
		return nil, err
	}
	if len(propResp.PropertyTable.Properties) == 0 {
		return nil, code.DecodeErr.WithMsg("property response carries no properties")
	}

	propData := propResp.PropertyTable.Properties[0]

	title := propData.Title
	if title == "" {
		title = propData.IUPACName
	}

	smiles := propData.IsomericSMILES
	if smiles == "" {
		smiles = propData.CanonicalSMILES
	}
	if smiles == "" {
		smiles = propData.SMILES
	}

	return &repo.CompoundInfo{
		Name:             title,
		MolecularFormula: propData.MolecularFormula,
		SMILES:           smiles,
	}, nil
}

// Fetch executes a validated query and returns the raw response body.
func (p *pubchemImpl) Fetch(ctx context.Context, q *repo.PubChemQuery) ([]byte, error) {
	if q == nil {
		return nil, code.InvalidInputErr.WithMsg("nil query")
	}

	req := p.client.R().SetContext(ctx)

	var res *resty.Response
	var err error
	if q.UsesPost() {
		res, err = req.
			SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetBody(q.Body()).
			Post(q.Path())
	} else {
		res, err = req.Get(q.Path())
	}
	if err != nil {
		logger.Errorf(ctx, "pubchem query %s: %+v", q.Path(), err)
		return nil, code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return nil, err
	}
	return res.Body(), nil
}

// LoadSDF downloads the 3D conformer record for a compound as SDF text.
func (p *pubchemImpl) LoadSDF(ctx context.Context, cid uint32) (string, error) {
	q, err := repo.NewPubChemQuery(
		repo.DomainCompound, repo.NamespaceCID,
		[]string{strconv.FormatUint(uint64(cid), 10)},
		repo.OperationRecord, repo.FormatSDF,
	)
	if err != nil {
		return "", err
	}

	res, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("record_type", "3d").
		Get(q.Path())
	if err != nil {
		logger.Errorf(ctx, "pubchem sdf download cid %d: %+v", cid, err)
		return "", code.NetworkErr.WithErr(err)
	}
	if err := rest.StatusErr(res); err != nil {
		return "", err
	}
	return res.String(), nil
}

func (p *pubchemImpl) OpenOverview(ctx context.Context, cid uint32) error {
	return utils.OpenBrowser(ctx, fmt.Sprintf("%s/compound/%d", p.site, cid))
}
