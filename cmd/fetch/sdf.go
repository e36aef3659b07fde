package fetch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David-OConnor/bio-apis/pkg/repo"
	"github.com/David-OConnor/bio-apis/pkg/repo/drugbank"
	"github.com/David-OConnor/bio-apis/pkg/repo/lmsd"
	"github.com/David-OConnor/bio-apis/pkg/repo/pdbe"
)

// NewSDF groups the providers that serve raw SDF downloads.
func NewSDF() *cobra.Command {
	root := &cobra.Command{
		Use:          "sdf",
		Long:         "Download SDF structure files from PDBe, DrugBank, or LIPID MAPS",
		SilenceUsage: true,
	}

	sources := []struct {
		use   string
		short string
		newFn func() repo.SDFSource
	}{
		{"pdbe <component-code>", "PDBe chemical component (ideal coordinates)", func() repo.SDFSource { return pdbe.New() }},
		{"drugbank <accession>", "DrugBank small molecule drug (3D)", func() repo.SDFSource { return drugbank.New() }},
		{"lmsd <lm-id>", "LIPID MAPS structure (2D)", func() repo.SDFSource { return lmsd.New() }},
	}

	for _, src := range sources {
		newFn := src.newFn
		root.AddCommand(&cobra.Command{
			Use:   src.use,
			Short: src.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sdf, err := newFn().LoadSDF(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Print(sdf)
				return nil
			},
		})
	}

	return root
}
