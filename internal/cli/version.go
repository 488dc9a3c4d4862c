package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/vlist/pkg/version"
)

// NewVersionCmd creates the version command. ver must be a semantic version.
func NewVersionCmd(ver string) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the vlist version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sv, err := version.Parse(ver)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if short {
				_, err = fmt.Fprintln(out, sv.String())
				return err
			}

			_, err = fmt.Fprintf(out, "vlist %s (commit %s, built %s)\n",
				sv.Original(), version.GetGitCommit(), version.GetBuildDate())
			return err
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the normalized version number")
	return cmd
}
