package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/vlist/internal/config"
	"github.com/rshade/vlist/internal/window"
)

// boundsOutput is the JSON form of the bounds command result.
type boundsOutput struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// NewBoundsCmd creates the bounds command, a scriptable front end to the
// window calculator.
func NewBoundsCmd() *cobra.Command {
	var (
		p      window.Params
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "Print the first and last item index rendered for a scroll position",
		Example: `  # Mid-scroll: prints "15 50"
  vlist bounds --count 1000 --item-height 20 --buffer 5 --view-top 400 --view-bottom 900`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if p.ItemHeight <= 0 {
				return fmt.Errorf("--item-height: %w (got %d)", window.ErrInvalidItemHeight, p.ItemHeight)
			}
			if !cmd.Flags().Changed("buffer") {
				p.Buffer = config.GetGlobalConfig().List.Buffer
			}

			r := window.Bounds(p)
			logger.Debug().
				Int("count", p.ItemCount).
				Int("view_top", p.ViewTop).
				Int("view_bottom", p.ViewBottom).
				Stringer("window", r).
				Msg("bounds computed")

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(boundsOutput{First: r.First, Last: r.Last})
			}
			_, err := fmt.Fprintf(out, "%d %d\n", r.First, r.Last)
			return err
		},
	}

	cmd.Flags().IntVar(&p.ItemCount, "count", 0, "number of items in the list")
	cmd.Flags().IntVar(&p.ItemHeight, "item-height", 1, "rows per item")
	cmd.Flags().IntVar(&p.Buffer, "buffer", 0, "items rendered beyond each edge (default from config)")
	cmd.Flags().IntVar(&p.ViewTop, "view-top", 0, "top edge of the viewport")
	cmd.Flags().IntVar(&p.ViewBottom, "view-bottom", 0, "bottom edge of the viewport")
	cmd.Flags().IntVar(&p.ListTop, "list-top", 0, "top edge of the list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print {\"first\":N,\"last\":M}")

	return cmd
}
