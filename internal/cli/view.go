package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/vlist/internal/config"
	"github.com/rshade/vlist/internal/logging"
	"github.com/rshade/vlist/internal/tui"
	listview "github.com/rshade/vlist/internal/tui/list"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ErrNoInput is returned when view has nothing to show.
var ErrNoInput = errors.New("no input: pass a file, pipe data on stdin, or use --count")

// viewFlags holds the flags of the view command.
type viewFlags struct {
	buffer     int
	itemHeight int
	header     string
	count      int
	plain      bool
	height     int
}

// NewViewCmd creates the view command.
func NewViewCmd() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse lines of a file or stdin in a virtual list",
		Long: `Browse lines of a file, stdin, or generated rows. Only the items inside the
terminal window, plus a buffer on each side, are rendered.

When stdout is not a terminal, or with --plain, the first screen is printed
once instead of starting the interactive viewer.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.buffer, "buffer", config.DefaultBuffer, "items rendered beyond each edge of the screen")
	cmd.Flags().IntVar(&flags.itemHeight, "item-height", config.DefaultItemHeight, "rows per item")
	cmd.Flags().StringVar(&flags.header, "header", "", "title shown above the list")
	cmd.Flags().IntVar(&flags.count, "count", 0, "generate N numbered items instead of reading input")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "print one screen and exit")
	cmd.Flags().IntVar(&flags.height, "height", 0, "screen rows in plain mode (default: terminal height or 24)")

	return cmd
}

func runView(cmd *cobra.Command, args []string, flags viewFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	listCfg := applyListFlags(cmd, config.GetGlobalConfig().List, flags)
	if err := (&config.Config{List: listCfg}).Validate(); err != nil {
		return err
	}

	items, err := loadItems(cmd, args, flags.count)
	if err != nil {
		return err
	}
	log.Debug().
		Int("items", len(items)).
		Int("buffer", listCfg.Buffer).
		Int("item_height", listCfg.ItemHeight).
		Msg("items loaded")

	mode := tui.DetectOutputMode(cmd.OutOrStdout(), flags.plain)
	plain := mode == tui.OutputModePlain
	width, height := tui.TerminalSize(cmd.OutOrStdout())
	if plain && flags.height > 0 {
		height = flags.height
	}
	rows := height
	if plain {
		// Plain output has no status bar row.
		rows++
	}

	m, err := listview.NewModel(items, listview.Config{
		Buffer:     listCfg.Buffer,
		ItemHeight: listCfg.ItemHeight,
		Header:     listCfg.Header,
		Width:      width,
		Height:     rows,
		Logger:     *log,
	}, listview.DefaultRender(listview.StringFormat))
	if err != nil {
		return fmt.Errorf("building list view: %w", err)
	}
	defer m.Close()

	if plain {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Frame())
		return err
	}

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if !tui.IsTerminal(cmd.InOrStdin()) {
		// Items came from stdin; read keys from the controlling terminal.
		opts = append(opts, tea.WithInputTTY())
	}

	log.Debug().Stringer("mode", mode).Int("width", width).Int("height", height).Msg("starting viewer")
	p := tea.NewProgram(m, opts...)
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}

// applyListFlags overrides cfg with the flags the user set explicitly.
func applyListFlags(cmd *cobra.Command, cfg config.ListConfig, flags viewFlags) config.ListConfig {
	if cmd.Flags().Changed("buffer") {
		cfg.Buffer = flags.buffer
	}
	if cmd.Flags().Changed("item-height") {
		cfg.ItemHeight = flags.itemHeight
	}
	if cmd.Flags().Changed("header") {
		cfg.Header = flags.header
	}
	return cfg
}

// loadItems returns generated items, the lines of the named file, or the
// lines of stdin, in that order of preference.
func loadItems(cmd *cobra.Command, args []string, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("--count must be >= 0, got %d", count)
	}
	if count > 0 {
		items := make([]string, count)
		for i := range items {
			items[i] = fmt.Sprintf("item %d", i)
		}
		return items, nil
	}

	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		return readLines(f)
	}

	in := cmd.InOrStdin()
	if tui.IsTerminal(in) {
		return nil, ErrNoInput
	}
	return readLines(in)
}

// readLines splits r into lines without their terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
