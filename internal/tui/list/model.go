package listview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/vlist/internal/geometry"
	"github.com/rshade/vlist/internal/logging"
	"github.com/rshade/vlist/internal/viewport"
	"github.com/rshade/vlist/internal/vlist"
)

// statusBarHeight is the number of terminal rows reserved below the list.
const statusBarHeight = 1

// wheelStep is the number of rows scrolled per mouse wheel notch.
const wheelStep = 3

// Config configures a Model.
type Config struct {
	// Buffer is the number of extra items rendered on each side of the
	// visible range.
	Buffer int
	// ItemHeight is the fixed height of every item in rows.
	ItemHeight int
	// Header is optional text shown above the list. It scrolls with the
	// document.
	Header string
	// Width and Height are the initial terminal size. A tea.WindowSizeMsg
	// replaces them.
	Width  int
	Height int
	// Logger receives lifecycle and navigation events.
	Logger zerolog.Logger
	// Keys overrides DefaultKeyMap when non-nil.
	Keys *KeyMap
}

// ItemsMsg replaces the items of a running Model.
type ItemsMsg[T any] struct {
	Items []T
}

// Model is a Bubble Tea model hosting a mounted vlist.List. It is also the
// list's host Renderer.
type Model[T any] struct {
	typ  *vlist.Type[T]
	list *vlist.List[T]
	opts []vlist.Option[T]

	win    *viewport.Window
	screen *geometry.Box
	header *geometry.Box
	body   *geometry.Box

	headerLines []string
	viewLines   []string
	listStyle   vlist.ListStyle

	keys    KeyMap
	printer *message.Printer
	log     zerolog.Logger

	width    int
	height   int
	err      error
	quitting bool
}

// NewModel builds the layout, mounts a list of items rendered by render and
// returns the model ready to be run by tea.NewProgram.
func NewModel[T any](items []T, cfg Config, render vlist.RenderFunc[T]) (*Model[T], error) {
	if render == nil {
		return nil, vlist.ErrNilRenderFunc
	}

	log := logging.ComponentLogger(cfg.Logger, "listview")
	keys := DefaultKeyMap()
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}

	m := &Model[T]{
		keys:    keys,
		printer: message.NewPrinter(language.English),
		log:     log,
		width:   cfg.Width,
		height:  cfg.Height,
		opts:    []vlist.Option[T]{vlist.WithLogger[T](cfg.Logger)},
	}

	m.screen = geometry.NewBox("screen", nil, 0)
	m.header = geometry.NewBox("header", m.screen, 0)
	if cfg.Header != "" {
		rendered := HeaderStyle.Render(cfg.Header)
		m.headerLines = strings.Split(rendered, "\n")
		m.header.SetHeight(len(m.headerLines))
	}
	m.body = geometry.NewBox("list", m.screen, m.header.Bottom())
	m.win = viewport.NewWindow(m.screen, m.listRows())

	m.typ = vlist.Create(cfg.Buffer, m.capture(render))
	list, err := m.typ.New(items, cfg.ItemHeight, m.opts...)
	if err != nil {
		return nil, fmt.Errorf("creating list: %w", err)
	}
	m.list = list
	m.body.SetHeight(m.listHeight())
	m.win.SetDocumentHeight(m.body.Bottom())

	if err = list.Mount(m.win, m.body, m); err != nil {
		return nil, fmt.Errorf("mounting list: %w", err)
	}

	return m, nil
}

// capture wraps render so the model learns the spacer style of every window
// it is asked to paint.
func (m *Model[T]) capture(render vlist.RenderFunc[T]) vlist.RenderFunc[T] {
	return func(c vlist.Content[T]) string {
		m.listStyle = c.ListStyle
		return render(c)
	}
}

// Render implements vlist.Renderer.
func (m *Model[T]) Render(view string) {
	m.viewLines = strings.Split(view, "\n")
}

// Init initializes the model (required for tea.Model interface).
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard, mouse, resize and item replacement messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.win.Resize(m.listRows())
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		switch msg.Button { //nolint:exhaustive // Only wheel events scroll the list.
		case tea.MouseButtonWheelUp:
			m.win.ScrollBy(-wheelStep)
		case tea.MouseButtonWheelDown:
			m.win.ScrollBy(wheelStep)
		}
		return m, nil

	case ItemsMsg[T]:
		m.SetItems(msg.Items)
		return m, nil
	}

	return m, nil
}

// handleKeyMsg maps navigation keys to viewport scrolling.
func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.list.ItemHeight()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.win.ScrollBy(-step)
	case key.Matches(msg, m.keys.Down):
		m.win.ScrollBy(step)
	case key.Matches(msg, m.keys.PageUp):
		m.win.ScrollBy(-max(step, m.win.Height()))
	case key.Matches(msg, m.keys.PageDown):
		m.win.ScrollBy(max(step, m.win.Height()))
	case key.Matches(msg, m.keys.Home):
		m.win.ScrollTo(0)
	case key.Matches(msg, m.keys.End):
		m.win.ScrollTo(m.win.MaxScroll())
	}

	return m, nil
}

// SetItems replaces the item collection. A new list instance takes over the
// mounted one; an equal collection does not re-render.
func (m *Model[T]) SetItems(items []T) {
	if m.list.State() != vlist.StateMounted {
		return
	}

	next, err := m.typ.New(items, m.list.ItemHeight(), m.opts...)
	if err != nil {
		m.err = err
		return
	}
	if err = next.Update(m.list, m.body); err != nil {
		m.err = err
		m.log.Error().Err(err).Msg("replacing list items failed")
		return
	}
	m.list = next

	// Clamping the scroll offset to the new extent fires a scroll event,
	// which the new instance already receives.
	m.body.SetHeight(m.listHeight())
	m.win.SetDocumentHeight(m.body.Bottom())

	m.log.Debug().Int("items", len(items)).Msg("items replaced")
}

// Close unmounts the list. It is safe to call more than once.
func (m *Model[T]) Close() {
	m.list.Unmount()
}

// View renders the visible rows of the document followed by the status bar.
func (m *Model[T]) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.Frame(), m.statusBar())
}

// Frame renders only the document rows inside the viewport band.
func (m *Model[T]) Frame() string {
	top := m.win.ScrollOffset()
	rows := make([]string, 0, m.win.Height())
	for y := top; y < top+m.win.Height(); y++ {
		rows = append(rows, m.documentLine(y))
	}
	return strings.Join(rows, "\n")
}

// documentLine returns row y of the virtual document: header rows, then the
// list spacer padding, then the rendered window, then blank spacer rows.
func (m *Model[T]) documentLine(y int) string {
	listTop := geometry.TopFrom(m.body, m.screen)
	if y < listTop {
		if y >= 0 && y < len(m.headerLines) {
			return m.headerLines[y]
		}
		return ""
	}

	row := y - listTop - m.listStyle.PaddingTop
	if row < 0 || row >= len(m.viewLines) || y-listTop >= m.listStyle.Height {
		return ""
	}
	return m.viewLines[row]
}

func (m *Model[T]) statusBar() string {
	w := m.list.Window()
	total := m.list.Len()

	var position string
	if total == 0 {
		position = "no items"
	} else {
		position = m.printer.Sprintf("items %d–%d of %d", w.First+1, min(w.Last+1, total), total)
	}

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		help = append(help, StatusKeyStyle.Render(h.Key)+" "+h.Desc)
	}

	bar := StatusStyle.Render(position + "  " + strings.Join(help, "  "))
	if m.width > 0 {
		bar = lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
	}
	return bar
}

// listRows is the number of terminal rows available to the document.
func (m *Model[T]) listRows() int {
	return max(0, m.height-statusBarHeight)
}

func (m *Model[T]) listHeight() int {
	return m.list.Len() * m.list.ItemHeight()
}

// List returns the currently mounted list instance.
func (m *Model[T]) List() *vlist.List[T] {
	return m.list
}

// Viewport returns the window driving the list.
func (m *Model[T]) Viewport() *viewport.Window {
	return m.win
}

// ItemCount returns the total number of items in the list.
func (m *Model[T]) ItemCount() int {
	return m.list.Len()
}

// VisibleFrom returns the first index of the rendered window (inclusive).
func (m *Model[T]) VisibleFrom() int {
	return m.list.First()
}

// VisibleTo returns the last index of the rendered window.
func (m *Model[T]) VisibleTo() int {
	return m.list.Last()
}

// Height returns the terminal height.
func (m *Model[T]) Height() int {
	return m.height
}

// Width returns the terminal width.
func (m *Model[T]) Width() int {
	return m.width
}

// Err returns the last error raised while replacing items.
func (m *Model[T]) Err() error {
	return m.err
}
