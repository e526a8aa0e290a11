package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"frostfire/pkg/engine/terminal"
	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
	"frostfire/pkg/game/gameplay"
	"frostfire/pkg/game/renderer"
)

// Icon constants
const (
	IconEmber   = "E"
	IconFrost   = "F"
	IconWall    = "▒"
	IconFloor   = "·"
	IconOutline = "□"
	IconStatic  = "✶"
	IconVoid    = " "
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

var _ renderer.Renderer = (*TUIRenderer)(nil)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer
	// file is out when it is an *os.File, for terminal queries
	file *os.File

	colorCell     color.Style
	colorSequence color.Style
	colorHot      color.Style
	colorCold     color.Style
	colorStatic   color.Style
	colorOutline  color.Style
	colorWall     color.Style
	colorSubtle   color.Style
	colorPlayer   color.Style
	colorDenied   color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to out (stdout if nil)
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	t := &TUIRenderer{out: out}
	if f, ok := out.(*os.File); ok {
		t.file = f
	}
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorCell = color.Style{color.FgBlue}
	t.colorSequence = color.Style{color.FgMagenta, color.OpBold}
	t.colorHot = color.Style{color.FgRed, color.OpBold}
	t.colorCold = color.Style{color.FgCyan, color.OpBold}
	t.colorStatic = color.Style{color.FgYellow}
	t.colorOutline = color.Style{color.FgGray}
	t.colorWall = color.Style{color.FgGray}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z_]+)\{([^{}]+)\}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.file == nil || !terminal.IsInteractive(t.file) {
		return
	}
	c := exec.Command("clear")
	c.Stdout = t.file
	c.Run()
}

// width returns the output terminal width, or the default when out is not a terminal
func (t *TUIRenderer) width() int {
	if t.file == nil {
		return terminal.DefaultWidth
	}
	width, _ := terminal.GetSize(t.file)
	return width
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleCell:
		return t.colorCell.Sprint(text)
	case renderer.StyleSequence:
		return t.colorSequence.Sprint(text)
	case renderer.StyleHot:
		return t.colorHot.Sprint(text)
	case renderer.StyleCold:
		return t.colorCold.Sprint(text)
	case renderer.StyleStatic:
		return t.colorStatic.Sprint(text)
	case renderer.StyleOutline:
		return t.colorOutline.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "CELL":
			val = t.colorCell.Sprint(operand)
		case "SEQ":
			val = t.colorSequence.Sprint(operand)
		default:
			if kind, ok := entities.KindForMarkup(function); ok {
				val = t.hazardStyle(kind).Sprint(operand)
				break
			}
			val = t.colorDenied.Sprintf("%s?{%s}", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// RenderFrame renders a complete frame
func (t *TUIRenderer) RenderFrame(s *gameplay.Session) {
	fmt.Fprint(t.out, t.colorSubtle.Sprintf("Tick %d\n\n", s.Level.Tick))

	t.printMap(s)
	t.printSequences(s)
	t.printMessagesPane(s)
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(s *gameplay.Session, p world.Pos) string {
	l := s.Level
	cell := l.Grid.GetCell(p)
	if cell == nil {
		return IconVoid
	}

	if player := l.PlayerAt(p); player != nil {
		if player.Role() == entities.RoleFrost {
			return t.colorPlayer.Sprint(IconFrost)
		}
		return t.colorPlayer.Sprint(IconEmber)
	}

	if h := s.Pool.At(p); h != nil {
		return t.hazardStyle(h.Kind).Sprint(h.GetIcon())
	}

	if kind, ok := l.StaticHazardAt(p); ok {
		return t.hazardStyle(kind).Sprint(IconStatic)
	}

	if l.OutlineVisible(p) {
		return t.colorOutline.Sprint(IconOutline)
	}

	if !cell.Walkable {
		return t.colorWall.Sprint(IconWall)
	}
	return IconFloor
}

func (t *TUIRenderer) hazardStyle(kind entities.ActionKind) color.Style {
	switch kind {
	case entities.KindHot:
		return t.colorHot
	case entities.KindCold:
		return t.colorCold
	default:
		return t.colorStatic
	}
}

// printMap renders the level map, centred in the terminal
func (t *TUIRenderer) printMap(s *gameplay.Session) {
	grid := s.Level.Grid
	indent := (t.width() - grid.Cols()) / 2
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)

	for row := 0; row < grid.Rows(); row++ {
		var line strings.Builder
		line.WriteString(pad)
		for col := 0; col < grid.Cols(); col++ {
			line.WriteString(t.renderCell(s, world.P(col, row)))
		}
		fmt.Fprintln(t.out, line.String())
	}
	fmt.Fprintln(t.out)
}

// printSequences prints one status line per sequence
func (t *TUIRenderer) printSequences(s *gameplay.Session) {
	o := s.Orchestrator
	for _, id := range o.Sequences() {
		status := o.Phase(id).String()
		if o.Waiting(id) {
			status = t.colorDenied.Sprint(status)
		}
		fmt.Fprintf(t.out, "- %s step %d: %s\n", t.colorSequence.Sprint(id), o.Index(id), status)
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(s *gameplay.Session) {
	width := t.width()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(s.Level.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range s.Level.Messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText(msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
