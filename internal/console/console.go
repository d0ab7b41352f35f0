package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/minefield"
	"github.com/samdwyer/minesweeper/internal/theme"
	"github.com/samdwyer/minesweeper/internal/ui"
)

var (
	colorError = color.Style{color.FgRed, color.OpBold}
	colorInfo  = color.Style{color.FgGray}
	colorTitle = color.Style{color.FgYellow, color.OpBold}
)

// Console reads commands line by line and prints the board after each one.
type Console struct {
	session *game.Session
	theme   *theme.Theme
	in      io.Reader
	out     io.Writer
	color   bool
	log     logrus.FieldLogger
}

// New creates a console. When useColor is false the board is printed as plain text.
func New(session *game.Session, th *theme.Theme, in io.Reader, out io.Writer, useColor bool, log logrus.FieldLogger) *Console {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Console{
		session: session,
		theme:   th,
		in:      in,
		out:     out,
		color:   useColor,
		log:     log,
	}
}

// Run processes commands until "q", end of input or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	c.printBoard(c.session.Snapshot())

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			c.log.WithError(err).Debug("rejected console input")
			fmt.Fprintln(c.out, c.paint(colorError, err.Error()))
			continue
		}
		if cmd.Verb == VerbQuit {
			return nil
		}
		c.execute(ctx, cmd)
	}
	return scanner.Err()
}

func (c *Console) execute(ctx context.Context, cmd Command) {
	switch cmd.Verb {
	case VerbReveal:
		current := c.session.Snapshot()
		if current.Status.IsTerminal() {
			c.printStatus(current.Status)
			return
		}
		before := revealedSet(current)
		after := c.session.Reveal(ctx, cmd.X, cmd.Y)
		newly := 0
		for _, row := range after.Cells {
			for _, cell := range row {
				if cell.Revealed && cell.Kind != minefield.Mine && !before.Has(cell.Position) {
					newly++
				}
			}
		}
		fmt.Fprintln(c.out, c.paint(colorInfo, gotext.Get("revealed %d cells", newly)))
		c.printBoard(after)
	case VerbFlag:
		c.printBoard(c.session.ToggleFlag(ctx, cmd.X, cmd.Y))
	case VerbNew:
		c.printBoard(c.session.Reset(ctx))
	case VerbPrint:
		c.printBoard(c.session.Snapshot())
	case VerbHelp:
		fmt.Fprintln(c.out, gotext.Get("commands: r X Y (reveal), f X Y (flag), n (new game), p (print), q (quit)"))
	}
}

func revealedSet(snap minefield.Snapshot) mapset.Set[minefield.Position] {
	set := mapset.New[minefield.Position]()
	for _, row := range snap.Cells {
		for _, cell := range row {
			if cell.Revealed {
				set.Put(cell.Position)
			}
		}
	}
	return set
}

// printBoard writes the column header, one line per row and the status.
func (c *Console) printBoard(snap minefield.Snapshot) {
	var sb strings.Builder

	sb.WriteString("    ")
	for x := 0; x < snap.Width; x++ {
		fmt.Fprintf(&sb, "%-2d", x%100)
	}
	sb.WriteString("\n")

	for y := 0; y < snap.Height; y++ {
		fmt.Fprintf(&sb, "%3d ", y)
		for x := 0; x < snap.Width; x++ {
			look := c.theme.Appearance(snap.Cells[y][x])
			if c.color {
				sb.WriteString(color.HEX(look.Hex).Sprint(look.Glyph))
			} else {
				sb.WriteString(look.Glyph)
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	fmt.Fprint(c.out, sb.String())
	fmt.Fprintln(c.out, gotext.Get("Mines left: %d  Flags: %d", snap.MinesRemaining(), snap.Flags))
	c.printStatus(snap.Status)
}

func (c *Console) printStatus(status minefield.Status) {
	if msg := ui.StatusText(status); msg != "" {
		fmt.Fprintln(c.out, c.paint(colorTitle, msg))
	}
}

func (c *Console) paint(style color.Style, s string) string {
	if !c.color {
		return s
	}
	return style.Sprint(s)
}
