package gshell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fatih/color"
	"github.com/gordian-engine/gtree/gkary"
)

// Config configures a [Shell].
type Config struct {
	// Maximum children per node of the working tree.
	Degree int

	// Session name used in log output.
	// A random pet name is generated if empty.
	Name string

	// Disable colored output, regardless of the terminal.
	NoColor bool
}

// Shell reads commands line by line and applies them to a working tree.
type Shell struct {
	log *slog.Logger

	in  *bufio.Scanner
	out io.Writer

	tree *gkary.Tree[int]

	// Snapshot taken by SAVE, restored by RESTORE.
	saved *gkary.Tree[int]

	name string

	errColor, okColor *color.Color
}

var errQuit = errors.New("quit requested")

// maxLineSize bounds a single input line.
// Long PUSH lines exceed bufio's default token size.
const maxLineSize = 16 << 20

// New returns a shell with an empty working tree.
// It panics if cfg.Degree is less than 1.
func New(log *slog.Logger, in io.Reader, out io.Writer, cfg Config) *Shell {
	name := cfg.Name
	if name == "" {
		name = petname.Generate(2, "-")
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	s := &Shell{
		log: log.With("session", name),

		in:  sc,
		out: out,

		tree: gkary.New[int](cfg.Degree),

		name: name,

		errColor: color.New(color.FgRed),
		okColor:  color.New(color.FgGreen),
	}

	if cfg.NoColor {
		s.errColor.DisableColor()
		s.okColor.DisableColor()
	}

	return s
}

// Name returns the session name.
func (s *Shell) Name() string {
	return s.name
}

// Tree returns the current working tree.
func (s *Shell) Tree() *gkary.Tree[int] {
	return s.tree
}

// Run processes input until EXIT, end of input, or ctx is cancelled.
// Cancellation interrupts a blocked read;
// the reading goroutine exits once the underlying reader returns.
func (s *Shell) Run(ctx context.Context) error {
	s.log.Info("Starting shell", "degree", s.tree.MaxDegree())
	defer s.log.Info("Shell finished")

	// Stops the scanner once Run returns early, e.g. on EXIT.
	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go s.scan(scanCtx, lines, scanErr)

	s.printHelp()
	s.printPrompt()
	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)

		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					// The scanner stopped because ctx was cancelled.
					return context.Cause(ctx)
				}
			}
			if ctx.Err() != nil {
				return context.Cause(ctx)
			}

			if err := s.Exec(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				s.errColor.Fprintf(s.out, "error: %v\n", err)
			}
			s.printPrompt()
		}
	}
}

// scan sends input lines to the lines channel until end of input or ctx is cancelled.
// On end of input, the scanner's error (nil for a clean EOF) is sent on errs
// before lines is closed.
func (s *Shell) scan(ctx context.Context, lines chan<- string, errs chan<- error) {
	defer close(lines)

	for s.in.Scan() {
		select {
		case lines <- s.in.Text():
		case <-ctx.Done():
			return
		}
	}
	errs <- s.in.Err()
}

// Exec runs a single command line.
// Blank lines are ignored.
func (s *Shell) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	err := s.dispatch(cmd, args)
	if err != nil && !errors.Is(err, errQuit) {
		s.log.Debug("Command failed", "cmd", cmd, "err", err)
		return err
	}

	s.log.Debug("Command done", "cmd", cmd, "size", s.tree.Size())
	return err
}

func (s *Shell) dispatch(cmd string, args []string) error {
	switch cmd {
	case "push":
		return s.push(args)
	case "pop":
		return s.pop(args)
	case "bfs":
		return s.render(args, gkary.BreadthFirstOrder)
	case "dfs":
		return s.render(args, gkary.DepthFirstOrder)
	case "size":
		return s.printInt(args, s.tree.Size())
	case "height":
		return s.printInt(args, s.tree.Height())
	case "find":
		return s.find(args)
	case "count":
		return s.count(args)
	case "show":
		if len(args) != 0 {
			return errors.New("usage: SHOW")
		}
		_, err := io.WriteString(s.out, Shape(s.tree))
		return err
	case "save":
		if len(args) != 0 {
			return errors.New("usage: SAVE")
		}
		s.saved = s.tree.Clone()
		s.okColor.Fprintf(s.out, "saved %d nodes\n", s.saved.Size())
		return nil
	case "restore":
		if len(args) != 0 {
			return errors.New("usage: RESTORE")
		}
		if s.saved == nil {
			return errors.New("nothing saved")
		}
		// Clone again so the snapshot survives further edits.
		s.tree = s.saved.Clone()
		s.okColor.Fprintf(s.out, "restored %d nodes\n", s.tree.Size())
		return nil
	case "clear":
		s.tree.Clear()
		return nil
	case "check":
		if err := s.tree.Validate(); err != nil {
			return err
		}
		s.okColor.Fprintln(s.out, "ok")
		return nil
	case "help":
		s.printHelp()
		return nil
	case "exit", "quit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (s *Shell) push(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: PUSH <value>...")
	}

	vals, err := parseInts(args)
	if err != nil {
		return err
	}
	s.tree.InsertMany(vals...)

	_, err = fmt.Fprintln(s.out, s.tree)
	return err
}

func (s *Shell) pop(args []string) error {
	if len(args) != 0 {
		return errors.New("usage: POP")
	}

	v, err := s.tree.RemoveLast()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(s.out, v)
	return err
}

func (s *Shell) render(args []string, order gkary.Order) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: %s", strings.ToUpper(order.String()))
	}
	return s.tree.Render(s.out, order)
}

func (s *Shell) find(args []string) error {
	v, err := singleInt("FIND", args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, s.tree.Contains(v))
	return err
}

func (s *Shell) count(args []string) error {
	v, err := singleInt("COUNT", args)
	if err != nil {
		return err
	}
	return s.printInt(nil, s.tree.Count(v))
}

func (s *Shell) printInt(args []string, n int) error {
	if len(args) != 0 {
		return errors.New("command takes no arguments")
	}
	_, err := fmt.Fprintln(s.out, n)
	return err
}

func (s *Shell) printHelp() {
	fmt.Fprintf(s.out, `
Bounded-degree tree shell (max degree %d)

Available Commands:
  PUSH <v>...  Insert values at the first free slot in level order
  POP          Remove and print the last node in level order
  BFS          Print the tree breadth first
  DFS          Print the tree depth first
  SIZE         Print the number of nodes
  HEIGHT       Print the height of the tree
  FIND <v>     Print whether v is in the tree
  COUNT <v>    Print how many nodes hold v
  SHOW         Draw the tree
  SAVE         Snapshot the tree
  RESTORE      Replace the tree with the last snapshot
  CLEAR        Remove every node
  CHECK        Verify the tree invariants
  EXIT         Terminate this session

`, s.tree.MaxDegree())
}

func (s *Shell) printPrompt() {
	fmt.Fprint(s.out, "> ")
}

func singleInt(cmd string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s <value>", cmd)
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	return v, nil
}

func parseInts(args []string) ([]int, error) {
	vals := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		vals[i] = v
	}
	return vals, nil
}
