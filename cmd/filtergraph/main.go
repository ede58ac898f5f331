// Package main provides the filtergraph CLI: inspect a project
// document, or drive filter-chain edits interactively through the
// undo history.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/annihilatorrrr/shotcut/pkg/commands"
	"github.com/annihilatorrrr/shotcut/pkg/graph"
	"github.com/annihilatorrrr/shotcut/pkg/history"
	"github.com/annihilatorrrr/shotcut/pkg/logging"
	"github.com/annihilatorrrr/shotcut/pkg/model"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "filtergraph",
	Short: "Inspect and edit media filter graphs",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetDefault(logging.New(logging.Config{Level: slog.LevelDebug}))
		}
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <project.yaml>",
	Short: "Print a project's producer tree, filter chains, and validation findings",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var replCmd = &cobra.Command{
	Use:   "repl <project.yaml>",
	Short: "Edit filter chains interactively with undo/redo",
	Args:  cobra.ExactArgs(1),
	RunE:  runRepl,
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(replCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRoots(path string) (graph.Roots, error) {
	f, err := os.Open(path)
	if err != nil {
		return graph.Roots{}, err
	}
	defer f.Close()
	return graph.LoadProject(f)
}

func runInspect(cmd *cobra.Command, args []string) error {
	roots, err := loadRoots(args[0])
	if err != nil {
		return err
	}
	for _, root := range []struct {
		label string
		p     *graph.Producer
	}{
		{"timeline", roots.Timeline},
		{"bin", roots.Bin},
		{"clip", roots.Clip},
	} {
		if !root.p.IsValid() {
			continue
		}
		fmt.Printf("%s:\n", root.label)
		printProducer(root.p, 1)
	}
	findings := graph.Validate(roots)
	if len(findings) > 0 {
		fmt.Println("findings:")
		for _, f := range findings {
			fmt.Printf("  %s\n", f)
		}
	}
	return nil
}

func printProducer(p *graph.Producer, depth int) {
	indent := strings.Repeat("  ", depth)
	id := "-"
	if u, ok := graph.UUIDOf(p); ok {
		id = u.String()
	}
	fmt.Printf("%s%s %q uuid=%s digest=%s\n", indent, p.Kind(), p.Name(), id, graph.ChainDigestString(p)[:12])
	for i := 0; i < p.FilterCount(); i++ {
		f := p.FilterAt(i)
		state := ""
		if f.Disabled() {
			state = " (disabled)"
		}
		if f.IsLoader() {
			state += " (loader)"
		}
		if f.IsHidden() {
			state += " (hidden)"
		}
		fmt.Printf("%s  [%d] %s%s\n", indent, i, f.Service(), state)
	}
	for i := 0; i < p.ChildCount(); i++ {
		printProducer(p.Child(i), depth+1)
	}
}

// session is the REPL state: the open project, the selected producer's
// filter model, the undo stack, and the session clipboard.
type session struct {
	roots      graph.Roots
	model      *model.AttachedFilters
	controller *model.FilterController
	stack      *history.Stack
	clipboard  string
}

// GraphRoots implements commands.RootsProvider.
func (s *session) GraphRoots() graph.Roots {
	return s.roots
}

// FiltersPasted implements commands.Notifier.
func (s *session) FiltersPasted(p *graph.Producer) {
	fmt.Printf("filters pasted onto %s %q\n", p.Kind(), p.Name())
}

func runRepl(cmd *cobra.Command, args []string) error {
	roots, err := loadRoots(args[0])
	if err != nil {
		return err
	}
	s := &session{roots: roots, stack: history.NewStack(100)}
	s.model = model.NewAttachedFilters(firstProducer(roots))
	s.controller = model.NewFilterController(s.model)
	s.controller.SetUndoRedoObserver(func(f *graph.Filter) {
		fmt.Printf("filter %s updated\n", f.Service())
	})

	fmt.Println("filtergraph repl - type 'help' for commands, 'quit' to exit")
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("filtergraph> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := s.handle(line); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func firstProducer(roots graph.Roots) *graph.Producer {
	switch {
	case roots.Clip.IsValid():
		return roots.Clip
	case roots.Timeline.IsValid():
		return roots.Timeline
	default:
		return roots.Bin
	}
}

func (s *session) handle(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "help":
		fmt.Println(`commands:
  select <name>           select the named producer as edit target
  print                   show the selected producer's filter chain
  add <service> <row>     insert a filter at a row
  remove <row>            remove the filter at a row
  move <from> <to>        move a filter between rows
  disable <row>           bypass the filter at a row
  enable <row>            re-enable the filter at a row
  set <row> <name> <val>  change a filter parameter
  copy                    copy the chain to the session clipboard
  paste                   paste the clipboard onto the target
  undo / redo             navigate the history
  history                 show undo/redo availability
  validate                run structural validation
  quit                    exit`)
		return nil
	case "select":
		if len(fields) != 2 {
			return fmt.Errorf("usage: select <name>")
		}
		p := findByName(s.roots, fields[1])
		if !p.IsValid() {
			return fmt.Errorf("no producer named %q", fields[1])
		}
		s.model.SetProducer(p)
		fmt.Printf("selected %s %q\n", p.Kind(), p.Name())
		return nil
	case "print":
		printProducer(s.producer(), 0)
		return nil
	case "add":
		if len(fields) != 3 {
			return fmt.Errorf("usage: add <service> <row>")
		}
		row, err := strconv.Atoi(fields[2])
		if err != nil {
			return err
		}
		c, err := commands.NewAddCommand(s.model, s, fields[1], graph.NewFilter(fields[1]), row, commands.AddSingle)
		if err != nil {
			return err
		}
		return s.stack.Push(c)
	case "remove":
		row, err := s.rowArg(fields)
		if err != nil {
			return err
		}
		f := s.model.GetService(row)
		if f == nil {
			return fmt.Errorf("no filter at row %d", row)
		}
		c, err := commands.NewRemoveCommand(s.model, s, f.Service(), f, row)
		if err != nil {
			return err
		}
		return s.stack.Push(c)
	case "move":
		if len(fields) != 3 {
			return fmt.Errorf("usage: move <from> <to>")
		}
		from, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		to, err := strconv.Atoi(fields[2])
		if err != nil {
			return err
		}
		f := s.model.GetService(from)
		if f == nil {
			return fmt.Errorf("no filter at row %d", from)
		}
		c, err := commands.NewMoveCommand(s.model, s, f.Service(), from, to)
		if err != nil {
			return err
		}
		return s.stack.Push(c)
	case "disable", "enable":
		row, err := s.rowArg(fields)
		if err != nil {
			return err
		}
		f := s.model.GetService(row)
		if f == nil {
			return fmt.Errorf("no filter at row %d", row)
		}
		c, err := commands.NewDisableCommand(s.model, s, f.Service(), row, fields[0] == "disable")
		if err != nil {
			return err
		}
		return s.stack.Push(c)
	case "set":
		if len(fields) != 4 {
			return fmt.Errorf("usage: set <row> <name> <value>")
		}
		row, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		f := s.model.GetService(row)
		if f == nil {
			return fmt.Errorf("no filter at row %d", row)
		}
		// The edit is applied live first; the command snapshots around it.
		before := f.Props().Clone()
		f.Props().Set(fields[2], fields[3])
		c, err := commands.NewParameterCommand(f.Service(), s.controller, s, row, before, fields[2])
		if err != nil {
			return err
		}
		return s.stack.Push(c)
	case "copy":
		doc, err := graph.ExportChain(s.producer())
		if err != nil {
			return err
		}
		s.clipboard = doc
		fmt.Println("chain copied")
		return nil
	case "paste":
		if s.clipboard == "" {
			return fmt.Errorf("clipboard is empty")
		}
		c, err := commands.NewPasteCommand(s.model, s, s.clipboard, s)
		if err != nil {
			return err
		}
		return s.stack.Push(c)
	case "undo":
		if !s.stack.CanUndo() {
			fmt.Println("nothing to undo")
			return nil
		}
		fmt.Printf("undo: %s\n", s.stack.UndoText())
		return s.stack.Undo()
	case "redo":
		if !s.stack.CanRedo() {
			fmt.Println("nothing to redo")
			return nil
		}
		fmt.Printf("redo: %s\n", s.stack.RedoText())
		return s.stack.Redo()
	case "history":
		fmt.Printf("%d commands, undo=%q redo=%q\n", s.stack.Len(), s.stack.UndoText(), s.stack.RedoText())
		return nil
	case "validate":
		findings := graph.Validate(s.roots)
		if len(findings) == 0 {
			fmt.Println("no findings")
		}
		for _, f := range findings {
			fmt.Println(f)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q (try 'help')", fields[0])
	}
}

func (s *session) producer() *graph.Producer {
	return s.model.Producer()
}

func (s *session) rowArg(fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("usage: %s <row>", fields[0])
	}
	return strconv.Atoi(fields[1])
}

func findByName(roots graph.Roots, name string) *graph.Producer {
	for _, root := range []*graph.Producer{roots.Timeline, roots.Bin, roots.Clip} {
		if p := findByNameIn(root, name); p.IsValid() {
			return p
		}
	}
	return nil
}

func findByNameIn(p *graph.Producer, name string) *graph.Producer {
	if !p.IsValid() {
		return nil
	}
	if p.Name() == name {
		return p
	}
	for i := 0; i < p.ChildCount(); i++ {
		if found := findByNameIn(p.Child(i), name); found.IsValid() {
			return found
		}
	}
	return nil
}
