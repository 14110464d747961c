package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state and FlagSet.Args().
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// NewFlagSet returns a FlagSet for a terminal command: errors are returned rather than exiting,
// and flag's own usage output is discarded since the terminal log reports the error instead.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "grid").
// fs is that command's FlagSet (nil means no flags); run is called after fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = NewFlagSet(name)
	}
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Parse interprets line as a terminal line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if strings.TrimSpace(line) == strings.TrimSpace(prefix) {
		return nil, true
	}
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Every flag is reset to its default before parsing. Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand (try: cmd help)")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	// FlagSets are reused; a previous run or failed parse must not leak flag values into this one.
	cmd.FlagSet.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run()
}

// Help returns one line per registered command, sorted by name.
func (r *Registry) Help() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, fmt.Sprintf("cmd %s  %s", name, r.cmds[name].Usage))
	}
	return out
}

// Dispatch routes one submitted line: "cmd ..." lines run through the registry and their error is
// returned, anything else is passed to fallback (which may be nil).
func (r *Registry) Dispatch(line string, fallback func(string)) error {
	if args, isCmd := Parse(line); isCmd {
		return r.Execute(args)
	}
	if fallback != nil {
		fallback(line)
	}
	return nil
}

// RegisterToggle adds a command taking exactly one of --show or --hide and calls set with
// true for --show and false for --hide.
func (r *Registry) RegisterToggle(name, what string, set func(bool)) {
	fs := NewFlagSet(name)
	show := fs.Bool("show", false, "show the "+what)
	hide := fs.Bool("hide", false, "hide the "+what)
	r.Register(name, "--show|--hide  "+what, fs, func() error {
		if *show == *hide {
			return fmt.Errorf("%s: use --show or --hide", name)
		}
		set(*show)
		return nil
	})
}
