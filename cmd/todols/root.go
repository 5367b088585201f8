// Root command for the todols CLI.
package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mesh-intelligence/todols/internal/logging"
	"github.com/mesh-intelligence/todols/internal/paths"
	"github.com/mesh-intelligence/todols/internal/tasklist"
	"github.com/mesh-intelligence/todols/pkg/types"
)

// rootFlags holds the flag values of one invocation.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonOut   bool
	noColor   bool

	add      bool
	update   int
	delete   []int
	sort     string
	reverse  bool
	filter   bool
	names    []string
	dues     []string
	statuses []string
}

// app carries the state shared by the root command and its subcommands.
// PersistentPreRunE fills settings and logger before any RunE runs.
type app struct {
	flags    rootFlags
	settings settings
	logger   *log.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "todols",
		Short: "todols keeps a personal task list on the command line",
		Long: `todols keeps a personal task list in a local file.

With no flags it prints the list. Add, update, delete and sort may be
combined in one run and are applied in that order; filter runs alone and
never changes the list. Positions are the Sl.No. column of the last listing.`,
		Example: `  todols -a -N "buy milk" -D "01-06-2026 10:00:00"
  todols -u 2 -T completed
  todols -d 1 -d 3
  todols -s duedate -r
  todols -f -T in-progress`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRoot,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory holding the task file (default: platform data dir)")
	pf.BoolVar(&a.flags.jsonOut, "json", false, "output as JSON")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")

	a.flags.bind(cmd.Flags())

	cmd.AddCommand(newInitCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// bind registers the action flags on f. Name, datetime and taskstatus are
// string arrays so that values containing commas stay whole.
func (rf *rootFlags) bind(f *pflag.FlagSet) {
	f.BoolVarP(&rf.add, "add", "a", false, "add tasks from --name, --datetime and --taskstatus")
	f.IntVarP(&rf.update, "update", "u", 0, "update the task at this position")
	f.IntSliceVarP(&rf.delete, "delete", "d", nil, "delete the tasks at these positions")
	f.StringVarP(&rf.sort, "sort", "s", "", "sort by "+strings.Join(tasklist.SortKeyNames, ", "))
	f.BoolVarP(&rf.reverse, "reverse", "r", false, "reverse the sort order or the filter match")
	f.BoolVarP(&rf.filter, "filter", "f", false, "show only tasks matching one of --name, --datetime or --taskstatus")
	f.StringArrayVarP(&rf.names, "name", "N", nil, "task name, or a regular expression when filtering")
	f.StringArrayVarP(&rf.dues, "datetime", "D", nil, `due date as "DD-MM-YYYY HH:MM:SS", or a regular expression when filtering`)
	f.StringArrayVarP(&rf.statuses, "taskstatus", "T", nil, "task status: "+strings.Join(types.StatusNames, ", "))
}

// setup resolves the config directory, loads config.yaml and builds the
// logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError{err: err}
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return sysError{err: err}
	}
	a.settings = settingsFrom(v, configDir)
	if a.flags.noColor {
		a.settings.color = false
	}

	a.logger = logging.NewFromConfig(cmd.ErrOrStderr(), a.settings.logLevel, a.settings.logFormat)
	a.logger.Debug("config loaded", "dir", configDir, "backend", a.settings.backend)
	return nil
}

// resolveDataDir returns the data directory following the precedence
// --data-dir flag > config.yaml data_dir > TODOLS_DATA_DIR env > default.
func (a *app) resolveDataDir() (string, error) {
	dir, err := paths.ResolveDataDir(a.flags.dataDir, a.settings.dataDir)
	if err != nil {
		return "", sysError{err: err}
	}
	return dir, nil
}

// buildRequest turns the parsed flags into a tasklist.Request.
func (a *app) buildRequest(cmd *cobra.Command) (tasklist.Request, error) {
	req := tasklist.Request{
		Add:     a.flags.add,
		Delete:  a.flags.delete,
		Reverse: a.flags.reverse,
		Filter:  a.flags.filter,
		Names:   a.flags.names,
		Dues:    a.flags.dues,
	}

	for _, s := range a.flags.statuses {
		status, err := types.ParseStatus(s)
		if err != nil {
			return req, err
		}
		req.Statuses = append(req.Statuses, status)
	}

	if cmd.Flags().Changed("update") {
		pos := a.flags.update
		req.Update = &pos
	}

	if cmd.Flags().Changed("sort") {
		key, err := tasklist.ParseSortKey(a.flags.sort)
		if err != nil {
			return req, err
		}
		req.Sort = key
	}
	return req, nil
}
