package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"datelit/internal/config"
	"datelit/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, out io.Writer) *RootCommand {
	root := &RootCommand{
		app:    NewApp(cfg, out),
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "datelit",
		Short: "Convert between Unix timestamps and UTC date/time literals",
		Long: `datelit converts Unix timestamps (seconds since 1970-01-01T00:00:00Z) to and
from the UTC literal formats used by query engines, and validates time literals.

FORMATS:
  date        %Y-%m-%d             2024-02-29
  time        %H:%M:%S             13:45:00
  datetime    %Y-%m-%d %H:%M:%S    2024-02-29 13:45:00
  time literal HH:MM:SS[.mmm]      13:45:00.250

EXAMPLES:
  datelit now                                  # Current epoch seconds
  datelit date 0                               # 1970-01-01
  datelit datetime 1709164800                  # 2024-02-29 00:00:00
  datelit time -- -1                           # 23:59:59 (use -- before negative values)
  datelit parse 2024-02-29 00:00:00            # 1709164800 (0 if malformed)
  datelit parse --strict "2024-02-30 00:00:00" # error
  datelit ordinal 2024 60                      # 1709164800
  datelit check-time 23:59:59.999              # valid
  datelit eval "timestamp_to_date(current_timestamp_seconds())"

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    DATELIT_NOW                  Fixed epoch seconds for the clock (default: system clock)
    DATELIT_DB_DSN               SQLite DSN used by eval (default: :memory:)
    DATELIT_DB_QUERY_TIMEOUT     Query timeout for eval (default: 5s)
    DATELIT_APP_TIMEOUT          Application timeout (default: 30s)
    DATELIT_APP_VERBOSE          Enable verbose output (default: false)
    DATELIT_DEBUG                Print debug output to stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}
	root.cmd.SetOut(out)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteArgs runs the root command with explicit arguments
func (r *RootCommand) ExecuteArgs(args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.Int64("now", 0, "Fixed epoch seconds for the clock (overrides DATELIT_NOW)")
	flags.String("db-dsn", "", "SQLite DSN used by eval (overrides DATELIT_DB_DSN)")
	flags.Duration("db-query-timeout", 0, "Query timeout for eval (overrides DATELIT_DB_QUERY_TIMEOUT)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides DATELIT_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides DATELIT_APP_VERBOSE)")
}

// run executes a registered command under the application timeout
func (r *RootCommand) run(name string, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()

	return r.app.Run(ctx, append([]string{name}, args...))
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	nowCmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time as epoch seconds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("now", args)
		},
	}

	dateCmd := &cobra.Command{
		Use:   "date <timestamp>",
		Short: "Format a timestamp as YYYY-MM-DD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("date", args)
		},
	}

	timeCmd := &cobra.Command{
		Use:   "time <timestamp>",
		Short: "Format a timestamp as HH:MM:SS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("time", args)
		},
	}

	datetimeCmd := &cobra.Command{
		Use:   "datetime <timestamp>",
		Short: "Format a timestamp as YYYY-MM-DD HH:MM:SS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("datetime", args)
		},
	}

	parseCmd := &cobra.Command{
		Use:   "parse <YYYY-MM-DD HH:MM:SS>",
		Short: "Convert a date time literal to epoch seconds",
		Long: `Convert a YYYY-MM-DD HH:MM:SS literal (UTC) to epoch seconds.

A malformed literal prints 0. Use --strict to fail instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strict, _ := cmd.Flags().GetBool("strict"); strict {
				return r.run("parse-strict", args)
			}
			return r.run("parse", args)
		},
	}
	parseCmd.Flags().Bool("strict", false, "Return an error for malformed literals instead of 0")

	ordinalCmd := &cobra.Command{
		Use:   "ordinal <year> <day-of-year>",
		Short: "Print UTC midnight of the given ordinal day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("ordinal", args)
		},
	}

	checkTimeCmd := &cobra.Command{
		Use:   "check-time <literal>",
		Short: "Validate an HH:MM:SS[.mmm] time literal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("check-time", args)
		},
	}

	evalCmd := &cobra.Command{
		Use:   "eval <sql expression>",
		Short: "Evaluate a SQL expression with the datelit functions",
		Long: `Evaluate SELECT <expression> on SQLite with these functions registered:

  timestamp_to_date(ts)                       timestamp_to_time(ts)
  timestamp_to_date_time(ts)                  date_time_to_timestamp(text)
  timestamp_from_year_and_day_of_year(y, d)   is_valid_time_format(text)
  is_valid_date_format(text)                  is_valid_date_time_format(text)
  current_timestamp_seconds()`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("eval", args)
		},
	}

	r.cmd.AddCommand(
		nowCmd,
		dateCmd,
		timeCmd,
		datetimeCmd,
		parseCmd,
		ordinalCmd,
		checkTimeCmd,
		evalCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// getConfigFromFlags loads the environment into the configuration, then applies
// the flags the user actually set
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("now") {
		now, _ := flags.GetInt64("now")
		overrides.Now = &now
	}
	if flags.Changed("db-dsn") {
		dsn, _ := flags.GetString("db-dsn")
		overrides.DBDSN = &dsn
	}
	if flags.Changed("db-query-timeout") {
		timeout, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &timeout
	}
	if flags.Changed("app-timeout") {
		timeout, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	if _, err := config.NewLoaderFor(r.config).LoadWithOverrides(overrides); err != nil {
		return err
	}

	logging.SetVerbose(r.config.Application.Verbose)
	return nil
}
