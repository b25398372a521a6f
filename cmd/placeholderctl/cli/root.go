// Package cli implements the placeholderctl command tree.
package cli

import (
	goflag "flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/postboard/placeholder_sdk_go/pkg/placeholder_sdk"
)

type app struct {
	clients *placeholder_sdk.Clients

	apiURL   string
	mode     string
	seed     string
	timeout  time.Duration
	retries  int
	asJSON   bool
	debug    bool
	maxWidth int
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "placeholderctl",
		Short:         "Read and modify posts, comments and users on the placeholder API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.connect(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.apiURL, "api-url", "", "API base URL (env PLACEHOLDER_API_URL)")
	pf.StringVar(&a.mode, "mode", "", "runtime mode: auto, http or mock (env PLACEHOLDER_RUNTIME_MODE)")
	pf.StringVar(&a.seed, "seed", "", "seed file for mock mode (env PLACEHOLDER_MOCK_SEED)")
	pf.DurationVar(&a.timeout, "timeout", 0, "per-request timeout, 0 for none (env PLACEHOLDER_HTTP_TIMEOUT)")
	pf.IntVar(&a.retries, "retries", 0, "retries for transient failures (env PLACEHOLDER_MAX_RETRIES)")
	pf.BoolVar(&a.asJSON, "json", false, "print raw JSON instead of tables")
	pf.BoolVar(&a.debug, "debug", false, "dump decoded values")
	pf.IntVar(&a.maxWidth, "width", 60, "maximum body width in tables")
	pf.AddGoFlagSet(goflag.CommandLine)

	root.AddCommand(a.postsCmd(), a.commentsCmd(), a.usersCmd())
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	defer glog.Flush()
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgHiRed, color.Bold).Sprint("error: ")+err.Error())
		glog.Flush()
		os.Exit(1)
	}
}

func (a *app) connect(cmd *cobra.Command) error {
	cfg, err := placeholder_sdk.ConfigFromEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.BaseURL = a.apiURL
	}
	if flags.Changed("mode") {
		cfg.Mode = a.mode
	}
	if flags.Changed("seed") {
		cfg.SeedPath = a.seed
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("retries") {
		cfg.MaxRetries = a.retries
	}
	clients, err := placeholder_sdk.New(cfg)
	if err != nil {
		return err
	}
	glog.V(1).Infof("placeholderctl: connected in %s mode", clients.Mode)
	a.clients = clients
	return nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}
