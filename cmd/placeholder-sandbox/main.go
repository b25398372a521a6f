package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/golang/glog"

	"github.com/postboard/placeholder_sdk_go/internal/devseed"
	"github.com/postboard/placeholder_sdk_go/pkg/placeholder/mock"
)

const SandboxVersion = "0.1.0"

const usage = `Placeholder sandbox.

Serves an in-memory copy of the posts, comments and users API so the SDK and
placeholderctl can run without reaching the hosted service.

Usage:
    placeholder-sandbox [--addr=<addr>] [--seed=<path>] [--latency=<duration>] [--fail=<rule>] [--verbosity=<level>]
    placeholder-sandbox -h | --help
    placeholder-sandbox --version

Options:
    -h --help              Show this screen.
    --version              Show version.
    --addr=<addr>          Listen address [default: :8787].
    --seed=<path>          YAML seed file; the built-in fixtures are used when omitted.
    --latency=<duration>   Artificial latency per request, e.g. 150ms [default: 0s].
    --fail=<rule>          Failure injection, rate=<float>,code=<httpStatus>.
    --verbosity=<level>    glog verbosity [default: 0].`

type options struct {
	Addr    string `docopt:"--addr"`
	Seed    string `docopt:"--seed"`
	Latency string `docopt:"--latency"`
	Fail    string `docopt:"--fail"`
	Verbose string `docopt:"--verbosity"`
	Help    bool   `docopt:"--help"`
	Version bool   `docopt:"--version"`
}

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], SandboxVersion)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	var cfg options
	if err := opts.Bind(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flag.Set("logtostderr", "true")
	flag.Set("v", cfg.Verbose)
	defer glog.Flush()

	latency, err := time.ParseDuration(cfg.Latency)
	if err != nil {
		glog.Exitf("parse --latency: %v", err)
	}
	failCfg, err := parseFailConfig(cfg.Fail)
	if err != nil {
		glog.Exitf("parse --fail: %v", err)
	}

	seed := devseed.Default()
	if cfg.Seed != "" {
		if seed, err = devseed.Load(cfg.Seed); err != nil {
			glog.Exitf("load seed: %v", err)
		}
	}
	store, err := mock.NewSeeded(seed)
	if err != nil {
		glog.Exitf("apply seed: %v", err)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           withMiddleware(latency, failCfg, mock.Handler(store)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	glog.Infof("placeholder-sandbox listening on %s (%d posts, %d comments, %d users)",
		cfg.Addr, store.Len(mock.Posts), store.Len(mock.Comments), store.Len(mock.Users))
	host := cfg.Addr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	fmt.Println()
	fmt.Println("export PLACEHOLDER_RUNTIME_MODE=http")
	fmt.Printf("export PLACEHOLDER_API_URL=http://%s\n", host)
	fmt.Println()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		glog.Exitf("server failed: %v", err)
	}
}
