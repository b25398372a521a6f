package placeholder_sdk

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/postboard/placeholder_sdk_go/internal/devseed"
	"github.com/postboard/placeholder_sdk_go/internal/httpx"
	"github.com/postboard/placeholder_sdk_go/pkg/comments"
	"github.com/postboard/placeholder_sdk_go/pkg/placeholder/mock"
	"github.com/postboard/placeholder_sdk_go/pkg/posts"
	"github.com/postboard/placeholder_sdk_go/pkg/users"
)

const (
	envMode       = "PLACEHOLDER_RUNTIME_MODE"
	envAPIURL     = "PLACEHOLDER_API_URL"
	envMockSeed   = "PLACEHOLDER_MOCK_SEED"
	envTimeout    = "PLACEHOLDER_HTTP_TIMEOUT"
	envMaxRetries = "PLACEHOLDER_MAX_RETRIES"

	ModeAuto = "auto"
	ModeHTTP = "http"
	ModeMock = "mock"

	// DefaultBaseURL is the hosted API used in http mode when no URL is set.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	mockBaseURL = "http://placeholder.mock/"
)

// Config selects the backend and transport settings.
type Config struct {
	Mode       string
	BaseURL    string
	SeedPath   string
	Timeout    time.Duration
	MaxRetries int
}

// Clients bundles the three resource clients.
type Clients struct {
	Posts    *posts.Client
	Comments *comments.Client
	Users    *users.Client
	// Mode is the resolved mode, "http" or "mock".
	Mode string
	// Mock is the backing store in mock mode and nil otherwise.
	Mock *mock.Mock
}

// ConfigFromEnv reads Config from the PLACEHOLDER_* variables.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Mode:     strings.ToLower(strings.TrimSpace(os.Getenv(envMode))),
		BaseURL:  strings.TrimSpace(os.Getenv(envAPIURL)),
		SeedPath: strings.TrimSpace(os.Getenv(envMockSeed)),
	}
	if raw := strings.TrimSpace(os.Getenv(envTimeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("placeholder_sdk: invalid %s %q: %w", envTimeout, raw, err)
		}
		cfg.Timeout = d
	}
	if raw := strings.TrimSpace(os.Getenv(envMaxRetries)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("placeholder_sdk: invalid %s %q", envMaxRetries, raw)
		}
		cfg.MaxRetries = n
	}
	return cfg, nil
}

// NewFromEnv initialises the clients from environment variables.
func NewFromEnv() (*Clients, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// New initialises the clients described by cfg.
func New(cfg Config) (*Clients, error) {
	switch cfg.Mode {
	case "", ModeAuto:
		if cfg.BaseURL != "" {
			return newHTTPClients(cfg)
		}
		return newMockClients(cfg)
	case ModeHTTP:
		return newHTTPClients(cfg)
	case ModeMock:
		return newMockClients(cfg)
	default:
		return nil, fmt.Errorf("placeholder_sdk: unsupported %s value %q", envMode, cfg.Mode)
	}
}

func transportOptions(cfg Config) []httpx.Option {
	var opts []httpx.Option
	if cfg.Timeout > 0 {
		opts = append(opts, httpx.WithTimeout(cfg.Timeout))
	}
	if cfg.MaxRetries > 0 {
		policy := httpx.DefaultRetryPolicy
		policy.MaxRetries = cfg.MaxRetries
		opts = append(opts, httpx.WithRetryPolicy(policy))
	}
	return opts
}

func newHTTPClients(cfg Config) (*Clients, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cl, err := httpx.NewClient(baseURL, transportOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("placeholder_sdk: init HTTP client: %w", err)
	}
	glog.V(1).Infof("placeholder_sdk: http mode against %s", cl.BaseURL())
	return bundle(cl, ModeHTTP, nil), nil
}

func newMockClients(cfg Config) (*Clients, error) {
	var seed *devseed.Seed
	if cfg.SeedPath != "" {
		loaded, err := devseed.Load(cfg.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("placeholder_sdk: load mock seed: %w", err)
		}
		seed = loaded
	}
	store, err := mock.NewSeeded(seed)
	if err != nil {
		return nil, fmt.Errorf("placeholder_sdk: apply mock seed: %w", err)
	}
	opts := append(transportOptions(cfg), httpx.WithTransport(mock.Transport(mock.Handler(store))))
	cl, err := httpx.NewClient(mockBaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("placeholder_sdk: init mock client: %w", err)
	}
	glog.V(1).Infof("placeholder_sdk: mock mode with %d posts, %d users", store.Len(mock.Posts), store.Len(mock.Users))
	return bundle(cl, ModeMock, store), nil
}

func bundle(cl *httpx.Client, mode string, store *mock.Mock) *Clients {
	us := users.NewWithDoer(cl)
	return &Clients{
		Posts:    posts.NewWithDoer(cl, us),
		Comments: comments.NewWithDoer(cl),
		Users:    us,
		Mode:     mode,
		Mock:     store,
	}
}
