package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/petdex/googlemaps"
	"github.com/fwojciec/petdex/sqlite"

	petdexslog "github.com/fwojciec/petdex/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Provider API key. Set before calling Run().
	APIKey string

	// Provider base URL override. Empty means the real provider; tests
	// point this at a local server.
	BaseURL string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		APIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("petdex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		// Coordinates like "-23.55,-46.63" start with a hyphen.
		kong.WithHyphenPrefixedParameters(true),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'petdex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PETDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Prefs = sqlite.NewPrefsService(m.DB)

	// The prefs command is local-only; everything else talks to the
	// provider and needs credentials.
	if cmd != "prefs" {
		if m.APIKey == "" {
			fmt.Fprintln(stderr, "GOOGLE_MAPS_API_KEY environment variable not set")
			return fmt.Errorf("GOOGLE_MAPS_API_KEY not set")
		}

		opts := []googlemaps.Option{}
		if m.BaseURL != "" {
			opts = append(opts, googlemaps.WithBaseURL(m.BaseURL))
		}
		client := googlemaps.NewClient(m.APIKey, opts...)

		deps.Searcher = petdexslog.NewLoggingSearcher(client, deps.Logger)
		deps.Geocoder = client
		deps.Details = petdexslog.NewLoggingDetailsService(client, deps.Logger)
		deps.Planner = petdexslog.NewLoggingRoutePlanner(client, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PETDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "petdex.db"
	}
	dir := filepath.Join(home, ".petdex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "petdex.db")
}
