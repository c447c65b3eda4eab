package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"coala/internal/adapters/authapi"
	web "coala/internal/adapters/http"
	"coala/internal/adapters/http/perf"
	"coala/internal/adapters/storage"
	activityStore "coala/internal/adapters/storage/activity"
	"coala/internal/adapters/storage/clientstore"
	draftStore "coala/internal/adapters/storage/draft"
	homeStore "coala/internal/adapters/storage/home"
	infoStore "coala/internal/adapters/storage/info"
	postStore "coala/internal/adapters/storage/post"
	recruitStore "coala/internal/adapters/storage/recruit"
	"coala/internal/config"
	"coala/internal/domain/navigation"
	"coala/internal/domain/post"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:           "coala",
		Short:         "코알라 club portal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(logLevel)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(serveCmd(&configPath), routesCmd(), &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coala %s\n", version)
		},
	})
	return cmd
}

func setupLogging(level string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func serveCmd(configPath *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func openDB(path string) (*sql.DB, error) {
	// WAL mode, foreign keys and busy timeout on every connection
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	if err := storage.InitDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init database: %w", err)
	}
	return db, nil
}

func buildStores(cfg config.Config, db *sql.DB, collector *perf.Collector) (*web.Stores, error) {
	timedDB := storage.NewTimedDB(db, collector, cfg.SlowQuery())

	posts, err := postStore.NewFixtureStore()
	if err != nil {
		return nil, err
	}
	recruits, err := recruitStore.NewFixtureStore()
	if err != nil {
		return nil, err
	}
	activity, err := activityStore.NewFixtureStore()
	if err != nil {
		return nil, err
	}
	info, err := infoStore.NewFixtureStore()
	if err != nil {
		return nil, err
	}
	home, err := homeStore.NewFixtureStore()
	if err != nil {
		return nil, err
	}
	return &web.Stores{
		PostStore:     posts,
		RecruitStore:  recruits,
		ActivityStore: activity,
		InfoStore:     info,
		HomeStore:     home,
		ClientStore:   clientstore.NewSQLiteStore(timedDB),
		DraftStore:    draftStore.NewSQLiteStore(timedDB),
	}, nil
}

func serve(ctx context.Context, cfg config.Config) error {
	db, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Println("Database initialized successfully!")

	collector := perf.NewCollector(perf.DefaultRingSize)
	stores, err := buildStores(cfg, db, collector)
	if err != nil {
		return fmt.Errorf("load datasets: %w", err)
	}

	csrfKey, err := web.LoadCSRFKey(cfg.CSRFKey, cfg.Production())
	if err != nil {
		return err
	}
	if cfg.APIBaseURL == "" {
		log.Println("WARNING: COALA_API_BASE_URL is not set; login and signup will fail")
	}
	backend := authapi.NewBackend(authapi.Config{
		BaseURL:  cfg.APIBaseURL,
		Recorder: collector,
	})

	handler, stopMux := web.NewMux(web.Options{
		CSRFKey:        csrfKey,
		Production:     cfg.Production(),
		TrustedOrigins: cfg.TrustedOrigins,
		RatePerMinute:  cfg.RatePerMinute,
		SlowRequest:    cfg.SlowRequest(),
	}, stores, backend, collector)
	defer stopMux()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("coala %s starting on %s (env=%s)", version, cfg.Addr, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdown)
		defer cancel()
		slog.Info("server_shutdown", "addr", cfg.Addr)
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print HTTP routes and context panels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRoutes(cmd.OutOrStdout())
		},
	}
}

func printRoutes(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tDESCRIPTION")
	for _, r := range web.Routes() {
		fmt.Fprintf(tw, "%s\t%s\n", r.Pattern, r.Description)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ROUTE\tPANEL\tITEMS")
	for _, route := range navigation.AllRoutes {
		panel, ok := navigation.BuildContextPanel(route, post.DefaultBoard)
		if !ok {
			fmt.Fprintf(tw, "%s\t-\t-\n", route.Path())
			continue
		}
		ids := make([]string, 0, len(panel.Items))
		for _, item := range panel.Items {
			ids = append(ids, string(item.Kind)+":"+item.Value)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", route.Path(), panel.Title, strings.Join(ids, " "))
	}
	return tw.Flush()
}
