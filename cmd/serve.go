package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cryptobook/internal/cryptoapi"
	"github.com/ziadkadry99/cryptobook/internal/metrics"
	"github.com/ziadkadry99/cryptobook/internal/pages"
	"github.com/ziadkadry99/cryptobook/internal/routes"
	"github.com/ziadkadry99/cryptobook/internal/server"
	"github.com/ziadkadry99/cryptobook/internal/shell"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the book server",
	Long: `Starts the HTTP server that renders the book: every chapter in the table of
contents, the sidebar toggle, the header scroll stream on /ws/scroll and
Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		log := newLogger(cfg)

		model, err := routes.Load(cfg.RoutesFile)
		if err != nil {
			return fmt.Errorf("loading routes: %w", err)
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := metrics.New(reg)

		client := cryptoapi.NewClient(cfg.ServiceURL,
			cryptoapi.WithTimeout(cfg.RequestTimeout()),
			cryptoapi.WithMaxRetries(cfg.MaxRetries),
			cryptoapi.WithLogger(log),
			cryptoapi.WithRecorder(m),
		)

		catalogue, err := pages.NewCatalogue(client)
		if err != nil {
			return fmt.Errorf("building pages: %w", err)
		}

		book, err := shell.New(model, catalogue, shell.Options{
			Title:   cfg.Title,
			Logger:  log,
			Metrics: m,
		})
		if err != nil {
			return fmt.Errorf("building shell: %w", err)
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, log, reg)
		book.RegisterRoutes(srv.Router())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info("serving book",
			"port", cfg.Port,
			"chapters", model.Len(),
			"service_url", cfg.ServiceURL,
		)
		return srv.Serve(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 3000, "Port to listen on (overrides the config file)")
	rootCmd.AddCommand(serveCmd)
}
