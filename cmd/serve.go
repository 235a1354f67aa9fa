package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/knightsbridge/faqsite/internal/session"
	"github.com/knightsbridge/faqsite/internal/web"
)

var (
	servePort   int
	serveOpen   bool
	serveRetain time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the FAQ web server",
	Long: `Starts the FAQ web server: the FAQ page, the extension download, the
JSON API under /api and the live download status socket at /ws/status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		database, ledger, err := openLedger(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if serveRetain > 0 {
			n, err := ledger.DeleteBefore(cmd.Context(), time.Now().Add(-serveRetain))
			if err != nil {
				return fmt.Errorf("pruning download ledger: %w", err)
			}
			if n > 0 {
				fmt.Fprintf(os.Stderr, "Pruned %d download attempts older than %s\n", n, serveRetain)
			}
		}

		srv := web.New(web.Config{
			Port:          cfg.Port,
			AllowAll:      cfg.CORSAllowAll,
			SecureCookies: cfg.SecureCookies,
		}, session.NewStore(cfg.SessionTTL, cfg.Dark()), buildOrchestrator(cfg, ledger, nil), ledger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		url := fmt.Sprintf("http://localhost:%d/", cfg.Port)
		fmt.Fprintf(os.Stderr, "faqsite server v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())
		fmt.Fprintf(os.Stderr, "  Download fallback: %s\n", cfg.Extension.Fallback)

		if serveOpen {
			go func() {
				time.Sleep(300 * time.Millisecond)
				if err := browser.OpenURL(url); err != nil {
					fmt.Fprintf(os.Stderr, "Could not open browser, visit %s\n", url)
				}
			}()
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the FAQ page in a browser")
	serveCmd.Flags().DurationVar(&serveRetain, "retain", 0, "delete download attempts older than this on startup (0 keeps all)")
	rootCmd.AddCommand(serveCmd)
}
