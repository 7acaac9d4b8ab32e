package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nftstake/x/nftstake/client/rest"
	"nftstake/x/nftstake/client/storeview"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nftstake-gateway",
		Short: "Read-only REST gateway for the nftstake ledger",
	}
	root.AddCommand(ServeCommand())
	return root
}

func ServeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serves nftstake queries over HTTP against a node",
		Args:  cobra.NoArgs,
		RunE:  serveFunc,
	}
	AddFlags(c.Flags())
	return c
}

func serveFunc(c *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(viper.New(), c.Flags())
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewLogger(os.Stderr, log.LevelOption(level)).With("module", "nftstake-gateway")

	rpc, err := client.NewClientFromNode(cfg.Node)
	if err != nil {
		return err
	}
	clientCtx := client.Context{}.WithClient(rpc).WithNodeURI(cfg.Node).WithHeight(cfg.Height)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           NewRouter(storeview.New(clientCtx)),
		ReadHeaderTimeout: cfg.ReadTimeout,
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "listen", cfg.Listen, "node", cfg.Node)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts the ledger routes and a liveness probe.
func NewRouter(reader rest.Reader) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	rest.RegisterRoutes(r, reader)
	return r
}
