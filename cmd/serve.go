package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tomatolog/internal/config"
	"tomatolog/internal/server"
)

// serveCmd runs the chat HTTP front end.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the chat HTTP server",
	Long: `Run the HTTP server exposing POST /chat. Front ends send free text
and receive the logger's confirmation text back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := newExtractor()
		if err != nil {
			return err
		}
		st, err := newLedgerStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		srv := server.New(viper.GetInt("server.port"), extractor, newReconciler(st))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	serveCmd.Flags().Int("port", config.DefaultServerPort, "port to listen on")
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}
