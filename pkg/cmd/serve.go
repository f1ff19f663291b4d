package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/config"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/server"
)

func init() {
	ServeCmd.Flags().String(config.KeyAddr, ":8080", "address to listen on")
	viper.BindPFlags(ServeCmd.Flags())
}

var (
	ServeCmd = &cobra.Command{
		Use:   ServeCmdName,
		Short: ServeCmdShort,
		Long:  ServeCmdLong,
		RunE:  serveCmdFunc(),
	}
)

func serveCmdFunc() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		cfg, log, est, err := setup(reg)
		if err != nil {
			return err
		}
		defer log.Sync()

		serve := server.NewHTTPServer(cfg.Addr, est, log, reg)

		signalCh := make(chan os.Signal, 1)

		go func() {
			log.Info("listening", "addr", cfg.Addr)
			if err := serve.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("server stopped", "error", err)
				signalCh <- os.Interrupt
			}
		}()

		signal.Notify(signalCh, os.Interrupt)

		sig := <-signalCh

		log.Info("shutting down the server", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return serve.Shutdown(ctx)
	}
}
