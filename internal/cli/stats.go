// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dalzilio/bfdd/metrics"
)

func (c *CLI) statsCommand() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print the statistics of the manager after building a circuit",
		Long: `Stats builds the diagrams of a circuit and prints the size and usage of the
unique tables and computed caches. With --listen, the same statistics are
then served as Prometheus metrics on /metrics until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.m.Stats())
			if listen == "" {
				return nil
			}
			reg := prometheus.NewRegistry()
			if err := reg.Register(metrics.NewCollector("bfdd", s.m)); err != nil {
				return err
			}
			return c.serve(cmd.Context(), listen, reg)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "address where to serve Prometheus metrics (e.g. :9090)")
	return cmd
}

// serve exposes the metrics of reg until ctx is done. The manager is no
// longer modified at this point, so scrapes need no locking.
func (c *CLI) serve(ctx context.Context, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	c.Logger.Info("serving metrics", "addr", addr)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
