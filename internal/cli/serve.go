/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

// This file implements the "serve" command, which publishes the catalog and
// its metrics over HTTP.

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/errcode/httpx"
	"dirpx.dev/errcode/registry"
)

const shutdownTimeout = 5 * time.Second

// NewServeCmd builds the serve command over registry.Default().
func NewServeCmd(logger *zap.Logger) *cobra.Command {
	return NewCatalogManager(nil, logger).newServeCmd()
}

func (m *CatalogManager) newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and its metrics over HTTP",
		Long: `Serve the catalog over HTTP:

  GET /catalog?format=json|xml|yaml   catalog tree
  GET /metrics                        Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.Serve(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":9464", "Listen address")

	return cmd
}

// Handler returns the HTTP handler of the serve command.
func (m *CatalogManager) Handler() http.Handler {
	preg := prometheus.NewRegistry()
	preg.MustRegister(
		registry.NewCollector(m.reg),
		collectors.NewGoCollector(),
	)

	w := httpx.Writer{Logger: m.logger}
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(preg, promhttp.HandlerOpts{}))
	mux.Handle("GET /catalog", w.Handle(func(rw http.ResponseWriter, r *http.Request) error {
		format := r.URL.Query().Get("format")
		if format == "" {
			format = registry.FormatJSON.String()
		}
		f, err := registry.ParseFormat(format)
		if err != nil {
			return fail(ErrBadFormat, err)
		}
		data, err := m.reg.Export(f)
		if err != nil {
			return fail(ErrExport, err)
		}
		rw.Header().Set("Content-Type", contentTypes[f])
		_, _ = rw.Write(data)
		return nil
	}))
	return mux
}

var contentTypes = map[registry.Format]string{
	registry.FormatJSON: "application/json",
	registry.FormatXML:  "application/xml",
	registry.FormatYAML: "application/yaml",
}

// Serve listens on addr until ctx is done.
func (m *CatalogManager) Serve(ctx context.Context, addr string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		m.logger.Info("serving catalog", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		m.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
