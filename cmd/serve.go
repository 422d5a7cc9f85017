package cmd

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-studio/pkg/config"
	"resume-studio/pkg/pipeline"
	"resume-studio/pkg/server"
	"resume-studio/pkg/watsonx"
)

//nolint:gochecknoglobals // Cobra boilerplate
var listenAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resume generation API over HTTP",
	Long: `Serve the resume generation API over HTTP.

POST /api/v1/resumes accepts a JSON body with a profile and generation
settings and responds with the generated text plus the paths of the three
artifacts written on disk.`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "addr", ":8080", "Listen address")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	client := watsonx.NewClient(cfg.WatsonxAPIKey, cfg.WatsonxProjectID)
	pipe := pipeline.New(client)
	srv := server.New(pipe, config.DefaultCatalog(), cfg, logger)

	httpServer := &http.Server{
		Addr:              listenAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("listening", "addr", listenAddr)
	err = httpServer.ListenAndServe()
	if err != nil {
		err = errors.Wrap(err, "HTTP server failed")
		return err
	}

	return err
}
