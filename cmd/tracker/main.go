// Command tracker prints a summary line for every configured sensor package.
package main

import (
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/service"
	"context"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatalf("FATAL: Could not load config: %v", err)
	}

	if err := run(context.Background(), cfg.Tracker, os.Stdout, logger); err != nil {
		logger.Fatalf("FATAL: %v", err)
	}
}

// run processes the configured packages and writes one line per successful package.
// Lines of packages processed before an aborting failure are still written.
func run(ctx context.Context, cfg config.TrackerConfig, out io.Writer, logger *log.Logger) error {
	svc := service.NewTrainingService(service.Options{
		SkipFailed: cfg.SkipFailed,
		Logger:     logger,
	})

	results, err := svc.ProcessPackages(ctx, cfg.Packages)
	locale := cfg.ParsedLocale()
	for _, r := range results {
		if r.Info == nil {
			continue
		}
		if _, werr := fmt.Fprintln(out, r.Info.Format(locale)); werr != nil {
			return werr
		}
	}
	return err
}
