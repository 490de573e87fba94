package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jekabolt/organic-reports/app"
	"github.com/jekabolt/organic-reports/config"
	"github.com/jekabolt/organic-reports/internal/entity"
	gerr "github.com/jekabolt/organic-reports/internal/errors"
	"github.com/jekabolt/organic-reports/internal/metrics"
	"github.com/jekabolt/organic-reports/log"
	"github.com/spf13/cobra"
)

var (
	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export a single report as CSV",
		RunE:  runExport,
	}

	exportType   string
	exportPeriod string
	exportFrom   string
	exportTo     string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVarP(&exportType, "type", "t", entity.ReportSales.String(), "report type: sales, revenue, products, inventory")
	exportCmd.Flags().StringVarP(&exportPeriod, "period", "p", entity.Period30Days.String(), "period: 7days, 30days, 90days, custom")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "first day of a custom period (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "last day of a custom period (YYYY-MM-DD)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, '-' or empty writes to stdout, a directory gets the default filename")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	// stdout may carry the report
	slog.SetDefault(log.New(os.Stderr, cfg.Logger))

	rt := entity.ReportType(exportType)
	if !rt.Valid() {
		return fmt.Errorf("%w: %q", gerr.ErrUnknownReportType, exportType)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e, err := app.NewEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer e.Close()

	dr, err := exportRange(exportPeriod, exportFrom, exportTo, e.Location, time.Now())
	if err != nil {
		return err
	}

	res := e.Reconciler.Reconcile(ctx, dr)
	art, err := e.Exporter.Export(ctx, rt, res.Dataset, dr, res.LiveData())
	if err != nil {
		return err
	}

	if exportOut == "" || exportOut == "-" {
		_, err = cmd.OutOrStdout().Write(art.Body)
		return err
	}
	path := exportOut
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, art.Filename)
	}
	if err := os.WriteFile(path, art.Body, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	slog.Default().InfoContext(ctx, "report exported",
		slog.String("path", path),
		slog.String("outcome", res.Outcome.String()),
	)
	return nil
}

// exportRange resolves command line period flags into a validated range.
func exportRange(period, from, to string, loc *time.Location, now time.Time) (entity.DateRange, error) {
	p, err := metrics.ParsePeriod(period)
	if err != nil {
		return entity.DateRange{}, err
	}
	var custom entity.DateRange
	if from != "" {
		if custom.From, err = time.ParseInLocation(metrics.DateLayout, from, loc); err != nil {
			return entity.DateRange{}, fmt.Errorf("%w: bad --from: %v", gerr.ErrInvalidDateRange, err)
		}
	}
	if to != "" {
		if custom.To, err = time.ParseInLocation(metrics.DateLayout, to, loc); err != nil {
			return entity.DateRange{}, fmt.Errorf("%w: bad --to: %v", gerr.ErrInvalidDateRange, err)
		}
	}
	dr := metrics.ResolveDateRange(p, custom, now.In(loc))
	if err := metrics.ValidateDateRange(dr); err != nil {
		return entity.DateRange{}, err
	}
	return dr, nil
}
