package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/de-tools/data-lens/pkg/adapters"
	"github.com/de-tools/data-lens/pkg/models/report"
	terminalexport "github.com/de-tools/data-lens/pkg/runtime/terminal/export"
	"github.com/de-tools/data-lens/pkg/services/export"
	"github.com/de-tools/data-lens/pkg/services/quality"
	"github.com/de-tools/data-lens/pkg/services/section"
	"github.com/de-tools/data-lens/pkg/services/session"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	filePath   string
	exportArts bool
	env        Env
	reporter   *terminalexport.Reporter
}

func NewAnalyzeCmd(env Env, reporter *terminalexport.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Upload a dataset and render its quality report",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.filePath, "file", "", "Path to the dataset to analyze")
	cmd.Flags().BoolVar(&ac.exportArts, "export", false,
		"Save chart images, the report JSON and the cleaned dataset to the artifacts directory")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 120*time.Second)
	defer cancel()

	profile, err := ac.env.Profile()
	if err != nil {
		return err
	}

	sess, err := ac.env.openSession(profile)
	if err != nil {
		return err
	}
	token, err := sess.CurrentToken()
	if errors.Is(err, session.ErrNoToken) {
		return fmt.Errorf("not logged in, run `data-lens login` first")
	}
	if err != nil {
		return err
	}

	file, err := os.Open(ac.filePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", ac.filePath, err)
	}
	defer file.Close()

	client := quality.NewClient(profile.ReportURL, nil)
	doc, err := client.Analyze(ctx, token, filepath.Base(ac.filePath), file)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	rep := adapters.MapDocumentToView(doc)
	if err := ac.reporter.Handle(&rep); err != nil {
		return err
	}

	if !ac.exportArts {
		return nil
	}
	return ac.exportArtifacts(ctx, profile.ArtifactsDir, profile.ReportURL, doc)
}

func (ac *AnalyzeCmd) exportArtifacts(
	ctx context.Context,
	dir, baseURL string,
	doc *report.Document,
) error {
	engine, err := export.NewEngine(dir, nil)
	if err != nil {
		return err
	}

	var saved []string

	charts := []struct {
		region   *export.ChartRegion
		filename string
	}{
		{export.NewChartRegion(section.MissingValues, doc.MissingValues), export.MissingValuesImage},
		{export.NewChartRegion(section.Outliers, doc.OutliersDetected), export.OutliersImage},
	}
	for _, c := range charts {
		path, err := engine.ExportChartImage(c.region, c.filename)
		if err != nil {
			return err
		}
		if path != "" {
			saved = append(saved, path)
		}
	}

	path, err := engine.ExportReportJSON(doc)
	if err != nil {
		return err
	}
	saved = append(saved, path)

	cleaned, err := engine.DownloadCleanedFile(ctx, baseURL, doc.CleanedFileDownload)
	switch {
	case errors.Is(err, export.ErrNoCleanedFile):
		fmt.Fprintln(ac.env.Output, "No cleaned dataset offered by the service.")
	case err != nil:
		return err
	default:
		saved = append(saved, cleaned)
	}

	for _, p := range saved {
		fmt.Fprintf(ac.env.Output, "Saved %s\n", p)
	}
	return nil
}
