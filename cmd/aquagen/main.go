package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/aquagen/aquagen/internal/config"
	"github.com/aquagen/aquagen/internal/logger"
	"github.com/aquagen/aquagen/internal/report"
	"github.com/aquagen/aquagen/internal/tui/reportwizard"
	"github.com/aquagen/aquagen/internal/tui/theme"
)

const (
	logoText1 = "▄▀█ █▀█ █ █ ▄▀█ █▀▀ █▀▀ █▄ █"
	logoText2 = "█▀█ ▀▀█ █▄█ █▀█ █▄█ ██▄ █ ▀█"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aquagen",
	Short: "Interactive groundwater report generator",
	RunE:  runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Info("Starting report wizard (model=%s, output_dir=%s)", cfg.Model, cfg.OutputDir)

	svc := report.NewAnthropicService(cfg.Model)
	exporter := report.NewPDFExporter(cfg.OutputDir)

	return reportwizard.Run(svc, exporter, cfg.Credentials())
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

aquagen is a terminal wizard for generating groundwater assessment
reports. It walks through report type, time period, location, and the
water quality parameters to cover, asks an AI model for the analysis,
and renders the result in the terminal with optional PDF export.

Configuration precedence: environment > ./aquagen.yml > ~/.config/aquagen/aquagen.yml.
The API key is read from AQUAGEN_API_KEY or ANTHROPIC_API_KEY.`

	rootCmd.AddCommand(initCmd)
}
