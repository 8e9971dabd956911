package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Orelefex/avwx-decoder/internal/config"
	"github.com/Orelefex/avwx-decoder/internal/metar"
	"github.com/Orelefex/avwx-decoder/internal/source"
	"github.com/Orelefex/avwx-decoder/internal/taf"
	"github.com/Orelefex/avwx-decoder/pkg/logger"
)

var (
	// Version is injected at build time
	Version = "dev"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file (optional - will search in configs/ and root directory)")
	filePath := flag.String("file", "", "Path to a bulletin file with one or more reports")
	reportType := flag.String("type", "auto", "Report type: metar, taf or auto")
	jsonOutput := flag.Bool("json", false, "Print decoded records as JSON instead of localized text")
	flag.Parse()

	// Load configuration with fallback logic
	cfg, err := config.LoadWithFallback(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Debug("Starting avwx decoder",
		logger.String("version", Version),
		logger.String("config_path", *configPath),
	)

	// Pick a report source: bulletin file, command-line args, or stdin
	var src source.Source
	switch {
	case *filePath != "":
		src = source.FromFile(*filePath)
	case flag.NArg() > 0:
		src = source.FromArgs(flag.Args())
	default:
		src = source.FromReader(os.Stdin)
	}

	reports, err := src.Reports()
	if err != nil {
		log.Error("Failed to read reports", logger.Error(err))
		os.Exit(1)
	}
	if len(reports) == 0 {
		fmt.Fprintln(os.Stderr, "No reports to decode")
		os.Exit(1)
	}

	metarDecoder := metar.NewDecoder(log)
	tafDecoder := taf.NewDecoder(log)
	asJSON := *jsonOutput || cfg.Output.Format == "json"

	for i, raw := range reports {
		if i > 0 && !asJSON {
			fmt.Println(strings.Repeat("=", 80))
		}
		if decodeAsTAF(*reportType, raw) {
			forecast, err := tafDecoder.Decode(raw)
			if err != nil {
				log.Warn("Malformed TAF header", logger.String("raw", raw), logger.Error(err))
			}
			emit(forecast, forecast.Pretty(), asJSON)
		} else {
			report := metarDecoder.Decode(raw)
			emit(report, report.Pretty(), asJSON)
		}
	}
}

// decodeAsTAF resolves the report type for one raw report. In auto mode a
// report is a TAF exactly when it starts with a TAF header (the validity
// window makes the header shape unambiguous against METAR).
func decodeAsTAF(kind, raw string) bool {
	switch kind {
	case "taf":
		return true
	case "metar":
		return false
	}
	return taf.MatchesHeader(raw)
}

func emit(record interface{}, text string, asJSON bool) {
	if asJSON {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding record: %v\n", err)
			return
		}
		fmt.Println(string(data))
		return
	}
	fmt.Println(text)
}
