// Package main provides the CLI entry point for jsonchart.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xinxiaotech/jsonchart-go/internal/config"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/output"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/parser"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/render"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/view"
	"github.com/xuri/excelize/v2"
)

var (
	configPath string
	logLevel   string

	outputPath string
	format     string
	chartsDir  string
	width      int
	height     int
	xlsxSource string

	pretty    bool
	styleFlag string
	dataFlag  string
	colorFlag string

	settings *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsonchart",
		Short: "Render chart views of JSON-driven UI trees",
		Long: `jsonchart finds the chart views of a JSON view tree, resolves each into a
static render configuration, and draws it as PNG, SVG or an xlsx chart.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./jsonchart.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	renderCmd := &cobra.Command{
		Use:   "render [view.json]",
		Short: "Render the chart views of a view tree",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().StringVar(&format, "format", "", "Output format: png, svg, xlsx")
	renderCmd.Flags().StringVar(&chartsDir, "charts-dir", "", "Directory for per-chart output files")
	renderCmd.Flags().IntVar(&width, "width", 0, "Output width in pixels")
	renderCmd.Flags().IntVar(&height, "height", 0, "Output height in pixels")
	renderCmd.Flags().StringVar(&xlsxSource, "xlsx-source", "", "Read the series from a workbook column: file.xlsx:Sheet!A")

	configCmd := &cobra.Command{
		Use:   "config [view.json]",
		Short: "Print render configurations as JSON",
		Long: `Without arguments, config resolves a single chart from the --style, --data
and --color flags. Given a view tree, it prints the configuration of every
chart view in the tree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConfig,
	}
	configCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	configCmd.Flags().StringVar(&styleFlag, "style", "", "Chart style: line, bar")
	configCmd.Flags().StringVar(&dataFlag, "data", "", "Comma-separated sample values")
	configCmd.Flags().StringVar(&colorFlag, "color", "", "Foreground color (hex, rgb(), or name)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [file.xlsx]",
		Short: "List the charts embedded in a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(renderCmd, configCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		settings, err = config.LoadFromFile(configPath)
	} else {
		settings, err = config.Load()
	}
	if err != nil {
		return err
	}
	if logLevel != "" {
		settings.Logging.Level = logLevel
		if err := settings.Validate(); err != nil {
			return err
		}
	}

	zerolog.SetGlobalLevel(settings.Level())
	if settings.Logging.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	opts := settings.Options()
	if format != "" {
		opts.Format = render.Format(strings.ToLower(format))
	}
	if width > 0 {
		opts.Width = width
	}
	if height > 0 {
		opts.Height = height
	}
	dir := settings.Output.ChartsDir
	if chartsDir != "" {
		dir = chartsDir
	}

	if xlsxSource != "" {
		series, err := readWorkbookSeries(xlsxSource)
		if err != nil {
			return fmt.Errorf("failed to read series: %w", err)
		}
		opts.Series = series
	}

	root, err := readView(args)
	if err != nil {
		return err
	}

	charts, err := jsonchart.Build(root, opts)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	log.Info().Int("charts", len(charts)).Str("format", string(opts.Format)).Msg("configured view")

	if dir != "" {
		if err := writeChartFiles(charts, dir, opts); err != nil {
			return fmt.Errorf("failed to write chart files: %w", err)
		}
		if outputPath == "" {
			return nil
		}
	}

	if outputPath == "" {
		return jsonchart.Render(cmd.OutOrStdout(), charts[0], opts)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := jsonchart.Render(f, charts[0], opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readView(args []string) (*models.ViewNode, error) {
	if len(args) == 0 || args[0] == "-" {
		return parser.DecodeView(os.Stdin)
	}

	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.DecodeView(f)
}

// readWorkbookSeries reads a "file.xlsx:Sheet!Col" source.
func readWorkbookSeries(source string) ([]float64, error) {
	path, ref, ok := strings.Cut(source, ":")
	if !ok || ref == "" {
		ref = "A"
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet, column, err := parser.ParseSource(f, ref)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("sheet", sheet).Str("column", column).Msg("reading workbook series")
	return parser.ReadSeries(f, sheet, column)
}

var pathReplacer = strings.NewReplacer("/", "_", "[", "_", "]", "")

func writeChartFiles(charts []jsonchart.Chart, dir string, opts jsonchart.Options) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, chart := range charts {
		filename := filepath.Join(dir, pathReplacer.Replace(chart.Path)+opts.Format.Extension())
		if err := writeChart(filename, chart, opts); err != nil {
			return err
		}
		log.Debug().Str("path", chart.Path).Str("file", filename).Msg("wrote chart")
	}

	return nil
}

func writeChart(filename string, chart jsonchart.Chart, opts jsonchart.Options) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := jsonchart.Render(f, chart, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runConfig(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return runConfigView(cmd, args)
	}

	in, err := configInput()
	if err != nil {
		return err
	}

	cfg, err := view.Configure(in)
	if err != nil {
		return err
	}

	jsonData, err := output.ConfigToJSON(cfg, pretty || settings.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeLine(cmd.OutOrStdout(), jsonData)
}

func runConfigView(cmd *cobra.Command, args []string) error {
	root, err := readView(args)
	if err != nil {
		return err
	}

	charts, err := jsonchart.Build(root, settings.Options())
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	jsonData, err := output.ToJSON(charts, pretty || settings.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeLine(cmd.OutOrStdout(), jsonData)
}

func configInput() (view.Input, error) {
	var in view.Input

	if styleFlag != "" {
		style := models.ParseChartStyle(styleFlag)
		in.Style = &style
	}

	if dataFlag != "" {
		for _, field := range strings.Split(dataFlag, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return in, fmt.Errorf("invalid data value %q", field)
			}
			in.Data = append(in.Data, v)
		}
	}

	if colorFlag != "" {
		c, ok := parser.ParseColor(colorFlag)
		if !ok {
			return in, fmt.Errorf("invalid color: %s", colorFlag)
		}
		in.Color = &c
	}

	return in, nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	f, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", inputPath)
		}
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	charts, err := parser.InspectCharts(f, info.Size())
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	jsonData, err := output.EmbeddedToJSON(charts, pretty || settings.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeLine(cmd.OutOrStdout(), jsonData)
}

func writeLine(w io.Writer, data []byte) error {
	_, err := fmt.Fprintln(w, string(data))
	return err
}
