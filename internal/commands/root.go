// Package commands is the weatherline CLI. The root command owns the global
// configuration flags; subcommands only add their own output options.
package commands

import (
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/i474232898/weatherline/internal/config"
	"github.com/i474232898/weatherline/internal/notify"
	"github.com/i474232898/weatherline/internal/weather"
	"github.com/i474232898/weatherline/internal/weather/providers"
)

// runtime is what every subcommand needs once configuration is loaded.
type runtime struct {
	cfg     *config.AppConfig
	service *weather.Service
	notify  *notify.Notifier
}

type rootOptions struct {
	configFile string
	quiet      bool
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "weatherline",
		Short: "Current weather as a one-line summary or note frontmatter",
		Long: `Fetch current weather for a location and render it through a template.

Description:
  Weather comes from Open-Meteo (geocoded by place name) or wttr.in.
  The result can be printed, inserted into a markdown note at a cursor,
  merged into a note's frontmatter, or served over HTTP.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configFile, "config", "", "config file (yaml, json, toml or .env)")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress progress notices")
	f.BoolP("debug", "D", false, "Enable debug logging")
	f.StringP("location", "l", def.Location, "Location to fetch weather for, e.g. \"London\"")
	f.String("units", def.Units, "Unit system: metric or imperial")
	f.String("provider", def.Provider, "Weather provider: open-meteo or wttr")
	f.String("template", def.Template, "Output template; tokens: {icon} {temp} {conditions} {wind} {humidity} {feels_like} {location}")
	f.Bool("show-wind", def.ShowWind, "Keep the \"| Wind: ...\" segment")
	f.Bool("show-humidity", def.ShowHumidity, "Keep the \"| Humidity: ...\" segment")
	f.Bool("escape-quotes", def.EscapeQuotes, "Escape double quotes in frontmatter values")
	f.Duration("http-timeout", def.HTTPTimeout, "Timeout for provider requests (0 uses the transport default)")

	cmd.AddCommand(newLineCommand(opts))
	cmd.AddCommand(newInsertCommand(opts))
	cmd.AddCommand(newFrontmatterCommand(opts))
	cmd.AddCommand(newCurrentCommand(opts))
	cmd.AddCommand(newServeCommand(opts))

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newProviders is replaced in tests.
var newProviders = func(client *http.Client) []weather.Provider {
	return []weather.Provider{
		providers.NewOpenMeteoProvider(client, providers.NewGeocoder(client)),
		providers.NewWttrProvider(client),
	}
}

// setup loads configuration from cmd's flags and wires the providers.
func setup(cmd *cobra.Command, opts *rootOptions) (*runtime, error) {
	n := notify.New(opts.quiet)

	cfg, err := config.Load(cmd.Flags(), opts.configFile)
	if err != nil {
		return nil, report(n, err)
	}

	// Shared HTTP client for outbound provider calls.
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	svc := weather.NewService(newProviders(client)...)
	svc.SetDebug(cfg.Debug)

	return &runtime{cfg: cfg, service: svc, notify: n}, nil
}

// fail reports err to the user and the log, then hands it back to cobra.
func (rt *runtime) fail(err error) error {
	return report(rt.notify, err)
}

// report is the only place command failures are logged.
func report(n *notify.Notifier, err error) error {
	n.Error(err)
	log.Printf("ERROR: %v", err)
	return err
}
