package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func newWeatherCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "weather <city>",
		Short: "Show current weather for a city",
		Long: `Show current weather for a city. Without an OpenWeather API key, or when
the API call fails, a deterministic demo report is shown instead.`,
		Example: `  weather-dominator weather Tokyo
  weather-dominator weather "COBRA Command"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.open()
			if err != nil {
				return err
			}
			city := strings.Join(args, " ")
			logger := app.commandLogger("weather")

			report, err := app.Weather.Lookup(cmd.Context(), city)
			if err != nil {
				logger.Warn("Weather query rejected", map[string]interface{}{
					"city":  city,
					"error": err.Error(),
				})
				return err
			}

			logger.Info("Weather command executed", map[string]interface{}{
				"city":   report.City,
				"source": string(report.Source),
				"severe": len(report.Severe),
			})
			return app.render(cmd, app.Cards.Weather(report))
		},
	}
}

func newHistoryCommand(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <city>",
		Short: "Show recent weather queries for a city",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.open()
			if err != nil {
				return err
			}
			city := strings.Join(args, " ")

			logs, err := app.History.History(cmd.Context(), city, limit)
			if err != nil {
				return err
			}

			app.commandLogger("history").Debug("History command executed", map[string]interface{}{
				"city":    city,
				"entries": len(logs),
			})
			return app.render(cmd, app.Cards.History(city, logs))
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of entries")
	return cmd
}
