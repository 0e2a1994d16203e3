package commands

import (
	"fmt"
	"runtime"
	"time"

	"github.com/latoulicious/weather-dominator/internal/version"
	"github.com/latoulicious/weather-dominator/pkg/display"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()

			buildTime := info.BuildTime
			if t, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
				buildTime = t.UTC().Format("02 Jan 2006 15:04 UTC")
			}

			card := display.NewBuilder(display.Preferences{Theme: display.ThemePlain}).Info("Weather Dominator Version", info.String())
			card.AddField("Version", info.Version, true)
			card.AddField("Commit", info.ShortCommit, true)
			card.AddField("Build Time", buildTime, true)
			card.AddField("Go", info.GoVersion, true)
			card.AddField("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), true)
			if info.Dirty {
				card.Footer = "⚠️ dirty workspace at build time"
			}
			return card.Render(cmd.OutOrStdout(), display.ThemePlain)
		},
	}
}
