package commands

import (
	"fmt"
	"strings"

	"github.com/latoulicious/weather-dominator/pkg/intel/seed"
	"github.com/spf13/cobra"
)

func newLookupCommand(opts *rootOptions) *cobra.Command {
	var faction string

	cmd := &cobra.Command{
		Use:     "lookup [character]",
		Aliases: []string{"character", "joe"},
		Short:   "Look up a character, or list a faction roster",
		Long: `Look up a G.I. Joe or Cobra character with the vehicles and weapons linked
to it. Unknown names produce an auto-investigation placeholder. Without a
name, lists characters, optionally filtered by --faction.`,
		Example: `  weather-dominator lookup Duke
  weather-dominator lookup --faction Cobra`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.open()
			if err != nil {
				return err
			}
			logger := app.commandLogger("lookup")

			if len(args) == 0 {
				records, err := app.Store.ListCharacters(cmd.Context(), faction)
				if err != nil {
					return err
				}
				logger.Debug("Roster listed", map[string]interface{}{
					"faction": faction,
					"count":   len(records),
				})
				return app.render(cmd, app.Cards.Characters(faction, records))
			}

			profile, err := app.Store.Character(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			logger.Info("Character resolved", map[string]interface{}{
				"name":        profile.Name,
				"placeholder": profile.Placeholder,
			})
			return app.render(cmd, app.Cards.Character(profile))
		},
	}

	cmd.Flags().StringVarP(&faction, "faction", "f", "", "Faction to list when no name is given")
	return cmd
}

func newVehicleCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vehicle <name>",
		Short: "Look up a vehicle and its crew",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.open()
			if err != nil {
				return err
			}
			profile, err := app.Store.Vehicle(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			app.commandLogger("vehicle").Info("Vehicle resolved", map[string]interface{}{
				"name":        profile.Name,
				"placeholder": profile.Placeholder,
			})
			return app.render(cmd, app.Cards.Vehicle(profile))
		},
	}
}

func newWeaponCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "weapon <name>",
		Short: "Look up a weapon and who carries it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.open()
			if err != nil {
				return err
			}
			profile, err := app.Store.Weapon(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			app.commandLogger("weapon").Info("Weapon resolved", map[string]interface{}{
				"name":        profile.Name,
				"placeholder": profile.Placeholder,
			})
			return app.render(cmd, app.Cards.Weapon(profile))
		},
	}
}

func newLocationCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "location <name>",
		Short: "Look up a base or location",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.open()
			if err != nil {
				return err
			}
			record, err := app.Store.Location(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			app.commandLogger("location").Info("Location resolved", map[string]interface{}{
				"name":        record.Name,
				"placeholder": record.Placeholder,
			})
			return app.render(cmd, app.Cards.Location(record))
		},
	}
}

func newSearchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search every table for a name fragment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.open()
			if err != nil {
				return err
			}
			results, err := app.Store.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			app.commandLogger("search").Debug("Search completed", map[string]interface{}{
				"query":   results.Query,
				"matches": results.Total(),
			})
			return app.render(cmd, app.Cards.Search(results))
		},
	}
}

func newRelateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "relate <vehicle|weapon> <character> <name> <relationship type>",
		Short: "Link a character to a vehicle or weapon",
		Example: `  weather-dominator relate vehicle Duke VAMP "Primary Driver"
  weather-dominator relate weapon "Snake Eyes" Katana "Signature Weapon"`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, character, other, relationshipType := strings.ToLower(args[0]), args[1], args[2], args[3]
			if kind != "vehicle" && kind != "weapon" {
				return fmt.Errorf("unknown relation kind %q (must be vehicle or weapon)", args[0])
			}

			app, err := opts.open()
			if err != nil {
				return err
			}

			var created bool
			if kind == "vehicle" {
				created, err = app.Store.RelateVehicle(cmd.Context(), character, other, relationshipType)
			} else {
				created, err = app.Store.RelateWeapon(cmd.Context(), character, other, relationshipType)
			}
			if err != nil {
				return err
			}

			app.commandLogger("relate").Info("Relation stored", map[string]interface{}{
				"kind":      kind,
				"character": character,
				"other":     other,
				"type":      relationshipType,
				"created":   created,
			})

			desc := fmt.Sprintf("%s -> %s (%s)", character, other, relationshipType)
			if !created {
				return app.render(cmd, app.Cards.Info("🔗 Relation Already Exists", desc))
			}
			return app.render(cmd, app.Cards.Success("🔗 Relation Added", desc))
		},
	}
}

func newSeedCommand(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the lookup database",
		Long: `Upsert the built-in G.I. Joe dataset, or a YAML/JSON dataset given with
--file, into the database. Safe to run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := seed.Default()
			source := "built-in"
			if file != "" {
				loaded, err := seed.LoadFile(file)
				if err != nil {
					return err
				}
				ds = loaded
				source = file
			}

			app, err := opts.open()
			if err != nil {
				return err
			}

			result, err := app.Store.Seed(cmd.Context(), ds)
			if err != nil {
				return err
			}

			app.commandLogger("seed").Info("Seed command executed", map[string]interface{}{
				"source":     source,
				"characters": result.Characters,
			})

			card := app.Cards.Success("🌱 Database Seeded", "Source: "+source)
			card.AddField("Characters", fmt.Sprintf("%d", result.Characters), true)
			card.AddField("Vehicles", fmt.Sprintf("%d", result.Vehicles), true)
			card.AddField("Weapons", fmt.Sprintf("%d", result.Weapons), true)
			card.AddField("Locations", fmt.Sprintf("%d", result.Locations), true)
			card.AddField("New Vehicle Relations", fmt.Sprintf("%d", result.VehicleRelations), true)
			card.AddField("New Weapon Relations", fmt.Sprintf("%d", result.WeaponRelations), true)
			return app.render(cmd, card)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON dataset to import instead of the built-in one")
	return cmd
}
