package display

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/latoulicious/weather-dominator/pkg/apperrors"
	"github.com/latoulicious/weather-dominator/pkg/database"
	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"github.com/latoulicious/weather-dominator/pkg/intel"
	"github.com/latoulicious/weather-dominator/pkg/weather"
)

// Themes
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemePlain = "plain"
)

// Preferences selects the units cards are rendered in
type Preferences struct {
	TemperatureUnit string // F or C
	WindUnit        string // mph, m/s or km/h
	PressureUnit    string // hPa or inHg
	Theme           string
}

// CardBuilder provides basic card creation
type CardBuilder interface {
	Success(title, description string) *Card
	Error(title, description string) *Card
	Info(title, description string) *Card
	Warning(title, description string) *Card
}

// IntelCardBuilder adds the domain cards
type IntelCardBuilder interface {
	CardBuilder
	Weather(report *weather.Report) *Card
	History(city string, logs []models.WeatherLog) *Card
	Character(profile *intel.CharacterProfile) *Card
	Vehicle(profile *intel.VehicleProfile) *Card
	Weapon(profile *intel.WeaponProfile) *Card
	Location(record *intel.LocationRecord) *Card
	Characters(faction string, records []intel.CharacterRecord) *Card
	Search(results *intel.SearchResults) *Card
	Stats(stats *database.Stats) *Card
	Pruned(days int, result database.PruneResult) *Card
	CommandError(command string, err error) *Card
}

// Builder implements IntelCardBuilder
type Builder struct {
	prefs Preferences
	now   func() time.Time
}

var _ IntelCardBuilder = (*Builder)(nil)

// NewBuilder creates a card builder. Empty preferences fall back to F, mph, hPa.
func NewBuilder(prefs Preferences) *Builder {
	if prefs.TemperatureUnit == "" {
		prefs.TemperatureUnit = "F"
	}
	if prefs.WindUnit == "" {
		prefs.WindUnit = "mph"
	}
	if prefs.PressureUnit == "" {
		prefs.PressureUnit = "hPa"
	}
	if prefs.Theme == "" {
		prefs.Theme = ThemeDark
	}
	return &Builder{prefs: prefs, now: time.Now}
}

// Theme returns the theme cards should be rendered with
func (b *Builder) Theme() string {
	return b.prefs.Theme
}

func (b *Builder) card(title, description string, color Color) *Card {
	return &Card{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   b.now(),
	}
}

func (b *Builder) Success(title, description string) *Card {
	return b.card(title, description, ColorGreen)
}

func (b *Builder) Error(title, description string) *Card {
	return b.card(title, description, ColorRed)
}

func (b *Builder) Info(title, description string) *Card {
	return b.card(title, description, ColorBlue)
}

func (b *Builder) Warning(title, description string) *Card {
	return b.card(title, description, ColorOrange)
}

// Weather renders a weather report in the preferred units
func (b *Builder) Weather(report *weather.Report) *Card {
	r := report.Record
	title := "🌤️ " + r.City
	if r.Country != "" {
		title += ", " + r.Country
	}

	card := b.Info(title, r.Condition)
	if len(report.Severe) > 0 {
		card.Color = ColorOrange
		card.Description = fmt.Sprintf("%s\n⚠️ Severe weather: %s", r.Condition, strings.Join(report.Severe, ", "))
	}

	temp := weather.Round(r.TemperatureIn(b.prefs.TemperatureUnit), 1)
	feels := weather.Round(r.FeelsLikeIn(b.prefs.TemperatureUnit), 1)
	card.AddField("Temperature", fmt.Sprintf("%.1f°%s", temp, b.prefs.TemperatureUnit), true)
	card.AddField("Feels Like", fmt.Sprintf("%.1f°%s", feels, b.prefs.TemperatureUnit), true)
	card.AddField("Humidity", fmt.Sprintf("%d%%", r.Humidity), true)
	card.AddField("Wind", fmt.Sprintf("%.1f %s at %.0f°", weather.Round(r.WindIn(b.prefs.WindUnit), 1), b.prefs.WindUnit, r.WindDirection), true)
	card.AddField("Pressure", b.pressure(r.Pressure), true)
	card.AddField("Visibility", fmt.Sprintf("%.1f km", r.Visibility), true)
	if !r.Sunrise.IsZero() {
		card.AddField("Sunrise", r.Sunrise.UTC().Format("15:04 MST"), true)
		card.AddField("Sunset", r.Sunset.UTC().Format("15:04 MST"), true)
	}

	card.Footer = "Source: " + string(r.Source)
	if r.FallbackReason != "" {
		card.Footer += " (fallback: " + r.FallbackReason + ")"
	}
	return card
}

func (b *Builder) pressure(hpa float64) string {
	if b.prefs.PressureUnit == "inHg" {
		return fmt.Sprintf("%.2f inHg", weather.HPaToInHg(hpa))
	}
	return fmt.Sprintf("%.0f hPa", hpa)
}

// History lists recent weather queries for a city
func (b *Builder) History(city string, logs []models.WeatherLog) *Card {
	if len(logs) == 0 {
		return b.Info("📜 Weather History", fmt.Sprintf("No weather history for %s.", city))
	}

	lines := make([]string, 0, len(logs))
	for _, l := range logs {
		lines = append(lines, fmt.Sprintf("%s  %s  %.1f (%s)  %s [%s]",
			l.Timestamp.UTC().Format("2006-01-02 15:04"), l.City, l.Temperature, l.Units, l.Description, l.Source))
	}
	card := b.Info("📜 Weather History", strings.Join(lines, "\n"))
	card.Footer = fmt.Sprintf("%d entries", len(logs))
	return card
}

// Character renders a character dossier with its vehicles and weapons
func (b *Builder) Character(profile *intel.CharacterProfile) *Card {
	c := profile.CharacterRecord
	card := b.dossier("👤 "+c.Name, c.Bio, c.Faction, c.Placeholder)

	card.AddField("Faction", c.Faction, true)
	card.AddField("Status", c.Status, true)
	card.AddField("Rank", c.Rank, true)
	card.AddField("Real Name", c.RealName, true)
	card.AddField("Specialty", c.Specialty, true)
	card.AddField("Birthplace", c.Birthplace, true)
	card.AddField("First Appearance", c.FirstAppearance, true)
	card.AddField("Voice Actor", c.VoiceActor, true)
	card.AddField("Vehicles", relatedList(profile.Vehicles), false)
	card.AddField("Weapons", relatedList(profile.Weapons), false)
	card.AddField("Wiki", c.WikiURL, false)
	return card
}

// Vehicle renders a vehicle and its crew
func (b *Builder) Vehicle(profile *intel.VehicleProfile) *Card {
	v := profile.VehicleRecord
	card := b.dossier("🚙 "+v.Name, v.Description, v.Faction, v.Placeholder)

	card.AddField("Faction", v.Faction, true)
	card.AddField("Status", v.Status, true)
	card.AddField("Category", v.Category, true)
	card.AddField("Type", v.VehicleType, true)
	if v.YearIntroduced > 0 {
		card.AddField("Introduced", fmt.Sprintf("%d", v.YearIntroduced), true)
	}
	if v.CrewCapacity > 0 {
		card.AddField("Crew", fmt.Sprintf("%d", v.CrewCapacity), true)
	}
	card.AddField("Pilot/Driver", v.PilotDriver, true)
	card.AddField("Armament", v.Weapons, false)
	card.AddField("Features", v.Features, false)
	card.AddField("Specifications", v.Specifications, false)
	card.AddField("Characters", relatedList(profile.Characters), false)
	card.AddField("Wiki", v.WikiURL, false)
	return card
}

// Weapon renders a weapon and its users
func (b *Builder) Weapon(profile *intel.WeaponProfile) *Card {
	w := profile.WeaponRecord
	card := b.dossier("🔫 "+w.Name, w.Description, w.Faction, w.Placeholder)

	card.AddField("Faction", w.Faction, true)
	card.AddField("Status", w.Status, true)
	card.AddField("Type", w.Type, true)
	card.AddField("First Appearance", w.FirstAppearance, true)
	card.AddField("Specifications", w.Specifications, false)
	card.AddField("Used By", w.UsedBy, false)
	card.AddField("Characters", relatedList(profile.Characters), false)
	card.AddField("Wiki", w.WikiURL, false)
	return card
}

// Location renders a location record
func (b *Builder) Location(l *intel.LocationRecord) *Card {
	card := b.dossier("📍 "+l.Name, l.Description, l.Faction, l.Placeholder)

	card.AddField("Faction", l.Faction, true)
	card.AddField("Status", l.Status, true)
	card.AddField("Type", l.Type, true)
	card.AddField("Location", l.Location, true)
	card.AddField("Purpose", l.Purpose, false)
	card.AddField("Notable Features", l.NotableFeatures, false)
	card.AddField("Wiki", l.WikiURL, false)
	return card
}

// Characters lists a faction roster
func (b *Builder) Characters(faction string, records []intel.CharacterRecord) *Card {
	title := "📋 All Characters"
	if faction != "" {
		title = "📋 " + faction + " Roster"
	}
	if len(records) == 0 {
		return b.Warning(title, "No characters found.")
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		line := r.Name
		if r.Rank != "" {
			line += " (" + r.Rank + ")"
		}
		if faction == "" {
			line += " - " + r.Faction
		}
		lines = append(lines, line)
	}
	card := b.Info(title, strings.Join(lines, "\n"))
	card.Footer = fmt.Sprintf("%d characters", len(records))
	return card
}

// Search groups free-text matches by table
func (b *Builder) Search(results *intel.SearchResults) *Card {
	title := fmt.Sprintf("🔎 Results for %q", results.Query)
	if results.Total() == 0 {
		return b.Warning(title, "No matches in the database.")
	}

	card := b.Info(title, "")
	names := func(n int, name func(int) string) string {
		out := make([]string, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, name(i))
		}
		return strings.Join(out, ", ")
	}
	card.AddField("Characters", names(len(results.Characters), func(i int) string { return results.Characters[i].Name }), false)
	card.AddField("Vehicles", names(len(results.Vehicles), func(i int) string { return results.Vehicles[i].Name }), false)
	card.AddField("Weapons", names(len(results.Weapons), func(i int) string { return results.Weapons[i].Name }), false)
	card.AddField("Locations", names(len(results.Locations), func(i int) string { return results.Locations[i].Name }), false)
	card.Footer = fmt.Sprintf("%d matches", results.Total())
	return card
}

// Stats renders per-table counts
func (b *Builder) Stats(stats *database.Stats) *Card {
	card := b.Info("📊 Database Statistics", "")
	card.AddField("Characters", fmt.Sprintf("%d", stats.Characters), true)
	card.AddField("Vehicles", fmt.Sprintf("%d", stats.Vehicles), true)
	card.AddField("Weapons", fmt.Sprintf("%d", stats.Weapons), true)
	card.AddField("Locations", fmt.Sprintf("%d", stats.Locations), true)
	card.AddField("Vehicle Relations", fmt.Sprintf("%d", stats.VehicleRelations), true)
	card.AddField("Weapon Relations", fmt.Sprintf("%d", stats.WeaponRelations), true)
	card.AddField("Weather Logs", fmt.Sprintf("%d (%d live, %d demo)", stats.WeatherLogs, stats.LiveWeatherQueries, stats.DemoWeatherQueries), false)
	card.AddField("User Searches", fmt.Sprintf("%d", stats.UserSearches), true)
	card.AddField("System Logs", fmt.Sprintf("%d", stats.SystemLogs), true)
	return card
}

// Pruned reports a retention run
func (b *Builder) Pruned(days int, result database.PruneResult) *Card {
	card := b.Success("🧹 Old Data Cleared", fmt.Sprintf("Removed %d rows older than %d days.", result.Total(), days))
	card.AddField("Weather Logs", fmt.Sprintf("%d", result.WeatherLogs), true)
	card.AddField("User Searches", fmt.Sprintf("%d", result.UserSearches), true)
	card.AddField("System Logs", fmt.Sprintf("%d", result.SystemLogs), true)
	return card
}

// CommandError renders a failed command. Invalid input gets a validation card.
func (b *Builder) CommandError(command string, err error) *Card {
	var invalid *apperrors.InvalidInputError
	if errors.As(err, &invalid) {
		return b.Warning("⚠️ Validation Error", fmt.Sprintf("Invalid %s: %s", invalid.Field, invalid.Reason))
	}

	card := b.Error(fmt.Sprintf("❌ Command Error: %s", command), "An error occurred while executing the command.")
	if err != nil {
		card.AddField("Error Details", err.Error(), false)
		card.AddField("Kind", apperrors.Classify(err), true)
	}
	return card
}

func (b *Builder) dossier(title, description, faction string, placeholder bool) *Card {
	card := b.card(title, description, factionColor(faction))
	if placeholder {
		card.Color = ColorGray
		card.Footer = "Not in database: auto-investigation profile"
	}
	return card
}

func factionColor(faction string) Color {
	switch strings.ToLower(faction) {
	case "g.i. joe":
		return ColorBlue
	case "cobra", "cobra-controlled", "m.a.r.s./cobra":
		return ColorRed
	default:
		return ColorGray
	}
}

func relatedList(related []intel.RelatedEntity) string {
	lines := make([]string, 0, len(related))
	for _, r := range related {
		lines = append(lines, fmt.Sprintf("%s (%s)", r.Name, r.RelationshipType))
	}
	return strings.Join(lines, ", ")
}
