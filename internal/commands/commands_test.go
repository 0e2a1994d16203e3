package commands

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig points the CLI at a fresh sqlite file with colour disabled
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("OPENWEATHER_API_KEY", "")

	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`
database:
  driver: sqlite
  path: %s
logger:
  level: error
preferences:
  theme: plain
`, filepath.Join(dir, "test.db"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, configPath string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), append([]string{"--config", configPath}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestSeedThenLookup(t *testing.T) {
	cfg := writeConfig(t)

	out, _, code := run(t, cfg, "seed")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Database Seeded")
	assert.Contains(t, out, "Characters: 14")

	out, _, code = run(t, cfg, "lookup", "cobra", "commander")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Cobra Commander")
	assert.Contains(t, out, "Faction: Cobra")
	assert.Contains(t, out, "HISS Tank (Primary Driver)")
}

func TestLookupUnknownShowsPlaceholder(t *testing.T) {
	cfg := writeConfig(t)

	out, _, code := run(t, cfg, "lookup", "Zzyzx Test Name")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Status: unknown")
	assert.Contains(t, out, "auto-investigation")
}

func TestWeatherDemoWithoutKey(t *testing.T) {
	cfg := writeConfig(t)

	out, _, code := run(t, cfg, "weather", "COBRA", "Command")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "COBRA Command")
	assert.Contains(t, out, "Source: demo")

	out, _, code = run(t, cfg, "history", "cobra command")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "[demo]")
}

func TestWeatherBlankCityIsValidationError(t *testing.T) {
	cfg := writeConfig(t)

	_, errOut, code := run(t, cfg, "weather", " ")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Validation Error")
}

func TestRelateIsIdempotent(t *testing.T) {
	cfg := writeConfig(t)
	_, _, code := run(t, cfg, "seed")
	require.Equal(t, 0, code)

	out, _, code := run(t, cfg, "relate", "vehicle", "Flint", "Wolverine", "Passenger")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Relation Added")

	out, _, code = run(t, cfg, "relate", "vehicle", "flint", "wolverine", "Passenger")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Relation Already Exists")

	out, _, code = run(t, cfg, "vehicle", "Wolverine")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Flint (Passenger)")

	_, errOut, code := run(t, cfg, "relate", "tank", "Flint", "Wolverine", "Passenger")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown relation kind")
}

func TestSeedFromFile(t *testing.T) {
	cfg := writeConfig(t)
	dataset := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(dataset, []byte(`
characters:
  - name: Gung-Ho
    faction: G.I. Joe
    rank: Gunnery Sergeant
    tattoo: eagle
`), 0o600))

	_, _, code := run(t, cfg, "seed", "--file", dataset)
	require.Equal(t, 0, code)

	out, _, code := run(t, cfg, "lookup", "--faction", "G.I. Joe")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Gung-Ho (Gunnery Sergeant)")
}

func TestStatsAndPrune(t *testing.T) {
	cfg := writeConfig(t)
	_, _, code := run(t, cfg, "seed")
	require.Equal(t, 0, code)

	out, _, code := run(t, cfg, "stats")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Characters: 14")

	out, _, code = run(t, cfg, "prune", "--days", "30")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Removed 0 rows older than 30 days")
}

func TestDoctor(t *testing.T) {
	cfg := writeConfig(t)

	out, _, code := run(t, cfg, "doctor")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "All expected tables exist")
	assert.Contains(t, out, "Connectivity Check Complete")
}

func TestServeFailsWhenAddressInUse(t *testing.T) {
	cfg := writeConfig(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, errOut, code := run(t, cfg, "serve", "--addr", ln.Addr().String())
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "failed to listen")
}

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), []string{"version"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Weather Dominator v")
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "45s", formatUptime(45_000_000_000))
	assert.Equal(t, "1h 0m 5s", formatUptime(3_605_000_000_000))
}
