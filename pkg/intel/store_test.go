package intel

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/latoulicious/weather-dominator/pkg/apperrors"
	"github.com/latoulicious/weather-dominator/pkg/database"
	"github.com/latoulicious/weather-dominator/pkg/database/migration"
	"github.com/latoulicious/weather-dominator/pkg/database/repository"
	"github.com/latoulicious/weather-dominator/pkg/intel/seed"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testLogger() logging.Logger {
	return logging.NewZapLoggerFrom("intel", zap.NewNop())
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGormDB(database.DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, migration.RunMigration(db, testLogger()))
	return db
}

func seededStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	db := openDB(t)
	store := NewStore(db, repository.NewSearchLogRepository(db), "session-test", testLogger())
	_, err := store.Seed(context.Background(), seed.Default())
	require.NoError(t, err)
	return store, db
}

func count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestSeededCharactersKeepTheirFaction(t *testing.T) {
	store, _ := seededStore(t)
	ctx := context.Background()

	tests := map[string]string{
		"Duke":            "G.I. Joe",
		"Cobra Commander": "Cobra",
		"Destro":          "Cobra",
	}
	for name, faction := range tests {
		t.Run(name, func(t *testing.T) {
			profile, err := store.Character(ctx, name)
			require.NoError(t, err)
			assert.False(t, profile.Placeholder)
			assert.Equal(t, faction, profile.Faction)
			assert.Equal(t, "Active", profile.Status)
		})
	}
}

func TestUnknownCharacterYieldsPlaceholder(t *testing.T) {
	store, db := seededStore(t)

	profile, err := store.Character(context.Background(), "  Zzyzx Test Name ")
	require.NoError(t, err)
	assert.True(t, profile.Placeholder)
	assert.Equal(t, "Zzyzx Test Name", profile.Name)
	assert.Equal(t, UnknownStatus, profile.Status)
	assert.Equal(t, UnknownFaction, profile.Faction)
	assert.Empty(t, profile.Vehicles)
	assert.Empty(t, profile.Weapons)

	var found int
	require.NoError(t, db.Table("user_searches").
		Select("results_found").
		Where("search_type = ? AND search_query = ?", SearchCharacter, "Zzyzx Test Name").
		Scan(&found).Error)
	assert.Equal(t, 0, found)
}

func TestPlaceholdersForEveryKind(t *testing.T) {
	store, _ := seededStore(t)
	ctx := context.Background()

	vehicle, err := store.Vehicle(ctx, "Moon Buggy")
	require.NoError(t, err)
	assert.True(t, vehicle.Placeholder)
	assert.Equal(t, UnknownStatus, vehicle.Status)

	weapon, err := store.Weapon(ctx, "Spork")
	require.NoError(t, err)
	assert.True(t, weapon.Placeholder)
	assert.Equal(t, UnknownFaction, weapon.Faction)

	location, err := store.Location(ctx, "Atlantis")
	require.NoError(t, err)
	assert.True(t, location.Placeholder)
}

func TestLookupIsCaseInsensitiveAndTrimmed(t *testing.T) {
	store, _ := seededStore(t)

	profile, err := store.Character(context.Background(), "  cobra COMMANDER ")
	require.NoError(t, err)
	assert.False(t, profile.Placeholder)
	assert.Equal(t, "Cobra Commander", profile.Name)
}

func TestEmptyNamesAreInvalidInput(t *testing.T) {
	store, _ := seededStore(t)
	ctx := context.Background()

	_, err := store.Character(ctx, "   ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = store.Vehicle(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = store.Weapon(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = store.Location(ctx, "\t")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = store.Search(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestRelationRoundTrip(t *testing.T) {
	db := openDB(t)
	store := NewStore(db, nil, "", testLogger())
	ctx := context.Background()

	ds := seed.Default()
	ds.VehicleRelations = nil
	ds.WeaponRelations = nil
	_, err := store.Seed(ctx, ds)
	require.NoError(t, err)

	created, err := store.RelateVehicle(ctx, "Duke", "VAMP", "Primary Driver")
	require.NoError(t, err)
	assert.True(t, created)

	duke, err := store.Character(ctx, "Duke")
	require.NoError(t, err)
	assert.Equal(t, []RelatedEntity{{Name: "VAMP", Faction: "G.I. Joe", RelationshipType: "Primary Driver"}}, duke.Vehicles)

	vamp, err := store.Vehicle(ctx, "VAMP")
	require.NoError(t, err)
	assert.Equal(t, []RelatedEntity{{Name: "Duke", Faction: "G.I. Joe", RelationshipType: "Primary Driver"}}, vamp.Characters)
}

func TestDuplicateRelationIsNoOp(t *testing.T) {
	store, db := seededStore(t)
	ctx := context.Background()
	before := count(t, db, "character_vehicle_relations")

	created, err := store.RelateVehicle(ctx, "duke", "vamp", "Primary Driver")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, before, count(t, db, "character_vehicle_relations"))

	// a different label is a different relation
	created, err = store.RelateVehicle(ctx, "Duke", "VAMP", "Passenger")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, before+1, count(t, db, "character_vehicle_relations"))
}

func TestRelateUnknownEndpointIsNotFound(t *testing.T) {
	store, _ := seededStore(t)
	ctx := context.Background()

	_, err := store.RelateVehicle(ctx, "Zzyzx", "VAMP", "Driver")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = store.RelateWeapon(ctx, "Duke", "Spork", "Sidearm")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = store.RelateWeapon(ctx, "Duke", "Katana", " ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestRelationsOrderedByNameThenType(t *testing.T) {
	store, _ := seededStore(t)

	katana, err := store.Weapon(context.Background(), "Katana")
	require.NoError(t, err)
	require.Len(t, katana.Characters, 2)
	assert.Equal(t, "Snake Eyes", katana.Characters[0].Name)
	assert.Equal(t, "Signature Weapon", katana.Characters[0].RelationshipType)
	assert.Equal(t, "Storm Shadow", katana.Characters[1].Name)
	assert.Equal(t, "Cobra", katana.Characters[1].Faction)

	vamp, err := store.Vehicle(context.Background(), "VAMP")
	require.NoError(t, err)
	require.Len(t, vamp.Characters, 2)
	assert.Equal(t, "Duke", vamp.Characters[0].Name)
	assert.Equal(t, "Scarlett", vamp.Characters[1].Name)
	assert.Equal(t, "Secondary Driver", vamp.Characters[1].RelationshipType)
}

func TestSeedIsIdempotent(t *testing.T) {
	store, db := seededStore(t)
	tables := []string{"characters", "vehicles", "weapons", "locations", "character_vehicle_relations", "character_weapon_relations"}

	before := make(map[string]int64, len(tables))
	for _, table := range tables {
		before[table] = count(t, db, table)
	}
	assert.Equal(t, int64(14), before["characters"])
	assert.Equal(t, int64(3), before["character_vehicle_relations"])
	assert.Equal(t, int64(4), before["character_weapon_relations"])

	result, err := store.Seed(context.Background(), seed.Default())
	require.NoError(t, err)
	assert.Equal(t, 0, result.VehicleRelations)
	assert.Equal(t, 0, result.WeaponRelations)

	for _, table := range tables {
		assert.Equal(t, before[table], count(t, db, table), table)
	}
}

func TestSeedUpdatesExistingRowsAndStoresExtras(t *testing.T) {
	store, _ := seededStore(t)
	ctx := context.Background()

	ds := seed.Dataset{Characters: []seed.Character{{
		Name:    "Duke",
		Faction: "G.I. Joe",
		Rank:    "Master Sergeant",
		Status:  "Active",
		Extra:   map[string]interface{}{"file_card": "1983 v1"},
	}}}
	_, err := store.Seed(ctx, ds)
	require.NoError(t, err)

	duke, err := store.Character(ctx, "Duke")
	require.NoError(t, err)
	assert.Equal(t, "Master Sergeant", duke.Rank)
	assert.Equal(t, "1983 v1", duke.RawData["file_card"])
	// relations survive the update
	assert.Len(t, duke.Weapons, 1)
}

func TestSeedMatchesExistingNamesCaseInsensitively(t *testing.T) {
	store, db := seededStore(t)
	ctx := context.Background()

	ds := seed.Dataset{
		Characters: []seed.Character{{Name: "  DUKE ", Faction: "G.I. Joe", Rank: "Top Sergeant"}},
		Vehicles:   []seed.Vehicle{{Name: "vamp", Faction: "G.I. Joe", Category: "Land Vehicle"}},
		Weapons:    []seed.Weapon{{Name: "KATANA", Faction: "Neutral", Type: "Sword"}},
		Locations:  []seed.Location{{Name: "the pit", Faction: "G.I. Joe", Type: "Underground Base"}},
	}
	_, err := store.Seed(ctx, ds)
	require.NoError(t, err)

	assert.Equal(t, int64(14), count(t, db, "characters"))
	assert.Equal(t, int64(12), count(t, db, "vehicles"))
	assert.Equal(t, int64(12), count(t, db, "weapons"))
	assert.Equal(t, int64(12), count(t, db, "locations"))

	duke, err := store.Character(ctx, "duke")
	require.NoError(t, err)
	assert.Equal(t, "Duke", duke.Name)
	assert.Equal(t, "Top Sergeant", duke.Rank)
	assert.Len(t, duke.Vehicles, 1)

	katana, err := store.Weapon(ctx, "Katana")
	require.NoError(t, err)
	assert.Equal(t, "Sword", katana.Type)
	assert.Len(t, katana.Characters, 2)
}

func TestSeedRollsBackOnUnknownRelation(t *testing.T) {
	db := openDB(t)
	store := NewStore(db, nil, "", testLogger())

	ds := seed.Dataset{
		Characters:       []seed.Character{{Name: "Flint", Faction: "G.I. Joe"}},
		VehicleRelations: []seed.Relation{{Character: "Flint", Other: "Tomahawk", Type: "Passenger"}},
	}
	_, err := store.Seed(context.Background(), ds)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, int64(0), count(t, db, "characters"))
}

func TestListCharactersByFaction(t *testing.T) {
	store, _ := seededStore(t)

	cobra, err := store.ListCharacters(context.Background(), "cobra")
	require.NoError(t, err)
	require.Len(t, cobra, 7)
	assert.Equal(t, "Baroness", cobra[0].Name)

	all, err := store.ListCharacters(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 14)
}

func TestSearchAcrossTables(t *testing.T) {
	store, _ := seededStore(t)

	results, err := store.Search(context.Background(), "cobra")
	require.NoError(t, err)
	assert.NotEmpty(t, results.Characters)
	assert.NotEmpty(t, results.Locations)
	assert.Equal(t, len(results.Characters)+len(results.Vehicles)+len(results.Weapons)+len(results.Locations), results.Total())

	none, err := store.Search(context.Background(), "zzyzx")
	require.NoError(t, err)
	assert.Zero(t, none.Total())
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	store, _ := seededStore(t)

	for _, query := range []string{"%", "_", `\`} {
		results, err := store.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Zero(t, results.Total(), "query %q", query)
	}

	dashed, err := store.Search(context.Background(), "m-16")
	require.NoError(t, err)
	require.Len(t, dashed.Weapons, 1)
	assert.Equal(t, "M-16 Rifle", dashed.Weapons[0].Name)
}
