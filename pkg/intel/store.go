package intel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/latoulicious/weather-dominator/pkg/apperrors"
	"github.com/latoulicious/weather-dominator/pkg/database/repository"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"gorm.io/gorm"
)

// Search types written to user_searches
const (
	SearchCharacter = "character"
	SearchVehicle   = "vehicle"
	SearchWeapon    = "weapon"
	SearchLocation  = "location"
	SearchFreeText  = "search"
)

// DefaultSearchLimit caps free-text matches per table
const DefaultSearchLimit = 10

// SearchRecorder stores user queries
type SearchRecorder interface {
	RecordSearch(ctx context.Context, searchType, query string, resultsFound int, sessionID string) error
}

// Lookup is the read side of the store used by the CLI and the API
type Lookup interface {
	Character(ctx context.Context, name string) (*CharacterProfile, error)
	Vehicle(ctx context.Context, name string) (*VehicleProfile, error)
	Weapon(ctx context.Context, name string) (*WeaponProfile, error)
	Location(ctx context.Context, name string) (*LocationRecord, error)
	ListCharacters(ctx context.Context, faction string) ([]CharacterRecord, error)
	Search(ctx context.Context, query string) (*SearchResults, error)
}

var _ Lookup = (*Store)(nil)

// Store resolves G.I. Joe entities and their relations. A miss never
// fails: it yields a placeholder record.
type Store struct {
	db         *gorm.DB
	characters *repository.CharacterRepository
	vehicles   *repository.VehicleRepository
	weapons    *repository.WeaponRepository
	locations  *repository.LocationRepository
	relations  *repository.RelationRepository
	searches   SearchRecorder
	sessionID  string
	logger     logging.Logger
}

// NewStore creates a store over db. searches may be nil.
func NewStore(db *gorm.DB, searches SearchRecorder, sessionID string, logger logging.Logger) *Store {
	return &Store{
		db:         db,
		characters: repository.NewCharacterRepository(db),
		vehicles:   repository.NewVehicleRepository(db),
		weapons:    repository.NewWeaponRepository(db),
		locations:  repository.NewLocationRepository(db),
		relations:  repository.NewRelationRepository(db),
		searches:   searches,
		sessionID:  sessionID,
		logger:     logger,
	}
}

// Character returns the character with its vehicles and weapons
func (s *Store) Character(ctx context.Context, name string) (*CharacterProfile, error) {
	name, err := normalizeName("character", name)
	if err != nil {
		return nil, err
	}

	model, err := s.characters.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up character: %w", err)
		}
		s.miss(ctx, SearchCharacter, name)
		return &CharacterProfile{
			CharacterRecord: placeholderCharacter(name),
			Vehicles:        []RelatedEntity{},
			Weapons:         []RelatedEntity{},
		}, nil
	}

	vehicles, err := s.relations.VehiclesForCharacter(ctx, model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve character vehicles: %w", err)
	}
	weapons, err := s.relations.WeaponsForCharacter(ctx, model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve character weapons: %w", err)
	}

	s.hit(ctx, SearchCharacter, name)
	return &CharacterProfile{
		CharacterRecord: characterFromModel(model),
		Vehicles:        relatedFromRows(vehicles),
		Weapons:         relatedFromRows(weapons),
	}, nil
}

// Vehicle returns the vehicle with the characters linked to it
func (s *Store) Vehicle(ctx context.Context, name string) (*VehicleProfile, error) {
	name, err := normalizeName("vehicle", name)
	if err != nil {
		return nil, err
	}

	model, err := s.vehicles.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up vehicle: %w", err)
		}
		s.miss(ctx, SearchVehicle, name)
		return &VehicleProfile{
			VehicleRecord: VehicleRecord{
				Name:        name,
				Faction:     UnknownFaction,
				Description: placeholderBio,
				Status:      UnknownStatus,
				Placeholder: true,
			},
			Characters: []RelatedEntity{},
		}, nil
	}

	characters, err := s.relations.CharactersForVehicle(ctx, model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vehicle crew: %w", err)
	}

	s.hit(ctx, SearchVehicle, name)
	return &VehicleProfile{
		VehicleRecord: vehicleFromModel(model),
		Characters:    relatedFromRows(characters),
	}, nil
}

// Weapon returns the weapon with the characters linked to it
func (s *Store) Weapon(ctx context.Context, name string) (*WeaponProfile, error) {
	name, err := normalizeName("weapon", name)
	if err != nil {
		return nil, err
	}

	model, err := s.weapons.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up weapon: %w", err)
		}
		s.miss(ctx, SearchWeapon, name)
		return &WeaponProfile{
			WeaponRecord: WeaponRecord{
				Name:        name,
				Faction:     UnknownFaction,
				Description: placeholderBio,
				Status:      UnknownStatus,
				Placeholder: true,
			},
			Characters: []RelatedEntity{},
		}, nil
	}

	characters, err := s.relations.CharactersForWeapon(ctx, model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve weapon users: %w", err)
	}

	s.hit(ctx, SearchWeapon, name)
	return &WeaponProfile{
		WeaponRecord: weaponFromModel(model),
		Characters:   relatedFromRows(characters),
	}, nil
}

// Location returns the location record. Locations have no relation tables.
func (s *Store) Location(ctx context.Context, name string) (*LocationRecord, error) {
	name, err := normalizeName("location", name)
	if err != nil {
		return nil, err
	}

	model, err := s.locations.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up location: %w", err)
		}
		s.miss(ctx, SearchLocation, name)
		return &LocationRecord{
			Name:        name,
			Faction:     UnknownFaction,
			Description: placeholderBio,
			Status:      UnknownStatus,
			Placeholder: true,
		}, nil
	}

	s.hit(ctx, SearchLocation, name)
	record := locationFromModel(model)
	return &record, nil
}

// ListCharacters returns characters of a faction ordered by name. An empty
// faction lists every character.
func (s *Store) ListCharacters(ctx context.Context, faction string) ([]CharacterRecord, error) {
	models, err := s.characters.ListByFaction(ctx, strings.TrimSpace(faction))
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	records := make([]CharacterRecord, 0, len(models))
	for i := range models {
		records = append(records, characterFromModel(&models[i]))
	}
	return records, nil
}

// Search matches query as a case-insensitive substring across all tables
func (s *Store) Search(ctx context.Context, query string) (*SearchResults, error) {
	query, err := normalizeName("query", query)
	if err != nil {
		return nil, err
	}

	results := &SearchResults{
		Query:      query,
		Characters: []CharacterRecord{},
		Vehicles:   []VehicleRecord{},
		Weapons:    []WeaponRecord{},
		Locations:  []LocationRecord{},
	}

	characters, err := s.characters.Search(ctx, query, DefaultSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search characters: %w", err)
	}
	for i := range characters {
		results.Characters = append(results.Characters, characterFromModel(&characters[i]))
	}

	vehicles, err := s.vehicles.Search(ctx, query, DefaultSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search vehicles: %w", err)
	}
	for i := range vehicles {
		results.Vehicles = append(results.Vehicles, vehicleFromModel(&vehicles[i]))
	}

	weapons, err := s.weapons.Search(ctx, query, DefaultSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search weapons: %w", err)
	}
	for i := range weapons {
		results.Weapons = append(results.Weapons, weaponFromModel(&weapons[i]))
	}

	locations, err := s.locations.Search(ctx, query, DefaultSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	for i := range locations {
		results.Locations = append(results.Locations, locationFromModel(&locations[i]))
	}

	s.record(ctx, SearchFreeText, query, results.Total())
	return results, nil
}

// RelateVehicle links a character to a vehicle. A duplicate triple is a
// no-op; created reports whether a row was written. Unknown endpoints
// return a NotFoundError.
func (s *Store) RelateVehicle(ctx context.Context, character, vehicle, relationshipType string) (created bool, err error) {
	characterID, err := s.characterID(ctx, character)
	if err != nil {
		return false, err
	}
	vehicle, err = normalizeName("vehicle", vehicle)
	if err != nil {
		return false, err
	}
	relationshipType, err = normalizeName("relationship type", relationshipType)
	if err != nil {
		return false, err
	}

	model, err := s.vehicles.GetByName(ctx, vehicle)
	if err != nil {
		return false, notFoundOr(err, SearchVehicle, vehicle)
	}

	created, err = s.relations.AddVehicle(ctx, characterID, model.ID, relationshipType)
	if err != nil {
		return false, fmt.Errorf("failed to relate vehicle: %w", err)
	}
	return created, nil
}

// RelateWeapon links a character to a weapon, with the same rules as RelateVehicle
func (s *Store) RelateWeapon(ctx context.Context, character, weapon, relationshipType string) (created bool, err error) {
	characterID, err := s.characterID(ctx, character)
	if err != nil {
		return false, err
	}
	weapon, err = normalizeName("weapon", weapon)
	if err != nil {
		return false, err
	}
	relationshipType, err = normalizeName("relationship type", relationshipType)
	if err != nil {
		return false, err
	}

	model, err := s.weapons.GetByName(ctx, weapon)
	if err != nil {
		return false, notFoundOr(err, SearchWeapon, weapon)
	}

	created, err = s.relations.AddWeapon(ctx, characterID, model.ID, relationshipType)
	if err != nil {
		return false, fmt.Errorf("failed to relate weapon: %w", err)
	}
	return created, nil
}

func (s *Store) characterID(ctx context.Context, name string) (uint, error) {
	name, err := normalizeName("character", name)
	if err != nil {
		return 0, err
	}
	model, err := s.characters.GetByName(ctx, name)
	if err != nil {
		return 0, notFoundOr(err, SearchCharacter, name)
	}
	return model.ID, nil
}

func (s *Store) hit(ctx context.Context, searchType, name string) {
	s.record(ctx, searchType, name, 1)
}

// miss logs the recovered NotFoundError and records an empty search
func (s *Store) miss(ctx context.Context, searchType, name string) {
	err := apperrors.NotFound(searchType, name)
	s.logger.Info("Lookup miss, returning placeholder", map[string]interface{}{
		"kind":  searchType,
		"name":  name,
		"error": err.Error(),
	})
	s.record(ctx, searchType, name, 0)
}

func (s *Store) record(ctx context.Context, searchType, query string, found int) {
	if s.searches == nil {
		return
	}
	if err := s.searches.RecordSearch(ctx, searchType, query, found, s.sessionID); err != nil {
		s.logger.Error("Failed to record search", err, map[string]interface{}{
			"search_type": searchType,
			"query":       query,
		})
	}
}

func normalizeName(field, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperrors.InvalidInput(field, "", "cannot be empty")
	}
	return trimmed, nil
}

func notFoundOr(err error, kind, name string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(kind, name)
	}
	return fmt.Errorf("failed to look up %s: %w", kind, err)
}
