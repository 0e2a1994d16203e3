package intel

import (
	"context"
	"fmt"

	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"github.com/latoulicious/weather-dominator/pkg/database/repository"
	"github.com/latoulicious/weather-dominator/pkg/intel/seed"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedResult reports what a seed run touched
type SeedResult struct {
	Characters       int `json:"characters"`
	Vehicles         int `json:"vehicles"`
	Weapons          int `json:"weapons"`
	Locations        int `json:"locations"`
	VehicleRelations int `json:"vehicle_relations_created"`
	WeaponRelations  int `json:"weapon_relations_created"`
}

// Seed upserts every entity of ds by name and inserts its relations inside
// one transaction. Running it again leaves the row counts unchanged.
func (s *Store) Seed(ctx context.Context, ds seed.Dataset) (*SeedResult, error) {
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	logger := s.logger.WithPipeline("seed")
	logger.Info("Seeding lookup store", map[string]interface{}{
		"characters": len(ds.Characters),
		"vehicles":   len(ds.Vehicles),
		"weapons":    len(ds.Weapons),
		"locations":  len(ds.Locations),
	})

	result := &SeedResult{}
	// every statement must go through tx: sqlite runs with a single connection
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		characters := repository.NewCharacterRepository(tx)
		vehicles := repository.NewVehicleRepository(tx)
		weapons := repository.NewWeaponRepository(tx)
		locations := repository.NewLocationRepository(tx)
		relations := repository.NewRelationRepository(tx)

		for _, c := range ds.Characters {
			if err := characters.Upsert(ctx, characterModel(c)); err != nil {
				return fmt.Errorf("failed to upsert character %s: %w", c.Name, err)
			}
			result.Characters++
		}
		for _, v := range ds.Vehicles {
			if err := vehicles.Upsert(ctx, vehicleModel(v)); err != nil {
				return fmt.Errorf("failed to upsert vehicle %s: %w", v.Name, err)
			}
			result.Vehicles++
		}
		for _, w := range ds.Weapons {
			if err := weapons.Upsert(ctx, weaponModel(w)); err != nil {
				return fmt.Errorf("failed to upsert weapon %s: %w", w.Name, err)
			}
			result.Weapons++
		}
		for _, l := range ds.Locations {
			if err := locations.Upsert(ctx, locationModel(l)); err != nil {
				return fmt.Errorf("failed to upsert location %s: %w", l.Name, err)
			}
			result.Locations++
		}

		for _, rel := range ds.VehicleRelations {
			character, err := characters.GetByName(ctx, rel.Character)
			if err != nil {
				return notFoundOr(err, SearchCharacter, rel.Character)
			}
			vehicle, err := vehicles.GetByName(ctx, rel.Other)
			if err != nil {
				return notFoundOr(err, SearchVehicle, rel.Other)
			}
			created, err := relations.AddVehicle(ctx, character.ID, vehicle.ID, rel.Type)
			if err != nil {
				return fmt.Errorf("failed to relate %s to %s: %w", rel.Character, rel.Other, err)
			}
			if created {
				result.VehicleRelations++
			}
		}
		for _, rel := range ds.WeaponRelations {
			character, err := characters.GetByName(ctx, rel.Character)
			if err != nil {
				return notFoundOr(err, SearchCharacter, rel.Character)
			}
			weapon, err := weapons.GetByName(ctx, rel.Other)
			if err != nil {
				return notFoundOr(err, SearchWeapon, rel.Other)
			}
			created, err := relations.AddWeapon(ctx, character.ID, weapon.ID, rel.Type)
			if err != nil {
				return fmt.Errorf("failed to relate %s to %s: %w", rel.Character, rel.Other, err)
			}
			if created {
				result.WeaponRelations++
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Seed rolled back", err, nil)
		return nil, err
	}

	logger.Info("Seed completed", map[string]interface{}{
		"vehicle_relations_created": result.VehicleRelations,
		"weapon_relations_created":  result.WeaponRelations,
	})
	return result, nil
}

func characterModel(c seed.Character) *models.Character {
	return &models.Character{
		Name:            c.Name,
		RealName:        c.RealName,
		CodeName:        c.CodeName,
		Faction:         c.Faction,
		Rank:            c.Rank,
		Specialty:       c.Specialty,
		Birthplace:      c.Birthplace,
		Bio:             c.Bio,
		FirstAppearance: c.FirstAppearance,
		VoiceActor:      c.VoiceActor,
		WikiURL:         c.WikiURL,
		ImageURL:        c.ImageURL,
		Status:          c.Status,
		RawData:         jsonMap(c.Extra),
	}
}

func vehicleModel(v seed.Vehicle) *models.Vehicle {
	return &models.Vehicle{
		Name:           v.Name,
		YearIntroduced: v.YearIntroduced,
		Faction:        v.Faction,
		Category:       v.Category,
		VehicleType:    v.VehicleType,
		Description:    v.Description,
		PilotDriver:    v.PilotDriver,
		CrewCapacity:   v.CrewCapacity,
		Weapons:        v.Weapons,
		Features:       v.Features,
		Specifications: v.Specifications,
		WikiURL:        v.WikiURL,
		ImageURL:       v.ImageURL,
		ToyLine:        v.ToyLine,
		RawData:        jsonMap(v.Extra),
	}
}

func weaponModel(w seed.Weapon) *models.Weapon {
	return &models.Weapon{
		Name:            w.Name,
		Type:            w.Type,
		Faction:         w.Faction,
		Description:     w.Description,
		Specifications:  w.Specifications,
		UsedBy:          w.UsedBy,
		FirstAppearance: w.FirstAppearance,
		WikiURL:         w.WikiURL,
		ImageURL:        w.ImageURL,
		RawData:         jsonMap(w.Extra),
	}
}

func locationModel(l seed.Location) *models.Location {
	return &models.Location{
		Name:            l.Name,
		Type:            l.Type,
		Faction:         l.Faction,
		Description:     l.Description,
		Location:        l.Location,
		Purpose:         l.Purpose,
		NotableFeatures: l.NotableFeatures,
		FirstAppearance: l.FirstAppearance,
		WikiURL:         l.WikiURL,
		ImageURL:        l.ImageURL,
		RawData:         jsonMap(l.Extra),
	}
}

// jsonMap converts yaml extras to a JSON-safe map. Nested yaml maps decode
// as map[string]interface{} already under yaml.v3.
func jsonMap(extra map[string]interface{}) datatypes.JSONMap {
	if len(extra) == 0 {
		return nil
	}
	m := make(datatypes.JSONMap, len(extra))
	for k, v := range extra {
		m[k] = v
	}
	return m
}
