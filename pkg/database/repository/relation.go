package repository

import (
	"context"

	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RelatedRow is one side of a relation joined with its label
type RelatedRow struct {
	Name             string
	Faction          string
	RelationshipType string
}

// RelationRepository handles the character_vehicle_relations and
// character_weapon_relations tables
type RelationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

// AddVehicle inserts the relation. An existing identical triple is left
// untouched; created reports whether a row was written.
func (r *RelationRepository) AddVehicle(ctx context.Context, characterID, vehicleID uint, relationshipType string) (created bool, err error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&models.CharacterVehicleRelation{
		CharacterID:      characterID,
		VehicleID:        vehicleID,
		RelationshipType: relationshipType,
	})
	return result.RowsAffected > 0, result.Error
}

// AddWeapon inserts the relation, ignoring duplicates of the triple
func (r *RelationRepository) AddWeapon(ctx context.Context, characterID, weaponID uint, relationshipType string) (created bool, err error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&models.CharacterWeaponRelation{
		CharacterID:      characterID,
		WeaponID:         weaponID,
		RelationshipType: relationshipType,
	})
	return result.RowsAffected > 0, result.Error
}

func (r *RelationRepository) VehiclesForCharacter(ctx context.Context, characterID uint) ([]RelatedRow, error) {
	return r.related(ctx, "character_vehicle_relations", "vehicles", "vehicle_id", "character_id", characterID)
}

func (r *RelationRepository) CharactersForVehicle(ctx context.Context, vehicleID uint) ([]RelatedRow, error) {
	return r.related(ctx, "character_vehicle_relations", "characters", "character_id", "vehicle_id", vehicleID)
}

func (r *RelationRepository) WeaponsForCharacter(ctx context.Context, characterID uint) ([]RelatedRow, error) {
	return r.related(ctx, "character_weapon_relations", "weapons", "weapon_id", "character_id", characterID)
}

func (r *RelationRepository) CharactersForWeapon(ctx context.Context, weaponID uint) ([]RelatedRow, error) {
	return r.related(ctx, "character_weapon_relations", "characters", "character_id", "weapon_id", weaponID)
}

// CountVehicleRelations counts rows in character_vehicle_relations
func (r *RelationRepository) CountVehicleRelations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CharacterVehicleRelation{}).Count(&count).Error
	return count, err
}

// CountWeaponRelations counts rows in character_weapon_relations
func (r *RelationRepository) CountWeaponRelations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CharacterWeaponRelation{}).Count(&count).Error
	return count, err
}

// related joins the relation table to the other entity table. Rows are
// ordered by the other entity's name, then relationship type.
func (r *RelationRepository) related(ctx context.Context, relationTable, otherTable, otherKey, selfKey string, selfID uint) ([]RelatedRow, error) {
	var rows []RelatedRow
	err := r.db.WithContext(ctx).
		Table(relationTable+" AS rel").
		Select("o.name AS name, o.faction AS faction, rel.relationship_type AS relationship_type").
		Joins("JOIN "+otherTable+" AS o ON o.id = rel."+otherKey).
		Where("rel."+selfKey+" = ?", selfID).
		Order("o.name, rel.relationship_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
