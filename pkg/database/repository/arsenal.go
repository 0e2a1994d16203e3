package repository

import (
	"context"
	"strings"

	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VehicleRepository handles database operations for Vehicle model
type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) GetByName(ctx context.Context, name string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Search(ctx context.Context, term string, limit int) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	pattern := likePattern(term)
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(category) LIKE ? ESCAPE '\\' OR LOWER(vehicle_type) LIKE ? ESCAPE '\\'", pattern, pattern, pattern).
		Order("name").Limit(limit).
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) Upsert(ctx context.Context, vehicle *models.Vehicle) error {
	name, err := storedName(ctx, r.db, &models.Vehicle{}, vehicle.Name)
	if err != nil {
		return err
	}
	vehicle.Name = name
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(vehicle).Error
}

// WeaponRepository handles database operations for Weapon model
type WeaponRepository struct {
	db *gorm.DB
}

func NewWeaponRepository(db *gorm.DB) *WeaponRepository {
	return &WeaponRepository{db: db}
}

func (r *WeaponRepository) GetByName(ctx context.Context, name string) (*models.Weapon, error) {
	var weapon models.Weapon
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&weapon).Error; err != nil {
		return nil, err
	}
	return &weapon, nil
}

func (r *WeaponRepository) Search(ctx context.Context, term string, limit int) ([]models.Weapon, error) {
	var weapons []models.Weapon
	pattern := likePattern(term)
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(type) LIKE ? ESCAPE '\\'", pattern, pattern).
		Order("name").Limit(limit).
		Find(&weapons).Error; err != nil {
		return nil, err
	}
	return weapons, nil
}

func (r *WeaponRepository) Upsert(ctx context.Context, weapon *models.Weapon) error {
	name, err := storedName(ctx, r.db, &models.Weapon{}, weapon.Name)
	if err != nil {
		return err
	}
	weapon.Name = name
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(weapon).Error
}

// LocationRepository handles database operations for Location model
type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) GetByName(ctx context.Context, name string) (*models.Location, error) {
	var location models.Location
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) Search(ctx context.Context, term string, limit int) ([]models.Location, error) {
	var locations []models.Location
	pattern := likePattern(term)
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(location) LIKE ? ESCAPE '\\' OR LOWER(type) LIKE ? ESCAPE '\\'", pattern, pattern, pattern).
		Order("name").Limit(limit).
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepository) Upsert(ctx context.Context, location *models.Location) error {
	name, err := storedName(ctx, r.db, &models.Location{}, location.Name)
	if err != nil {
		return err
	}
	location.Name = name
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(location).Error
}
