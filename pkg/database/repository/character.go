package repository

import (
	"context"
	"strings"

	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CharacterRepository handles database operations for Character model
type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// GetByName matches the trimmed name case-insensitively. Returns
// gorm.ErrRecordNotFound on a miss.
func (r *CharacterRepository) GetByName(ctx context.Context, name string) (*models.Character, error) {
	var character models.Character
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&character).Error; err != nil {
		return nil, err
	}
	return &character, nil
}

// ListByFaction returns characters ordered by name; an empty faction lists all
func (r *CharacterRepository) ListByFaction(ctx context.Context, faction string) ([]models.Character, error) {
	var characters []models.Character
	query := r.db.WithContext(ctx).Order("name")
	if faction != "" {
		query = query.Where("LOWER(faction) = LOWER(?)", faction)
	}
	if err := query.Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *CharacterRepository) Search(ctx context.Context, term string, limit int) ([]models.Character, error) {
	var characters []models.Character
	pattern := likePattern(term)
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(real_name) LIKE ? ESCAPE '\\' OR LOWER(specialty) LIKE ? ESCAPE '\\'", pattern, pattern, pattern).
		Order("name").Limit(limit).
		Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

// Upsert inserts the character or updates every column of the row whose name
// matches case-insensitively. The stored spelling of the name is kept.
func (r *CharacterRepository) Upsert(ctx context.Context, character *models.Character) error {
	name, err := storedName(ctx, r.db, &models.Character{}, character.Name)
	if err != nil {
		return err
	}
	character.Name = name
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(character).Error
}

func (r *CharacterRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Character{}).Count(&count).Error
	return count, err
}

// likeEscaper makes LIKE metacharacters in user input match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern is used with "LIKE ? ESCAPE '\'"
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}

// storedName trims name and returns the spelling already stored for it, if any,
// so ON CONFLICT(name) sees case variants as the same row
func storedName(ctx context.Context, db *gorm.DB, model interface{}, name string) (string, error) {
	name = strings.TrimSpace(name)
	var stored []string
	if err := db.WithContext(ctx).Model(model).
		Where("LOWER(name) = LOWER(?)", name).
		Limit(1).
		Pluck("name", &stored).Error; err != nil {
		return "", err
	}
	if len(stored) > 0 {
		return stored[0], nil
	}
	return name, nil
}
