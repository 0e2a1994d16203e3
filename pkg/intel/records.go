package intel

import (
	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"github.com/latoulicious/weather-dominator/pkg/database/repository"
)

const (
	// UnknownFaction and UnknownStatus mark a placeholder record
	UnknownFaction = "Unknown"
	UnknownStatus  = "unknown"

	placeholderBio = "No intelligence on file. An auto-investigation profile has been opened."
)

// CharacterRecord is a character as returned by the store
type CharacterRecord struct {
	Name            string                 `json:"name"`
	RealName        string                 `json:"real_name,omitempty"`
	CodeName        string                 `json:"code_name,omitempty"`
	Faction         string                 `json:"faction"`
	Rank            string                 `json:"rank,omitempty"`
	Specialty       string                 `json:"specialty,omitempty"`
	Birthplace      string                 `json:"birthplace,omitempty"`
	Bio             string                 `json:"bio,omitempty"`
	FirstAppearance string                 `json:"first_appearance,omitempty"`
	VoiceActor      string                 `json:"voice_actor,omitempty"`
	WikiURL         string                 `json:"wiki_url,omitempty"`
	ImageURL        string                 `json:"image_url,omitempty"`
	Status          string                 `json:"status"`
	RawData         map[string]interface{} `json:"raw_data,omitempty"`
	Placeholder     bool                   `json:"placeholder"`
}

// VehicleRecord is a vehicle as returned by the store
type VehicleRecord struct {
	Name           string                 `json:"name"`
	YearIntroduced int                    `json:"year_introduced,omitempty"`
	Faction        string                 `json:"faction"`
	Category       string                 `json:"category,omitempty"`
	VehicleType    string                 `json:"vehicle_type,omitempty"`
	Description    string                 `json:"description,omitempty"`
	PilotDriver    string                 `json:"pilot_driver,omitempty"`
	CrewCapacity   int                    `json:"crew_capacity,omitempty"`
	Weapons        string                 `json:"weapons,omitempty"`
	Features       string                 `json:"features,omitempty"`
	Specifications string                 `json:"specifications,omitempty"`
	WikiURL        string                 `json:"wiki_url,omitempty"`
	ImageURL       string                 `json:"image_url,omitempty"`
	ToyLine        string                 `json:"toy_line,omitempty"`
	Status         string                 `json:"status,omitempty"`
	RawData        map[string]interface{} `json:"raw_data,omitempty"`
	Placeholder    bool                   `json:"placeholder"`
}

// WeaponRecord is a weapon as returned by the store
type WeaponRecord struct {
	Name            string                 `json:"name"`
	Type            string                 `json:"type,omitempty"`
	Faction         string                 `json:"faction"`
	Description     string                 `json:"description,omitempty"`
	Specifications  string                 `json:"specifications,omitempty"`
	UsedBy          string                 `json:"used_by,omitempty"`
	FirstAppearance string                 `json:"first_appearance,omitempty"`
	WikiURL         string                 `json:"wiki_url,omitempty"`
	ImageURL        string                 `json:"image_url,omitempty"`
	Status          string                 `json:"status,omitempty"`
	RawData         map[string]interface{} `json:"raw_data,omitempty"`
	Placeholder     bool                   `json:"placeholder"`
}

// LocationRecord is a location as returned by the store
type LocationRecord struct {
	Name            string                 `json:"name"`
	Type            string                 `json:"type,omitempty"`
	Faction         string                 `json:"faction"`
	Description     string                 `json:"description,omitempty"`
	Location        string                 `json:"location,omitempty"`
	Purpose         string                 `json:"purpose,omitempty"`
	NotableFeatures string                 `json:"notable_features,omitempty"`
	FirstAppearance string                 `json:"first_appearance,omitempty"`
	WikiURL         string                 `json:"wiki_url,omitempty"`
	ImageURL        string                 `json:"image_url,omitempty"`
	Status          string                 `json:"status,omitempty"`
	RawData         map[string]interface{} `json:"raw_data,omitempty"`
	Placeholder     bool                   `json:"placeholder"`
}

// RelatedEntity is the other side of a relation
type RelatedEntity struct {
	Name             string `json:"name"`
	Faction          string `json:"faction"`
	RelationshipType string `json:"relationship_type"`
}

// CharacterProfile is a character and the vehicles and weapons linked to it
type CharacterProfile struct {
	CharacterRecord
	Vehicles []RelatedEntity `json:"vehicles"`
	Weapons  []RelatedEntity `json:"weapons"`
}

// VehicleProfile is a vehicle and the characters linked to it
type VehicleProfile struct {
	VehicleRecord
	Characters []RelatedEntity `json:"characters"`
}

// WeaponProfile is a weapon and the characters linked to it
type WeaponProfile struct {
	WeaponRecord
	Characters []RelatedEntity `json:"characters"`
}

// SearchResults groups free-text matches by table
type SearchResults struct {
	Query      string            `json:"query"`
	Characters []CharacterRecord `json:"characters"`
	Vehicles   []VehicleRecord   `json:"vehicles"`
	Weapons    []WeaponRecord    `json:"weapons"`
	Locations  []LocationRecord  `json:"locations"`
}

// Total returns the number of matches across all tables
func (r *SearchResults) Total() int {
	return len(r.Characters) + len(r.Vehicles) + len(r.Weapons) + len(r.Locations)
}

func characterFromModel(m *models.Character) CharacterRecord {
	return CharacterRecord{
		Name:            m.Name,
		RealName:        m.RealName,
		CodeName:        m.CodeName,
		Faction:         m.Faction,
		Rank:            m.Rank,
		Specialty:       m.Specialty,
		Birthplace:      m.Birthplace,
		Bio:             m.Bio,
		FirstAppearance: m.FirstAppearance,
		VoiceActor:      m.VoiceActor,
		WikiURL:         m.WikiURL,
		ImageURL:        m.ImageURL,
		Status:          m.Status,
		RawData:         rawMap(m.RawData),
	}
}

func vehicleFromModel(m *models.Vehicle) VehicleRecord {
	return VehicleRecord{
		Name:           m.Name,
		YearIntroduced: m.YearIntroduced,
		Faction:        m.Faction,
		Category:       m.Category,
		VehicleType:    m.VehicleType,
		Description:    m.Description,
		PilotDriver:    m.PilotDriver,
		CrewCapacity:   m.CrewCapacity,
		Weapons:        m.Weapons,
		Features:       m.Features,
		Specifications: m.Specifications,
		WikiURL:        m.WikiURL,
		ImageURL:       m.ImageURL,
		ToyLine:        m.ToyLine,
		RawData:        rawMap(m.RawData),
	}
}

func weaponFromModel(m *models.Weapon) WeaponRecord {
	return WeaponRecord{
		Name:            m.Name,
		Type:            m.Type,
		Faction:         m.Faction,
		Description:     m.Description,
		Specifications:  m.Specifications,
		UsedBy:          m.UsedBy,
		FirstAppearance: m.FirstAppearance,
		WikiURL:         m.WikiURL,
		ImageURL:        m.ImageURL,
		RawData:         rawMap(m.RawData),
	}
}

func locationFromModel(m *models.Location) LocationRecord {
	return LocationRecord{
		Name:            m.Name,
		Type:            m.Type,
		Faction:         m.Faction,
		Description:     m.Description,
		Location:        m.Location,
		Purpose:         m.Purpose,
		NotableFeatures: m.NotableFeatures,
		FirstAppearance: m.FirstAppearance,
		WikiURL:         m.WikiURL,
		ImageURL:        m.ImageURL,
		RawData:         rawMap(m.RawData),
	}
}

func relatedFromRows(rows []repository.RelatedRow) []RelatedEntity {
	related := make([]RelatedEntity, 0, len(rows))
	for _, row := range rows {
		related = append(related, RelatedEntity{
			Name:             row.Name,
			Faction:          row.Faction,
			RelationshipType: row.RelationshipType,
		})
	}
	return related
}

func rawMap(m map[string]interface{}) map[string]interface{} {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func placeholderCharacter(name string) CharacterRecord {
	return CharacterRecord{
		Name:        name,
		CodeName:    name,
		Faction:     UnknownFaction,
		Bio:         placeholderBio,
		Status:      UnknownStatus,
		Placeholder: true,
	}
}
