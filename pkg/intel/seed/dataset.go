package seed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Character is a seed row for the characters table. Keys without a column
// are kept in Extra and stored as raw_data.
type Character struct {
	Name            string                 `yaml:"name"`
	RealName        string                 `yaml:"real_name"`
	CodeName        string                 `yaml:"code_name"`
	Faction         string                 `yaml:"faction"`
	Rank            string                 `yaml:"rank"`
	Specialty       string                 `yaml:"specialty"`
	Birthplace      string                 `yaml:"birthplace"`
	Bio             string                 `yaml:"bio"`
	FirstAppearance string                 `yaml:"first_appearance"`
	VoiceActor      string                 `yaml:"voice_actor"`
	WikiURL         string                 `yaml:"wiki_url"`
	ImageURL        string                 `yaml:"image_url"`
	Status          string                 `yaml:"status"`
	Extra           map[string]interface{} `yaml:",inline"`
}

// Vehicle is a seed row for the vehicles table
type Vehicle struct {
	Name           string                 `yaml:"name"`
	YearIntroduced int                    `yaml:"year_introduced"`
	Faction        string                 `yaml:"faction"`
	Category       string                 `yaml:"category"`
	VehicleType    string                 `yaml:"vehicle_type"`
	Description    string                 `yaml:"description"`
	PilotDriver    string                 `yaml:"pilot_driver"`
	CrewCapacity   int                    `yaml:"crew_capacity"`
	Weapons        string                 `yaml:"weapons"`
	Features       string                 `yaml:"features"`
	Specifications string                 `yaml:"specifications"`
	WikiURL        string                 `yaml:"wiki_url"`
	ImageURL       string                 `yaml:"image_url"`
	ToyLine        string                 `yaml:"toy_line"`
	Extra          map[string]interface{} `yaml:",inline"`
}

// Weapon is a seed row for the weapons table
type Weapon struct {
	Name            string                 `yaml:"name"`
	Type            string                 `yaml:"type"`
	Faction         string                 `yaml:"faction"`
	Description     string                 `yaml:"description"`
	Specifications  string                 `yaml:"specifications"`
	UsedBy          string                 `yaml:"used_by"`
	FirstAppearance string                 `yaml:"first_appearance"`
	WikiURL         string                 `yaml:"wiki_url"`
	ImageURL        string                 `yaml:"image_url"`
	Extra           map[string]interface{} `yaml:",inline"`
}

// Location is a seed row for the locations table
type Location struct {
	Name            string                 `yaml:"name"`
	Type            string                 `yaml:"type"`
	Faction         string                 `yaml:"faction"`
	Description     string                 `yaml:"description"`
	Location        string                 `yaml:"location"`
	Purpose         string                 `yaml:"purpose"`
	NotableFeatures string                 `yaml:"notable_features"`
	FirstAppearance string                 `yaml:"first_appearance"`
	WikiURL         string                 `yaml:"wiki_url"`
	ImageURL        string                 `yaml:"image_url"`
	Extra           map[string]interface{} `yaml:",inline"`
}

// Relation names both ends of a relation and its label
type Relation struct {
	Character string `yaml:"character"`
	Other     string `yaml:"other"`
	Type      string `yaml:"type"`
}

// Dataset is everything needed to populate the lookup store
type Dataset struct {
	Characters       []Character `yaml:"characters"`
	Vehicles         []Vehicle   `yaml:"vehicles"`
	Weapons          []Weapon    `yaml:"weapons"`
	Locations        []Location  `yaml:"locations"`
	VehicleRelations []Relation  `yaml:"vehicle_relations"`
	WeaponRelations  []Relation  `yaml:"weapon_relations"`
}

// Load decodes a YAML (or JSON) dataset and validates it
func Load(r io.Reader) (Dataset, error) {
	var ds Dataset
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&ds); err != nil && err != io.EOF {
		return Dataset{}, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// LoadFile reads a dataset from disk
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks names are present and unique per table and that every
// relation points at an entity of the dataset.
func (d Dataset) Validate() error {
	characters, err := nameSet("character", len(d.Characters), func(i int) string { return d.Characters[i].Name })
	if err != nil {
		return err
	}
	vehicles, err := nameSet("vehicle", len(d.Vehicles), func(i int) string { return d.Vehicles[i].Name })
	if err != nil {
		return err
	}
	weapons, err := nameSet("weapon", len(d.Weapons), func(i int) string { return d.Weapons[i].Name })
	if err != nil {
		return err
	}
	if _, err := nameSet("location", len(d.Locations), func(i int) string { return d.Locations[i].Name }); err != nil {
		return err
	}

	if err := checkRelations("vehicle", d.VehicleRelations, characters, vehicles); err != nil {
		return err
	}
	return checkRelations("weapon", d.WeaponRelations, characters, weapons)
}

// Counts returns the number of rows per table
func (d Dataset) Counts() map[string]int {
	return map[string]int{
		"characters":                  len(d.Characters),
		"vehicles":                    len(d.Vehicles),
		"weapons":                     len(d.Weapons),
		"locations":                   len(d.Locations),
		"character_vehicle_relations": len(d.VehicleRelations),
		"character_weapon_relations":  len(d.WeaponRelations),
	}
}

func nameSet(kind string, n int, name func(int) string) (map[string]bool, error) {
	set := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		key := normalize(name(i))
		if key == "" {
			return nil, fmt.Errorf("%s #%d has no name", kind, i+1)
		}
		if set[key] {
			return nil, fmt.Errorf("duplicate %s name: %s", kind, name(i))
		}
		set[key] = true
	}
	return set, nil
}

// checkRelations allows relations to entities outside the dataset only
// when the dataset has no entities of that kind at all, so relation-only
// files can target an already populated store.
func checkRelations(kind string, relations []Relation, characters, others map[string]bool) error {
	for _, rel := range relations {
		if strings.TrimSpace(rel.Type) == "" {
			return fmt.Errorf("%s relation %s -> %s has no type", kind, rel.Character, rel.Other)
		}
		if len(characters) > 0 && !characters[normalize(rel.Character)] {
			return fmt.Errorf("%s relation references unknown character: %s", kind, rel.Character)
		}
		if len(others) > 0 && !others[normalize(rel.Other)] {
			return fmt.Errorf("%s relation references unknown %s: %s", kind, kind, rel.Other)
		}
	}
	return nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
