package entities

import "time"

// SettingType drives validation and rendering of a settings field
type SettingType string

const (
	SettingTypeString  SettingType = "string"
	SettingTypeText    SettingType = "text"
	SettingTypeBool    SettingType = "bool"
	SettingTypeInt     SettingType = "int"
	SettingTypeDecimal SettingType = "decimal"
	SettingTypeEmail   SettingType = "email"
	SettingTypeURL     SettingType = "url"
	SettingTypeSelect  SettingType = "select"
	SettingTypeSecret  SettingType = "secret"
)

// SettingDefinition describes one key of a settings page
type SettingDefinition struct {
	Key      string      `json:"key" yaml:"key"`
	Label    string      `json:"label" yaml:"label"`
	Type     SettingType `json:"type" yaml:"type"`
	Default  string      `json:"default" yaml:"default"`
	Required bool        `json:"required" yaml:"required"`
	Options  []string    `json:"options,omitempty" yaml:"options"`
	Min      *float64    `json:"min,omitempty" yaml:"min"`
	Max      *float64    `json:"max,omitempty" yaml:"max"`
}

// SettingGroup is a settings page
type SettingGroup struct {
	Name   string              `json:"name" yaml:"name"`
	Label  string              `json:"label" yaml:"label"`
	Fields []SettingDefinition `json:"fields" yaml:"fields"`
}

// Field returns the definition for key
func (g *SettingGroup) Field(key string) (SettingDefinition, bool) {
	for _, f := range g.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return SettingDefinition{}, false
}

// Setting is one stored value. Secret values are stored encrypted.
type Setting struct {
	Group     string    `json:"group"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
