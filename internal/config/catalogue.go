package config

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v2"
	"shop-admin.backend/internal/domain/entities"
)

//go:embed catalogue/*.yaml
var catalogueFS embed.FS

type settingsFile struct {
	Groups []entities.SettingGroup `yaml:"groups"`
}

type permissionsFile struct {
	Modules []struct {
		Module  string   `yaml:"module"`
		Actions []string `yaml:"actions"`
	} `yaml:"modules"`
}

var readCatalogue = catalogueFS.ReadFile

// LoadSettingGroups parses the settings page definitions
func LoadSettingGroups() ([]entities.SettingGroup, error) {
	data, err := readCatalogue("catalogue/settings.yaml")
	if err != nil {
		return nil, fmt.Errorf("unable to read settings catalogue: %w", err)
	}
	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse settings catalogue: %w", err)
	}

	names := make(map[string]bool, len(file.Groups))
	for i, g := range file.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("settings group at index %d missing name", i)
		}
		if names[g.Name] {
			return nil, fmt.Errorf("settings group %q declared twice", g.Name)
		}
		names[g.Name] = true
		keys := make(map[string]bool, len(g.Fields))
		for _, f := range g.Fields {
			if f.Key == "" || keys[f.Key] {
				return nil, fmt.Errorf("settings group %q has an empty or duplicate key %q", g.Name, f.Key)
			}
			keys[f.Key] = true
			if f.Type == entities.SettingTypeSelect && len(f.Options) == 0 {
				return nil, fmt.Errorf("select %s.%s has no options", g.Name, f.Key)
			}
		}
	}
	return file.Groups, nil
}

// LoadPermissions expands the permission catalogue. Every settings group
// contributes settings.<group>.view and settings.<group>.update.
func LoadPermissions(groups []entities.SettingGroup) ([]entities.Permission, error) {
	data, err := readCatalogue("catalogue/permissions.yaml")
	if err != nil {
		return nil, fmt.Errorf("unable to read permission catalogue: %w", err)
	}
	var file permissionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse permission catalogue: %w", err)
	}

	var perms []entities.Permission
	for i, m := range file.Modules {
		if m.Module == "" || len(m.Actions) == 0 {
			return nil, fmt.Errorf("permission module at index %d is incomplete", i)
		}
		for _, action := range m.Actions {
			perms = append(perms, entities.Permission{
				Name:        m.Module + "." + action,
				Module:      m.Module,
				Description: fmt.Sprintf("%s %s", action, m.Module),
			})
		}
	}
	for _, g := range groups {
		for _, action := range []string{"view", "update"} {
			perms = append(perms, entities.Permission{
				Name:        "settings." + g.Name + "." + action,
				Module:      "settings",
				Description: fmt.Sprintf("%s %s settings", action, g.Label),
			})
		}
	}
	return perms, nil
}
