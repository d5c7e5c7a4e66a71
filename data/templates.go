package data

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultTemplateDir is where tank templates are loaded from
const DefaultTemplateDir = "data/tanks"

// TankTemplate describes one player's tank
type TankTemplate struct {
	ID       string   `yaml:"id"`    // Unique identifier
	Name     string   `yaml:"name"`  // Display name
	Color    string   `yaml:"color"` // Color in hex format (e.g. "#00FF00")
	Player   int      `yaml:"player"`
	Controls Controls `yaml:"controls"`
}

// Controls names the keys driving a tank. Names follow ebiten.Key text form
// without the "Key" prefix, e.g. "W", "ArrowUp", "Space".
type Controls struct {
	Forward string `yaml:"forward"`
	Back    string `yaml:"back"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Fire    string `yaml:"fire"`
}

// TankTemplateManager manages all tank templates
type TankTemplateManager struct {
	Templates map[string]*TankTemplate
}

// NewTankTemplateManager creates a new template manager
func NewTankTemplateManager() *TankTemplateManager {
	return &TankTemplateManager{
		Templates: make(map[string]*TankTemplate),
	}
}

// LoadTemplatesFromDirectory loads all YAML template files from a directory
func (m *TankTemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, file := range files {
		ext := filepath.Ext(file.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadTemplateFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load template from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadTemplateFromFile loads a single tank template from a YAML file
func (m *TankTemplateManager) LoadTemplateFromFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var template TankTemplate
	if err := yaml.Unmarshal(data, &template); err != nil {
		return err
	}

	if err := ValidateTankTemplate(&template); err != nil {
		return err
	}

	m.Templates[template.ID] = &template
	return nil
}

// GetTemplate returns a template by ID
func (m *TankTemplateManager) GetTemplate(id string) (*TankTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// ByPlayer returns the templates ordered by player slot
func (m *TankTemplateManager) ByPlayer() []*TankTemplate {
	result := make([]*TankTemplate, 0, len(m.Templates))
	for _, t := range m.Templates {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Player < result[j].Player })
	return result
}

// ValidateTankTemplate ensures that the tank template has all required fields
func ValidateTankTemplate(template *TankTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("tank template missing id")
	}
	if template.Name == "" {
		return fmt.Errorf("tank template '%s' missing name", template.ID)
	}
	if template.Player < 0 || template.Player > 1 {
		return fmt.Errorf("tank template '%s' has player %d, want 0 or 1", template.ID, template.Player)
	}
	c := template.Controls
	if c.Forward == "" || c.Back == "" || c.Left == "" || c.Right == "" || c.Fire == "" {
		return fmt.Errorf("tank template '%s' has incomplete controls", template.ID)
	}
	return nil
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return color.RGBA{255, 255, 255, 255}
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}

// DefaultTemplates returns the two built-in tanks used when no template files are found
func DefaultTemplates() *TankTemplateManager {
	m := NewTankTemplateManager()
	m.Templates["green"] = &TankTemplate{
		ID: "green", Name: "Green", Color: "#3cb44b", Player: 0,
		Controls: Controls{Forward: "W", Back: "S", Left: "A", Right: "D", Fire: "Space"},
	}
	m.Templates["red"] = &TankTemplate{
		ID: "red", Name: "Red", Color: "#e6194b", Player: 1,
		Controls: Controls{Forward: "ArrowUp", Back: "ArrowDown", Left: "ArrowLeft", Right: "ArrowRight", Fire: "Enter"},
	}
	return m
}
