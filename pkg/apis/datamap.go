package apis

import "fmt"

// DataMapping describes how source dataset columns map onto the
// measurement fields. Loaded from YAML so dashboards over differently
// labeled exports do not need a code change.
type DataMapping struct {
	Kind          string         `json:"kind" example:"DataMapping" yaml:"kind"`
	Version       string         `json:"version" example:"v1" yaml:"version"`
	Metadata      Metadata       `json:"metadata" yaml:"metadata"`
	Dataset       string         `json:"dataset" example:"ranking-results" yaml:"dataset"`
	FieldMappings []FieldMapping `json:"fieldMappings" yaml:"fieldMappings"`
}

type Metadata struct {
	Name        string `json:"name" example:"Ranking Results" yaml:"name"`
	Description string `json:"description" example:"Mapping for averaged ranking accuracy results" yaml:"description"`
}

type FieldMapping struct {
	Source     string `json:"source" example:"Noise Level" yaml:"source"`
	SourceType string `json:"sourceType" example:"float" yaml:"sourceType"`
	Target     string `json:"target" example:"NoiseLevel" yaml:"target"`
	Required   bool   `json:"required" example:"true" yaml:"required"`
}

func (dm *DataMapping) Validate() error {
	if dm.Kind == "" {
		return fmt.Errorf("kind is required")
	}
	if dm.Version == "" {
		return fmt.Errorf("version is required")
	}
	if dm.Metadata.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}
	if dm.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	if len(dm.FieldMappings) == 0 {
		return fmt.Errorf("at least one field mapping is required")
	}
	for i, fm := range dm.FieldMappings {
		if fm.Source == "" {
			return fmt.Errorf("fieldMappings[%d] must have source defined", i)
		}
		if fm.Target == "" {
			return fmt.Errorf("fieldMappings[%d] must have target defined", i)
		}
	}
	return nil
}

type MappingError struct {
	Message string `json:"message" example:"missing source field: Noise Level"`
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping error: %s", e.Message)
}
