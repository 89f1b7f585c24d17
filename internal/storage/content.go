package storage

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"hackpulse/internal/core/model"
	"hackpulse/resources"
)

const contentFileName = "hackathon.yaml"

// ErrEmptyContent indicates a content file without a title.
var ErrEmptyContent = errors.New("content has no title")

// LoadContent parses the embedded page copy.
func LoadContent() (model.Content, error) {
	rawData, err := resources.Content(contentFileName)
	if err != nil {
		return model.Content{}, err
	}
	return ParseContent(rawData)
}

// ParseContent decodes page copy from YAML.
func ParseContent(rawData []byte) (model.Content, error) {
	var content model.Content
	if err := yaml.Unmarshal(rawData, &content); err != nil {
		return model.Content{}, fmt.Errorf("parse content yaml: %w", err)
	}
	if content.Title == "" {
		return model.Content{}, ErrEmptyContent
	}
	return content, nil
}
