package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	logoDir    = "logo/"
	contentDir = "content/"
)

//go:embed logo/*.svg
var logoFS embed.FS

//go:embed content/*.yaml
var contentFS embed.FS

var logoCache sync.Map

// Logo returns a Fyne resource for the given logo file.
func Logo(fileName string) (fyne.Resource, error) {
	path := logoDir + fileName
	if cached, ok := logoCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := logoFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	logoCache.Store(path, resource)
	return resource, nil
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(fileName string) fyne.Resource {
	resource, err := Logo(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// Content returns the raw bytes of an embedded content file.
func Content(fileName string) ([]byte, error) {
	data, err := contentFS.ReadFile(contentDir + fileName)
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", fileName, err)
	}
	return data, nil
}
