// Package content loads the site copy from the embedded YAML document.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/pkg/validation"
)

//go:embed site.yaml
var siteYAML []byte

var ErrInvalidContent = errors.New("invalid site content")

// Load parses and validates the embedded content
func Load() (*domain.SiteContent, error) {
	return Parse(siteYAML)
}

// Parse decodes a content document. Unknown keys are rejected so typos fail at start-up.
func Parse(data []byte) (*domain.SiteContent, error) {
	var site domain.SiteContent

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	if err := validation.New().Struct(&site); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	seen := make(map[string]bool, len(site.Services))
	for _, svc := range site.Services {
		if seen[svc.Slug] {
			return nil, fmt.Errorf("%w: duplicate service slug %q", ErrInvalidContent, svc.Slug)
		}
		seen[svc.Slug] = true
	}

	return &site, nil
}

// MustLoad is Load for process start-up
func MustLoad() *domain.SiteContent {
	site, err := Load()
	if err != nil {
		panic(err)
	}
	return site
}
