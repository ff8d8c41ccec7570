package routes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the on-disk layout of a routes file:
//
//	routes:
//	  - path: /
//	    label: Introduction
//	    exact: true
//	    page: intro
type file struct {
	Routes []Entry `yaml:"routes"`
}

// LoadFile reads a YAML routes file. The result still has to go through New.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading routes file %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing routes file %s: %w", path, err)
	}
	return f.Routes, nil
}

// Load returns the validated model from path, or the built-in book when path is empty.
func Load(path string) (*Model, error) {
	entries := Default()
	if path != "" {
		var err error
		entries, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return New(entries)
}
