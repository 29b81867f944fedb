// Package loader reads OpenAPI 3.x documents with libopenapi and turns them
// into the generator's model.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
)

type Result struct {
	Document *libopenapi.DocumentModel[v3.Document]
	Version  string
	// Warnings are problems that did not stop the document from loading,
	// such as circular references between components.
	Warnings []string
}

// LoadFile parses the document at path. Relative file references resolve
// against the document's directory.
func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	return load(data, &datamodel.DocumentConfiguration{
		BasePath:            filepath.Dir(absPath),
		AllowFileReferences: true,
	})
}

// LoadBytes parses an in-memory document. File references are not followed.
func LoadBytes(data []byte) (*Result, error) {
	return load(data, nil)
}

func load(data []byte, config *datamodel.DocumentConfiguration) (*Result, error) {
	doc, err := libopenapi.NewDocumentWithConfiguration(data, config)
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	result := &Result{Version: doc.GetVersion()}
	if err := checkVersion(result.Version); err != nil {
		return nil, err
	}
	if strings.HasPrefix(result.Version, "3.0") {
		result.Warnings = append(result.Warnings, "OpenAPI 3.0.x detected; nullable is read from the nullable keyword")
	}

	// A model comes back alongside circular reference errors; anything else
	// leaves it nil.
	model, err := doc.BuildV3Model()
	if model == nil {
		if err == nil {
			err = errors.New("no model produced")
		}
		return nil, fmt.Errorf("building OpenAPI model: %w", err)
	}
	result.Document = model
	for _, e := range unwrap(err) {
		result.Warnings = append(result.Warnings, e.Error())
	}

	return result, nil
}

func checkVersion(version string) error {
	if !strings.HasPrefix(version, "3.") {
		return fmt.Errorf("unsupported OpenAPI version: %s (only 3.x supported)", version)
	}
	return nil
}

func unwrap(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
