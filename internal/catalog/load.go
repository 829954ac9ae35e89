// Package catalog loads job-posting catalogs from JSON files. Loading is the
// only file I/O on the job side; everything downstream works on in-memory
// values.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/intern-match/internal/schemas"
	"github.com/jonathan/intern-match/internal/types"
)

// Catalog is the on-disk shape of a posting collection.
type Catalog struct {
	Jobs []types.JobPosting `json:"jobs"`
}

var validate = validator.New()

// Load reads, schema-checks, and struct-validates a catalog file. Postings
// without an explicit ID get a generated UUID so downstream results stay
// addressable. The schema check is skipped when the schema file cannot be
// located (tests running from another directory).
func Load(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.CatalogSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, content); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
	}

	var cat Catalog
	if err := json.Unmarshal(content, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON %s: %w", path, err)
	}

	for i := range cat.Jobs {
		if err := validate.Struct(&cat.Jobs[i]); err != nil {
			return nil, fmt.Errorf("catalog %s: job %d invalid: %w", path, i, err)
		}
		if cat.Jobs[i].ID == "" {
			cat.Jobs[i].ID = uuid.NewString()
		}
	}

	return &cat, nil
}
