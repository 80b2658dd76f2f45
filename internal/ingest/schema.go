// internal/ingest/schema.go
package ingest

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/seifbadreldinx/futureintern/internal/common/errors"
)

// listingSchema validates listing payloads handed in over the boundary.
// Only the id is structurally required; every other field degrades to
// zero-information input inside the engine.
const listingSchema = `{
	"type": "object",
	"required": ["id"],
	"properties": {
		"id": {"type": ["string", "integer"], "minLength": 1},
		"title": {"type": "string"},
		"description": {"type": "string"},
		"requirements": {"type": "string"},
		"required_skills": {"type": ["array", "string"], "items": {"type": "string"}},
		"major": {"type": "string"},
		"location": {"type": "string"},
		"required_availability": {"type": "number", "minimum": 0}
	}
}`

var compiledListingSchema = gojsonschema.NewStringLoader(listingSchema)

// ListingFromJSON validates and decodes one raw listing document. The skills
// field accepts both a JSON array and a comma-separated string; numeric ids
// are stringified.
func ListingFromJSON(data []byte) (ListingRecord, error) {
	result, err := gojsonschema.Validate(compiledListingSchema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return ListingRecord{}, errors.NewListingValidationFailedError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return ListingRecord{}, errors.NewListingValidationFailedError(strings.Join(details, "; "))
	}

	doc := gjson.ParseBytes(data)
	rec := ListingRecord{
		ID:                        doc.Get("id").String(),
		Title:                     doc.Get("title").String(),
		Description:               doc.Get("description").String(),
		Requirements:              doc.Get("requirements").String(),
		Major:                     doc.Get("major").String(),
		Location:                  doc.Get("location").String(),
		RequiredAvailabilityHours: doc.Get("required_availability").Float(),
	}

	if skills := doc.Get("required_skills"); skills.Exists() {
		rec.RequiredSkills = skills.Raw
		if !skills.IsArray() {
			rec.RequiredSkills = skills.String()
		}
	}
	return rec, nil
}

// ListingsFromJSON decodes a JSON array of listing documents. Invalid
// entries are dropped and reported by position; they never fail the batch.
func ListingsFromJSON(data []byte) ([]ListingRecord, []string) {
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, []string{"payload is not a JSON array"}
	}

	var records []ListingRecord
	var rejected []string
	i := 0
	doc.ForEach(func(_, value gjson.Result) bool {
		rec, err := ListingFromJSON([]byte(value.Raw))
		if err != nil {
			rejected = append(rejected, fmt.Sprintf("listing[%d]: %v", i, err))
		} else {
			records = append(records, rec)
		}
		i++
		return true
	})
	return records, rejected
}
