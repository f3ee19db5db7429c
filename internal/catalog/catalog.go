// Package catalog loads the scheme catalog from a JSON file or from the
// embedded fallback list. The catalog is loaded once at process start and is
// read-only for the remainder of the process.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

//go:embed schemes.json
var embeddedSchemes []byte

// Catalog is an immutable collection of scheme records.
type Catalog struct {
	schemes []model.SchemeRecord
	byID    map[string]*model.SchemeRecord
}

// Load reads schemes from the JSON file at path. When path is empty or the
// file does not exist, the embedded fallback catalog is used instead.
func Load(path string) (*Catalog, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			c, err := parse(data)
			if err != nil {
				return nil, eris.Wrapf(err, "catalog: parse %s", path)
			}
			zap.L().Info("catalog: loaded schemes from file",
				zap.String("path", path),
				zap.Int("schemes", c.Len()),
			)
			return c, nil
		}
		if !os.IsNotExist(err) {
			return nil, eris.Wrapf(err, "catalog: read %s", path)
		}
		zap.L().Warn("catalog: file not found, using embedded fallback", zap.String("path", path))
	}

	c, err := parse(embeddedSchemes)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: parse embedded catalog")
	}
	zap.L().Info("catalog: using embedded fallback catalog", zap.Int("schemes", c.Len()))
	return c, nil
}

// parse decodes a JSON array of scheme records, tolerating both the native
// record form and the scraped form (title/snippet/eligibility). A record that
// cannot be decoded or that lacks an identity is skipped with a warning; one
// bad record never aborts the batch.
func parse(data []byte) (*Catalog, error) {
	var rawRecords []json.RawMessage
	if err := json.Unmarshal(data, &rawRecords); err != nil {
		return nil, eris.Wrap(err, "catalog: decode records array")
	}

	c := &Catalog{byID: make(map[string]*model.SchemeRecord)}
	for i, raw := range rawRecords {
		rec, err := decodeRecord(raw, i)
		if err != nil {
			zap.L().Warn("catalog: skipping malformed record",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		c.schemes = append(c.schemes, rec)
	}
	for i := range c.schemes {
		c.byID[c.schemes[i].SchemeID] = &c.schemes[i]
	}
	return c, nil
}

// scrapedRecord is the shape produced by the scheme scraper: flat text fields
// with no structured criteria.
type scrapedRecord struct {
	Title          string `json:"title"`
	Snippet        string `json:"snippet"`
	Eligibility    string `json:"eligibility"`
	TargetAudience string `json:"target_audience"`
	Link           string `json:"link"`
	ApplyLink      string `json:"apply_link"`
}

func decodeRecord(raw json.RawMessage, index int) (model.SchemeRecord, error) {
	var rec model.SchemeRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return model.SchemeRecord{}, eris.Wrap(err, "decode record")
	}

	if rec.SchemeID != "" {
		if rec.Criteria.IsEmpty() {
			return model.SchemeRecord{}, eris.Errorf("record %s has no eligibility criteria", rec.SchemeID)
		}
		return rec, nil
	}

	// No scheme_id: try the scraped form.
	var sr scrapedRecord
	if err := json.Unmarshal(raw, &sr); err != nil || sr.Title == "" {
		return model.SchemeRecord{}, eris.New("record has neither scheme_id nor title")
	}
	return model.SchemeRecord{
		SchemeID:        fmt.Sprintf("json_%d", index),
		Name:            sr.Title,
		Category:        sr.TargetAudience,
		Description:     sr.Snippet,
		Benefits:        map[string]any{"description": sr.Snippet},
		Criteria:        model.Criteria{Text: sr.Eligibility},
		TargetAudience:  sr.TargetAudience,
		EligibilityText: sr.Eligibility,
		OfficialWebsite: sr.Link,
		ApplyLink:       sr.ApplyLink,
	}, nil
}

// Schemes returns the loaded records. Callers must not mutate the slice.
func (c *Catalog) Schemes() []model.SchemeRecord {
	return c.schemes
}

// Get returns the scheme with the given ID, or nil when absent.
func (c *Catalog) Get(schemeID string) *model.SchemeRecord {
	return c.byID[schemeID]
}

// Len returns the number of loaded schemes.
func (c *Catalog) Len() int {
	return len(c.schemes)
}
