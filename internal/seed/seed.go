// Package seed supplies the initial document collection of a dashboard session.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"docdash/internal/model"
)

// ErrMissingField marks a seed record without a required value.
var ErrMissingField = errors.New("required field is empty")

// Source provides the documents a store starts with. It is pulled once per store.
type Source interface {
	Documents(ctx context.Context) ([]model.Document, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]model.Document, error)

func (f SourceFunc) Documents(ctx context.Context) ([]model.Document, error) { return f(ctx) }

type staticSource struct{}

// Static returns the built-in mock records.
func Static() Source { return staticSource{} }

func (staticSource) Documents(ctx context.Context) ([]model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return mockDocuments(), nil
}

func mockDocuments() []model.Document {
	return []model.Document{
		{
			ID:        "doc-1",
			Name:      "Employee Handbook 2024",
			Number:    "HR-POL-001",
			Division:  model.DivisionHR,
			Category:  model.CategoryPolicy,
			Status:    model.StatusDraft,
			Link:      "https://docs.google.com/document/d/1-hr-handbook",
			CreatedAt: date(2024, time.January, 15),
		},
		{
			ID:        "doc-2",
			Name:      "Q3 Financial Report",
			Number:    "FIN-REP-023",
			Division:  model.DivisionFinance,
			Category:  model.CategoryReport,
			Status:    model.StatusInReview,
			Link:      "https://docs.google.com/spreadsheets/d/2-q3-report",
			CreatedAt: date(2024, time.February, 20),
		},
		{
			ID:        "doc-3",
			Name:      "Cloud Services Agreement",
			Number:    "IT-CON-104",
			Division:  model.DivisionIT,
			Category:  model.CategoryContract,
			Status:    model.StatusApproved,
			Link:      "https://docs.google.com/document/d/3-cloud-agreement",
			CreatedAt: date(2024, time.March, 5),
		},
		{
			ID:        "doc-4",
			Name:      "Brand Guidelines Manual",
			Number:    "MKT-MAN-012",
			Division:  model.DivisionMarketing,
			Category:  model.CategoryManual,
			Status:    model.StatusDraft,
			Link:      "https://docs.google.com/presentation/d/4-brand-guide",
			CreatedAt: date(2024, time.April, 2),
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fileRecord is the YAML shape of one document; created_at is a plain date.
type fileRecord struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Number    string         `yaml:"number"`
	Division  model.Division `yaml:"division"`
	Category  model.Category `yaml:"category"`
	Status    model.Status   `yaml:"status"`
	Link      string         `yaml:"link"`
	CreatedAt string         `yaml:"created_at"`
}

type fileSource struct {
	path string
}

// File returns a Source reading a YAML list of documents from path.
// The file is read on every call so each new session sees its current content.
func File(path string) Source { return fileSource{path: path} }

func (f fileSource) Documents(ctx context.Context) ([]model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML document list.
func Parse(b []byte) ([]model.Document, error) {
	var recs []fileRecord
	if err := yaml.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	out := make([]model.Document, 0, len(recs))
	for i, r := range recs {
		doc := model.Document{
			ID:       r.ID,
			Name:     r.Name,
			Number:   r.Number,
			Division: r.Division,
			Category: r.Category,
			Status:   r.Status,
			Link:     r.Link,
		}
		if r.CreatedAt != "" {
			t, err := time.Parse(model.DateLayout, r.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("seed record %d: created_at: %w", i, err)
			}
			doc.CreatedAt = t
		}
		if strings.TrimSpace(doc.Name) == "" {
			return nil, fmt.Errorf("seed record %d: name: %w", i, ErrMissingField)
		}
		if strings.TrimSpace(doc.Number) == "" {
			return nil, fmt.Errorf("seed record %d: number: %w", i, ErrMissingField)
		}
		if !doc.Division.Valid() || !doc.Category.Valid() || !doc.Status.Valid() {
			return nil, fmt.Errorf("seed record %d: %w", i, model.ErrInvalidEnum)
		}
		out = append(out, doc)
	}
	return out, nil
}

// FromEnv picks File(path) when path is set and Static otherwise.
func FromEnv(path string) Source {
	if path == "" {
		return Static()
	}
	return File(path)
}
