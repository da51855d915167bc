package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdash/internal/model"
)

func TestStatic(t *testing.T) {
	docs, err := Static().Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 4)

	statuses := make([]model.Status, 0, len(docs))
	seen := map[string]bool{}
	for _, d := range docs {
		statuses = append(statuses, d.Status)
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Number)
		assert.NotEmpty(t, d.Link)
		assert.False(t, d.CreatedAt.IsZero())
	}
	assert.Equal(t, []model.Status{model.StatusDraft, model.StatusInReview, model.StatusApproved, model.StatusDraft}, statuses)
}

func TestStaticReturnsCopies(t *testing.T) {
	ctx := context.Background()
	first, err := Static().Documents(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := Static().Documents(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestStaticCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Static().Documents(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse(t *testing.T) {
	const src = `
- id: a-1
  name: Travel Policy
  number: HR-POL-009
  division: human resources
  category: Policy
  status: archived
  link: https://example.com/travel
  created_at: "2023-11-30"
- name: Server Runbook
  number: IT-MAN-002
  division: Information Technology
  category: Manual
  status: In Review
  link: https://example.com/runbook
`
	docs, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "a-1", docs[0].ID)
	assert.Equal(t, model.DivisionHR, docs[0].Division)
	assert.Equal(t, model.StatusArchived, docs[0].Status)
	assert.Equal(t, time.Date(2023, 11, 30, 0, 0, 0, 0, time.UTC), docs[0].CreatedAt)

	assert.Empty(t, docs[1].ID)
	assert.True(t, docs[1].CreatedAt.IsZero())
	assert.Equal(t, model.StatusInReview, docs[1].Status)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		wantIs error
	}{
		{name: "bad enum", src: "- name: x\n  number: N-1\n  division: Legal\n  category: Policy\n  status: Draft\n", wantIs: model.ErrInvalidEnum},
		{name: "missing enum", src: "- name: x\n  number: N-1\n  division: Finance\n  status: Draft\n", wantIs: model.ErrInvalidEnum},
		{name: "blank name", src: "- name: \"  \"\n  number: N-1\n  division: Finance\n  category: Policy\n  status: Draft\n", wantIs: ErrMissingField},
		{name: "missing number", src: "- name: x\n  division: Finance\n  category: Policy\n  status: Draft\n", wantIs: ErrMissingField},
		{name: "bad date", src: "- name: x\n  number: N-1\n  division: Finance\n  category: Policy\n  status: Draft\n  created_at: yesterday\n"},
		{name: "not a list", src: "name: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: f-1\n  name: A\n  number: N-1\n  division: Finance\n  category: Invoice\n  status: Approved\n  link: https://example.com/a\n"), 0o600))

	docs, err := FromEnv(path).Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, model.CategoryInvoice, docs[0].Category)

	_, err = File(filepath.Join(dir, "missing.yaml")).Documents(context.Background())
	assert.ErrorContains(t, err, "read seed file")
}

func TestFromEnvDefaultsToStatic(t *testing.T) {
	docs, err := FromEnv("").Documents(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 4)
}

func TestSourceFunc(t *testing.T) {
	src := SourceFunc(func(ctx context.Context) ([]model.Document, error) {
		return []model.Document{{ID: "x"}}, nil
	})
	docs, err := src.Documents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x", docs[0].ID)
}
