// Package dashboard is the presentation controller of a logged-in session. It owns
// the open modal and turns user actions into store operations; the HTTP handlers
// and the terminal UI both drive it.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"docdash/internal/form"
	"docdash/internal/metrics"
	"docdash/internal/model"
	"docdash/internal/query"
	"docdash/internal/service"
)

var (
	ErrNotFound = errors.New("document not found")
	ErrNoModal  = errors.New("no modal is open")
	ErrNotForm  = errors.New("open modal is not a form")
)

const (
	BannerTitle = "Demonstration Mode"
	BannerText  = "This dashboard is fully functional with mock data. Documents live only for the length of your session."
)

// ModalKind is the kind of the open modal.
type ModalKind string

const (
	ModalNone   ModalKind = ""
	ModalAdd    ModalKind = "add"
	ModalEdit   ModalKind = "edit"
	ModalDelete ModalKind = "delete"
)

// ModalView is a snapshot of the open modal.
type ModalView struct {
	Open    bool              `json:"open"`
	Kind    ModalKind         `json:"type,omitempty"`
	Title   string            `json:"title,omitempty"`
	State   string            `json:"state,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Target  *model.Document   `json:"data,omitempty"`
	Warning string            `json:"warning,omitempty"`
	Prompt  string            `json:"prompt,omitempty"`
	Submit  string            `json:"submit_label,omitempty"`
}

// View is everything a renderer needs for one frame.
type View struct {
	BannerTitle string               `json:"banner_title"`
	Banner      string               `json:"banner"`
	Stats       query.Stats          `json:"stats"`
	Criteria    model.FilterCriteria `json:"filters"`
	Documents   []model.Document     `json:"documents"`
	Modal       ModalView            `json:"modal"`
}

// SubmitResult reports the effect of Submit.
type SubmitResult struct {
	Kind      ModalKind       `json:"type"`
	State     string          `json:"state"`
	Warning   string          `json:"warning,omitempty"`
	Document  *model.Document `json:"document,omitempty"`
	Removed   bool            `json:"removed,omitempty"`
	Committed bool            `json:"committed"`
}

// Dashboard is safe for concurrent use.
type Dashboard struct {
	store service.DocumentStore

	mu   sync.Mutex
	kind ModalKind
	form *form.Form
	del  *form.DeleteDialog
}

// New wraps an initialized store.
func New(store service.DocumentStore) *Dashboard {
	return &Dashboard{store: store}
}

// Store exposes the underlying document store.
func (d *Dashboard) Store() service.DocumentStore { return d.store }

// View renders the current state. Derived data is recomputed on every call.
func (d *Dashboard) View(ctx context.Context) (View, error) {
	docs, err := d.store.Filtered(ctx)
	if err != nil {
		return View{}, err
	}
	st, err := d.store.Stats(ctx)
	if err != nil {
		return View{}, err
	}
	return View{
		BannerTitle: BannerTitle,
		Banner:      BannerText,
		Stats:       st,
		Criteria:    d.store.Criteria(),
		Documents:   docs,
		Modal:       d.Modal(),
	}, nil
}

// SetFilter changes one filter field from its wire value.
func (d *Dashboard) SetFilter(ctx context.Context, field, value string) (model.FilterCriteria, error) {
	f, err := model.ParseFilterField(field)
	if err != nil {
		return d.store.Criteria(), err
	}
	return d.store.SetFilter(ctx, f, value)
}

// ResetFilters restores wildcard criteria.
func (d *Dashboard) ResetFilters(ctx context.Context) model.FilterCriteria {
	return d.store.ResetFilters(ctx)
}

// OpenAdd opens an empty document form, replacing any open modal.
func (d *Dashboard) OpenAdd() ModalView {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setModal(ModalAdd, form.NewAdd(), nil)
	return d.modalLocked()
}

// OpenEdit opens a form prefilled from the document with id.
func (d *Dashboard) OpenEdit(ctx context.Context, id string) (ModalView, error) {
	doc, err := d.lookup(ctx, id)
	if err != nil {
		return ModalView{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setModal(ModalEdit, form.NewEdit(*doc), nil)
	return d.modalLocked(), nil
}

// OpenDelete opens the delete confirmation for the document with id.
func (d *Dashboard) OpenDelete(ctx context.Context, id string) (ModalView, error) {
	doc, err := d.lookup(ctx, id)
	if err != nil {
		return ModalView{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setModal(ModalDelete, nil, form.NewDelete(*doc))
	return d.modalLocked(), nil
}

// SetField edits one field of the open form.
func (d *Dashboard) SetField(field, value string) (ModalView, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.kind == ModalNone {
		return d.modalLocked(), ErrNoModal
	}
	if d.form == nil {
		return d.modalLocked(), ErrNotForm
	}
	f, err := form.ParseField(field)
	if err != nil {
		return d.modalLocked(), err
	}
	if err := d.form.Set(f, value); err != nil {
		return d.modalLocked(), err
	}
	return d.modalLocked(), nil
}

// SetFields edits several fields of the open form at once. Nothing changes
// unless every value is accepted.
func (d *Dashboard) SetFields(values map[form.Field]string) (ModalView, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.kind == ModalNone {
		return d.modalLocked(), ErrNoModal
	}
	if d.form == nil {
		return d.modalLocked(), ErrNotForm
	}
	if err := d.form.SetAll(values); err != nil {
		return d.modalLocked(), err
	}
	return d.modalLocked(), nil
}

// Submit submits the open form or confirms the open delete dialog.
// The modal closes once the workflow commits.
func (d *Dashboard) Submit(ctx context.Context) (SubmitResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.kind {
	case ModalAdd, ModalEdit:
		out, err := d.form.Submit(ctx, d.store)
		res := SubmitResult{Kind: d.kind, State: out.State.String()}
		if err != nil {
			return res, err
		}
		res.Warning = out.Warning
		res.Document = out.Document
		if out.State == form.StateCommitted {
			metrics.FormSubmissions.WithLabelValues("committed").Inc()
			res.Committed = true
			d.closeLocked()
		} else {
			metrics.FormSubmissions.WithLabelValues("review").Inc()
		}
		return res, nil
	case ModalDelete:
		removed, err := d.del.Confirm(ctx, d.store)
		res := SubmitResult{Kind: ModalDelete, State: d.del.State().String()}
		if err != nil {
			return res, err
		}
		metrics.FormSubmissions.WithLabelValues("delete").Inc()
		res.Removed = removed
		res.Committed = true
		d.closeLocked()
		return res, nil
	}
	return SubmitResult{}, ErrNoModal
}

// Close cancels whatever modal is open. Closing with nothing open is a no-op.
func (d *Dashboard) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.form != nil {
		d.form.Cancel()
	}
	if d.del != nil {
		d.del.Cancel()
	}
	d.closeLocked()
}

// Modal returns the open modal.
func (d *Dashboard) Modal() ModalView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modalLocked()
}

// Document returns one document or ErrNotFound.
func (d *Dashboard) Document(ctx context.Context, id string) (*model.Document, error) {
	return d.lookup(ctx, id)
}

func (d *Dashboard) lookup(ctx context.Context, id string) (*model.Document, error) {
	doc, err := d.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return doc, nil
}

// caller holds mu
func (d *Dashboard) setModal(kind ModalKind, f *form.Form, del *form.DeleteDialog) {
	if d.form != nil {
		d.form.Cancel()
	}
	if d.del != nil {
		d.del.Cancel()
	}
	d.kind, d.form, d.del = kind, f, del
}

// caller holds mu
func (d *Dashboard) closeLocked() {
	d.kind, d.form, d.del = ModalNone, nil, nil
}

// caller holds mu
func (d *Dashboard) modalLocked() ModalView {
	switch {
	case d.form != nil:
		v := ModalView{
			Open:   true,
			Kind:   d.kind,
			Title:  d.form.Title(),
			State:  d.form.State().String(),
			Fields: make(map[string]string, len(form.Fields())),
			Submit: d.form.SubmitLabel(),
		}
		for _, f := range form.Fields() {
			v.Fields[string(f)] = d.form.Get(f)
		}
		if t, ok := d.form.Target(); ok {
			v.Target = &t
		}
		if d.form.Reviewing() {
			v.Warning = form.ReviewWarning
		}
		return v
	case d.del != nil:
		t := d.del.Target()
		return ModalView{
			Open:   true,
			Kind:   ModalDelete,
			Title:  "Confirm Deletion",
			State:  d.del.State().String(),
			Target: &t,
			Prompt: d.del.Prompt(),
			Submit: "Delete Document",
		}
	}
	return ModalView{}
}
