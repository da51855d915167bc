package form

import (
	"context"
	"fmt"

	"docdash/internal/model"
)

// Remover deletes a document by id.
type Remover interface {
	Remove(ctx context.Context, id string) (bool, error)
}

// DeleteDialog is the single-step delete confirmation. Opening it never mutates.
type DeleteDialog struct {
	target model.Document
	state  State
}

// NewDelete opens a dialog for doc.
func NewDelete(doc model.Document) *DeleteDialog {
	return &DeleteDialog{target: doc}
}

func (d *DeleteDialog) Target() model.Document { return d.target }
func (d *DeleteDialog) State() State           { return d.state }

// Prompt is the confirmation question shown to the user.
func (d *DeleteDialog) Prompt() string {
	return fmt.Sprintf("Are you sure you want to delete the document %q? This action cannot be undone. Please double-check before proceeding.", d.target.Name)
}

// Confirm removes the target exactly once. removed is false when the document
// was already gone.
func (d *DeleteDialog) Confirm(ctx context.Context, r Remover) (removed bool, err error) {
	if d.state != StateEditing {
		return false, ErrClosed
	}
	removed, err = r.Remove(ctx, d.target.ID)
	if err != nil {
		return false, err
	}
	d.state = StateCommitted
	return removed, nil
}

// Cancel closes the dialog without side effects.
func (d *DeleteDialog) Cancel() {
	if d.state == StateEditing {
		d.state = StateCancelled
	}
}
