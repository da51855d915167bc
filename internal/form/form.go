// Package form holds the confirmation workflows that sit between a user and the
// document store: the two-step add/edit form and the delete dialog.
package form

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"docdash/internal/model"
)

// Banner shown after the first submit of a form.
const (
	ReviewTitle   = "Please Review Your Changes"
	ReviewWarning = "Double-check all fields before submitting. This action will update the document record."
)

// ErrClosed is returned when acting on a committed or cancelled workflow.
var ErrClosed = errors.New("form is closed")

// State is the position of a Form in its workflow.
type State int

const (
	StateEditing State = iota
	StatePendingConfirmation
	StateCommitted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StatePendingConfirmation:
		return "pending_confirmation"
	case StateCommitted:
		return "committed"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Open reports whether the form still accepts edits and submits.
func (s State) Open() bool {
	return s == StateEditing || s == StatePendingConfirmation
}

// Mode tells whether a form creates or edits a document.
type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

// Field names an editable form field.
type Field string

const (
	FieldName     Field = "name"
	FieldNumber   Field = "number"
	FieldDivision Field = "division"
	FieldCategory Field = "category"
	FieldStatus   Field = "status"
	FieldLink     Field = "link"
)

// Fields lists the form fields in display order.
func Fields() []Field {
	return []Field{FieldName, FieldNumber, FieldDivision, FieldCategory, FieldStatus, FieldLink}
}

// ParseField resolves a field name.
func ParseField(raw string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Fields() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", model.ErrUnknownField, raw)
}

// ValidationError lists fields that block a submit.
type ValidationError struct {
	Fields []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, string(f))
	}
	return "invalid fields: " + strings.Join(names, ", ")
}

// Committer receives the final payload of a form.
type Committer interface {
	Add(ctx context.Context, in model.DocumentInput) (model.Document, error)
	Update(ctx context.Context, id string, in model.DocumentInput) (model.Document, bool, error)
}

// Outcome describes what a Submit call did.
type Outcome struct {
	State State
	// Warning is set when the submit only moved the form into review.
	Warning string
	// Document is the stored record after a commit; nil when an edit target had vanished.
	Document *model.Document
}

// Form is the two-step add/edit workflow. It is not safe for concurrent use.
type Form struct {
	mode   Mode
	target *model.Document
	fields model.DocumentInput
	state  State
}

// NewAdd opens an empty form with the default enumerations.
func NewAdd() *Form {
	return &Form{
		mode: ModeAdd,
		fields: model.DocumentInput{
			Division: model.DivisionHR,
			Category: model.CategoryPolicy,
			Status:   model.StatusDraft,
		},
	}
}

// NewEdit opens a form prefilled from doc.
func NewEdit(doc model.Document) *Form {
	d := doc
	return &Form{mode: ModeEdit, target: &d, fields: doc.Input()}
}

func (f *Form) Mode() Mode                 { return f.mode }
func (f *Form) State() State               { return f.state }
func (f *Form) Input() model.DocumentInput { return f.fields }
func (f *Form) Reviewing() bool            { return f.state == StatePendingConfirmation }

// Target returns the document being edited; ok is false for add forms.
func (f *Form) Target() (model.Document, bool) {
	if f.target == nil {
		return model.Document{}, false
	}
	return *f.target, true
}

// Title is the heading of the form.
func (f *Form) Title() string {
	if f.mode == ModeEdit {
		return "Edit Document"
	}
	return "Upload New Document"
}

// SubmitLabel is the caption of the submit action in the current state.
func (f *Form) SubmitLabel() string {
	if f.state == StatePendingConfirmation {
		return "Confirm & Save"
	}
	return "Save Document"
}

// Get returns the current value of field as text.
func (f *Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.fields.Name
	case FieldNumber:
		return f.fields.Number
	case FieldDivision:
		return string(f.fields.Division)
	case FieldCategory:
		return string(f.fields.Category)
	case FieldStatus:
		return string(f.fields.Status)
	case FieldLink:
		return f.fields.Link
	}
	return ""
}

// Set changes one pending field. Enumeration fields must name a member.
// Editing during review is allowed and keeps the form in review.
func (f *Form) Set(field Field, value string) error {
	if !f.state.Open() {
		return ErrClosed
	}
	switch field {
	case FieldName:
		f.fields.Name = value
	case FieldNumber:
		f.fields.Number = value
	case FieldLink:
		f.fields.Link = value
	case FieldDivision:
		v, err := model.ParseDivision(value)
		if err != nil {
			return err
		}
		f.fields.Division = v
	case FieldCategory:
		v, err := model.ParseCategory(value)
		if err != nil {
			return err
		}
		f.fields.Category = v
	case FieldStatus:
		v, err := model.ParseStatus(value)
		if err != nil {
			return err
		}
		f.fields.Status = v
	default:
		return fmt.Errorf("%w: %q", model.ErrUnknownField, field)
	}
	return nil
}

// SetAll applies values in display order. Either every value is applied or,
// on the first rejected one, the form is left as it was.
func (f *Form) SetAll(values map[Field]string) error {
	for field := range values {
		if _, err := ParseField(string(field)); err != nil {
			return err
		}
	}
	saved := f.fields
	for _, field := range Fields() {
		v, ok := values[field]
		if !ok {
			continue
		}
		if err := f.Set(field, v); err != nil {
			f.fields = saved
			return err
		}
	}
	return nil
}

// Validate applies the input constraints: name, number and link are required and
// link must be an absolute URL.
func (f *Form) Validate() error {
	var bad []Field
	if strings.TrimSpace(f.fields.Name) == "" {
		bad = append(bad, FieldName)
	}
	if strings.TrimSpace(f.fields.Number) == "" {
		bad = append(bad, FieldNumber)
	}
	if !wellFormedURL(f.fields.Link) {
		bad = append(bad, FieldLink)
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

// Submit advances the workflow. The first valid submit only enters review;
// the second hands the payload to c exactly once and commits.
func (f *Form) Submit(ctx context.Context, c Committer) (Outcome, error) {
	if !f.state.Open() {
		return Outcome{State: f.state}, ErrClosed
	}
	if err := f.Validate(); err != nil {
		return Outcome{State: f.state}, err
	}

	if f.state == StateEditing {
		f.state = StatePendingConfirmation
		return Outcome{State: f.state, Warning: ReviewWarning}, nil
	}

	var out Outcome
	switch f.mode {
	case ModeAdd:
		doc, err := c.Add(ctx, f.fields)
		if err != nil {
			return Outcome{State: f.state}, err
		}
		out.Document = &doc
	case ModeEdit:
		doc, ok, err := c.Update(ctx, f.target.ID, f.fields)
		if err != nil {
			return Outcome{State: f.state}, err
		}
		if ok {
			out.Document = &doc
		}
	}
	f.state = StateCommitted
	out.State = f.state
	return out, nil
}

// Cancel discards pending edits. Cancelling a closed form does nothing.
func (f *Form) Cancel() {
	if f.state.Open() {
		f.state = StateCancelled
	}
}

func wellFormedURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}
