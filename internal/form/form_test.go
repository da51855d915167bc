package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docdash/internal/model"
	storeMocks "docdash/internal/service/mocks"
)

func filledAdd(t *testing.T) *Form {
	t.Helper()
	f := NewAdd()
	require.NoError(t, f.Set(FieldName, "Expense Policy"))
	require.NoError(t, f.Set(FieldNumber, "FIN-POL-002"))
	require.NoError(t, f.Set(FieldLink, "https://docs.google.com/document/d/abc"))
	return f
}

func TestNewAddDefaults(t *testing.T) {
	f := NewAdd()
	assert.Equal(t, ModeAdd, f.Mode())
	assert.Equal(t, StateEditing, f.State())
	assert.Equal(t, "Human Resources", f.Get(FieldDivision))
	assert.Equal(t, "Policy", f.Get(FieldCategory))
	assert.Equal(t, "Draft", f.Get(FieldStatus))
	assert.Equal(t, "", f.Get(FieldName))
	assert.Equal(t, "Upload New Document", f.Title())
	_, ok := f.Target()
	assert.False(t, ok)
}

func TestNewEditPrefills(t *testing.T) {
	doc := model.Document{ID: "doc-9", Name: "Runbook", Number: "IT-9", Division: model.DivisionIT,
		Category: model.CategoryManual, Status: model.StatusApproved, Link: "https://x.io/r"}
	f := NewEdit(doc)
	assert.Equal(t, ModeEdit, f.Mode())
	assert.Equal(t, "Edit Document", f.Title())
	assert.Equal(t, "Runbook", f.Get(FieldName))
	assert.Equal(t, "Approved", f.Get(FieldStatus))
	target, ok := f.Target()
	require.True(t, ok)
	assert.Equal(t, "doc-9", target.ID)
}

func TestSet(t *testing.T) {
	f := NewAdd()
	require.NoError(t, f.Set(FieldStatus, "in review"))
	assert.Equal(t, "In Review", f.Get(FieldStatus))
	require.NoError(t, f.Set(FieldDivision, "Operations"))
	require.NoError(t, f.Set(FieldCategory, "invoice"))

	assert.ErrorIs(t, f.Set(FieldStatus, "Published"), model.ErrInvalidEnum)
	assert.Equal(t, "In Review", f.Get(FieldStatus))
	assert.ErrorIs(t, f.Set(Field("owner"), "me"), model.ErrUnknownField)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(f *Form)
		bad  []Field
	}{
		{name: "all missing", edit: func(f *Form) {}, bad: []Field{FieldName, FieldNumber, FieldLink}},
		{name: "blank name", edit: func(f *Form) {
			_ = f.Set(FieldName, "   ")
			_ = f.Set(FieldNumber, "N")
			_ = f.Set(FieldLink, "https://a.b")
		}, bad: []Field{FieldName}},
		{name: "relative link", edit: func(f *Form) {
			_ = f.Set(FieldName, "A")
			_ = f.Set(FieldNumber, "N")
			_ = f.Set(FieldLink, "docs/file")
		}, bad: []Field{FieldLink}},
		{name: "valid", edit: func(f *Form) {
			_ = f.Set(FieldName, "A")
			_ = f.Set(FieldNumber, "N")
			_ = f.Set(FieldLink, "ftp://files.example.com/a")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewAdd()
			tt.edit(f)
			err := f.Validate()
			if tt.bad == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.bad, verr.Fields)
		})
	}
}

func TestSubmitAddTwoStep(t *testing.T) {
	ctx := context.Background()
	store := new(storeMocks.MockDocumentStore)
	f := filledAdd(t)

	out, err := f.Submit(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, StatePendingConfirmation, out.State)
	assert.Equal(t, ReviewWarning, out.Warning)
	assert.Nil(t, out.Document)
	assert.True(t, f.Reviewing())
	assert.Equal(t, "Confirm & Save", f.SubmitLabel())
	store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)

	require.NoError(t, f.Set(FieldStatus, "Approved"))
	assert.True(t, f.Reviewing(), "editing during review keeps review")

	want := f.Input()
	stored := model.Document{ID: "new", Name: want.Name, CreatedAt: time.Now()}
	store.On("Add", ctx, want).Return(stored, nil).Once()

	out, err = f.Submit(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, StateCommitted, out.State)
	require.NotNil(t, out.Document)
	assert.Equal(t, "new", out.Document.ID)
	store.AssertNumberOfCalls(t, "Add", 1)

	_, err = f.Submit(ctx, store)
	assert.ErrorIs(t, err, ErrClosed)
	store.AssertNumberOfCalls(t, "Add", 1)
}

func TestSubmitEdit(t *testing.T) {
	ctx := context.Background()
	store := new(storeMocks.MockDocumentStore)
	doc := model.Document{ID: "doc-2", Name: "Old", Number: "N-2", Division: model.DivisionFinance,
		Category: model.CategoryReport, Status: model.StatusDraft, Link: "https://x.io/2"}
	f := NewEdit(doc)
	require.NoError(t, f.Set(FieldName, "New"))

	_, err := f.Submit(ctx, store)
	require.NoError(t, err)

	updated := doc
	updated.Name = "New"
	store.On("Update", ctx, "doc-2", f.Input()).Return(updated, true, nil).Once()
	out, err := f.Submit(ctx, store)
	require.NoError(t, err)
	require.NotNil(t, out.Document)
	assert.Equal(t, "New", out.Document.Name)
	store.AssertExpectations(t)
}

func TestSubmitEditVanishedTarget(t *testing.T) {
	ctx := context.Background()
	store := new(storeMocks.MockDocumentStore)
	f := NewEdit(model.Document{ID: "gone", Name: "A", Number: "B", Link: "https://a.b",
		Division: model.DivisionHR, Category: model.CategoryPolicy, Status: model.StatusDraft})

	_, err := f.Submit(ctx, store)
	require.NoError(t, err)
	store.On("Update", ctx, "gone", mock.Anything).Return(model.Document{}, false, nil).Once()

	out, err := f.Submit(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, StateCommitted, out.State)
	assert.Nil(t, out.Document)
}

func TestSubmitInvalidDoesNotTransition(t *testing.T) {
	ctx := context.Background()
	store := new(storeMocks.MockDocumentStore)
	f := NewAdd()

	_, err := f.Submit(ctx, store)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StateEditing, f.State())

	f = filledAdd(t)
	_, err = f.Submit(ctx, store)
	require.NoError(t, err)
	require.NoError(t, f.Set(FieldLink, ""))
	_, err = f.Submit(ctx, store)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StatePendingConfirmation, f.State())
	store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSubmitStoreErrorKeepsReview(t *testing.T) {
	ctx := context.Background()
	store := new(storeMocks.MockDocumentStore)
	f := filledAdd(t)
	_, err := f.Submit(ctx, store)
	require.NoError(t, err)

	store.On("Add", ctx, mock.Anything).Return(model.Document{}, errors.New("boom")).Once()
	_, err = f.Submit(ctx, store)
	assert.EqualError(t, err, "boom")
	assert.Equal(t, StatePendingConfirmation, f.State())
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	store := new(storeMocks.MockDocumentStore)

	f := filledAdd(t)
	f.Cancel()
	assert.Equal(t, StateCancelled, f.State())
	_, err := f.Submit(ctx, store)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, f.Set(FieldName, "x"), ErrClosed)

	f = filledAdd(t)
	_, err = f.Submit(ctx, store)
	require.NoError(t, err)
	f.Cancel()
	assert.Equal(t, StateCancelled, f.State())
	store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestParseField(t *testing.T) {
	f, err := ParseField(" Link ")
	require.NoError(t, err)
	assert.Equal(t, FieldLink, f)
	_, err = ParseField("id")
	assert.ErrorIs(t, err, model.ErrUnknownField)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending_confirmation", StatePendingConfirmation.String())
	assert.True(t, StateEditing.Open())
	assert.False(t, StateCommitted.Open())
}

func TestSetAllIsAtomic(t *testing.T) {
	f := NewAdd()
	require.NoError(t, f.Set(FieldName, "Original"))

	err := f.SetAll(map[Field]string{FieldName: "Half Applied", FieldDivision: "Bogus"})
	assert.ErrorIs(t, err, model.ErrInvalidEnum)
	assert.Equal(t, "Original", f.Get(FieldName))
	assert.Equal(t, "Human Resources", f.Get(FieldDivision))

	err = f.SetAll(map[Field]string{FieldName: "Half Applied", Field("owner"): "me"})
	assert.ErrorIs(t, err, model.ErrUnknownField)
	assert.Equal(t, "Original", f.Get(FieldName))

	require.NoError(t, f.SetAll(map[Field]string{FieldName: "Renamed", FieldStatus: "approved"}))
	assert.Equal(t, "Renamed", f.Get(FieldName))
	assert.Equal(t, "Approved", f.Get(FieldStatus))
}
