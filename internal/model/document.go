package model

import "time"

// DateLayout is the wire format of a Document creation date.
const DateLayout = "2006-01-02"

// Document is the metadata record of an externally hosted file.
// The file content itself is never held; Link only points at it.
type Document struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Number    string    `json:"number" yaml:"number"`
	Division  Division  `json:"division" yaml:"division"`
	Category  Category  `json:"category" yaml:"category"`
	Status    Status    `json:"status" yaml:"status"`
	Link      string    `json:"link" yaml:"link"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// DocumentInput is the editable part of a Document.
// CreatedAt is only honoured on creation; a zero value means "today".
type DocumentInput struct {
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	Division  Division  `json:"division"`
	Category  Category  `json:"category"`
	Status    Status    `json:"status"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Input returns the editable fields of d.
func (d Document) Input() DocumentInput {
	return DocumentInput{
		Name:      d.Name,
		Number:    d.Number,
		Division:  d.Division,
		Category:  d.Category,
		Status:    d.Status,
		Link:      d.Link,
		CreatedAt: d.CreatedAt,
	}
}

// Apply copies the editable fields of in onto d. ID and CreatedAt are left alone.
func (d Document) Apply(in DocumentInput) Document {
	d.Name = in.Name
	d.Number = in.Number
	d.Division = in.Division
	d.Category = in.Category
	d.Status = in.Status
	d.Link = in.Link
	return d
}

// CreatedDate formats CreatedAt as a plain date stamp.
func (d Document) CreatedDate() string {
	if d.CreatedAt.IsZero() {
		return ""
	}
	return d.CreatedAt.Format(DateLayout)
}

// Today truncates t to midnight UTC.
func Today(t time.Time) time.Time {
	y, m, day := t.UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
