package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Card is one flashcard: a titled outline filed under a subject.
// Subject is a free-text label; nothing ties it to the subject list.
type Card struct {
	ID        string  `json:"id"`
	Subject   string  `json:"subject"`
	Title     string  `json:"title"`
	Points    []Point `json:"points"`
	CreatedAt int64   `json:"createdAt"` // unix millis
}

// Point is a main bullet of a card.
type Point struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Subs []Sub  `json:"subs"`
}

// Sub is a bullet nested under a Point.
type Sub struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Details []Detail `json:"details"`
}

// Detail is a labeled line under a Sub. Both fields may be empty.
type Detail struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Values string `json:"values"`
}

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrSubjectRequired = errors.New("subject is required")
)

// NewID returns a fresh opaque id.
func NewID() string { return uuid.NewString() }

func NewCard() Card {
	return Card{
		ID:        NewID(),
		Points:    []Point{},
		CreatedAt: time.Now().UnixMilli(),
	}
}

func NewPoint() Point   { return Point{ID: NewID(), Subs: []Sub{}} }
func NewSub() Sub       { return Sub{ID: NewID(), Details: []Detail{}} }
func NewDetail() Detail { return Detail{ID: NewID()} }

// Validate reports why a card may not be saved, or nil.
func (c Card) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrTitleRequired
	}
	if c.Subject == "" {
		return ErrSubjectRequired
	}
	return nil
}

// CanSave is Validate as a predicate, for disabling save actions.
func (c Card) CanSave() bool { return c.Validate() == nil }

// Clone returns a deep copy; edits to the copy never reach c.
func (c Card) Clone() Card {
	out := c
	out.Points = make([]Point, len(c.Points))
	for i, p := range c.Points {
		out.Points[i] = p.clone()
	}
	return out
}

func (p Point) clone() Point {
	out := p
	out.Subs = make([]Sub, len(p.Subs))
	for i, s := range p.Subs {
		out.Subs[i] = s.clone()
	}
	return out
}

func (s Sub) clone() Sub {
	out := s
	out.Details = make([]Detail, len(s.Details))
	copy(out.Details, s.Details)
	return out
}

// Line renders the detail as shown on a card: "label: values", either part
// alone, or "" when both are empty.
func (d Detail) Line() string {
	switch {
	case d.Label != "" && d.Values != "":
		return d.Label + ": " + d.Values
	case d.Label != "":
		return d.Label
	default:
		return d.Values
	}
}

// Empty reports whether the detail renders to nothing.
func (d Detail) Empty() bool { return d.Label == "" && d.Values == "" }

// HasContent reports whether a draft has anything worth previewing.
func (c Card) HasContent() bool {
	if c.Title != "" {
		return true
	}
	for _, p := range c.Points {
		if p.Text != "" {
			return true
		}
	}
	return false
}
