// Package nav holds the screen state of the app: which view is showing, the
// active subject, the browse position and the card draft being edited. It is
// the single owner of the in-memory document and persists every change.
package nav

import (
	"context"
	"errors"
	"fmt"

	"github.com/idilsaglam/studycards/internal/model"
	"github.com/idilsaglam/studycards/internal/store/cardstore"
)

type View int

const (
	ViewHome View = iota
	ViewBrowse
	ViewCreate
	ViewEdit
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewBrowse:
		return "browse"
	case ViewCreate:
		return "create"
	case ViewEdit:
		return "edit"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

var (
	ErrNoCard       = errors.New("no card at the browse position")
	ErrNoDraft      = errors.New("no card is being edited")
	ErrInvalidDraft = errors.New("card cannot be saved")
)

// Persister is the part of the storage adapter the controller writes through.
type Persister interface {
	SaveCards(ctx context.Context, cards []model.Card) error
	SaveSubjects(ctx context.Context, subjects []string) error
}

type Controller struct {
	ctx   context.Context // for store calls; the controller lives as long as one command or TUI session
	store Persister

	cards    []model.Card
	subjects []string

	view    View
	subject string // "" means no filter
	index   int
	draft   *model.Card
}

// New takes ownership of doc.
func New(ctx context.Context, doc cardstore.Document, store Persister) *Controller {
	if doc.Cards == nil {
		doc.Cards = []model.Card{}
	}
	return &Controller{
		ctx:      ctx,
		store:    store,
		cards:    doc.Cards,
		subjects: doc.Subjects,
		view:     ViewHome,
	}
}

func (c *Controller) View() View            { return c.view }
func (c *Controller) ActiveSubject() string { return c.subject }
func (c *Controller) Index() int            { return c.index }
func (c *Controller) Cards() []model.Card   { return c.cards }
func (c *Controller) Subjects() []string    { return c.subjects }

// SubjectCount is the number of cards filed under s.
func (c *Controller) SubjectCount(s string) int { return len(model.BySubject(c.cards, s)) }

// Browsable is recomputed on every call: the active subject's cards, or all
// cards when no subject is active.
func (c *Controller) Browsable() []model.Card {
	return model.BySubject(c.cards, c.subject)
}

// Current is the card at the browse position.
func (c *Controller) Current() (model.Card, bool) {
	list := c.Browsable()
	if c.index < 0 || c.index >= len(list) {
		return model.Card{}, false
	}
	return list[c.index], true
}

// OpenSubject goes to the browse view of subject, starting at its first card.
func (c *Controller) OpenSubject(subject string) {
	c.subject = subject
	c.index = 0
	c.draft = nil
	c.view = ViewBrowse
}

// OpenAll browses every card regardless of subject.
func (c *Controller) OpenAll() { c.OpenSubject("") }

// Home leaves browse and clears the filter.
func (c *Controller) Home() {
	c.subject = ""
	c.index = 0
	c.draft = nil
	c.view = ViewHome
}

// Back mirrors the header back button: editor → browse (or home), browse → home.
func (c *Controller) Back() {
	switch c.view {
	case ViewCreate, ViewEdit:
		c.CancelDraft()
	case ViewBrowse:
		c.Home()
	}
}

// Next and Prev move within the browsable list; past either end they do
// nothing and report false.
func (c *Controller) Next() bool { return c.Jump(c.index + 1) }
func (c *Controller) Prev() bool { return c.Jump(c.index - 1) }

func (c *Controller) Jump(i int) bool {
	if i < 0 || i >= len(c.Browsable()) {
		return false
	}
	c.index = i
	return true
}

func (c *Controller) CanNext() bool { return c.index < len(c.Browsable())-1 }
func (c *Controller) CanPrev() bool { return c.index > 0 }

// StartCreate opens the editor on a fresh card filed under subject, or under
// the active subject when subject is "".
func (c *Controller) StartCreate(subject string) {
	d := model.NewCard()
	if subject == "" {
		subject = c.subject
	}
	d.Subject = subject
	c.draft = &d
	c.view = ViewCreate
}

// StartEdit opens the editor on a deep copy of the current card.
func (c *Controller) StartEdit() error {
	cur, ok := c.Current()
	if !ok {
		return ErrNoCard
	}
	d := cur.Clone()
	c.draft = &d
	c.view = ViewEdit
	return nil
}

// Draft returns a copy of the card being edited.
func (c *Controller) Draft() (model.Card, bool) {
	if c.draft == nil {
		return model.Card{}, false
	}
	return *c.draft, true
}

// EditDraft replaces the draft with fn(draft). fn is one of the pure
// mutations in package model.
func (c *Controller) EditDraft(fn func(model.Card) model.Card) error {
	if c.draft == nil {
		return ErrNoDraft
	}
	d := fn(*c.draft)
	c.draft = &d
	return nil
}

func (c *Controller) CanSaveDraft() bool {
	return c.draft != nil && c.draft.CanSave()
}

// SaveDraft commits the draft: it replaces the card with the same id or is
// appended. The in-memory document is updated even when persisting fails;
// the write error is returned so the caller can show it.
func (c *Controller) SaveDraft() error {
	if c.draft == nil {
		return ErrNoDraft
	}
	if err := c.draft.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}
	c.cards = model.SaveCard(c.cards, *c.draft)
	c.leaveEditor()
	return c.store.SaveCards(c.ctx, c.cards)
}

// CancelDraft discards the draft.
func (c *Controller) CancelDraft() {
	if c.view == ViewCreate || c.view == ViewEdit {
		c.leaveEditor()
	}
}

func (c *Controller) leaveEditor() {
	c.draft = nil
	if c.subject != "" {
		c.view = ViewBrowse
	} else {
		c.view = ViewHome
	}
	c.clamp()
}

// DeleteCurrent removes the card at the browse position. Confirmation is the
// caller's job. The position is clamped to the shrunken list, never below 0.
func (c *Controller) DeleteCurrent() error {
	cur, ok := c.Current()
	if !ok {
		return ErrNoCard
	}
	return c.DeleteCard(cur.ID)
}

// DeleteCard removes a card by id from anywhere in the list.
func (c *Controller) DeleteCard(id string) error {
	if model.IndexOfCard(c.cards, id) < 0 {
		return ErrNoCard
	}
	c.cards = model.RemoveCard(c.cards, id)
	c.clamp()
	return c.store.SaveCards(c.ctx, c.cards)
}

func (c *Controller) clamp() {
	last := len(c.Browsable()) - 1
	if c.index > last {
		c.index = last
	}
	if c.index < 0 {
		c.index = 0
	}
}

// AddSubject appends a subject. Empty or duplicate names are a silent no-op
// (false, nil).
func (c *Controller) AddSubject(name string) (bool, error) {
	next, changed := model.AddSubject(c.subjects, name)
	if !changed {
		return false, nil
	}
	c.subjects = next
	return true, c.store.SaveSubjects(c.ctx, c.subjects)
}
