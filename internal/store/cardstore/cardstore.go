// Package cardstore persists the card document as two blobs in a kv.Store.
package cardstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/idilsaglam/studycards/internal/logger"
	"github.com/idilsaglam/studycards/internal/model"
	"github.com/idilsaglam/studycards/internal/store/kv"
)

const (
	CardsKey    = "studycards-v1"
	SubjectsKey = "studycards-subjects-v1"
)

// Document is everything the app persists.
type Document struct {
	Cards    []model.Card
	Subjects []string
}

type Adapter struct {
	kv  kv.Store
	log *logger.Logger
}

func New(store kv.Store, log *logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{kv: store, log: log.With("component", "cardstore")}
}

// Load never fails: each key falls back on its own to no cards or the
// default subjects when it is absent or unreadable.
func (a *Adapter) Load(ctx context.Context) Document {
	doc := Document{Cards: []model.Card{}, Subjects: append([]string(nil), model.DefaultSubjects...)}

	if b, ok := a.get(ctx, CardsKey); ok {
		cards, err := decodeCards(b)
		if err != nil {
			a.log.Warn("cards blob unreadable, starting empty", "error", err)
		} else {
			doc.Cards = cards
		}
	}
	if b, ok := a.get(ctx, SubjectsKey); ok {
		subjects, err := decodeSubjects(b)
		if err != nil {
			a.log.Warn("subjects blob unreadable, using defaults", "error", err)
		} else {
			doc.Subjects = subjects
		}
	}
	a.log.Debug("loaded", "cards", len(doc.Cards), "subjects", len(doc.Subjects))
	return doc
}

func (a *Adapter) get(ctx context.Context, key string) ([]byte, bool) {
	b, err := a.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			a.log.Warn("read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return b, true
}

func (a *Adapter) SaveCards(ctx context.Context, cards []model.Card) error {
	if cards == nil {
		cards = []model.Card{}
	}
	return a.put(ctx, CardsKey, cards)
}

func (a *Adapter) SaveSubjects(ctx context.Context, subjects []string) error {
	if subjects == nil {
		subjects = []string{}
	}
	return a.put(ctx, SubjectsKey, subjects)
}

func (a *Adapter) put(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal %s: %w", key, err)
	}
	if err := a.kv.Set(ctx, key, b); err != nil {
		a.log.Error("write failed", "key", key, "error", err)
		return fmt.Errorf("save %s: %w", key, err)
	}
	a.log.Debug("saved", "key", key, "bytes", len(b))
	return nil
}
