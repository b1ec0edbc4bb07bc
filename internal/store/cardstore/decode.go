package cardstore

import (
	"encoding/json"
	"fmt"

	"github.com/idilsaglam/studycards/internal/model"
)

// Persisted data is decoded field by field: the top level must be an array,
// anything below that is repaired rather than rejected. Non-object entries
// are dropped, wrongly typed strings become "", missing ids are stamped,
// ids repeated within one collection are re-stamped, missing sequences
// become empty.

type object map[string]json.RawMessage

func decodeCards(b []byte) ([]model.Card, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	cards := make([]model.Card, 0, len(raw))
	cardIDs := ids{}
	for _, r := range raw {
		o, ok := asObject(r)
		if !ok {
			continue
		}
		c := model.Card{
			ID:        cardIDs.take(o.str("id")),
			Subject:   o.str("subject"),
			Title:     o.str("title"),
			CreatedAt: o.int("createdAt"),
			Points:    []model.Point{},
		}
		pointIDs := ids{}
		for _, po := range o.objects("points") {
			p := model.Point{ID: pointIDs.take(po.str("id")), Text: po.str("text"), Subs: []model.Sub{}}
			subIDs := ids{}
			for _, so := range po.objects("subs") {
				s := model.Sub{ID: subIDs.take(so.str("id")), Text: so.str("text"), Details: []model.Detail{}}
				detailIDs := ids{}
				for _, do := range so.objects("details") {
					s.Details = append(s.Details, model.Detail{
						ID:     detailIDs.take(do.str("id")),
						Label:  do.str("label"),
						Values: do.str("values"),
					})
				}
				p.Subs = append(p.Subs, s)
			}
			c.Points = append(c.Points, p)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func decodeSubjects(b []byte) ([]string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	subjects := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		// stored names are kept verbatim; cards refer to them by exact match
		if json.Unmarshal(r, &s) != nil || s == "" || model.HasSubject(subjects, s) {
			continue
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

func asObject(r json.RawMessage) (object, bool) {
	var o object
	if err := json.Unmarshal(r, &o); err != nil || o == nil {
		return nil, false
	}
	return o, true
}

func (o object) str(key string) string {
	var s string
	if v, ok := o[key]; ok && json.Unmarshal(v, &s) == nil {
		return s
	}
	return ""
}

// ids hands out the ids of one collection, stamping a fresh one when the
// stored id is missing or already taken.
type ids map[string]bool

func (seen ids) take(id string) string {
	for id == "" || seen[id] {
		id = model.NewID()
	}
	seen[id] = true
	return id
}

func (o object) int(key string) int64 {
	var f float64
	if v, ok := o[key]; ok && json.Unmarshal(v, &f) == nil {
		return int64(f)
	}
	return 0
}

func (o object) objects(key string) []object {
	var raw []json.RawMessage
	if v, ok := o[key]; !ok || json.Unmarshal(v, &raw) != nil {
		return nil
	}
	out := make([]object, 0, len(raw))
	for _, r := range raw {
		if oo, ok := asObject(r); ok {
			out = append(out, oo)
		}
	}
	return out
}
