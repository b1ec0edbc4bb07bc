package model

import "strings"

// DefaultSubjects seeds the subject list of an empty store.
var DefaultSubjects = []string{"Anästhesiologie", "Pflegewissenschaft", "Pharmakologie", "Anatomie"}

func AddCard(cards []Card, c Card) []Card {
	out := make([]Card, len(cards), len(cards)+1)
	copy(out, cards)
	return append(out, c)
}

// ReplaceCard swaps the card with c.ID in place. Unknown ids are a no-op.
func ReplaceCard(cards []Card, c Card) []Card {
	return mapByID(cards, func(x Card) bool { return x.ID == c.ID }, func(Card) Card { return c })
}

func RemoveCard(cards []Card, id string) []Card {
	return filter(cards, func(c Card) bool { return c.ID != id })
}

// SaveCard commits a draft: replace in place when its id is known, append
// otherwise. It does not validate; see Card.Validate.
func SaveCard(cards []Card, draft Card) []Card {
	if IndexOfCard(cards, draft.ID) >= 0 {
		return ReplaceCard(cards, draft)
	}
	return AddCard(cards, draft)
}

func IndexOfCard(cards []Card, id string) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// BySubject returns the cards filed under subject, in list order.
// An empty subject means no filter.
func BySubject(cards []Card, subject string) []Card {
	if subject == "" {
		return cards
	}
	return filter(cards, func(c Card) bool { return c.Subject == subject })
}

// AddSubject appends name (trimmed) unless it is empty or already present.
// The bool reports whether the list changed.
func AddSubject(subjects []string, name string) ([]string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || HasSubject(subjects, name) {
		return subjects, false
	}
	out := make([]string, len(subjects), len(subjects)+1)
	copy(out, subjects)
	return append(out, name), true
}

func HasSubject(subjects []string, name string) bool {
	for _, s := range subjects {
		if s == name {
			return true
		}
	}
	return false
}

// OrphanSubjects lists subjects used by cards but missing from the subject
// list, in first-seen order.
func OrphanSubjects(cards []Card, subjects []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, c := range cards {
		if c.Subject == "" || seen[c.Subject] || HasSubject(subjects, c.Subject) {
			continue
		}
		seen[c.Subject] = true
		out = append(out, c.Subject)
	}
	return out
}
