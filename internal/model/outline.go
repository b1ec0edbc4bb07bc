package model

// Outline edits on a card draft. Every function returns a new Card and leaves
// the argument's slices untouched, so a draft can be discarded at any point.
// Unknown ids are no-ops.

// DetailField selects which half of a Detail UpdateDetail writes.
type DetailField int

const (
	DetailLabel DetailField = iota
	DetailValues
)

func SetTitle(c Card, title string) Card {
	c.Title = title
	return c
}

func SetSubject(c Card, subject string) Card {
	c.Subject = subject
	return c
}

func AddPoint(c Card) Card {
	pts := make([]Point, len(c.Points), len(c.Points)+1)
	copy(pts, c.Points)
	c.Points = append(pts, NewPoint())
	return c
}

func RemovePoint(c Card, pointID string) Card {
	c.Points = filter(c.Points, func(p Point) bool { return p.ID != pointID })
	return c
}

func UpdatePointText(c Card, pointID, text string) Card {
	return mapPoint(c, pointID, func(p Point) Point {
		p.Text = text
		return p
	})
}

func AddSub(c Card, pointID string) Card {
	return mapPoint(c, pointID, func(p Point) Point {
		subs := make([]Sub, len(p.Subs), len(p.Subs)+1)
		copy(subs, p.Subs)
		p.Subs = append(subs, NewSub())
		return p
	})
}

func RemoveSub(c Card, pointID, subID string) Card {
	return mapPoint(c, pointID, func(p Point) Point {
		p.Subs = filter(p.Subs, func(s Sub) bool { return s.ID != subID })
		return p
	})
}

func UpdateSubText(c Card, pointID, subID, text string) Card {
	return mapSub(c, pointID, subID, func(s Sub) Sub {
		s.Text = text
		return s
	})
}

func AddDetail(c Card, pointID, subID string) Card {
	return mapSub(c, pointID, subID, func(s Sub) Sub {
		ds := make([]Detail, len(s.Details), len(s.Details)+1)
		copy(ds, s.Details)
		s.Details = append(ds, NewDetail())
		return s
	})
}

func RemoveDetail(c Card, pointID, subID, detailID string) Card {
	return mapSub(c, pointID, subID, func(s Sub) Sub {
		s.Details = filter(s.Details, func(d Detail) bool { return d.ID != detailID })
		return s
	})
}

func UpdateDetail(c Card, pointID, subID, detailID string, field DetailField, val string) Card {
	return mapSub(c, pointID, subID, func(s Sub) Sub {
		s.Details = mapByID(s.Details, func(d Detail) bool { return d.ID == detailID }, func(d Detail) Detail {
			if field == DetailLabel {
				d.Label = val
			} else {
				d.Values = val
			}
			return d
		})
		return s
	})
}

func mapPoint(c Card, pointID string, fn func(Point) Point) Card {
	c.Points = mapByID(c.Points, func(p Point) bool { return p.ID == pointID }, fn)
	return c
}

func mapSub(c Card, pointID, subID string, fn func(Sub) Sub) Card {
	return mapPoint(c, pointID, func(p Point) Point {
		p.Subs = mapByID(p.Subs, func(s Sub) bool { return s.ID == subID }, fn)
		return p
	})
}

func mapByID[T any](in []T, match func(T) bool, fn func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		if match(v) {
			v = fn(v)
		}
		out[i] = v
	}
	return out
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
