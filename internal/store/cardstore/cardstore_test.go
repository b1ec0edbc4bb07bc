package cardstore

import (
	"context"
	"errors"
	"testing"

	"github.com/idilsaglam/studycards/internal/model"
	"github.com/idilsaglam/studycards/internal/store/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingKV struct {
	kv.Store
	setErr error
	getErr error
}

func (f failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Store.Get(ctx, key)
}

func (f failingKV) Set(ctx context.Context, key string, v []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, v)
}

func newAdapter(t *testing.T) (*Adapter, kv.Store) {
	t.Helper()
	s, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return New(s, nil), s
}

func sampleCard() model.Card {
	c := model.NewCard()
	c.Title = "Atemwege I"
	c.Subject = "Anatomie"
	c = model.AddPoint(c)
	pid := c.Points[0].ID
	c = model.UpdatePointText(c, pid, "Larynx")
	c = model.AddSub(c, pid)
	sid := c.Points[0].Subs[0].ID
	c = model.UpdateSubText(c, pid, sid, "Innervation")
	c = model.AddDetail(c, pid, sid)
	did := c.Points[0].Subs[0].Details[0].ID
	c = model.UpdateDetail(c, pid, sid, did, model.DetailLabel, "N. Vagus")
	return model.UpdateDetail(c, pid, sid, did, model.DetailValues, "sensorisch; motorisch")
}

func TestLoad_EmptyStoreGivesDefaults(t *testing.T) {
	a, _ := newAdapter(t)
	doc := a.Load(context.Background())
	assert.Empty(t, doc.Cards)
	assert.NotNil(t, doc.Cards)
	assert.Equal(t, []string{"Anästhesiologie", "Pflegewissenschaft", "Pharmakologie", "Anatomie"}, doc.Subjects)

	// the defaults are a copy
	doc.Subjects[0] = "changed"
	assert.Equal(t, "Anästhesiologie", model.DefaultSubjects[0])
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	a, _ := newAdapter(t)
	cards := []model.Card{sampleCard(), model.NewCard()}
	subjects := []string{"Anatomie", "Neu"}

	require.NoError(t, a.SaveCards(ctx, cards))
	require.NoError(t, a.SaveSubjects(ctx, subjects))

	doc := a.Load(ctx)
	assert.Equal(t, cards, doc.Cards)
	assert.Equal(t, subjects, doc.Subjects)
}

func TestLoad_CorruptBlobsFallBackPerKey(t *testing.T) {
	ctx := context.Background()
	a, s := newAdapter(t)
	require.NoError(t, s.Set(ctx, CardsKey, []byte(`{not json`)))
	require.NoError(t, s.Set(ctx, SubjectsKey, []byte(`["Anatomie"]`)))

	doc := a.Load(ctx)
	assert.Empty(t, doc.Cards)
	assert.Equal(t, []string{"Anatomie"}, doc.Subjects)

	require.NoError(t, s.Set(ctx, CardsKey, []byte(`[]`)))
	require.NoError(t, s.Set(ctx, SubjectsKey, []byte(`42`)))
	doc = a.Load(ctx)
	assert.Equal(t, model.DefaultSubjects, doc.Subjects)
}

func TestLoad_RepairsFieldByField(t *testing.T) {
	ctx := context.Background()
	a, s := newAdapter(t)
	blob := `[
		7,
		null,
		{"id":"c1","subject":"Anatomie","title":12,"createdAt":1700000000000,
		 "points":[{"id":"p1","text":"Larynx","subs":[{"id":"s1","text":"Innervation"}]}, "junk"]},
		{"title":"no id"}
	]`
	require.NoError(t, s.Set(ctx, CardsKey, []byte(blob)))
	require.NoError(t, s.Set(ctx, SubjectsKey, []byte(`["Anatomie", 3, "", "Anatomie", " Anatomie", "Pharmakologie"]`)))

	doc := a.Load(ctx)
	require.Len(t, doc.Cards, 2)

	c := doc.Cards[0]
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "", c.Title)
	assert.Equal(t, int64(1700000000000), c.CreatedAt)
	require.Len(t, c.Points, 1)
	require.Len(t, c.Points[0].Subs, 1)
	assert.Equal(t, "Innervation", c.Points[0].Subs[0].Text)
	assert.NotNil(t, c.Points[0].Subs[0].Details)

	assert.NotEmpty(t, doc.Cards[1].ID)
	assert.Equal(t, "no id", doc.Cards[1].Title)
	assert.NotNil(t, doc.Cards[1].Points)

	// names are not trimmed, or cards filed under " Anatomie" would be orphaned
	assert.Equal(t, []string{"Anatomie", " Anatomie", "Pharmakologie"}, doc.Subjects)
}

func TestLoad_RestampsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	a, s := newAdapter(t)
	blob := `[
		{"id":"x","subject":"A","title":"one","points":[
			{"id":"p","text":"first","subs":[
				{"id":"s","details":[{"id":"d","label":"a"},{"id":"d","label":"b"}]},
				{"id":"s"}]},
			{"id":"p","text":"second"}]},
		{"id":"x","subject":"A","title":"two","points":[{"id":"p","text":"other card"}]}
	]`
	require.NoError(t, s.Set(ctx, CardsKey, []byte(blob)))

	doc := a.Load(ctx)
	require.Len(t, doc.Cards, 2)
	one, two := doc.Cards[0], doc.Cards[1]
	assert.Equal(t, "x", one.ID)
	assert.NotEqual(t, "x", two.ID)
	assert.NotEmpty(t, two.ID)

	require.Len(t, one.Points, 2)
	assert.Equal(t, "p", one.Points[0].ID)
	assert.NotEqual(t, "p", one.Points[1].ID)
	subs := one.Points[0].Subs
	require.Len(t, subs, 2)
	assert.NotEqual(t, subs[0].ID, subs[1].ID)
	details := subs[0].Details
	require.Len(t, details, 2)
	assert.NotEqual(t, details[0].ID, details[1].ID)

	// uniqueness is per collection: another card may reuse a point id
	assert.Equal(t, "p", two.Points[0].ID)

	// removing one card leaves the other in place
	left := model.RemoveCard(doc.Cards, one.ID)
	require.Len(t, left, 1)
	assert.Equal(t, "two", left[0].Title)
}

func TestLoad_ReadErrorFallsBack(t *testing.T) {
	s, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)
	a := New(failingKV{Store: s, getErr: errors.New("disk gone")}, nil)

	doc := a.Load(context.Background())
	assert.Empty(t, doc.Cards)
	assert.Equal(t, model.DefaultSubjects, doc.Subjects)
}

func TestSave_SurfacesWriteErrors(t *testing.T) {
	s, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)
	boom := errors.New("quota exceeded")
	a := New(failingKV{Store: s, setErr: boom}, nil)

	err = a.SaveCards(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, CardsKey)

	err = a.SaveSubjects(context.Background(), []string{"x"})
	assert.ErrorIs(t, err, boom)
}

func TestSaveCards_NilIsEmptyArray(t *testing.T) {
	ctx := context.Background()
	a, s := newAdapter(t)
	require.NoError(t, a.SaveCards(ctx, nil))
	b, err := s.Get(ctx, CardsKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}
