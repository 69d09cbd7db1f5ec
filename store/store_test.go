package store

import (
	"testing"

	"quixo/game"

	"github.com/matryer/is"
)

var (
	state = game.NewBoard(3).Key()
	left  = game.Action{Origin: game.Position{Row: 0, Col: 2}, Direction: game.Left}
	right = game.Action{Origin: game.Position{Row: 0, Col: 0}, Direction: game.Right}
	down  = game.Action{Origin: game.Position{Row: 0, Col: 1}, Direction: game.Bottom}
)

func TestLookupUnseen(t *testing.T) {
	is := is.New(t)
	s := New()

	entries, ok := s.Lookup(state)
	is.True(!ok)
	is.Equal(len(entries), 0)
	is.True(!s.Has(state))

	_, ok = s.Best(state)
	is.True(!ok)
	_, ok = s.Value(state, left)
	is.True(!ok)
}

func TestZeroValueIsSeen(t *testing.T) {
	is := is.New(t)
	s := New()
	s.Upsert(state, left, 0)

	v, ok := s.Value(state, left)
	is.True(ok)
	is.Equal(v, 0.0)
	is.True(s.Has(state))
}

func TestUpsert(t *testing.T) {
	is := is.New(t)
	s := New()

	s.Upsert(state, left, 0.5)
	s.Upsert(state, right, -1)
	s.Upsert(state, left, 0.25)

	entries, ok := s.Lookup(state)
	is.True(ok)
	is.Equal(entries, []Entry{{Action: left, Value: 0.25}, {Action: right, Value: -1}})
	is.Equal(s.Len(), 1)
	is.Equal(s.Entries(), 2)
}

func TestLookupReturnsCopy(t *testing.T) {
	is := is.New(t)
	s := New()
	s.Upsert(state, left, 1)

	entries, _ := s.Lookup(state)
	entries[0].Value = 99

	v, _ := s.Value(state, left)
	is.Equal(v, 1.0)
}

func TestBest(t *testing.T) {
	is := is.New(t)
	s := New()
	s.Upsert(state, left, 0.2)
	s.Upsert(state, right, 0.7)
	s.Upsert(state, down, 0.7)

	best, ok := s.Best(state)
	is.True(ok)
	is.Equal(best, Entry{Action: right, Value: 0.7}) // first inserted of the tied maxima

	s.Upsert(state, left, 0.9)
	best, _ = s.Best(state)
	is.Equal(best.Action, left)
}
