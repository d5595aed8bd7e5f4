package routesvc

import (
	"sync"

	"github.com/rzbill/waymark/internal/geo"
	"github.com/rzbill/waymark/internal/metrics"
)

// Note is one location-tagged text entry.
type Note struct {
	Location geo.Point
	Text     string
}

// NoteBoard keeps an append-only note sequence per location. Locations are
// fully independent: each sequence has its own lock, and the board lock only
// covers sequence creation.
type NoteBoard struct {
	mu   sync.Mutex
	seqs map[geo.Point]*noteSeq
}

type noteSeq struct {
	mu    sync.Mutex
	notes []Note
}

// NewNoteBoard returns an empty board.
func NewNoteBoard() *NoteBoard {
	return &NoteBoard{seqs: make(map[geo.Point]*noteSeq)}
}

func (b *NoteBoard) seq(p geo.Point) *noteSeq {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.seqs[p]
	if s == nil {
		s = &noteSeq{}
		b.seqs[p] = s
	}
	return s
}

// Exchange atomically snapshots the notes already at location and appends the
// new note. The snapshot excludes the note just added, so a submitter never
// receives its own note back, and the next exchange at that location sees it.
func (b *NoteBoard) Exchange(location geo.Point, text string) []Note {
	s := b.seq(location)
	s.mu.Lock()
	snapshot := make([]Note, len(s.notes))
	copy(snapshot, s.notes)
	s.notes = append(s.notes, Note{Location: location, Text: text})
	s.mu.Unlock()
	metrics.NotesTotal.Inc()
	return snapshot
}

// Notes returns a copy of the notes at location without appending anything.
func (b *NoteBoard) Notes(location geo.Point) []Note {
	b.mu.Lock()
	s := b.seqs[location]
	b.mu.Unlock()
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}
