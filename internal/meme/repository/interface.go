package repository

import "meme-studio/internal/meme"

// Store is the append-only, insertion-ordered collection of memes owned by
// the process. Append is the only mutator.
type Store interface {
	// Append adds m to the end and returns its index.
	Append(m meme.Meme) int
	Count() int
	// At returns the meme at index i. Out-of-range indexes panic.
	At(i int) meme.Meme
	// All returns a snapshot copy of the sequence.
	All() []meme.Meme
}
