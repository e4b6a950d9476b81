// Package bytebuf provides the two byte primitives the rest of bytekit is
// built from: Buffer, an owning append-only byte container with a fixed
// capacity, and Cursor, a non-owning view over bytes owned elsewhere.
//
// Typical flow:
//
//	raw bytes -> Cursor -> SplitOnChar into an arraylist.List[Cursor] -> Buffer
//
// A Cursor never outlives the memory it views; that lifetime is the caller's
// responsibility. Neither type is safe for concurrent mutation.
//
// # Null versus empty
//
// Both types distinguish "no memory" from "zero bytes of real memory". A zero
// Cursor is null; CursorFromString("") is empty but not null. Equality
// compares null-ness and length before contents.
//
// # Case folding
//
// EqIgnoreCase and HashIgnoreCase fold through one 256-entry table that maps
// ASCII A-Z to a-z and every other byte to itself. Equal cursors under
// EqIgnoreCase always hash identically.
package bytebuf
