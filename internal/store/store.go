// Package store owns the in-memory wardrobe collections and writes them
// back through the persistence gateway after every mutation.
//
// The in-memory state is the source of truth. Persistence is best-effort:
// a failed save is logged (with a quota warning when relevant) and the
// mutation still succeeds from the caller's point of view - the next
// mutation writes the whole collection again. Unknown IDs are silent
// no-ops reported through a boolean, never an error, so stale UI state
// cannot crash bulk operations.
package store

// Record keys for the persisted snapshots. Each record loads and saves
// independently.
const (
	keyItems         = "wardrobe:items"
	keySubcategories = "wardrobe:custom-subcategories"
	keyOutfits       = "wardrobe:outfits"
)
