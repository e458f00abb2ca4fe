// Package catalog persists a library of molecules in a badger store and
// answers formula, identity, and substructure queries over it.
//
// # Layout
//
// Every molecule is stored under the key
//
//	[Hill formula][0x00][binary encoding]
//
// with the encoding repeated as the value. The NUL separator makes each
// formula a clean key prefix, so SelectFormula is a single prefix scan
// and ForEach walks buckets in alphabetical formula order. A reserved
// 0xFF-tagged key holds the catalog state: schema version, the UUID
// minted when the catalog was first created, and the record count.
//
// # Identity
//
// TryAdd deduplicates at isomorphism level. A byte-identical encoding is
// rejected outright; otherwise every record in the same formula bucket
// is decoded and tested for an exact-degree embedding in both directions
// (charge and multiplicity must agree atom for atom). Stereo wedges are
// drawing decorations and do not separate records. Only a genuinely new
// structure is written.
//
// The encoding snapshots chemistry, not session state: detached bonds
// are persisted as live, and extension props and perceived aromaticity
// flags are dropped. Decode issues fresh dense IDs.
//
// # Snapshots
//
// ExportTo and ImportFrom move whole catalogs through zstd-compressed
// streams of length-prefixed encodings, so libraries can be merged with
// TryAdd semantics or shipped to another store. A corrupt frame aborts
// the import with ErrBadSnapshot; records imported before it remain.
//
// A Catalog is safe for concurrent use. Mutations are serialized
// internally; reads run on badger snapshots. Close flushes the state
// record and invalidates in-flight scans.
package catalog
