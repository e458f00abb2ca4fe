// Package catalog: sentinel errors.

package catalog

import "github.com/pkg/errors"

// ErrCatalogClosed indicates an operation on a closed catalog.
var ErrCatalogClosed = errors.New("catalog: closed")

// ErrReadOnly indicates a mutation on a read-only catalog.
var ErrReadOnly = errors.New("catalog: read-only")

// ErrEmptyMolecule indicates TryAdd was given nil or an atom-free
// molecule; such records have no formula bucket and cannot be stored.
var ErrEmptyMolecule = errors.New("catalog: empty molecule")

// ErrBadEncoding indicates a record that cannot be decoded. The
// operation that hit it is aborted; nothing already loaded is touched.
var ErrBadEncoding = errors.New("catalog: bad encoding")

// ErrBadSnapshot indicates a snapshot stream with a wrong header or a
// corrupt frame.
var ErrBadSnapshot = errors.New("catalog: bad snapshot")
