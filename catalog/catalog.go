// Package catalog: store lifecycle, identity, and queries.

package catalog

import (
	"encoding/binary"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/molvath/molvath/core"
	"github.com/molvath/molvath/match"
)

// stateVersion is the schema version of the state record. A catalog
// written under a different version refuses to open.
const stateVersion = 1

// Opts configures Open.
type Opts struct {
	// Path is the database directory. Empty runs the store in memory,
	// which is the fixture mode for tests and scratch work.
	Path string

	// ReadOnly opens an existing catalog for queries only; TryAdd and
	// ImportFrom return ErrReadOnly. Requires a non-empty Path.
	ReadOnly bool

	// SyncWrites forces an fsync per commit. Slower, crash-safer.
	SyncWrites bool
}

// state is the reserved bookkeeping record.
type state struct {
	id    uuid.UUID
	count uint64
}

func (s *state) marshal() []byte {
	buf := make([]byte, 0, 32)
	buf = append(buf, stateVersion)
	buf = append(buf, s.id[:]...)

	return binary.AppendUvarint(buf, s.count)
}

func (s *state) unmarshal(data []byte) error {
	if len(data) < 1+len(s.id) || data[0] != stateVersion {
		return errors.Wrap(ErrBadEncoding, "state record")
	}
	copy(s.id[:], data[1:1+len(s.id)])
	count, n := binary.Uvarint(data[1+len(s.id):])
	if n <= 0 {
		return errors.Wrap(ErrBadEncoding, "state record count")
	}
	s.count = count

	return nil
}

// Catalog is a molecule library over a badger store. Safe for concurrent
// use; see the package documentation for the key layout and identity
// semantics.
type Catalog struct {
	db       *badger.DB
	readOnly bool

	mu     sync.Mutex
	st     state
	dirty  bool
	closed bool
}

// Open opens or creates the catalog described by opts. A fresh catalog
// mints a UUID that identifies it for life; reopening returns the same
// one. The state record of an incompatible schema version fails the open
// with ErrBadEncoding.
func Open(opts Opts) (*Catalog, error) {
	if opts.Path == "" && opts.ReadOnly {
		return nil, errors.Wrap(ErrReadOnly, "catalog: in-memory catalog cannot be read-only")
	}

	dbOpts := badger.DefaultOptions(opts.Path)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.SyncWrites = opts.SyncWrites
	dbOpts.DetectConflicts = false
	dbOpts.Logger = badgerLogger{}
	if opts.Path == "" {
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: open")
	}

	cat := &Catalog{db: db, readOnly: opts.ReadOnly}
	if err = cat.loadState(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return cat, nil
}

func (cat *Catalog) loadState() error {
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(stateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cat.st.unmarshal(val)
		})
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, badger.ErrKeyNotFound) {
		// First open: mint the catalog identity.
		cat.st = state{id: uuid.New()}
		cat.dirty = !cat.readOnly
		return nil
	}

	return errors.Wrap(err, "catalog: load state")
}

// flushState persists the state record when dirty. Callers hold cat.mu.
func (cat *Catalog) flushState() error {
	if !cat.dirty {
		return nil
	}
	err := cat.db.Update(func(txn *badger.Txn) error {
		return txn.Set(stateKey, cat.st.marshal())
	})
	if err != nil {
		return errors.Wrap(err, "catalog: flush state")
	}
	cat.dirty = false

	return nil
}

// Close flushes the state record and releases the store. Further calls
// are no-ops; in-flight scans are invalidated.
func (cat *Catalog) Close() error {
	cat.mu.Lock()
	defer cat.mu.Unlock()
	if cat.closed {
		return nil
	}
	cat.closed = true

	if err := cat.flushState(); err != nil {
		_ = cat.db.Close()
		return err
	}

	return errors.Wrap(cat.db.Close(), "catalog: close")
}

// ID returns the UUID minted when this catalog was first created.
func (cat *Catalog) ID() uuid.UUID {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	return cat.st.id
}

// Len returns the number of stored molecules.
func (cat *Catalog) Len() int {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	return int(cat.st.count)
}

// TryAdd stores m unless an isomorphic molecule is already present in
// its formula bucket. It reports whether a record was written: (true,
// nil) means added, (false, nil) means a duplicate was found. The
// molecule itself is never retained.
//
// Complexity: O(enc) for the fast path; a bucket scan with one
// isomorphism test per stored candidate otherwise.
func (cat *Catalog) TryAdd(m *core.Molecule) (bool, error) {
	if m == nil || m.AtomCount() == 0 {
		return false, ErrEmptyMolecule
	}

	cat.mu.Lock()
	defer cat.mu.Unlock()
	if cat.closed {
		return false, ErrCatalogClosed
	}
	if cat.readOnly {
		return false, ErrReadOnly
	}

	formula := m.Formula().String()
	enc := Encode(m)
	key := recordKey(formula, enc)

	added := false
	err := cat.db.Update(func(txn *badger.Txn) error {
		// Fast path: byte-identical record already stored.
		switch _, err := txn.Get(key); {
		case err == nil:
			return nil
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		// Slow path: isomorphism scan over the formula bucket.
		dup, err := bucketHasIsomorph(txn, formula, m)
		if err != nil || dup {
			return err
		}

		if err = txn.Set(key, enc); err != nil {
			return err
		}
		added = true
		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "catalog: add")
	}
	if added {
		cat.st.count++
		cat.dirty = true
	}

	return added, nil
}

// bucketHasIsomorph decodes every record in the formula bucket and tests
// it against m.
func bucketHasIsomorph(txn *badger.Txn, formula string, m *core.Molecule) (bool, error) {
	it := txn.NewIterator(badger.IteratorOptions{
		PrefetchValues: true,
		PrefetchSize:   64,
		Prefix:         bucketPrefix(formula),
	})
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		var cand *core.Molecule
		err := it.Item().Value(func(val []byte) error {
			var derr error
			cand, derr = Decode(val)
			return derr
		})
		if err != nil {
			return false, err
		}
		iso, err := isomorphic(m, cand)
		if err != nil || iso {
			return iso, err
		}
	}

	return false, nil
}

// isomorphic reports whether a and b are the same decorated molecule up
// to renumbering: equal sizes, an exact-degree embedding of a in b that
// preserves charge and multiplicity atom for atom, and a reverse exact
// embedding closing the equivalence.
func isomorphic(a, b *core.Molecule) (bool, error) {
	if a.AtomCount() != b.AtomCount() || a.BondCount() != b.BondCount() {
		return false, nil
	}

	cur, err := match.Search(match.NewFragment(a), b, match.WithImplicitFreeSites(false))
	if err != nil {
		return false, err
	}
	defer cur.Close()

	found := false
	for hit, ok := cur.Next(); ok; hit, ok = cur.Next() {
		if attributesAgree(a, b, hit) {
			found = true
			break
		}
	}
	if err = cur.Err(); err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	rev, err := match.Search(match.NewFragment(b), a,
		match.WithImplicitFreeSites(false), match.WithLimit(1))
	if err != nil {
		return false, err
	}
	defer rev.Close()
	_, ok := rev.Next()
	if err = rev.Err(); err != nil {
		return false, err
	}

	return ok, nil
}

func attributesAgree(a, b *core.Molecule, hit match.Match) bool {
	for fid, tid := range hit.Atoms {
		fa, err := a.Atom(fid)
		if err != nil {
			return false
		}
		ta, err := b.Atom(tid)
		if err != nil {
			return false
		}
		if fa.Charge != ta.Charge || fa.Multiplicity != ta.Multiplicity {
			return false
		}
	}

	return true
}

// ForEach streams every stored molecule in ascending key order: formula
// buckets alphabetically, encodings within a bucket lexicographically.
// fn returning false stops the scan early. Each molecule is freshly
// decoded and owned by the callback.
func (cat *Catalog) ForEach(fn func(m *core.Molecule) bool) error {
	return cat.scan(nil, fn)
}

// SelectFormula streams the molecules whose Hill formula equals formula,
// in stored order. fn returning false stops early.
func (cat *Catalog) SelectFormula(formula string, fn func(m *core.Molecule) bool) error {
	return cat.scan(bucketPrefix(formula), fn)
}

func (cat *Catalog) scan(prefix []byte, fn func(m *core.Molecule) bool) error {
	if fn == nil {
		return errors.New("catalog: nil callback")
	}
	cat.mu.Lock()
	closed := cat.closed
	cat.mu.Unlock()
	if closed {
		return ErrCatalogClosed
	}

	err := cat.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   128,
			Prefix:         prefix,
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			if len(item.Key()) > 0 && item.Key()[0] == reservedTag {
				continue
			}
			var m *core.Molecule
			err := item.Value(func(val []byte) error {
				var derr error
				m, derr = Decode(val)
				return derr
			})
			if err != nil {
				return err
			}
			if !fn(m) {
				return nil
			}
		}
		return nil
	})

	return errors.Wrap(err, "catalog: scan")
}

// SearchSubstructure runs frag against every stored molecule and streams
// each embedding to fn together with the decoded host. fn returning
// false abandons the current cursor and stops the scan. Fragment
// semantics are match's defaults: substructure mode with implicit free
// sites.
func (cat *Catalog) SearchSubstructure(frag *match.Fragment, fn func(m *core.Molecule, hit match.Match) bool) error {
	if fn == nil {
		return errors.New("catalog: nil callback")
	}
	if frag == nil || frag.Pattern() == nil {
		return errors.Wrap(match.ErrFragmentInvalid, "catalog: search")
	}
	if frag.Pattern().AtomCount() == 0 {
		return errors.Wrap(match.ErrEmptyFragment, "catalog: search")
	}

	var searchErr error
	err := cat.scan(nil, func(m *core.Molecule) bool {
		cur, err := match.Search(frag, m)
		if err != nil {
			searchErr = err
			return false
		}
		defer cur.Close()
		for hit, ok := cur.Next(); ok; hit, ok = cur.Next() {
			if !fn(m, hit) {
				return false
			}
		}
		searchErr = cur.Err()
		return searchErr == nil
	})
	if err != nil {
		return err
	}

	return errors.Wrap(searchErr, "catalog: search")
}
