// Package catalog: zstd snapshot streams.

package catalog

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// snapshotMagic heads every snapshot, inside the compression.
var snapshotMagic = []byte("molvath-cat\x01")

// maxRecordSize bounds one frame of an imported snapshot. A longer
// length prefix marks the stream as corrupt before anything allocates.
const maxRecordSize = 1 << 24

// ExportTo writes the whole catalog to w as a zstd-compressed stream of
// length-prefixed record encodings and returns the record count. The
// snapshot is self-contained and order-stable: records appear in
// ascending key order.
func (cat *Catalog) ExportTo(w io.Writer) (int, error) {
	cat.mu.Lock()
	closed := cat.closed
	cat.mu.Unlock()
	if closed {
		return 0, ErrCatalogClosed
	}

	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, errors.Wrap(err, "catalog: export")
	}

	wrote := 0
	err = cat.db.View(func(txn *badger.Txn) error {
		if _, err := zw.Write(snapshotMagic); err != nil {
			return err
		}

		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   128,
		})
		defer it.Close()

		var lenBuf [binary.MaxVarintLen64]byte
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			if len(item.Key()) > 0 && item.Key()[0] == reservedTag {
				continue
			}
			err := item.Value(func(val []byte) error {
				n := binary.PutUvarint(lenBuf[:], uint64(len(val)))
				if _, err := zw.Write(lenBuf[:n]); err != nil {
					return err
				}
				_, err := zw.Write(val)
				return err
			})
			if err != nil {
				return err
			}
			wrote++
		}
		return nil
	})
	if err != nil {
		_ = zw.Close()
		return wrote, errors.Wrap(err, "catalog: export")
	}

	return wrote, errors.Wrap(zw.Close(), "catalog: export")
}

// ImportFrom reads a snapshot stream and TryAdds every record, merging
// it into this catalog under the usual isomorphism dedup. It returns
// the number of records actually added.
//
// A wrong header or a corrupt frame aborts with ErrBadSnapshot and a
// corrupt record with ErrBadEncoding; records merged before the fault
// remain.
func (cat *Catalog) ImportFrom(r io.Reader) (int, error) {
	cat.mu.Lock()
	closed, readOnly := cat.closed, cat.readOnly
	cat.mu.Unlock()
	if closed {
		return 0, ErrCatalogClosed
	}
	if readOnly {
		return 0, ErrReadOnly
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return 0, errors.Wrap(err, "catalog: import")
	}
	defer zr.Close()
	br := bufio.NewReader(zr)

	magic := make([]byte, len(snapshotMagic))
	if _, err = io.ReadFull(br, magic); err != nil || !bytes.Equal(magic, snapshotMagic) {
		return 0, errors.Wrap(ErrBadSnapshot, "catalog: import header")
	}

	added := 0
	for {
		n, err := binary.ReadUvarint(br)
		if err == io.EOF {
			return added, nil
		}
		if err != nil {
			return added, errors.Wrap(ErrBadSnapshot, "catalog: import frame")
		}
		if n == 0 || n > maxRecordSize {
			return added, errors.Wrapf(ErrBadSnapshot, "catalog: import frame of %d bytes", n)
		}
		rec := make([]byte, n)
		if _, err = io.ReadFull(br, rec); err != nil {
			return added, errors.Wrap(ErrBadSnapshot, "catalog: truncated record")
		}
		m, err := Decode(rec)
		if err != nil {
			return added, err
		}
		ok, err := cat.TryAdd(m)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
}
