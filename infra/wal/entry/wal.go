// Package entry implements the segmented entry journal: every accepted
// add and cancel is framed, checksummed and appended before the engine
// applies it, so a restart can deterministically rebuild the book.
package entry

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"

	"pitchbook/infra/wal"
)

type Config struct {
	Dir         string
	SegmentSize int64
}

// WAL appends records to size-rotated segment files. It is not safe for
// concurrent use; the service layer serializes writes.
type WAL struct {
	dir      string
	segSize  int64
	current  *segment
	segIndex int
}

// Open creates the journal directory if needed and resumes appending to
// the newest segment.
func Open(cfg Config) (*WAL, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	// Resume at the index parsed from the newest segment's name, not
	// the file count: truncation leaves holes in the numbering.
	index := 0
	if files, err := listSegments(cfg.Dir); err == nil && len(files) > 0 {
		index, err = segmentIndex(files[len(files)-1])
		if err != nil {
			return nil, err
		}
	}

	seg, err := openSegment(cfg.Dir, index)
	if err != nil {
		return nil, err
	}

	return &WAL{
		dir:      cfg.Dir,
		segSize:  cfg.SegmentSize,
		current:  seg,
		segIndex: index,
	}, nil
}

// Append frames and writes one record:
// [type:1][seq:8][time:8][len:4][payload][crc:4], big endian, with the
// CRC covering header and payload.
func (w *WAL) Append(r *Record) error {
	payloadLen := uint32(len(r.Data))
	buf := make([]byte, frameHeaderLen+payloadLen+4)

	buf[0] = byte(r.Type)
	binary.BigEndian.PutUint64(buf[1:9], r.Seq)
	binary.BigEndian.PutUint64(buf[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(buf[17:21], payloadLen)
	copy(buf[frameHeaderLen:], r.Data)

	crc := wal.CRC32(buf[:frameHeaderLen+payloadLen])
	binary.BigEndian.PutUint32(buf[frameHeaderLen+payloadLen:], crc)

	if err := w.current.append(buf); err != nil {
		return err
	}
	if w.current.offset >= w.segSize {
		return w.rotate()
	}
	return nil
}

// Sync flushes the current segment to stable storage.
func (w *WAL) Sync() error {
	return w.current.sync()
}

// Close syncs and closes the current segment.
func (w *WAL) Close() error {
	if err := w.current.sync(); err != nil {
		_ = w.current.close()
		return err
	}
	return w.current.close()
}

func (w *WAL) rotate() error {
	if err := w.current.sync(); err != nil {
		return err
	}
	_ = w.current.close()
	w.segIndex++

	seg, err := openSegment(w.dir, w.segIndex)
	if err != nil {
		return err
	}
	w.current = seg
	return nil
}

// TruncateBefore removes whole segments whose records are all covered by
// a snapshot at seq. The open segment is never removed.
func (w *WAL) TruncateBefore(seq uint64) error {
	files, err := listSegments(w.dir)
	if err != nil {
		return err
	}

	current := segmentPath(w.dir, w.segIndex)
	for _, path := range files {
		if path == current {
			continue
		}
		maxSeq, err := maxSeqInSegment(path)
		if err != nil {
			continue
		}
		if maxSeq <= seq {
			_ = os.Remove(path)
		}
	}
	return nil
}

func listSegments(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
