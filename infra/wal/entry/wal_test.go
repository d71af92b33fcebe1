package entry

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestWAL(t *testing.T, dir string, segSize int64) *WAL {
	t.Helper()
	w, err := Open(Config{Dir: dir, SegmentSize: segSize})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	return w
}

func TestAppendReplayRoundtrip(t *testing.T) {
	dir := t.TempDir()
	w := openTestWAL(t, dir, 1<<20)

	records := []*Record{
		NewRecord(RecordAdd, 1, EncodeAdd(100, 0, 5000, 10)),
		NewRecord(RecordAdd, 2, EncodeAdd(101, 1, 5100, 20)),
		NewRecord(RecordCancel, 3, EncodeCancel(100)),
	}
	for _, r := range records {
		if err := w.Append(r); err != nil {
			t.Fatalf("append seq %d: %v", r.Seq, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	var got []*Record
	lastSeq, err := Replay(dir, func(r *Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if lastSeq != 3 {
		t.Fatalf("lastSeq = %d, want 3", lastSeq)
	}
	if len(got) != len(records) {
		t.Fatalf("replayed %d records, want %d", len(got), len(records))
	}
	for i, r := range got {
		want := records[i]
		if r.Type != want.Type || r.Seq != want.Seq || string(r.Data) != string(want.Data) {
			t.Fatalf("record %d = %+v, want %+v", i, r, want)
		}
	}

	id, side, price, volume, err := DecodeAdd(got[0].Data)
	if err != nil {
		t.Fatalf("decode add: %v", err)
	}
	if id != 100 || side != 0 || price != 5000 || volume != 10 {
		t.Fatalf("decoded add = (%d %d %d %d)", id, side, price, volume)
	}
	cid, err := DecodeCancel(got[2].Data)
	if err != nil {
		t.Fatalf("decode cancel: %v", err)
	}
	if cid != 100 {
		t.Fatalf("decoded cancel id = %d, want 100", cid)
	}
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()
	// Tiny segment size so every record forces a rotation.
	w := openTestWAL(t, dir, 8)

	for seq := uint64(1); seq <= 5; seq++ {
		if err := w.Append(NewRecord(RecordCancel, seq, EncodeCancel(seq))); err != nil {
			t.Fatalf("append seq %d: %v", seq, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	files, err := listSegments(dir)
	if err != nil {
		t.Fatalf("list segments: %v", err)
	}
	if len(files) < 5 {
		t.Fatalf("got %d segments, want at least 5", len(files))
	}

	var seqs []uint64
	if _, err := Replay(dir, func(r *Record) error {
		seqs = append(seqs, r.Seq)
		return nil
	}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(seqs) != 5 {
		t.Fatalf("replayed %d records, want 5", len(seqs))
	}
	for i, s := range seqs {
		if s != uint64(i+1) {
			t.Fatalf("seqs = %v, want 1..5 in order", seqs)
		}
	}
}

func TestReopenResumesAppend(t *testing.T) {
	dir := t.TempDir()

	w := openTestWAL(t, dir, 1<<20)
	if err := w.Append(NewRecord(RecordCancel, 1, EncodeCancel(1))); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	w = openTestWAL(t, dir, 1<<20)
	if err := w.Append(NewRecord(RecordCancel, 2, EncodeCancel(2))); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	lastSeq, err := Replay(dir, func(*Record) error { return nil })
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if lastSeq != 2 {
		t.Fatalf("lastSeq = %d, want 2", lastSeq)
	}
}

func TestReopenAfterTruncateResumesNewestSegment(t *testing.T) {
	dir := t.TempDir()
	// One record per segment.
	w := openTestWAL(t, dir, 8)

	for seq := uint64(1); seq <= 4; seq++ {
		if err := w.Append(NewRecord(RecordCancel, seq, EncodeCancel(seq))); err != nil {
			t.Fatalf("append seq %d: %v", seq, err)
		}
	}
	if err := w.TruncateBefore(2); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// With segments 0 and 1 gone, reopen must resume the numbering from
	// the newest surviving segment, not from the file count.
	w = openTestWAL(t, dir, 8)
	if err := w.Append(NewRecord(RecordCancel, 5, EncodeCancel(5))); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	var seqs []uint64
	if _, err := Replay(dir, func(r *Record) error {
		seqs = append(seqs, r.Seq)
		return nil
	}); err != nil {
		t.Fatalf("replay after truncate and reopen: %v", err)
	}
	if len(seqs) != 3 || seqs[0] != 3 || seqs[1] != 4 || seqs[2] != 5 {
		t.Fatalf("seqs = %v, want [3 4 5]", seqs)
	}
}

func TestReplayDetectsCorruption(t *testing.T) {
	dir := t.TempDir()
	w := openTestWAL(t, dir, 1<<20)
	if err := w.Append(NewRecord(RecordCancel, 1, EncodeCancel(7))); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	path := segmentPath(dir, 0)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read segment: %v", err)
	}
	data[frameHeaderLen] ^= 0xFF
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write segment: %v", err)
	}

	if _, err := Replay(dir, func(*Record) error { return nil }); err == nil {
		t.Fatal("replay accepted a corrupted record")
	}
}

func TestTruncateBefore(t *testing.T) {
	dir := t.TempDir()
	w := openTestWAL(t, dir, 8)

	for seq := uint64(1); seq <= 4; seq++ {
		if err := w.Append(NewRecord(RecordCancel, seq, EncodeCancel(seq))); err != nil {
			t.Fatalf("append seq %d: %v", seq, err)
		}
	}

	if err := w.TruncateBefore(2); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	// Segments holding only seqs 1 and 2 must be gone.
	for _, f := range files {
		maxSeq, err := maxSeqInSegment(f)
		if err != nil {
			t.Fatalf("max seq in %s: %v", f, err)
		}
		if maxSeq != 0 && maxSeq <= 2 && f != segmentPath(dir, w.segIndex) {
			t.Fatalf("segment %s (max seq %d) survived truncation", f, maxSeq)
		}
	}

	var seqs []uint64
	if _, err := Replay(dir, func(r *Record) error {
		seqs = append(seqs, r.Seq)
		return nil
	}); err != nil {
		t.Fatalf("replay after truncate: %v", err)
	}
	if len(seqs) != 2 || seqs[0] != 3 || seqs[1] != 4 {
		t.Fatalf("surviving seqs = %v, want [3 4]", seqs)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
