package exit

import (
	"testing"
)

func openTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() { _ = o.Close() })
	return o
}

func TestPutGetLifecycle(t *testing.T) {
	o := openTestOutbox(t)

	exec := Execution{Seq: 1, RestingID: 10, IncomingID: 20, Price: 5000, Volume: 7, TakerSide: 1}
	if err := o.Put(exec.Seq, EncodeExecution(exec)); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := o.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateNew || rec.Retries != 0 {
		t.Fatalf("fresh record = %+v", rec)
	}
	got, err := DecodeExecution(rec.Payload)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if got != exec {
		t.Fatalf("decoded execution = %+v, want %+v", got, exec)
	}

	if err := o.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	rec, err = o.Get(1)
	if err != nil {
		t.Fatalf("get after sent: %v", err)
	}
	if rec.State != StateSent || rec.Retries != 1 || rec.LastAttempt == 0 {
		t.Fatalf("sent record = %+v", rec)
	}

	if err := o.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	rec, err = o.Get(1)
	if err != nil {
		t.Fatalf("get after ack: %v", err)
	}
	if rec.State != StateAcked {
		t.Fatalf("acked record = %+v", rec)
	}

	if err := o.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := o.Get(1); err == nil {
		t.Fatal("get succeeded after delete")
	}
}

func TestScanPendingSkipsAcked(t *testing.T) {
	o := openTestOutbox(t)

	for seq := uint64(1); seq <= 4; seq++ {
		e := Execution{Seq: seq, RestingID: seq, IncomingID: seq + 100, Price: 5000, Volume: 1}
		if err := o.Put(seq, EncodeExecution(e)); err != nil {
			t.Fatalf("put %d: %v", seq, err)
		}
	}
	if err := o.MarkSent(2); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	if err := o.MarkAcked(3); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	if err := o.MarkFailed(4); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	var seqs []uint64
	if err := o.ScanPending(func(seq uint64, rec Record) error {
		seqs = append(seqs, seq)
		return nil
	}); err != nil {
		t.Fatalf("scan pending: %v", err)
	}
	// Pebble iterates keys in order; 3 is ACKED and must be skipped.
	if len(seqs) != 3 || seqs[0] != 1 || seqs[1] != 2 || seqs[2] != 4 {
		t.Fatalf("pending seqs = %v, want [1 2 4]", seqs)
	}

	var failed []uint64
	if err := o.ScanByState(StateFailed, func(seq uint64, rec Record) error {
		failed = append(failed, seq)
		return nil
	}); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(failed) != 1 || failed[0] != 4 {
		t.Fatalf("failed seqs = %v, want [4]", failed)
	}
}
