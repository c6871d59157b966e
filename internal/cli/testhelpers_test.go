package cli

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
)

// captureStdoutMu serializes tests that swap os.Stdout.
var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	var buf bytes.Buffer
	var copyErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, copyErr = io.Copy(&buf, r)
		r.Close()
	}()

	fn()

	os.Stdout = orig
	w.Close()
	<-done
	if copyErr != nil {
		t.Fatalf("reading captured stdout: %v", copyErr)
	}
	return buf.String()
}
