package punkapi

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestBufferConcatenatesChunks(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
	}{
		{name: "none", chunks: nil},
		{name: "single", chunks: []string{`{"name":"Punk IPA"}`}},
		{name: "with empty chunks", chunks: []string{"", `[{"na`, "", `me":"A"}]`, ""}},
		{name: "byte at a time", chunks: strings.Split(`[{"name":"B"}]`, "")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf Buffer
			var want []byte
			for _, c := range tc.chunks {
				n, err := buf.Write([]byte(c))
				if err != nil {
					t.Fatalf("Write: %v", err)
				}
				if n != len(c) {
					t.Fatalf("Write returned %d, want %d", n, len(c))
				}
				want = append(want, c...)
			}
			if !bytes.Equal(buf.Bytes(), want) {
				t.Fatalf("buffer = %q, want %q", buf.Bytes(), want)
			}
			if buf.Len() != len(want) {
				t.Fatalf("Len = %d, want %d", buf.Len(), len(want))
			}
		})
	}
}

func TestBufferPreservesEarlierBytes(t *testing.T) {
	var buf Buffer
	first := []byte("hello ")
	buf.Write(first)
	snapshot := append([]byte(nil), buf.Bytes()...)

	// Mutating the caller's slice must not leak into the buffer.
	first[0] = 'J'
	buf.Write(bytes.Repeat([]byte("x"), 4096))

	if !bytes.HasPrefix(buf.Bytes(), snapshot) {
		t.Fatalf("earlier bytes changed: got prefix %q, want %q", buf.Bytes()[:len(snapshot)], snapshot)
	}
}

func TestBufferAsCopyDestination(t *testing.T) {
	src := strings.Repeat("0123456789", 5000)
	var buf Buffer
	if _, err := io.CopyBuffer(&buf, strings.NewReader(src), make([]byte, 7)); err != nil {
		t.Fatalf("CopyBuffer: %v", err)
	}
	if string(buf.Bytes()) != src {
		t.Fatalf("copied %d bytes, want %d", buf.Len(), len(src))
	}
}
