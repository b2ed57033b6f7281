package vmem

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestWithTrace(t *testing.T) {
	var msgs []string
	v := New(WithTrace(func(msg string) { msgs = append(msgs, msg) }))

	_, err := v.MapFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	// One rendered message per failure, identical to the returned error.
	require.Len(t, msgs, 1)
	assert.Equal(t, err.Error(), msgs[0])
	assert.Contains(t, msgs[0], "vmem: map: ")
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	v := New(WithLogger(logger))

	_, err := v.MapFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "vmem: map: ")
}

func TestTraceDisabled(t *testing.T) {
	v := New()

	// Failures are still returned when no sink is configured.
	_, err := v.MapFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestError(t *testing.T) {
	e := &Error{Op: "alloc", Err: ErrTooLarge}
	assert.Equal(t, "vmem: alloc: size exceeds the address space", e.Error())
	assert.ErrorIs(t, e, ErrTooLarge)
}

func TestConcurrentHandles(t *testing.T) {
	content := []byte("Lorem ipsum dolor sit amet")
	path := writeTempFile(t, content)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			buf, err := Alloc(4096)
			if err != nil {
				return err
			}
			b := buf.Bytes()
			for j := range b {
				b[j] = byte(i)
			}
			for j := range b {
				if b[j] != byte(i) {
					return fmt.Errorf("byte %d corrupted", j)
				}
			}
			if err := buf.Free(); err != nil {
				return err
			}

			m, err := MapFile(path)
			if err != nil {
				return err
			}
			if !bytes.Equal(m.Bytes(), content) {
				m.Unmap()
				return fmt.Errorf("mapped content mismatch")
			}
			return m.Unmap()
		})
	}
	require.NoError(t, g.Wait())
}
