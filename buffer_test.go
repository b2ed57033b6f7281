package vmem

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlloc(t *testing.T) {
	sizes := []uint64{1, 16, 4096, 1 << 20}
	for _, size := range sizes {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			buf, err := Alloc(size)
			require.NoError(t, err)
			require.NotNil(t, buf)
			assert.Equal(t, size, buf.Size())
			require.Len(t, buf.Bytes(), int(size))

			// Freshly allocated memory is zero-initialized.
			assert.Equal(t, make([]byte, size), buf.Bytes())

			// Writes through the handle are visible on read-back.
			want := make([]byte, size)
			for i := range want {
				want[i] = byte(i)
			}
			copy(buf.Bytes(), want)
			assert.Equal(t, want, buf.Bytes())

			require.NoError(t, buf.Free())
		})
	}
}

func TestAllocDistinct(t *testing.T) {
	a, err := Alloc(64)
	require.NoError(t, err)
	defer a.Free()

	b, err := Alloc(64)
	require.NoError(t, err)
	defer b.Free()

	for i := range a.Bytes() {
		a.Bytes()[i] = 0xAA
	}
	for i := range b.Bytes() {
		b.Bytes()[i] = 0xBB
	}

	for i, c := range a.Bytes() {
		require.Equalf(t, byte(0xAA), c, "byte %d overwritten through the other handle", i)
	}
}

func TestAllocTooLarge(t *testing.T) {
	var msgs []string
	v := New(WithTrace(func(msg string) { msgs = append(msgs, msg) }))

	buf, err := v.Alloc(math.MaxUint64)
	require.Error(t, err)
	assert.Nil(t, buf)
	assert.ErrorIs(t, err, ErrTooLarge)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "alloc", e.Op)

	require.Len(t, msgs, 1)
	assert.Equal(t, err.Error(), msgs[0])
}

func TestFreeIdempotent(t *testing.T) {
	buf, err := Alloc(4096)
	require.NoError(t, err)

	require.NoError(t, buf.Free())
	require.NoError(t, buf.Free())

	assert.Nil(t, buf.Bytes())
	assert.Equal(t, uint64(4096), buf.Size())
}
