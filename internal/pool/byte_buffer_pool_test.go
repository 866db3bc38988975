package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Basics(t *testing.T) {
	bb := NewByteBuffer(64)
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 64, bb.Cap())

	n, err := bb.Write([]byte("payload"))
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, []byte("payload"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 64, bb.Cap(), "reset keeps capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.Grow(4)
	require.Equal(t, 8, bb.Cap(), "no growth when capacity suffices")

	bb.Grow(1024)
	require.GreaterOrEqual(t, bb.Cap(), 1024)
	require.Equal(t, 0, bb.Len(), "growth does not change length")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, err := bb.Write([]byte{1, 2, 3})
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
	require.Equal(t, []byte{1, 2, 3}, out.Bytes())
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(32, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	_, err := bb.Write([]byte("abc"))
	require.NoError(t, err)
	p.Put(bb)

	got := p.Get()
	require.Equal(t, 0, got.Len(), "pooled buffer is handed back reset")
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // above threshold, dropped

	got := p.Get()
	require.LessOrEqual(t, got.Cap(), 1024)
	require.Equal(t, 0, got.Len())
}

func TestDefaultEncodePool(t *testing.T) {
	bb := GetEncodeBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	PutEncodeBuffer(bb)
	PutEncodeBuffer(nil) // no-op
}
