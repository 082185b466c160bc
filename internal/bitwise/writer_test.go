/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bitwise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriterWriteBit tests the WriteBit method of the Writer.
func TestWriterWriteBit(t *testing.T) {
	t.Run("LSB", func(t *testing.T) {
		data := make([]byte, 4)
		w := NewWriter(data)

		// 10010011 11000111
		// 0x93 	0xC7
		bits := []int{1, 0, 0, 1, 0, 0, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1}
		for i := len(bits) - 1; i > -1; i-- {
			require.NoError(t, w.WriteBit(bits[i]))
		}

		assert.Equal(t, byte(0xC7), data[0], "expected: %08b, is: %08b", 0xc7, data[0])
		assert.Equal(t, byte(0x93), data[1], "expected: %08b, is: %08b", 0x93, data[1])
	})

	t.Run("MSB", func(t *testing.T) {
		data := make([]byte, 4)
		w := NewWriterMSB(data)

		bits := []int{1, 0, 0, 1, 0, 0, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1}
		for _, bit := range bits {
			require.NoError(t, w.WriteBit(bit))
		}

		assert.Equal(t, byte(0x93), data[0], "expected: %08b, is: %08b", 0x93, data[0])
		assert.Equal(t, byte(0xC7), data[1], "expected: %08b, is: %08b", 0xc7, data[1])
	})

	t.Run("Invalid", func(t *testing.T) {
		w := NewWriter(make([]byte, 1))
		require.Error(t, w.WriteBit(2))
	})
}

// TestWriterWriteBits tests the WriteBits method of the Writer.
func TestWriterWriteBits(t *testing.T) {
	t.Run("MSB", func(t *testing.T) {
		data := make([]byte, 4)
		w := NewWriterMSB(data)

		n, err := w.WriteBits(0xb, 4)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, byte(0xb0), data[0])

		n, err = w.WriteBits(0xdf, 8)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, byte(0xbd), data[0])
		assert.Equal(t, byte(0xf0), data[1])
	})

	t.Run("FinishByte", func(t *testing.T) {
		data := make([]byte, 4)
		w := NewWriterMSB(data)

		_, err := w.WriteBits(0x5, 3)
		require.NoError(t, err)
		w.FinishByte()

		require.NoError(t, w.WriteByte(0xff))
		assert.Equal(t, byte(0xa0), data[0])
		assert.Equal(t, byte(0xff), data[1])
	})
}

// TestReaderReadBits tests reading bits back from a byte slice.
func TestReaderReadBits(t *testing.T) {
	r := NewReader([]byte{0x93, 0xC7})

	u, err := r.ReadBits(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x9), u)

	u, err = r.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x3c), u)

	r.ConsumeRemainingBits()
	_, err = r.ReadBits(1)
	require.Error(t, err)
}
