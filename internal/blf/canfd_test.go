package blf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/bustrace/internal/blf/blftest"
)

func TestCanFdMessageRoundTrip(t *testing.T) {
	var w blftest.Writer
	w.U16(1)       // channel
	w.U8(0)        // flags
	w.U8(15)       // dlc
	w.U32(0x1FFFF) // id
	w.U32(50000)   // frame length
	w.U8(47)       // arbitration bit count
	w.U8(canFdFlagEDL | canFdFlagBRS)
	w.U8(64) // valid data bytes
	w.Zero(1)
	w.Zero(4)
	payload := make([]byte, 64)
	for i := range payload {
		payload[i] = byte(i)
	}
	w.Bytes(payload)
	w.Zero(4)

	m := parseOne(t, blftest.Object(blftest.ObjectSpec{
		Type: uint32(TypeCanFdMessage),
		Body: w.Out(),
	})).(*CanFdMessage)

	assert.Equal(t, uint8(15), m.DLC)
	assert.Equal(t, uint8(64), m.ValidDataBytes)
	assert.True(t, m.EDL())
	assert.True(t, m.BRS())
	assert.False(t, m.ESI())
	assert.Equal(t, payload, m.Payload())
}

func TestClassifyCanFd64(t *testing.T) {
	encode := func(spec blftest.CanFdMessage64Body) []byte { return spec.Encode() }

	t.Run("standard layout", func(t *testing.T) {
		body := encode(blftest.CanFdMessage64Body{Channel: 1, DLC: 8, ID: 0x123, Data: make([]byte, 8)})
		assert.Equal(t, CanFd64Standard, classifyCanFd64(body))
	})

	t.Run("shifted layout", func(t *testing.T) {
		body := encode(blftest.CanFdMessage64Body{Shifted: true, Channel: 1, DLC: 8, ID: 0x123, Data: make([]byte, 8)})
		assert.Equal(t, CanFd64ShiftedBy16, classifyCanFd64(body))
	})

	t.Run("short body stays standard", func(t *testing.T) {
		assert.Equal(t, CanFd64Standard, classifyCanFd64(make([]byte, 8)))
	})

	t.Run("sniff needs both full prefixes", func(t *testing.T) {
		// A zero prefix at offset 0 and a plausible one at offset 16 would
		// read as shifted, but with under 32 bytes there is no room for a
		// complete candidate at 16.
		body := make([]byte, 28)
		body[16] = 1 // channel
		assert.Equal(t, CanFd64Standard, classifyCanFd64(body))
	})

	t.Run("all zero stays standard", func(t *testing.T) {
		// Zero at both offsets gives no evidence for the shift.
		assert.Equal(t, CanFd64Standard, classifyCanFd64(make([]byte, 64)))
	})
}

func TestCanFdMessage64RoundTrip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	t.Run("standard", func(t *testing.T) {
		body := blftest.CanFdMessage64Body{
			Channel: 2,
			DLC:     8,
			ID:      0x456,
			Flags:   canFd64FlagEDL | canFd64FlagESI,
			Data:    data,
		}.Encode()

		m := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeCanFdMessage64),
			Body: body,
		})).(*CanFdMessage64)

		assert.Equal(t, CanFd64Standard, m.Layout)
		assert.Equal(t, uint8(2), m.Channel)
		assert.Equal(t, uint32(0x456), m.ID)
		assert.Equal(t, data, m.Data)
		assert.True(t, m.EDL())
		assert.False(t, m.BRS())
		assert.True(t, m.ESI())
		assert.False(t, m.HasExtFrameData)
	})

	t.Run("shifted", func(t *testing.T) {
		body := blftest.CanFdMessage64Body{
			Shifted: true,
			Channel: 2,
			DLC:     8,
			ID:      0x456,
			Data:    data,
		}.Encode()

		m := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeCanFdMessage64),
			Body: body,
		})).(*CanFdMessage64)

		assert.Equal(t, CanFd64ShiftedBy16, m.Layout)
		assert.Equal(t, uint8(2), m.Channel)
		assert.Equal(t, data, m.Data)
	})
}

func TestCanFdMessage64ExtensionBlock(t *testing.T) {
	t.Run("present when object size covers it", func(t *testing.T) {
		body := blftest.CanFdMessage64Body{
			Channel:    3,
			DLC:        8,
			ID:         0x99,
			Data:       []byte{1, 2, 3, 4, 5, 6, 7, 8},
			WithExt:    true,
			ExtBtrArb:  0x11223344,
			ExtBtrData: 0x55667788,
		}.Encode()

		m := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeCanFdMessage64),
			Body: body,
		})).(*CanFdMessage64)

		require.True(t, m.HasExtFrameData)
		assert.Equal(t, uint32(0x11223344), m.BtrExtArb)
		assert.Equal(t, uint32(0x55667788), m.BtrExtData)
	})

	t.Run("skipped when object size is too small", func(t *testing.T) {
		// Declare an extension offset but end the object before the
		// extension block would start.
		var w blftest.Writer
		w.U8(1)  // channel
		w.U8(8)  // dlc
		w.U8(8)  // valid data bytes
		w.U8(0)  // tx count
		w.U32(0x42)
		w.U32(0)
		w.U32(0)
		w.U32(0)
		w.U32(0)
		w.U32(0)
		w.U32(0)
		w.U16(0)
		w.U8(0)
		w.U8(200) // extension offset beyond the object
		w.U32(0)
		w.Bytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})

		m := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeCanFdMessage64),
			Body: w.Out(),
		})).(*CanFdMessage64)

		assert.False(t, m.HasExtFrameData)
		assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, m.Data)
	})
}
