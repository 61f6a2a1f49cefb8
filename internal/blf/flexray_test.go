package blf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/bustrace/internal/blf/blftest"
)

func TestFlexRayMessage(t *testing.T) {
	var w blftest.Writer
	w.U16(1) // channel
	w.U8(0)  // dir
	w.Zero(1)
	w.Zero(4)
	w.Zero(4)
	w.Zero(4)
	w.Zero(4)
	w.U16(36) // frame id
	w.Zero(2)
	w.Zero(2)
	w.U8(16) // length
	w.U8(7)  // cycle
	w.Zero(1)
	w.Zero(1)
	w.Zero(2)
	data := make([]byte, 64)
	data[0] = 0xAA
	w.Bytes(data)

	f := parseOne(t, blftest.Object(blftest.ObjectSpec{
		Type: uint32(TypeFlexRayMessage),
		Body: w.Out(),
	})).(*FlexRayMessage)

	assert.Equal(t, uint16(36), f.FrameID)
	assert.Equal(t, uint8(16), f.Length)
	assert.Equal(t, uint8(7), f.Cycle)
	assert.Equal(t, byte(0xAA), f.Data[0])
}

func TestFlexRayVFrReceiveMsg(t *testing.T) {
	var w blftest.Writer
	w.U16(1)  // channel
	w.U16(1)  // version
	w.U8(1)   // channel mask
	w.U8(0)   // dir
	w.Zero(2)
	w.U32(0)  // client index
	w.U32(2)  // cluster number
	w.U16(42) // frame id
	w.U16(0)
	w.U16(0)
	w.U16(8)  // byte count
	w.U16(8)  // data count
	w.U8(3)   // cycle
	w.Zero(1)
	w.U32(0)  // tag
	w.U32(0)  // data
	w.U32(0)  // frame flags
	w.U32(0)  // app parameter
	payload := make([]byte, 254)
	copy(payload, []byte{9, 8, 7, 6, 5, 4, 3, 2})
	w.Bytes(payload)
	w.Zero(6)

	f := parseOne(t, blftest.Object(blftest.ObjectSpec{
		Type: uint32(TypeFlexRayVFrReceiveMsg),
		Body: w.Out(),
	})).(*FlexRayVFrReceiveMsg)

	assert.Equal(t, uint16(42), f.FrameID)
	assert.Equal(t, uint16(8), f.ByteCount)
	assert.Equal(t, []byte{9, 8, 7, 6, 5, 4, 3, 2}, f.DataBytes[:8])
}

func TestFlexRayVFrReceiveMsgExVariableSizing(t *testing.T) {
	build := func(dataCount int, trailingPad int) []byte {
		var w blftest.Writer
		w.U16(1)                 // channel
		w.U16(1)                 // version
		w.U16(3)                 // channel mask
		w.U16(0)                 // dir
		w.U32(0)                 // client index
		w.U32(0)                 // cluster number
		w.U16(17)                // frame id
		w.U16(0)                 // header crc 1
		w.U16(0)                 // header crc 2
		w.U16(uint16(dataCount)) // byte count
		w.U16(uint16(dataCount)) // data count
		w.U16(5)                 // cycle
		w.U32(0)                 // tag
		w.U32(0)                 // data
		w.U32(0)                 // frame flags
		w.U32(0)                 // app parameter
		w.U32(0)                 // frame crc
		w.U32(0)                 // frame length
		w.U16(0)                 // frame id 1
		w.U16(0)                 // pdu offset
		w.U16(0)                 // blf log mask
		w.Zero(26)
		for i := 0; i < dataCount; i++ {
			w.U8(uint8(i + 1))
		}
		w.Zero(trailingPad)
		return w.Out()
	}

	t.Run("exact size", func(t *testing.T) {
		f := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeFlexRayVFrReceiveMsgEx),
			Body: build(8, 0),
		})).(*FlexRayVFrReceiveMsgEx)
		assert.Equal(t, uint16(17), f.FrameID)
		assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, f.DataBytes)
	})

	t.Run("writer overallocation is skipped", func(t *testing.T) {
		f := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeFlexRayVFrReceiveMsgEx),
			Body: build(5, 11),
		})).(*FlexRayVFrReceiveMsgEx)
		assert.Equal(t, []byte{1, 2, 3, 4, 5}, f.DataBytes)
	})
}

func TestFlexRayStatusEvent(t *testing.T) {
	var w blftest.Writer
	w.U16(2)
	w.U16(1)
	w.U16(4) // status type
	w.U16(0x0F)
	w.U16(0xF0)
	w.U16(0xFF)
	w.Zero(36)

	f := parseOne(t, blftest.Object(blftest.ObjectSpec{
		Type: uint32(TypeFlexRayStatusEvent),
		Body: w.Out(),
	})).(*FlexRayStatusEvent)

	assert.Equal(t, uint16(4), f.StatusType)
	assert.Equal(t, uint16(0x0F), f.InfoMask1)
	assert.Equal(t, uint16(0xFF), f.InfoMask3)
}
