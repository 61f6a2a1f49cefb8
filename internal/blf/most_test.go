package blf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/bustrace/internal/blf/blftest"
)

func TestMostSpy(t *testing.T) {
	var w blftest.Writer
	w.U16(1)       // channel
	w.U8(0)        // dir
	w.Zero(1)
	w.U32(0x0100)  // source address
	w.U32(0x0401)  // destination address
	msg := [17]byte{0x01, 0x02, 0x03}
	w.Bytes(msg[:])
	w.Zero(1)
	w.U16(2)       // r typ
	w.U8(0)        // r typ adr
	w.U8(0)        // state
	w.Zero(1)
	w.U8(0x11)     // ack/nack
	w.U32(0xCAFE)  // crc

	m := parseOne(t, blftest.Object(blftest.ObjectSpec{
		Type: uint32(TypeMostSpy),
		Body: w.Out(),
	})).(*MostSpy)

	assert.Equal(t, uint32(0x0100), m.SourceAdr)
	assert.Equal(t, uint32(0x0401), m.DestAdr)
	assert.Equal(t, msg, m.Msg)
	assert.Equal(t, uint8(0x11), m.AckNack)
	assert.Equal(t, uint32(0xCAFE), m.CRC)
}

func TestMostPkt2DeclaredLength(t *testing.T) {
	var w blftest.Writer
	w.U16(1)      // channel
	w.U8(1)       // dir
	w.Zero(1)
	w.U32(0x0172) // source address
	w.U32(0x03C8) // destination address
	w.U8(0x04)    // arbitration
	w.Zero(1)
	w.U8(2) // quads to follow
	w.Zero(1)
	w.U16(0xAAAA) // crc
	w.U8(1)       // priority
	w.U8(0)       // transfer type
	w.U8(0)       // state
	w.Zero(1)
	w.Zero(2)
	w.U32(3) // packet data length
	w.Zero(4)
	w.Bytes([]byte{0xDE, 0xAD, 0xBF})

	m := parseOne(t, blftest.Object(blftest.ObjectSpec{
		Type: uint32(TypeMostPkt2),
		Body: w.Out(),
	})).(*MostPkt2)

	assert.Equal(t, uint32(0x0172), m.SourceAdr)
	assert.Equal(t, uint8(2), m.QuadsToFollow)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBF}, m.PktData)
}

func TestMostStateEvents(t *testing.T) {
	t.Run("light lock", func(t *testing.T) {
		var w blftest.Writer
		w.U16(1)
		w.U16(0xFFFE) // -2 as i16
		w.Zero(4)

		m := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeMostLightLock),
			Body: w.Out(),
		})).(*MostLightLock)
		assert.Equal(t, int16(-2), m.State)
	})

	t.Run("net state", func(t *testing.T) {
		var w blftest.Writer
		w.U16(1)
		w.U16(3) // new
		w.U16(2) // old
		w.Zero(2)

		m := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeMostNetState),
			Body: w.Out(),
		})).(*MostNetState)
		assert.Equal(t, uint16(3), m.StateNew)
		assert.Equal(t, uint16(2), m.StateOld)
	})

	t.Run("data lost", func(t *testing.T) {
		var w blftest.Writer
		w.U16(1)
		w.Zero(2)
		w.U32(0x3)  // info
		w.U32(12)   // lost ctrl
		w.U32(34)   // lost async
		w.U64(1000) // last good
		w.U64(2000) // next good

		m := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeMostDataLost),
			Body: w.Out(),
		})).(*MostDataLost)
		assert.Equal(t, uint32(12), m.LostMsgsCtrl)
		assert.Equal(t, uint32(34), m.LostMsgsAsync)
		assert.Equal(t, uint64(2000), m.NextGoodTimestampNS)
	})
}
