package blf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/bustrace/internal/blf/blftest"
)

func TestLinMessage(t *testing.T) {
	var w blftest.Writer
	w.U16(1)    // channel
	w.U8(0x3C)  // id
	w.U8(8)     // dlc
	w.Bytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	w.U16(5)    // fsm id
	w.U16(2)    // fsm state
	w.U32(1000) // header time
	w.U32(2000) // full time
	w.U8(0xA5)  // crc
	w.U8(1)     // dir
	w.Zero(6)

	m := parseOne(t, blftest.Object(blftest.ObjectSpec{
		Type: uint32(TypeLinMessage),
		Body: w.Out(),
	})).(*LinMessage)

	assert.Equal(t, uint8(0x3C), m.ID)
	assert.Equal(t, [8]byte{1, 2, 3, 4, 5, 6, 7, 8}, m.Data)
	assert.Equal(t, uint32(2000), m.FullTime)
	assert.Equal(t, uint8(0xA5), m.CRC)
	assert.Equal(t, uint8(1), m.Dir)
}

func linMessage2Body(trailer int) []byte {
	var w blftest.Writer
	w.Bytes([]byte{8, 7, 6, 5, 4, 3, 2, 1})
	w.U16(0x1234) // crc
	w.U8(1)       // dir
	w.U8(0)       // simulated
	w.U8(0)       // is etf
	w.Zero(10)
	if trailer >= 4 {
		w.U32(19200) // response baudrate
	}
	if trailer >= 12 {
		w.U64(0x40D3180000000000) // 19552.0 as float64 bits
	}
	return w.Out()
}

func TestLinMessage2TrailerVariants(t *testing.T) {
	t.Run("no trailer", func(t *testing.T) {
		m := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeLinMessage2),
			Body: linMessage2Body(0),
		})).(*LinMessage2)

		assert.False(t, m.HasRespBaudrate)
		assert.False(t, m.HasExactHeaderBaudrate)
		assert.Equal(t, uint16(0x1234), m.CRC)
	})

	t.Run("response baudrate only", func(t *testing.T) {
		m := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeLinMessage2),
			Body: linMessage2Body(4),
		})).(*LinMessage2)

		assert.True(t, m.HasRespBaudrate)
		assert.Equal(t, uint32(19200), m.RespBaudrate)
		assert.False(t, m.HasExactHeaderBaudrate)
	})

	t.Run("both trailing fields", func(t *testing.T) {
		m := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeLinMessage2),
			Body: linMessage2Body(12),
		})).(*LinMessage2)

		assert.True(t, m.HasRespBaudrate)
		assert.True(t, m.HasExactHeaderBaudrate)
		assert.Equal(t, 19552.0, m.ExactHeaderBaudrate)
	})
}

func TestLinErrors(t *testing.T) {
	t.Run("crc error", func(t *testing.T) {
		var w blftest.Writer
		w.U16(1)
		w.U8(0x17)
		w.U8(4)
		w.Bytes([]byte{1, 2, 3, 4, 0, 0, 0, 0})
		w.Zero(4)
		w.U16(0xBEEF)
		w.U8(0)

		e := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeLinCrcError),
			Body: w.Out(),
		})).(*LinCrcError)
		assert.Equal(t, uint8(0x17), e.ID)
		assert.Equal(t, uint16(0xBEEF), e.CRC)
	})

	t.Run("receive error", func(t *testing.T) {
		var w blftest.Writer
		w.U16(2)
		w.U8(0x20)
		w.U8(8)
		w.Zero(4)
		w.U8(3) // state reason
		w.U8(0x55)
		w.U8(1)
		w.U8(0)
		w.Zero(4)

		e := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeLinReceiveError),
			Body: w.Out(),
		})).(*LinReceiveError)
		assert.Equal(t, uint8(3), e.StateReason)
		assert.Equal(t, uint8(0x55), e.OffendingByte)
	})

	t.Run("sync error", func(t *testing.T) {
		var w blftest.Writer
		w.U16(1)
		w.Zero(2)
		w.U16(10)
		w.U16(20)
		w.U16(30)
		w.U16(40)
		w.Zero(4)

		e := parseOne(t, blftest.Object(blftest.ObjectSpec{
			Type: uint32(TypeLinSyncError),
			Body: w.Out(),
		})).(*LinSyncError)
		assert.Equal(t, [4]uint16{10, 20, 30, 40}, e.TimeDiff)
	})
}

func TestLinLifecycleEvents(t *testing.T) {
	cases := []struct {
		typ  ObjectType
		want LogObject
	}{
		{TypeLinDlcInfo, &LinDlcInfo{}},
		{TypeLinSchedulerModeChange, &LinSchedulerModeChange{}},
		{TypeLinBaudrate, &LinBaudrateEvent{}},
		{TypeLinSleep, &LinSleepModeEvent{}},
		{TypeLinWakeup, &LinWakeupEvent{}},
	}
	for _, tc := range cases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			obj := parseOne(t, blftest.Object(blftest.ObjectSpec{
				Type:        uint32(tc.typ),
				TimestampNS: 500,
				Body:        []byte{1, 0, 0, 0}, // undecoded body bytes
			}))
			assert.IsType(t, tc.want, obj)
			assert.Equal(t, uint64(500), obj.Header().TimestampNS)
		})
	}
}
