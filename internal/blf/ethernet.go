package blf

import "net"

// EthernetFrame is a captured Ethernet frame (object type 71). The VLAN tag
// fields are zero when the frame was untagged; Payload starts at the
// EtherType payload, not the MAC header.
type EthernetFrame struct {
	ObjectHeader
	SourceAddress      [6]byte
	Channel            uint16
	DestinationAddress [6]byte
	Dir                uint16
	FrameType          uint16
	TPID               uint16
	TCI                uint16
	PayloadLength      uint16
	Payload            []byte
}

// SourceMAC returns the source address as a net.HardwareAddr.
func (f *EthernetFrame) SourceMAC() net.HardwareAddr {
	return net.HardwareAddr(f.SourceAddress[:])
}

// DestinationMAC returns the destination address as a net.HardwareAddr.
func (f *EthernetFrame) DestinationMAC() net.HardwareAddr {
	return net.HardwareAddr(f.DestinationAddress[:])
}

func decodeEthernetFrame(c *cursor, h ObjectHeader) (*EthernetFrame, error) {
	f := &EthernetFrame{ObjectHeader: h}
	c.fill(f.SourceAddress[:])
	f.Channel = c.u16()
	c.fill(f.DestinationAddress[:])
	f.Dir = c.u16()
	f.FrameType = c.u16()
	f.TPID = c.u16()
	f.TCI = c.u16()
	f.PayloadLength = c.u16()
	c.skip(8) // reserved
	f.Payload = c.bytes(int(f.PayloadLength))
	return f, c.err
}

// wlanFrameFixedSize is the size of the fields before the frame data.
const wlanFrameFixedSize = 8

// WlanFrame is a captured 802.11 frame (object type 105). DataRate is in
// 0.1 Mbit/s, SignalStrength in dBm.
type WlanFrame struct {
	ObjectHeader
	Channel        uint16
	Flags          uint8
	DataRate       uint8
	SignalStrength int32
	FrameData      []byte
}

func decodeWlanFrame(c *cursor, h ObjectHeader) (*WlanFrame, error) {
	f := &WlanFrame{ObjectHeader: h}
	f.Channel = c.u16()
	f.Flags = c.u8()
	f.DataRate = c.u8()
	f.SignalStrength = c.i32()
	n := h.BodySize() - wlanFrameFixedSize
	if n < 0 {
		n = 0
	}
	f.FrameData = c.bytes(n)
	return f, c.err
}

// WlanStatistic is a periodic WLAN channel statistics record (object
// type 106). TransmissionRate is in 0.1 Mbit/s, TransmissionDelay in
// microseconds.
type WlanStatistic struct {
	ObjectHeader
	Channel           uint16
	Flags             uint8
	RSSI              uint8
	TransmissionRate  uint16
	TransmissionDelay uint32
}

func decodeWlanStatistic(c *cursor, h ObjectHeader) (*WlanStatistic, error) {
	s := &WlanStatistic{ObjectHeader: h}
	s.Channel = c.u16()
	s.Flags = c.u8()
	s.RSSI = c.u8()
	s.TransmissionRate = c.u16()
	s.TransmissionDelay = c.u32()
	return s, c.err
}
