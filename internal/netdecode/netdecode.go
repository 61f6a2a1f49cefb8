// Package netdecode lifts captured Ethernet frames into protocol summaries
// so trace tooling can show "who talked to whom" without a manual decode.
package netdecode

import (
	"encoding/binary"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/banshee-data/bustrace/internal/blf"
)

// FrameSummary is the decoded view of one Ethernet frame.
type FrameSummary struct {
	SrcMAC    string
	DstMAC    string
	EtherType string
	SrcIP     string
	DstIP     string
	Transport string
	SrcPort   uint16
	DstPort   uint16
	Length    int
}

func (s FrameSummary) String() string {
	switch {
	case s.Transport != "":
		return fmt.Sprintf("%s %s:%d > %s:%d len=%d", s.Transport, s.SrcIP, s.SrcPort, s.DstIP, s.DstPort, s.Length)
	case s.SrcIP != "":
		return fmt.Sprintf("%s %s > %s len=%d", s.EtherType, s.SrcIP, s.DstIP, s.Length)
	default:
		return fmt.Sprintf("%s %s > %s len=%d", s.EtherType, s.SrcMAC, s.DstMAC, s.Length)
	}
}

// rebuildFrame reassembles the wire form of a captured frame. The capture
// format stores the MAC header fields separately from the payload, so the
// bytes have to be put back in wire order before gopacket can walk them.
func rebuildFrame(f *blf.EthernetFrame) []byte {
	size := 14 + len(f.Payload)
	if f.TPID != 0 {
		size += 4
	}
	out := make([]byte, 0, size)
	out = append(out, f.DestinationAddress[:]...)
	out = append(out, f.SourceAddress[:]...)
	if f.TPID != 0 {
		out = binary.BigEndian.AppendUint16(out, f.TPID)
		out = binary.BigEndian.AppendUint16(out, f.TCI)
	}
	out = binary.BigEndian.AppendUint16(out, f.FrameType)
	out = append(out, f.Payload...)
	return out
}

// Summarize decodes a captured Ethernet frame down to its transport layer.
// Frames gopacket cannot fully decode still summarise at the layers that did
// parse.
func Summarize(f *blf.EthernetFrame) FrameSummary {
	s := FrameSummary{
		SrcMAC:    f.SourceMAC().String(),
		DstMAC:    f.DestinationMAC().String(),
		EtherType: layers.EthernetType(f.FrameType).String(),
		Length:    len(f.Payload),
	}

	pkt := gopacket.NewPacket(rebuildFrame(f), layers.LayerTypeEthernet, gopacket.Default)

	if ip4, ok := pkt.Layer(layers.LayerTypeIPv4).(*layers.IPv4); ok {
		s.SrcIP = ip4.SrcIP.String()
		s.DstIP = ip4.DstIP.String()
	} else if ip6, ok := pkt.Layer(layers.LayerTypeIPv6).(*layers.IPv6); ok {
		s.SrcIP = ip6.SrcIP.String()
		s.DstIP = ip6.DstIP.String()
	}

	if tcp, ok := pkt.Layer(layers.LayerTypeTCP).(*layers.TCP); ok {
		s.Transport = "TCP"
		s.SrcPort = uint16(tcp.SrcPort)
		s.DstPort = uint16(tcp.DstPort)
	} else if udp, ok := pkt.Layer(layers.LayerTypeUDP).(*layers.UDP); ok {
		s.Transport = "UDP"
		s.SrcPort = uint16(udp.SrcPort)
		s.DstPort = uint16(udp.DstPort)
	}
	return s
}
