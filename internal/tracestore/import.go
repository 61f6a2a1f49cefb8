package tracestore

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/banshee-data/bustrace/internal/blf"
	"github.com/banshee-data/bustrace/internal/monitoring"
)

// importBatchSize bounds how many message rows are buffered before a
// transaction flush during import.
const importBatchSize = 5000

// Bus names stored in the messages table.
const (
	BusCAN      = "can"
	BusLIN      = "lin"
	BusFlexRay  = "flexray"
	BusMOST     = "most"
	BusEthernet = "ethernet"
	BusWLAN     = "wlan"
	BusOther    = "other"
)

// ImportFile parses the BLF file at path and stores its messages as a new
// session. The whole file is streamed, so captures larger than memory import
// fine.
func (s *Store) ImportFile(ctx context.Context, path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture: %w", err)
	}
	defer f.Close()

	sr, err := blf.NewStreamingReader(f)
	if err != nil {
		return nil, fmt.Errorf("read capture header: %w", err)
	}
	stats := sr.Statistics()

	sess := &Session{
		ID:               uuid.NewString(),
		SourcePath:       path,
		AppID:            stats.AppID,
		APIVersion:       stats.APIVersion(),
		MeasurementStart: stats.MeasurementStart.Time(),
	}

	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	// The session row must exist before any message rows reference it.
	if err := s.insertSession(ctx, tx, sess); err != nil {
		return nil, err
	}

	batch := make([]Message, 0, importBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := insertMessagesTx(ctx, tx, batch); err != nil {
			return err
		}
		monitoring.Debugf("import %s: flushed %d rows at offset %d", sess.ID, len(batch), sr.Offset())
		batch = batch[:0]
		return nil
	}

	for {
		obj, err := sr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse capture: %w", err)
		}
		msg, ok := messageRow(sess.ID, obj)
		if !ok {
			continue
		}
		sess.ObjectCount++
		batch = append(batch, msg)
		if len(batch) >= importBatchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE sessions SET object_count = ? WHERE id = ?`,
		sess.ObjectCount, sess.ID); err != nil {
		return nil, fmt.Errorf("update session count: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	monitoring.Logf("imported %s: session %s, %d messages", path, sess.ID, sess.ObjectCount)
	return sess, nil
}

// messageRow flattens a decoded object into a message row. Objects that are
// not bus traffic (statistics, markers, unknown types) are skipped.
func messageRow(sessionID string, obj blf.LogObject) (Message, bool) {
	h := obj.Header()
	m := Message{
		SessionID:   sessionID,
		ObjectType:  uint32(h.Type),
		TimestampNS: h.TimestampNS,
	}

	switch o := obj.(type) {
	case *blf.CanMessage:
		m.Bus, m.Channel, m.FrameID, m.DLC = BusCAN, o.Channel, o.ID, o.DLC
		m.Data = append([]byte(nil), o.Data[:]...)
	case *blf.CanMessage2:
		m.Bus, m.Channel, m.FrameID, m.DLC = BusCAN, o.Channel, o.ID, o.DLC
		m.Data = o.Data
	case *blf.CanFdMessage:
		m.Bus, m.Channel, m.FrameID, m.DLC = BusCAN, o.Channel, o.ID, o.DLC
		m.Data = append([]byte(nil), o.Payload()...)
	case *blf.CanFdMessage64:
		m.Bus, m.Channel, m.FrameID, m.DLC = BusCAN, uint16(o.Channel), o.ID, o.DLC
		m.Data = o.Data
	case *blf.LinMessage:
		m.Bus, m.Channel, m.FrameID, m.DLC = BusLIN, o.Channel, uint32(o.ID), o.DLC
		m.Data = append([]byte(nil), o.Data[:]...)
	case *blf.LinMessage2:
		m.Bus = BusLIN
		m.Data = append([]byte(nil), o.Data[:]...)
	case *blf.FlexRayMessage:
		m.Bus, m.Channel, m.FrameID, m.DLC = BusFlexRay, o.Channel, uint32(o.FrameID), o.Length
		m.Data = append([]byte(nil), o.Data[:]...)
	case *blf.FlexRayVFrReceiveMsg:
		m.Bus, m.Channel, m.FrameID = BusFlexRay, o.Channel, uint32(o.FrameID)
		n := int(o.ByteCount)
		if n > len(o.DataBytes) {
			n = len(o.DataBytes)
		}
		m.Data = append([]byte(nil), o.DataBytes[:n]...)
	case *blf.FlexRayVFrReceiveMsgEx:
		m.Bus, m.Channel, m.FrameID = BusFlexRay, o.Channel, uint32(o.FrameID)
		m.Data = o.DataBytes
	case *blf.MostSpy:
		m.Bus, m.Channel = BusMOST, o.Channel
		m.Data = append([]byte(nil), o.Msg[:]...)
	case *blf.MostCtrl:
		m.Bus, m.Channel = BusMOST, o.Channel
		m.Data = append([]byte(nil), o.Msg[:]...)
	case *blf.MostPkt2:
		m.Bus, m.Channel = BusMOST, o.Channel
		m.Data = o.PktData
	case *blf.EthernetFrame:
		m.Bus, m.Channel, m.FrameID = BusEthernet, o.Channel, uint32(o.FrameType)
		m.Data = o.Payload
	case *blf.WlanFrame:
		m.Bus, m.Channel = BusWLAN, o.Channel
		m.Data = o.FrameData
	default:
		return Message{}, false
	}
	return m, true
}
