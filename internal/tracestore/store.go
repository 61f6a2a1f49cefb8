// Package tracestore persists parsed bus traces in sqlite so captures can be
// queried and reported on without re-parsing the BLF file each time.
package tracestore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/banshee-data/bustrace/internal/monitoring"
)

type Store struct {
	*sql.DB
}

// Open opens (creating if needed) the trace database at path and brings the
// schema up to date.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open trace database: %w", err)
	}

	// WAL keeps bulk imports from blocking readers.
	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA foreign_keys = ON;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	s := &Store{db}
	if err := s.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Session is one imported capture file.
type Session struct {
	ID               string
	SourcePath       string
	AppID            uint8
	APIVersion       string
	MeasurementStart time.Time
	ObjectCount      int64
	CreatedAt        time.Time
}

// Message is one bus message row. FrameID is the CAN/LIN identifier where the
// bus has one, zero otherwise.
type Message struct {
	SessionID   string
	ObjectType  uint32
	Bus         string
	Channel     uint16
	FrameID     uint32
	DLC         uint8
	TimestampNS uint64
	Data        []byte
}

func (s *Store) insertSession(ctx context.Context, tx *sql.Tx, sess *Session) error {
	var start any
	if !sess.MeasurementStart.IsZero() {
		start = sess.MeasurementStart
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO sessions (id, source_path, app_id, api_version, measurement_start, object_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sess.ID, sess.SourcePath, sess.AppID, sess.APIVersion, start, sess.ObjectCount)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// InsertMessages writes a batch of messages in one transaction.
func (s *Store) InsertMessages(ctx context.Context, msgs []Message) error {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	defer tx.Rollback()

	if err := insertMessagesTx(ctx, tx, msgs); err != nil {
		return err
	}
	return tx.Commit()
}

func insertMessagesTx(ctx context.Context, tx *sql.Tx, msgs []Message) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO messages (session_id, object_type, bus, channel, frame_id, dlc, timestamp_ns, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare message insert: %w", err)
	}
	defer stmt.Close()

	for i := range msgs {
		m := &msgs[i]
		_, err := stmt.ExecContext(ctx, m.SessionID, m.ObjectType, m.Bus,
			m.Channel, m.FrameID, m.DLC, int64(m.TimestampNS), m.Data)
		if err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
	}
	return nil
}

// GetSession returns one session by ID.
func (s *Store) GetSession(ctx context.Context, id string) (*Session, error) {
	sess := &Session{}
	var start sql.NullTime
	err := s.QueryRowContext(ctx, `
		SELECT id, source_path, app_id, api_version, measurement_start, object_count, created_at
		FROM sessions WHERE id = ?
	`, id).Scan(&sess.ID, &sess.SourcePath, &sess.AppID, &sess.APIVersion,
		&start, &sess.ObjectCount, &sess.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	if start.Valid {
		sess.MeasurementStart = start.Time
	}
	return sess, nil
}

// ListSessions returns all sessions, newest first.
func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, source_path, app_id, api_version, measurement_start, object_count, created_at
		FROM sessions ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		var start sql.NullTime
		if err := rows.Scan(&sess.ID, &sess.SourcePath, &sess.AppID, &sess.APIVersion,
			&start, &sess.ObjectCount, &sess.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if start.Valid {
			sess.MeasurementStart = start.Time
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// MessageCount returns the number of messages stored for a session.
func (s *Store) MessageCount(ctx context.Context, sessionID string) (int64, error) {
	var n int64
	err := s.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM messages WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return n, nil
}

// ChannelStats summarises traffic on one bus channel of a session.
type ChannelStats struct {
	Bus          string
	Channel      uint16
	MessageCount int64
	FirstNS      uint64
	LastNS       uint64
	UniqueIDs    int64
}

// ChannelSummary returns per-channel traffic statistics for a session.
func (s *Store) ChannelSummary(ctx context.Context, sessionID string) ([]ChannelStats, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT bus, channel, COUNT(*), MIN(timestamp_ns), MAX(timestamp_ns), COUNT(DISTINCT frame_id)
		FROM messages
		WHERE session_id = ?
		GROUP BY bus, channel
		ORDER BY bus, channel
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("channel summary: %w", err)
	}
	defer rows.Close()

	var out []ChannelStats
	for rows.Next() {
		var cs ChannelStats
		var first, last int64
		if err := rows.Scan(&cs.Bus, &cs.Channel, &cs.MessageCount, &first, &last, &cs.UniqueIDs); err != nil {
			return nil, fmt.Errorf("scan channel stats: %w", err)
		}
		cs.FirstNS = uint64(first)
		cs.LastNS = uint64(last)
		out = append(out, cs)
	}
	return out, rows.Err()
}

// Timestamps returns the ordered message timestamps for one channel of a
// session, for inter-arrival analysis.
func (s *Store) Timestamps(ctx context.Context, sessionID string, channel uint16) ([]uint64, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT timestamp_ns FROM messages
		WHERE session_id = ? AND channel = ?
		ORDER BY timestamp_ns
	`, sessionID, channel)
	if err != nil {
		return nil, fmt.Errorf("query timestamps: %w", err)
	}
	defer rows.Close()

	var out []uint64
	for rows.Next() {
		var ts int64
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("scan timestamp: %w", err)
		}
		out = append(out, uint64(ts))
	}
	return out, rows.Err()
}

// IDCount is the message count for one frame identifier.
type IDCount struct {
	FrameID uint32
	Count   int64
}

// TopIDs returns the most frequent frame identifiers on a session, busiest
// first.
func (s *Store) TopIDs(ctx context.Context, sessionID string, limit int) ([]IDCount, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT frame_id, COUNT(*) AS n FROM messages
		WHERE session_id = ? AND bus IN ('can', 'lin')
		GROUP BY frame_id
		ORDER BY n DESC
		LIMIT ?
	`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("query top ids: %w", err)
	}
	defer rows.Close()

	var out []IDCount
	for rows.Next() {
		var ic IDCount
		if err := rows.Scan(&ic.FrameID, &ic.Count); err != nil {
			return nil, fmt.Errorf("scan id count: %w", err)
		}
		out = append(out, ic)
	}
	return out, rows.Err()
}

// DeleteSession removes a session and its messages.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		monitoring.Logf("delete session %s: not found", sessionID)
	}
	return tx.Commit()
}
