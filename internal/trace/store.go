// Package trace persists style traces, drift alerts, and snapshots in
// SQLite so personality evolution can be inspected and replayed after
// the fact.
package trace

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS style_traces (
	trace_id            TEXT PRIMARY KEY,
	ts                  TEXT NOT NULL,
	event_type          TEXT NOT NULL,
	intensity           REAL NOT NULL,
	state_json          TEXT NOT NULL,
	style_delta_json    TEXT NOT NULL,
	decoding_delta_json TEXT NOT NULL,
	boundaries_json     TEXT NOT NULL,
	rationale           TEXT
);

CREATE INDEX IF NOT EXISTS idx_style_traces_ts ON style_traces(ts);
CREATE INDEX IF NOT EXISTS idx_style_traces_event ON style_traces(event_type);

CREATE TABLE IF NOT EXISTS drift_alerts (
	alert_id   TEXT PRIMARY KEY,
	ts         TEXT NOT NULL,
	trace_id   TEXT NOT NULL,
	magnitude  REAL NOT NULL,
	threshold  REAL NOT NULL,
	severity   TEXT NOT NULL,
	rationale  TEXT,
	FOREIGN KEY (trace_id) REFERENCES style_traces(trace_id)
);

CREATE TABLE IF NOT EXISTS snapshots (
	snapshot_id   TEXT PRIMARY KEY,
	created_at    TEXT NOT NULL,
	snapshot_json TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS active_snapshot (
	id          INTEGER PRIMARY KEY CHECK (id = 1),
	snapshot_id TEXT NOT NULL,
	FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id)
);
`
// #endregion schema

// #region store-struct
// Store manages trace and snapshot persistence in SQLite.
type Store struct {
	db     *sql.DB
	config StoreConfig
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string, config StoreConfig) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, config: config}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by inspection tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region record
// Record persists a trace, evicts expired traces, and raises a drift
// alert when the trace's drift magnitude crosses the threshold.
func (s *Store) Record(t StyleTrace) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.TS.IsZero() {
		t.TS = time.Now().UTC()
	}

	stateJSON, err := json.Marshal(t.State)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	styleJSON, err := json.Marshal(t.StyleDelta)
	if err != nil {
		return fmt.Errorf("marshal style delta: %w", err)
	}
	decodingJSON, err := json.Marshal(t.DecodingDelta)
	if err != nil {
		return fmt.Errorf("marshal decoding delta: %w", err)
	}
	boundsJSON, err := json.Marshal(t.Boundaries)
	if err != nil {
		return fmt.Errorf("marshal boundaries: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO style_traces
		 (trace_id, ts, event_type, intensity, state_json, style_delta_json, decoding_delta_json, boundaries_json, rationale)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.TS.Format(time.RFC3339Nano), string(t.EventType), t.Intensity,
		string(stateJSON), string(styleJSON), string(decodingJSON), string(boundsJSON), t.Rationale,
	)
	if err != nil {
		return fmt.Errorf("insert trace: %w", err)
	}

	if err := s.evictExpired(); err != nil {
		return fmt.Errorf("evict expired: %w", err)
	}

	if s.config.EnableDriftAlerts {
		if err := s.checkDrift(t); err != nil {
			return fmt.Errorf("check drift: %w", err)
		}
	}

	return nil
}

// evictExpired removes traces older than the retention window, along
// with their alerts.
func (s *Store) evictExpired() error {
	if s.config.RetentionDays <= 0 {
		return nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -s.config.RetentionDays).Format(time.RFC3339Nano)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM drift_alerts WHERE trace_id IN (SELECT trace_id FROM style_traces WHERE ts < ?)`,
		cutoff,
	); err != nil {
		return fmt.Errorf("delete expired alerts: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM style_traces WHERE ts < ?`, cutoff); err != nil {
		return fmt.Errorf("delete expired traces: %w", err)
	}
	return tx.Commit()
}

// checkDrift raises an alert when the summed style delta exceeds the
// threshold. Doubling the threshold escalates severity to high.
func (s *Store) checkDrift(t StyleTrace) error {
	magnitude := t.DriftMagnitude()
	if magnitude <= s.config.DriftThreshold {
		return nil
	}

	severity := "medium"
	if magnitude > s.config.DriftThreshold*2 {
		severity = "high"
	}

	alert := DriftAlert{
		ID:        uuid.New().String(),
		TS:        time.Now().UTC(),
		TraceID:   t.ID,
		Magnitude: magnitude,
		Threshold: s.config.DriftThreshold,
		Severity:  severity,
		Rationale: t.Rationale,
	}

	_, err := s.db.Exec(
		`INSERT INTO drift_alerts (alert_id, ts, trace_id, magnitude, threshold, severity, rationale)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		alert.ID, alert.TS.Format(time.RFC3339Nano), alert.TraceID,
		alert.Magnitude, alert.Threshold, alert.Severity, alert.Rationale,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}

	log.Printf("[TRACE] drift alert: magnitude=%.3f threshold=%.3f severity=%s trace=%s",
		magnitude, s.config.DriftThreshold, severity, t.ID)
	return nil
}
// #endregion record

// #region queries
// Recent returns up to limit traces, newest first.
func (s *Store) Recent(limit int) ([]StyleTrace, error) {
	rows, err := s.db.Query(
		`SELECT trace_id, ts, event_type, intensity, state_json, style_delta_json, decoding_delta_json, boundaries_json, rationale
		 FROM style_traces ORDER BY ts DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()
	return scanTraces(rows)
}

// ByEventType returns all traces recorded for one event type, newest first.
func (s *Store) ByEventType(et model.EventType) ([]StyleTrace, error) {
	rows, err := s.db.Query(
		`SELECT trace_id, ts, event_type, intensity, state_json, style_delta_json, decoding_delta_json, boundaries_json, rationale
		 FROM style_traces WHERE event_type = ? ORDER BY ts DESC`, string(et),
	)
	if err != nil {
		return nil, fmt.Errorf("query by event type: %w", err)
	}
	defer rows.Close()
	return scanTraces(rows)
}

// ByTimeRange returns traces with start <= ts <= end, oldest first.
func (s *Store) ByTimeRange(start, end time.Time) ([]StyleTrace, error) {
	rows, err := s.db.Query(
		`SELECT trace_id, ts, event_type, intensity, state_json, style_delta_json, decoding_delta_json, boundaries_json, rationale
		 FROM style_traces WHERE ts >= ? AND ts <= ? ORDER BY ts ASC`,
		start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("query by time range: %w", err)
	}
	defer rows.Close()
	return scanTraces(rows)
}

// Alerts returns up to limit drift alerts, newest first.
func (s *Store) Alerts(limit int) ([]DriftAlert, error) {
	rows, err := s.db.Query(
		`SELECT alert_id, ts, trace_id, magnitude, threshold, severity, rationale
		 FROM drift_alerts ORDER BY ts DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []DriftAlert
	for rows.Next() {
		var a DriftAlert
		var tsStr string
		var rationale sql.NullString
		if err := rows.Scan(&a.ID, &tsStr, &a.TraceID, &a.Magnitude, &a.Threshold, &a.Severity, &rationale); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		a.TS, _ = time.Parse(time.RFC3339Nano, tsStr)
		if rationale.Valid {
			a.Rationale = rationale.String
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// Evolution summarizes style movement over the trailing window.
func (s *Store) Evolution(window time.Duration) (EvolutionSummary, error) {
	cutoff := time.Now().UTC().Add(-window)
	traces, err := s.ByTimeRange(cutoff, time.Now().UTC())
	if err != nil {
		return EvolutionSummary{}, err
	}

	summary := EvolutionSummary{
		TotalTraces:      len(traces),
		DimensionChanges: map[string]DimensionChange{},
	}

	deltas := map[string][]float64{}
	for _, t := range traces {
		if len(t.StyleDelta) == 0 {
			continue
		}
		summary.TotalChanges++
		for dim, d := range t.StyleDelta {
			deltas[dim] = append(deltas[dim], d)
		}
	}
	if summary.TotalTraces > 0 {
		summary.ChangeFrequency = float64(summary.TotalChanges) / float64(summary.TotalTraces)
	}

	for dim, ds := range deltas {
		change := DimensionChange{
			Count:       len(ds),
			MaxIncrease: ds[0],
			MaxDecrease: ds[0],
		}
		sum := 0.0
		for _, d := range ds {
			sum += d
			if d > change.MaxIncrease {
				change.MaxIncrease = d
			}
			if d < change.MaxDecrease {
				change.MaxDecrease = d
			}
		}
		change.AvgChange = sum / float64(len(ds))
		summary.DimensionChanges[dim] = change
	}

	return summary, nil
}

func scanTraces(rows *sql.Rows) ([]StyleTrace, error) {
	var traces []StyleTrace
	for rows.Next() {
		var t StyleTrace
		var tsStr, stateJSON, styleJSON, decodingJSON, boundsJSON string
		var eventType string
		var rationale sql.NullString

		if err := rows.Scan(&t.ID, &tsStr, &eventType, &t.Intensity,
			&stateJSON, &styleJSON, &decodingJSON, &boundsJSON, &rationale); err != nil {
			return nil, fmt.Errorf("scan trace: %w", err)
		}
		t.TS, _ = time.Parse(time.RFC3339Nano, tsStr)
		t.EventType = model.EventType(eventType)
		if err := json.Unmarshal([]byte(stateJSON), &t.State); err != nil {
			return nil, fmt.Errorf("unmarshal state: %w", err)
		}
		if err := json.Unmarshal([]byte(styleJSON), &t.StyleDelta); err != nil {
			return nil, fmt.Errorf("unmarshal style delta: %w", err)
		}
		if err := json.Unmarshal([]byte(decodingJSON), &t.DecodingDelta); err != nil {
			return nil, fmt.Errorf("unmarshal decoding delta: %w", err)
		}
		if err := json.Unmarshal([]byte(boundsJSON), &t.Boundaries); err != nil {
			return nil, fmt.Errorf("unmarshal boundaries: %w", err)
		}
		if rationale.Valid {
			t.Rationale = rationale.String
		}
		traces = append(traces, t)
	}
	return traces, rows.Err()
}
// #endregion queries

// #region snapshots
// SaveSnapshot stores a snapshot and marks it active.
func (s *Store) SaveSnapshot(snap model.Snapshot) (string, error) {
	if err := snap.Validate(); err != nil {
		return "", fmt.Errorf("validate snapshot: %w", err)
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO snapshots (snapshot_id, created_at, snapshot_json) VALUES (?, ?, ?)`,
		id, now.Format(time.RFC3339Nano), string(data),
	); err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO active_snapshot (id, snapshot_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET snapshot_id = excluded.snapshot_id`,
		id,
	); err != nil {
		return "", fmt.Errorf("set active snapshot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// LoadSnapshot retrieves one snapshot by ID.
func (s *Store) LoadSnapshot(id string) (model.Snapshot, error) {
	var data string
	err := s.db.QueryRow(
		`SELECT snapshot_json FROM snapshots WHERE snapshot_id = ?`, id,
	).Scan(&data)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("get snapshot %s: %w", id, err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}

// LoadActiveSnapshot retrieves the most recently saved snapshot.
func (s *Store) LoadActiveSnapshot() (model.Snapshot, error) {
	var id string
	err := s.db.QueryRow(`SELECT snapshot_id FROM active_snapshot WHERE id = 1`).Scan(&id)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("get active snapshot: %w", err)
	}
	return s.LoadSnapshot(id)
}
// #endregion snapshots
