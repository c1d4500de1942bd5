// Package history persists trip records in SQLite.
package history

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	core "github.com/kilianp07/evroute/core/history"
)

func msToTime(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

// SQLiteStore persists trip records in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS trips (
        trip_id TEXT PRIMARY KEY,
        destination_name TEXT,
        date INTEGER,
        distance_km REAL,
        duration_minutes INTEGER,
        energy_used_kwh REAL,
        avg_consumption REAL,
        start_soc REAL,
        end_soc REAL,
        charging_stops INTEGER
    );`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Add inserts or replaces the trip record.
func (s *SQLiteStore) Add(r core.Record) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO trips
        (trip_id, destination_name, date, distance_km, duration_minutes,
         energy_used_kwh, avg_consumption, start_soc, end_soc, charging_stops)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.TripID, r.DestinationName, r.Date.UnixMilli(), r.DistanceKm, r.DurationMinutes,
		r.EnergyUsedKWh, r.AvgConsumption, r.StartSoC, r.EndSoC, r.ChargingStops)
	return err
}

// Recent returns up to limit records, newest first.
func (s *SQLiteStore) Recent(limit int) ([]core.Record, error) {
	rows, err := s.db.Query(`SELECT trip_id, destination_name, date, distance_km,
        duration_minutes, energy_used_kwh, avg_consumption, start_soc, end_soc, charging_stops
        FROM trips ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []core.Record
	for rows.Next() {
		var r core.Record
		var ms int64
		if err := rows.Scan(&r.TripID, &r.DestinationName, &ms, &r.DistanceKm,
			&r.DurationMinutes, &r.EnergyUsedKWh, &r.AvgConsumption, &r.StartSoC,
			&r.EndSoC, &r.ChargingStops); err != nil {
			return nil, err
		}
		r.Date = msToTime(ms)
		res = append(res, r)
	}
	return res, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
