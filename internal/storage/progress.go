package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Keys under which progress is persisted. Each holds a JSON-encoded integer.
const (
	KeyHighScore = "hScore"
	KeyLastScore = "lScore"
	KeyLives     = "lifeLeft"
)

// DefaultLives is the number of lives a fresh game starts with.
const DefaultLives = 3

// Progress is the state carried between scene restarts and sessions.
type Progress struct {
	HighScore int // Best score ever achieved
	LastScore int // Score of the run in progress, kept across a life loss
	Lives     int // Lives remaining, 1..max
}

// DefaultProgress returns the first-run progress.
func DefaultProgress(maxLives int) Progress {
	if maxLives < 1 {
		maxLives = DefaultLives
	}
	return Progress{Lives: maxLives}
}

// LoadProgress reads progress from kv. Any key that is missing or does not
// hold an integer is reset to its default and written back. Lives outside
// 1..maxLives are clamped.
func LoadProgress(kv KV, maxLives int) (Progress, error) {
	def := DefaultProgress(maxLives)
	var p Progress
	var errs []error

	var err error
	if p.HighScore, err = loadInt(kv, KeyHighScore, def.HighScore); err != nil {
		errs = append(errs, err)
	}
	if p.LastScore, err = loadInt(kv, KeyLastScore, def.LastScore); err != nil {
		errs = append(errs, err)
	}
	if p.Lives, err = loadInt(kv, KeyLives, def.Lives); err != nil {
		errs = append(errs, err)
	}

	if p.HighScore < 0 {
		p.HighScore = 0
	}
	if p.LastScore < 0 {
		p.LastScore = 0
	}
	if p.Lives < 1 {
		p.Lives = 1
	} else if p.Lives > def.Lives {
		p.Lives = def.Lives
	}

	return p, errors.Join(errs...)
}

// SaveProgress writes all three progress values.
func SaveProgress(kv KV, p Progress) error {
	return errors.Join(
		saveInt(kv, KeyHighScore, p.HighScore),
		saveInt(kv, KeyLastScore, p.LastScore),
		saveInt(kv, KeyLives, p.Lives),
	)
}

// ClearProgress deletes all progress keys, so the next load is a first run.
func ClearProgress(kv KV) error {
	return errors.Join(
		kv.Delete(KeyHighScore),
		kv.Delete(KeyLastScore),
		kv.Delete(KeyLives),
	)
}

// loadInt returns the integer under key, writing def back when the key is
// missing or malformed.
func loadInt(kv KV, key string, def int) (int, error) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return def, err
	}
	if ok {
		var v int
		if jsonErr := json.Unmarshal([]byte(raw), &v); jsonErr == nil {
			return v, nil
		}
	}
	return def, saveInt(kv, key, def)
}

func saveInt(kv KV, key string, v int) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %q: %w", key, err)
	}
	return kv.Set(key, string(data))
}
