package storage

import "testing"

func TestLoadProgressFirstRun(t *testing.T) {
	kv := NewMemory()

	p, err := LoadProgress(kv, DefaultLives)
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}

	if p.HighScore != 0 || p.LastScore != 0 || p.Lives != 3 {
		t.Errorf("First run progress = %+v, expected {0 0 3}", p)
	}

	// All three defaults are written back
	want := map[string]string{
		KeyHighScore: "0",
		KeyLastScore: "0",
		KeyLives:     "3",
	}
	for key, value := range want {
		got, ok, _ := kv.Get(key)
		if !ok || got != value {
			t.Errorf("%s = %q (present %v), expected %q", key, got, ok, value)
		}
	}
}

func TestLoadProgressExisting(t *testing.T) {
	kv := NewMemory()
	kv.Set(KeyHighScore, "42")
	kv.Set(KeyLastScore, "7")
	kv.Set(KeyLives, "2")

	p, err := LoadProgress(kv, DefaultLives)
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p != (Progress{HighScore: 42, LastScore: 7, Lives: 2}) {
		t.Errorf("Progress = %+v, expected {42 7 2}", p)
	}
}

func TestLoadProgressMalformed(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		raw   string
		check func(Progress) bool
		fixed string
	}{
		{"non-numeric high score", KeyHighScore, "\"abc\"", func(p Progress) bool { return p.HighScore == 0 }, "0"},
		{"garbage last score", KeyLastScore, "{", func(p Progress) bool { return p.LastScore == 0 }, "0"},
		{"float lives", KeyLives, "2.5", func(p Progress) bool { return p.Lives == 3 }, "3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv := NewMemory()
			kv.Set(tc.key, tc.raw)

			p, err := LoadProgress(kv, DefaultLives)
			if err != nil {
				t.Fatalf("LoadProgress() failed: %v", err)
			}
			if !tc.check(p) {
				t.Errorf("Malformed value not defaulted: %+v", p)
			}
			if got, _, _ := kv.Get(tc.key); got != tc.fixed {
				t.Errorf("Malformed value not rewritten: %q, expected %q", got, tc.fixed)
			}
		})
	}
}

func TestLoadProgressClampsLives(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"0", 1},
		{"-4", 1},
		{"9", 3},
		{"1", 1},
	}

	for _, tc := range tests {
		kv := NewMemory()
		kv.Set(KeyLives, tc.raw)

		p, _ := LoadProgress(kv, DefaultLives)
		if p.Lives != tc.want {
			t.Errorf("lives %s loaded as %d, expected %d", tc.raw, p.Lives, tc.want)
		}
	}
}

func TestSaveAndClearProgress(t *testing.T) {
	kv := NewMemory()

	if err := SaveProgress(kv, Progress{HighScore: 10, LastScore: 4, Lives: 1}); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	p, _ := LoadProgress(kv, DefaultLives)
	if p != (Progress{HighScore: 10, LastScore: 4, Lives: 1}) {
		t.Errorf("Round trip = %+v", p)
	}

	if err := ClearProgress(kv); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}
	keys, _ := kv.Keys()
	if len(keys) != 0 {
		t.Errorf("ClearProgress left keys %v", keys)
	}
}

func TestDefaultProgress(t *testing.T) {
	if DefaultProgress(0).Lives != DefaultLives {
		t.Error("DefaultProgress with invalid max should fall back to DefaultLives")
	}
	if DefaultProgress(5).Lives != 5 {
		t.Error("DefaultProgress should honor the configured max")
	}
}
