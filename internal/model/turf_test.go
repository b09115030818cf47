package model

import "testing"

func TestSportsList(t *testing.T) {
	t.Parallel()

	turf := Turf{Sports: " Football , Cricket ,,Basketball"}
	got := turf.SportsList()
	want := []string{"Football", "Cricket", "Basketball"}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestJoinSports(t *testing.T) {
	t.Parallel()

	if got := JoinSports([]string{" Football ", "", "Cricket"}); got != "Football,Cricket" {
		t.Fatalf("JoinSports: got %q", got)
	}
	if got := JoinSports(nil); got != "" {
		t.Fatalf("JoinSports(nil): got %q", got)
	}
}
