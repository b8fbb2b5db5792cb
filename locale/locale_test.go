package locale

import "testing"

func TestGetPassthrough(t *testing.T) {
	for _, s := range []string{"[E] Open", "[E] Close", "The door opens."} {
		if got := Get(s); got != s {
			t.Fatalf("Get(%q) = %q", s, got)
		}
	}
}
