package synonomous

import (
	"context"
	"testing"
)

func TestFolded(t *testing.T) {
	t.Run("Strips Combining Marks", func(t *testing.T) {
		folded := Folded(Verbatim)
		cases := []struct {
			in   string
			want string
		}{
			{"crème-brûlée", "creme-brulee"},
			{"Élodie", "Elodie"},
			{"plain", "plain"},
		}
		for _, tc := range cases {
			if got := folded(tc.in); got != tc.want {
				t.Errorf("Folded(Verbatim)(%q) = %q, want %q", tc.in, got, tc.want)
			}
		}
	})

	t.Run("Composes With Built-ins", func(t *testing.T) {
		if got := Folded(ToCamelCase)("crème-brûlée"); got != "cremeBrulee" {
			t.Errorf("expected cremeBrulee, got %q", got)
		}
		if got := Folded(ToAllCaps)("crème-brûlée"); got != "CREME_BRULEE" {
			t.Errorf("expected CREME_BRULEE, got %q", got)
		}
	})

	t.Run("Registered Folded Transformer", func(t *testing.T) {
		private := NewRegistry()
		private.Register("toFoldedCamelCase", Folded(ToCamelCase))
		d := NewDecorator("accented", "toFoldedCamelCase").WithRegistry(private)
		defer d.Close()

		got, err := d.Synonyms(context.Background(), "crème-brûlée")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0] != "cremeBrulee" {
			t.Errorf("expected [cremeBrulee], got %v", got)
		}
	})
}
