package synonomous

import "testing"

func TestVerbatim(t *testing.T) {
	t.Run("Returns Input Unaltered", func(t *testing.T) {
		inputs := []string{"background-color", "BORDER_LEFT", "1st place!", "", "  spaced  "}
		for _, in := range inputs {
			if got := Verbatim(in); got != in {
				t.Errorf("Verbatim(%q) = %q, want %q", in, got, in)
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		in := "background-color"
		if Verbatim(Verbatim(in)) != Verbatim(in) {
			t.Error("verbatim should be stable under repeated application")
		}
	})
}

func TestToCamelCase(t *testing.T) {
	t.Run("Collapses Separator Runs", func(t *testing.T) {
		cases := map[string]string{
			"background-color":  "backgroundColor",
			"border_left":       "borderLeft",
			"border left width": "borderLeftWidth",
			"background--color": "backgroundColor",
			"borderLeft":        "borderLeft",
		}
		for in, want := range cases {
			if got := ToCamelCase(in); got != want {
				t.Errorf("ToCamelCase(%q) = %q, want %q", in, got, want)
			}
		}
	})

	t.Run("Lowers Leading Capital", func(t *testing.T) {
		if got := ToCamelCase("BackgroundColor"); got != "backgroundColor" {
			t.Errorf("expected backgroundColor, got %q", got)
		}
	})

	t.Run("Sentinel Prefix For Digit Initial Results", func(t *testing.T) {
		got := ToCamelCase("1stPlace")
		if len(got) < 2 || got[0] != Sentinel || got[1] != '1' {
			t.Errorf("expected sentinel followed by digit, got %q", got)
		}
		if got != "$1stPlace" {
			t.Errorf("expected $1stPlace, got %q", got)
		}
	})

	t.Run("Trailing Separators Dropped", func(t *testing.T) {
		if got := ToCamelCase("background-color-"); got != "backgroundColor" {
			t.Errorf("expected backgroundColor, got %q", got)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if got := ToCamelCase(""); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

func TestToAllCaps(t *testing.T) {
	t.Run("Separator Runs Become Underscores", func(t *testing.T) {
		if got := ToAllCaps("background-color"); got != "BACKGROUND_COLOR" {
			t.Errorf("expected BACKGROUND_COLOR, got %q", got)
		}
	})

	t.Run("Camel Boundaries Gain Underscores", func(t *testing.T) {
		cases := map[string]string{
			"borderLeft":      "BORDER_LEFT",
			"borderLeftWidth": "BORDER_LEFT_WIDTH",
			"background":      "BACKGROUND",
		}
		for in, want := range cases {
			if got := ToAllCaps(in); got != want {
				t.Errorf("ToAllCaps(%q) = %q, want %q", in, got, want)
			}
		}
	})

	t.Run("Sentinel Prefix For Digit Initial Results", func(t *testing.T) {
		if got := ToAllCaps("1st-place"); got != "$1ST_PLACE" {
			t.Errorf("expected $1ST_PLACE, got %q", got)
		}
	})

	t.Run("Idempotent On Identifier Inputs", func(t *testing.T) {
		inputs := []string{"borderLeft", "background-color", "BORDER_LEFT", "already_snake"}
		for _, in := range inputs {
			once := ToAllCaps(in)
			if twice := ToAllCaps(once); twice != once {
				t.Errorf("ToAllCaps not stable for %q: %q then %q", in, once, twice)
			}
		}
	})
}

func TestToTitle(t *testing.T) {
	t.Run("Separators Become Word Breaks", func(t *testing.T) {
		cases := map[string]string{
			"background-color": "Background Color",
			"border_left":      "Border Left",
			"border left":      "Border Left",
		}
		for in, want := range cases {
			if got := ToTitle(in); got != want {
				t.Errorf("ToTitle(%q) = %q, want %q", in, got, want)
			}
		}
	})

	t.Run("Camel Boundaries Become Word Breaks", func(t *testing.T) {
		if got := ToTitle("backgroundColor"); got != "Background Color" {
			t.Errorf("expected Background Color, got %q", got)
		}
	})

	t.Run("Acronym Followed By Word Splits", func(t *testing.T) {
		cases := map[string]string{
			"HTTPRequest":    "HTTP Request",
			"XMLHttpRequest": "XML Http Request",
		}
		for in, want := range cases {
			if got := ToTitle(in); got != want {
				t.Errorf("ToTitle(%q) = %q, want %q", in, got, want)
			}
		}
	})

	t.Run("Uncased Input Is Lowered First", func(t *testing.T) {
		if got := ToTitle("BACKGROUND_COLOR"); got != "Background Color" {
			t.Errorf("expected Background Color, got %q", got)
		}
	})

	t.Run("Whitespace Trimmed", func(t *testing.T) {
		if got := ToTitle("  background-color  "); got != "Background Color" {
			t.Errorf("expected Background Color, got %q", got)
		}
	})
}
