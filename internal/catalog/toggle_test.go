package catalog

import "testing"

func TestToggle(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		requested string
		want      string
	}{
		{"select from none", NoCategory, "Tops", "Tops"},
		{"same category clears", "Tops", "Tops", NoCategory},
		{"switch category", "Tops", "Bottoms", "Bottoms"},
		{"none requested while none", NoCategory, NoCategory, NoCategory},
		{"none requested while selected", "Tops", NoCategory, NoCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Toggle(tt.current, tt.requested); got != tt.want {
				t.Errorf("Toggle(%q, %q) = %q, want %q", tt.current, tt.requested, got, tt.want)
			}
		})
	}
}

func TestToggle_Symmetry(t *testing.T) {
	for _, cat := range Reference().Categories() {
		if got := Toggle(Toggle(NoCategory, cat.Name), cat.Name); got != NoCategory {
			t.Errorf("Toggle(Toggle(none, %q), %q) = %q, want none", cat.Name, cat.Name, got)
		}
	}
}

func TestSelector(t *testing.T) {
	s := NewSelector()
	if s.Current() != NoCategory {
		t.Fatalf("new selector current = %q, want none", s.Current())
	}

	if got := s.Toggle("Tops"); got != "Tops" {
		t.Errorf("Toggle(Tops) = %q, want Tops", got)
	}
	if got := s.Toggle("Outerwear"); got != "Outerwear" {
		t.Errorf("Toggle(Outerwear) = %q, want Outerwear", got)
	}
	if got := s.Toggle("Outerwear"); got != NoCategory {
		t.Errorf("second Toggle(Outerwear) = %q, want none", got)
	}

	s.Toggle("Dresses")
	s.Clear()
	if s.Current() != NoCategory {
		t.Errorf("after Clear current = %q, want none", s.Current())
	}

	var zero Selector
	if zero.Toggle("Tops") != "Tops" {
		t.Error("zero-value selector should start with no selection")
	}
}
