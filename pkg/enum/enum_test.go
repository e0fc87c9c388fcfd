package enum

import "testing"

func TestValueOfAndNameOf(t *testing.T) {
	c := NewClass("PLAY_MODE", []Member{
		{Name: "FWD", Value: 0x00},
		{Name: "REV", Value: 0x01},
	})

	v, err := c.ValueOf("REV")
	if err != nil || v != 1 {
		t.Fatalf("ValueOf(REV) = (%d, %v), want (1, nil)", v, err)
	}

	n, err := c.NameOf(0)
	if err != nil || n != "FWD" {
		t.Fatalf("NameOf(0) = (%q, %v), want (FWD, nil)", n, err)
	}
}

func TestUnknownName(t *testing.T) {
	c := NewClass("PLAY_MODE", []Member{{Name: "FWD", Value: 0}})
	if _, err := c.ValueOf("NOPE"); err == nil {
		t.Fatal("expected UnknownEnumNameError")
	} else if _, ok := err.(*UnknownEnumNameError); !ok {
		t.Fatalf("got %T, want *UnknownEnumNameError", err)
	}
}

func TestUnknownValue(t *testing.T) {
	c := NewClass("PLAY_MODE", []Member{{Name: "FWD", Value: 0}})
	if _, err := c.NameOf(99); err == nil {
		t.Fatal("expected UnknownEnumValueError")
	} else if _, ok := err.(*UnknownEnumValueError); !ok {
		t.Fatalf("got %T, want *UnknownEnumValueError", err)
	}
}
