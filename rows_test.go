package speql

import (
	"bytes"
	"testing"
)

func TestRowAccessors(t *testing.T) {
	row := Row{
		"name":    []byte("bob"),
		"city":    "tel aviv",
		"age":     int64(44),
		"ratio":   2.5,
		"active":  int64(1),
		"blob":    []byte{0x1, 0x2},
		"deleted": nil,
	}

	if row.String("name") != "bob" {
		t.Errorf("expected byte column as string, got %q", row.String("name"))
	}
	if row.String("city") != "tel aviv" {
		t.Errorf("expected string column, got %q", row.String("city"))
	}
	if row.Int("age") != 44 {
		t.Errorf("expected 44, got %d", row.Int("age"))
	}
	if row.Float("ratio") != 2.5 {
		t.Errorf("expected 2.5, got %f", row.Float("ratio"))
	}
	if !row.Bool("active") {
		t.Errorf("expected a non-zero numeric column to read as true")
	}
	if !bytes.Equal(row.Bytes("blob"), []byte{0x1, 0x2}) {
		t.Errorf("expected raw bytes back, got %v", row.Bytes("blob"))
	}
	if !row.Null("deleted") {
		t.Errorf("expected a NULL column to report as null")
	}
	if row.Null("missing") {
		t.Errorf("expected a missing column not to report as null")
	}

	// textual numerics parse
	if (Row{"n": []byte("17")}).Int("n") != 17 {
		t.Errorf("expected textual integer to parse")
	}
	if (Row{"f": "1.25"}).Float("f") != 1.25 {
		t.Errorf("expected textual float to parse")
	}
}
