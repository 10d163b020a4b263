package models

import (
	"encoding/json"
	"testing"
)

func TestRefUnmarshalBareID(t *testing.T) {
	var r Ref
	if err := json.Unmarshal([]byte(`"60c72b2f9b1e8b0015f8e1a0"`), &r); err != nil {
		t.Fatalf("unmarshal bare ID: %v", err)
	}
	if r.ID != "60c72b2f9b1e8b0015f8e1a0" {
		t.Errorf("expected bare ID, got %q", r.ID)
	}
	if r.Populated() {
		t.Error("bare ID reference must not report populated")
	}
}

func TestRefUnmarshalPopulated(t *testing.T) {
	raw := []byte(`{"_id":"60c72b2f9b1e8b0015f8e1a0","name":"Priya Sharma","email":"priya@example.com"}`)

	var r Ref
	if err := json.Unmarshal(raw, &r); err != nil {
		t.Fatalf("unmarshal populated ref: %v", err)
	}
	if r.ID != "60c72b2f9b1e8b0015f8e1a0" {
		t.Errorf("expected _id extracted, got %q", r.ID)
	}
	if !r.Populated() {
		t.Fatal("expected populated reference")
	}

	var u User
	ok, err := r.Decode(&u)
	if err != nil || !ok {
		t.Fatalf("decode populated doc: ok=%v err=%v", ok, err)
	}
	if u.Name != "Priya Sharma" {
		t.Errorf("expected decoded name, got %q", u.Name)
	}
}

func TestRefMarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(NewRef("abc123"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"abc123"` {
		t.Errorf("expected bare ID on the wire, got %s", out)
	}

	// A populated ref re-marshals to the original document.
	raw := `{"_id":"abc123","name":"x"}`
	var r Ref
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err = json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal populated: %v", err)
	}
	if string(out) != raw {
		t.Errorf("expected %s, got %s", raw, out)
	}
}

func TestRefUnmarshalNull(t *testing.T) {
	r := NewRef("stale")
	if err := json.Unmarshal([]byte(`null`), &r); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if r.ID != "" || r.Populated() {
		t.Errorf("expected cleared ref, got %+v", r)
	}
}
