package models

import "encoding/json"

// Ref is a Mongo-style document reference. Depending on the endpoint the
// backend returns it either as a bare hex ID string or as a populated
// sub-document (e.g. GET /api/orders/:id populates userId and productId).
// Outgoing requests always marshal to the bare ID.
type Ref struct {
	ID  string
	doc json.RawMessage
}

// NewRef creates an unpopulated reference to the given ID.
func NewRef(id string) Ref {
	return Ref{ID: id}
}

// Populated reports whether the backend returned a full sub-document
// rather than a bare ID.
func (r Ref) Populated() bool {
	return len(r.doc) > 0
}

// Decode unmarshals the populated sub-document into v. Returns false when
// the reference was a bare ID.
func (r Ref) Decode(v any) (bool, error) {
	if !r.Populated() {
		return false, nil
	}
	if err := json.Unmarshal(r.doc, v); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*r = Ref{}
		return nil
	}
	if b[0] == '"' {
		r.doc = nil
		return json.Unmarshal(b, &r.ID)
	}
	var probe struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	r.ID = probe.ID
	r.doc = append(r.doc[:0:0], b...)
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Populated() {
		return r.doc, nil
	}
	return json.Marshal(r.ID)
}
