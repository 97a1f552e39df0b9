package fieldmeta

import "slices"

// Meta is an ordered sequence of metadata attached to a field declaration.
// Elements are opaque to the sequence itself: validators and transformers are
// picked out by capability, anything else (descriptions, tags) rides along
// untouched. A nested Meta element is treated as an inlined sub-sequence, so a
// named Meta value works as a reusable rule set shared between fields.
type Meta []any

// Validators returns the validator-capable elements in attachment order,
// descending into nested Meta values.
func (m Meta) Validators() []Validator {
	var out []Validator
	for _, item := range m {
		switch v := item.(type) {
		case Validator:
			out = append(out, v)
		case Meta:
			out = append(out, v.Validators()...)
		}
	}
	return out
}

// Transformers returns the transformer-capable elements in attachment order,
// descending into nested Meta values.
func (m Meta) Transformers() []Transformer {
	var out []Transformer
	for _, item := range m {
		switch t := item.(type) {
		case Transformer:
			out = append(out, t)
		case Meta:
			out = append(out, t.Transformers()...)
		}
	}
	return out
}

// MetaCarrier is implemented by declarations that carry a metadata sequence.
type MetaCarrier interface {
	Metadata() Meta
}

// MetadataOf returns the metadata sequence attached to a declaration. For a
// plain value with nothing attached it returns (nil, false).
func MetadataOf(v any) (Meta, bool) {
	switch m := v.(type) {
	case Meta:
		return m, true
	case MetaCarrier:
		return m.Metadata(), true
	}
	return nil, false
}

// Field describes one declared model field: its name and attached metadata.
// Built once at type-declaration time and immutable afterwards.
type Field struct {
	name string
	meta Meta
}

// NewField declares a field with the given name and attached metadata. The
// sequence is copied, so later changes to the arguments do not leak in.
func NewField(name string, meta ...any) Field {
	return Field{name: name, meta: Meta(slices.Clone(meta))}
}

func (f Field) Name() string {
	return f.name
}

// Metadata returns the attached sequence in attachment order. The empty
// sequence means the field was declared without metadata.
func (f Field) Metadata() Meta {
	return slices.Clone(f.meta)
}
