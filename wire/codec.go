package wire

import (
	"bytes"
	"fmt"
)

// Encode returns the encoding of c.
func Encode(c Chunk) ([]byte, error) {
	return AppendChunk(nil, c)
}

// AppendChunk appends the encoding of c to dst. On error dst is returned
// unchanged.
func AppendChunk(dst []byte, c Chunk) ([]byte, error) {
	l, ok := layouts[c.Variant]
	if !ok {
		return dst, fmt.Errorf("%w: %q", ErrUnknownVariant, c.Variant)
	}

	if err := l.check(&c); err != nil {
		return dst, fmt.Errorf("%s: %w", c.Variant, err)
	}

	payload, err := l.appendFields(nil, &c)
	if err != nil {
		return dst, fmt.Errorf("%s: %w", c.Variant, err)
	}

	switch {
	case l.tagFromClientID:
		// The leading cid doubles as the tag.
		id, _ := c.Field("cid")
		if id.AsInt() < 0 {
			return dst, fmt.Errorf("%s: %w: %d", c.Variant, ErrNegativeClientID, id.AsInt())
		}

		return append(dst, payload...), nil
	case l.ext != "" || l.uuidFromField:
		id := ExtensionUUID(l.ext)
		if l.uuidFromField {
			v, _ := c.Field("uuid")
			id = v.AsUUID()
		}

		dst = PackInt(dst, tagExtension)
		dst = append(dst, id[:]...)
		dst = PackInt(dst, int32(len(payload)))

		return append(dst, payload...), nil
	default:
		dst = PackInt(dst, l.tag)

		return append(dst, payload...), nil
	}
}

// check validates the tree shape and field set against the layout.
func (l *layout) check(c *Chunk) error {
	if c.Shape != l.shape {
		return fmt.Errorf("%w: want %s, got %s", ErrShapeMismatch, l.shape, c.Shape)
	}

	if c.Record != l.record {
		return fmt.Errorf("%w: want %q, got %q", ErrRecordMismatch, l.record, c.Record)
	}

	for _, f := range c.Fields {
		if !l.accepts(f.Name) {
			return fmt.Errorf("%w: %q", ErrUnexpectedField, f.Name)
		}
	}

	for _, fl := range l.fields {
		v, ok := c.Field(fl.name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingField, fl.name)
		}

		if v.Kind() != fl.kind {
			return fmt.Errorf("%w: %q is %s, want %s", ErrFieldKind, fl.name, v.Kind(), fl.kind)
		}
	}

	if l.uuidFromField {
		v, ok := c.Field("uuid")
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingField, "uuid")
		}

		if v.Kind() != KindUUID {
			return fmt.Errorf("%w: %q is %s, want %s", ErrFieldKind, "uuid", v.Kind(), KindUUID)
		}
	}

	return nil
}

func (l *layout) accepts(name string) bool {
	if l.uuidFromField && name == "uuid" {
		return true
	}

	for _, fl := range l.fields {
		if fl.name == name {
			return true
		}
	}

	return false
}

func (l *layout) appendFields(dst []byte, c *Chunk) ([]byte, error) {
	var err error

	for _, fl := range l.fields {
		v, _ := c.Field(fl.name)

		dst, err = appendValue(dst, fl.enc, v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fl.name, err)
		}
	}

	return dst, nil
}

func appendValue(dst []byte, enc encoding, v Value) ([]byte, error) {
	switch enc {
	case encInt:
		return PackInt(dst, v.AsInt()), nil
	case encString:
		return appendString(dst, v.AsBytes())
	case encSized:
		dst = PackInt(dst, int32(len(v.AsBytes())))

		return append(dst, v.AsBytes()...), nil
	case encRest:
		return append(dst, v.AsBytes()...), nil
	case encUUID:
		u := v.AsUUID()

		return append(dst, u[:]...), nil
	case encInputs:
		if len(v.AsInts()) != InputSize {
			return nil, fmt.Errorf("%w: got %d", ErrInputLength, len(v.AsInts()))
		}

		for _, n := range v.AsInts() {
			dst = PackInt(dst, n)
		}

		return dst, nil
	case encArgs:
		args := v.AsBytesList()
		dst = PackInt(dst, int32(len(args)))

		var err error
		for _, a := range args {
			if dst, err = appendString(dst, a); err != nil {
				return nil, err
			}
		}

		return dst, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %d", enc)
	}
}

func appendString(dst []byte, s []byte) ([]byte, error) {
	if err := checkString(s); err != nil {
		return nil, err
	}

	dst = append(dst, s...)

	return append(dst, 0), nil
}

func checkString(s []byte) error {
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return fmt.Errorf("%w at offset %d", ErrNulInString, i)
	}

	return nil
}
