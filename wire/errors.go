package wire

import "errors"

// Rejections reported by the codec. Encode wraps them with the variant and
// field they concern.
var (
	ErrUnknownVariant   = errors.New("unknown variant")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrRecordMismatch   = errors.New("record mismatch")
	ErrMissingField     = errors.New("missing field")
	ErrUnexpectedField  = errors.New("unexpected field")
	ErrFieldKind        = errors.New("wrong field kind")
	ErrNulInString      = errors.New("string contains NUL byte")
	ErrNegativeClientID = errors.New("negative client id")
	ErrInputLength      = errors.New("input must hold exactly 10 values")
)
