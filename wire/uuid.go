package wire

import "github.com/google/uuid"

// Namespace of all teehistorian identifiers.
var Namespace = uuid.MustParse("e05ddaaa-c4e6-4cfb-b642-5d48e80c0029")

// HeaderMagic starts every teehistorian file.
var HeaderMagic = uuid.MustParse("699db17b-8efb-34ff-b1d8-da6f60c15dd1")

// ExtensionUUID derives the UUIDv3 identifying an extension chunk, e.g.
// "teehistorian-joinver6@ddnet.tw".
func ExtensionUUID(name string) uuid.UUID {
	return uuid.NewMD5(Namespace, []byte(name))
}

// AppendHeader appends the file magic and the NUL-terminated JSON header.
func AppendHeader(dst []byte, header []byte) ([]byte, error) {
	if err := checkString(header); err != nil {
		return dst, err
	}

	dst = append(dst, HeaderMagic[:]...)
	dst = append(dst, header...)

	return append(dst, 0), nil
}
