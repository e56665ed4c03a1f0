package wire

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inputs(n int) []int32 {
	return make([]int32, n)
}

func TestEncode_CoreChunks(t *testing.T) {
	tests := []struct {
		name  string
		chunk Chunk
		want  []byte
	}{
		{
			name:  "eos",
			chunk: Chunk{Variant: "Eos", Shape: ShapeUnit},
			want:  []byte{0x40},
		},
		{
			name:  "join",
			chunk: Chunk{Variant: "Join", Shape: ShapeInline, Fields: []Field{{"cid", Int(5)}}},
			want:  []byte{0x47, 0x05},
		},
		{
			name:  "tick skip",
			chunk: Chunk{Variant: "TickSkip", Shape: ShapeInline, Fields: []Field{{"dt", Int(3)}}},
			want:  []byte{0x41, 0x03},
		},
		{
			name: "player diff uses cid as tag",
			chunk: Chunk{Variant: "PlayerDiff", Record: "PlayerDiff", Shape: ShapeTuple, Fields: []Field{
				{"cid", Int(3)}, {"dx", Int(1)}, {"dy", Int(-1)},
			}},
			want: []byte{0x03, 0x01, 0x40},
		},
		{
			name: "drop",
			chunk: Chunk{Variant: "Drop", Record: "Drop", Shape: ShapeTuple, Fields: []Field{
				{"cid", Int(1)}, {"reason", Bytes([]byte("hi"))},
			}},
			want: []byte{0x48, 0x01, 'h', 'i', 0},
		},
		{
			name: "net message is size prefixed",
			chunk: Chunk{Variant: "NetMessage", Record: "NetMessage", Shape: ShapeTuple, Fields: []Field{
				{"cid", Int(-1)}, {"msg", Bytes([]byte{0, 1, 2})},
			}},
			want: []byte{0x46, 0x40, 0x03, 0, 1, 2},
		},
		{
			name: "console command",
			chunk: Chunk{Variant: "ConsoleCommand", Record: "ConsoleCommand", Shape: ShapeTuple, Fields: []Field{
				{"cid", Int(0)}, {"flags", Int(1)}, {"cmd", Bytes([]byte("say"))},
				{"args", BytesList([][]byte{[]byte("a b")})},
			}},
			want: []byte{0x49, 0x00, 0x01, 's', 'a', 'y', 0, 0x01, 'a', ' ', 'b', 0},
		},
		{
			name: "input new",
			chunk: Chunk{Variant: "InputNew", Record: "InputNew", Shape: ShapeTuple, Fields: []Field{
				{"cid", Int(2)}, {"input", Ints(inputs(InputSize))},
			}},
			want: []byte{0x45, 0x02, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.chunk)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_Extension(t *testing.T) {
	c := Chunk{Variant: "JoinVer6", Shape: ShapeInline, Fields: []Field{{"cid", Int(2)}}}

	got, err := Encode(c)
	require.NoError(t, err)

	id := ExtensionUUID("teehistorian-joinver6@ddnet.tw")

	want := []byte{0x4a}
	want = append(want, id[:]...)
	want = append(want, 0x01, 0x02)
	assert.Equal(t, want, got)
}

func TestEncode_UnknownExtensionUsesFieldUUID(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	c := Chunk{Variant: "UnknownEx", Record: "UnknownEx", Shape: ShapeTuple, Fields: []Field{
		{"uuid", UUID(id)}, {"data", Bytes([]byte{9, 8})},
	}}

	got, err := Encode(c)
	require.NoError(t, err)

	want := []byte{0x4a}
	want = append(want, id[:]...)
	want = append(want, 0x02, 9, 8)
	assert.Equal(t, want, got)
}

func TestEncode_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		chunk Chunk
		want  error
	}{
		{"unknown variant", Chunk{Variant: "Nope", Shape: ShapeUnit}, ErrUnknownVariant},
		{"shape", Chunk{Variant: "Join", Shape: ShapeTuple, Record: "Join", Fields: []Field{{"cid", Int(1)}}}, ErrShapeMismatch},
		{"record", Chunk{Variant: "AuthLogin", Record: "AuthLogin", Shape: ShapeTuple}, ErrRecordMismatch},
		{"missing", Chunk{Variant: "Join", Shape: ShapeInline}, ErrMissingField},
		{"unexpected", Chunk{Variant: "Join", Shape: ShapeInline, Fields: []Field{{"cid", Int(1)}, {"x", Int(1)}}}, ErrUnexpectedField},
		{"kind", Chunk{Variant: "Join", Shape: ShapeInline, Fields: []Field{{"cid", Bytes(nil)}}}, ErrFieldKind},
		{"nul", Chunk{Variant: "Drop", Record: "Drop", Shape: ShapeTuple, Fields: []Field{
			{"cid", Int(1)}, {"reason", Bytes([]byte{'a', 0})},
		}}, ErrNulInString},
		{"negative diff cid", Chunk{Variant: "PlayerDiff", Record: "PlayerDiff", Shape: ShapeTuple, Fields: []Field{
			{"cid", Int(-1)}, {"dx", Int(0)}, {"dy", Int(0)},
		}}, ErrNegativeClientID},
		{"input length", Chunk{Variant: "InputDiff", Record: "InputDiff", Shape: ShapeTuple, Fields: []Field{
			{"cid", Int(1)}, {"dinput", Ints(inputs(3))},
		}}, ErrInputLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := []byte{1, 2, 3}

			got, err := AppendChunk(dst, tt.chunk)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, []byte{1, 2, 3}, got)
		})
	}
}

func TestExtensionUUID(t *testing.T) {
	a := ExtensionUUID("teehistorian-auth-login@ddnet.tw")
	b := ExtensionUUID("teehistorian-auth-login@ddnet.tw")
	c := ExtensionUUID("teehistorian-auth-init@ddnet.tw")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, uuid.Version(3), a.Version())
	assert.Equal(t, uuid.RFC4122, a.Variant())
}

func TestAppendHeader(t *testing.T) {
	got, err := AppendHeader(nil, []byte(`{"version":"2"}`))
	require.NoError(t, err)

	assert.Equal(t, HeaderMagic[:], got[:16])
	assert.Equal(t, `{"version":"2"}`, string(got[16:len(got)-1]))
	assert.Equal(t, byte(0), got[len(got)-1])

	_, err = AppendHeader(nil, []byte{'{', 0, '}'})
	require.ErrorIs(t, err, ErrNulInString)
}

func TestVariants_Sorted(t *testing.T) {
	v := Variants()
	assert.IsNonDecreasing(t, v)
	assert.Contains(t, v, "UnknownEx")
	assert.Contains(t, v, "Antibot")
}
