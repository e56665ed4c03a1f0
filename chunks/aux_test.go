package chunks

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknown_InvalidIdentifierEncodesZero(t *testing.T) {
	data, err := NewUnknown("not-a-token", []byte{0x01, 0x02}).Encode()
	require.NoError(t, err)

	want := append([]byte{0x4a}, make([]byte, 16)...)
	want = append(want, 0x02, 0x01, 0x02)
	assert.Equal(t, want, data)
}

func TestUnknown_ValidIdentifier(t *testing.T) {
	id := uuid.MustParse("6bb8ba88-0f0b-382e-8dae-dbf4052b8b7d")

	data, err := NewUnknown(id.String(), nil).Encode()
	require.NoError(t, err)
	assert.Equal(t, id[:], data[1:17])
	assert.Equal(t, byte(0x00), data[17])
}

func TestCustomChunk_HandlerNameOnlyInObjectView(t *testing.T) {
	id := "6bb8ba88-0f0b-382e-8dae-dbf4052b8b7d"
	custom := NewCustomChunk(id, []byte{9}, "my_handler")
	unknown := NewUnknown(id, []byte{9})

	customData, err := custom.Encode()
	require.NoError(t, err)

	unknownData, err := unknown.Encode()
	require.NoError(t, err)

	assert.Equal(t, unknownData, customData)

	m := custom.ToMap()
	assert.Equal(t, []string{"type", "uuid", "data", "handler_name"}, m.Keys())

	v, _ := m.Get("handler_name")
	assert.Equal(t, "my_handler", v)
	assert.Contains(t, custom.String(), `handler_name="my_handler"`)
}

func TestGeneric_EncodesAsNetMessage(t *testing.T) {
	g := NewGeneric("hi")

	wc := g.WireChunk()
	assert.Equal(t, "NetMessage", wc.Variant)

	cid, ok := wc.Field("cid")
	require.True(t, ok)
	assert.Equal(t, GenericClientID, cid.AsInt())

	data, err := g.Encode()
	require.NoError(t, err)

	netMsg, err := NewNetMessage(-1, "hi").Encode()
	require.NoError(t, err)
	assert.Equal(t, netMsg, data)

	assert.Equal(t, `Generic(data="hi")`, g.String())
	assert.Equal(t, []string{"type", "data"}, g.ToMap().Keys())
}

func TestDataPreview(t *testing.T) {
	assert.Equal(t, "01 ab (2 bytes)", NewUnknown("", []byte{0x01, 0xab}).DataPreview())
	assert.Equal(t, " (0 bytes)", NewUnknown("", nil).DataPreview())

	long := make([]byte, 40)
	preview := NewCustomChunk("", long, "h").DataPreview()
	assert.True(t, strings.HasSuffix(preview, "... (40 bytes total)"))
	assert.Equal(t, 32, strings.Count(preview, "00"))
}
