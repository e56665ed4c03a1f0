package stubs

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teehistorian-gen/internal/reflector"
)

const wantSmallStub = `# Type stubs for teehistorian_py._rust
# Code generated by chunkgen. DO NOT EDIT.

from typing import (
    Any,
    Dict,
    List,
    Optional,
    Union,
)

# ============================================================================
# Chunk Types
# ============================================================================

class Chunk:
    """Base class for all teehistorian chunk types."""

    def chunk_type(self) -> str: ...
    def __repr__(self) -> str: ...
    def __str__(self) -> str: ...
    def to_dict(self) -> Dict[str, Any]: ...

# PlayerLifecycle Chunks

class Join(Chunk):
    """Player joins the server
    Category: PlayerLifecycle
    """

    client_id: int

    def __init__(self, client_id: int) -> None: ...

# Special Chunks

class Eos(Chunk):
    """End of stream marker"""

    def __init__(self) -> None: ...

# ============================================================================
# Type Aliases and Categories
# ============================================================================

PlayerLifecycleChunk = Union[
    Join,
]

SpecialChunk = Union[
    Eos,
]

# All chunk types
AllChunks = Union[
    Eos,
    Join,
]
`

func smallRecords() []reflector.Record {
	return []reflector.Record{
		{
			Name:     "Join",
			Doc:      "Player joins the server\nCategory: PlayerLifecycle",
			Category: "PlayerLifecycle",
			Fields:   []reflector.Field{{Name: "client_id", Type: "int32"}},
		},
		{
			Name:     "Eos",
			Doc:      "End of stream marker",
			Category: "Special",
		},
	}
}

func TestEmitter_Emit(t *testing.T) {
	out, err := NewEmitter("", nil).Emit(smallRecords())
	require.NoError(t, err)
	assert.Equal(t, wantSmallStub, string(out))
}

func TestEmitter_Emit_Deterministic(t *testing.T) {
	records := smallRecords()
	records = append(records,
		reflector.Record{Name: "Drop", Category: "PlayerLifecycle", Fields: []reflector.Field{
			{Name: "client_id", Type: "int32"},
			{Name: "reason", Type: "string"},
		}},
		reflector.Record{Name: "Unknown", Category: "Other", Fields: []reflector.Field{
			{Name: "uuid", Type: "string"},
			{Name: "data", Type: "[]byte"},
		}},
	)

	e := NewEmitter("", nil)

	first, err := e.Emit(records)
	require.NoError(t, err)

	reversed := slices.Clone(records)
	slices.Reverse(reversed)

	second, err := e.Emit(reversed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEmitter_Emit_CategoryUnions(t *testing.T) {
	records := []reflector.Record{
		{Name: "Drop", Category: "PlayerLifecycle"},
		{Name: "Join", Category: "PlayerLifecycle"},
		{Name: "Generic"},
		{Name: "TickSkip", Category: "ServerEvent"},
	}

	out, err := NewEmitter("", nil).Emit(records)
	require.NoError(t, err)

	content := string(out)

	assert.Contains(t, content, "PlayerLifecycleChunk = Union[\n    Drop,\n    Join,\n]")
	assert.Contains(t, content, "OtherChunk = Union[\n    Generic,\n]")
	assert.Contains(t, content, "ServerEventChunk = Union[\n    TickSkip,\n]")
	assert.Contains(t, content, "AllChunks = Union[\n    Drop,\n    Generic,\n    Join,\n    TickSkip,\n]")

	// categories appear sorted
	other := strings.Index(content, "# Other Chunks")
	lifecycle := strings.Index(content, "# PlayerLifecycle Chunks")
	server := strings.Index(content, "# ServerEvent Chunks")
	assert.True(t, other < lifecycle && lifecycle < server)

	// every record is declared once
	for _, rec := range records {
		assert.Equal(t, 1, strings.Count(content, "class "+rec.Name+"(Chunk):"), rec.Name)
	}
}

func TestEmitter_Emit_Class(t *testing.T) {
	records := []reflector.Record{{
		Name:     "Sensor",
		Category: "Testing",
		Fields: []reflector.Field{
			{Name: "from", Type: "int32"},
			{Name: "input", Type: "[]int32"},
			{Name: "extra", Type: "map[string]string"},
			{Name: "maybe", Type: "*string"},
			{Name: "when", Type: "time.Time"},
		},
	}}

	out, err := NewEmitter("demo._ext", nil).Emit(records)
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "# Type stubs for demo._ext\n")
	assert.Contains(t, content, `    """Chunk type: Sensor"""`)
	assert.Contains(t, content, "    from_: int\n    input: List[int]\n    extra: Dict[Any, Any]\n    maybe: Optional[str]\n    when: Any\n")
	assert.Contains(t, content,
		"    def __init__(self, from_: int, input: List[int], extra: Dict[Any, Any], maybe: Optional[str], when: Any) -> None: ...")
}

func TestEmitter_Emit_NoRecords(t *testing.T) {
	_, err := NewEmitter("", nil).Emit(nil)
	require.ErrorIs(t, err, ErrNoRecords)
}

func TestDocstring(t *testing.T) {
	assert.Equal(t, []string{`    """Chunk type: X"""`}, docstring("X", " "))
	assert.Equal(t, []string{`    """one"""`}, docstring("X", "one"))
	assert.Equal(t, []string{`    """a`, "", `    b`, `    """`}, docstring("X", "a\n\nb"))
	assert.Equal(t, []string{`    """say \"\"\"hi\"\"\" \\ done"""`}, docstring("X", `say """hi""" \ done`))
}
