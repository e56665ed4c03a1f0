package stubs

import "text/template"

var stubTemplate = template.Must(template.New("stub").Parse(`# Type stubs for {{.Module}}
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
{{range .Categories}}
# {{.Name}} Chunks
{{range .Classes}}
class {{.Name}}(Chunk):
{{- range .DocLines}}
{{.}}
{{- end}}
{{- if .Fields}}
{{range .Fields}}
    {{.Name}}: {{.Type}}
{{- end}}
{{- end}}

    def __init__(self{{range .Fields}}, {{.Name}}: {{.Type}}{{end}}) -> None: ...
{{end}}{{end}}
# ============================================================================
# Type Aliases and Categories
# ============================================================================
{{range .Categories}}
{{.Alias}} = Union[
{{- range .Classes}}
    {{.Name}},
{{- end}}
]
{{end}}
# All chunk types
AllChunks = Union[
{{- range .All}}
    {{.}},
{{- end}}
]
`))
