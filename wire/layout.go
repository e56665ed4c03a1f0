package wire

import (
	"maps"
	"slices"
)

// encoding selects how a field is written.
type encoding int

const (
	encInt    encoding = iota // packed integer
	encString                 // NUL-terminated bytes
	encSized                  // packed length, then raw bytes
	encRest                   // raw bytes up to the end of the payload
	encUUID                   // 16 raw bytes
	encInputs                 // exactly InputSize packed integers
	encArgs                   // packed count, then NUL-terminated strings
)

// InputSize is the number of integers in a player input snapshot.
const InputSize = 10

type fieldLayout struct {
	name string
	kind Kind
	enc  encoding
}

// layout describes the accepted tree and byte layout of one variant.
type layout struct {
	shape  Shape
	record string
	// tag is the core chunk tag. Unused for extensions.
	tag int32
	// ext is the extension name; empty for core chunks.
	ext string
	// tagFromClientID writes the cid field as the tag (PlayerDiff).
	tagFromClientID bool
	// uuidFromField takes the extension identifier from the "uuid" field.
	uuidFromField bool
	fields        []fieldLayout
}

const (
	tagEos int32 = -1 - iota
	tagTickSkip
	tagPlayerNew
	tagPlayerOld
	tagInputDiff
	tagInputNew
	tagNetMessage
	tagJoin
	tagDrop
	tagConsoleCommand
	tagExtension
)

var (
	cid  = fieldLayout{"cid", KindInt, encInt}
	team = fieldLayout{"team", KindInt, encInt}
)

var layouts = map[string]layout{
	"Eos":      {shape: ShapeUnit, tag: tagEos},
	"TickSkip": {shape: ShapeInline, tag: tagTickSkip, fields: []fieldLayout{{"dt", KindInt, encInt}}},
	"PlayerNew": {shape: ShapeTuple, record: "PlayerNew", tag: tagPlayerNew, fields: []fieldLayout{
		cid, {"x", KindInt, encInt}, {"y", KindInt, encInt},
	}},
	"PlayerOld": {shape: ShapeInline, tag: tagPlayerOld, fields: []fieldLayout{cid}},
	"PlayerDiff": {shape: ShapeTuple, record: "PlayerDiff", tagFromClientID: true, fields: []fieldLayout{
		cid, {"dx", KindInt, encInt}, {"dy", KindInt, encInt},
	}},
	"InputDiff": {shape: ShapeTuple, record: "InputDiff", tag: tagInputDiff, fields: []fieldLayout{
		cid, {"dinput", KindInts, encInputs},
	}},
	"InputNew": {shape: ShapeTuple, record: "InputNew", tag: tagInputNew, fields: []fieldLayout{
		cid, {"input", KindInts, encInputs},
	}},
	"NetMessage": {shape: ShapeTuple, record: "NetMessage", tag: tagNetMessage, fields: []fieldLayout{
		cid, {"msg", KindBytes, encSized},
	}},
	"Join": {shape: ShapeInline, tag: tagJoin, fields: []fieldLayout{cid}},
	"Drop": {shape: ShapeTuple, record: "Drop", tag: tagDrop, fields: []fieldLayout{
		cid, {"reason", KindBytes, encString},
	}},
	"ConsoleCommand": {shape: ShapeTuple, record: "ConsoleCommand", tag: tagConsoleCommand, fields: []fieldLayout{
		cid, {"flags", KindInt, encInt}, {"cmd", KindBytes, encString}, {"args", KindBytesList, encArgs},
	}},
	"UnknownEx": {shape: ShapeTuple, record: "UnknownEx", uuidFromField: true, fields: []fieldLayout{
		{"data", KindBytes, encRest},
	}},

	"JoinVer6":    {shape: ShapeInline, ext: "teehistorian-joinver6@ddnet.tw", fields: []fieldLayout{cid}},
	"JoinVer7":    {shape: ShapeInline, ext: "teehistorian-joinver7@ddnet.tw", fields: []fieldLayout{cid}},
	"PlayerReady": {shape: ShapeInline, ext: "teehistorian-player-ready@ddnet.tw", fields: []fieldLayout{cid}},
	"PlayerTeam":  {shape: ShapeInline, ext: "teehistorian-player-team@ddnet.tw", fields: []fieldLayout{cid, team}},
	"PlayerName": {shape: ShapeTuple, record: "PlayerName", ext: "teehistorian-player-name@ddnet.tw", fields: []fieldLayout{
		cid, {"name", KindBytes, encString},
	}},
	"AuthInit":   {shape: ShapeTuple, record: "Auth", ext: "teehistorian-auth-init@ddnet.tw", fields: authFields},
	"AuthLogin":  {shape: ShapeTuple, record: "Auth", ext: "teehistorian-auth-login@ddnet.tw", fields: authFields},
	"AuthLogout": {shape: ShapeInline, ext: "teehistorian-auth-logout@ddnet.tw", fields: []fieldLayout{cid}},
	"DdnetVersion": {shape: ShapeTuple, record: "DdnetVersion", ext: "teehistorian-ddnetver@ddnet.tw", fields: []fieldLayout{
		cid, {"connection_id", KindUUID, encUUID}, {"version", KindInt, encInt}, {"version_str", KindBytes, encString},
	}},
	"TeamSaveSuccess": {shape: ShapeTuple, record: "TeamSave", ext: "teehistorian-save-success@ddnet.tw", fields: teamSaveFields},
	"TeamSaveFailure": {shape: ShapeInline, ext: "teehistorian-save-failure@ddnet.tw", fields: []fieldLayout{team}},
	"TeamLoadSuccess": {shape: ShapeTuple, record: "TeamSave", ext: "teehistorian-load-success@ddnet.tw", fields: teamSaveFields},
	"TeamLoadFailure": {shape: ShapeInline, ext: "teehistorian-load-failure@ddnet.tw", fields: []fieldLayout{team}},
	"Antibot": {shape: ShapeTuple, record: "Antibot", ext: "teehistorian-antibot@ddnet.tw", fields: []fieldLayout{
		{"data", KindBytes, encRest},
	}},
}

var authFields = []fieldLayout{cid, {"level", KindInt, encInt}, {"auth_name", KindBytes, encString}}

var teamSaveFields = []fieldLayout{team, {"save_id", KindUUID, encUUID}, {"save", KindBytes, encString}}

// Variants returns the known variant tags, sorted.
func Variants() []string {
	return slices.Sorted(maps.Keys(layouts))
}
