package schema

// Declarations is the chunk catalog. Keep every entry a plain literal: the
// reflector reads this file as text and skips entries it cannot evaluate.
var Declarations = []ChunkDeclaration{
	// Player lifecycle
	{
		Name:  "Join",
		Shape: ShapeInlineStruct,
		Doc:   "Player joins the server\nCategory: PlayerLifecycle",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
		},
	},
	{
		Name:  "JoinVer6",
		Shape: ShapeInlineStruct,
		Doc:   "Player joins with version 6 protocol\nCategory: PlayerLifecycle",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
		},
	},
	{
		Name:  "JoinVer7",
		Shape: ShapeInlineStruct,
		Doc:   "Player joins with version 7 protocol\nCategory: PlayerLifecycle",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
		},
	},
	{
		Name:  "PlayerReady",
		Shape: ShapeInlineStruct,
		Doc:   "Player becomes ready to play\nCategory: PlayerLifecycle",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
		},
	},
	{
		Name:  "Drop",
		Shape: ShapeTupleVariant,
		Doc:   "Player disconnects from server\nCategory: PlayerLifecycle",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "reason", Type: "string", Conversion: ConvStringToBytes},
		},
	},

	// Player state
	{
		Name:  "PlayerNew",
		Shape: ShapeTupleVariant,
		Doc:   "New player spawn position\nCategory: PlayerState",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "x", Type: "int32"},
			{Name: "y", Type: "int32"},
		},
	},
	{
		Name:  "PlayerOld",
		Shape: ShapeInlineStruct,
		Doc:   "Player leaves game (but not server)\nCategory: PlayerState",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
		},
	},
	{
		Name:  "PlayerTeam",
		Shape: ShapeInlineStruct,
		Doc:   "Player changes team\nCategory: PlayerState",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "team", Type: "int32"},
		},
	},
	{
		Name:  "PlayerName",
		Shape: ShapeTupleVariant,
		Doc:   "Player changes name\nCategory: PlayerState",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "name", Type: "string", Conversion: ConvStringToBytes},
		},
	},
	{
		Name:  "PlayerDiff",
		Shape: ShapeTupleVariant,
		Doc:   "Player position difference/update\nCategory: PlayerState",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "dx", Type: "int32"},
			{Name: "dy", Type: "int32"},
		},
	},

	// Input
	{
		Name:  "InputNew",
		Shape: ShapeTupleVariant,
		Doc:   "New player input state\nCategory: Input",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "input", Type: "[]int32", Bound: 10},
		},
	},
	{
		Name:  "InputDiff",
		Shape: ShapeTupleVariant,
		Doc:   "Player input difference from previous state\nCategory: Input",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "input", Type: "[]int32", Wire: "dinput", Bound: 10},
		},
	},

	// Communication
	{
		Name:  "NetMessage",
		Shape: ShapeTupleVariant,
		Doc:   "Network message from/to player\nCategory: Communication",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "msg", Type: "string", Conversion: ConvStringToBytes},
		},
	},
	{
		Name:  "ConsoleCommand",
		Shape: ShapeTupleVariant,
		Doc:   "Console command executed by player\nCategory: Communication",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "flags", Type: "int32"},
			{Name: "cmd", Type: "string", Conversion: ConvStringToBytes},
			{Name: "args", Type: "string", Conversion: ConvWrapAsSingleArgToken},
		},
	},

	// Authentication and version
	{
		Name:   "AuthInit",
		Shape:  ShapeTupleVariantNamedStruct,
		Record: "Auth",
		Doc:    "Player authenticated on join\nCategory: Authentication",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "level", Type: "int32"},
			{Name: "auth_name", Type: "string", Conversion: ConvStringToBytes},
		},
	},
	{
		Name:   "AuthLogin",
		Shape:  ShapeTupleVariantNamedStruct,
		Record: "Auth",
		Doc:    "Player authentication/login\nCategory: Authentication",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "level", Type: "int32"},
			{Name: "auth_name", Type: "string", Conversion: ConvStringToBytes},
		},
	},
	{
		Name:  "AuthLogout",
		Shape: ShapeInlineStruct,
		Doc:   "Player logs out of the authentication system\nCategory: Authentication",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
		},
	},
	{
		Name:  "DdnetVersion",
		Shape: ShapeTupleVariant,
		Doc:   "DDNet client version information\nCategory: Authentication",
		Fields: []FieldSpec{
			{Name: "client_id", Type: "int32", Wire: "cid"},
			{Name: "connection_id", Type: "string", Conversion: ConvParseIdentifierWithZeroDefault},
			{Name: "version", Type: "int32"},
			{Name: "version_str", Type: "[]byte", Conversion: ConvListToBorrowedView},
		},
	},

	// Server events
	{
		Name:  "TickSkip",
		Shape: ShapeInlineStruct,
		Doc:   "Server tick skip (time advancement)\nCategory: ServerEvent",
		Fields: []FieldSpec{
			{Name: "dt", Type: "int32"},
		},
	},
	{
		Name:   "TeamSaveSuccess",
		Shape:  ShapeTupleVariantNamedStruct,
		Record: "TeamSave",
		Doc:    "Team state saved successfully\nCategory: ServerEvent",
		Fields: []FieldSpec{
			{Name: "team", Type: "int32"},
			{Name: "save_id", Type: "string", Conversion: ConvParseIdentifierWithZeroDefault},
			{Name: "save", Type: "string", Conversion: ConvStringToBytes},
		},
	},
	{
		Name:  "TeamSaveFailure",
		Shape: ShapeInlineStruct,
		Doc:   "Team save failed\nCategory: ServerEvent",
		Fields: []FieldSpec{
			{Name: "team", Type: "int32"},
		},
	},
	{
		Name:   "TeamLoadSuccess",
		Shape:  ShapeTupleVariantNamedStruct,
		Record: "TeamSave",
		Doc:    "Team save loaded successfully\nCategory: ServerEvent",
		Fields: []FieldSpec{
			{Name: "team", Type: "int32"},
			{Name: "save_id", Type: "string", Conversion: ConvParseIdentifierWithZeroDefault},
			{Name: "save", Type: "string", Conversion: ConvStringToBytes},
		},
	},
	{
		Name:  "TeamLoadFailure",
		Shape: ShapeInlineStruct,
		Doc:   "Team save load failed\nCategory: ServerEvent",
		Fields: []FieldSpec{
			{Name: "team", Type: "int32"},
		},
	},
	{
		Name:    "AntiBot",
		Shape:   ShapeTupleVariant,
		Variant: "Antibot",
		Doc:     "Anti-bot system event\nCategory: ServerEvent",
		Fields: []FieldSpec{
			{Name: "data", Type: "string", Conversion: ConvStringToBytes},
		},
	},

	// Special
	{
		Name:  "Eos",
		Shape: ShapeUnitVariant,
		Doc:   "End of stream marker\nCategory: Special",
	},
}
