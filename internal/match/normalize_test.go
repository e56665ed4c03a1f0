package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"_", nil},
		{"client_id", []string{"client", "id"}},
		{"clientID", []string{"client", "id"}},
		{"ClientId", []string{"client", "id"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"JoinVer6", []string{"join", "ver6"}},
		{"Ver6Join", []string{"ver6", "join"}},
		{"save_load-ID", []string{"save", "load", "id"}},
		{"__dx", []string{"dx"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.input))
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ClientID", "clientid"},
		{"client_id", "clientid"},
		{"client-id", "clientid"},
		{"clientId", "clientid"},
		{"CLIENTID", "clientid"},
		{"AUTH_NAME", "authname"},
		{"Auth_Name", "authname"},
		{"TeamSave", "teamsave"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdent(tt.input))
		})
	}
}

func TestGoName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"client_id", "ClientID"},
		{"auth_name", "AuthName"},
		{"connection_id", "ConnectionID"},
		{"version_str", "VersionStr"},
		{"save_id", "SaveID"},
		{"uuid", "UUID"},
		{"dx", "Dx"},
		{"handler_name", "HandlerName"},
		{"input", "Input"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, GoName(tt.input))
		})
	}
}

func TestLocalName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"client_id", "clientID"},
		{"auth_name", "authName"},
		{"msg", "msg"},
		{"version_str", "versionStr"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalName(tt.input))
		})
	}
}
