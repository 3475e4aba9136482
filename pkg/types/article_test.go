// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{name: "bool true", input: `true`, want: true},
		{name: "bool false", input: `false`, want: false},
		{name: "number one", input: `1`, want: true},
		{name: "number zero", input: `0`, want: false},
		{name: "float nonzero", input: `1.0`, want: true},
		{name: "string true", input: `"true"`, want: true},
		{name: "string False", input: `"False"`, want: false},
		{name: "string one", input: `"1"`, want: true},
		{name: "garbage", input: `"maybe"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b FlexBool
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Bool())
		})
	}
}

func TestIdentifier_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Identifier
	}{
		{name: "string", input: `"abc-123"`, want: "abc-123"},
		{name: "integer", input: `42`, want: "42"},
		{name: "large integer stays exact", input: `9007199254740993`, want: "9007199254740993"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id Identifier
			require.NoError(t, json.Unmarshal([]byte(tt.input), &id))
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestArticle_MissingLabel(t *testing.T) {
	var a Article
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "title": "hello"}`), &a))
	assert.Nil(t, a.IsFake)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "is_fake": false}`), &a))
	require.NotNil(t, a.IsFake)
	assert.False(t, a.IsFake.Bool())
}
