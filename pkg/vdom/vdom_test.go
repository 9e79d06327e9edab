package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestH_NormalizesNilProps(t *testing.T) {
	node := H("div", nil)

	require.NotNil(t, node.Properties)
	assert.Empty(t, node.Properties)
	assert.Equal(t, "div", node.Tag)
}

func TestSame_TextByValue(t *testing.T) {
	assert.True(t, Same(Text("x"), Text("x")))
	assert.False(t, Same(Text("x"), Text("y")))
}

func TestSame_VNodeByIdentity(t *testing.T) {
	a := H("div", nil)
	b := H("div", nil)

	assert.True(t, Same(a, a))
	assert.False(t, Same(a, b), "structurally equal vnodes are distinct children")
}

func TestSame_Nil(t *testing.T) {
	assert.True(t, Same(nil, nil))
	assert.False(t, Same(nil, Text("x")))
	assert.False(t, Same(Text("x"), nil))
}

func TestSameChildren(t *testing.T) {
	shared := H("span", nil)

	tests := []struct {
		name     string
		a, b     []Node
		expected bool
	}{
		{"both empty", []Node{}, []Node{}, true},
		{"nil and empty", nil, []Node{}, true},
		{"equal text", []Node{Text("x")}, []Node{Text("x")}, true},
		{"shared reference", []Node{shared}, []Node{shared}, true},
		{"different length", []Node{Text("x")}, []Node{Text("x"), Text("y")}, false},
		{"different order", []Node{Text("x"), Text("y")}, []Node{Text("y"), Text("x")}, false},
		{"distinct vnodes", []Node{H("div", nil)}, []Node{H("div", nil)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SameChildren(tt.a, tt.b))
		})
	}
}
