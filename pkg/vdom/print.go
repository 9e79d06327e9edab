package vdom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sprint renders a node tree as indented text, one node per line. Property
// keys are sorted so the output is deterministic. Useful for debugging and
// golden tests.
func Sprint(n Node) string {
	var sb strings.Builder
	sprintNode(&sb, n, 0)
	return sb.String()
}

func sprintNode(sb *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch typed := n.(type) {
	case nil:
		sb.WriteString(indent)
		sb.WriteString("<nil>\n")
	case Text:
		sb.WriteString(indent)
		sb.WriteString(strconv.Quote(string(typed)))
		sb.WriteString("\n")
	case *VNode:
		sb.WriteString(indent)
		sb.WriteString("<")
		sb.WriteString(typed.Tag)
		for _, key := range sortedKeys(typed.Properties) {
			fmt.Fprintf(sb, " %s=%v", key, typed.Properties[key])
		}
		sb.WriteString(">\n")
		for _, child := range typed.Children {
			sprintNode(sb, child, depth+1)
		}
	default:
		sb.WriteString(indent)
		fmt.Fprintf(sb, "%v\n", n)
	}
}

func sortedKeys(props Props) []string {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
