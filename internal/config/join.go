package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// joinPath is a string that additionally understands the !join YAML tag: a
// sequence whose scalar items are concatenated in order. The analysts build
// long network-share paths from an anchored prefix, so config files look
// like:
//
//	paths:
//	  root: &root //farm01/comercial/2026
//	  sellin: !join [*root, /sellin/base_sellin.xlsx]
type joinPath string

func (p *joinPath) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!join" {
		if node.Kind != yaml.SequenceNode {
			return fmt.Errorf("line %d: !join expects a sequence", node.Line)
		}
		var sb strings.Builder
		for _, item := range node.Content {
			if item.Kind == yaml.AliasNode {
				item = item.Alias
			}
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: !join accepts scalar items only", item.Line)
			}
			sb.WriteString(item.Value)
		}
		*p = joinPath(sb.String())
		return nil
	}

	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a string or a !join sequence", node.Line)
	}
	*p = joinPath(node.Value)
	return nil
}
