package ast

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Dump renders the tree rooted at n as a YAML document.
func Dump(n Node) ([]byte, error) {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(toYAML(n)); err != nil {
		return nil, fmt.Errorf("ast: encode %s: %w", n.NodeKind(), err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("ast: encode %s: %w", n.NodeKind(), err)
	}
	return b.Bytes(), nil
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func plain(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

func seq(nodes []Expr) *yaml.Node {
	out := &yaml.Node{Kind: yaml.SequenceNode}
	for _, n := range nodes {
		out.Content = append(out.Content, toYAML(n))
	}
	return out
}

func toYAML(n Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, val *yaml.Node) {
		m.Content = append(m.Content, str(key), val)
	}

	sp := n.GetSpan()
	add("kind", str(n.NodeKind()))
	add("at", str(sp.String()))

	switch x := n.(type) {
	case *NumberLiteral:
		add("value", plain(x.Lexeme))
	case *StringLiteral:
		add("value", str(x.Value))
	case *BoolLiteral:
		add("value", plain(strconv.FormatBool(x.Value)))
	case *Identifier:
		add("name", str(x.Name))
	case *AssignExpr:
		add("target", toYAML(x.Target))
		add("value", toYAML(x.Value))
	case *BinaryExpr:
		add("op", str(x.Op))
		add("left", toYAML(x.Left))
		add("right", toYAML(x.Right))
	case *CallExpr:
		add("callee", toYAML(x.Callee))
		add("args", seq(x.Args))
	case *FunctionLiteral:
		params := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, p := range x.Params {
			params.Content = append(params.Content, str(p))
		}
		add("params", params)
		add("body", toYAML(x.Body))
	case *IfExpr:
		add("cond", toYAML(x.Cond))
		add("then", toYAML(x.Then))
		if x.Else != nil {
			add("else", toYAML(x.Else))
		}
	case *LoopExpr:
		add("cond", toYAML(x.Cond))
		add("body", toYAML(x.Body))
	case *StuffExpr:
		add("base", toYAML(x.Base))
		add("value", toYAML(x.Value))
	case *UnstuffExpr:
		add("base", toYAML(x.Base))
	case *Block:
		add("exprs", seq(x.Exprs))
	}
	return m
}
