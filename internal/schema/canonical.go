package schema

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Canonical renders a compiled node tree back to the definition language's
// canonical, non-abbreviated form. Compiling the result yields a tree equal
// to the one rendered.
func Canonical(n Node) ([]byte, error) {
	doc := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{strScalar(RootWord), canonicalNode(n)},
	}
	return yaml.Marshal(doc)
}

func canonicalNode(n Node) *yaml.Node {
	switch t := n.(type) {
	case *Nullable:
		m := canonicalNode(t.Inner)
		for i := 0; i+1 < len(m.Content); i += 2 {
			if m.Content[i].Value == typeKey {
				m.Content[i+1].Value += "?"
			}
		}
		return m
	case *Object:
		m := typed("Object")
		for _, f := range t.Fields {
			m.Content = append(m.Content, strScalar(f.Name), canonicalNode(f.Node))
		}
		return m
	case *String:
		m := typed("String")
		if t.Regex != nil {
			m.Content = append(m.Content, strScalar(regexKey), strScalar(t.Pattern))
		}
		if t.MinLength != nil {
			m.Content = append(m.Content, strScalar(minLengthAliases[0]), intScalar(*t.MinLength))
		}
		if t.MaxLength != nil {
			m.Content = append(m.Content, strScalar(maxLengthAliases[0]), intScalar(*t.MaxLength))
		}
		return m
	case *Integer:
		m := typed("Integer")
		if t.Minimum != nil {
			m.Content = append(m.Content, strScalar(minKey), intScalar(*t.Minimum))
		}
		if t.Maximum != nil {
			m.Content = append(m.Content, strScalar(maxKey), intScalar(*t.Maximum))
		}
		return m
	case *Decimal:
		m := typed("Decimal")
		if t.Minimum != nil {
			m.Content = append(m.Content, strScalar(minKey), floatScalar(*t.Minimum))
		}
		if t.Maximum != nil {
			m.Content = append(m.Content, strScalar(maxKey), floatScalar(*t.Maximum))
		}
		return m
	case *List:
		m := typed("List")
		m.Content = append(m.Content, strScalar(valueTypeKey), canonicalNode(t.Elem))
		return m
	case *Map:
		m := typed("Map")
		m.Content = append(m.Content,
			strScalar(keyTypeKey), canonicalNode(t.Key),
			strScalar(valueTypeKey), canonicalNode(t.Value))
		return m
	case *Bool:
		return typed("Bool")
	case *Date:
		return typed("Date")
	}
	return nil
}

func typed(tag string) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{strScalar(typeKey), strScalar(tag)},
	}
}

func strScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intScalar(v int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)}
}

func floatScalar(v float64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v, 'g', -1, 64)}
}
