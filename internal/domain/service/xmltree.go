package service

import (
	"encoding/xml"
	"strings"
)

// xmlNode is a generic element tree. ISO 20022 messages arrive under several
// namespace URIs (or none at all), so parsing into a schema-bound struct
// would reject real-world traffic; the tree keeps the resolved namespace of
// every element and lets lookup policy decide how strictly to match.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []*xmlNode `xml:",any"`
}

// decodeTree parses sanitized XML text into an element tree. The decoder
// runs strict: sanitization has already neutralized entity declarations and
// dangling references, so anything the decoder rejects here is genuinely
// malformed input.
func decodeTree(s string) (*xmlNode, error) {
	dec := xml.NewDecoder(strings.NewReader(s))
	var root xmlNode
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

// attr returns the value of the attribute with the given local name, or "".
func (n *xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// text returns the trimmed character data of the node.
func (n *xmlNode) text() string {
	return strings.TrimSpace(n.Text)
}

// nodeLookup resolves slash-separated element paths against a tree using an
// explicit ordered strategy list:
//
//  1. unqualified path: every segment matches an element with no namespace,
//  2. namespaced path: every segment matches an element in the namespace
//     detected on the document root,
//  3. local-name scan: depth-first search for the first descendant whose
//     local (namespace-stripped) tag name equals the final path segment.
//
// The fallback order is deliberate policy: strict single-schema matching
// would bounce messages that differ only in namespace string, while the
// scan catches mixed-namespace and oddly nested senders. Callers scope the
// scan by passing the nearest enclosing semantic block as the start node.
type nodeLookup struct {
	namespace string
}

// newNodeLookup builds a lookup using the namespace detected on the root.
func newNodeLookup(root *xmlNode) nodeLookup {
	return nodeLookup{namespace: root.XMLName.Space}
}

type lookupStrategy func(start *xmlNode, segs []string) *xmlNode

// find returns the first element matching path under start, or nil.
func (l nodeLookup) find(start *xmlNode, path string) *xmlNode {
	segs := strings.Split(path, "/")
	for _, strat := range l.strategies() {
		if n := strat(start, segs); n != nil {
			return n
		}
	}
	return nil
}

// findAll returns every element matching path under start, in document
// order, using the first strategy that yields any match.
func (l nodeLookup) findAll(start *xmlNode, path string) []*xmlNode {
	segs := strings.Split(path, "/")
	if nodes := childPathAll(start, segs, ""); len(nodes) > 0 {
		return nodes
	}
	if l.namespace != "" {
		if nodes := childPathAll(start, segs, l.namespace); len(nodes) > 0 {
			return nodes
		}
	}
	var out []*xmlNode
	scanLocalAll(start, segs[len(segs)-1], &out)
	return out
}

// text returns the first non-empty text found among the candidate paths,
// tried in order. This is the single generic extractor behind the per-field
// path tables in the parser.
func (l nodeLookup) text(start *xmlNode, candidates ...string) string {
	for _, p := range candidates {
		if n := l.find(start, p); n != nil {
			if t := n.text(); t != "" {
				return t
			}
		}
	}
	return ""
}

// texts returns the trimmed text of every element matching the first
// candidate path that yields matches.
func (l nodeLookup) texts(start *xmlNode, candidates ...string) []string {
	for _, p := range candidates {
		nodes := l.findAll(start, p)
		if len(nodes) == 0 {
			continue
		}
		out := make([]string, 0, len(nodes))
		for _, n := range nodes {
			if t := n.text(); t != "" {
				out = append(out, t)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func (l nodeLookup) strategies() []lookupStrategy {
	strats := []lookupStrategy{
		func(start *xmlNode, segs []string) *xmlNode { return childPath(start, segs, "") },
	}
	if l.namespace != "" {
		ns := l.namespace
		strats = append(strats, func(start *xmlNode, segs []string) *xmlNode {
			return childPath(start, segs, ns)
		})
	}
	strats = append(strats, func(start *xmlNode, segs []string) *xmlNode {
		return scanLocal(start, segs[len(segs)-1])
	})
	return strats
}

// childPath walks the exact child path, requiring every element to be in
// the given namespace ("" means no namespace).
func childPath(start *xmlNode, segs []string, ns string) *xmlNode {
	cur := start
	for _, seg := range segs {
		var next *xmlNode
		for _, c := range cur.Children {
			if c.XMLName.Local == seg && c.XMLName.Space == ns {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// childPathAll walks the exact child path and returns every element
// matching the final segment under the (unique) parent path.
func childPathAll(start *xmlNode, segs []string, ns string) []*xmlNode {
	cur := start
	for _, seg := range segs[:len(segs)-1] {
		var next *xmlNode
		for _, c := range cur.Children {
			if c.XMLName.Local == seg && c.XMLName.Space == ns {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	last := segs[len(segs)-1]
	var out []*xmlNode
	for _, c := range cur.Children {
		if c.XMLName.Local == last && c.XMLName.Space == ns {
			out = append(out, c)
		}
	}
	return out
}

// scanLocal does a depth-first search for the first descendant of start
// whose local name equals local, ignoring namespaces.
func scanLocal(start *xmlNode, local string) *xmlNode {
	for _, c := range start.Children {
		if c.XMLName.Local == local {
			return c
		}
		if n := scanLocal(c, local); n != nil {
			return n
		}
	}
	return nil
}

func scanLocalAll(start *xmlNode, local string, out *[]*xmlNode) {
	for _, c := range start.Children {
		if c.XMLName.Local == local {
			*out = append(*out, c)
		}
		scanLocalAll(c, local, out)
	}
}
