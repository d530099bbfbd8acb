package parse

import "github.com/andrewchambers/ctree/lex"

type NodeKind int

const (
	Constant NodeKind = iota
	Variable
	VariableName
	ParenWrap
	BlockWrap
	TypeDef
	Struct
	TypeDefName
)

var nodeKindToStr = [...]string{
	Constant:     "Constant",
	Variable:     "Variable",
	VariableName: "VariableName",
	ParenWrap:    "ParenWrap",
	BlockWrap:    "BlockWrap",
	TypeDef:      "TypeDef",
	Struct:       "Struct",
	TypeDefName:  "TypeDefName",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindToStr) {
		return "Unknown"
	}
	return nodeKindToStr[k]
}

// Ref is the index of a node in its Forest.
type Ref int32

// Nil is the absent node.
const Nil Ref = -1

// Child and Next own what they point to. Last and Parent are back links.
type Node struct {
	ID     int
	Kind   NodeKind
	Name   string
	Pos    lex.FilePos
	Child  Ref
	Next   Ref
	Last   Ref
	Parent Ref
}

// Forest is an arena of nodes. Nodes are never removed, fixup can
// leave some of them unreachable from Root.
type Forest struct {
	Nodes []Node
	Root  Ref
}

func NewForest() *Forest {
	return &Forest{Root: Nil}
}

func (f *Forest) Node(r Ref) *Node {
	if r == Nil {
		return nil
	}
	return &f.Nodes[r]
}

// Children returns the child chain of r in order.
func (f *Forest) Children(r Ref) []Ref {
	var ret []Ref
	for c := f.Nodes[r].Child; c != Nil; c = f.Nodes[c].Next {
		ret = append(ret, c)
	}
	return ret
}

// TopLevels returns the top level chain starting at Root.
func (f *Forest) TopLevels() []Ref {
	var ret []Ref
	for n := f.Root; n != Nil; n = f.Nodes[n].Next {
		ret = append(ret, n)
	}
	return ret
}

// newNode appends a node. Ids are the arena index, so they count from
// zero for every forest.
func (f *Forest) newNode(kind NodeKind, tok lex.Token) Ref {
	r := Ref(len(f.Nodes))
	f.Nodes = append(f.Nodes, Node{
		ID:     int(r),
		Kind:   kind,
		Name:   tok.Val,
		Pos:    tok.Pos,
		Child:  Nil,
		Next:   Nil,
		Last:   Nil,
		Parent: Nil,
	})
	return r
}

// Walk visits every node reachable from Root, a node before its
// children and its children before its next sibling. Links are read
// after fn returns, so fn may rewrite the neighbourhood of the node it
// is given.
func (f *Forest) Walk(fn func(r Ref) error) error {
	return f.walk(f.Root, fn)
}

func (f *Forest) walk(r Ref, fn func(r Ref) error) error {
	for ; r != Nil; r = f.Nodes[r].Next {
		if err := fn(r); err != nil {
			return err
		}
		if err := f.walk(f.Nodes[r].Child, fn); err != nil {
			return err
		}
	}
	return nil
}
