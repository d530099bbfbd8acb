package parse

import (
	"fmt"
	"strings"
)

var baseTypeLUT = map[string]bool{
	"bool":     true,
	"int":      true,
	"short":    true,
	"char":     true,
	"float":    true,
	"double":   true,
	"int8_t":   true,
	"uint8_t":  true,
	"int16_t":  true,
	"uint16_t": true,
	"int32_t":  true,
	"uint32_t": true,
}

func isStruct(name string) bool {
	return strings.EqualFold(name, "struct")
}

func isTypedef(name string) bool {
	return strings.EqualFold(name, "typedef")
}

func IsBaseType(name string) bool {
	return baseTypeLUT[name]
}

type fixer struct {
	f *Forest
}

// Fixup reclassifies the provisional tree in three passes: struct,
// typedef, then base types. Each pass walks the whole forest again and
// sees what the earlier passes did. The forest is rewritten in place.
func Fixup(f *Forest) error {
	fx := &fixer{f}
	passes := []func(Ref) error{
		fx.fixStruct,
		fx.fixTypedef,
		fx.fixBaseType,
	}
	for _, pass := range passes {
		if err := f.Walk(pass); err != nil {
			return err
		}
	}
	return nil
}

// spliceNext makes to the next sibling of r, dropping whatever was
// between them from the chain.
func (f *Forest) spliceNext(r, to Ref) {
	f.Nodes[r].Next = to
	if to != Nil {
		f.Nodes[to].Last = r
	}
}

// struct { ... } takes over the children of the brace group, the
// group itself drops out of the tree.
func (fx *fixer) fixStruct(r Ref) error {
	n := fx.f.Node(r)
	if !isStruct(n.Name) {
		return nil
	}
	n.Kind = Struct
	if n.Next == Nil {
		return locError(n.Pos, fmt.Errorf("%w: struct without a body", ErrUnsupported))
	}
	body := fx.f.Node(n.Next)
	if body.Name != "{" {
		// TODO: named structs need a tag node to hang the body under.
		return locError(n.Pos, fmt.Errorf("%w: named struct %q", ErrUnsupported, body.Name))
	}
	n.Child = body.Child
	for c := n.Child; c != Nil; c = fx.f.Nodes[c].Next {
		fx.f.Nodes[c].Parent = r
	}
	fx.f.spliceNext(r, body.Next)
	body.Child = Nil
	body.Next = Nil
	body.Last = Nil
	body.Parent = Nil
	return nil
}

// typedef DEF NAME keeps DEF and NAME as its only two children.
func (fx *fixer) fixTypedef(r Ref) error {
	n := fx.f.Node(r)
	if !isTypedef(n.Name) {
		return nil
	}
	n.Kind = TypeDef
	def := n.Next
	if def == Nil || fx.f.Nodes[def].Next == Nil {
		return locError(n.Pos, fmt.Errorf("%w: typedef needs a definition and a name", ErrStructural))
	}
	name := fx.f.Nodes[def].Next
	d, nm := fx.f.Node(def), fx.f.Node(name)
	nm.Kind = TypeDefName
	fx.f.spliceNext(r, nm.Next)
	n.Child = def
	d.Parent = r
	nm.Parent = r
	d.Last = Nil
	d.Next = name
	nm.Last = def
	nm.Next = Nil
	return nil
}

// A base type takes the following node as its variable name. A name
// already claimed by a typedef stays where it is.
func (fx *fixer) fixBaseType(r Ref) error {
	n := fx.f.Node(r)
	if !IsBaseType(n.Name) {
		return nil
	}
	n.Kind = Variable
	if n.Next == Nil || fx.f.Nodes[n.Next].Kind == TypeDefName {
		return nil
	}
	v := n.Next
	vn := fx.f.Node(v)
	vn.Kind = VariableName
	fx.f.spliceNext(r, vn.Next)
	n.Child = v
	vn.Parent = r
	vn.Next = Nil
	vn.Last = Nil
	return nil
}
