package parse

// Tree builder and structural fixup for C style declarations.
//
//
// Glossary:
//
// Forest
// ------
//
// The builder does not produce a single root. Every top level
// declaration is a node, and top level nodes are chained through
// their Next/Last links. Forest.Root is the first of them.
//
// First child / next sibling
// --------------------------
//
// A node only points at its first child. The remaining children are
// reached by following Next from there.
//
// e.g.
// { 1 2 }
//
// BlockWrap {
//   Child -> Constant 1
//              Next -> Constant 2
//
// Fixup
// -----
//
// The builder only knows about syntax: words, numbers and groups.
// Fixup then rewrites local neighbourhoods of the tree into struct,
// typedef and base typed variable nodes.
//
// e.g.
// typedef int MyInt
//
// before: Variable typedef -> Variable int -> Variable MyInt
// after:  TypeDef typedef { Variable int -> TypeDefName MyInt }
