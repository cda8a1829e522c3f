// Package regex implements the regex AST, Thompson-construction compiler,
// and recursive-descent parser of spec §4.7/§4.8: Match(p, str) :=
// Compile(p).Accept(str).
package regex

// NodeType discriminates the Pattern variants, following the tagged-sum
// style used throughout this corpus (design note §9: "pattern-match on the
// tag to dispatch", mirrored from tunascript/syntax.ASTNode's Type()/As*()
// shape).
type NodeType int

const (
	TypeEmpty NodeType = iota
	TypeLiteral
	TypeConcat
	TypeChoose
	TypeRepeat
)

// Precedence values used only for pretty-printing (spec §3): Choose=0 <
// Concat=1 < Repeat=2 < Empty=Literal=3.
const (
	PrecedenceChoose  = 0
	PrecedenceConcat  = 1
	PrecedenceRepeat  = 2
	PrecedenceAtomic  = 3
)

// Pattern is the regex AST node interface. Every node knows its own
// NodeType and Precedence; callers downcast with the As* accessors, which
// panic if Type() does not match (mirroring tunascript/syntax.ASTNode).
type Pattern interface {
	Type() NodeType
	Precedence() int
	String() string

	AsLiteral() Literal
	AsConcat() Concat
	AsChoose() Choose
	AsRepeat() Repeat
}

// Empty matches the empty string.
type Empty struct{}

func (Empty) Type() NodeType     { return TypeEmpty }
func (Empty) Precedence() int    { return PrecedenceAtomic }
func (Empty) String() string     { return "" }
func (Empty) AsLiteral() Literal { panic("Pattern is Empty, not Literal") }
func (Empty) AsConcat() Concat   { panic("Pattern is Empty, not Concat") }
func (Empty) AsChoose() Choose   { panic("Pattern is Empty, not Choose") }
func (Empty) AsRepeat() Repeat   { panic("Pattern is Empty, not Repeat") }

// Literal matches a single character.
type Literal struct {
	Char rune
}

func (Literal) Type() NodeType  { return TypeLiteral }
func (Literal) Precedence() int { return PrecedenceAtomic }
func (l Literal) String() string {
	return string(l.Char)
}
func (l Literal) AsLiteral() Literal { return l }
func (Literal) AsConcat() Concat     { panic("Pattern is Literal, not Concat") }
func (Literal) AsChoose() Choose     { panic("Pattern is Literal, not Choose") }
func (Literal) AsRepeat() Repeat     { panic("Pattern is Literal, not Repeat") }

// Concat matches Left followed by Right.
type Concat struct {
	Left, Right Pattern
}

func (Concat) Type() NodeType  { return TypeConcat }
func (Concat) Precedence() int { return PrecedenceConcat }
func (c Concat) String() string {
	return bracket(c.Left, c.Precedence()) + bracket(c.Right, c.Precedence())
}
func (Concat) AsLiteral() Literal  { panic("Pattern is Concat, not Literal") }
func (c Concat) AsConcat() Concat  { return c }
func (Concat) AsChoose() Choose    { panic("Pattern is Concat, not Choose") }
func (Concat) AsRepeat() Repeat    { panic("Pattern is Concat, not Repeat") }

// Choose matches Left or Right.
type Choose struct {
	Left, Right Pattern
}

func (Choose) Type() NodeType  { return TypeChoose }
func (Choose) Precedence() int { return PrecedenceChoose }
func (c Choose) String() string {
	return bracket(c.Left, c.Precedence()) + "|" + bracket(c.Right, c.Precedence())
}
func (Choose) AsLiteral() Literal { panic("Pattern is Choose, not Literal") }
func (Choose) AsConcat() Concat   { panic("Pattern is Choose, not Concat") }
func (c Choose) AsChoose() Choose { return c }
func (Choose) AsRepeat() Repeat   { panic("Pattern is Choose, not Repeat") }

// Repeat matches zero or more repetitions of Sub (Kleene star).
type Repeat struct {
	Sub Pattern
}

func (Repeat) Type() NodeType  { return TypeRepeat }
func (Repeat) Precedence() int { return PrecedenceRepeat }
func (r Repeat) String() string {
	return bracket(r.Sub, r.Precedence()) + "*"
}
func (Repeat) AsLiteral() Literal  { panic("Pattern is Repeat, not Literal") }
func (Repeat) AsConcat() Concat    { panic("Pattern is Repeat, not Concat") }
func (Repeat) AsChoose() Choose    { panic("Pattern is Repeat, not Choose") }
func (r Repeat) AsRepeat() Repeat  { return r }

// bracket renders child, wrapping it in parentheses when its precedence is
// lower than parentPrecedence (spec §4.7: "wraps a child in parentheses
// when child.precedence < parent.precedence; equal precedences emit
// without parentheses").
func bracket(child Pattern, parentPrecedence int) string {
	if child.Precedence() < parentPrecedence {
		return "(" + child.String() + ")"
	}
	return child.String()
}

func (n NodeType) String() string {
	switch n {
	case TypeEmpty:
		return "Empty"
	case TypeLiteral:
		return "Literal"
	case TypeConcat:
		return "Concat"
	case TypeChoose:
		return "Choose"
	case TypeRepeat:
		return "Repeat"
	default:
		return "Unknown"
	}
}
