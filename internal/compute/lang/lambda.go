package lang

import "fmt"

// ToLambda is the C13 translator: it produces a string of closure
// applications in a small JavaScript-like host language that, applied to an
// environment object, reproduces the big-step result of s (spec
// §4.13/§6). It is a string-level transpiler, not an evaluator — nothing
// here calls the host language.
//
// Each Statement case mirrors the big-step rule in stmt.go's RunBigStep:
//
//	DoNothing            ↦ "function (e) { return e; }"
//	Assignment(n, expr)  ↦ "function (e) { return Object.assign({}, e, {"n": (<expr>)(e)}); }"
//	If(c, t, a)          ↦ "function (e) { return (<c>)(e) ? (<t>)(e) : (<a>)(e); }"
//	Sequence(s1, s2)     ↦ "function (e) { return (<s2>)((<s1>)(e)); }"
//	While(c, body)       ↦ "function loop(e) { return (<c>)(e) ? loop((<body>)(e)) : e; }"
func ToLambda(s Statement) string {
	switch n := s.(type) {
	case DoNothing:
		return "function (e) { return e; }"
	case Assignment:
		return fmt.Sprintf("function (e) { return Object.assign({}, e, {%q: (%s)(e)}); }", n.Name, ToLambdaExpr(n.Expr))
	case If:
		return fmt.Sprintf("function (e) { return (%s)(e) ? (%s)(e) : (%s)(e); }",
			ToLambdaExpr(n.Cond), ToLambda(n.Then), ToLambda(n.Else))
	case Sequence:
		return fmt.Sprintf("function (e) { return (%s)((%s)(e)); }", ToLambda(n.Second), ToLambda(n.First))
	case While:
		return fmt.Sprintf("function loop(e) { return (%s)(e) ? loop((%s)(e)) : e; }",
			ToLambdaExpr(n.Cond), ToLambda(n.Body))
	default:
		panic(fmt.Sprintf("unknown Statement type %T", s))
	}
}

// ToLambdaExpr is ToLambda's expression-level counterpart, mirroring
// expr.go's Evaluate:
//
//	Number(v)        ↦ "function (e) { return v; }"
//	Boolean(v)       ↦ "function (e) { return v; }"
//	Variable(name)   ↦ "function (e) { return e[name]; }"
//	Add(l, r)        ↦ "function (e) { return (<l>)(e) + (<r>)(e); }"
//	Multiply(l, r)   ↦ "function (e) { return (<l>)(e) * (<r>)(e); }"
//	LessThan(l, r)   ↦ "function (e) { return (<l>)(e) < (<r>)(e); }"
func ToLambdaExpr(e Expression) string {
	switch n := e.(type) {
	case Number:
		return fmt.Sprintf("function (e) { return %d; }", uint32(n))
	case Boolean:
		return fmt.Sprintf("function (e) { return %t; }", bool(n))
	case Variable:
		return fmt.Sprintf("function (e) { return e[%q]; }", string(n))
	case Add:
		return binaryLambda(n.Left, n.Right, "+")
	case Multiply:
		return binaryLambda(n.Left, n.Right, "*")
	case LessThan:
		return binaryLambda(n.Left, n.Right, "<")
	default:
		panic(fmt.Sprintf("unknown Expression type %T", e))
	}
}

func binaryLambda(left, right Expression, op string) string {
	return fmt.Sprintf("function (e) { return (%s)(e) %s (%s)(e); }", ToLambdaExpr(left), op, ToLambdaExpr(right))
}
