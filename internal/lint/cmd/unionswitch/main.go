package main

import (
	"go/ast"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ast/inspector"
)

// sealedUnion returns the marker method of a sealed union interface: an
// interface whose only method is an unexported, parameterless "is" method.
func sealedUnion(t types.Type) (*types.Func, *types.Interface, bool) {
	iface, ok := t.Underlying().(*types.Interface)
	if !ok || iface.NumMethods() != 1 {
		return nil, nil, false
	}
	m := iface.Method(0)
	sig := m.Type().(*types.Signature)
	if m.Exported() || !strings.HasPrefix(m.Name(), "is") || sig.Params().Len() != 0 || sig.Results().Len() != 0 || m.Pkg() == nil {
		return nil, nil, false
	}
	return m, iface, true
}

// variants returns the named types of pkg that implement iface.
func variants(pkg *types.Package, iface *types.Interface) []types.Type {
	var vs []types.Type
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || types.IsInterface(tn.Type()) {
			continue
		}
		if types.Implements(tn.Type(), iface) {
			vs = append(vs, tn.Type())
		} else if p := types.NewPointer(tn.Type()); types.Implements(p, iface) {
			vs = append(vs, p)
		}
	}
	return vs
}

func run(pass *analysis.Pass) (any, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	inspect.Preorder([]ast.Node{(*ast.TypeSwitchStmt)(nil)}, func(n ast.Node) {
		sw := n.(*ast.TypeSwitchStmt)
		var x ast.Expr
		switch a := sw.Assign.(type) {
		case *ast.AssignStmt:
			x = a.Rhs[0].(*ast.TypeAssertExpr).X
		case *ast.ExprStmt:
			x = a.X.(*ast.TypeAssertExpr).X
		default:
			return
		}
		m, iface, ok := sealedUnion(pass.TypesInfo.TypeOf(x))
		if !ok {
			return
		}

		covered := make(map[string]bool)
		for _, stmt := range sw.Body.List {
			cc := stmt.(*ast.CaseClause)
			if cc.List == nil {
				return // default
			}
			for _, e := range cc.List {
				if t := pass.TypesInfo.TypeOf(e); t != nil {
					covered[types.TypeString(t, nil)] = true
				}
			}
		}
		var missing []string
		for _, v := range variants(m.Pkg(), iface) {
			if !covered[types.TypeString(v, nil)] {
				missing = append(missing, types.TypeString(v, types.RelativeTo(pass.Pkg)))
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			pass.Reportf(sw.Pos(), "type switch on %s is missing %s; add the cases or a default", types.ExprString(x), strings.Join(missing, ", "))
		}
	})
	return nil, nil
}

var analyzer = &analysis.Analyzer{
	Name:     "unionswitch",
	Doc:      "reports type switches over sealed unions that neither cover every variant nor have a default case",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func main() {
	singlechecker.Main(analyzer)
}
