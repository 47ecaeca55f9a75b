// Package statwrite detects direct writes to a Statistic's Value outside the
// entities package. Values must change through Modify so they stay clamped.
package statwrite

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports assignments to Statistic.Value that bypass Modify.
var Analyzer = &analysis.Analyzer{
	Name:     "statwrite",
	Doc:      "detects direct writes to Statistic.Value outside the entities package",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

const (
	statisticType  = "Statistic"
	valueField     = "Value"
	entitiesPkgTag = "entities"
)

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == entitiesPkgTag {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.IncDecStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		switch stmt := n.(type) {
		case *ast.AssignStmt:
			if stmt.Tok == token.DEFINE {
				return
			}
			for _, lhs := range stmt.Lhs {
				check(pass, lhs)
			}
		case *ast.IncDecStmt:
			check(pass, stmt.X)
		}
	})

	return nil, nil
}

func check(pass *analysis.Pass, expr ast.Expr) {
	sel, ok := ast.Unparen(expr).(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != valueField {
		return
	}
	if !isStatistic(pass.TypesInfo.TypeOf(sel.X)) {
		return
	}
	pass.Reportf(sel.Pos(), "direct write to Statistic.Value - use Modify to keep the value in range")
}

func isStatistic(t types.Type) bool {
	if t == nil {
		return false
	}
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == statisticType && obj.Pkg() != nil && obj.Pkg().Name() == entitiesPkgTag
}
