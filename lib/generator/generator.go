// Package generator produces typed accessor wrappers for vcmp
// components. It scans Go source for schema declarations bound to
// component types and writes *_vc.go files with per-attribute getters
// and per-element accessors, so templates get compile-time checked
// names instead of string lookups.
package generator

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Options configures the generator.
type Options struct {
	DryRun bool
}

// Generator generates vcmp accessor code.
type Generator struct {
	opts Options
	fset *token.FileSet
}

// New creates a new generator.
func New(opts Options) *Generator {
	return &Generator{
		opts: opts,
		fset: token.NewFileSet(),
	}
}

// Generate generates code for the given package patterns.
func (g *Generator) Generate(patterns ...string) error {
	packages, err := g.findPackages(patterns)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if err := g.generatePackage(pkg); err != nil {
			return fmt.Errorf("package %s: %w", pkg, err)
		}
	}

	return nil
}

// Clean removes generated files for the given package patterns.
func (g *Generator) Clean(patterns ...string) error {
	packages, err := g.findPackages(patterns)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if err := g.cleanPackage(pkg); err != nil {
			return fmt.Errorf("package %s: %w", pkg, err)
		}
	}

	return nil
}

// findPackages resolves package patterns to directory paths.
func (g *Generator) findPackages(patterns []string) ([]string, error) {
	var packages []string

	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "/...") {
			root := strings.TrimSuffix(pattern, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() {
					return nil
				}
				base := filepath.Base(path)
				if strings.HasPrefix(base, ".") && base != "." || base == "vendor" || base == "testdata" {
					return filepath.SkipDir
				}

				entries, err := os.ReadDir(path)
				if err != nil {
					return nil
				}
				for _, entry := range entries {
					if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".go") && !strings.HasSuffix(entry.Name(), "_test.go") {
						packages = append(packages, path)
						break
					}
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			packages = append(packages, pattern)
		}
	}

	return packages, nil
}

// generatePackage generates code for a single package.
func (g *Generator) generatePackage(pkgPath string) error {
	pkgs, err := parser.ParseDir(g.fset, pkgPath, func(info os.FileInfo) bool {
		name := info.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasSuffix(name, "_vc.go")
	}, parser.ParseComments)
	if err != nil {
		return err
	}

	for pkgName, pkg := range pkgs {
		components := g.findComponents(pkg)
		for _, comp := range components {
			if err := g.generateComponent(pkgPath, pkgName, comp); err != nil {
				return err
			}
		}
	}

	return nil
}

// cleanPackage removes generated files from a package.
func (g *Generator) cleanPackage(pkgPath string) error {
	entries, err := os.ReadDir(pkgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), "_vc.go") {
			path := filepath.Join(pkgPath, entry.Name())
			fmt.Printf("removing %s\n", path)
			if !g.opts.DryRun {
				if err := os.Remove(path); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// ComponentInfo holds information about a discovered component: a
// struct type embedding *vcmp.Base with a schema declaration bound to
// it by naming convention (type Card -> var cardSchema).
type ComponentInfo struct {
	SourceFile string
	TypeName   string
	SchemaVar  string
	Attrs      []AttrInfo
	Elements   []ElementInfo
}

// AttrInfo is a declared attribute and the Go type inferred from its
// Default literal ("" when no usable literal was found).
type AttrInfo struct {
	Name   string
	GoType string
	Method string
}

// ElementInfo is a declared element.
type ElementInfo struct {
	Name         string
	Multiple     bool
	Method       string
	PluralMethod string
}

// findComponents finds all component types with bound schemas.
func (g *Generator) findComponents(pkg *ast.Package) []*ComponentInfo {
	schemas := make(map[string]*schemaDecl)
	for filename, file := range pkg.Files {
		for name, decl := range g.findSchemaDecls(file) {
			decl.sourceFile = filename
			schemas[name] = decl
		}
	}

	var components []*ComponentInfo
	for filename, file := range pkg.Files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				structType, ok := typeSpec.Type.(*ast.StructType)
				if !ok || !embedsBase(structType) {
					continue
				}

				schemaVar := schemaVarName(typeSpec.Name.Name)
				sd, ok := schemas[schemaVar]
				if !ok {
					continue
				}

				comp := &ComponentInfo{
					SourceFile: filename,
					TypeName:   typeSpec.Name.Name,
					SchemaVar:  schemaVar,
				}
				for _, a := range sd.attrs {
					comp.Attrs = append(comp.Attrs, AttrInfo{
						Name:   a.name,
						GoType: a.goType,
						Method: exportName(a.name),
					})
				}
				for _, e := range sd.elements {
					info := ElementInfo{
						Name:     e.name,
						Multiple: e.multiple,
						Method:   exportName(e.name),
					}
					if e.multiple {
						info.PluralMethod = exportName(pluralize(e.name))
					}
					comp.Elements = append(comp.Elements, info)
				}
				components = append(components, comp)
			}
		}
	}

	return components
}

type schemaDecl struct {
	sourceFile string
	attrs      []attrDecl
	elements   []elementDecl
}

type attrDecl struct {
	name   string
	goType string
}

type elementDecl struct {
	name     string
	multiple bool
}

// findSchemaDecls finds package-level vars initialized with a
// vcmp.NewSchema(...) call chain (or an Extend chain) and collects the
// Attr and Element declarations made in that chain.
//
// Only declarations in the chain itself are collected: accessors for
// attributes inherited through Extend are generated on the parent type.
func (g *Generator) findSchemaDecls(file *ast.File) map[string]*schemaDecl {
	decls := make(map[string]*schemaDecl)

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.VAR {
			continue
		}

		for _, spec := range genDecl.Specs {
			valueSpec, ok := spec.(*ast.ValueSpec)
			if !ok || len(valueSpec.Names) != 1 || len(valueSpec.Values) != 1 {
				continue
			}

			chain, isSchema := collectChain(valueSpec.Values[0])
			if !isSchema {
				continue
			}

			sd := &schemaDecl{}
			for _, call := range chain {
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					continue
				}
				switch sel.Sel.Name {
				case "Attr":
					if name, ok := stringArg(call, 0); ok {
						sd.attrs = append(sd.attrs, attrDecl{
							name:   name,
							goType: defaultLitType(call),
						})
					}
				case "Element":
					if name, ok := stringArg(call, 0); ok {
						sd.elements = append(sd.elements, elementDecl{
							name:     name,
							multiple: hasOptionCall(call, "Multiple"),
						})
					}
				}
			}

			if len(sd.attrs) > 0 || len(sd.elements) > 0 {
				decls[valueSpec.Names[0].Name] = sd
			}
		}
	}

	return decls
}

// collectChain unwinds a fluent call chain into its calls, innermost
// first, and reports whether the chain is rooted in vcmp.NewSchema or
// a schema Extend call.
func collectChain(expr ast.Expr) ([]*ast.CallExpr, bool) {
	var chain []*ast.CallExpr
	rooted := false

	for {
		call, ok := expr.(*ast.CallExpr)
		if !ok {
			break
		}
		chain = append([]*ast.CallExpr{call}, chain...)

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			break
		}
		if sel.Sel.Name == "NewSchema" {
			if ident, ok := sel.X.(*ast.Ident); ok && ident.Name == "vcmp" {
				rooted = true
			}
			break
		}
		if sel.Sel.Name == "Extend" {
			if _, ok := sel.X.(*ast.Ident); ok {
				rooted = true
				break
			}
		}
		expr = sel.X
	}

	return chain, rooted
}

// embedsBase checks if a struct embeds *vcmp.Base.
func embedsBase(structType *ast.StructType) bool {
	for _, field := range structType.Fields.List {
		if len(field.Names) != 0 {
			continue
		}
		starExpr, ok := field.Type.(*ast.StarExpr)
		if !ok {
			continue
		}
		switch x := starExpr.X.(type) {
		case *ast.SelectorExpr:
			if ident, ok := x.X.(*ast.Ident); ok && ident.Name == "vcmp" && x.Sel.Name == "Base" {
				return true
			}
		case *ast.Ident:
			if x.Name == "Base" {
				return true
			}
		}
	}
	return false
}

// stringArg extracts a string literal argument.
func stringArg(call *ast.CallExpr, index int) (string, bool) {
	if len(call.Args) <= index {
		return "", false
	}
	lit, ok := call.Args[index].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return value, true
}

// defaultLitType infers a getter type from the literal passed to a
// Default option, if any. Returns "" when no usable literal exists
// (the getter falls back to any).
func defaultLitType(call *ast.CallExpr) string {
	for _, arg := range call.Args[1:] {
		optCall, ok := arg.(*ast.CallExpr)
		if !ok || optionName(optCall) != "Default" || len(optCall.Args) != 1 {
			continue
		}
		switch v := optCall.Args[0].(type) {
		case *ast.BasicLit:
			switch v.Kind {
			case token.STRING:
				return "string"
			case token.INT:
				return "int"
			case token.FLOAT:
				return "float64"
			}
		case *ast.Ident:
			// Booleans stringify in attribute state, so bool-defaulted
			// attributes keep the any getter.
		}
	}
	return ""
}

// hasOptionCall reports whether an option call with the given name is
// present in the argument list.
func hasOptionCall(call *ast.CallExpr, name string) bool {
	for _, arg := range call.Args[1:] {
		if optCall, ok := arg.(*ast.CallExpr); ok && optionName(optCall) == name {
			return true
		}
	}
	return false
}

// optionName extracts the function name of an option call, with or
// without the vcmp qualifier.
func optionName(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		if ident, ok := fun.X.(*ast.Ident); ok && ident.Name == "vcmp" {
			return fun.Sel.Name
		}
	}
	return ""
}

// schemaVarName derives the conventional schema var for a type:
// Card -> cardSchema.
func schemaVarName(typeName string) string {
	if typeName == "" {
		return ""
	}
	return strings.ToLower(typeName[:1]) + typeName[1:] + "Schema"
}

// exportName converts a declared name to an exported method name:
// foo_bar and foo-bar become FooBar.
func exportName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var sb strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	return sb.String()
}

// pluralize mirrors the runtime plural accessor naming.
func pluralize(name string) string {
	switch {
	case strings.HasSuffix(name, "s"),
		strings.HasSuffix(name, "x"),
		strings.HasSuffix(name, "z"),
		strings.HasSuffix(name, "ch"),
		strings.HasSuffix(name, "sh"):
		return name + "es"
	case strings.HasSuffix(name, "y") && len(name) > 1 && !strings.ContainsAny(name[len(name)-2:len(name)-1], "aeiou"):
		return name[:len(name)-1] + "ies"
	default:
		return name + "s"
	}
}
