package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// generateComponent generates the *_vc.go file for a component.
func (g *Generator) generateComponent(pkgPath, pkgName string, comp *ComponentInfo) error {
	baseName := strings.TrimSuffix(filepath.Base(comp.SourceFile), ".go")
	outputFile := filepath.Join(pkgPath, baseName+"_vc.go")

	fmt.Printf("generating %s\n", outputFile)

	if g.opts.DryRun {
		return nil
	}

	code, err := g.renderTemplate(pkgName, comp)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	formatted, err := format.Source(code)
	if err != nil {
		// Write unformatted for debugging
		if writeErr := os.WriteFile(outputFile+".unformatted", code, 0644); writeErr == nil {
			fmt.Printf("  wrote unformatted code to %s.unformatted for debugging\n", outputFile)
		}
		return fmt.Errorf("format source: %w", err)
	}

	return os.WriteFile(outputFile, formatted, 0644)
}

// renderTemplate renders the generated code template.
func (g *Generator) renderTemplate(pkgName string, comp *ComponentInfo) ([]byte, error) {
	tmpl, err := template.New("vc").Funcs(template.FuncMap{
		"getter": getterCode,
	}).Parse(vcTemplate)
	if err != nil {
		return nil, err
	}

	data := struct {
		Package   string
		Component *ComponentInfo
	}{
		Package:   pkgName,
		Component: comp,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// getterCode generates the body of an attribute getter. Attributes
// with a typed Default literal get a typed getter; everything else
// returns any.
func getterCode(typeName string, a AttrInfo) string {
	switch a.GoType {
	case "string", "int", "float64":
		return fmt.Sprintf(`// %s returns the %q attribute.
func (c *%s) %s() %s {
	v, _ := c.Attr("%s").(%s)
	return v
}`, a.Method, a.Name, typeName, a.Method, a.GoType, a.Name, a.GoType)
	default:
		return fmt.Sprintf(`// %s returns the %q attribute, or nil when unset.
func (c *%s) %s() any {
	return c.Attr("%s")
}`, a.Method, a.Name, typeName, a.Method, a.Name)
	}
}

const vcTemplate = `// Code generated by vcmp. DO NOT EDIT.
// Source: {{.Component.SourceFile}}

package {{.Package}}
{{if .Component.Elements}}
import (
	"context"

	"github.com/pthm/vcmp"
)
{{end}}
{{range .Component.Attrs}}
{{getter $.Component.TypeName .}}
{{end}}

{{range .Component.Elements}}
{{if .Multiple}}
// New{{.Method}} constructs a {{.Name}} element and appends it.
func (c *{{$.Component.TypeName}}) New{{.Method}}(attrs map[string]any, block vcmp.Block) (*vcmp.Base, error) {
	return c.NewElement("{{.Name}}", attrs, block)
}

// {{.PluralMethod}} returns the {{.Name}} elements, forcing the
// component's own deferred block first if it has not run yet.
func (c *{{$.Component.TypeName}}) {{.PluralMethod}}(ctx context.Context) ([]*vcmp.Base, error) {
	return c.Elements(ctx, "{{.Name}}")
}
{{else}}
// New{{.Method}} constructs the {{.Name}} element, replacing any
// existing instance.
func (c *{{$.Component.TypeName}}) New{{.Method}}(attrs map[string]any, block vcmp.Block) (*vcmp.Base, error) {
	return c.NewElement("{{.Name}}", attrs, block)
}

// {{.Method}} returns the stored {{.Name}} element, forcing the
// component's own deferred block first if it has not run yet.
func (c *{{$.Component.TypeName}}) {{.Method}}(ctx context.Context) (*vcmp.Base, error) {
	return c.Element(ctx, "{{.Name}}")
}
{{end}}
{{end}}
`
