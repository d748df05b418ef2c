package encode

import (
	"html/template"
	"io"

	"github.com/signadot/go-inspect/ir"
)

// HTML renders the projection as a nested, collapsible document, the
// interactive counterpart of the text style.  Duplicate nodes link
// back to the anchor of their first occurrence.
func HTML(ctx *ir.Context, w io.Writer) error {
	return htmlTmpl.ExecuteTemplate(w, "frame", ctx)
}

var htmlTmpl = template.Must(template.New("inspect").Parse(`
{{- define "frame" -}}
<div class="inspect">
{{template "object" .}}
</div>
{{- end -}}

{{- define "object" -}}
<details id="obj-{{.ID}}"{{if .Children}} open{{end}}>
<summary>
<span class="title">{{.Title}}</span>
<span class="type">{{.Type}}</span>
{{- if .Value}}
<span class="value">{{.Prefix}}{{.Value}}{{.Postfix}}</span>
{{- end}}
{{- if .LinkTo}}
<a class="link" href="#obj-{{.LinkTo}}">shown above</a>
{{- end}}
{{- if .TotalChildren}}
<span class="total">({{.TotalChildren}} items)</span>
{{- end}}
</summary>
{{- range .Children}}
{{template "object" .}}
{{- end}}
</details>
{{- end -}}
`))
