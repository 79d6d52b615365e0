package cli

import (
	"text/template"

	"github.com/dustin/go-humanize"
)

const profileTemplate = `
=== {{.Name}} @{{.Username}} ===
{{- with .Bio }}
{{.}}
{{- end}}
{{- with .Location }}
Location:  {{.}}
{{- end}}
{{- with .Website }}
Website:   {{.}}
{{- end}}
Followers: {{comma (len .Followers)}}
Following: {{comma (len .Following)}}
Avatar:    {{if .HasAvatar}}yes{{else}}no{{end}}
`

var profileTmpl = template.Must(template.New("profile").Funcs(template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
}).Parse(profileTemplate))
