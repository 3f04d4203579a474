package render

import "html/template"

// fragment feeds one diff entry into a fragment template. Before and After
// are the slash-relative locations of the copied artifacts.
type fragment struct {
	Locale string
	Name   string
	Before string
	After  string
}

// page feeds the Content placeholder of a page template.
type page struct {
	Content template.HTML
}

// Styled fragments carry an uppercased-locale heading; the changed fragment
// shows both versions side by side.
var styledFragments = template.Must(template.New("styled").Parse(`
{{define "removed"}}<p><h2>{{.Locale}}: REMOVED {{.Name}}</h2><img src="{{.Before}}"></p>{{end}}
{{define "added"}}<p><h2>{{.Locale}}: ADDED {{.Name}}</h2><img src="{{.After}}"></p>{{end}}
{{define "changed"}}<p><h2>{{.Locale}}: {{.Name}}</h2><img src="{{.Before}}">&nbsp;<img src="{{.After}}"></p>{{end}}
{{define "empty"}}<h1>No differences found</h1>{{end}}
`))

// Minimal fragments label entries with the bare screenshot name only.
var minimalFragments = template.Must(template.New("minimal").Parse(`
{{define "removed"}}<p>REMOVED {{.Name}}</br><img src="{{.Before}}"></p>{{end}}
{{define "added"}}<p>ADDED {{.Name}}</br><img src="{{.After}}"></p>{{end}}
{{define "changed"}}<p>{{.Name}}</br><img src="{{.Before}}">&nbsp;<img src="{{.After}}"></p>{{end}}
{{define "empty"}}<p>No differences found</p>{{end}}
`))
