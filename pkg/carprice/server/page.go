package server

import (
	"html/template"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/dal"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/form"
)

type pageField struct {
	form.Field
	Value string
}

type pageData struct {
	Fields   []pageField
	HasPrice bool
	Price    float64
	Error    string
}

func newPageData(rec dal.Record) pageData {
	fields := make([]pageField, len(form.Fields))
	for i, f := range form.Fields {
		fields[i] = pageField{Field: f, Value: form.Value(rec, f)}
	}
	return pageData{Fields: fields}
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Car Price Estimate</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; }
form { display: grid; grid-template-columns: repeat(3, 1fr); gap: 0.75em 1.5em; }
label { display: flex; flex-direction: column; font-size: 0.9em; }
.result { margin-top: 1.5em; font-size: 1.4em; }
.error { margin-top: 1.5em; color: #b00020; }
</style>
</head>
<body>
<h1>Car Price Estimate</h1>
<form method="post" action="/">
{{- range .Fields}}
<label>{{.Label}}
{{- if eq .Kind "select"}}
<select name="{{.Name}}">
{{- $value := .Value}}
{{- range .Options}}
<option value="{{.}}"{{if eq . $value}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
{{- else if eq .Kind "number"}}
<input type="number" step="any" name="{{.Name}}" value="{{.Value}}" required>
{{- else}}
<input type="text" name="{{.Name}}" value="{{.Value}}">
{{- end}}
</label>
{{- end}}
<button type="submit">Estimate price</button>
</form>
{{- if .HasPrice}}
<p class="result">Estimated price: <strong>{{printf "%.2f" .Price}}</strong></p>
{{- end}}
{{- if .Error}}
<p class="error">{{.Error}}</p>
{{- end}}
</body>
</html>
`))
