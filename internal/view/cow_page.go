// Package view renderiza las páginas HTML a partir de datos planos.
// No conoce el dominio: los handlers arman CowPage y la pasan tal cual.
package view

import (
	"html/template"
	"io"
	"time"
)

type CowPage struct {
	CowID          string
	Name           string
	Breed          string
	Age            float64
	Weight         float64
	Region         string
	HealthStatus   string
	LastInspection time.Time

	Vaccinations   []VaccinationRow
	MedicalHistory []MedicalRow

	VetName string
}

type VaccinationRow struct {
	Name    string
	Date    time.Time
	NextDue *time.Time
}

type MedicalRow struct {
	Date         time.Time
	Diagnosis    string
	Treatment    string
	Veterinarian string
}

type Renderer struct {
	cow *template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"date": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("2006-01-02")
		},
		"status": func(s string) string {
			switch s {
			case "under_treatment":
				return "Under treatment"
			case "sick":
				return "Sick"
			case "healthy":
				return "Healthy"
			default:
				return s
			}
		},
	}
	return &Renderer{
		cow: template.Must(template.New("cow").Funcs(funcs).Parse(cowTemplate)),
	}
}

func (r *Renderer) RenderCow(w io.Writer, page CowPage) error {
	return r.cow.Execute(w, page)
}

const cowTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Cow {{.CowID}} - {{.Name}}</title>
</head>
<body>
<header>
  <h1>{{.Name}} <small>({{.CowID}})</small></h1>
  {{if .VetName}}<p>Signed in as {{.VetName}} &middot; Region {{.Region}}</p>{{end}}
</header>
<section class="details">
  <dl>
    <dt>Breed</dt><dd>{{.Breed}}</dd>
    <dt>Age</dt><dd>{{.Age}} years</dd>
    <dt>Weight</dt><dd>{{.Weight}} kg</dd>
    <dt>Region</dt><dd>{{.Region}}</dd>
    <dt>Health status</dt><dd class="status-{{.HealthStatus}}">{{status .HealthStatus}}</dd>
    <dt>Last inspection</dt><dd>{{date .LastInspection}}</dd>
  </dl>
</section>
<section class="vaccinations">
  <h2>Vaccinations</h2>
  {{if .Vaccinations}}
  <table>
    <thead><tr><th>Name</th><th>Date</th><th>Next due</th></tr></thead>
    <tbody>
    {{range .Vaccinations}}<tr><td>{{.Name}}</td><td>{{date .Date}}</td><td>{{if .NextDue}}{{date .NextDue}}{{else}}-{{end}}</td></tr>
    {{end}}</tbody>
  </table>
  {{else}}<p>No vaccinations recorded.</p>{{end}}
</section>
<section class="medical-history">
  <h2>Medical history</h2>
  {{if .MedicalHistory}}
  <table>
    <thead><tr><th>Date</th><th>Diagnosis</th><th>Treatment</th><th>Veterinarian</th></tr></thead>
    <tbody>
    {{range .MedicalHistory}}<tr><td>{{date .Date}}</td><td>{{.Diagnosis}}</td><td>{{.Treatment}}</td><td>{{.Veterinarian}}</td></tr>
    {{end}}</tbody>
  </table>
  {{else}}<p>No medical history recorded.</p>{{end}}
</section>
</body>
</html>
`
