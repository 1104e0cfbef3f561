package email

import (
	"bytes"
	"html/template"

	"rugcare.backend/internal/domain/entities"
)

var staffTemplate = template.Must(template.New("staff").Parse(`<h2>Payment received</h2>
<p><strong>{{.ClientName}}</strong> paid <strong>${{.Amount}}</strong> for job <strong>{{.JobNumber}}</strong>.</p>
<table>
  <tr><td>Client email</td><td>{{.ClientEmail}}</td></tr>
  <tr><td>Client phone</td><td>{{.ClientPhone}}</td></tr>
  <tr><td>Paid at</td><td>{{.PaidAt.Format "Jan 2, 2006 15:04 MST"}}</td></tr>
  <tr><td>Payment reference</td><td>{{.PaymentIntentID}}</td></tr>
</table>
{{template "rugs" .RugDetails}}
<p>The job has been moved to in progress.</p>
{{define "rugs"}}{{if .}}<h3>Rugs</h3>
<table>
  <tr><th>Rug</th><th>Type</th><th>Dimensions</th><th>Services</th><th>Total</th></tr>
  {{range .}}<tr><td>{{.RugNumber}}</td><td>{{.RugType}}</td><td>{{.Dimensions}}</td><td>{{range $i, $s := .Services}}{{if $i}}, {{end}}{{$s}}{{end}}</td><td>${{.Total}}</td></tr>
  {{end}}
</table>{{end}}{{end}}`))

var clientTemplate = template.Must(template.Must(staffTemplate.Clone()).New("client").Parse(`<h2>Thank you for your payment</h2>
<p>Hi {{.ClientName}},</p>
<p>We received your payment of <strong>${{.Amount}}</strong> for job <strong>{{.JobNumber}}</strong>. Work on your rugs is now under way.</p>
{{template "rugs" .RugDetails}}
{{if .Invoice}}<p>Your invoice is attached.</p>{{end}}
<p>{{.BusinessName}}<br>{{.BusinessPhone}}<br>{{.BusinessAddress}}<br>{{.BusinessEmail}}</p>`))

func renderStaff(c *entities.ConfirmationContext) (string, error) {
	var buf bytes.Buffer
	if err := staffTemplate.ExecuteTemplate(&buf, "staff", c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderClient(c *entities.ClientConfirmation) (string, error) {
	var buf bytes.Buffer
	if err := clientTemplate.ExecuteTemplate(&buf, "client", c); err != nil {
		return "", err
	}
	return buf.String(), nil
}
