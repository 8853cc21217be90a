package notify

import (
	"strings"
	"text/template"
	"time"

	"github.com/MKhiriev/reclaim/models"
)

// TemplateRecoveryMessage renders the free-form recovery message a user
// copies and shares outside the app.
const TemplateRecoveryMessage = "recovery_message"

var messageTemplates = template.Must(template.New("messages").
	Funcs(template.FuncMap{
		"join": strings.Join,
		"when": func(t *time.Time) string {
			if t == nil {
				return "never"
			}
			return t.UTC().Format("Jan 2, 2006 15:04 MST")
		},
	}).
	Parse(`
{{- define "breach_alert" -}}
Hi {{.ContactName}}, this is a security alert from Reclaim. {{.ProfileName}}'s accounts may be compromised
{{- with .Platforms}} ({{join . ", "}}){{end}}. Their identity was last verified {{when .LastVerification}}.
Please ignore unusual requests from their accounts until they confirm it is really them.
{{- end -}}

{{- define "additional_alert" -}}
Update from {{.ProfileName}}: {{.Message}}
{{- end -}}

{{- define "recovery_request" -}}
Hi {{.ContactName}}, {{.ProfileName}} is recovering their account and needs you to vouch for their identity.
{{- with .Message}} {{.}}{{end}}
{{- end -}}

{{- define "review_resolution" -}}
Hi {{.ContactName}}, thank you for flagging suspicious activity on {{.ProfileName}}'s accounts. It was reviewed and turned out to be a false alarm.
{{- end -}}

{{- define "recovery_update" -}}
Hi {{.ContactName}}, {{.ProfileName}} has recovered their account. Thank you for helping.
{{- end -}}

{{- define "recovery_message" -}}
This is {{.ProfileName}}. My accounts were compromised
{{- with .Platforms}} ({{join . ", "}}){{end}} and I am recovering them now. I last verified my identity {{when .LastVerification}}.
{{- with .Message}} {{.}}{{end}}
{{- end -}}
`))

// messageData is what every template sees.
type messageData struct {
	ContactName      string
	ProfileName      string
	LastVerification *time.Time
	Platforms        []string
	Message          string
}

func render(name string, data messageData) (string, error) {
	var b strings.Builder
	if err := messageTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}

// ComposeRecoveryMessage renders the shareable recovery message.
func ComposeRecoveryMessage(profileName string, lastVerification *time.Time, platforms []string, message string) (string, error) {
	return render(TemplateRecoveryMessage, messageData{
		ProfileName:      profileName,
		LastVerification: lastVerification,
		Platforms:        platforms,
		Message:          strings.TrimSpace(message),
	})
}

func templateFor(t models.NotificationType) string {
	return string(t)
}
