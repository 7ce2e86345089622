package cli

const noteTemplate = `
=== Note ===

Title:   {{.Title}}
ID:      {{.ID}}
Updated: {{time .UpdatedAt}}
State:   {{.State}}
{{- if .SyncedAt }}
Synced:  {{timePtr .SyncedAt}}
{{- end}}
{{- if .Error }}
Error:   {{.Error}}
{{- end}}

---
{{.Body}}
---
`

const noteListTemplate = `
=== Notes ===
{{ if eq (len .) 0 }}
No notes found.

Use 'gophnotes new' to create your first note.
{{ else }}
Found {{len .}} note(s):
{{ range . }}
- {{ .Title }}
   ID:      {{ .ID }}
   Updated: {{ time .UpdatedAt }}
   State:   {{ .State }}
   {{- if .Error }}
   Error:   {{ .Error }}
   {{- end }}
   {{- if .Body }}
   Preview: {{ preview .Body 50 }}
   {{- end }}
{{ end }}
Use 'gophnotes show <id>' to view full content.
{{ end -}}
`

const statusTemplate = `
=== Sync Status ===

Server:    {{ if .Online }}online{{ else }}offline{{ end }}
State:     {{.State}}
Last sync: {{timePtr .LastSync}}
{{- if .Error }}
Error:     {{.Error}}
{{- end}}
Notes:     {{.Notes}}
{{ if gt .Pending 0 }}
Pending sync: {{.Pending}} change(s) waiting to be synchronized
{{- range .Unsynced }}
  - {{ .Title }} ({{ .ID }}): {{ .State }}{{ if .Error }}: {{ .Error }}{{ end }}
{{- end }}

Run 'gophnotes sync' to synchronize with server.
{{ else }}
All notes synchronized with server
{{ end -}}
`

const syncTemplate = `
=== Synchronization ===
{{ if .Skipped }}
Server is unreachable, sync skipped.
Local changes are kept and will be synchronized later.
{{ else }}
Attempted: {{.Attempted}}
Synced:    {{.Synced}}
Failed:    {{.Failed}}
Stale:     {{.Stale}}
Deleted:   {{.Deleted}}
{{ if gt .Failed 0 }}
{{.Failed}} note(s) failed to sync. Run 'gophnotes status' for details.
{{ else }}
Synchronization completed successfully!
{{ end -}}
{{ end -}}
`
