package cli

const examTemplate = `{{range .}}{{.Exam.ID}}  {{.Exam.Name}}
    CFU: {{.Exam.CFU}}  Date: {{date .Exam.Date}}{{if .Badge}} ({{.Badge}}){{end}}  Status: {{.Exam.Status}}
{{- if .Exam.HasGrade}}  Grade: {{grade .Exam.Grade}}{{end}}
{{end}}`

const examStatsTemplate = `
=== Exam Statistics ===

Weighted average:  {{printf "%.2f" .Average}} / 30
Estimated final:   {{.Final}} / 110
Passed:            {{.Totals.Passed}} ({{.Totals.PassedCFU}} CFU)
Pending:           {{.Totals.Pending}} ({{.Totals.PendingCFU}} CFU)
`

const projectTemplate = `
=== Project Details ===

Name:     {{.Project.Name}}
ID:       {{.Project.ID}}
Status:   {{.Project.Status}}
{{- if .Project.Description}}
About:    {{.Project.Description}}
{{- end}}
Progress: {{bar .Progress 20}} {{.Progress}}%

Tasks:
{{- range .Project.Tasks}}
  [{{if .Completed}}x{{else}} {{end}}] {{.Text}}  ({{.ID}})
{{- else}}
  No tasks yet.
{{- end}}
`

const goalTemplate = `{{range .}}{{.Goal.ID}}  {{.Goal.Name}}{{if .Status.Completed}}  (completed){{end}}
    {{bar .Status.Percent 20}} {{number .Goal.Current}} / {{number .Goal.Target}}{{if .Goal.Unit}} {{.Goal.Unit}}{{end}} ({{.Status.Percent}}%)
{{- if .Goal.Deadline}}
    Deadline: {{date .Goal.Deadline}}{{if .Badge}} ({{.Badge}}){{end}}
{{- end}}
{{end}}`

const financeTemplate = `
=== Finance ({{.Summary.Month}}) ===

Income:    {{money .Summary.Income}}
Expenses:  {{money .Summary.Expenses}}
Balance:   {{money .Summary.Balance}}
{{- if .Summary.BudgetEnabled}}

Budget:    {{money .Summary.Budget}}
Used:      {{bar .Summary.Utilization 20}} {{.Summary.Utilization}}% ({{.Summary.Level}})
Remaining: {{money .Summary.Remaining}}
{{- end}}
{{- if .Categories}}

Expenses by category:
{{- range .Categories}}
  {{printf "%-14s" (category .Category)}} {{money .Amount}} ({{.Percent}}%)
{{- end}}
{{- end}}
`

const overviewTemplate = `
=== Overview ({{date .Today}}) ===

Study:    {{printf "%.2f" .Average}} average (final {{.Final}}/110), {{.Exams.Passed}} passed, {{.Exams.Pending}} pending
Projects: {{.Projects.Active}} active, {{.Projects.Paused}} paused, {{.Projects.Completed}} completed
Habits:   {{.HabitsDone}} / {{.HabitsTotal}} done today, best streak {{.BestStreak}}
Goals:    {{.GoalsCompleted}} / {{.GoalsTotal}} completed
Balance:  {{money .Finance.Balance}} this month
{{- if .Finance.BudgetEnabled}} ({{.Finance.Utilization}}% of budget){{end}}
{{- if .LastExport}}
Last backup: {{.LastExport}}
{{- end}}
`
