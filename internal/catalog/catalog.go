// Package catalog holds the static question and parameter catalogs.
// Both are compile-time constants; nothing here is configurable at
// runtime.
package catalog

// QuestionID identifies a wizard question. Form fields are bound to
// identifiers through an explicit switch in the wizard, never through
// string-keyed record access.
type QuestionID string

const (
	QuestionReportType QuestionID = "reportType"
	QuestionPeriod     QuestionID = "period"
)

// Question is a single ordered question with its fixed option set.
type Question struct {
	ID      QuestionID
	Prompt  string
	Options []string
}

var questions = []Question{
	{
		ID:     QuestionReportType,
		Prompt: "What type of report do you need?",
		Options: []string{
			"Water Quality Assessment",
			"Groundwater Level Analysis",
			"Contamination Screening",
			"Seasonal Trend Summary",
		},
	},
	{
		ID:     QuestionPeriod,
		Prompt: "Which time period should the report cover?",
		Options: []string{
			"Last 1 month",
			"Last 6 months",
			"Last 1 year",
			"Last 5 years",
		},
	},
}

var parameters = []string{
	"pH Level",
	"Fluoride Level",
	"Arsenic Level",
	"Nitrate Level",
	"Total Dissolved Solids",
	"Electrical Conductivity",
	"Chloride Level",
	"Water Table Depth",
}

// Questions returns the ordered question list.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionCount returns the number of questions in the catalog.
func QuestionCount() int {
	return len(questions)
}

// Parameters returns the fixed catalog of measurable parameters.
func Parameters() []string {
	out := make([]string, len(parameters))
	copy(out, parameters)
	return out
}

// IsOption reports whether value is one of the question's declared options.
func (q Question) IsOption(value string) bool {
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}
