// Package candidate holds the records produced by a crawl and shared by the
// store, the flat export and the display page.
package candidate

// Field identifies one extracted attribute of a Candidate.
type Field int

const (
	FieldName Field = iota
	FieldTitle
	FieldCompany
	FieldLocation
	FieldExperience
)

// Fields lists every Field in export column order.
var Fields = []Field{
	FieldName,
	FieldTitle,
	FieldCompany,
	FieldLocation,
	FieldExperience,
}

// Column is the column name used both in the store and in the CSV header.
func (f Field) Column() string {
	switch f {
	case FieldName:
		return "nome"
	case FieldTitle:
		return "titulo"
	case FieldCompany:
		return "empresa"
	case FieldLocation:
		return "localizacao"
	case FieldExperience:
		return "experiencia"
	}
	return ""
}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldTitle:
		return "title"
	case FieldCompany:
		return "company"
	case FieldLocation:
		return "location"
	case FieldExperience:
		return "experience"
	}
	return "unknown"
}

// Candidate is a scraped profile. Any field may be empty.
type Candidate struct {
	Name       string
	Title      string
	Company    string
	Location   string
	Experience string
}

func (c Candidate) Get(f Field) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldTitle:
		return c.Title
	case FieldCompany:
		return c.Company
	case FieldLocation:
		return c.Location
	case FieldExperience:
		return c.Experience
	}
	return ""
}

func (c *Candidate) Set(f Field, value string) {
	switch f {
	case FieldName:
		c.Name = value
	case FieldTitle:
		c.Title = value
	case FieldCompany:
		c.Company = value
	case FieldLocation:
		c.Location = value
	case FieldExperience:
		c.Experience = value
	}
}

// Header returns the column names in export order.
func Header() []string {
	out := make([]string, len(Fields))
	for i, f := range Fields {
		out[i] = f.Column()
	}
	return out
}

// Row returns the field values in export order.
func (c Candidate) Row() []string {
	out := make([]string, len(Fields))
	for i, f := range Fields {
		out[i] = c.Get(f)
	}
	return out
}

// Experience is a single past position of a stored candidate.
type Experience struct {
	CandidateID int64
	Company     string
	Role        string
	Period      string
	Description string
}
