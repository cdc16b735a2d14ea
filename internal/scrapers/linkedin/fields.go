package linkedin

import (
	"candidatescout/internal/candidate"
	"candidatescout/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// FieldExtractor pulls a single field out of a profile page, it returns ""
// when the field is missing.
type FieldExtractor interface {
	Field() candidate.Field
	Extract(doc *goquery.Document) string
}

func firstMatch(doc *goquery.Document, selector string) string {
	return htmlutil.FirstText(doc.Find(selector))
}

type NameExtractor struct {
	Selector string
}

func (NameExtractor) Field() candidate.Field { return candidate.FieldName }

func (e NameExtractor) Extract(doc *goquery.Document) string {
	return firstMatch(doc, e.Selector)
}

// TitleExtractor reads the headline under the name.
type TitleExtractor struct {
	Selector string
}

func (TitleExtractor) Field() candidate.Field { return candidate.FieldTitle }

func (e TitleExtractor) Extract(doc *goquery.Document) string {
	return firstMatch(doc, e.Selector)
}

type CompanyExtractor struct {
	Selector string
}

func (CompanyExtractor) Field() candidate.Field { return candidate.FieldCompany }

func (e CompanyExtractor) Extract(doc *goquery.Document) string {
	return firstMatch(doc, e.Selector)
}

type LocationExtractor struct {
	Selector string
}

func (LocationExtractor) Field() candidate.Field { return candidate.FieldLocation }

func (e LocationExtractor) Extract(doc *goquery.Document) string {
	return firstMatch(doc, e.Selector)
}

// ExperienceExtractor reads the free-text experience summary, it is not
// parsed into a duration.
type ExperienceExtractor struct {
	Selector string
}

func (ExperienceExtractor) Field() candidate.Field { return candidate.FieldExperience }

func (e ExperienceExtractor) Extract(doc *goquery.Document) string {
	return firstMatch(doc, e.Selector)
}

// DefaultExtractors matches the profile page markup at the time of writing.
func DefaultExtractors() []FieldExtractor {
	return []FieldExtractor{
		NameExtractor{Selector: "h1.t-24.t-bold"},
		TitleExtractor{Selector: "div.text-body-medium.break-words"},
		CompanyExtractor{Selector: "div.text-body-small"},
		LocationExtractor{Selector: "span.text-body-small"},
		ExperienceExtractor{Selector: "span.mr1.t-normal"},
	}
}
