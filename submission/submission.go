package submission

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/kristjanb/petition/models"
)

// Field length limits.
const (
	NameMaxLength    = 128
	CommentMaxLength = 400
)

// User-facing validation messages.
const (
	MsgNameEmpty         = "Nafn má ekki vera tómt"
	MsgNameTooLong       = "Nafn má að hámarki vera 128 stafir"
	MsgNationalIDEmpty   = "Kennitala má ekki vera tóm"
	MsgNationalIDPattern = "Kennitala verður að vera á formi 000000-0000 eða 0000000000"
	MsgCommentTooLong    = "Athugasemd má að hámarki vera 400 stafir"
)

// nationalIDPattern accepts ten digits, optionally hyphenated as 6+4.
var nationalIDPattern = regexp.MustCompile(`^[0-9]{6}-?[0-9]{4}$`)

// sanitizer strips all HTML from untrusted input.
var sanitizer = bluemonday.StrictPolicy()

// Validate checks the raw form against the submission rules. Every
// violated rule contributes its own message; validation never stops at
// the first failure.
func Validate(form models.SubmissionForm) []models.FieldError {
	var errs []models.FieldError

	if utf8.RuneCountInString(form.Name) < 1 {
		errs = append(errs, models.FieldError{Field: "name", Message: MsgNameEmpty})
	}
	if utf8.RuneCountInString(form.Name) > NameMaxLength {
		errs = append(errs, models.FieldError{Field: "name", Message: MsgNameTooLong})
	}

	if utf8.RuneCountInString(form.NationalID) < 1 {
		errs = append(errs, models.FieldError{Field: "nationalId", Message: MsgNationalIDEmpty})
	}
	if !nationalIDPattern.MatchString(form.NationalID) {
		errs = append(errs, models.FieldError{Field: "nationalId", Message: MsgNationalIDPattern})
	}

	if utf8.RuneCountInString(form.Comment) > CommentMaxLength {
		errs = append(errs, models.FieldError{Field: "comment", Message: MsgCommentTooLong})
	}

	return errs
}

// Sanitize strips HTML and script payloads from every form field. Runs
// before any re-render so reflected input on error pages cannot carry a
// payload, and before persistence on the success path.
func Sanitize(form models.SubmissionForm) models.SubmissionForm {
	return models.SubmissionForm{
		Name:       sanitizer.Sanitize(form.Name),
		NationalID: sanitizer.Sanitize(form.NationalID),
		Comment:    sanitizer.Sanitize(form.Comment),
		Anonymous:  sanitizer.Sanitize(form.Anonymous),
	}
}

// Normalize prepares a validated, sanitized form for persistence: the
// name is trimmed and HTML-escaped, the national ID loses its optional
// hyphen, and the checkbox value becomes a boolean.
func Normalize(form models.SubmissionForm) models.Signature {
	return models.Signature{
		Name:       html.EscapeString(strings.TrimSpace(form.Name)),
		NationalID: strings.ReplaceAll(form.NationalID, "-", ""),
		Comment:    form.Comment,
		Anonymous:  form.Anonymous == "on",
	}
}
