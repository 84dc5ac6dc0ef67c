/*
Package submission implements the pipeline applied to untrusted signature
form input before persistence.

# Pipeline

	form := readForm(r)
	sanitized := submission.Sanitize(form)
	if errs := submission.Validate(form); len(errs) > 0 {
		// re-render the form with the sanitized input and all messages
	}
	sig := submission.Normalize(sanitized)
	// persist sig

# Rules

  - name: non-empty, at most 128 characters
  - nationalId: non-empty, ten digits optionally hyphenated as 6+4
    (000000-0000 or 0000000000)
  - comment: at most 400 characters

All violations are collected and returned together; the messages are
user-facing and attached to the offending field.

# Sanitization

Every field, including the raw checkbox value, passes through a
strip-everything HTML policy before it can be reflected back to the
visitor or persisted.
*/
package submission
