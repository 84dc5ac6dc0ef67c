/*
Package templates holds the embedded server-rendered views and their view
models.

Views: index (public listing + submission form), admin (listing with
per-row delete), login, and error (also used for the "already signed?"
conflict page).

The public index withholds the signer's name for anonymous submissions;
the admin view always shows it. html/template auto-escaping applies to
everything rendered, on top of the input sanitization done by the
submission package.
*/
package templates
