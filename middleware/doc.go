/*
Package middleware provides the handler wrappers shared across routes.

  - WithLogging: structured request/completion logging
  - WithRecovery: panic catch-all, generic 500 instead of a dead task
  - RequireLogin: admin session gate, redirects to /admin/login

Wrappers compose outside-in:

	middleware.WithLogging(middleware.WithRecovery(handler))
*/
package middleware
