/*
Package router wires the HTTP surface.

# Routes

	GET  /                     public listing (?page=N)
	POST /                     submit a signature
	GET  /admin                admin listing (session required)
	GET  /admin/login          login form
	POST /admin/login          credential check
	GET  /admin/logout         end session
	POST /admin/delete/{id}    delete a signature (session required)
	GET  /health               health check

Every route is wrapped with logging and panic recovery; the admin
listing and delete additionally sit behind the session gate.
*/
package router
