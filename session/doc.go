/*
Package session centralizes admin session state and cookie behavior.

Sessions live server-side in the Manager; the browser only carries an
opaque random id in an HttpOnly, SameSite=Lax cookie. A one-time flash
message (the login failure notice) can ride on a session across a
redirect and is consumed on first read.
*/
package session
