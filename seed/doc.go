/*
Package seed generates synthetic petition signatures for local
development fixtures. It is used only by the cmd/seed binary and is not
part of the server's contract.
*/
package seed
