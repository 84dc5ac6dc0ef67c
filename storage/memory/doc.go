/*
Package memory provides an in-memory implementation of the storage
interfaces for tests. It enforces the same national ID uniqueness rule
and newest-first ordering as the postgres store.
*/
package memory
