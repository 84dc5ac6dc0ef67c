/*
Package storage defines the store contracts the HTTP layer depends on.

# Interfaces

  - SignatureStore: insert, paginated list, count, delete
  - UserStore: administrator lookups by username and id

Two implementations exist:

  - storage/postgres: the real store over a pooled *sql.DB
  - storage/memory: an in-memory store for tests

# Sentinels

Lookups distinguish three outcomes: found, ErrNotFound (legitimate
absence), and any other error (the lookup itself failed). Callers branch
with errors.Is. Insert reports a uniqueness violation as ErrDuplicate.

# Passwords

ComparePasswords delegates to bcrypt and is the only place plaintext
passwords are touched.
*/
package storage
