/*
Package postgres manages the database connection backing resource handlers.
As part of the connection process, all migrations run against the target database.

A [*Store] exposes the small set of lookups resource handlers conventionally
need - find by primary ID, fetch all, insert - so a resource's find_by_id and
all handlers are one-line closures over it. Anything more involved composes
against the embedded *gorm.DB directly.
*/
package postgres
