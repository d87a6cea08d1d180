package types

// Migration is a single embedded SQL migration. SQL holds both directions
// split by the "-- +migrate Up" marker; Prefix is prepended to the ID and
// replaces the /*dbprefix*/ placeholder so one schema can be installed
// several times in the same file.
type Migration struct {
	ID     string
	SQL    string
	Prefix string
}
