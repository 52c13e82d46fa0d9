package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// DB abstracts the local store that holds employees, sessions and
// dispatch drafts. Shipment data itself lives behind the carrier API.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
