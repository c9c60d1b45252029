// Package config loads the runtime configuration of the book record service
// and turns it into configured PostgreSQL connections and a ready bookstore.
//
// Values come from an optional config file (any format viper understands, picked by extension),
// overridden by environment variables with the BOOKRECORD_ prefix,
// e.g. BOOKRECORD_POSTGRES_DSN or BOOKRECORD_BOOKSTORE_TABLE_NAME.
package config
