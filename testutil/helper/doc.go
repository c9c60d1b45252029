// Package helper provides fixtures and a capturing slog.Handler shared by the tests of this module.
package helper
