// Package logging builds the JSON slog logger used by the studio service.
// Output goes to the writer the caller passes in, or to a size-rotated file
// when LoggerConfig.File is set.
package logging
