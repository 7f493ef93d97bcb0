// Package file reads a studio configuration file for config.Provider.
//
// The file is read once when the Fetcher is constructed, so every section
// parsed from it sees the same contents.
//
//	fetcher, err := file.NewFetcher("studio.yaml", file.WithEnvExpansion())()
//	if err != nil {
//	    // missing file, permission denied, or a directory (ErrPathIsDirectory)
//	}
package file
