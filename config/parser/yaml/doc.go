// Package yaml parses studio configuration files with goccy/go-yaml.
//
// Sections are addressed with colon separated paths ("api", "listener")
// that are turned into YAML paths ("$.api"). Durations such as
// "readHeaderTimeout: 5s" decode into time.Duration fields.
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var cfg api.Config
//	err := parser.Parse(data, &cfg, "api")
package yaml
