// Package config loads the studio service configuration.
//
// A Provider combines four extension points: a DataFetcher returns raw bytes,
// a Parser decodes them (optionally a single section addressed by a colon
// separated path), then a Defaulter and a Validator finish the target.
//
// Studio is the whole service file:
//
//	log:
//	  level: info
//	  file: /var/log/studio/studio.log
//	listener:
//	  address: ":8080"
//	api:
//	  corsOrigins: [localhost]
//	  rateLimit: 20
//	session:
//	  capacity: 1024
//	  snapshotPath: /var/lib/studio/sessions.zst
//
// Load reads such a file with the YAML parser in strict mode and expands
// environment variables first.
package config
