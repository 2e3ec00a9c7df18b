// Package log provides simple leveled logging for rangefetch.
//
// It implements a lightweight logger with colored console output and four
// levels: DEBUG (verbose mode only), INFO, WARN and ERROR. Warnings and
// errors are written to stderr, everything else to stdout.
//
// Basic usage:
//
//	log.Infof("Fetching %s from %s...", name, url)
//	log.Warnf("No CIDRs found for %s", name)
//	log.Errorf("Error fetching %s: %v", name, err)
//
// Enable debug output with:
//
//	log.SetVerbose(true)
package log
