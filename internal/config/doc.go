// Package config handles configuration loading and validation for rangefetch.
//
// Configuration lives in a TOML file. Every setting has a built-in default,
// so the file is optional and may be partial; missing fields are filled in
// before validation. Validation is struct-tag driven (go-playground/validator)
// with custom tags for the chunk file name template and listen addresses,
// and reports all problems at once via ValidationErrors.
package config
