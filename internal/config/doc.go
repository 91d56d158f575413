// Package config provides settings loading, merging, and validation for the
// service.
//
// Settings are assembled in the following priority order (later sources
// override earlier ones):
//  1. Base defaults
//  2. Environment variant defaults (development, testing, staging, production)
//  3. .env file values
//  4. Process environment variables
//
// The environment itself is resolved first: an explicit override wins over
// the ENVIRONMENT variable, which wins over "development".
//
// The main entry points are [Loader.Load] for runtime settings and
// [TestSettings] for isolated test construction.
package config
