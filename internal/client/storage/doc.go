// Package storage opens the key-value backend selected in the configuration.
//
// Open returns a kv.Repository together with a close function releasing the
// underlying connection. The SQL backends (sqlite, postgres) apply the
// embedded goose migrations before the repository is returned; redis is
// pinged; s3 builds a client for an AWS or MinIO endpoint. The memory
// backend keeps nothing between runs and is meant for tests and demos.
package storage
