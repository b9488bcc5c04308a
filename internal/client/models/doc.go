// Package models defines the entities held in the durable document and the
// transient session that points into it.
package models
