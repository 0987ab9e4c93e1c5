// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import (
	"io"

	"github.com/charmbracelet/log"
)

// Default sizes of the unique tables and of the computed caches.
const (
	_DEFAULTBUCKETS   = 8009
	_DEFAULTCACHESIZE = 30011
)

// configs is used to store the values of different parameters of a Manager
type configs struct {
	buckets   int         // initial number of buckets in the unique tables
	cachesize int         // number of entries in the computed caches
	logger    *log.Logger // where to report events, discarded by default
}

func makeconfigs() *configs {
	return &configs{
		buckets:   _DEFAULTBUCKETS,
		cachesize: _DEFAULTCACHESIZE,
	}
}

// Buckets is a configuration option (function). Used as a parameter in New it
// sets the initial number of buckets in the unique tables. The tables grow when
// the number of nodes exceeds the number of buckets, so this value only
// matters for performance. Values smaller than 7 are ignored.
func Buckets(size int) func(*configs) {
	return func(c *configs) {
		if size >= 7 {
			c.buckets = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New it
// sets the number of entries in the computed caches. The caches never grow and
// entries are overwritten on collisions. The default value is 30 011.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 7 {
			c.cachesize = size
		}
	}
}

// Logger is a configuration option (function). Used as a parameter in New it
// sets the logger used to report diagnostics, such as illegal patterns in
// EvalCube or resizing of the unique tables.
func Logger(l *log.Logger) func(*configs) {
	return func(c *configs) {
		c.logger = l
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
