// Package build provides the canonical navigation build pipeline for docnav.
//
// All execution paths (the CLI commands and the watcher) route through
// BuildService: load docs, build navigation, render, write.
package build
