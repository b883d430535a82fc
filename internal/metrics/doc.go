// Package metrics provides the observability hooks for docnav builds.
//
// Components receive a Recorder and default to NoopRecorder, so metrics never
// need nil checks:
//
//	nav := navigation.New(cfg).WithRecorder(metrics.NewPrometheusRecorder(nil))
//
// The CLI is a one-shot process, so PrometheusRecorder exposes WriteTextfile
// for node_exporter's textfile collector instead of an HTTP endpoint.
package metrics
