// Package server provides the MCP server context, health checks, and the
// dedicated metrics server for the gdocuments application.
//
// # Key Components
//
// ServerContext manages document managers with lazy initialization and
// caching. It supports multiple accounts, each resolved through its own
// service account key file (GOOGLE_DOCUMENT_SERVICE_JSON_<ACCOUNT>).
//
// HealthChecker exposes liveness and readiness endpoints for Kubernetes
// probes.
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolating
// operational metrics from the MCP transport.
package server
