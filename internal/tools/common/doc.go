// Package common holds shared plumbing for the MCP tool packages:
// account argument handling, manager lookup per account, and handler
// wrappers that record tool metrics and audit events.
package common
