// Package batch provides fan-out helpers for tools that operate on
// multiple Drive files per invocation.
//
// Tools accept a fileIds argument that is either a single ID or an
// array; ParseFileIDs normalizes both forms, Process applies an
// operation per file collecting partial failures, and FormatResults
// renders the aggregated outcome as JSON.
package batch
