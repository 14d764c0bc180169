// Package report renders evaluation reports.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text for the terminal, optionally colored
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: Markdown with tables and a mermaid pie chart of bands
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed with MultiWriter. Passwords are masked unless
// a writer is explicitly told to show them.
package report
