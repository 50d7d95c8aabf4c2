// Package model defines the data structures shared by the leadscan packages.
//
// This package contains the following main types:
//   - Page: a downloaded web page (the "active tab")
//   - EmailSet: deduplicated candidate email addresses
//   - ScanReport: the result of one scan of a page
//   - Category: a lead category stored by the remote lead service
//   - Submission: a locally recorded, successfully submitted lead
//
// Models live in their own package so that fetch, extract, pipeline, store
// and report can share them without import cycles. All of them serialize to
// JSON for report output and local storage.
package model
