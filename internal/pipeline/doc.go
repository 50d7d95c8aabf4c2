// Package pipeline runs the scan of one page as a sequence of steps and
// submits chosen addresses to the lead service.
//
// The default scan pipeline is:
//
//	domain -> fetch -> match -> existence
//
// Every step records its outcome on the shared *model.ScanReport. Failures
// that the operator can live with (an unparsable URL, a page that could not
// be downloaded, an existence check that failed) are recorded and logged
// but never abort the scan.
//
// Submitter implements the "add to list" action for a single address. It
// repeats the existence check at the time of the action, routes the lead to
// the right endpoint and remembers the chosen category.
package pipeline
