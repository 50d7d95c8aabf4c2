// Package main provides the entry point for the leadscan CLI.
//
// leadscan collects email leads from a web page. It downloads the page,
// keeps the addresses that belong to the page's domain, checks which ones
// the lead service already knows and submits the new ones under a
// category.
//
// Usage:
//
//	leadscan scan <page-url>
//	leadscan submit <page-url> <email>
//	leadscan category list
//
// See --help for all available options.
package main

func main() {
	Execute()
}
