// Package extract finds candidate email addresses in page text and narrows
// them to the ones that belong to the page's domain.
//
// Matching uses one fixed pattern over the whole text, so anything that
// looks like an address counts, including addresses inside scripts,
// attributes and comments. The pattern deliberately caps the top-level
// label at three characters: "a@b.info" yields "a@b.inf".
//
// Narrowing is a SuffixRule. The default rule keeps an address when it ends
// with "@" followed by the page domain or by one of the allow-listed webmail
// domains (gmail.com unless configured otherwise).
package extract
