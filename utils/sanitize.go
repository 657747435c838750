package utils

import "github.com/microcosm-cc/bluemonday"

// contentPolicy is the single sanitization boundary for user-authored HTML.
// It allows the formatting a rich-text editor produces (headings, lists,
// links, images, tables, code blocks) and strips everything executable:
// script/style/iframe elements, event-handler attributes and javascript:
// URLs. Links gain rel="nofollow". Content is sanitized once on write and
// trusted on read.
var contentPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("pre", "code", "span", "p", "div")
	p.AllowImages()
	p.AllowTables()
	return p
}()

func SanitizeHTML(html string) string {
	return contentPolicy.Sanitize(html)
}
