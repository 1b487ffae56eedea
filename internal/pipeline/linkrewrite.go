package pipeline

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// External link attributes.
const (
	externalTarget = "_blank"
	externalRel    = "noopener noreferrer nofollow"
)

// RewriteExternalLinks makes anchors that point to absolute http(s) URLs
// open in a new browsing context without access to the page.
//
// Does NOT rewrite:
//   - fragment links (#fn:1) and relative paths
//   - mailto: and other non-web schemes
//   - anchors without href
func RewriteExternalLinks(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		if href, ok := attr(n, "href"); ok && isExternalURL(href) {
			setAttr(n, "target", externalTarget)
			setAttr(n, "rel", externalRel)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		RewriteExternalLinks(c)
	}
}

// isExternalURL reports whether href is an absolute http(s) URL with a host.
func isExternalURL(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return false
	}

	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// attr returns the value of the named attribute.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// setAttr sets or replaces the named attribute.
func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
