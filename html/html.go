/*
Package html collects the textual content of HTML documents into arrays of
text segments.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"

	"github.com/npillmayer/dsarray"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InnerText creates an array of the text segments of an HTML element and all
// its descendents, in document order. Joined, the segments resemble the text
// produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents). Content of <script> and <style>
// elements is skipped.
//
// Every text node of the element's descendents results in one element of the
// array.
func InnerText(n *html.Node) (*dsarray.Array[string], error) {
	if n == nil {
		return nil, dsarray.ErrIllegalArguments
	}
	b := dsarray.NewBuilder[string]()
	collectText(n, b)
	return b.Array(), nil
}

func collectText(n *html.Node, b *dsarray.Builder[string]) {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	case html.TextNode:
		b.Append(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML creates an array from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*dsarray.Array[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := dsarray.NewBuilder[string]()
	for _, n := range nodes {
		collectText(n, b)
	}
	return b.Array(), nil
}
