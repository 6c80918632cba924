package textutil

import (
	"strings"

	"github.com/neurosnap/sentences"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// tags whose text content is never wanted in a rendered transcript
var ignoreTags = map[string]bool{
	"script": true, "style": true, "head": true, "noscript": true,
}

// StripHTML removes markup from model output, keeping only text
// content. Model replies occasionally carry stray tags; rendering them
// verbatim into the chat fragment would inject markup into the widget.
// If parsing fails the input is returned unchanged.
func StripHTML(input string) string {
	if !strings.ContainsRune(input, '<') {
		return input
	}
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		log.Warnf("Failed to parse HTML in model output, keeping raw text: %v", err)
		return input
	}

	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n == nil {
			return
		}
		if n.Type == html.ElementNode && ignoreTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)
	return strings.TrimSpace(sb.String())
}

// FirstSentence returns the first sentence of text, for one-line
// previews in history listings. Falls back to a word cut when the
// tokenizer finds no sentence boundary.
func FirstSentence(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	tokenizer := sentences.NewSentenceTokenizer(nil) // Default locale
	if sents := tokenizer.Tokenize(text); len(sents) > 0 {
		first := strings.TrimSpace(sents[0].Text)
		if first != "" {
			return truncateWords(first, maxLen)
		}
	}
	return truncateWords(text, maxLen)
}

func truncateWords(text string, maxLen int) string {
	if maxLen <= 0 || len(text) <= maxLen {
		return text
	}
	cut := text[:maxLen]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
