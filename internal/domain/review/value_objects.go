package review

import "strings"

const MaxContentLength = 2000

type Content struct {
	text string
}

func NewContent(s string) (Content, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Content{}, ErrEmptyContent
	}
	if len(t) > MaxContentLength {
		return Content{}, ErrContentTooLong
	}
	return Content{text: t}, nil
}

func (c Content) String() string { return c.text }

// ReconstructContent rehydrates stored text without re-validating; storage
// only ever holds content that passed NewContent.
func ReconstructContent(s string) Content {
	return Content{text: s}
}
