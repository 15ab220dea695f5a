package gclipboard

import (
	"strings"

	"github.com/atotto/clipboard"
)

// clipboard text without surrounding blanks
func ReadAll() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
