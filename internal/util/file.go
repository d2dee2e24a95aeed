package util

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SniffContentType reads up to 512 bytes of reader and returns the detected
// type when it matches one of allowedTypes. Entries ending in "/" match a
// whole family such as "image/".
func SniffContentType(reader io.Reader, allowedTypes []string) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(reader, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}

	contentType := http.DetectContentType(head[:n])
	base, _, _ := strings.Cut(contentType, ";")
	for _, allowed := range allowedTypes {
		if base == allowed || (strings.HasSuffix(allowed, "/") && strings.HasPrefix(base, allowed)) {
			return contentType, nil
		}
	}
	return contentType, fmt.Errorf("content type %q is not accepted", base)
}
