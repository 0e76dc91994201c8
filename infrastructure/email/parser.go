// Package email extracts the fields the reservation inbox cares about
// from raw RFC 5322 messages received through SES.
package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"hai-backend/application/ports"
)

// Parse reads a raw message and returns the sender, subject, date and
// plain-text body. Multipart messages yield their first text/plain
// part; a missing one falls back to the first text/html part.
func Parse(data []byte) (ports.InboundEmail, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(data))
	if err != nil {
		return ports.InboundEmail{}, fmt.Errorf("failed to parse message: %w", err)
	}

	parsed := ports.InboundEmail{
		From:    decodeHeader(msg.Header.Get("From")),
		Subject: decodeHeader(msg.Header.Get("Subject")),
		Date:    msg.Header.Get("Date"),
	}
	if from, err := mail.ParseAddress(msg.Header.Get("From")); err == nil {
		parsed.From = from.Address
	}

	body, err := extractBody(msg.Header.Get("Content-Type"),
		msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
	if err != nil {
		return ports.InboundEmail{}, err
	}
	parsed.Body = strings.TrimSpace(body)
	return parsed, nil
}

func extractBody(contentType, transferEncoding string, body io.Reader) (string, error) {
	if contentType == "" {
		return readAll(body, transferEncoding)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return readAll(body, transferEncoding)
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return extractMultipart(body, params["boundary"])
	}
	return readAll(body, transferEncoding)
}

func extractMultipart(body io.Reader, boundary string) (string, error) {
	if boundary == "" {
		return "", fmt.Errorf("multipart message without boundary")
	}

	var htmlFallback string
	reader := multipart.NewReader(body, boundary)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read message part: %w", err)
		}

		mediaType, params, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil {
			continue
		}
		encoding := part.Header.Get("Content-Transfer-Encoding")

		switch {
		case strings.HasPrefix(mediaType, "multipart/"):
			nested, err := extractMultipart(part, params["boundary"])
			if err == nil && nested != "" {
				return nested, nil
			}
		case mediaType == "text/plain":
			return readAll(part, encoding)
		case mediaType == "text/html" && htmlFallback == "":
			htmlFallback, _ = readAll(part, encoding)
		}
	}
	return htmlFallback, nil
}

func readAll(r io.Reader, transferEncoding string) (string, error) {
	switch strings.ToLower(transferEncoding) {
	case "base64":
		r = base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		r = quotedprintable.NewReader(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read message body: %w", err)
	}
	return string(data), nil
}

func decodeHeader(value string) string {
	decoder := &mime.WordDecoder{}
	decoded, err := decoder.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}
