package email

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PlainText(t *testing.T) {
	raw := strings.Join([]string{
		"From: Maria Papadopoulou <maria@example.com>",
		"To: reservations@hotel.example",
		"Subject: Early check-in request",
		"Date: Sat, 15 Nov 2025 09:30:00 +0200",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"Is a 11am check-in possible?",
		"",
	}, "\r\n")

	parsed, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", parsed.From)
	assert.Equal(t, "Early check-in request", parsed.Subject)
	assert.Equal(t, "Sat, 15 Nov 2025 09:30:00 +0200", parsed.Date)
	assert.Equal(t, "Is a 11am check-in possible?", parsed.Body)
}

func TestParse_MultipartPrefersTextPlain(t *testing.T) {
	raw := strings.Join([]string{
		"From: guest@example.com",
		"Subject: Parking",
		"Date: Sun, 16 Nov 2025 18:00:00 +0200",
		`Content-Type: multipart/alternative; boundary="sep"`,
		"",
		"--sep",
		"Content-Type: text/html; charset=utf-8",
		"",
		"<p>Do you have parking?</p>",
		"--sep",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"Do you have parking?",
		"--sep--",
		"",
	}, "\r\n")

	parsed, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "Do you have parking?", parsed.Body)
}

func TestParse_HTMLFallback(t *testing.T) {
	raw := strings.Join([]string{
		"From: guest@example.com",
		"Subject: Taxi",
		`Content-Type: multipart/alternative; boundary="sep"`,
		"",
		"--sep",
		"Content-Type: text/html; charset=utf-8",
		"",
		"<p>Please book a taxi.</p>",
		"--sep--",
		"",
	}, "\r\n")

	parsed, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "<p>Please book a taxi.</p>", parsed.Body)
}

func TestParse_Base64Body(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("We land at 22:40."))
	raw := strings.Join([]string{
		"From: guest@example.com",
		"Subject: Late arrival",
		"Content-Type: text/plain; charset=utf-8",
		"Content-Transfer-Encoding: base64",
		"",
		encoded,
		"",
	}, "\r\n")

	parsed, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "We land at 22:40.", parsed.Body)
}

func TestParse_EncodedSubject(t *testing.T) {
	raw := strings.Join([]string{
		"From: guest@example.com",
		"Subject: =?utf-8?q?Kr=C3=A4fte_check-in?=",
		"Content-Type: text/plain",
		"",
		"hello",
		"",
	}, "\r\n")

	parsed, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "Kräfte check-in", parsed.Subject)
}

func TestParse_MalformedMessage(t *testing.T) {
	_, err := Parse([]byte("not an email"))
	require.Error(t, err)
}
