package resolver

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"filebot/internal/domain"
)

// Telegram rejects callback data above 64 bytes, so every encoded token has
// to fit that budget.
const maxTokenBytes = 64

type TokenKind string

const (
	TokenFile TokenKind = "file"
	TokenHelp TokenKind = "help"
	TokenMore TokenKind = "more"
)

// Token is a decoded selection payload. FileID and FileName are set only for
// TokenFile.
type Token struct {
	Kind     TokenKind
	FileID   string
	FileName string
}

// EncodeFileToken renders a match as "file:<file_id>:<file_name>". A file_id
// containing the delimiter would make decoding ambiguous, so it is refused
// outright rather than escaped; the record stays searchable either way. The
// name part is truncated on a rune boundary to honor the byte budget — it is
// display-only, resolution always goes through the file_id.
func EncodeFileToken(match domain.FileMatch) (string, error) {
	if match.FileID == "" {
		return "", fmt.Errorf("encode token: empty file_id")
	}
	if strings.Contains(match.FileID, ":") {
		return "", fmt.Errorf("encode token: file_id %q contains delimiter", match.FileID)
	}

	prefix := string(TokenFile) + ":" + match.FileID + ":"
	budget := maxTokenBytes - len(prefix)
	if budget < 1 {
		return "", fmt.Errorf("encode token: file_id %q leaves no room for a name", match.FileID)
	}

	name := truncateRunes(match.FileName, budget)
	if name == "" {
		return "", fmt.Errorf("encode token: empty file_name")
	}
	return prefix + name, nil
}

// DecodeToken parses callback data into a Token. Anything that is not an
// exact match for a recognized shape is rejected with ErrMalformedToken;
// there is no best-effort parsing.
func DecodeToken(data string) (Token, error) {
	switch data {
	case string(TokenHelp):
		return Token{Kind: TokenHelp}, nil
	case string(TokenMore):
		return Token{Kind: TokenMore}, nil
	}

	tag, payload, ok := strings.Cut(data, ":")
	if !ok || TokenKind(tag) != TokenFile {
		return Token{}, domain.ErrMalformedToken
	}

	// file_id never contains a colon (the encoder guarantees it), so the
	// first cut is unambiguous; the remainder is the name and may contain
	// colons freely.
	fileID, fileName, ok := strings.Cut(payload, ":")
	if !ok || fileID == "" || fileName == "" {
		return Token{}, domain.ErrMalformedToken
	}

	return Token{Kind: TokenFile, FileID: fileID, FileName: fileName}, nil
}

func truncateRunes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}
