package telegram

import (
	"fmt"
	"strings"

	"filebot/internal/domain"
)

// classifyAPIError maps Bot API error strings onto the closed set of
// channel-access sentinels. The API reports these conditions as free text,
// so matching on substrings is the only handle available.
func classifyAPIError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "not a member"),
		strings.Contains(msg, "was kicked"),
		strings.Contains(msg, "bot was blocked"):
		return fmt.Errorf("%w: %s", domain.ErrNotMember, err.Error())
	case strings.Contains(msg, "admin"),
		strings.Contains(msg, "not enough rights"):
		return fmt.Errorf("%w: %s", domain.ErrNeedAdmin, err.Error())
	case strings.Contains(msg, "chat not found"),
		strings.Contains(msg, "forbidden"),
		strings.Contains(msg, "bad request"),
		strings.Contains(msg, "private"):
		return fmt.Errorf("%w: %s", domain.ErrChannelUnavailable, err.Error())
	default:
		return err
	}
}
