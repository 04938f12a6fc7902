package domain

import (
	"errors"
	"fmt"
)

// Channel-access failures, classified by the platform adapter so callers can
// match on them instead of on platform error strings.
var (
	ErrNeedAdmin          = errors.New("bot needs admin rights in the channel")
	ErrNotMember          = errors.New("bot is not a member of the channel")
	ErrChannelUnavailable = errors.New("channel invalid, private or unreachable")
)

type IndexOutcomeKind string

const (
	IndexIndexed            IndexOutcomeKind = "indexed"
	IndexAlreadyIndexed     IndexOutcomeKind = "already_indexed"
	IndexNoMedia            IndexOutcomeKind = "no_media"
	IndexNeedAdmin          IndexOutcomeKind = "need_admin"
	IndexNotMember          IndexOutcomeKind = "not_member"
	IndexChannelUnavailable IndexOutcomeKind = "channel_unavailable"
	IndexSourceError        IndexOutcomeKind = "source_error"
	IndexStoreError         IndexOutcomeKind = "store_error"
)

// IndexOutcome is the value result of one indexing attempt. Every attempt
// produces exactly one outcome; nothing is raised past the caller.
type IndexOutcome struct {
	Kind     IndexOutcomeKind
	FileName string
	Detail   string
}

// AccessDenied reports whether the outcome is one of the channel-access
// failure kinds worth alerting an operator about.
func (o IndexOutcome) AccessDenied() bool {
	switch o.Kind {
	case IndexNeedAdmin, IndexNotMember, IndexChannelUnavailable:
		return true
	}
	return false
}

// Message renders the single user-visible line for the outcome.
func (o IndexOutcome) Message() string {
	switch o.Kind {
	case IndexIndexed:
		return fmt.Sprintf("Indexed: %s", o.FileName)
	case IndexAlreadyIndexed:
		return fmt.Sprintf("Already indexed: %s", o.FileName)
	case IndexNoMedia:
		return "No media file found in last message."
	case IndexNeedAdmin:
		return "Error: Bot needs admin rights in the channel to access history. Promote bot to admin!"
	case IndexNotMember:
		return "Error: Bot is not added to the channel. Add bot first!"
	case IndexChannelUnavailable:
		return fmt.Sprintf("Error: Invalid or private channel/access denied: %s. Check CHANNEL_ID and bot permissions!", o.Detail)
	case IndexStoreError:
		return fmt.Sprintf("Error indexing: %s", o.Detail)
	default:
		return fmt.Sprintf("Error indexing: %s", o.Detail)
	}
}

type ResolveOutcomeKind string

const (
	ResolveDelivered      ResolveOutcomeKind = "delivered"
	ResolveNotFound       ResolveOutcomeKind = "not_found"
	ResolveLookupFailed   ResolveOutcomeKind = "lookup_failed"
	ResolveDeliveryFailed ResolveOutcomeKind = "delivery_failed"
)

// ResolveOutcome is the value result of resolving a file selection.
type ResolveOutcome struct {
	Kind     ResolveOutcomeKind
	FileName string
	Detail   string
}

func (o ResolveOutcome) Message() string {
	switch o.Kind {
	case ResolveDelivered:
		return "File sent!"
	case ResolveNotFound:
		return "File not found in database!"
	case ResolveLookupFailed:
		return fmt.Sprintf("Error looking up file: %s", o.Detail)
	default:
		return fmt.Sprintf("Error sending file: %s", o.Detail)
	}
}
