package domain

// Attachment is one typed media entry on an inbound message. FileName is
// empty when the platform does not carry a name for that media type (photos
// never have one).
type Attachment struct {
	FileID   string
	FileName string
}

// InboundMessage is the platform-agnostic view of a channel message the
// ingestion service works on. At most one of the media fields is used; the
// priority order lives in Media().
type InboundMessage struct {
	ID       int64
	ChatID   int64
	Caption  string
	Document *Attachment
	Video    *Attachment
	Audio    *Attachment
	Photo    *Attachment
}

// Placeholder names for attachments the platform delivers without one.
const (
	PlaceholderPhoto    = "photo.jpg"
	PlaceholderVideo    = "video.mp4"
	PlaceholderAudio    = "audio.mp3"
	PlaceholderDocument = "document"
)

// Media returns the first attachment in priority order
// document > video > audio > photo, with the placeholder name substituted
// when the attachment has none. Returns nil when the message carries no
// recognizable media.
func (m *InboundMessage) Media() *Attachment {
	type candidate struct {
		att         *Attachment
		placeholder string
	}
	for _, c := range []candidate{
		{m.Document, PlaceholderDocument},
		{m.Video, PlaceholderVideo},
		{m.Audio, PlaceholderAudio},
		{m.Photo, PlaceholderPhoto},
	} {
		if c.att == nil || c.att.FileID == "" {
			continue
		}
		name := c.att.FileName
		if name == "" {
			name = c.placeholder
		}
		return &Attachment{FileID: c.att.FileID, FileName: name}
	}
	return nil
}
