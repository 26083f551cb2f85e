package models

import "time"

// DiaryEntry is one persisted diary page.
type DiaryEntry struct {
	ID             int64
	Owner          string
	SequenceNumber int
	Title          string
	Body           string
	// EntryDate is the calendar day the entry is about (midnight UTC).
	EntryDate time.Time
	// CreatedAt is truncated to the minute.
	CreatedAt time.Time

	// ImageKey locates the illustration in the image store; empty when the
	// entry has no picture.
	ImageKey string
	// Image holds the PNG bytes when loaded. It is not a column.
	Image []byte
}

// HasImage reports whether the entry references an illustration.
func (e *DiaryEntry) HasImage() bool {
	return e.ImageKey != ""
}
