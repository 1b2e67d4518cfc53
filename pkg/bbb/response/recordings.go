package response

import "time"

// Recordings is the response to a getRecordings call.
type Recordings struct {
	Raw
}

func NewRecordings(doc *Document) *Recordings {
	return &Recordings{Raw: NewRaw(doc)}
}

// Recordings returns one Recording per listed recording. An empty list with
// messageKey noRecordings is still a successful response.
func (r *Recordings) Recordings() []Recording {
	var out []Recording
	for _, d := range r.doc.All("recordings.recording") {
		out = append(out, Recording{doc: d})
	}
	return out
}

// Recording is one archived meeting recording.
type Recording struct {
	doc *Document
}

func (r Recording) RecordID() string {
	return r.doc.Get("recordID").String("")
}

func (r Recording) MeetingID() string {
	return r.doc.Get("meetingID").String("")
}

func (r Recording) Name() string {
	return r.doc.Get("name").String("")
}

func (r Recording) Published() bool {
	return r.doc.Get("published").Bool(false)
}

// State is the recording lifecycle state (processing, processed, published,
// unpublished, deleted).
func (r Recording) State() string {
	return r.doc.Get("state").String("")
}

func (r Recording) StartTime() time.Time {
	return r.doc.Get("startTime").Time(time.Time{})
}

func (r Recording) EndTime() time.Time {
	return r.doc.Get("endTime").Time(time.Time{})
}

// Metadata returns one meta_* value recorded with the meeting.
func (r Recording) Metadata(key string) Value {
	return r.doc.Get("metadata." + key)
}

// PlaybackFormats returns the available playback renditions.
func (r Recording) PlaybackFormats() []PlaybackFormat {
	var out []PlaybackFormat
	for _, d := range r.doc.All("playback.format") {
		out = append(out, PlaybackFormat{doc: d})
	}
	return out
}

// PlaybackFormat is one playback rendition of a recording.
type PlaybackFormat struct {
	doc *Document
}

func (f PlaybackFormat) Type() string {
	return f.doc.Get("type").String("")
}

func (f PlaybackFormat) URL() string {
	return f.doc.Get("url").String("")
}

// Length is the playback duration in minutes.
func (f PlaybackFormat) Length() int {
	return f.doc.Get("length").Int(0)
}

// PublishRecordings is the response to a publishRecordings call.
type PublishRecordings struct {
	Raw
}

func NewPublishRecordings(doc *Document) *PublishRecordings {
	return &PublishRecordings{Raw: NewRaw(doc)}
}

func (r *PublishRecordings) Published() bool {
	return r.doc.Get("published").Bool(false)
}

// DeleteRecordings is the response to a deleteRecordings call.
type DeleteRecordings struct {
	Raw
}

func NewDeleteRecordings(doc *Document) *DeleteRecordings {
	return &DeleteRecordings{Raw: NewRaw(doc)}
}

func (r *DeleteRecordings) Deleted() bool {
	return r.doc.Get("deleted").Bool(false)
}

// UpdateRecordings is the response to an updateRecordings call.
type UpdateRecordings struct {
	Raw
}

func NewUpdateRecordings(doc *Document) *UpdateRecordings {
	return &UpdateRecordings{Raw: NewRaw(doc)}
}

func (r *UpdateRecordings) Updated() bool {
	return r.doc.Get("updated").Bool(false)
}

// TextTracks is the JSON response to a getRecordingTextTracks call.
type TextTracks struct {
	Raw
}

func NewTextTracks(doc *Document) *TextTracks {
	return &TextTracks{Raw: NewRaw(doc)}
}

// Tracks returns the caption/subtitle tracks of the recording.
func (r *TextTracks) Tracks() []TextTrack {
	var out []TextTrack
	for _, d := range r.doc.All("tracks") {
		out = append(out, TextTrack{doc: d})
	}
	return out
}

// TextTrack is one caption or subtitle track attached to a recording.
type TextTrack struct {
	doc *Document
}

func (t TextTrack) Href() string {
	return t.doc.Get("href").String("")
}

// Kind is "subtitles" or "captions".
func (t TextTrack) Kind() string {
	return t.doc.Get("kind").String("")
}

func (t TextTrack) Label() string {
	return t.doc.Get("label").String("")
}

func (t TextTrack) Lang() string {
	return t.doc.Get("lang").String("")
}

func (t TextTrack) Source() string {
	return t.doc.Get("source").String("")
}

// PutTextTrack is the JSON response to a putRecordingTextTrack call.
type PutTextTrack struct {
	Raw
}

func NewPutTextTrack(doc *Document) *PutTextTrack {
	return &PutTextTrack{Raw: NewRaw(doc)}
}

func (r *PutTextTrack) RecordID() string {
	return r.doc.Get("recordId").String("")
}
