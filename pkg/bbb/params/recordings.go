package params

import "github.com/meetkit/bbbclient/pkg/bbb/wire"

// GetRecordings are the parameters of the getRecordings operation. All
// filters are optional; an empty struct lists every recording.
type GetRecordings struct {
	MeetingIDs []string
	RecordIDs  []string
	States     []string
	Meta       map[string]string
}

func (p *GetRecordings) Pairs() ([]wire.Pair, error) {
	var l pairList
	l.addList("meetingID", p.MeetingIDs)
	l.addList("recordID", p.RecordIDs)
	l.addList("state", p.States)
	l.addMeta(p.Meta)
	return l.pairs, nil
}

// PublishRecordings are the parameters of the publishRecordings operation.
// Publish false unpublishes; it is always sent.
type PublishRecordings struct {
	RecordIDs []string `validate:"min=1"`
	Publish   bool
}

func (p *PublishRecordings) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.addList("recordID", p.RecordIDs)
	l.addAlwaysBool("publish", p.Publish)
	return l.pairs, nil
}

// DeleteRecordings are the parameters of the deleteRecordings operation.
type DeleteRecordings struct {
	RecordIDs []string `validate:"min=1"`
}

func (p *DeleteRecordings) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.addList("recordID", p.RecordIDs)
	return l.pairs, nil
}

// UpdateRecordings are the parameters of the updateRecordings operation.
// Meta entries overwrite the recording's stored metadata.
type UpdateRecordings struct {
	RecordIDs []string `validate:"min=1"`
	Meta      map[string]string
}

func (p *UpdateRecordings) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.addList("recordID", p.RecordIDs)
	l.addMeta(p.Meta)
	return l.pairs, nil
}

// GetRecordingTextTracks are the parameters of the getRecordingTextTracks
// operation.
type GetRecordingTextTracks struct {
	RecordID string `validate:"required"`
}

func (p *GetRecordingTextTracks) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.add("recordID", p.RecordID)
	return l.pairs, nil
}

// PutRecordingTextTrack are the parameters of the putRecordingTextTrack
// operation. The track file is uploaded as a multipart body; FileName and
// ContentType describe the file part.
type PutRecordingTextTrack struct {
	RecordID string `validate:"required"`
	Kind     string `validate:"required,oneof=subtitles captions"`
	Lang     string `validate:"required"`
	Label    string

	File        []byte `validate:"required"`
	FileName    string `validate:"required"`
	ContentType string
}

func (p *PutRecordingTextTrack) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.add("recordID", p.RecordID)
	l.add("kind", p.Kind)
	l.add("lang", p.Lang)
	l.add("label", p.Label)
	return l.pairs, nil
}
