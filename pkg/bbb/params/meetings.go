package params

import "github.com/meetkit/bbbclient/pkg/bbb/wire"

// Create are the parameters of the create operation.
type Create struct {
	MeetingID               string `validate:"required"`
	Name                    string `validate:"required"`
	AttendeePW              string
	ModeratorPW             string
	Welcome                 string
	DialNumber              string
	VoiceBridge             string
	MaxParticipants         int
	LogoutURL               string
	Record                  *bool
	Duration                int
	IsBreakout              *bool
	ParentMeetingID         string
	Sequence                int
	FreeJoin                *bool
	GuestPolicy             string
	MuteOnStart             *bool
	AllowStartStopRecording *bool
	AutoStartRecording      *bool
	WebcamsOnlyForModerator *bool
	BannerText              string
	Meta                    map[string]string

	// Presentation is an optional pre-upload modules document carried as
	// the request body, never in the query string.
	Presentation []byte
}

func (p *Create) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.add("meetingID", p.MeetingID)
	l.add("name", p.Name)
	l.add("attendeePW", p.AttendeePW)
	l.add("moderatorPW", p.ModeratorPW)
	l.add("welcome", p.Welcome)
	l.add("dialNumber", p.DialNumber)
	l.add("voiceBridge", p.VoiceBridge)
	l.addInt("maxParticipants", p.MaxParticipants)
	l.add("logoutURL", p.LogoutURL)
	l.addBool("record", p.Record)
	l.addInt("duration", p.Duration)
	l.addBool("isBreakout", p.IsBreakout)
	l.add("parentMeetingID", p.ParentMeetingID)
	l.addInt("sequence", p.Sequence)
	l.addBool("freeJoin", p.FreeJoin)
	l.add("guestPolicy", p.GuestPolicy)
	l.addBool("muteOnStart", p.MuteOnStart)
	l.addBool("allowStartStopRecording", p.AllowStartStopRecording)
	l.addBool("autoStartRecording", p.AutoStartRecording)
	l.addBool("webcamsOnlyForModerator", p.WebcamsOnlyForModerator)
	l.add("bannerText", p.BannerText)
	l.addMeta(p.Meta)
	return l.pairs, nil
}

// Body returns the pre-upload modules document, or nil when none is set.
func (p *Create) Body() []byte {
	return p.Presentation
}

// Join are the parameters of the join operation. Either Password (matching
// the meeting's attendee or moderator password) or Role must be provided,
// depending on the server's join mode.
type Join struct {
	MeetingID        string `validate:"required"`
	FullName         string `validate:"required"`
	Password         string
	Role             string `validate:"omitempty,oneof=MODERATOR VIEWER"`
	UserID           string
	CreateTime       int64
	AvatarURL        string
	Guest            *bool
	Redirect         *bool
	ErrorRedirectURL string
}

func (p *Join) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.add("meetingID", p.MeetingID)
	l.add("fullName", p.FullName)
	l.add("password", p.Password)
	l.add("role", p.Role)
	l.add("userID", p.UserID)
	l.addInt64("createTime", p.CreateTime)
	l.add("avatarURL", p.AvatarURL)
	l.addBool("guest", p.Guest)
	l.addBool("redirect", p.Redirect)
	l.add("errorRedirectUrl", p.ErrorRedirectURL)
	return l.pairs, nil
}

// End are the parameters of the end operation. Password is the moderator
// password; servers at 2.0+ accept the checksum alone.
type End struct {
	MeetingID string `validate:"required"`
	Password  string
}

func (p *End) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.add("meetingID", p.MeetingID)
	l.add("password", p.Password)
	return l.pairs, nil
}

// IsMeetingRunning are the parameters of the isMeetingRunning operation.
type IsMeetingRunning struct {
	MeetingID string `validate:"required"`
}

func (p *IsMeetingRunning) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.add("meetingID", p.MeetingID)
	return l.pairs, nil
}

// GetMeetingInfo are the parameters of the getMeetingInfo operation.
type GetMeetingInfo struct {
	MeetingID string `validate:"required"`
}

func (p *GetMeetingInfo) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.add("meetingID", p.MeetingID)
	return l.pairs, nil
}

// GetMeetings are the parameters of the getMeetings operation. The
// operation takes no filters; the struct exists so the call shape matches
// every other operation.
type GetMeetings struct{}

func (p *GetMeetings) Pairs() ([]wire.Pair, error) {
	return nil, nil
}

// SendChatMessage are the parameters of the sendChatMessage operation.
type SendChatMessage struct {
	MeetingID string `validate:"required"`
	Message   string `validate:"required"`
	UserName  string
}

func (p *SendChatMessage) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.add("meetingID", p.MeetingID)
	l.add("message", p.Message)
	l.add("userName", p.UserName)
	return l.pairs, nil
}

// InsertDocument are the parameters of the insertDocument operation. The
// presentation list travels as an XML modules document in the request body.
type InsertDocument struct {
	MeetingID string `validate:"required"`
	Documents []byte `validate:"required"`
}

func (p *InsertDocument) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.add("meetingID", p.MeetingID)
	return l.pairs, nil
}

// Body returns the modules document.
func (p *InsertDocument) Body() []byte {
	return p.Documents
}
