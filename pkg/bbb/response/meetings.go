package response

import "time"

// Create is the response to a create call.
type Create struct {
	Raw
}

// NewCreate wraps a decoded create response.
func NewCreate(doc *Document) *Create {
	return &Create{Raw: NewRaw(doc)}
}

func (r *Create) MeetingID() string {
	return r.doc.Get("meetingID").String("")
}

func (r *Create) InternalMeetingID() string {
	return r.doc.Get("internalMeetingID").String("")
}

func (r *Create) AttendeePW() string {
	return r.doc.Get("attendeePW").String("")
}

func (r *Create) ModeratorPW() string {
	return r.doc.Get("moderatorPW").String("")
}

func (r *Create) VoiceBridge() string {
	return r.doc.Get("voiceBridge").String("")
}

func (r *Create) DialNumber() string {
	return r.doc.Get("dialNumber").String("")
}

func (r *Create) CreateTime() time.Time {
	return r.doc.Get("createTime").Time(time.Time{})
}

func (r *Create) HasUserJoined() bool {
	return r.doc.Get("hasUserJoined").Bool(false)
}

// DuplicateWarning reports that the meeting already existed and the server
// returned the running instance instead of creating a new one.
func (r *Create) DuplicateWarning() bool {
	return r.MessageKey() == "duplicateWarning"
}

// Join is the response to a join call made server-side. Most applications
// hand the signed join URL to a browser instead; this wrapper covers API
// clients that complete the join themselves.
type Join struct {
	Raw
}

func NewJoin(doc *Document) *Join {
	return &Join{Raw: NewRaw(doc)}
}

func (r *Join) MeetingID() string {
	return r.doc.Get("meeting_id").String("")
}

func (r *Join) UserID() string {
	return r.doc.Get("user_id").String("")
}

func (r *Join) AuthToken() string {
	return r.doc.Get("auth_token").String("")
}

// SessionToken returns the application-level session token issued on join.
// This is not the transport-level affinity cookie.
func (r *Join) SessionToken() string {
	return r.doc.Get("session_token").String("")
}

func (r *Join) GuestStatus() string {
	return r.doc.Get("guestStatus").String("")
}

func (r *Join) URL() string {
	return r.doc.Get("url").String("")
}

// End is the response to an end call.
type End struct {
	Raw
}

func NewEnd(doc *Document) *End {
	return &End{Raw: NewRaw(doc)}
}

// MeetingRunning is the response to an isMeetingRunning call.
type MeetingRunning struct {
	Raw
}

func NewMeetingRunning(doc *Document) *MeetingRunning {
	return &MeetingRunning{Raw: NewRaw(doc)}
}

func (r *MeetingRunning) Running() bool {
	return r.doc.Get("running").Bool(false)
}

// MeetingInfo is the response to a getMeetingInfo call. It also models one
// <meeting> element of a getMeetings response, which carries the same
// fields.
type MeetingInfo struct {
	Raw
}

func NewMeetingInfo(doc *Document) *MeetingInfo {
	return &MeetingInfo{Raw: NewRaw(doc)}
}

func (r *MeetingInfo) MeetingName() string {
	return r.doc.Get("meetingName").String("")
}

func (r *MeetingInfo) MeetingID() string {
	return r.doc.Get("meetingID").String("")
}

func (r *MeetingInfo) InternalMeetingID() string {
	return r.doc.Get("internalMeetingID").String("")
}

func (r *MeetingInfo) CreateTime() time.Time {
	return r.doc.Get("createTime").Time(time.Time{})
}

func (r *MeetingInfo) VoiceBridge() string {
	return r.doc.Get("voiceBridge").String("")
}

func (r *MeetingInfo) DialNumber() string {
	return r.doc.Get("dialNumber").String("")
}

func (r *MeetingInfo) Running() bool {
	return r.doc.Get("running").Bool(false)
}

func (r *MeetingInfo) Recording() bool {
	return r.doc.Get("recording").Bool(false)
}

func (r *MeetingInfo) HasBeenForciblyEnded() bool {
	return r.doc.Get("hasBeenForciblyEnded").Bool(false)
}

func (r *MeetingInfo) StartTime() time.Time {
	return r.doc.Get("startTime").Time(time.Time{})
}

func (r *MeetingInfo) EndTime() time.Time {
	return r.doc.Get("endTime").Time(time.Time{})
}

func (r *MeetingInfo) ParticipantCount() int {
	return r.doc.Get("participantCount").Int(0)
}

func (r *MeetingInfo) ListenerCount() int {
	return r.doc.Get("listenerCount").Int(0)
}

func (r *MeetingInfo) ModeratorCount() int {
	return r.doc.Get("moderatorCount").Int(0)
}

func (r *MeetingInfo) VideoCount() int {
	return r.doc.Get("videoCount").Int(0)
}

// Metadata returns one meta_* value recorded at create time.
func (r *MeetingInfo) Metadata(key string) Value {
	return r.doc.Get("metadata." + key)
}

// Attendees returns the participant list. Empty for meetings with no one
// joined.
func (r *MeetingInfo) Attendees() []Attendee {
	var out []Attendee
	for _, d := range r.doc.All("attendees.attendee") {
		out = append(out, Attendee{doc: d})
	}
	return out
}

// Attendee is one participant of a running meeting.
type Attendee struct {
	doc *Document
}

func (a Attendee) UserID() string {
	return a.doc.Get("userID").String("")
}

func (a Attendee) FullName() string {
	return a.doc.Get("fullName").String("")
}

func (a Attendee) Role() string {
	return a.doc.Get("role").String("")
}

func (a Attendee) IsPresenter() bool {
	return a.doc.Get("isPresenter").Bool(false)
}

func (a Attendee) IsListeningOnly() bool {
	return a.doc.Get("isListeningOnly").Bool(false)
}

func (a Attendee) HasJoinedVoice() bool {
	return a.doc.Get("hasJoinedVoice").Bool(false)
}

func (a Attendee) HasVideo() bool {
	return a.doc.Get("hasVideo").Bool(false)
}

// Meetings is the response to a getMeetings call.
type Meetings struct {
	Raw
}

func NewMeetings(doc *Document) *Meetings {
	return &Meetings{Raw: NewRaw(doc)}
}

// Meetings returns one MeetingInfo per listed meeting.
func (r *Meetings) Meetings() []*MeetingInfo {
	var out []*MeetingInfo
	for _, d := range r.doc.All("meetings.meeting") {
		out = append(out, NewMeetingInfo(d))
	}
	return out
}

// Version is the response to the bare-endpoint version probe.
type Version struct {
	Raw
}

func NewVersion(doc *Document) *Version {
	return &Version{Raw: NewRaw(doc)}
}

func (r *Version) Version() string {
	return r.doc.Get("version").String("")
}

func (r *Version) APIVersion() string {
	return r.doc.Get("apiVersion").String("")
}

// ChatMessage is the response to a sendChatMessage call.
type ChatMessage struct {
	Raw
}

func NewChatMessage(doc *Document) *ChatMessage {
	return &ChatMessage{Raw: NewRaw(doc)}
}

// InsertDocument is the response to an insertDocument call.
type InsertDocument struct {
	Raw
}

func NewInsertDocument(doc *Document) *InsertDocument {
	return &InsertDocument{Raw: NewRaw(doc)}
}
