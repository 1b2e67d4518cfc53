package bbb

// Method is the wire name of one API operation. The name appears verbatim
// in the URL path segment and in the checksum input.
type Method string

const (
	MethodCreate                 Method = "create"
	MethodJoin                   Method = "join"
	MethodEnd                    Method = "end"
	MethodIsMeetingRunning       Method = "isMeetingRunning"
	MethodGetMeetingInfo         Method = "getMeetingInfo"
	MethodGetMeetings            Method = "getMeetings"
	MethodSendChatMessage        Method = "sendChatMessage"
	MethodInsertDocument         Method = "insertDocument"
	MethodGetRecordings          Method = "getRecordings"
	MethodPublishRecordings      Method = "publishRecordings"
	MethodDeleteRecordings       Method = "deleteRecordings"
	MethodUpdateRecordings       Method = "updateRecordings"
	MethodGetRecordingTextTracks Method = "getRecordingTextTracks"
	MethodPutRecordingTextTrack  Method = "putRecordingTextTrack"
	MethodGetDefaultConfigXML    Method = "getDefaultConfigXML"
	MethodSetConfigXML           Method = "setConfigXML"
	MethodCreateHook             Method = "hooks/create"
	MethodListHooks              Method = "hooks/list"
	MethodDestroyHook            Method = "hooks/destroy"
)
