package bbb

import (
	"github.com/meetkit/bbbclient/pkg/bbb/params"
	"github.com/meetkit/bbbclient/pkg/bbb/response"
)

// CreateURL returns the signed create URL without dispatching it.
func (c *Client) CreateURL(p *params.Create) (string, error) {
	return c.buildURL(MethodCreate, p)
}

// Create creates a meeting. An optional pre-upload presentation document is
// sent as the request body.
func (c *Client) Create(p *params.Create) (*response.Create, error) {
	contentType := ""
	if len(p.Body()) > 0 {
		contentType = "application/xml"
	}
	doc, err := c.callXML(MethodCreate, p, p.Body(), contentType)
	if err != nil {
		return nil, err
	}
	return response.NewCreate(doc), nil
}

// JoinURL returns the signed join URL. This is the URL handed to a user's
// browser; dispatching it through the API client is only useful for
// server-side join flows.
func (c *Client) JoinURL(p *params.Join) (string, error) {
	return c.buildURL(MethodJoin, p)
}

// Join completes a join server-side and returns the issued tokens.
func (c *Client) Join(p *params.Join) (*response.Join, error) {
	doc, err := c.callXML(MethodJoin, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewJoin(doc), nil
}

// EndURL returns the signed end URL without dispatching it.
func (c *Client) EndURL(p *params.End) (string, error) {
	return c.buildURL(MethodEnd, p)
}

// End forcibly ends a meeting.
func (c *Client) End(p *params.End) (*response.End, error) {
	doc, err := c.callXML(MethodEnd, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewEnd(doc), nil
}

// IsMeetingRunningURL returns the signed isMeetingRunning URL without
// dispatching it.
func (c *Client) IsMeetingRunningURL(p *params.IsMeetingRunning) (string, error) {
	return c.buildURL(MethodIsMeetingRunning, p)
}

// IsMeetingRunning reports whether a meeting currently has a running
// session.
func (c *Client) IsMeetingRunning(p *params.IsMeetingRunning) (*response.MeetingRunning, error) {
	doc, err := c.callXML(MethodIsMeetingRunning, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewMeetingRunning(doc), nil
}

// GetMeetingInfoURL returns the signed getMeetingInfo URL without
// dispatching it.
func (c *Client) GetMeetingInfoURL(p *params.GetMeetingInfo) (string, error) {
	return c.buildURL(MethodGetMeetingInfo, p)
}

// GetMeetingInfo returns detailed state of one meeting, including the
// participant list.
func (c *Client) GetMeetingInfo(p *params.GetMeetingInfo) (*response.MeetingInfo, error) {
	doc, err := c.callXML(MethodGetMeetingInfo, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewMeetingInfo(doc), nil
}

// GetMeetingsURL returns the signed getMeetings URL without dispatching it.
func (c *Client) GetMeetingsURL() (string, error) {
	return c.buildURL(MethodGetMeetings, &params.GetMeetings{})
}

// GetMeetings lists the meetings known to the server.
func (c *Client) GetMeetings() (*response.Meetings, error) {
	doc, err := c.callXML(MethodGetMeetings, &params.GetMeetings{}, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewMeetings(doc), nil
}

// VersionURL returns the bare endpoint URL used by the version probe. It
// carries no query and no checksum.
func (c *Client) VersionURL() string {
	return c.builder.Base
}

// Version probes the bare API endpoint and returns the advertised API
// version.
func (c *Client) Version() (*response.Version, error) {
	u, err := c.builder.BuildURL("", "", true)
	if err != nil {
		return nil, err
	}
	raw, err := c.do(u, nil, "")
	if err != nil {
		return nil, err
	}
	doc, err := response.DecodeXML(raw)
	if err != nil {
		return nil, err
	}
	return response.NewVersion(doc), nil
}

// SendChatMessageURL returns the signed sendChatMessage URL without
// dispatching it.
func (c *Client) SendChatMessageURL(p *params.SendChatMessage) (string, error) {
	return c.buildURL(MethodSendChatMessage, p)
}

// SendChatMessage posts a message to a running meeting's public chat.
func (c *Client) SendChatMessage(p *params.SendChatMessage) (*response.ChatMessage, error) {
	doc, err := c.callXML(MethodSendChatMessage, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewChatMessage(doc), nil
}

// InsertDocumentURL returns the signed insertDocument URL without
// dispatching it.
func (c *Client) InsertDocumentURL(p *params.InsertDocument) (string, error) {
	return c.buildURL(MethodInsertDocument, p)
}

// InsertDocument adds presentations to a running meeting. The document list
// travels as an XML modules body.
func (c *Client) InsertDocument(p *params.InsertDocument) (*response.InsertDocument, error) {
	doc, err := c.callXML(MethodInsertDocument, p, p.Body(), "application/xml")
	if err != nil {
		return nil, err
	}
	return response.NewInsertDocument(doc), nil
}
