package bbb

import (
	"github.com/meetkit/bbbclient/pkg/bbb/params"
	"github.com/meetkit/bbbclient/pkg/bbb/response"
	"github.com/meetkit/bbbclient/pkg/bbb/wire"
)

// GetDefaultConfigXMLURL returns the signed getDefaultConfigXML URL without
// dispatching it.
//
// Deprecated: the operation was removed from the server API in 2.3; it is
// kept for wire compatibility with older deployments.
func (c *Client) GetDefaultConfigXMLURL() (string, error) {
	return c.builder.BuildURL(string(MethodGetDefaultConfigXML), "", true)
}

// GetDefaultConfigXML downloads the server's default client configuration.
// The body is a raw config document, not an API envelope.
//
// Deprecated: see GetDefaultConfigXMLURL.
func (c *Client) GetDefaultConfigXML() (*response.ConfigXML, error) {
	u, err := c.GetDefaultConfigXMLURL()
	if err != nil {
		return nil, err
	}
	raw, err := c.do(u, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewConfigXML(raw), nil
}

// SetConfigXML uploads a per-meeting client configuration. Unlike every
// other operation, the parameters and the checksum travel in the POST body:
// the checksum is computed over method + body + secret and appended to the
// form, and the URL carries no query string at all.
//
// Deprecated: the operation was removed from the server API in 2.3; it is
// kept for wire compatibility with older deployments.
func (c *Client) SetConfigXML(p *params.SetConfigXML) (*response.SetConfigXML, error) {
	pairs, err := p.Pairs()
	if err != nil {
		return nil, err
	}
	body, err := c.builder.BuildQS(string(MethodSetConfigXML), wire.Encode(pairs))
	if err != nil {
		return nil, err
	}
	u, err := c.builder.BuildURL(string(MethodSetConfigXML), "", false)
	if err != nil {
		return nil, err
	}
	raw, err := c.do(u, []byte(body), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}
	doc, err := response.DecodeXML(raw)
	if err != nil {
		return nil, err
	}
	return response.NewSetConfigXML(doc), nil
}
