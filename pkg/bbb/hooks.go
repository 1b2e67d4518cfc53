package bbb

import (
	"github.com/meetkit/bbbclient/pkg/bbb/params"
	"github.com/meetkit/bbbclient/pkg/bbb/response"
)

// CreateHookURL returns the signed hooks/create URL without dispatching it.
func (c *Client) CreateHookURL(p *params.CreateHook) (string, error) {
	return c.buildURL(MethodCreateHook, p)
}

// CreateHook registers a webhook for meeting events.
func (c *Client) CreateHook(p *params.CreateHook) (*response.CreateHook, error) {
	doc, err := c.callXML(MethodCreateHook, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewCreateHook(doc), nil
}

// ListHooksURL returns the signed hooks/list URL without dispatching it.
func (c *Client) ListHooksURL(p *params.ListHooks) (string, error) {
	return c.buildURL(MethodListHooks, p)
}

// ListHooks lists registered webhooks.
func (c *Client) ListHooks(p *params.ListHooks) (*response.Hooks, error) {
	doc, err := c.callXML(MethodListHooks, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewHooks(doc), nil
}

// DestroyHookURL returns the signed hooks/destroy URL without dispatching
// it.
func (c *Client) DestroyHookURL(p *params.DestroyHook) (string, error) {
	return c.buildURL(MethodDestroyHook, p)
}

// DestroyHook removes a registered webhook.
func (c *Client) DestroyHook(p *params.DestroyHook) (*response.DestroyHook, error) {
	doc, err := c.callXML(MethodDestroyHook, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewDestroyHook(doc), nil
}
