package bbb

import (
	"bytes"
	"mime/multipart"
	"net/textproto"

	"github.com/meetkit/bbbclient/pkg/bbb/params"
	"github.com/meetkit/bbbclient/pkg/bbb/response"
)

// GetRecordingsURL returns the signed getRecordings URL without dispatching
// it.
func (c *Client) GetRecordingsURL(p *params.GetRecordings) (string, error) {
	return c.buildURL(MethodGetRecordings, p)
}

// GetRecordings lists recordings, optionally filtered by meeting, record
// ID, state, or metadata.
func (c *Client) GetRecordings(p *params.GetRecordings) (*response.Recordings, error) {
	doc, err := c.callXML(MethodGetRecordings, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewRecordings(doc), nil
}

// PublishRecordingsURL returns the signed publishRecordings URL without
// dispatching it.
func (c *Client) PublishRecordingsURL(p *params.PublishRecordings) (string, error) {
	return c.buildURL(MethodPublishRecordings, p)
}

// PublishRecordings publishes or unpublishes recordings.
func (c *Client) PublishRecordings(p *params.PublishRecordings) (*response.PublishRecordings, error) {
	doc, err := c.callXML(MethodPublishRecordings, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewPublishRecordings(doc), nil
}

// DeleteRecordingsURL returns the signed deleteRecordings URL without
// dispatching it.
func (c *Client) DeleteRecordingsURL(p *params.DeleteRecordings) (string, error) {
	return c.buildURL(MethodDeleteRecordings, p)
}

// DeleteRecordings permanently deletes recordings.
func (c *Client) DeleteRecordings(p *params.DeleteRecordings) (*response.DeleteRecordings, error) {
	doc, err := c.callXML(MethodDeleteRecordings, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewDeleteRecordings(doc), nil
}

// UpdateRecordingsURL returns the signed updateRecordings URL without
// dispatching it.
func (c *Client) UpdateRecordingsURL(p *params.UpdateRecordings) (string, error) {
	return c.buildURL(MethodUpdateRecordings, p)
}

// UpdateRecordings rewrites the stored metadata of recordings.
func (c *Client) UpdateRecordings(p *params.UpdateRecordings) (*response.UpdateRecordings, error) {
	doc, err := c.callXML(MethodUpdateRecordings, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewUpdateRecordings(doc), nil
}

// GetRecordingTextTracksURL returns the signed getRecordingTextTracks URL
// without dispatching it.
func (c *Client) GetRecordingTextTracksURL(p *params.GetRecordingTextTracks) (string, error) {
	return c.buildURL(MethodGetRecordingTextTracks, p)
}

// GetRecordingTextTracks lists the caption tracks of a recording. This is
// one of the two JSON operations.
func (c *Client) GetRecordingTextTracks(p *params.GetRecordingTextTracks) (*response.TextTracks, error) {
	doc, err := c.callJSON(MethodGetRecordingTextTracks, p, nil, "")
	if err != nil {
		return nil, err
	}
	return response.NewTextTracks(doc), nil
}

// PutRecordingTextTrackURL returns the signed putRecordingTextTrack URL
// without dispatching it. The track file itself is not part of the URL.
func (c *Client) PutRecordingTextTrackURL(p *params.PutRecordingTextTrack) (string, error) {
	return c.buildURL(MethodPutRecordingTextTrack, p)
}

// PutRecordingTextTrack uploads a caption track. The file travels as a
// multipart form body and is excluded from the signed query string.
func (c *Client) PutRecordingTextTrack(p *params.PutRecordingTextTrack) (*response.PutTextTrack, error) {
	u, err := c.buildURL(MethodPutRecordingTextTrack, p)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := trackFilePart(w, p)
	if err != nil {
		return nil, ErrTransport.MsgErr("failed to build multipart body", err)
	}
	if _, err := part.Write(p.File); err != nil {
		return nil, ErrTransport.MsgErr("failed to build multipart body", err)
	}
	if err := w.Close(); err != nil {
		return nil, ErrTransport.MsgErr("failed to build multipart body", err)
	}

	raw, err := c.do(u, buf.Bytes(), w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	doc, err := response.DecodeJSON(raw)
	if err != nil {
		return nil, err
	}
	return response.NewPutTextTrack(doc), nil
}

func trackFilePart(w *multipart.Writer, p *params.PutRecordingTextTrack) (interface{ Write([]byte) (int, error) }, error) {
	if p.ContentType == "" {
		return w.CreateFormFile("file", p.FileName)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+p.FileName+`"`)
	h.Set("Content-Type", p.ContentType)
	return w.CreatePart(h)
}
