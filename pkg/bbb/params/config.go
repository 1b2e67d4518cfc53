package params

import "github.com/meetkit/bbbclient/pkg/bbb/wire"

// SetConfigXML are the parameters of the deprecated setConfigXML operation.
// Both fields travel in the POST body as form parameters; the checksum is
// computed over the body rather than a URL query string.
//
// Deprecated: setConfigXML was removed from the server API in 2.3; the
// operation is kept for wire compatibility with older deployments.
type SetConfigXML struct {
	MeetingID string `validate:"required"`
	ConfigXML []byte `validate:"required"`
}

func (p *SetConfigXML) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	// configXML first, then meetingID: the order the server hashes the
	// form body in.
	var l pairList
	l.add("configXML", string(p.ConfigXML))
	l.add("meetingID", p.MeetingID)
	return l.pairs, nil
}
