package params

import "github.com/meetkit/bbbclient/pkg/bbb/wire"

// CreateHook are the parameters of the hooks/create operation.
type CreateHook struct {
	CallbackURL string `validate:"required,url"`
	MeetingID   string
	GetRaw      *bool
}

func (p *CreateHook) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.add("callbackURL", p.CallbackURL)
	l.add("meetingID", p.MeetingID)
	l.addBool("getRaw", p.GetRaw)
	return l.pairs, nil
}

// ListHooks are the parameters of the hooks/list operation. MeetingID
// restricts the listing to hooks scoped to that meeting.
type ListHooks struct {
	MeetingID string
}

func (p *ListHooks) Pairs() ([]wire.Pair, error) {
	var l pairList
	l.add("meetingID", p.MeetingID)
	return l.pairs, nil
}

// DestroyHook are the parameters of the hooks/destroy operation.
type DestroyHook struct {
	HookID int `validate:"required"`
}

func (p *DestroyHook) Pairs() ([]wire.Pair, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	var l pairList
	l.addInt("hookID", p.HookID)
	return l.pairs, nil
}
