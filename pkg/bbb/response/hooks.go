package response

// CreateHook is the response to a hooks/create call.
type CreateHook struct {
	Raw
}

func NewCreateHook(doc *Document) *CreateHook {
	return &CreateHook{Raw: NewRaw(doc)}
}

func (r *CreateHook) HookID() int {
	return r.doc.Get("hookID").Int(0)
}

func (r *CreateHook) PermanentHook() bool {
	return r.doc.Get("permanentHook").Bool(false)
}

// AlreadyExists reports that an identical hook was registered before and the
// server returned its ID instead of creating a duplicate.
func (r *CreateHook) AlreadyExists() bool {
	return r.MessageKey() == "duplicateWarning"
}

// Hooks is the response to a hooks/list call.
type Hooks struct {
	Raw
}

func NewHooks(doc *Document) *Hooks {
	return &Hooks{Raw: NewRaw(doc)}
}

// Hooks returns the registered webhooks.
func (r *Hooks) Hooks() []Hook {
	var out []Hook
	for _, d := range r.doc.All("hooks.hook") {
		out = append(out, Hook{doc: d})
	}
	return out
}

// Hook is one registered webhook.
type Hook struct {
	doc *Document
}

func (h Hook) HookID() int {
	return h.doc.Get("hookID").Int(0)
}

func (h Hook) CallbackURL() string {
	return h.doc.Get("callbackURL").String("")
}

// MeetingID returns the meeting the hook is scoped to, or "" for a global
// hook.
func (h Hook) MeetingID() string {
	return h.doc.Get("meetingID").String("")
}

func (h Hook) PermanentHook() bool {
	return h.doc.Get("permanentHook").Bool(false)
}

func (h Hook) RawData() bool {
	return h.doc.Get("rawData").Bool(false)
}

// DestroyHook is the response to a hooks/destroy call.
type DestroyHook struct {
	Raw
}

func NewDestroyHook(doc *Document) *DestroyHook {
	return &DestroyHook{Raw: NewRaw(doc)}
}

func (r *DestroyHook) Removed() bool {
	return r.doc.Get("removed").Bool(false)
}
