package response

// ConfigXML is the body of a getDefaultConfigXML call. Unlike every other
// operation it is a raw configuration document, not an API envelope, so it
// is carried as-is.
//
// Deprecated: getDefaultConfigXML was removed from the server API in 2.3;
// the type remains for compatibility with older deployments.
type ConfigXML struct {
	body []byte
}

// NewConfigXML wraps a raw config document body.
func NewConfigXML(body []byte) *ConfigXML {
	return &ConfigXML{body: body}
}

// XML returns the raw configuration document.
func (c *ConfigXML) XML() []byte {
	return c.body
}

func (c *ConfigXML) String() string {
	return string(c.body)
}

// SetConfigXML is the response to a setConfigXML call.
//
// Deprecated: setConfigXML was removed from the server API in 2.3; the type
// remains for compatibility with older deployments.
type SetConfigXML struct {
	Raw
}

func NewSetConfigXML(doc *Document) *SetConfigXML {
	return &SetConfigXML{Raw: NewRaw(doc)}
}

// Token returns the config token to pass as configToken on join.
func (r *SetConfigXML) Token() string {
	return r.doc.Get("configToken").String("")
}
